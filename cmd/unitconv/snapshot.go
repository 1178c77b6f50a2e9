package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newSnapshotCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Save, load and list unit snapshots",
		Long: `Snapshots hold the user-defined units of a registry. They are written
to the store selected by store.kind (local, minio or s3).`,
	}

	save := &cobra.Command{
		Use:     "save NAME",
		Short:   "Save user-defined units to a snapshot",
		Example: `  unitconv snapshot save custom.snap --definitions custom.toml`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.reg.Save(cmd.Context(), args[0]); err != nil {
				return err
			}
			n := 0
			for _, e := range a.reg.Units() {
				if !e.Builtin {
					n++
				}
			}
			_, err := fmt.Fprintf(a.stdout, "saved %d units to %s\n", n, args[0])
			return err
		},
	}

	load := &cobra.Command{
		Use:   "load NAME",
		Short: "Load a snapshot and print the units it defines",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := a.reg.Load(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(a.stdout, "loaded %d units from %s\n", n, args[0])
			return err
		},
	}

	list := &cobra.Command{
		Use:   "list [PREFIX]",
		Short: "List snapshots in the store",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			prefix := ""
			if len(args) == 1 {
				prefix = args[0]
			}
			names, err := a.reg.Snapshots(cmd.Context(), prefix)
			if err != nil {
				return err
			}
			for _, name := range names {
				if _, err := fmt.Fprintln(a.stdout, name); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.AddCommand(save, load, list)
	return cmd
}
