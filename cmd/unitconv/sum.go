package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/hupe1980/unitgo"
	"github.com/spf13/cobra"
)

func newSumCmd(a *app) *cobra.Command {
	var style string

	cmd := &cobra.Command{
		Use:   "sum TO VALUE UNIT [VALUE UNIT...]",
		Short: "Add quantities given in different units",
		Example: `  unitconv sum m 1 km 250 m 30 cm
  unitconv sum h 90 min 1 day`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) < 3 || len(args)%2 == 0 {
				return errors.New("expected TO followed by VALUE UNIT pairs")
			}
			return nil
		},
		RunE: func(_ *cobra.Command, args []string) error {
			s, err := parseStyle(style)
			if err != nil {
				return err
			}

			terms := make([]unitgo.Quantity, 0, len(args)/2)
			for i := 1; i < len(args); i += 2 {
				value, err := strconv.ParseFloat(args[i], 64)
				if err != nil {
					return fmt.Errorf("invalid value %q: %w", args[i], err)
				}
				terms = append(terms, unitgo.Quantity{Value: value, Unit: args[i+1]})
			}

			m, err := a.reg.Sum(args[0], terms...)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(a.stdout, m.Format(s))
			return err
		},
	}

	cmd.Flags().StringVar(&style, "style", "engine", "symbol style (engine, dimension, unicode)")
	return cmd
}
