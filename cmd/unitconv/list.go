package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/hupe1980/unitgo"
	"github.com/hupe1980/unitgo/dimension"
	"github.com/spf13/cobra"
)

func newListCmd(a *app) *cobra.Command {
	var (
		dim      string
		like     string
		userOnly bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List known units",
		Example: `  unitconv list --dimension length
  unitconv list --like N
  unitconv list --user --definitions custom.toml`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			var entries []unitgo.Entry
			switch {
			case dim != "" && like != "":
				return fmt.Errorf("--dimension and --like are mutually exclusive")
			case dim != "":
				entries = a.reg.UnitsOf(dimension.Singleton(dimension.Dimension(dim)))
			case like != "":
				u, err := a.reg.Lookup(like)
				if err != nil {
					return err
				}
				entries = a.reg.UnitsOf(u.Dimension())
			default:
				entries = a.reg.Units()
			}

			tw := tabwriter.NewWriter(a.stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "NAME\tSYMBOL\tDIMENSION")
			for _, e := range entries {
				if userOnly && e.Builtin {
					continue
				}
				fmt.Fprintf(tw, "%s\t%s\t%s\n", e.Name, e.Unit.Symbol(), e.Unit.Dimension())
			}
			return tw.Flush()
		},
	}

	cmd.Flags().StringVar(&dim, "dimension", "", "only list units of this base dimension")
	cmd.Flags().StringVar(&like, "like", "", "only list units with the same dimension as this unit")
	cmd.Flags().BoolVar(&userOnly, "user", false, "only list units that are not builtin")
	return cmd
}
