package main

import (
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "show UNIT",
		Short:   "Show the definition of a unit",
		Example: `  unitconv show kWh`,
		Args:    cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			e, err := a.reg.LookupEntry(args[0])
			if err != nil {
				return err
			}

			one := e.Unit.One()
			tw := tabwriter.NewWriter(a.stdout, 0, 4, 1, ' ', 0)
			fmt.Fprintf(tw, "name:\t%s\n", e.Name)
			fmt.Fprintf(tw, "symbol:\t%s\n", one.Symbol())
			fmt.Fprintf(tw, "base ratio:\t%s\n", strconv.FormatFloat(one.BaseRatio(), 'g', -1, 64))
			fmt.Fprintf(tw, "dimension:\t%s\n", one.Dimension())
			fmt.Fprintf(tw, "builtin:\t%t\n", e.Builtin)
			return tw.Flush()
		},
	}
}
