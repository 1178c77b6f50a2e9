package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/hupe1980/unitgo/codec"
	"github.com/hupe1980/unitgo/measure"
	"github.com/spf13/cobra"
)

type convertResult struct {
	Value  float64             `json:"value"`
	From   string              `json:"from"`
	To     string              `json:"to"`
	Result measure.Measurement `json:"result"`
}

func newConvertCmd(a *app) *cobra.Command {
	var (
		output string
		style  string
	)

	cmd := &cobra.Command{
		Use:   "convert VALUE FROM TO",
		Short: "Convert a value from one unit to another",
		Example: `  unitconv convert 2.3 kilometer m
  unitconv convert 1 day s --output json`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			value, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("invalid value %q: %w", args[0], err)
			}

			m, err := a.reg.Convert(value, args[1], args[2])
			if err != nil {
				return err
			}

			switch strings.ToLower(output) {
			case "", "text":
				s, err := parseStyle(style)
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(a.stdout, m.Format(s))
				return err
			case "json":
				data, err := codec.Default.Marshal(convertResult{Value: value, From: args[1], To: args[2], Result: m})
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(a.stdout, string(data))
				return err
			default:
				return fmt.Errorf("unknown output format %q", output)
			}
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "text", "output format (text, json)")
	cmd.Flags().StringVar(&style, "style", "engine", "symbol style for text output (engine, dimension, unicode)")
	return cmd
}

func parseStyle(s string) (measure.Style, error) {
	switch strings.ToLower(s) {
	case "", measure.StyleEngine.String():
		return measure.StyleEngine, nil
	case measure.StyleDimension.String():
		return measure.StyleDimension, nil
	case measure.StyleUnicode.String():
		return measure.StyleUnicode, nil
	default:
		return 0, fmt.Errorf("unknown style %q", s)
	}
}
