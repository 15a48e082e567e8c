package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/teranos/dims/config"
	"github.com/teranos/dims/display"
	"github.com/teranos/dims/format"
	"github.com/teranos/dims/physical"
)

// DimensionResult describes a parsed unit expression.
type DimensionResult struct {
	Expression string `json:"expression"`
	Unit       string `json:"unit"`
	Dimension  string `json:"dimension"`
	Named      string `json:"named,omitempty"`
	System     string `json:"system,omitempty"`
}

func newDimensionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dimension <expr>",
		Short: "Show the dimension of a unit expression",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			parser, err := cfg.Parser()
			if err != nil {
				return err
			}
			u, err := parser.Parse(args[0])
			if err != nil {
				return err
			}

			res := DimensionResult{
				Expression: args[0],
				Unit:       format.Unit(u),
				Dimension:  u.Dimension().String(),
			}
			if name, ok := physical.NameOf(u.Dimension()); ok {
				res.Named = name
			}
			if u.System() != nil {
				res.System = u.System().Name()
			}

			if display.ShouldOutputJSON(cmd) {
				return display.OutputJSON(cmd, res)
			}
			line := res.Dimension
			if res.Named != "" {
				line += " (" + res.Named + ")"
			}
			fmt.Fprintln(cmd.OutOrStdout(), line)
			return nil
		},
	}
}
