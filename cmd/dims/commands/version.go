package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/teranos/dims/display"
	"github.com/teranos/dims/version"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show dims version information",
		Long:  `Display version, build time, commit hash, and platform information for the dims binary.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			info := version.Get("dims")
			if display.ShouldOutputJSON(cmd) {
				return display.OutputJSON(cmd, info)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, info.String())
			fmt.Fprintf(out, "Platform: %s\n", info.Platform)
			fmt.Fprintf(out, "Go: %s\n", info.GoVersion)
			return nil
		},
	}
}
