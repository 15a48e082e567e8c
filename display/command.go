package display

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/teranos/dims/errors"
)

// CallerEnv set to "machine" makes JSON the default output.
const CallerEnv = "DIMS_CALLER"

// MachineCaller reports whether output is being consumed by another program.
func MachineCaller() bool {
	return os.Getenv(CallerEnv) == "machine"
}

// ShouldOutputJSON decides between JSON and human output for cmd.
func ShouldOutputJSON(cmd *cobra.Command) bool {
	if cmd == nil {
		return MachineCaller()
	}

	if f := cmd.Flags().Lookup("json"); f != nil && f.Changed {
		on, _ := cmd.Flags().GetBool("json")
		return on
	}
	if on, _ := cmd.Root().PersistentFlags().GetBool("json"); on {
		return true
	}
	return MachineCaller()
}

// OutputJSON marshals v with MarshalJSON and prints it to cmd's output.
func OutputJSON(cmd *cobra.Command, v interface{}) error {
	data, err := MarshalJSON(v)
	if err != nil {
		return errors.Wrap(err, "failed to marshal JSON")
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}
