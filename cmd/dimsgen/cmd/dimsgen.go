package cmd

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/teranos/dims/errors"
	"github.com/teranos/dims/internal/gen"
	"github.com/teranos/dims/logger"
)

var (
	dimsgenInput     string
	dimsgenOutput    string
	dimsgenVerbosity int
)

// DimsgenCmd generates Go source for base units and conversions.
var DimsgenCmd = &cobra.Command{
	Use:   "dimsgen",
	Short: "Generate base unit registrations from definitions",
	Long: `Generate Go source that registers base units, scaled units and
conversions from a TOML or YAML definitions file.

The definitions are checked before anything is written:
  - format_version must satisfy ^1.0
  - ordinals, identifiers and symbols are unique
  - dimensions and prefixes exist
  - conversions relate units of one dimension with a positive scale

Examples:
  dimsgen --input definitions.toml                         # Print to stdout
  dimsgen --input definitions.toml --output zz_generated.go
  dimsgen check --input definitions.toml --output zz_generated.go`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return logger.Initialize(false, dimsgenVerbosity)
	},
	RunE: runDimsgen,
}

// DimsgenCheckCmd checks that the generated file is up to date.
var DimsgenCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Check if the generated file is up to date",
	Long: `Render the definitions and compare the result with the existing
output file.

Exit codes:
  0 - Generated file is up to date
  1 - Generated file is out of date, or an error occurred`,
	RunE: runDimsgenCheck,
}

func init() {
	DimsgenCmd.PersistentFlags().StringVarP(&dimsgenInput, "input", "i", "definitions.toml", "Definitions file (.toml, .yaml or .yml)")
	DimsgenCmd.PersistentFlags().StringVarP(&dimsgenOutput, "output", "o", "", "Output file (default: stdout)")
	DimsgenCmd.PersistentFlags().CountVarP(&dimsgenVerbosity, "verbose", "v", "Increase output verbosity")

	DimsgenCmd.AddCommand(DimsgenCheckCmd)
}

func render() ([]byte, error) {
	defs, err := gen.Load(dimsgenInput)
	if err != nil {
		return nil, err
	}
	src, err := gen.Render(defs, filepath.Base(dimsgenInput))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to render %s", dimsgenInput)
	}
	return src, nil
}

func runDimsgen(cmd *cobra.Command, args []string) error {
	src, err := render()
	if err != nil {
		return err
	}

	if dimsgenOutput == "" {
		_, err := cmd.OutOrStdout().Write(src)
		return err
	}
	if err := os.WriteFile(dimsgenOutput, src, 0644); err != nil {
		return errors.Wrapf(err, "failed to write %s", dimsgenOutput)
	}
	logger.Infow("generated base units", logger.FieldFile, dimsgenOutput, "bytes", len(src))
	return nil
}

func runDimsgenCheck(cmd *cobra.Command, args []string) error {
	if dimsgenOutput == "" {
		return errors.New("check needs --output to compare against")
	}
	src, err := render()
	if err != nil {
		return err
	}
	existing, err := os.ReadFile(dimsgenOutput)
	if err != nil {
		return errors.Wrapf(err, "failed to read %s", dimsgenOutput)
	}

	out := cmd.OutOrStdout()
	if bytes.Equal(src, existing) {
		fmt.Fprintf(out, "✓ %s is up to date\n", dimsgenOutput)
		return nil
	}
	fmt.Fprintf(out, "✗ %s is out of date.\n", dimsgenOutput)
	return errors.WithHint(errors.Newf("%s is out of date", dimsgenOutput), "run `go generate ./baseunits/`")
}
