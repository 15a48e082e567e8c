package commands

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/teranos/dims/config"
	"github.com/teranos/dims/conversion"
	"github.com/teranos/dims/display"
	"github.com/teranos/dims/errors"
	"github.com/teranos/dims/format"
	"github.com/teranos/dims/logger"
	"github.com/teranos/dims/quantity"
	"github.com/teranos/dims/unit"
)

type convertOptions struct {
	absolute     bool
	implicitOnly bool
}

// ConversionResult is the JSON form of one conversion.
type ConversionResult struct {
	Input    string  `json:"input"`
	Value    float64 `json:"value"`
	Unit     string  `json:"unit"`
	Text     string  `json:"text"`
	Scale    float64 `json:"scale"`
	Offset   float64 `json:"offset,omitempty"`
	Implicit bool    `json:"implicit"`
	Absolute bool    `json:"absolute,omitempty"`
}

func newConvertCmd() *cobra.Command {
	opts := &convertOptions{}
	cmd := &cobra.Command{
		Use:   "convert <value> <from> <to>",
		Short: "Convert a value between compatible units",
		Long: `Convert a value from one unit expression to another.

The conversion is relative by default, so temperature differences convert by
scale only. Use --absolute to convert a temperature reading, applying the
offsets between scales.

Negative values need "--" before them so they are not read as flags.

Examples:
  dims convert 3 m cm
  dims convert 1 "cm kg s^-2" N
  dims convert --absolute -- -40 °C °F
  dims convert --implicit-only 2 s "s"`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(cmd, opts, args)
		},
	}
	cmd.Flags().BoolVarP(&opts.absolute, "absolute", "a", false, "Treat the value as an absolute reading and apply offsets")
	cmd.Flags().BoolVar(&opts.implicitOnly, "implicit-only", false, "Fail unless the conversion is implicit")
	return cmd
}

func runConvert(cmd *cobra.Command, opts *convertOptions, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	parser, err := cfg.Parser()
	if err != nil {
		return err
	}
	fmtOpts, err := cfg.FormatOptions()
	if err != nil {
		return err
	}

	value, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return errors.NewInvalidRequestError("value %q is not a number", args[0])
	}
	from, err := parser.Parse(args[1])
	if err != nil {
		return errors.Wrapf(err, "from unit %q", args[1])
	}
	to, err := parser.Parse(args[2])
	if err != nil {
		return errors.Wrapf(err, "to unit %q", args[2])
	}

	factor, err := conversion.Resolve(from, to)
	if err != nil {
		return err
	}
	if !factor.Implicit && (opts.implicitOnly || !cfg.Convert.AllowExplicit) {
		return errors.WithHint(errors.NewImplicitConversion(from, to),
			"drop --implicit-only or set convert.allow_explicit = true")
	}

	result, err := convertValue(value, from, to, opts.absolute)
	if err != nil {
		return err
	}
	logger.Debugw("converted",
		logger.FieldFrom, from.String(),
		logger.FieldTo, to.String(),
		logger.FieldFactor, factor.Scale,
		logger.FieldImplicit, factor.Implicit,
	)

	out := ConversionResult{
		Input:    fmt.Sprintf("%s %s", args[0], args[1]),
		Value:    result.Value(),
		Unit:     format.Unit(result.Unit()),
		Text:     format.Quantity(result, fmtOpts...),
		Scale:    factor.Scale,
		Implicit: factor.Implicit,
		Absolute: opts.absolute,
	}
	if opts.absolute {
		out.Offset = factor.Offset
	}
	if display.ShouldOutputJSON(cmd) {
		return display.OutputJSON(cmd, out)
	}
	fmt.Fprintln(cmd.OutOrStdout(), out.Text)
	explain(cmd.ErrOrStderr(), from, to, factor)
	return nil
}

// explain prints how a conversion was resolved, as far as -v asks for.
func explain(w io.Writer, from, to unit.Unit, factor conversion.Factor) {
	if logger.ShouldOutput(verbosity, logger.OutputSystems) {
		fmt.Fprintf(w, "from %s in %s\n", from, systemName(from))
		fmt.Fprintf(w, "to   %s in %s\n", to, systemName(to))
	}
	if logger.ShouldOutput(verbosity, logger.OutputFactors) {
		fmt.Fprintf(w, "factor %s\n", factor)
	}
	if logger.ShouldOutput(verbosity, logger.OutputResolution) {
		resolves, hits := conversion.Shared.Stats()
		fmt.Fprintf(w, "resolved %d factors, %d from memo\n", resolves, hits)
	}
	if logger.ShouldOutput(verbosity, logger.OutputTerms) {
		for _, ft := range from.View() {
			for _, tt := range to.View() {
				if ft.Unit.Dimension() != tt.Unit.Dimension() {
					continue
				}
				if f, err := conversion.Shared.BaseFactor(ft.Unit, tt.Unit); err == nil {
					fmt.Fprintf(w, "  %s -> %s %s\n", ft.Unit, tt.Unit, f)
				}
			}
		}
	}
}

func systemName(u unit.Unit) string {
	if u.System() == nil {
		return "no system"
	}
	return u.System().Name()
}

func convertValue(value float64, from, to unit.Unit, absolute bool) (quantity.Quantity[float64], error) {
	if !absolute {
		return quantity.Convert(quantity.New(value, from), to)
	}
	a, err := quantity.ConvertAbsolute(quantity.NewAbsolute(value, from), to)
	if err != nil {
		return quantity.Quantity[float64]{}, err
	}
	return quantity.New(a.Value(), a.Unit()), nil
}
