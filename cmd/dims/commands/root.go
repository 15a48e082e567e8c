// Package commands holds the cobra commands of the dims binary.
package commands

import (
	"github.com/spf13/cobra"

	"github.com/teranos/dims/config"
	"github.com/teranos/dims/errors"
	"github.com/teranos/dims/logger"

	// unit systems register their units, names and conversions on import
	_ "github.com/teranos/dims/systems/cgs"
	_ "github.com/teranos/dims/systems/imperial"
	_ "github.com/teranos/dims/systems/information"
	_ "github.com/teranos/dims/systems/nautical"
	_ "github.com/teranos/dims/systems/si"
	_ "github.com/teranos/dims/systems/temperature"
)

// verbosity is the effective -v count of the running command.
var verbosity int

// NewRootCmd builds the dims command tree.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "dims",
		Short: "Dimensional analysis and unit conversion",
		Long: `dims - Dimensional analysis and unit conversion.

Quantities carry a physical dimension and a unit system. dims converts
between compatible units, reports the dimension of a unit expression and
lists the registered units and systems.

Unit expressions are products of symbols with optional rational exponents:
  m/s^2     kg m^2 s^-2     N*m     nmi^2 km^-1     kg^1/2

Examples:
  dims convert 2345 m km          # 2.345 km
  dims convert 20 °C °F --absolute
  dims dimension "kg m^2 s^-2"    # L^2 M T^-2 (energy)
  dims units                      # Named units
  dims config show --format yaml`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return errors.Wrap(err, "failed to load config")
			}
			verbosity, _ = cmd.Flags().GetCount("verbose")
			if cfg.Log.Verbosity > verbosity {
				verbosity = cfg.Log.Verbosity
			}
			if err := logger.Initialize(cfg.Log.JSON, verbosity); err != nil {
				return errors.Wrap(err, "failed to initialize logger")
			}
			logger.Debugw("configuration loaded", "level", logger.LevelName(verbosity))
			return nil
		},
	}

	root.PersistentFlags().CountP("verbose", "v", "Increase output verbosity (repeat for more detail: -v, -vv, -vvv)")
	root.PersistentFlags().Bool("json", false, "Output as JSON")

	root.AddCommand(
		newConvertCmd(),
		newDimensionCmd(),
		newUnitsCmd(),
		newSystemsCmd(),
		newConstantsCmd(),
		newConfigCmd(),
		newVersionCmd(),
	)
	return root
}
