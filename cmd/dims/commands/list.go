package commands

import (
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/teranos/dims/constants"
	"github.com/teranos/dims/display"
	"github.com/teranos/dims/format"
	"github.com/teranos/dims/physical"
	"github.com/teranos/dims/unit"
)

// UnitInfo is one named unit.
type UnitInfo struct {
	Name      string `json:"name"`
	Symbol    string `json:"symbol"`
	Dimension string `json:"dimension"`
	Quantity  string `json:"quantity,omitempty"`
	Expansion string `json:"expansion"`
}

// SystemInfo is one registered homogeneous system.
type SystemInfo struct {
	Name      string     `json:"name"`
	BaseUnits []BaseInfo `json:"base_units"`
}

// BaseInfo is one base unit of a system.
type BaseInfo struct {
	Name      string `json:"name"`
	Symbol    string `json:"symbol"`
	Dimension string `json:"dimension"`
	Ordinal   int    `json:"ordinal"`
}

// ConstantInfo is one physical constant.
type ConstantInfo struct {
	Name        string  `json:"name"`
	Symbol      string  `json:"symbol"`
	Value       float64 `json:"value"`
	Unit        string  `json:"unit"`
	Uncertainty float64 `json:"uncertainty"`
}

func newUnitsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "units",
		Short: "List the named units",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			entries := format.Names.All()
			infos := make([]UnitInfo, len(entries))
			for i, e := range entries {
				infos[i] = UnitInfo{
					Name:      e.Name,
					Symbol:    e.Symbol,
					Dimension: e.Unit.Dimension().String(),
					Expansion: format.Unit(e.Unit, format.WithStyle(format.Raw)),
				}
				if name, ok := physical.NameOf(e.Unit.Dimension()); ok {
					infos[i].Quantity = name
				}
			}
			if display.ShouldOutputJSON(cmd) {
				return display.OutputJSON(cmd, infos)
			}

			rows := make([][]string, len(infos))
			for i, u := range infos {
				rows[i] = []string{u.Symbol, u.Name, u.Quantity, u.Dimension, u.Expansion}
			}
			return display.Table(cmd.OutOrStdout(), []string{"Symbol", "Name", "Quantity", "Dimension", "Expansion"}, rows)
		},
	}
}

func newSystemsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "systems",
		Short: "List the unit systems and their base units",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			systems := unit.Systems()
			infos := make([]SystemInfo, len(systems))
			for i, s := range systems {
				infos[i] = SystemInfo{Name: s.Name()}
				for _, b := range s.BaseUnits() {
					infos[i].BaseUnits = append(infos[i].BaseUnits, BaseInfo{
						Name:      b.Name(),
						Symbol:    b.Symbol(),
						Dimension: b.Dimension().Name(),
						Ordinal:   b.Ordinal(),
					})
				}
			}
			if display.ShouldOutputJSON(cmd) {
				return display.OutputJSON(cmd, infos)
			}

			rows := make([][]string, len(infos))
			for i, s := range infos {
				symbols := make([]string, len(s.BaseUnits))
				for j, b := range s.BaseUnits {
					symbols[j] = b.Symbol
				}
				rows[i] = []string{s.Name, strings.Join(symbols, " ")}
			}
			return display.Table(cmd.OutOrStdout(), []string{"System", "Base units"}, rows)
		},
	}
}

func newConstantsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "constants",
		Short: "List the physical constants",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			all := constants.All()
			infos := make([]ConstantInfo, len(all))
			for i, c := range all {
				infos[i] = ConstantInfo{
					Name:        c.Name,
					Symbol:      c.Symbol,
					Value:       c.Value.Value(),
					Unit:        format.Unit(c.Value.Unit()),
					Uncertainty: c.Uncertainty,
				}
			}
			if display.ShouldOutputJSON(cmd) {
				return display.OutputJSON(cmd, infos)
			}

			rows := make([][]string, len(infos))
			for i, c := range infos {
				uncertainty := "exact"
				if c.Uncertainty != 0 {
					uncertainty = strconv.FormatFloat(c.Uncertainty, 'g', -1, 64)
				}
				rows[i] = []string{c.Symbol, c.Name, strconv.FormatFloat(c.Value, 'g', -1, 64), c.Unit, uncertainty}
			}
			return display.Table(cmd.OutOrStdout(), []string{"Symbol", "Name", "Value", "Unit", "Uncertainty"}, rows)
		},
	}
}
