package logger

// Output controls what categories of information the CLI prints at each
// verbosity level.
//
// Unlike log levels (which filter by severity), output categories control
// WHAT types of information are displayed regardless of severity.
//
// Verbosity Levels:
//
//	0 (default) - Results and errors with hints
//	1 (-v)      - + Conversion factors and the systems a unit parsed into
//	2 (-vv)     - + Resolution statistics and config sources
//	3 (-vvv)    - + Per-term factors of a conversion

// OutputCategory defines a category of output that can be enabled/disabled
type OutputCategory int

const (
	// Level 0 (default) - Always shown
	OutputResults OutputCategory = iota // Converted values, listings
	OutputErrors                        // Errors with hints

	// Level 1 (-v) - Informational
	OutputFactors // Scale, offset and implicitness of a conversion
	OutputSystems // System each parsed unit landed in

	// Level 2 (-vv) - Detailed
	OutputResolution // Memo hits and resolve counts
	OutputConfig     // Config values and where they came from

	// Level 3 (-vvv) - Debug
	OutputTerms // Per base-unit factor breakdown
)

// categoryLevels maps each output category to its minimum verbosity level
var categoryLevels = map[OutputCategory]int{
	OutputResults: VerbosityUser,
	OutputErrors:  VerbosityUser,

	OutputFactors: VerbosityInfo,
	OutputSystems: VerbosityInfo,

	OutputResolution: VerbosityDebug,
	OutputConfig:     VerbosityDebug,

	OutputTerms: VerbosityTrace,
}

// ShouldOutput returns true if the given category should be shown at the given verbosity
func ShouldOutput(verbosity int, category OutputCategory) bool {
	minLevel, ok := categoryLevels[category]
	if !ok {
		return verbosity >= VerbosityTrace
	}
	return verbosity >= minLevel
}

var categoryNames = map[OutputCategory]string{
	OutputResults:    "results",
	OutputErrors:     "errors",
	OutputFactors:    "factors",
	OutputSystems:    "systems",
	OutputResolution: "resolution",
	OutputConfig:     "config",
	OutputTerms:      "terms",
}

// CategoryName returns the human-readable name for an output category
func CategoryName(category OutputCategory) string {
	if name, ok := categoryNames[category]; ok {
		return name
	}
	return "unknown"
}

// VerbosityDescription returns a description of what's shown at each level
func VerbosityDescription(verbosity int) string {
	switch verbosity {
	case VerbosityUser:
		return "results and errors only"
	case VerbosityInfo:
		return "results, errors, factors and systems"
	case VerbosityDebug:
		return "above + resolution statistics and config sources"
	case VerbosityTrace:
		return "above + per-term factors"
	default:
		if verbosity > VerbosityTrace {
			return "maximum verbosity"
		}
		return "unknown verbosity level"
	}
}
