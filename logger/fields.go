package logger

import (
	"go.uber.org/zap"
)

// Standard field names for consistent structured logging across dims.
// Use these constants instead of raw strings to ensure consistency.
const (
	// Components
	FieldComponent = "component"

	// Unit algebra
	FieldUnit      = "unit"
	FieldFrom      = "from"
	FieldTo        = "to"
	FieldDimension = "dimension"
	FieldSystem    = "system"
	FieldOrdinal   = "ordinal"
	FieldFactor    = "factor"
	FieldOffset    = "offset"
	FieldImplicit  = "implicit"
	FieldHops      = "hops"

	// Files and paths
	FieldFile = "file"

	// Errors
	FieldError = "error"

	// Counts and sizes
	FieldCount = "count"
)

// ComponentLogger returns a named logger for a specific component.
// This is the preferred way to get a logger for dependency injection.
//
// Example:
//
//	type Registry struct {
//	    logger *zap.SugaredLogger
//	}
//
//	func NewRegistry() *Registry {
//	    return &Registry{
//	        logger: logger.ComponentLogger("conversion"),
//	    }
//	}
func ComponentLogger(name string) *zap.SugaredLogger {
	return Logger.Named(name)
}

// ChildLogger creates a child logger with additional context.
//
// Example:
//
//	convLogger := logger.ChildLogger(baseLogger, logger.FieldFrom, "m", logger.FieldTo, "ft")
func ChildLogger(parent *zap.SugaredLogger, keysAndValues ...interface{}) *zap.SugaredLogger {
	return parent.With(keysAndValues...)
}
