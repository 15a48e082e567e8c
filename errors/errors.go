// Package errors provides error handling for dims.
//
// This package re-exports github.com/cockroachdb/errors, providing:
//   - Stack traces for debugging
//   - Error wrapping and context
//   - Hints that tell the caller how to fix a unit error
//
// Every dimensional error in dims wraps one of the sentinels below, so
// callers can branch on the kind of failure:
//
//	sum, err := a.Add(b)
//	if errors.Is(err, errors.ErrDimensionMismatch) {
//	    // adding a length to a mass
//	}
//
// For full documentation see: https://pkg.go.dev/github.com/cockroachdb/errors
package errors

import (
	crdb "github.com/cockroachdb/errors"
)

// Core error creation and wrapping
var (
	New           = crdb.New
	Newf          = crdb.Newf
	Wrap          = crdb.Wrap
	Wrapf         = crdb.Wrapf
	WithStack     = crdb.WithStack
	WithMessage   = crdb.WithMessage
	WithMessagef  = crdb.WithMessagef
	CombineErrors = crdb.CombineErrors
)

// User-facing messages and details
var (
	WithHint    = crdb.WithHint
	WithHintf   = crdb.WithHintf
	WithDetail  = crdb.WithDetail
	WithDetailf = crdb.WithDetailf
)

// Error inspection
var (
	Is             = crdb.Is
	IsAny          = crdb.IsAny
	As             = crdb.As
	Unwrap         = crdb.Unwrap
	UnwrapAll      = crdb.UnwrapAll
	GetAllHints    = crdb.GetAllHints
	GetAllDetails  = crdb.GetAllDetails
	FlattenHints   = crdb.FlattenHints
	FlattenDetails = crdb.FlattenDetails
)

// Assertions
var (
	AssertionFailedf = crdb.AssertionFailedf
)

// Sentinel errors for the dimensional algebra.
// Wrap these with errors.Wrap() to add context while preserving the type.
var (
	// ErrDimensionMismatch indicates two operands do not share a dimension
	ErrDimensionMismatch = New("dimension mismatch")

	// ErrSystemMismatch indicates two operands share a dimension but are
	// expressed in different unit systems
	ErrSystemMismatch = New("unit system mismatch")

	// ErrNoConversion indicates no conversion relation connects two units
	ErrNoConversion = New("no conversion defined")

	// ErrImplicitConversion indicates a conversion exists but is explicit-only
	ErrImplicitConversion = New("conversion is not implicit")

	// ErrOrdinalCollision indicates two definitions claim the same ordinal
	ErrOrdinalCollision = New("ordinal collision")

	// ErrZeroDenominator indicates a rational with a zero denominator
	ErrZeroDenominator = New("zero denominator")

	// ErrValueType indicates the payload types of two quantities are not convertible
	ErrValueType = New("value type not convertible")

	// ErrIncompleteSystem indicates a unit system has no base unit for a dimension
	ErrIncompleteSystem = New("unit system cannot express dimension")

	// ErrNotDimensionless indicates a dimensioned quantity was used as a plain number
	ErrNotDimensionless = New("quantity is not dimensionless")

	// ErrNotFound indicates the requested unit, symbol or system does not exist
	ErrNotFound = New("not found")

	// ErrInvalidRequest indicates the input was malformed or invalid
	ErrInvalidRequest = New("invalid request")
)

// NewDimensionMismatch reports that op cannot combine the two dimensions.
func NewDimensionMismatch(op string, left, right interface{}) error {
	return Wrapf(ErrDimensionMismatch, "cannot %s %v and %v", op, left, right)
}

// NewSystemMismatch reports that op needs both operands in one unit system.
func NewSystemMismatch(op string, left, right interface{}) error {
	err := Wrapf(ErrSystemMismatch, "cannot %s %v and %v", op, left, right)
	return WithHint(err, "convert one operand with quantity.Convert first")
}

// NewNoConversion reports that no relation connects from and to.
func NewNoConversion(from, to interface{}) error {
	return Wrapf(ErrNoConversion, "%v -> %v", from, to)
}

// NewImplicitConversion reports that from -> to needs an explicit conversion.
func NewImplicitConversion(from, to interface{}) error {
	err := Wrapf(ErrImplicitConversion, "%v -> %v", from, to)
	return WithHint(err, "use quantity.Convert for an explicit conversion")
}

// NewOrdinalCollision reports that ordinal is already owned by existing.
func NewOrdinalCollision(kind string, ordinal int, existing, incoming string) error {
	return Wrapf(ErrOrdinalCollision, "%s ordinal %d already registered to %q, cannot register %q",
		kind, ordinal, existing, incoming)
}

// NewNotFoundError creates a not-found error with a formatted message
func NewNotFoundError(format string, args ...interface{}) error {
	return Wrap(ErrNotFound, Newf(format, args...).Error())
}

// NewInvalidRequestError creates an invalid-request error with a formatted message
func NewInvalidRequestError(format string, args ...interface{}) error {
	return Wrap(ErrInvalidRequest, Newf(format, args...).Error())
}

// IsNotFoundError checks if an error is or wraps ErrNotFound
func IsNotFoundError(err error) bool {
	return err != nil && Is(err, ErrNotFound)
}

// IsInvalidRequestError checks if an error is or wraps ErrInvalidRequest
func IsInvalidRequestError(err error) bool {
	return err != nil && Is(err, ErrInvalidRequest)
}

// IsDimensional reports whether err is one of the unit algebra errors.
func IsDimensional(err error) bool {
	return err != nil && IsAny(err,
		ErrDimensionMismatch,
		ErrSystemMismatch,
		ErrNoConversion,
		ErrImplicitConversion,
		ErrIncompleteSystem,
		ErrNotDimensionless,
	)
}
