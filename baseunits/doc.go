// Package baseunits defines the concrete base units (meter, gram, foot,
// degree Celsius, ...) and the conversions between them.
//
// The units are generated from definitions.toml; edit that file and run
// go generate rather than changing zz_generated.go.
package baseunits

//go:generate go run ../cmd/dimsgen --input definitions.toml --output zz_generated.go
