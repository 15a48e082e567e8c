package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrapPreservesSentinel(t *testing.T) {
	wrapped := Wrap(ErrNoConversion, "resolving m -> lb")

	assert.Contains(t, wrapped.Error(), "resolving m -> lb")
	assert.True(t, Is(wrapped, ErrNoConversion))
	assert.False(t, Is(wrapped, ErrDimensionMismatch))
}

func TestNewDimensionMismatch(t *testing.T) {
	err := NewDimensionMismatch("add", "m", "kg")
	require.Error(t, err)

	assert.True(t, Is(err, ErrDimensionMismatch))
	assert.Equal(t, "cannot add m and kg: dimension mismatch", err.Error())
}

func TestNewSystemMismatchHasHint(t *testing.T) {
	err := NewSystemMismatch("compare", "m", "cm")

	assert.True(t, Is(err, ErrSystemMismatch))
	hints := GetAllHints(err)
	require.Len(t, hints, 1)
	assert.Contains(t, hints[0], "quantity.Convert")
}

func TestNewImplicitConversion(t *testing.T) {
	err := NewImplicitConversion("m", "cm")

	assert.True(t, Is(err, ErrImplicitConversion))
	assert.Contains(t, err.Error(), "m -> cm")
	assert.NotEmpty(t, GetAllHints(err))
}

func TestNewOrdinalCollision(t *testing.T) {
	err := NewOrdinalCollision("base unit", 7, "meter", "furlong")

	assert.True(t, Is(err, ErrOrdinalCollision))
	assert.Contains(t, err.Error(), `ordinal 7 already registered to "meter"`)
	assert.Contains(t, err.Error(), `"furlong"`)
}

func TestNotFoundHelpers(t *testing.T) {
	err := NewNotFoundError("unknown symbol %q", "furlong")

	assert.True(t, IsNotFoundError(err))
	assert.False(t, IsInvalidRequestError(err))
	assert.Contains(t, err.Error(), `unknown symbol "furlong"`)
	assert.False(t, IsNotFoundError(nil))
}

func TestInvalidRequestHelpers(t *testing.T) {
	err := NewInvalidRequestError("bad exponent %s", "x")

	assert.True(t, IsInvalidRequestError(err))
	assert.Contains(t, err.Error(), "bad exponent x")
}

func TestIsDimensional(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"dimension mismatch", NewDimensionMismatch("add", "m", "s"), true},
		{"system mismatch", NewSystemMismatch("add", "m", "cm"), true},
		{"no conversion", NewNoConversion("m", "ft"), true},
		{"implicit", NewImplicitConversion("m", "cm"), true},
		{"incomplete system", Wrap(ErrIncompleteSystem, "cgs"), true},
		{"not dimensionless", ErrNotDimensionless, true},
		{"ordinal collision", NewOrdinalCollision("dimension", 1, "a", "b"), false},
		{"unrelated", New("boom"), false},
		{"nil", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsDimensional(tt.err))
		})
	}
}

func TestStackTrace(t *testing.T) {
	err := New("with stack")

	detailed := fmt.Sprintf("%+v", err)
	assert.Contains(t, detailed, "errors_test.go")
}

func TestNilHandling(t *testing.T) {
	assert.Nil(t, Wrap(nil, "context"))
	assert.Nil(t, Wrapf(nil, "context %d", 1))
	assert.Nil(t, WithStack(nil))
	assert.Nil(t, WithHint(nil, "hint"))
	assert.Nil(t, WithDetail(nil, "detail"))
}

func ExampleNewDimensionMismatch() {
	err := NewDimensionMismatch("add", "m", "kg")
	fmt.Println(Is(err, ErrDimensionMismatch))
	// Output: true
}
