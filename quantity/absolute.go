package quantity

import (
	"github.com/teranos/dims/conversion"
	"github.com/teranos/dims/errors"
	"github.com/teranos/dims/unit"
)

// Absolute is a point on a scale (20 °C) rather than a difference
// (20 degrees warmer). Converting an absolute value applies the affine
// offset between the scales; converting a Quantity never does.
type Absolute[T Number] struct {
	q Quantity[T]
}

// NewAbsolute returns the point value on u's scale.
func NewAbsolute[T Number](value T, u unit.Unit) Absolute[T] {
	return Absolute[T]{q: New(value, u)}
}

// Value returns the raw payload.
func (a Absolute[T]) Value() T { return a.q.value }

// Unit returns the unit.
func (a Absolute[T]) Unit() unit.Unit { return a.q.unit }

func (a Absolute[T]) String() string { return "absolute " + a.q.String() }

// Add moves the point by a difference.
func (a Absolute[T]) Add(d Quantity[T]) (Absolute[T], error) {
	q, err := a.q.Add(d)
	if err != nil {
		return Absolute[T]{}, err
	}
	return Absolute[T]{q: q}, nil
}

// Sub moves the point back by a difference.
func (a Absolute[T]) Sub(d Quantity[T]) (Absolute[T], error) {
	q, err := a.q.Sub(d)
	if err != nil {
		return Absolute[T]{}, err
	}
	return Absolute[T]{q: q}, nil
}

// Difference returns the distance a - b as a relative quantity.
func (a Absolute[T]) Difference(b Absolute[T]) (Quantity[T], error) {
	return a.q.Sub(b.q)
}

// ConvertAbsolute moves a onto the scale of to, applying the offset.
// Offsets exist only between single base units, so composite units
// convert by scale alone.
func ConvertAbsolute[T Number](a Absolute[T], to unit.Unit) (Absolute[T], error) {
	return ConvertAbsoluteWith(conversion.Shared, a, to)
}

// ConvertAbsoluteWith is ConvertAbsolute against a specific registry.
func ConvertAbsoluteWith[T Number](reg *conversion.Registry, a Absolute[T], to unit.Unit) (Absolute[T], error) {
	f, err := reg.Resolve(a.q.unit, to)
	if err != nil {
		return Absolute[T]{}, errors.Wrap(err, "absolute conversion")
	}
	return Absolute[T]{q: Quantity[T]{unit: to, value: affine(a.q.value, f.Scale, f.Offset)}}, nil
}
