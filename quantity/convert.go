package quantity

import (
	"github.com/teranos/dims/conversion"
	"github.com/teranos/dims/errors"
	"github.com/teranos/dims/rational"
	"github.com/teranos/dims/unit"
)

// Convert expresses q in to using the default conversion registry.
// The conversion may be explicit-only.
func Convert[T Number](q Quantity[T], to unit.Unit) (Quantity[T], error) {
	return ConvertWith(conversion.Shared, q, to)
}

// ConvertWith is Convert against a specific registry.
func ConvertWith[T Number](reg *conversion.Registry, q Quantity[T], to unit.Unit) (Quantity[T], error) {
	f, err := reg.Resolve(q.unit, to)
	if err != nil {
		return Quantity[T]{}, err
	}
	return Quantity[T]{unit: to, value: affine(q.value, f.Scale, 0)}, nil
}

// Assign stores src in dst, converting into dst's unit. Only implicit
// conversions are allowed; anything else returns ErrImplicitConversion and
// leaves dst unchanged.
func Assign[T Number](dst *Quantity[T], src Quantity[T]) error {
	return AssignWith(conversion.Shared, dst, src)
}

// AssignWith is Assign against a specific registry.
func AssignWith[T Number](reg *conversion.Registry, dst *Quantity[T], src Quantity[T]) error {
	f, err := reg.Resolve(src.unit, dst.unit)
	if err != nil {
		return err
	}
	if !f.Implicit {
		return errors.NewImplicitConversion(src.unit, dst.unit)
	}
	dst.value = affine(src.value, f.Scale, 0)
	return nil
}

// Cast changes the payload type, following Go's conversion rules.
// Complex to real is ErrValueType.
func Cast[T, U Number](q Quantity[U]) (Quantity[T], error) {
	v, err := castValue[T](q.value)
	if err != nil {
		return Quantity[T]{}, errors.Wrapf(err, "cast %s", q)
	}
	return Quantity[T]{unit: q.unit, value: v}, nil
}

// Normalize converts q to the unit with every scaled base unit replaced by
// its family root (km to m, kg to g).
func Normalize[T Number](q Quantity[T]) (Quantity[T], error) {
	to := unit.Unscale(q.unit)
	if to.Identical(q.unit) {
		return q, nil
	}
	return Convert(q, to)
}

// Pow raises q to r. The value uses the payload's Power method when it has
// one.
func (q Quantity[T]) Pow(r rational.Rational) Quantity[T] {
	return Quantity[T]{unit: q.unit.Pow(r), value: power(q.value, r)}
}

// Root takes the r-th root of q. The zeroth root is an error.
func (q Quantity[T]) Root(r rational.Rational) (Quantity[T], error) {
	inv, err := r.Inverse()
	if err != nil {
		return Quantity[T]{}, errors.Wrapf(err, "root of %s", q)
	}
	return q.Pow(inv), nil
}
