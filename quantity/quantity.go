// Package quantity pairs a numeric value with a unit.
//
// Quantities are immutable values. Addition, subtraction and comparison
// require identical units and return an error otherwise; there is no
// automatic conversion. Multiplication and division always succeed and
// combine the units. Conversion between units of one dimension is explicit
// (Convert) or implicit (Assign), the latter only when every base-unit
// relation involved is declared implicit.
//
//	force := quantity.New(1.0, cgs.Length).
//		Mul(quantity.New(1.0, si.Mass)).
//		Div(quantity.New(1.0, si.Time).Pow(rational.Two))
//	force.String() // "1 cm kg s^-2"
package quantity

import (
	"github.com/teranos/dims/errors"
	"github.com/teranos/dims/unit"
)

// Quantity is a value of type T measured in a unit.
type Quantity[T Number] struct {
	unit  unit.Unit
	value T
}

// New returns value measured in u.
func New[T Number](value T, u unit.Unit) Quantity[T] {
	return Quantity[T]{unit: u, value: value}
}

// Dimensionless wraps a plain number.
func Dimensionless[T Number](value T) Quantity[T] {
	return Quantity[T]{value: value}
}

// Value returns the raw payload.
func (q Quantity[T]) Value() T { return q.value }

// Unit returns the unit.
func (q Quantity[T]) Unit() unit.Unit { return q.unit }

// Scalar returns the plain number a dimensionless quantity stands for.
// A unit such as cm m^-1 carries its own scale, so 1 cm/m is 0.01.
func (q Quantity[T]) Scalar() (T, error) {
	if !q.unit.IsDimensionless() {
		var zero T
		return zero, errors.Wrapf(errors.ErrNotDimensionless, "%s", q)
	}
	if q.unit.IsHeterogeneous() {
		plain, err := Convert(q, unit.Dimensionless())
		if err != nil {
			var zero T
			return zero, errors.Wrapf(err, "%s", q)
		}
		return plain.value, nil
	}
	return q.value, nil
}

// String renders the value and the unit symbols, e.g. "1.5 m g".
func (q Quantity[T]) String() string {
	return FormatValue(q.value, -1) + " " + q.unit.String()
}

// sameUnit checks the precondition of addition and comparison.
func sameUnit(op string, a, b unit.Unit) error {
	if !a.Dimension().Equal(b.Dimension()) {
		return errors.NewDimensionMismatch(op, a.Dimension(), b.Dimension())
	}
	if !a.Identical(b) {
		return errors.NewSystemMismatch(op, a, b)
	}
	return nil
}

// Add sums two quantities of the identical unit.
func (q Quantity[T]) Add(o Quantity[T]) (Quantity[T], error) {
	if err := sameUnit("add", q.unit, o.unit); err != nil {
		return Quantity[T]{}, err
	}
	return Quantity[T]{unit: q.unit, value: q.value + o.value}, nil
}

// Sub subtracts two quantities of the identical unit.
func (q Quantity[T]) Sub(o Quantity[T]) (Quantity[T], error) {
	if err := sameUnit("subtract", q.unit, o.unit); err != nil {
		return Quantity[T]{}, err
	}
	return Quantity[T]{unit: q.unit, value: q.value - o.value}, nil
}

// Mul multiplies values and units.
func (q Quantity[T]) Mul(o Quantity[T]) Quantity[T] {
	return Quantity[T]{unit: q.unit.Mul(o.unit), value: q.value * o.value}
}

// Div divides values and units.
func (q Quantity[T]) Div(o Quantity[T]) Quantity[T] {
	return Quantity[T]{unit: q.unit.Div(o.unit), value: q.value / o.value}
}

// Scale multiplies the value by a plain number.
func (q Quantity[T]) Scale(k T) Quantity[T] {
	return Quantity[T]{unit: q.unit, value: q.value * k}
}

// Neg negates the value.
func (q Quantity[T]) Neg() Quantity[T] {
	return Quantity[T]{unit: q.unit, value: -q.value}
}

// AddAssign adds o to q in place.
func (q *Quantity[T]) AddAssign(o Quantity[T]) error {
	sum, err := q.Add(o)
	if err != nil {
		return err
	}
	*q = sum
	return nil
}

// SubAssign subtracts o from q in place.
func (q *Quantity[T]) SubAssign(o Quantity[T]) error {
	diff, err := q.Sub(o)
	if err != nil {
		return err
	}
	*q = diff
	return nil
}

// MulAssign multiplies q by a dimensionless o in place. The unit of q
// cannot change, so a dimensioned o is an error.
func (q *Quantity[T]) MulAssign(o Quantity[T]) error {
	k, err := o.Scalar()
	if err != nil {
		return errors.Wrap(err, "multiply in place")
	}
	q.value *= k
	return nil
}

// DivAssign divides q by a dimensionless o in place.
func (q *Quantity[T]) DivAssign(o Quantity[T]) error {
	k, err := o.Scalar()
	if err != nil {
		return errors.Wrap(err, "divide in place")
	}
	q.value /= k
	return nil
}

// Equal compares two quantities of the identical unit.
func (q Quantity[T]) Equal(o Quantity[T]) (bool, error) {
	if err := sameUnit("compare", q.unit, o.unit); err != nil {
		return false, err
	}
	return q.value == o.value, nil
}

// Compare orders two real quantities of the identical unit, returning -1,
// 0 or +1.
func Compare[T Real](a, b Quantity[T]) (int, error) {
	if err := sameUnit("compare", a.unit, b.unit); err != nil {
		return 0, err
	}
	switch {
	case a.value < b.value:
		return -1, nil
	case a.value > b.value:
		return 1, nil
	default:
		return 0, nil
	}
}

// Less reports whether a < b.
func Less[T Real](a, b Quantity[T]) (bool, error) {
	c, err := Compare(a, b)
	return c < 0, err
}
