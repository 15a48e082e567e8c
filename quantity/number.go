package quantity

import (
	"math"
	"math/cmplx"
	"reflect"
	"strconv"

	"github.com/teranos/dims/errors"
	"github.com/teranos/dims/rational"
)

// Number is any value type a Quantity can carry, including named types
// such as `type Meters float64`.
type Number interface {
	Real | ~complex64 | ~complex128
}

// Real is the ordered subset of Number.
type Real interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Powerer lets a value type supply its own power and root, for payloads
// where math.Pow is wrong (measurements with uncertainty, exact
// arithmetic).
type Powerer[T any] interface {
	Power(r rational.Rational) T
}

// affine returns v*scale + offset in v's own type. Integer payloads are
// rounded to the nearest integer and clamped to the type's range, so an
// unsigned value that would go negative becomes 0.
func affine[T Number](v T, scale, offset float64) T {
	if scale == 1 && offset == 0 {
		return v
	}
	rv := reflect.ValueOf(v)
	out := reflect.New(rv.Type()).Elem()
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		out.SetInt(toInt(float64(rv.Int())*scale+offset, rv.Type().Bits()))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		out.SetUint(toUint(float64(rv.Uint())*scale+offset, rv.Type().Bits()))
	case reflect.Float32, reflect.Float64:
		out.SetFloat(rv.Float()*scale + offset)
	case reflect.Complex64, reflect.Complex128:
		out.SetComplex(rv.Complex()*complex(scale, 0) + complex(offset, 0))
	}
	return out.Interface().(T)
}

// power raises v to r, preferring the value type's own Power method.
// Integer results are rounded and clamped like affine.
func power[T Number](v T, r rational.Rational) T {
	if p, ok := any(v).(Powerer[T]); ok {
		return p.Power(r)
	}
	e := r.Float64()
	rv := reflect.ValueOf(v)
	out := reflect.New(rv.Type()).Elem()
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		out.SetInt(toInt(math.Pow(float64(rv.Int()), e), rv.Type().Bits()))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		out.SetUint(toUint(math.Pow(float64(rv.Uint()), e), rv.Type().Bits()))
	case reflect.Float32, reflect.Float64:
		out.SetFloat(math.Pow(rv.Float(), e))
	case reflect.Complex64, reflect.Complex128:
		out.SetComplex(cmplx.Pow(rv.Complex(), complex(e, 0)))
	}
	return out.Interface().(T)
}

// toInt rounds f into a signed integer of the given bit size.
// NaN becomes 0.
func toInt(f float64, bits int) int64 {
	f = math.Round(f)
	hi := math.Ldexp(1, bits-1)
	switch {
	case math.IsNaN(f):
		return 0
	case f >= hi:
		return math.MaxInt64 >> (64 - bits)
	case f < -hi:
		return math.MinInt64 >> (64 - bits)
	}
	return int64(f)
}

// toUint rounds f into an unsigned integer of the given bit size.
// Negative values and NaN become 0.
func toUint(f float64, bits int) uint64 {
	f = math.Round(f)
	switch {
	case math.IsNaN(f) || f <= 0:
		return 0
	case f >= math.Ldexp(1, bits):
		return math.MaxUint64 >> (64 - bits)
	}
	return uint64(f)
}

func isComplex(k reflect.Kind) bool {
	return k == reflect.Complex64 || k == reflect.Complex128
}

// castValue converts between payload types with Go's conversion rules.
// Complex to real is refused.
func castValue[T, U Number](v U) (T, error) {
	var zero T
	in := reflect.ValueOf(v)
	outType := reflect.TypeOf(zero)
	if isComplex(in.Kind()) && !isComplex(outType.Kind()) {
		return zero, errors.Wrapf(errors.ErrValueType, "cannot convert %s to %s", in.Type(), outType)
	}
	if isComplex(outType.Kind()) && !isComplex(in.Kind()) {
		f, _ := Float64(v)
		out := reflect.New(outType).Elem()
		out.SetComplex(complex(f, 0))
		return out.Interface().(T), nil
	}
	return in.Convert(outType).Interface().(T), nil
}

// Float64 returns v as a float64. It reports false for complex values.
func Float64[T Number](v T) (float64, bool) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	default:
		return 0, false
	}
}

// FormatValue renders v; prec follows strconv.FormatFloat.
func FormatValue[T Number](v T, prec int) string {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(rv.Uint(), 10)
	case reflect.Float32:
		return strconv.FormatFloat(rv.Float(), 'g', prec, 32)
	case reflect.Float64:
		return strconv.FormatFloat(rv.Float(), 'g', prec, 64)
	case reflect.Complex64:
		return strconv.FormatComplex(rv.Complex(), 'g', prec, 64)
	default:
		return strconv.FormatComplex(rv.Complex(), 'g', prec, 128)
	}
}
