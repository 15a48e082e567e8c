package quantity

import (
	"encoding/json"
	"reflect"

	"gopkg.in/yaml.v3"

	"github.com/teranos/dims/errors"
)

// The unit is not serialized: both ends are expected to agree on it, so
// only the raw payload is written and read back into the receiver's unit.
// Complex payloads travel as a [re, im] pair.

// wire returns the value to encode in place of v.
func wire[T Number](v T) interface{} {
	rv := reflect.ValueOf(v)
	if isComplex(rv.Kind()) {
		c := rv.Complex()
		return [2]float64{real(c), imag(c)}
	}
	return v
}

// decodeValue fills a T through decode, reading a [re, im] pair for complex
// types.
func decodeValue[T Number](decode func(interface{}) error) (T, error) {
	var v T
	rv := reflect.ValueOf(&v).Elem()
	if !isComplex(rv.Kind()) {
		err := decode(&v)
		return v, err
	}
	var pair [2]float64
	if err := decode(&pair); err != nil {
		return v, err
	}
	rv.SetComplex(complex(pair[0], pair[1]))
	return v, nil
}

// MarshalJSON writes the raw value.
func (q Quantity[T]) MarshalJSON() ([]byte, error) {
	data, err := json.Marshal(wire(q.value))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal %s", q.unit)
	}
	return data, nil
}

// UnmarshalJSON reads the raw value, keeping the receiver's unit.
func (q *Quantity[T]) UnmarshalJSON(data []byte) error {
	v, err := decodeValue[T](func(out interface{}) error {
		return json.Unmarshal(data, out)
	})
	if err != nil {
		return errors.Wrapf(err, "failed to unmarshal value for %s", q.unit)
	}
	q.value = v
	return nil
}

// MarshalYAML writes the raw value.
func (q Quantity[T]) MarshalYAML() (interface{}, error) {
	return wire(q.value), nil
}

// UnmarshalYAML reads the raw value, keeping the receiver's unit.
func (q *Quantity[T]) UnmarshalYAML(node *yaml.Node) error {
	v, err := decodeValue[T](node.Decode)
	if err != nil {
		return errors.Wrapf(err, "failed to unmarshal value for %s", q.unit)
	}
	q.value = v
	return nil
}
