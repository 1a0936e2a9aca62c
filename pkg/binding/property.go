package binding

import (
	"math"
	"reflect"

	"github.com/mandelsoft/goutils/generics"

	"github.com/mandelsoft/drivebind/pkg/native"
)

// Value is the marshaled result of a property read.
// Absent values (native null) have Present set to false.
type Value struct {
	Name    string
	Shape   Shape
	Present bool

	Scalar any
	Object Object
	List   []Object
}

func property(o Object, name string, shape Shape) (*TypeInfo, *PropertyInfo, error) {
	info, err := check(o)
	if err != nil {
		return nil, nil, err
	}
	p := info.Property(name)
	if p == nil {
		return nil, nil, &PropertyError{Type: info.name, Property: name, Err: ErrNoSuchProperty}
	}
	if shape != "" && p.Shape != shape {
		return nil, nil, &PropertyError{Type: info.name, Property: name, Err: ErrShapeMismatch}
	}
	return info, p, nil
}

// ReadProperty reads a property of any shape.
func ReadProperty(o Object, name string) (Value, error) {
	_, p, err := property(o, name, "")
	if err != nil {
		return Value{}, err
	}

	v := Value{Name: name, Shape: p.Shape}
	switch p.Shape {
	case SHAPE_SCALAR:
		v.Scalar, v.Present, err = readScalar(o, p)
	case SHAPE_OBJECT:
		v.Object, v.Present, err = readObject(o, p)
	case SHAPE_LIST:
		v.List, v.Present, err = readList(o, p)
	}
	if err != nil {
		return Value{}, err
	}
	return v, nil
}

// Scalar reads a scalar property and converts it to T.
func Scalar[T any](o Object, name string) (T, bool, error) {
	var _nil T

	info, p, err := property(o, name, SHAPE_SCALAR)
	if err != nil {
		return _nil, false, err
	}
	v, ok, err := readScalar(o, p)
	if err != nil || !ok {
		return _nil, false, err
	}
	r, ok := convert[T](v)
	if !ok {
		return _nil, false, &MarshalError{Type: info.name, Property: name, Value: v, Target: generics.TypeOf[T]().String()}
	}
	return r, true, nil
}

// Child reads an object valued property. The result is wrapped into the
// most specific wrapper for the runtime type of the child.
func Child(o Object, name string) (Object, bool, error) {
	_, p, err := property(o, name, SHAPE_OBJECT)
	if err != nil {
		return nil, false, err
	}
	return readObject(o, p)
}

// List reads a collection valued property. A null collection is
// absent, an empty one yields an empty, non-nil slice. Every element
// is wrapped separately.
func List(o Object, name string) ([]Object, bool, error) {
	_, p, err := property(o, name, SHAPE_LIST)
	if err != nil {
		return nil, false, err
	}
	return readList(o, p)
}

func readScalar(o Object, p *PropertyInfo) (any, bool, error) {
	v, err := o.Handle().Field(p.Field)
	if err != nil {
		return nil, false, err
	}
	if native.IsNull(v) {
		return nil, false, nil
	}
	return v, true, nil
}

func readObject(o Object, p *PropertyInfo) (Object, bool, error) {
	h, err := o.Handle().Object(p.Field)
	if err != nil {
		return nil, false, err
	}
	if native.IsNull(h) {
		return nil, false, nil
	}
	c, err := Wrap(p.elements(), p.Type, h)
	if err != nil {
		return nil, false, err
	}
	return c, true, nil
}

func readList(o Object, p *PropertyInfo) ([]Object, bool, error) {
	c, err := o.Handle().Collection(p.Field)
	if err != nil {
		return nil, false, err
	}
	if native.IsNull(c) {
		return nil, false, nil
	}

	r := make([]Object, c.Len())
	for i := range r {
		h, err := c.Element(i)
		if err != nil {
			return nil, false, err
		}
		if native.IsNull(h) {
			// null elements keep their position
			continue
		}
		r[i], err = Wrap(p.elements(), p.Type, h)
		if err != nil {
			return nil, false, err
		}
	}
	return r, true, nil
}

func convert[T any](v any) (T, bool) {
	var _nil T

	if t, ok := v.(T); ok {
		return t, true
	}
	tt := generics.TypeOf[T]()
	rv := reflect.ValueOf(v)
	switch {
	case isNumber(tt.Kind()) && isNumber(rv.Kind()):
		if !representable(rv, tt) {
			return _nil, false
		}
		return rv.Convert(tt).Interface().(T), true
	case tt.Kind() == reflect.String && rv.Kind() == reflect.String:
		return rv.Convert(tt).Interface().(T), true
	case tt.Kind() == reflect.Bool && rv.Kind() == reflect.Bool:
		return rv.Convert(tt).Interface().(T), true
	}
	return _nil, false
}

// representable reports whether the numeric value v can be converted
// to t without changing its value beyond float rounding.
func representable(v reflect.Value, t reflect.Type) bool {
	z := reflect.Zero(t)
	switch {
	case isSigned(v.Kind()):
		i := v.Int()
		switch {
		case isSigned(t.Kind()):
			return !z.OverflowInt(i)
		case isUnsigned(t.Kind()):
			return i >= 0 && !z.OverflowUint(uint64(i))
		}
		return !z.OverflowFloat(float64(i))
	case isUnsigned(v.Kind()):
		u := v.Uint()
		switch {
		case isSigned(t.Kind()):
			return u <= math.MaxInt64 && !z.OverflowInt(int64(u))
		case isUnsigned(t.Kind()):
			return !z.OverflowUint(u)
		}
		return !z.OverflowFloat(float64(u))
	}

	f := v.Float()
	switch {
	case isSigned(t.Kind()):
		return f == math.Trunc(f) && f >= -(1<<63) && f < 1<<63 && !z.OverflowInt(int64(f))
	case isUnsigned(t.Kind()):
		return f == math.Trunc(f) && f >= 0 && f < 1<<64 && !z.OverflowUint(uint64(f))
	}
	return !z.OverflowFloat(f)
}

func isSigned(k reflect.Kind) bool {
	return k >= reflect.Int && k <= reflect.Int64
}

func isUnsigned(k reflect.Kind) bool {
	return k >= reflect.Uint && k <= reflect.Uint64
}

func isInt(k reflect.Kind) bool {
	return k >= reflect.Int && k <= reflect.Uint64
}

func isFloat(k reflect.Kind) bool {
	return k == reflect.Float32 || k == reflect.Float64
}

func isNumber(k reflect.Kind) bool {
	return isInt(k) || isFloat(k)
}
