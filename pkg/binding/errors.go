package binding

import (
	"errors"
	"fmt"
)

var (
	ErrNilHandle               = errors.New("nil native handle")
	ErrUninitialized           = errors.New("uninitialized wrapper")
	ErrUnknownType             = errors.New("unknown wrapper type")
	ErrTypeMismatch            = errors.New("native type mismatch")
	ErrNoSuchCast              = errors.New("no such cast")
	ErrIncompatibleRuntimeType = errors.New("incompatible runtime type")
	ErrNoSuchProperty          = errors.New("no such property")
	ErrShapeMismatch           = errors.New("property shape mismatch")
	ErrMarshal                 = errors.New("cannot marshal native value")
)

// UnknownTypeError is returned for type names not present in a registry.
type UnknownTypeError struct {
	Registry string
	Type     string
}

func (e *UnknownTypeError) Error() string {
	return fmt.Sprintf("%s: %q in registry %q", ErrUnknownType, e.Type, e.Registry)
}

func (e *UnknownTypeError) Unwrap() error {
	return ErrUnknownType
}

// TypeMismatchError is returned if the native runtime reports a handle
// not to be compatible with the type of the requested wrapper.
type TypeMismatchError struct {
	Declared string
	Runtime  string
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("%s: handle of type %q is no %q", ErrTypeMismatch, e.Runtime, e.Declared)
}

func (e *TypeMismatchError) Unwrap() error {
	return ErrTypeMismatch
}

// CastError is returned for a failed cast. It always names the
// requested target type.
type CastError struct {
	Source  string
	Target  string
	Runtime string
	Err     error
}

func (e *CastError) Error() string {
	if errors.Is(e.Err, ErrIncompatibleRuntimeType) {
		return fmt.Sprintf("cannot cast %s to %q: %s %q", e.Source, e.Target, e.Err, e.Runtime)
	}
	return fmt.Sprintf("cannot cast %s to %q: %s", e.Source, e.Target, e.Err)
}

func (e *CastError) Unwrap() error {
	return e.Err
}

// PropertyError is returned for property access failures
// detected by the binding layer. It always names the property.
type PropertyError struct {
	Type     string
	Property string
	Err      error
}

func (e *PropertyError) Error() string {
	return fmt.Sprintf("property %q of %s: %s", e.Property, e.Type, e.Err)
}

func (e *PropertyError) Unwrap() error {
	return e.Err
}

// MarshalError is returned if a native scalar cannot be converted
// to the declared Go type.
type MarshalError struct {
	Type     string
	Property string
	Value    any
	Target   string
}

func (e *MarshalError) Error() string {
	return fmt.Sprintf("property %q of %s: %s %T(%v) to %s", e.Property, e.Type, ErrMarshal, e.Value, e.Value, e.Target)
}

func (e *MarshalError) Unwrap() error {
	return ErrMarshal
}
