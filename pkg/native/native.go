// Package native describes the contract a foreign runtime has to fulfill
// to be wrapped by the binding layer.
//
// A Handle is an opaque reference to an object living in the foreign
// runtime. The binding layer never owns the lifetime of the referenced
// object, it only reads type information, fields and collections.
package native

import (
	"errors"
	"reflect"

	"github.com/modern-go/reflect2"
)

var (
	// ErrInvalidHandle is reported by a runtime for handles
	// invalidated out of band.
	ErrInvalidHandle = errors.New("native handle invalidated")
	// ErrUnknownField is reported for field names not declared by the
	// runtime type of a handle.
	ErrUnknownField = errors.New("unknown native field")
	// ErrNotFound is reported by a Space for unknown object identities.
	ErrNotFound = errors.New("native object not found")
)

// Handle is a reference to a native object.
type Handle interface {
	// TypeName returns the exact runtime type name.
	TypeName() string
	// Identity returns an identity stable for the lifetime of the handle.
	Identity() string

	// Field reads a scalar field. A nil value means null.
	Field(name string) (any, error)
	// Object reads an object valued field. A nil handle means null.
	Object(name string) (Handle, error)
	// Collection reads a collection valued field. A nil collection
	// means null, an existing collection may be empty.
	Collection(name string) (Collection, error)
}

// Collection is a native homogeneous collection.
type Collection interface {
	Len() int
	Element(i int) (Handle, error)
}

// TypeChecker is an optional Handle interface provided by runtimes
// able to answer type compatibility questions for their objects.
type TypeChecker interface {
	IsInstanceOf(typ string) (bool, error)
}

// Lineage is an optional Handle interface providing the runtime type
// followed by all its ancestors, nearest first.
type Lineage interface {
	TypeLineage() ([]string, error)
}

// Validator is an optional Handle interface reporting whether
// a handle is still usable.
type Validator interface {
	Valid() bool
}

// Space gives access to the objects of a native runtime.
type Space interface {
	Lookup(id string) (Handle, error)
	Roots() ([]Handle, error)
}

// IsNull reports whether a value returned by a native runtime
// represents null. Typed nil values of all nilable kinds count as null.
func IsNull(v any) bool {
	if reflect2.IsNil(v) {
		return true
	}
	switch rv := reflect.ValueOf(v); rv.Kind() {
	case reflect.Slice, reflect.Map, reflect.Func, reflect.Chan, reflect.Pointer, reflect.Interface, reflect.UnsafePointer:
		return rv.IsNil()
	}
	return false
}

// SliceCollection is a Collection backed by a slice of handles.
type SliceCollection []Handle

var _ Collection = SliceCollection(nil)

func (c SliceCollection) Len() int {
	return len(c)
}

func (c SliceCollection) Element(i int) (Handle, error) {
	return c[i], nil
}
