// Package binding maps handles of a native object model onto Go wrappers.
//
// Every wrapper holds exactly one native handle and is typed by a
// declared wrapper type. The relation between wrapper types is not
// expressed by Go embedding but by a static cast table kept in a
// Registry: a view may be reinterpreted as any ancestor of its type and
// as any descendant compatible with the runtime type of its handle.
//
// Properties are read from the native object on every access. Null values
// are reported as absent, collections are marshaled into freshly created
// wrappers selected by the runtime type of each element.
package binding

import (
	"fmt"

	"github.com/mandelsoft/goutils/generics"

	"github.com/mandelsoft/drivebind/pkg/native"
)

// Object is the common interface of all wrappers.
type Object interface {
	Handle() native.Handle
	Type() *TypeInfo
	TypeName() string
}

// Base is the immutable core of every wrapper. It is embedded by the
// generated wrapper types and can only be obtained from a Registry.
type Base struct {
	info   *TypeInfo
	handle native.Handle
}

var _ Object = Base{}

// Handle returns the wrapped native handle.
func (b Base) Handle() native.Handle {
	return b.handle
}

// Type returns the declared wrapper type.
func (b Base) Type() *TypeInfo {
	return b.info
}

// TypeName returns the name of the declared wrapper type.
func (b Base) TypeName() string {
	if b.info == nil {
		return ""
	}
	return b.info.name
}

// RuntimeType returns the native runtime type name of the handle.
func (b Base) RuntimeType() string {
	if b.handle == nil {
		return ""
	}
	return b.handle.TypeName()
}

func (b Base) String() string {
	if b.info == nil {
		return "<uninitialized>"
	}
	return fmt.Sprintf("%s[%s]", b.info.name, b.handle.Identity())
}

func check(o Object) (*TypeInfo, error) {
	if o == nil || native.IsNull(o) {
		return nil, ErrUninitialized
	}
	info := o.Type()
	if info == nil || native.IsNull(o.Handle()) {
		return nil, ErrUninitialized
	}
	return info, nil
}

func (r *Registry) create(t *TypeInfo, h native.Handle) (Object, error) {
	return r.scheme.CreateObject(t.name, Base{info: t, handle: h})
}

// New wraps a handle into a view of the given type. The type of the
// handle is not validated beyond what the native runtime provides by
// implementing native.TypeChecker.
func New(r *Registry, typ string, h native.Handle) (Object, error) {
	if native.IsNull(h) {
		return nil, ErrNilHandle
	}
	t, err := r.lookup(typ)
	if err != nil {
		return nil, err
	}
	err = checkInstance(h, typ)
	if err != nil {
		return nil, err
	}
	return r.create(t, h)
}

// NewAs is New for a statically known wrapper type.
func NewAs[T Object](r *Registry, typ string, h native.Handle) (T, error) {
	var _nil T

	o, err := New(r, typ, h)
	if err != nil {
		return _nil, err
	}
	return as[T](o)
}

// Wrap wraps a handle into the most specific registered wrapper type
// compatible with the declared type. The runtime type of the handle is
// used if it is registered, otherwise the first registered entry of
// its native type lineage. If nothing more specific is known the
// declared type is used.
func Wrap(r *Registry, declared string, h native.Handle) (Object, error) {
	if native.IsNull(h) {
		return nil, ErrNilHandle
	}
	d, err := r.lookup(declared)
	if err != nil {
		return nil, err
	}
	t, err := r.specific(d, h)
	if err != nil {
		return nil, err
	}
	if t == d {
		err = checkInstance(h, declared)
		if err != nil {
			return nil, err
		}
	}
	return r.create(t, h)
}

func (r *Registry) specific(declared *TypeInfo, h native.Handle) (*TypeInfo, error) {
	if t := r.types[h.TypeName()]; t != nil && t.IsA(declared.name) {
		return t, nil
	}
	if l, ok := h.(native.Lineage); ok {
		names, err := l.TypeLineage()
		if err != nil {
			return nil, err
		}
		for _, n := range names {
			if t := r.types[n]; t != nil && t.IsA(declared.name) {
				return t, nil
			}
		}
	}
	return declared, nil
}

func checkInstance(h native.Handle, typ string) error {
	c, ok := h.(native.TypeChecker)
	if !ok {
		return nil
	}
	ok, err := c.IsInstanceOf(typ)
	if err != nil {
		return err
	}
	if !ok {
		return &TypeMismatchError{Declared: typ, Runtime: h.TypeName()}
	}
	return nil
}

func as[T Object](o Object) (T, error) {
	var _nil T

	t, ok := generics.TryCast[T](o)
	if !ok {
		return _nil, fmt.Errorf("wrapper for %q is %T, not %s", o.TypeName(), o, generics.TypeOf[T]())
	}
	return t, nil
}

// SameHandle reports whether two views refer to the same native object.
func SameHandle(a, b Object) bool {
	if _, err := check(a); err != nil {
		return false
	}
	if _, err := check(b); err != nil {
		return false
	}
	return a.Handle().Identity() == b.Handle().Identity()
}

// Disposed reports whether the handle of a view has been invalidated
// by the native runtime. Handles without validity information are
// considered usable.
func Disposed(o Object) bool {
	if _, err := check(o); err != nil {
		return true
	}
	if v, ok := o.Handle().(native.Validator); ok {
		return !v.Valid()
	}
	return false
}
