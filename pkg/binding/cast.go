package binding

import (
	"fmt"
	"slices"

	"github.com/mandelsoft/drivebind/pkg/native"
)

// Cast reinterprets a view as another type of its cast table.
// Casting to the declared type returns the view itself, casting
// to an ancestor always succeeds and casting to a descendant succeeds
// only if the runtime type of the handle is compatible. Every call is a
// single lookup in the cast table of the view's declared type.
// Views of invalidated handles cannot be cast, the native fault
// native.ErrInvalidHandle is returned.
func Cast(o Object, target string) (Object, error) {
	info, err := check(o)
	if err != nil {
		return nil, err
	}
	if target == info.name {
		return o, nil
	}
	if v, ok := o.Handle().(native.Validator); ok && !v.Valid() {
		return nil, fmt.Errorf("%w: %q", native.ErrInvalidHandle, o.Handle().Identity())
	}

	r := info.registry
	switch info.relation(target) {
	case relAncestor:
		return r.create(r.types[target], o.Handle())
	case relDescendant:
		ok, err := compatible(r, o.Handle(), target)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, &CastError{Source: info.name, Target: target, Runtime: o.Handle().TypeName(), Err: ErrIncompatibleRuntimeType}
		}
		return r.create(r.types[target], o.Handle())
	default:
		return nil, &CastError{Source: info.name, Target: target, Err: ErrNoSuchCast}
	}
}

// CastTo is Cast for a statically known wrapper type.
func CastTo[T Object](o Object, target string) (T, error) {
	var _nil T

	c, err := Cast(o, target)
	if err != nil {
		return _nil, err
	}
	return as[T](c)
}

// CanCast reports whether target is part of the cast table of the
// view's declared type. It does not check runtime compatibility.
func CanCast(o Object, target string) bool {
	info, err := check(o)
	if err != nil {
		return false
	}
	return target == info.name || info.relation(target) != relNone
}

func compatible(r *Registry, h native.Handle, target string) (bool, error) {
	if c, ok := h.(native.TypeChecker); ok {
		return c.IsInstanceOf(target)
	}
	if t := r.types[h.TypeName()]; t != nil {
		return t.IsA(target), nil
	}
	if l, ok := h.(native.Lineage); ok {
		names, err := l.TypeLineage()
		if err != nil {
			return false, err
		}
		return slices.Contains(names, target), nil
	}
	return false, nil
}
