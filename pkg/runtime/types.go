package runtime

import (
	"fmt"
	"sort"
	"sync"
)

// Factory creates an object of a registered type from a
// creation argument.
type Factory[T any, A any] func(arg A) (T, error)

// SchemeTypes is a set of type definitions
// mapping type names to factories.
// This mapping is used to provide a simple
// object creation by type name.
type SchemeTypes[T any, A any] interface {
	TypeNames() []string
	HasType(t string) bool
	CreateObject(typ string, arg A) (T, error)
}

// TypeScheme is a set types with a registration possibility.
type TypeScheme[T any, A any] interface {
	SchemeTypes[T, A]

	Register(name string, f Factory[T, A]) error
}

type types[T any, A any] struct {
	lock      sync.RWMutex
	factories map[string]Factory[T, A]
}

var _ TypeScheme[any, any] = (*types[any, any])(nil)

func NewTypeScheme[T any, A any]() TypeScheme[T, A] {
	return &types[T, A]{factories: map[string]Factory[T, A]{}}
}

func (s *types[T, A]) Register(name string, f Factory[T, A]) error {
	if f == nil {
		return fmt.Errorf("factory for %s must not be nil", name)
	}

	s.lock.Lock()
	defer s.lock.Unlock()

	if s.factories[name] != nil {
		return fmt.Errorf("type %q already registered", name)
	}
	s.factories[name] = f
	return nil
}

func (s *types[T, A]) HasType(t string) bool {
	s.lock.RLock()
	defer s.lock.RUnlock()
	return s.factories[t] != nil
}

func (s *types[T, A]) CreateObject(typ string, arg A) (T, error) {
	var _nil T

	s.lock.RLock()
	f := s.factories[typ]
	s.lock.RUnlock()

	if f == nil {
		return _nil, fmt.Errorf("unknown object type %q", typ)
	}
	return f(arg)
}

func (s *types[T, A]) TypeNames() []string {
	var names []string

	s.lock.RLock()
	defer s.lock.RUnlock()

	for n := range s.factories {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
