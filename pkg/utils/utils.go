package utils

import (
	"reflect"
	"slices"
)

// OptionalDefaulted returns the first non-zero optional argument
// or the given default.
func OptionalDefaulted[T any](def T, args ...T) T {
	var _nil T
	for _, e := range args {
		if !reflect.DeepEqual(e, _nil) {
			return e
		}
	}
	return def
}

// Cycle returns the cycle closed by id on the given visit stack
// or nil if id is not on the stack.
func Cycle[T comparable](id T, stack ...T) []T {
	i := slices.Index(stack, id)
	if i < 0 {
		return nil
	}
	return append(slices.Clone(stack[i:]), id)
}
