package testtypes

import (
	"slices"

	"github.com/mandelsoft/drivebind/pkg/native"
)

// Handle is a plain native handle without any optional
// runtime capabilities. Unset fields are null.
type Handle struct {
	Id          string
	Type        string
	Fields      map[string]any
	Objects     map[string]native.Handle
	Collections map[string]native.Collection
	// Fault is returned by all accessors if set.
	Fault error
}

var _ native.Handle = (*Handle)(nil)

func NewHandle(id, typ string) *Handle {
	return &Handle{
		Id:          id,
		Type:        typ,
		Fields:      map[string]any{},
		Objects:     map[string]native.Handle{},
		Collections: map[string]native.Collection{},
	}
}

func (h *Handle) TypeName() string {
	return h.Type
}

func (h *Handle) Identity() string {
	return h.Id
}

func (h *Handle) Field(name string) (any, error) {
	if h.Fault != nil {
		return nil, h.Fault
	}
	return h.Fields[name], nil
}

func (h *Handle) Object(name string) (native.Handle, error) {
	if h.Fault != nil {
		return nil, h.Fault
	}
	return h.Objects[name], nil
}

func (h *Handle) Collection(name string) (native.Collection, error) {
	if h.Fault != nil {
		return nil, h.Fault
	}
	return h.Collections[name], nil
}

////////////////////////////////////////////////////////////////////////////////

// CheckedHandle answers type compatibility questions
// based on an explicit list of native types.
type CheckedHandle struct {
	*Handle
	Types []string
}

var _ native.TypeChecker = (*CheckedHandle)(nil)

func (h *CheckedHandle) IsInstanceOf(typ string) (bool, error) {
	return typ == h.Type || slices.Contains(h.Types, typ), nil
}

////////////////////////////////////////////////////////////////////////////////

// LineageHandle provides the native type lineage. The runtime
// type is typically not known to the wrapper registry.
type LineageHandle struct {
	*Handle
	Lineage []string
}

var _ native.Lineage = (*LineageHandle)(nil)

func (h *LineageHandle) TypeLineage() ([]string, error) {
	return append([]string{h.Type}, h.Lineage...), nil
}

////////////////////////////////////////////////////////////////////////////////

// DisposableHandle reports its validity.
type DisposableHandle struct {
	*Handle
	Disposed bool
}

var _ native.Validator = (*DisposableHandle)(nil)

func (h *DisposableHandle) Valid() bool {
	return !h.Disposed
}
