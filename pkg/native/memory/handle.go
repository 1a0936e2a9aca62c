package memory

import (
	"fmt"
	"slices"

	"github.com/mandelsoft/drivebind/pkg/metadata"
	"github.com/mandelsoft/drivebind/pkg/native"
)

type handle struct {
	space *Space
	obj   *object
}

var (
	_ native.Handle      = (*handle)(nil)
	_ native.TypeChecker = (*handle)(nil)
	_ native.Lineage     = (*handle)(nil)
	_ native.Validator   = (*handle)(nil)
)

func (h *handle) TypeName() string {
	return h.obj.typ
}

func (h *handle) Identity() string {
	return h.obj.id
}

func (h *handle) Valid() bool {
	h.space.lock.RLock()
	defer h.space.lock.RUnlock()
	return h.obj.valid
}

func (h *handle) access(name string, shape metadata.Shape) error {
	if !h.obj.valid {
		return fmt.Errorf("%w: %q", native.ErrInvalidHandle, h.obj.id)
	}
	_, err := h.space.field(h.obj.typ, name, shape)
	return err
}

func (h *handle) Field(name string) (any, error) {
	h.space.lock.RLock()
	defer h.space.lock.RUnlock()

	if err := h.access(name, metadata.SHAPE_SCALAR); err != nil {
		return nil, err
	}
	return h.obj.fields[name], nil
}

func (h *handle) Object(name string) (native.Handle, error) {
	h.space.lock.RLock()
	defer h.space.lock.RUnlock()

	if err := h.access(name, metadata.SHAPE_OBJECT); err != nil {
		return nil, err
	}
	ref := h.obj.objects[name]
	if ref == "" {
		return nil, nil
	}
	return h.space.handle(ref)
}

func (h *handle) Collection(name string) (native.Collection, error) {
	h.space.lock.RLock()
	defer h.space.lock.RUnlock()

	if err := h.access(name, metadata.SHAPE_LIST); err != nil {
		return nil, err
	}
	refs := h.obj.collections[name]
	if refs == nil {
		return nil, nil
	}
	return &collection{space: h.space, refs: slices.Clone(refs)}, nil
}

func (h *handle) IsInstanceOf(typ string) (bool, error) {
	if !h.Valid() {
		return false, fmt.Errorf("%w: %q", native.ErrInvalidHandle, h.obj.id)
	}
	return h.space.graph.IsA(h.obj.typ, typ), nil
}

func (h *handle) TypeLineage() ([]string, error) {
	if !h.Valid() {
		return nil, fmt.Errorf("%w: %q", native.ErrInvalidHandle, h.obj.id)
	}
	return append([]string{h.obj.typ}, h.space.graph.Ancestors(h.obj.typ)...), nil
}

func (h *handle) String() string {
	return fmt.Sprintf("%s[%s]", h.obj.typ, h.obj.id)
}

type collection struct {
	space *Space
	refs  []string
}

var _ native.Collection = (*collection)(nil)

func (c *collection) Len() int {
	return len(c.refs)
}

func (c *collection) Element(i int) (native.Handle, error) {
	if c.refs[i] == "" {
		return nil, nil
	}
	return c.space.Lookup(c.refs[i])
}
