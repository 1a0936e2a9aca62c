// Package memory provides an in-process native runtime.
//
// The runtime type system is derived from the native type metadata:
// every object has a type of the model, fields are the properties
// declared by the type or its ancestors.
package memory

import (
	"fmt"
	"maps"
	"slices"
	"sync"

	"github.com/mandelsoft/vfs/pkg/osfs"
	"github.com/mandelsoft/vfs/pkg/vfs"
	"sigs.k8s.io/yaml"

	"github.com/mandelsoft/drivebind/pkg/hierarchy"
	"github.com/mandelsoft/drivebind/pkg/metadata"
	"github.com/mandelsoft/drivebind/pkg/native"
	"github.com/mandelsoft/drivebind/pkg/utils"
)

type object struct {
	id    string
	typ   string
	root  bool
	valid bool

	fields      map[string]any
	objects     map[string]string
	collections map[string][]string
}

// Space is an object space of a native runtime.
type Space struct {
	lock    sync.RWMutex
	model   *metadata.Model
	graph   *hierarchy.Graph
	objects map[string]*object
	order   []string
}

var _ native.Space = (*Space)(nil)

// New creates an empty object space for the given metadata.
func New(m *metadata.Model) (*Space, error) {
	g, err := hierarchy.NewGraph(m)
	if err != nil {
		return nil, err
	}
	return &Space{
		model:   m,
		graph:   g,
		objects: map[string]*object{},
	}, nil
}

// Load reads an object space from a YAML file.
func Load(path string, m *metadata.Model, fss ...vfs.FileSystem) (*Space, error) {
	fs := utils.OptionalDefaulted(vfs.FileSystem(osfs.OsFs), fss...)

	data, err := vfs.ReadFile(fs, path)
	if err != nil {
		return nil, err
	}
	var spec SpaceSpec
	err = yaml.Unmarshal(data, &spec)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	s, err := New(m)
	if err != nil {
		return nil, err
	}
	for _, o := range spec.Objects {
		err = s.Add(o)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
	}
	err = s.Check()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	log.Debug("loaded {{amount}} objects from {{path}}", "amount", len(spec.Objects), "path", path)
	return s, nil
}

// Save writes the object space as YAML file.
func (s *Space) Save(path string, fss ...vfs.FileSystem) error {
	fs := utils.OptionalDefaulted(vfs.FileSystem(osfs.OsFs), fss...)

	data, err := yaml.Marshal(s.Spec())
	if err != nil {
		return err
	}
	log.Debug("saving {{amount}} objects to {{path}}", "amount", len(s.order), "path", path)
	return vfs.WriteFile(fs, path, data, 0o600)
}

// Spec returns the serialized form of the space.
func (s *Space) Spec() *SpaceSpec {
	s.lock.RLock()
	defer s.lock.RUnlock()

	spec := &SpaceSpec{}
	for _, id := range s.order {
		o := s.objects[id]
		spec.Objects = append(spec.Objects, ObjectSpec{
			Id:          o.id,
			Type:        o.typ,
			Root:        o.root,
			Fields:      maps.Clone(o.fields),
			Objects:     maps.Clone(o.objects),
			Collections: maps.Clone(o.collections),
		})
	}
	return spec
}

func (s *Space) Model() *metadata.Model {
	return s.model
}

// Graph returns the runtime type hierarchy.
func (s *Space) Graph() *hierarchy.Graph {
	return s.graph
}

// Add adds an object. References are checked by Check.
func (s *Space) Add(spec ObjectSpec) error {
	if spec.Id == "" {
		return fmt.Errorf("object id missing")
	}
	if s.model.GetType(spec.Type) == nil {
		return fmt.Errorf("object %q: unknown type %q", spec.Id, spec.Type)
	}
	for n := range spec.Fields {
		if _, err := s.field(spec.Type, n, metadata.SHAPE_SCALAR); err != nil {
			return fmt.Errorf("object %q: %w", spec.Id, err)
		}
	}
	for n := range spec.Objects {
		if _, err := s.field(spec.Type, n, metadata.SHAPE_OBJECT); err != nil {
			return fmt.Errorf("object %q: %w", spec.Id, err)
		}
	}
	for n := range spec.Collections {
		if _, err := s.field(spec.Type, n, metadata.SHAPE_LIST); err != nil {
			return fmt.Errorf("object %q: %w", spec.Id, err)
		}
	}

	s.lock.Lock()
	defer s.lock.Unlock()

	if s.objects[spec.Id] != nil {
		return fmt.Errorf("duplicate object %q", spec.Id)
	}
	s.objects[spec.Id] = &object{
		id:          spec.Id,
		typ:         spec.Type,
		root:        spec.Root,
		valid:       true,
		fields:      utils.OptionalDefaulted(map[string]any{}, maps.Clone(spec.Fields)),
		objects:     utils.OptionalDefaulted(map[string]string{}, maps.Clone(spec.Objects)),
		collections: utils.OptionalDefaulted(map[string][]string{}, maps.Clone(spec.Collections)),
	}
	s.order = append(s.order, spec.Id)
	return nil
}

// Check validates all references of the space.
func (s *Space) Check() error {
	s.lock.RLock()
	defer s.lock.RUnlock()

	for _, id := range s.order {
		o := s.objects[id]
		for _, n := range utils.OrderedMapKeys(o.objects) {
			if err := s.checkRef(o, n, o.objects[n]); err != nil {
				return err
			}
		}
		for _, n := range utils.OrderedMapKeys(o.collections) {
			for _, r := range o.collections[n] {
				if err := s.checkRef(o, n, r); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

func (s *Space) checkRef(o *object, field, ref string) error {
	if ref == "" {
		return nil
	}
	p, _ := s.field(o.typ, field, "")
	t := s.objects[ref]
	if t == nil {
		return fmt.Errorf("object %q: field %q: %w: %q", o.id, field, native.ErrNotFound, ref)
	}
	if !s.graph.IsA(t.typ, p.Type) {
		return fmt.Errorf("object %q: field %q: object %q of type %q is no %q", o.id, field, ref, t.typ, p.Type)
	}
	return nil
}

// field finds the property declaring a native field for a type
// or one of its ancestors.
func (s *Space) field(typ, name string, shape metadata.Shape) (*metadata.PropertySpecification, error) {
	for _, n := range append([]string{typ}, s.graph.Ancestors(typ)...) {
		t := s.model.GetType(n)
		for i := range t.Properties {
			p := &t.Properties[i]
			if p.NativeField() == name {
				if shape != "" && p.Shape != shape {
					return nil, fmt.Errorf("native field %q of type %q is %s", name, typ, p.Shape)
				}
				return p, nil
			}
		}
	}
	return nil, fmt.Errorf("%w %q for type %q", native.ErrUnknownField, name, typ)
}

// Lookup returns a handle for an object.
func (s *Space) Lookup(id string) (native.Handle, error) {
	s.lock.RLock()
	defer s.lock.RUnlock()
	return s.handle(id)
}

func (s *Space) handle(id string) (native.Handle, error) {
	o := s.objects[id]
	if o == nil {
		return nil, fmt.Errorf("%w: %q", native.ErrNotFound, id)
	}
	if !o.valid {
		return nil, fmt.Errorf("%w: %q", native.ErrInvalidHandle, id)
	}
	return &handle{space: s, obj: o}, nil
}

// Roots returns handles for all root objects.
func (s *Space) Roots() ([]native.Handle, error) {
	s.lock.RLock()
	defer s.lock.RUnlock()

	var r []native.Handle
	for _, id := range s.order {
		if o := s.objects[id]; o.root && o.valid {
			r = append(r, &handle{space: s, obj: o})
		}
	}
	return r, nil
}

// Objects returns the ids of all objects in insertion order.
func (s *Space) Objects() []string {
	s.lock.RLock()
	defer s.lock.RUnlock()
	return slices.Clone(s.order)
}

// Invalidate disposes an object. Existing handles become unusable.
func (s *Space) Invalidate(id string) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	o := s.objects[id]
	if o == nil {
		return fmt.Errorf("%w: %q", native.ErrNotFound, id)
	}
	o.valid = false
	log.Debug("invalidated object {{id}}", "id", id)
	return nil
}

// SetField changes a scalar field of an object. A nil value sets null.
func (s *Space) SetField(id, name string, value any) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	o := s.objects[id]
	if o == nil {
		return fmt.Errorf("%w: %q", native.ErrNotFound, id)
	}
	if _, err := s.field(o.typ, name, metadata.SHAPE_SCALAR); err != nil {
		return err
	}
	if value == nil {
		delete(o.fields, name)
	} else {
		o.fields[name] = value
	}
	return nil
}

// SetCollection changes a collection field of an object. A nil
// slice sets null.
func (s *Space) SetCollection(id, name string, refs []string) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	o := s.objects[id]
	if o == nil {
		return fmt.Errorf("%w: %q", native.ErrNotFound, id)
	}
	if _, err := s.field(o.typ, name, metadata.SHAPE_LIST); err != nil {
		return err
	}
	for _, r := range refs {
		if err := s.checkRef(o, name, r); err != nil {
			return err
		}
	}
	if refs == nil {
		delete(o.collections, name)
	} else {
		o.collections[name] = slices.Clone(refs)
	}
	return nil
}
