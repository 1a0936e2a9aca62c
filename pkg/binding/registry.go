package binding

import (
	"fmt"
	"slices"
	"sort"

	"github.com/mandelsoft/drivebind/pkg/runtime"
)

// Shape describes the result shape of a property.
type Shape string

const (
	SHAPE_SCALAR = Shape("scalar")
	SHAPE_OBJECT = Shape("object")
	SHAPE_LIST   = Shape("list")
)

// Factory creates the concrete wrapper for a Base.
type Factory = runtime.Factory[Object, Base]

// PropertySpec is the static description of a property.
type PropertySpec struct {
	Name string
	// Field is the native field name.
	Field string
	Shape Shape
	// Type is the scalar kind or the declared element type.
	Type string
	// Elements is the registry of the element type. It
	// defaults to the registry declaring the property.
	Elements *Registry
}

// TypeSpec is the static cast table entry and property list of a
// wrapper type as emitted by the generator.
type TypeSpec struct {
	Name      string
	Namespace string
	// Ancestors is the ancestor closure, nearest first.
	Ancestors []string
	// Descendants is the descendant closure.
	Descendants []string
	Properties  []PropertySpec
	Create      Factory
}

type relation int

const (
	relNone relation = iota
	relAncestor
	relDescendant
)

// PropertyInfo is a resolved property descriptor.
type PropertyInfo struct {
	PropertySpec
	declaredBy *TypeInfo
}

// DeclaredBy returns the type declaring the property.
func (p *PropertyInfo) DeclaredBy() *TypeInfo {
	return p.declaredBy
}

func (p *PropertyInfo) elements() *Registry {
	if p.Elements != nil {
		return p.Elements
	}
	return p.declaredBy.registry
}

// TypeInfo is the read-only runtime information about a wrapper type.
type TypeInfo struct {
	registry    *Registry
	name        string
	namespace   string
	ancestors   []string
	descendants []string
	relations   map[string]relation
	own         []*PropertyInfo
	properties  map[string]*PropertyInfo
}

func (t *TypeInfo) Name() string {
	return t.name
}

func (t *TypeInfo) Namespace() string {
	return t.namespace
}

// QualifiedName returns the native type name including its namespace.
func (t *TypeInfo) QualifiedName() string {
	if t.namespace == "" {
		return t.name
	}
	return t.namespace + "." + t.name
}

func (t *TypeInfo) Registry() *Registry {
	return t.registry
}

func (t *TypeInfo) Ancestors() []string {
	return slices.Clone(t.ancestors)
}

func (t *TypeInfo) Descendants() []string {
	return slices.Clone(t.descendants)
}

// CastTargets returns all types a view of this type may be cast to.
func (t *TypeInfo) CastTargets() []string {
	return append(t.Ancestors(), t.descendants...)
}

// IsA reports whether the type is the given one or one of its descendants.
func (t *TypeInfo) IsA(typ string) bool {
	return t.name == typ || t.relations[typ] == relAncestor
}

// Properties returns the names of all properties including inherited ones.
func (t *TypeInfo) Properties() []string {
	var r []string
	for n := range t.properties {
		r = append(r, n)
	}
	sort.Strings(r)
	return r
}

// OwnProperties returns the properties declared by the type itself.
func (t *TypeInfo) OwnProperties() []*PropertyInfo {
	return slices.Clone(t.own)
}

// Property returns the descriptor of a property declared by the type
// or one of its ancestors, or nil.
func (t *TypeInfo) Property(name string) *PropertyInfo {
	return t.properties[name]
}

func (t *TypeInfo) relation(typ string) relation {
	return t.relations[typ]
}

func (t *TypeInfo) String() string {
	return t.name
}

// Registry is the read-only table of all wrapper types of a package.
// It maps type names to factories, cast tables and property descriptors.
type Registry struct {
	name   string
	scheme runtime.TypeScheme[Object, Base]
	types  map[string]*TypeInfo
}

// NewRegistry builds a registry from a static type table.
func NewRegistry(name string, specs ...TypeSpec) (*Registry, error) {
	r := &Registry{
		name:   name,
		scheme: runtime.NewTypeScheme[Object, Base](),
		types:  map[string]*TypeInfo{},
	}

	for _, s := range specs {
		if s.Name == "" {
			return nil, fmt.Errorf("registry %q: type name missing", name)
		}
		if r.types[s.Name] != nil {
			return nil, fmt.Errorf("registry %q: duplicate type %q", name, s.Name)
		}
		err := r.scheme.Register(s.Name, s.Create)
		if err != nil {
			return nil, fmt.Errorf("registry %q: %w", name, err)
		}
		t := &TypeInfo{
			registry:    r,
			name:        s.Name,
			namespace:   s.Namespace,
			ancestors:   slices.Clone(s.Ancestors),
			descendants: slices.Clone(s.Descendants),
			relations:   map[string]relation{},
			properties:  map[string]*PropertyInfo{},
		}
		for _, a := range s.Ancestors {
			t.relations[a] = relAncestor
		}
		for _, d := range s.Descendants {
			if t.relations[d] != relNone {
				return nil, fmt.Errorf("registry %q: type %q: %q is ancestor and descendant", name, s.Name, d)
			}
			t.relations[d] = relDescendant
		}
		for _, p := range s.Properties {
			t.own = append(t.own, &PropertyInfo{PropertySpec: p, declaredBy: t})
		}
		r.types[s.Name] = t
	}

	for _, t := range r.types {
		for n, rel := range t.relations {
			if r.types[n] == nil {
				return nil, fmt.Errorf("registry %q: type %q: unknown cast target %q", name, t.name, n)
			}
			if rel == relDescendant && r.types[n].relations[t.name] != relAncestor {
				return nil, fmt.Errorf("registry %q: type %q: descendant %q does not list it as ancestor", name, t.name, n)
			}
		}
		for _, p := range t.own {
			switch p.Shape {
			case SHAPE_SCALAR:
			case SHAPE_OBJECT, SHAPE_LIST:
				if !p.elements().HasType(p.Type) {
					return nil, fmt.Errorf("registry %q: property %q of %q: unknown element type %q", name, p.Name, t.name, p.Type)
				}
			default:
				return nil, fmt.Errorf("registry %q: property %q of %q: invalid shape %q", name, p.Name, t.name, p.Shape)
			}
		}
	}

	// inherited properties: nearest declaration wins
	for _, t := range r.types {
		for i := len(t.ancestors) - 1; i >= 0; i-- {
			for _, p := range r.types[t.ancestors[i]].own {
				t.properties[p.Name] = p
			}
		}
		for _, p := range t.own {
			t.properties[p.Name] = p
		}
	}
	log.Trace("registry {{name}} created with {{amount}} types", "name", name, "amount", len(r.types))
	return r, nil
}

// MustNewRegistry is used by generated code to initialize the static table.
func MustNewRegistry(name string, specs ...TypeSpec) *Registry {
	r, err := NewRegistry(name, specs...)
	if err != nil {
		panic(err)
	}
	return r
}

func (r *Registry) Name() string {
	return r.name
}

func (r *Registry) TypeNames() []string {
	return r.scheme.TypeNames()
}

func (r *Registry) HasType(typ string) bool {
	return r.types[typ] != nil
}

// Type returns the type information for a type name or nil.
func (r *Registry) Type(typ string) *TypeInfo {
	return r.types[typ]
}

func (r *Registry) lookup(typ string) (*TypeInfo, error) {
	t := r.types[typ]
	if t == nil {
		return nil, &UnknownTypeError{Registry: r.name, Type: typ}
	}
	return t, nil
}

func (r *Registry) String() string {
	return r.name
}
