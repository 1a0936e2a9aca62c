package metadata

import (
	"fmt"
	"slices"
)

// Shape describes the result shape of a native property.
type Shape string

const (
	SHAPE_SCALAR = Shape("scalar")
	SHAPE_OBJECT = Shape("object")
	SHAPE_LIST   = Shape("list")
)

var shapes = []Shape{SHAPE_SCALAR, SHAPE_OBJECT, SHAPE_LIST}

func (s Shape) Valid() bool {
	return slices.Contains(shapes, s)
}

// Scalar kinds supported for scalar properties.
const (
	KIND_STRING = "string"
	KIND_FLOAT  = "float64"
	KIND_INT    = "int"
	KIND_BOOL   = "bool"
)

var kinds = []string{KIND_STRING, KIND_FLOAT, KIND_INT, KIND_BOOL}

// Model is the reflection metadata of a native object model.
type Model struct {
	Name  string              `json:"name"`
	Types []TypeSpecification `json:"types"`
}

// TypeSpecification describes a single native type.
type TypeSpecification struct {
	Name        string `json:"name"`
	Namespace   string `json:"namespace,omitempty"`
	Package     string `json:"package"`
	Abstract    bool   `json:"abstract,omitempty"`
	Description string `json:"description,omitempty"`

	// Ancestors lists the direct ancestor types.
	Ancestors  []string                `json:"ancestors,omitempty"`
	Properties []PropertySpecification `json:"properties,omitempty"`
}

// QualifiedName returns the native name including the namespace.
func (t *TypeSpecification) QualifiedName() string {
	if t.Namespace == "" {
		return t.Name
	}
	return t.Namespace + "." + t.Name
}

// PropertySpecification describes a native field exposed as property.
type PropertySpecification struct {
	Name string `json:"name"`
	// Field is the native field name, it defaults to the property name.
	Field string `json:"field,omitempty"`
	Shape Shape  `json:"shape"`
	// Type is the scalar kind for scalar properties and the element
	// type name for object and list properties.
	Type        string `json:"type"`
	Description string `json:"description,omitempty"`
}

func (p *PropertySpecification) NativeField() string {
	if p.Field == "" {
		return p.Name
	}
	return p.Field
}

func (p PropertySpecification) String() string {
	return fmt.Sprintf("%s(%s %s)", p.Name, p.Shape, p.Type)
}

// GetType returns the specification for the given type name or nil.
func (m *Model) GetType(name string) *TypeSpecification {
	for i := range m.Types {
		if m.Types[i].Name == name {
			return &m.Types[i]
		}
	}
	return nil
}

// TypeNames returns the type names in definition order.
func (m *Model) TypeNames() []string {
	r := make([]string, len(m.Types))
	for i, t := range m.Types {
		r[i] = t.Name
	}
	return r
}

// Packages returns the sorted set of target packages.
func (m *Model) Packages() []string {
	var r []string
	for _, t := range m.Types {
		if !slices.Contains(r, t.Package) {
			r = append(r, t.Package)
		}
	}
	slices.Sort(r)
	return r
}

// PackageTypes returns the type specifications for a target package
// in definition order.
func (m *Model) PackageTypes(pkg string) []*TypeSpecification {
	var r []*TypeSpecification
	for i := range m.Types {
		if m.Types[i].Package == pkg {
			r = append(r, &m.Types[i])
		}
	}
	return r
}
