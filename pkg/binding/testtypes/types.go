// Package testtypes provides a small hand written wrapper registry and
// stub native handles used to test the binding layer.
//
//	        Root
//	      /  |   \
//	  Left Right Other
//	     \   /
//	     Both
//	      |
//	     Leaf
package testtypes

import (
	"github.com/mandelsoft/drivebind/pkg/binding"
)

const (
	TYPE_ROOT  = "Root"
	TYPE_LEFT  = "Left"
	TYPE_RIGHT = "Right"
	TYPE_BOTH  = "Both"
	TYPE_LEAF  = "Leaf"
	TYPE_OTHER = "Other"
)

type Root struct {
	binding.Base
}

func (o *Root) Name() (string, bool, error) {
	return binding.Scalar[string](o, "Name")
}

func (o *Root) Count() (int, bool, error) {
	return binding.Scalar[int](o, "Count")
}

func (o *Root) Child() (binding.Object, bool, error) {
	return binding.Child(o, "Child")
}

func (o *Root) Items() ([]binding.Object, bool, error) {
	return binding.List(o, "Items")
}

type Left struct {
	binding.Base
}

func (o *Left) Value() (string, bool, error) {
	return binding.Scalar[string](o, "Value")
}

type Right struct {
	binding.Base
}

func (o *Right) Value() (float64, bool, error) {
	return binding.Scalar[float64](o, "Value")
}

type Both struct {
	binding.Base
}

func (o *Both) Flag() (bool, bool, error) {
	return binding.Scalar[bool](o, "Flag")
}

type Leaf struct {
	binding.Base
}

type Other struct {
	binding.Base
}

var props = []binding.PropertySpec{
	{Name: "Name", Field: "name", Shape: binding.SHAPE_SCALAR, Type: "string"},
	{Name: "Count", Field: "count", Shape: binding.SHAPE_SCALAR, Type: "int"},
	{Name: "Child", Field: "child", Shape: binding.SHAPE_OBJECT, Type: TYPE_ROOT},
	{Name: "Items", Field: "items", Shape: binding.SHAPE_LIST, Type: TYPE_ROOT},
}

// Table is the type table of the Registry. It may be used as
// base for tests of inconsistent tables.
func Table() []binding.TypeSpec {
	return []binding.TypeSpec{
		{
			Name:        TYPE_ROOT,
			Namespace:   "test",
			Descendants: []string{TYPE_BOTH, TYPE_LEAF, TYPE_LEFT, TYPE_OTHER, TYPE_RIGHT},
			Properties:  props,
			Create:      func(b binding.Base) (binding.Object, error) { return &Root{b}, nil },
		},
		{
			Name:        TYPE_LEFT,
			Namespace:   "test",
			Ancestors:   []string{TYPE_ROOT},
			Descendants: []string{TYPE_BOTH, TYPE_LEAF},
			Properties: []binding.PropertySpec{
				{Name: "Value", Field: "left", Shape: binding.SHAPE_SCALAR, Type: "string"},
			},
			Create: func(b binding.Base) (binding.Object, error) { return &Left{b}, nil },
		},
		{
			Name:        TYPE_RIGHT,
			Namespace:   "test",
			Ancestors:   []string{TYPE_ROOT},
			Descendants: []string{TYPE_BOTH, TYPE_LEAF},
			Properties: []binding.PropertySpec{
				{Name: "Value", Field: "right", Shape: binding.SHAPE_SCALAR, Type: "float"},
			},
			Create: func(b binding.Base) (binding.Object, error) { return &Right{b}, nil },
		},
		{
			Name:        TYPE_BOTH,
			Namespace:   "test",
			Ancestors:   []string{TYPE_LEFT, TYPE_RIGHT, TYPE_ROOT},
			Descendants: []string{TYPE_LEAF},
			Properties: []binding.PropertySpec{
				{Name: "Flag", Field: "flag", Shape: binding.SHAPE_SCALAR, Type: "bool"},
			},
			Create: func(b binding.Base) (binding.Object, error) { return &Both{b}, nil },
		},
		{
			Name:      TYPE_LEAF,
			Namespace: "test",
			Ancestors: []string{TYPE_BOTH, TYPE_LEFT, TYPE_RIGHT, TYPE_ROOT},
			Create:    func(b binding.Base) (binding.Object, error) { return &Leaf{b}, nil },
		},
		{
			Name:      TYPE_OTHER,
			Ancestors: []string{TYPE_ROOT},
			Create:    func(b binding.Base) (binding.Object, error) { return &Other{b}, nil },
		},
	}
}

var Registry = binding.MustNewRegistry("testtypes", Table()...)
