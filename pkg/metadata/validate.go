package metadata

import (
	"fmt"
	"slices"
	"strings"

	"github.com/mandelsoft/drivebind/pkg/utils"
)

// Validate checks a model for consistency.
func Validate(m *Model) error {
	if m.Name == "" {
		return fmt.Errorf("model name missing")
	}

	types := map[string]*TypeSpecification{}
	for i := range m.Types {
		t := &m.Types[i]
		if t.Name == "" {
			return fmt.Errorf("type %d: name missing", i)
		}
		if types[t.Name] != nil {
			return fmt.Errorf("duplicate type %q", t.Name)
		}
		if t.Package == "" {
			return fmt.Errorf("type %q: package missing", t.Name)
		}
		types[t.Name] = t
	}

	for _, t := range m.Types {
		for _, a := range t.Ancestors {
			s := types[a]
			if s == nil {
				return fmt.Errorf("type %q: unknown ancestor %q", t.Name, a)
			}
			if s.Package != t.Package {
				return fmt.Errorf("type %q: ancestor %q belongs to foreign package %q", t.Name, a, s.Package)
			}
		}
		err := validateProperties(types, &t)
		if err != nil {
			return fmt.Errorf("type %q: %w", t.Name, err)
		}
	}

	for _, t := range m.Types {
		if err := checkCycle(types, t.Name); err != nil {
			return err
		}
	}
	return nil
}

func validateProperties(types map[string]*TypeSpecification, t *TypeSpecification) error {
	var names []string
	for _, p := range t.Properties {
		if p.Name == "" {
			return fmt.Errorf("property name missing")
		}
		if slices.Contains(names, p.Name) {
			return fmt.Errorf("duplicate property %q", p.Name)
		}
		names = append(names, p.Name)

		switch p.Shape {
		case SHAPE_SCALAR:
			if !slices.Contains(kinds, p.Type) {
				return fmt.Errorf("property %q: unsupported scalar kind %q", p.Name, p.Type)
			}
		case SHAPE_OBJECT, SHAPE_LIST:
			if types[p.Type] == nil {
				return fmt.Errorf("property %q: unknown element type %q", p.Name, p.Type)
			}
		default:
			return fmt.Errorf("property %q: invalid shape %q", p.Name, p.Shape)
		}
	}
	return nil
}

func checkCycle(types map[string]*TypeSpecification, name string, stack ...string) error {
	if c := utils.Cycle(name, stack...); c != nil {
		return fmt.Errorf("ancestor cycle for %q: %s", c[0], strings.Join(c, "->"))
	}
	stack = append(stack, name)
	for _, a := range types[name].Ancestors {
		if err := checkCycle(types, a, stack...); err != nil {
			return err
		}
	}
	return nil
}
