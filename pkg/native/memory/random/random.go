// Package random creates object spaces with random content consistent
// with the native type metadata.
package random

import (
	"fmt"
	"math/rand"
	"slices"

	"github.com/google/uuid"
	"github.com/goombaio/namegenerator"
	"github.com/spf13/pflag"

	"github.com/mandelsoft/drivebind/pkg/hierarchy"
	"github.com/mandelsoft/drivebind/pkg/metadata"
	"github.com/mandelsoft/drivebind/pkg/native/memory"
)

type Options struct {
	// Seed initializes the random generators. Identical seeds
	// produce identical spaces.
	Seed int64
	// Roots is the number of root objects.
	Roots int
	// Types restricts the root object types. The root types are
	// chosen from all concrete types by default.
	Types []string
	// Depth limits the nesting of child objects.
	Depth int
	// MaxElements limits the size of collections.
	MaxElements int
}

func (o *Options) AddFlags(fs *pflag.FlagSet) {
	fs.Int64Var(&o.Seed, "seed", 0, "random seed")
	fs.IntVarP(&o.Roots, "roots", "r", 1, "number of root objects")
	fs.IntVarP(&o.Depth, "depth", "d", 2, "nesting depth")
	fs.IntVarP(&o.MaxElements, "elements", "e", 3, "maximum collection size")
	fs.StringSliceVarP(&o.Types, "type", "t", nil, "root object types")
}

type generator struct {
	opts  Options
	model *metadata.Model
	graph *hierarchy.Graph
	rand  *rand.Rand
	names namegenerator.Generator
	space *memory.Space
}

// Generate creates a new random object space.
func Generate(m *metadata.Model, opts Options) (*memory.Space, error) {
	s, err := memory.New(m)
	if err != nil {
		return nil, err
	}
	if opts.Roots <= 0 {
		opts.Roots = 1
	}
	if opts.Depth <= 0 {
		opts.Depth = 2
	}
	if opts.MaxElements <= 0 {
		opts.MaxElements = 3
	}
	g := &generator{
		opts:  opts,
		model: m,
		graph: s.Graph(),
		rand:  rand.New(rand.NewSource(opts.Seed)),
		names: namegenerator.NewNameGenerator(opts.Seed),
		space: s,
	}

	roots := opts.Types
	if len(roots) == 0 {
		roots = g.concrete("")
	}
	for i := 0; i < opts.Roots; i++ {
		typ := roots[g.rand.Intn(len(roots))]
		t := m.GetType(typ)
		if t == nil {
			return nil, fmt.Errorf("unknown type %q", typ)
		}
		if t.Abstract {
			cands := g.concrete(typ)
			if len(cands) == 0 {
				return nil, fmt.Errorf("type %q has no concrete descendant", typ)
			}
			typ = cands[g.rand.Intn(len(cands))]
		}
		_, err := g.create(typ, true, opts.Depth)
		if err != nil {
			return nil, err
		}
	}
	err = s.Check()
	if err != nil {
		return nil, err
	}
	log.Debug("generated space with {{amount}} objects", "amount", len(s.Objects()))
	return s, nil
}

// concrete returns the non-abstract types being the given one
// or one of its descendants. An empty type selects all types.
func (g *generator) concrete(typ string) []string {
	var r []string
	for _, t := range g.model.Types {
		if t.Abstract {
			continue
		}
		if typ == "" || g.graph.IsA(t.Name, typ) {
			r = append(r, t.Name)
		}
	}
	slices.Sort(r)
	return r
}

func (g *generator) id() (string, error) {
	id, err := uuid.NewRandomFromReader(g.rand)
	if err != nil {
		return "", err
	}
	return id.String(), nil
}

func (g *generator) create(typ string, root bool, depth int) (string, error) {
	id, err := g.id()
	if err != nil {
		return "", err
	}
	spec := memory.ObjectSpec{
		Id:          id,
		Type:        typ,
		Root:        root,
		Fields:      map[string]any{},
		Objects:     map[string]string{},
		Collections: map[string][]string{},
	}

	for _, p := range g.properties(typ) {
		switch p.Shape {
		case metadata.SHAPE_SCALAR:
			spec.Fields[p.NativeField()] = g.scalar(p)
		case metadata.SHAPE_OBJECT:
			if depth <= 0 || g.rand.Intn(4) == 0 {
				continue
			}
			ref, err := g.element(p.Type, depth-1)
			if err != nil {
				return "", err
			}
			if ref != "" {
				spec.Objects[p.NativeField()] = ref
			}
		case metadata.SHAPE_LIST:
			if g.rand.Intn(4) == 0 {
				continue
			}
			refs := []string{}
			if depth > 0 {
				for n := g.rand.Intn(g.opts.MaxElements + 1); n > 0; n-- {
					ref, err := g.element(p.Type, depth-1)
					if err != nil {
						return "", err
					}
					if ref != "" {
						refs = append(refs, ref)
					}
				}
			}
			spec.Collections[p.NativeField()] = refs
		}
	}
	return id, g.space.Add(spec)
}

func (g *generator) element(typ string, depth int) (string, error) {
	cands := g.concrete(typ)
	if len(cands) == 0 {
		return "", nil
	}
	return g.create(cands[g.rand.Intn(len(cands))], false, depth)
}

func (g *generator) properties(typ string) []metadata.PropertySpecification {
	var r []metadata.PropertySpecification
	for _, n := range append([]string{typ}, g.graph.Ancestors(typ)...) {
		for _, p := range g.model.GetType(n).Properties {
			if !slices.ContainsFunc(r, func(e metadata.PropertySpecification) bool { return e.Name == p.Name }) {
				r = append(r, p)
			}
		}
	}
	return r
}

func (g *generator) scalar(p metadata.PropertySpecification) any {
	switch p.Type {
	case metadata.KIND_STRING:
		return g.names.Generate()
	case metadata.KIND_INT:
		return g.rand.Intn(100)
	case metadata.KIND_BOOL:
		return g.rand.Intn(2) == 1
	default:
		return float64(g.rand.Intn(100000)) / 100
	}
}
