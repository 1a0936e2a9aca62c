// Package hierarchy derives cast tables from native type metadata.
//
// The type hierarchy is a closed directed graph: an edge A->B means B is
// a direct ancestor of A. A type may have several ancestor lines. For every
// type the cast table contains the ancestor closure (ordered by distance)
// and the set of all descendants.
package hierarchy

import (
	"fmt"
	"io"
	"slices"

	"k8s.io/apimachinery/pkg/util/sets"

	"github.com/mandelsoft/drivebind/pkg/metadata"
)

// Entry is the cast table entry of a single type.
type Entry struct {
	Name string
	// Parents are the direct ancestors.
	Parents []string
	// Ancestors is the ancestor closure, nearest first.
	Ancestors []string
	// Descendants is the sorted descendant closure.
	Descendants []string
}

// Targets returns all valid cast targets (ancestors followed by descendants).
func (e *Entry) Targets() []string {
	return append(slices.Clone(e.Ancestors), e.Descendants...)
}

type Graph struct {
	entries map[string]*Entry
	order   []string
}

// NewGraph builds the hierarchy graph of a validated model.
func NewGraph(m *metadata.Model) (*Graph, error) {
	g := &Graph{entries: map[string]*Entry{}}

	for _, t := range m.Types {
		if g.entries[t.Name] != nil {
			return nil, fmt.Errorf("duplicate type %q", t.Name)
		}
		g.entries[t.Name] = &Entry{
			Name:    t.Name,
			Parents: slices.Clone(t.Ancestors),
		}
		g.order = append(g.order, t.Name)
	}

	for _, n := range g.order {
		e := g.entries[n]
		for _, p := range e.Parents {
			if g.entries[p] == nil {
				return nil, fmt.Errorf("type %q: unknown ancestor %q", n, p)
			}
		}
	}

	descendants := map[string]sets.Set[string]{}
	for _, n := range g.order {
		e := g.entries[n]
		anc, err := g.closure(n)
		if err != nil {
			return nil, err
		}
		e.Ancestors = anc
		for _, a := range anc {
			if descendants[a] == nil {
				descendants[a] = sets.New[string]()
			}
			descendants[a].Insert(n)
		}
	}
	for _, n := range g.order {
		g.entries[n].Descendants = sets.List(descendants[n])
	}
	return g, nil
}

// closure determines the ancestor closure by a breadth first
// walk. Ancestors on the same level are ordered by name.
func (g *Graph) closure(name string) ([]string, error) {
	var result []string

	seen := sets.New[string](name)
	level := g.entries[name].Parents
	for len(level) > 0 {
		next := sets.New[string]()
		for _, n := range sets.List(sets.New[string](level...)) {
			if seen.Has(n) {
				if n == name {
					return nil, fmt.Errorf("ancestor cycle for %q", name)
				}
				continue
			}
			seen.Insert(n)
			result = append(result, n)
			next.Insert(g.entries[n].Parents...)
		}
		if next.Has(name) {
			return nil, fmt.Errorf("ancestor cycle for %q", name)
		}
		level = sets.List(next)
	}
	return result, nil
}

// Types returns all type names in definition order.
func (g *Graph) Types() []string {
	return slices.Clone(g.order)
}

// Entry returns the cast table entry for a type or nil.
func (g *Graph) Entry(name string) *Entry {
	return g.entries[name]
}

func (g *Graph) Ancestors(name string) []string {
	if e := g.entries[name]; e != nil {
		return slices.Clone(e.Ancestors)
	}
	return nil
}

func (g *Graph) Descendants(name string) []string {
	if e := g.entries[name]; e != nil {
		return slices.Clone(e.Descendants)
	}
	return nil
}

// IsA reports whether typ equals or descends from ancestor.
func (g *Graph) IsA(typ, ancestor string) bool {
	e := g.entries[typ]
	if e == nil {
		return false
	}
	return typ == ancestor || slices.Contains(e.Ancestors, ancestor)
}

// Roots returns the types without ancestors in definition order.
func (g *Graph) Roots() []string {
	var r []string
	for _, n := range g.order {
		if len(g.entries[n].Parents) == 0 {
			r = append(r, n)
		}
	}
	return r
}

// Depth returns the length of the longest ancestor path of a type.
func (g *Graph) Depth(name string) int {
	e := g.entries[name]
	if e == nil {
		return 0
	}
	d := 0
	for _, p := range e.Parents {
		d = max(d, g.Depth(p)+1)
	}
	return d
}

func (g *Graph) Dump(w io.Writer) {
	for _, n := range g.order {
		e := g.entries[n]
		fmt.Fprintf(w, "- %s\n", n)
		if len(e.Parents) > 0 {
			fmt.Fprintf(w, "  parents:\n")
			for _, p := range e.Parents {
				fmt.Fprintf(w, "  - %s\n", p)
			}
		}
		if len(e.Ancestors) > 0 {
			fmt.Fprintf(w, "  ancestors:\n")
			for _, a := range e.Ancestors {
				fmt.Fprintf(w, "  - %s\n", a)
			}
		}
		if len(e.Descendants) > 0 {
			fmt.Fprintf(w, "  descendants:\n")
			for _, d := range e.Descendants {
				fmt.Fprintf(w, "  - %s\n", d)
			}
		}
	}
}
