package hierarchy_test

import (
	"bytes"

	. "github.com/mandelsoft/goutils/testutils"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	me "github.com/mandelsoft/drivebind/pkg/hierarchy"
	"github.com/mandelsoft/drivebind/pkg/metadata"
)

// Analysis
//  |     \
//  Part   Connection
//  |  \       \
//  |   FE     Mesh
//  Shaft /
//  (Part, FE)
const model = `
name: test
types:
- name: Analysis
  package: p
- name: Part
  package: p
  ancestors: [Analysis]
- name: FE
  package: p
  ancestors: [Part]
- name: Shaft
  package: p
  ancestors: [Part, FE]
- name: Connection
  package: p
  ancestors: [Analysis]
- name: Mesh
  package: p
  ancestors: [Connection]
`

var _ = Describe("hierarchy", func() {
	var g *me.Graph

	BeforeEach(func() {
		g = Must(me.NewGraph(Must(metadata.Parse([]byte(model)))))
	})

	It("orders ancestors by distance", func() {
		Expect(g.Ancestors("Shaft")).To(Equal([]string{"FE", "Part", "Analysis"}))
		Expect(g.Ancestors("Mesh")).To(Equal([]string{"Connection", "Analysis"}))
		Expect(g.Ancestors("Analysis")).To(BeEmpty())
	})

	It("lists each ancestor once", func() {
		Expect(g.Entry("Shaft").Parents).To(Equal([]string{"Part", "FE"}))
		Expect(g.Ancestors("Shaft")).To(HaveLen(3))
	})

	It("provides sorted descendants", func() {
		Expect(g.Descendants("Analysis")).To(Equal([]string{"Connection", "FE", "Mesh", "Part", "Shaft"}))
		Expect(g.Descendants("Part")).To(Equal([]string{"FE", "Shaft"}))
		Expect(g.Descendants("Shaft")).To(BeEmpty())
	})

	It("provides cast targets", func() {
		Expect(g.Entry("Part").Targets()).To(Equal([]string{"Analysis", "FE", "Shaft"}))
	})

	It("answers subtype questions", func() {
		Expect(g.IsA("Shaft", "Shaft")).To(BeTrue())
		Expect(g.IsA("Shaft", "Analysis")).To(BeTrue())
		Expect(g.IsA("Shaft", "Connection")).To(BeFalse())
		Expect(g.IsA("Analysis", "Shaft")).To(BeFalse())
		Expect(g.IsA("Unknown", "Unknown")).To(BeFalse())
	})

	It("provides structural information", func() {
		Expect(g.Types()).To(Equal([]string{"Analysis", "Part", "FE", "Shaft", "Connection", "Mesh"}))
		Expect(g.Roots()).To(Equal([]string{"Analysis"}))
		Expect(g.Depth("Shaft")).To(Equal(3))
		Expect(g.Depth("Mesh")).To(Equal(2))
		Expect(g.Entry("Unknown")).To(BeNil())
	})

	It("dumps the graph", func() {
		var buf bytes.Buffer
		g.Dump(&buf)
		Expect(buf.String()).To(ContainSubstring(`- Mesh
  parents:
  - Connection
  ancestors:
  - Connection
  - Analysis
`))
	})

	It("detects cycles of unvalidated models", func() {
		m := &metadata.Model{Name: "test", Types: []metadata.TypeSpecification{
			{Name: "A", Package: "p", Ancestors: []string{"B"}},
			{Name: "B", Package: "p", Ancestors: []string{"A"}},
		}}
		_, err := me.NewGraph(m)
		Expect(err).To(MatchError(`ancestor cycle for "A"`))
	})

	It("detects unknown ancestors of unvalidated models", func() {
		m := &metadata.Model{Name: "test", Types: []metadata.TypeSpecification{
			{Name: "A", Package: "p", Ancestors: []string{"B"}},
		}}
		_, err := me.NewGraph(m)
		Expect(err).To(MatchError(`type "A": unknown ancestor "B"`))
	})
})
