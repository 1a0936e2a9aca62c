package binding_test

import (
	. "github.com/mandelsoft/goutils/testutils"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	me "github.com/mandelsoft/drivebind/pkg/binding"
	"github.com/mandelsoft/drivebind/pkg/binding/testtypes"
)

var _ = Describe("registry", func() {
	r := testtypes.Registry

	It("provides type information", func() {
		Expect(r.TypeNames()).To(Equal([]string{"Both", "Leaf", "Left", "Other", "Right", "Root"}))
		t := r.Type(testtypes.TYPE_BOTH)
		Expect(t).NotTo(BeNil())
		Expect(t.QualifiedName()).To(Equal("test.Both"))
		Expect(r.Type(testtypes.TYPE_OTHER).QualifiedName()).To(Equal("Other"))
		Expect(t.Registry()).To(BeIdenticalTo(r))
		Expect(r.Type("Unknown")).To(BeNil())
	})

	It("provides cast targets", func() {
		Expect(r.Type(testtypes.TYPE_BOTH).CastTargets()).To(Equal([]string{"Left", "Right", "Root", "Leaf"}))
		Expect(r.Type(testtypes.TYPE_LEAF).Descendants()).To(BeEmpty())
		Expect(r.Type(testtypes.TYPE_ROOT).Ancestors()).To(BeEmpty())
	})

	It("answers subtype questions", func() {
		leaf := r.Type(testtypes.TYPE_LEAF)
		Expect(leaf.IsA(testtypes.TYPE_LEAF)).To(BeTrue())
		Expect(leaf.IsA(testtypes.TYPE_RIGHT)).To(BeTrue())
		Expect(leaf.IsA(testtypes.TYPE_OTHER)).To(BeFalse())
		Expect(r.Type(testtypes.TYPE_ROOT).IsA(testtypes.TYPE_LEAF)).To(BeFalse())
	})

	Context("properties", func() {
		It("includes inherited properties", func() {
			Expect(r.Type(testtypes.TYPE_LEAF).Properties()).To(Equal([]string{"Child", "Count", "Flag", "Items", "Name", "Value"}))
			Expect(r.Type(testtypes.TYPE_LEAF).OwnProperties()).To(BeEmpty())
		})

		It("uses the nearest declaration", func() {
			p := r.Type(testtypes.TYPE_BOTH).Property("Value")
			Expect(p.DeclaredBy().Name()).To(Equal(testtypes.TYPE_LEFT))
			Expect(p.Field).To(Equal("left"))
			Expect(r.Type(testtypes.TYPE_RIGHT).Property("Value").Field).To(Equal("right"))
		})

		It("reports the declaring type", func() {
			Expect(r.Type(testtypes.TYPE_LEAF).Property("Name").DeclaredBy().Name()).To(Equal(testtypes.TYPE_ROOT))
		})
	})

	Context("inconsistent tables", func() {
		var table []me.TypeSpec

		BeforeEach(func() {
			table = testtypes.Table()
		})

		It("accepts the original table", func() {
			Must(me.NewRegistry("test", table...))
		})

		It("rejects duplicate types", func() {
			_, err := me.NewRegistry("test", append(table, table[0])...)
			Expect(err).To(MatchError(`registry "test": duplicate type "Root"`))
		})

		It("rejects unknown cast targets", func() {
			table[5].Ancestors = []string{"Root", "Unknown"}
			_, err := me.NewRegistry("test", table...)
			Expect(err).To(MatchError(`registry "test": type "Other": unknown cast target "Unknown"`))
		})

		It("rejects asymmetric tables", func() {
			table[0].Descendants = []string{"Both", "Leaf", "Left", "Right"}
			Must(me.NewRegistry("test", table...))
			table[5].Ancestors = nil
			table[0].Descendants = []string{"Both", "Leaf", "Left", "Other", "Right"}
			_, err := me.NewRegistry("test", table...)
			Expect(err).To(MatchError(`registry "test": type "Root": descendant "Other" does not list it as ancestor`))
		})

		It("rejects unknown element types", func() {
			table[4].Properties = []me.PropertySpec{{Name: "Parts", Field: "parts", Shape: me.SHAPE_LIST, Type: "Part"}}
			_, err := me.NewRegistry("test", table...)
			Expect(err).To(MatchError(`registry "test": property "Parts" of "Leaf": unknown element type "Part"`))
		})

		It("rejects invalid shapes", func() {
			table[4].Properties = []me.PropertySpec{{Name: "Parts", Field: "parts", Shape: "map", Type: "Root"}}
			_, err := me.NewRegistry("test", table...)
			Expect(err).To(MatchError(`registry "test": property "Parts" of "Leaf": invalid shape "map"`))
		})

		It("panics for generated code", func() {
			Expect(func() { me.MustNewRegistry("test", append(table, table[1])...) }).To(Panic())
		})
	})
})
