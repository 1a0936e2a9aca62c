package memory_test

import (
	. "github.com/mandelsoft/goutils/testutils"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/go-test/deep"
	"github.com/mandelsoft/vfs/pkg/vfs"

	"github.com/mandelsoft/drivebind/pkg/drivetrain"
	"github.com/mandelsoft/drivebind/pkg/native"
	me "github.com/mandelsoft/drivebind/pkg/native/memory"
	. "github.com/mandelsoft/drivebind/pkg/testutils"
)

var _ = Describe("memory space", func() {
	var fs vfs.FileSystem
	var space *me.Space

	BeforeEach(func() {
		fs = Must(TestFileSystem("testdata", false))
		space = Must(me.Load("testdata/space.yaml", drivetrain.MustMetadata(), fs))
	})

	AfterEach(func() {
		vfs.Cleanup(fs)
	})

	Context("loading", func() {
		It("provides objects", func() {
			Expect(space.Objects()).To(HaveLen(13))
			Expect(space.Objects()[0]).To(Equal("axle"))
			roots := Must(space.Roots())
			Expect(len(roots)).To(Equal(3))
			Expect(roots[1].Identity()).To(Equal("final-drive"))
			Expect(space.Model().Name).To(Equal("drivetrain"))
		})

		It("rejects unknown types", func() {
			MustBeSuccessful(vfs.WriteFile(fs, "testdata/broken.yaml", []byte("objects:\n- id: x\n  type: Gearbox\n"), 0o600))
			_, err := me.Load("testdata/broken.yaml", drivetrain.MustMetadata(), fs)
			Expect(err).To(MatchError(`testdata/broken.yaml: object "x": unknown type "Gearbox"`))
		})

		It("rejects unknown fields", func() {
			MustBeSuccessful(vfs.WriteFile(fs, "testdata/broken.yaml", []byte("objects:\n- id: x\n  type: Shaft\n  fields:\n    Teeth: 3\n"), 0o600))
			_, err := me.Load("testdata/broken.yaml", drivetrain.MustMetadata(), fs)
			Expect(err).To(MatchError(native.ErrUnknownField))
		})

		It("rejects fields of wrong shape", func() {
			MustBeSuccessful(vfs.WriteFile(fs, "testdata/broken.yaml", []byte("objects:\n- id: x\n  type: Assembly\n  fields:\n    Components: 3\n"), 0o600))
			_, err := me.Load("testdata/broken.yaml", drivetrain.MustMetadata(), fs)
			Expect(err).To(MatchError(`testdata/broken.yaml: object "x": native field "Components" of type "Assembly" is list`))
		})

		It("rejects dangling references", func() {
			MustBeSuccessful(vfs.WriteFile(fs, "testdata/broken.yaml", []byte("objects:\n- id: x\n  type: Assembly\n  collections:\n    Components: [y]\n"), 0o600))
			_, err := me.Load("testdata/broken.yaml", drivetrain.MustMetadata(), fs)
			Expect(err).To(MatchError(native.ErrNotFound))
		})

		It("rejects references of wrong type", func() {
			MustBeSuccessful(vfs.WriteFile(fs, "testdata/broken.yaml", []byte(`
objects:
- id: x
  type: Assembly
  collections:
    Components: [y]
- id: y
  type: Assembly
`), 0o600))
			_, err := me.Load("testdata/broken.yaml", drivetrain.MustMetadata(), fs)
			Expect(err).To(MatchError(`testdata/broken.yaml: object "x": field "Components": object "y" of type "Assembly" is no "Component"`))
		})

		It("rejects duplicate objects", func() {
			err := space.Add(me.ObjectSpec{Id: "axle", Type: "Assembly"})
			Expect(err).To(MatchError(`duplicate object "axle"`))
		})

		It("saves and reloads", func() {
			MustBeSuccessful(space.Save("/space.yaml", fs))
			loaded := Must(me.Load("/space.yaml", drivetrain.MustMetadata(), fs))
			Expect(deep.Equal(loaded.Spec(), space.Spec())).To(BeNil())
		})
	})

	Context("handles", func() {
		It("reads fields", func() {
			h := Must(space.Lookup("input-shaft-analysis"))
			Expect(h.TypeName()).To(Equal("ShaftAnalysis"))
			Expect(h.Field("NodeCount")).To(Equal(float64(1200)))
			Expect(h.Field("PowerLoss")).To(BeNil())
			_, err := h.Field("NumberOfNodes")
			Expect(err).To(MatchError(native.ErrUnknownField))
			_, err = h.Field("ComponentDesign")
			Expect(err).To(HaveOccurred())
		})

		It("resolves objects", func() {
			h := Must(space.Lookup("pinion-analysis"))
			d := Must(h.Object("ComponentDesign"))
			Expect(d.Identity()).To(Equal("pinion"))
			Expect(d.TypeName()).To(Equal("HypoidGear"))

			Expect(Must(space.Lookup("mesh-analysis")).Collection("Meshes")).Error().To(HaveOccurred())
		})

		It("distinguishes empty and null collections", func() {
			c := Must(Must(space.Lookup("final-drive-analysis")).Collection("AssemblyAnalysisCases"))
			Expect(c).NotTo(BeNil())
			Expect(c.Len()).To(Equal(0))
			c = Must(Must(space.Lookup("ring-analysis")).Collection("Meshes"))
			Expect(c).To(BeNil())
		})

		It("keeps null elements", func() {
			c := Must(Must(space.Lookup("accessory-drive-analysis")).Collection("Pulleys"))
			Expect(c.Len()).To(Equal(2))
			Expect(Must(c.Element(0)).Identity()).To(Equal("crank-pulley"))
			Expect(c.Element(1)).To(BeNil())
		})

		It("provides type information", func() {
			h := Must(space.Lookup("final-drive-analysis"))
			Expect(h.(native.TypeChecker).IsInstanceOf("ConicalGearSetAnalysis")).To(BeTrue())
			Expect(h.(native.TypeChecker).IsInstanceOf("BeltDriveAnalysis")).To(BeFalse())
			Expect(h.(native.Lineage).TypeLineage()).To(Equal([]string{
				"HypoidGearSetAnalysis",
				"AGMAGleasonConicalGearSetAnalysis",
				"ConicalGearSetAnalysis",
				"GearSetAnalysis",
				"SpecialisedAssemblyAnalysis",
				"AbstractAssemblyAnalysis",
				"PartAnalysis",
				"DesignEntityAnalysis",
			}))
		})

		It("reflects changes", func() {
			h := Must(space.Lookup("ring-analysis"))
			MustBeSuccessful(space.SetField("ring-analysis", "PowerLoss", 3.5))
			Expect(h.Field("PowerLoss")).To(Equal(3.5))
			MustBeSuccessful(space.SetField("ring-analysis", "PowerLoss", nil))
			Expect(h.Field("PowerLoss")).To(BeNil())

			MustBeSuccessful(space.SetCollection("ring-analysis", "Meshes", []string{}))
			Expect(Must(h.Collection("Meshes")).Len()).To(Equal(0))
			Expect(space.SetCollection("ring-analysis", "Meshes", []string{"pinion"})).To(HaveOccurred())
			MustBeSuccessful(space.SetCollection("ring-analysis", "Meshes", nil))
			Expect(h.Collection("Meshes")).To(BeNil())
		})

		It("invalidates handles", func() {
			h := Must(space.Lookup("ring-analysis"))
			MustBeSuccessful(space.Invalidate("ring-analysis"))
			Expect(h.(native.Validator).Valid()).To(BeFalse())
			_, err := h.Field("Name")
			Expect(err).To(MatchError(native.ErrInvalidHandle))
			_, err = space.Lookup("ring-analysis")
			Expect(err).To(MatchError(native.ErrInvalidHandle))

			c := Must(Must(space.Lookup("final-drive-analysis")).Collection("Gears"))
			_, err = c.Element(1)
			Expect(err).To(MatchError(native.ErrInvalidHandle))
		})

		It("reports unknown objects", func() {
			_, err := space.Lookup("gearbox")
			Expect(err).To(MatchError(native.ErrNotFound))
			Expect(space.Invalidate("gearbox")).To(MatchError(native.ErrNotFound))
		})
	})
})
