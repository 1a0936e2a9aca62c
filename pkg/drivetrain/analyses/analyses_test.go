package analyses_test

import (
	"errors"

	. "github.com/mandelsoft/goutils/testutils"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/mandelsoft/vfs/pkg/vfs"

	"github.com/mandelsoft/drivebind/pkg/binding"
	"github.com/mandelsoft/drivebind/pkg/drivetrain"
	me "github.com/mandelsoft/drivebind/pkg/drivetrain/analyses"
	"github.com/mandelsoft/drivebind/pkg/drivetrain/design"
	"github.com/mandelsoft/drivebind/pkg/native"
	"github.com/mandelsoft/drivebind/pkg/native/memory"
	. "github.com/mandelsoft/drivebind/pkg/testutils"
)

func present[T any](v T, ok bool, err error) T {
	ExpectWithOffset(1, err).To(Succeed())
	ExpectWithOffset(1, ok).To(BeTrue())
	return v
}

var _ = Describe("drivetrain analyses", func() {
	var fs vfs.FileSystem
	var space *memory.Space

	lookup := func(id string) native.Handle {
		return Must(space.Lookup(id))
	}

	BeforeEach(func() {
		fs = Must(TestFileSystem("testdata", true))
		space = Must(memory.Load("testdata/space.yaml", drivetrain.MustMetadata(), fs))
	})

	AfterEach(func() {
		vfs.Cleanup(fs)
	})

	Context("gear set analysis", func() {
		var gs *me.GearSetAnalysis

		BeforeEach(func() {
			gs = Must(me.NewGearSetAnalysis(lookup("final-drive-analysis")))
		})

		It("is viewed through its declared type", func() {
			Expect(gs.TypeName()).To(Equal(me.TYPE_GEAR_SET_ANALYSIS))
			Expect(gs.RuntimeType()).To(Equal(me.TYPE_HYPOID_GEAR_SET_ANALYSIS))
			Expect(present(gs.Name())).To(Equal("final drive analysis"))
			Expect(present(gs.MinimumSafetyFactor())).To(Equal(1.35))
		})

		It("casts to compatible descendants", func() {
			c := Must(gs.Cast().AsConicalGearSetAnalysis())
			Expect(c.TypeName()).To(Equal(me.TYPE_CONICAL_GEAR_SET_ANALYSIS))
			Expect(binding.SameHandle(c, gs)).To(BeTrue())

			h := Must(c.Cast().AsHypoidGearSetAnalysis())
			Expect(present(h.MaximumSlidingVelocity())).To(Equal(12.5))
		})

		It("rejects incompatible descendants", func() {
			_, err := gs.Cast().AsCylindricalGearSetAnalysis()
			Expect(err).To(MatchError(binding.ErrIncompatibleRuntimeType))
			Expect(err.Error()).To(ContainSubstring(me.TYPE_CYLINDRICAL_GEAR_SET_ANALYSIS))
		})

		It("rejects casts to sibling branches", func() {
			_, err := binding.Cast(gs, me.TYPE_BELT_DRIVE_ANALYSIS)
			Expect(err).To(MatchError(binding.ErrNoSuchCast))
			Expect(err.Error()).To(Equal(`cannot cast GearSetAnalysis to "BeltDriveAnalysis": no such cast`))

			s := Must(gs.Cast().AsSpecialisedAssemblyAnalysis())
			_, err = s.Cast().AsBeltDriveAnalysis()
			Expect(err).To(MatchError(`cannot cast SpecialisedAssemblyAnalysis to "BeltDriveAnalysis": incompatible runtime type "HypoidGearSetAnalysis"`))
		})

		It("casts idempotently", func() {
			a := Must(gs.Cast().AsPartAnalysis())
			b := Must(gs.Cast().AsPartAnalysis())
			Expect(a).To(Equal(b))
			Expect(Must(a.Cast().AsGearSetAnalysis())).To(Equal(gs))
		})

		It("wraps polymorphic elements", func() {
			gears := present(gs.Gears())
			Expect(gears).To(HaveLen(2))
			for _, g := range gears {
				Expect(g).To(BeAssignableToTypeOf(&me.HypoidGearAnalysis{}))
			}
			meshes := present(gs.Meshes())
			Expect(meshes[0]).To(BeAssignableToTypeOf(&me.HypoidGearMeshAnalysis{}))
			Expect(present(meshes[0].(*me.HypoidGearMeshAnalysis).TransmissionError())).To(Equal(0.004))
		})

		It("distinguishes empty from absent collections", func() {
			cases, ok, err := gs.AssemblyAnalysisCases()
			MustBeSuccessful(err)
			Expect(ok).To(BeTrue())
			Expect(cases).NotTo(BeNil())
			Expect(cases).To(BeEmpty())

			comps, ok, err := gs.ComponentAnalyses()
			MustBeSuccessful(err)
			Expect(ok).To(BeFalse())
			Expect(comps).To(BeNil())
		})

		It("reports absent scalars", func() {
			v, ok, err := Must(gs.Cast().AsHypoidGearSetAnalysis()).Converged()
			MustBeSuccessful(err)
			Expect(ok).To(BeTrue())
			Expect(v).To(BeTrue())

			a := Must(me.NewHypoidGearAnalysis(lookup("ring-analysis")))
			_, ok, err = a.MaximumContactStress()
			MustBeSuccessful(err)
			Expect(ok).To(BeFalse())
		})

		It("resolves designs across packages", func() {
			d := present(gs.AssemblyDesign())
			Expect(d).To(BeAssignableToTypeOf(&design.HypoidGearSet{}))
			Expect(present(d.(*design.HypoidGearSet).Offset())).To(Equal(25.4))

			gears := present(d.(*design.HypoidGearSet).Gears())
			g := Must(gears[0].(*design.HypoidGear).Cast().AsGear())
			Expect(present(g.NumberOfTeeth())).To(Equal(11))
		})
	})

	Context("root assembly analysis", func() {
		var root *me.RootAssemblyAnalysis

		BeforeEach(func() {
			root = Must(me.NewRootAssemblyAnalysis(lookup("axle-analysis")))
		})

		It("provides polymorphic analysis cases", func() {
			cases := present(root.AssemblyAnalysisCases())
			Expect(cases).To(HaveLen(2))
			Expect(cases[0]).To(BeAssignableToTypeOf(&me.HypoidGearSetAnalysis{}))
			Expect(cases[1]).To(BeAssignableToTypeOf(&me.BeltDriveAnalysis{}))

			pulleys := present(cases[1].(*me.BeltDriveAnalysis).Pulleys())
			Expect(pulleys).To(HaveLen(2))
			Expect(present(pulleys[0].(*me.PulleyAnalysis).WrapAngle())).To(Equal(180.0))
			Expect(pulleys[1]).To(BeNil())
		})

		It("reads renamed native fields", func() {
			comps := present(root.ComponentAnalyses())
			s := comps[0].(*me.ShaftAnalysis)
			Expect(present(s.NumberOfNodes())).To(Equal(1200))
			fe := Must(s.Cast().AsPartFEAnalysis())
			Expect(present(fe.NumberOfNodes())).To(Equal(1200))
		})

		It("reads multiple inheritance lines", func() {
			s := Must(me.NewShaftAnalysis(lookup("input-shaft-analysis")))
			c := Must(s.Cast().AsComponentAnalysis())
			d := present(c.ComponentDesign())
			Expect(d).To(BeAssignableToTypeOf(&design.Shaft{}))
			Expect(present(d.(*design.Shaft).Length())).To(Equal(420.0))

			fe := Must(s.Cast().AsPartFEAnalysis())
			Expect(Must(fe.Cast().AsShaftAnalysis())).To(Equal(s))
			_, err := fe.Cast().AsBearingAnalysis()
			Expect(err).To(MatchError(binding.ErrIncompatibleRuntimeType))
		})
	})

	Context("native runtime", func() {
		It("validates declared types", func() {
			_, err := me.NewGearSetAnalysis(lookup("accessory-drive-analysis"))
			Expect(err).To(MatchError(binding.ErrTypeMismatch))
			var terr *binding.TypeMismatchError
			Expect(errors.As(err, &terr)).To(BeTrue())
			Expect(terr.Runtime).To(Equal(me.TYPE_BELT_DRIVE_ANALYSIS))
		})

		It("reflects changes of the native object", func() {
			a := Must(me.NewHypoidGearAnalysis(lookup("ring-analysis")))
			MustBeSuccessful(space.SetField("ring-analysis", "MaximumContactStress", 1320.0))
			Expect(present(a.MaximumContactStress())).To(Equal(1320.0))
		})

		It("reports invalidated handles", func() {
			gs := Must(me.NewGearSetAnalysis(lookup("final-drive-analysis")))
			Expect(binding.Disposed(gs)).To(BeFalse())
			MustBeSuccessful(space.Invalidate("final-drive-analysis"))
			Expect(binding.Disposed(gs)).To(BeTrue())
			_, _, err := gs.Name()
			Expect(err).To(MatchError(native.ErrInvalidHandle))
			_, err = gs.Cast().AsHypoidGearSetAnalysis()
			Expect(err).To(MatchError(native.ErrInvalidHandle))
			_, err = gs.Cast().AsPartAnalysis()
			Expect(err).To(MatchError(native.ErrInvalidHandle))
		})

		It("reports invalidated elements", func() {
			root := Must(me.NewRootAssemblyAnalysis(lookup("axle-analysis")))
			MustBeSuccessful(space.Invalidate("pinion-analysis"))
			_, _, err := root.ComponentAnalyses()
			Expect(err).To(MatchError(native.ErrInvalidHandle))
		})
	})
})
