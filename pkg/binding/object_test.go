package binding_test

import (
	"errors"

	. "github.com/mandelsoft/goutils/testutils"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	me "github.com/mandelsoft/drivebind/pkg/binding"
	"github.com/mandelsoft/drivebind/pkg/binding/testtypes"
)

var _ = Describe("wrapping", func() {
	r := testtypes.Registry

	Context("new", func() {
		It("wraps a handle", func() {
			h := testtypes.NewHandle("o1", testtypes.TYPE_LEAF)
			o := Must(me.New(r, testtypes.TYPE_LEFT, h))
			Expect(o).To(BeAssignableToTypeOf(&testtypes.Left{}))
			Expect(o.TypeName()).To(Equal(testtypes.TYPE_LEFT))
			Expect(o.Handle()).To(BeIdenticalTo(h))
			Expect(o.(*testtypes.Left).RuntimeType()).To(Equal(testtypes.TYPE_LEAF))
			Expect(o.(*testtypes.Left).String()).To(Equal("Left[o1]"))
		})

		It("provides typed wrappers", func() {
			o := Must(me.NewAs[*testtypes.Both](r, testtypes.TYPE_BOTH, testtypes.NewHandle("o1", testtypes.TYPE_BOTH)))
			Expect(o.TypeName()).To(Equal(testtypes.TYPE_BOTH))
		})

		It("rejects wrong static types", func() {
			_, err := me.NewAs[*testtypes.Left](r, testtypes.TYPE_BOTH, testtypes.NewHandle("o1", testtypes.TYPE_BOTH))
			Expect(err).To(HaveOccurred())
		})

		It("rejects nil handles", func() {
			_, err := me.New(r, testtypes.TYPE_LEFT, nil)
			Expect(err).To(MatchError(me.ErrNilHandle))
			var h *testtypes.Handle
			_, err = me.New(r, testtypes.TYPE_LEFT, h)
			Expect(err).To(MatchError(me.ErrNilHandle))
		})

		It("rejects unknown types", func() {
			_, err := me.New(r, "Gear", testtypes.NewHandle("o1", "Gear"))
			Expect(err).To(MatchError(me.ErrUnknownType))
			var uerr *me.UnknownTypeError
			Expect(errors.As(err, &uerr)).To(BeTrue())
			Expect(uerr.Type).To(Equal("Gear"))
			Expect(err.Error()).To(Equal(`unknown wrapper type: "Gear" in registry "testtypes"`))
		})

		It("does not validate plain handles", func() {
			o := Must(me.New(r, testtypes.TYPE_LEFT, testtypes.NewHandle("o1", testtypes.TYPE_RIGHT)))
			Expect(o.TypeName()).To(Equal(testtypes.TYPE_LEFT))
		})

		It("validates handles with type checker", func() {
			h := &testtypes.CheckedHandle{Handle: testtypes.NewHandle("o1", testtypes.TYPE_RIGHT), Types: []string{testtypes.TYPE_ROOT}}
			Must(me.New(r, testtypes.TYPE_ROOT, h))
			_, err := me.New(r, testtypes.TYPE_LEFT, h)
			Expect(err).To(MatchError(me.ErrTypeMismatch))
			Expect(err.Error()).To(Equal(`native type mismatch: handle of type "Right" is no "Left"`))
		})
	})

	Context("wrap", func() {
		It("selects the runtime type", func() {
			o := Must(me.Wrap(r, testtypes.TYPE_ROOT, testtypes.NewHandle("o1", testtypes.TYPE_LEAF)))
			Expect(o).To(BeAssignableToTypeOf(&testtypes.Leaf{}))
		})

		It("keeps the declared type for incompatible runtime types", func() {
			o := Must(me.Wrap(r, testtypes.TYPE_LEFT, testtypes.NewHandle("o1", testtypes.TYPE_OTHER)))
			Expect(o).To(BeAssignableToTypeOf(&testtypes.Left{}))
		})

		It("uses the type lineage for unknown runtime types", func() {
			h := &testtypes.LineageHandle{
				Handle:  testtypes.NewHandle("o1", "SpecialBoth"),
				Lineage: []string{"Intermediate", testtypes.TYPE_BOTH, testtypes.TYPE_LEFT, testtypes.TYPE_RIGHT, testtypes.TYPE_ROOT},
			}
			o := Must(me.Wrap(r, testtypes.TYPE_ROOT, h))
			Expect(o).To(BeAssignableToTypeOf(&testtypes.Both{}))
		})

		It("falls back to the declared type", func() {
			o := Must(me.Wrap(r, testtypes.TYPE_RIGHT, testtypes.NewHandle("o1", "Unregistered")))
			Expect(o).To(BeAssignableToTypeOf(&testtypes.Right{}))
		})

		It("validates the declared type", func() {
			h := &testtypes.CheckedHandle{Handle: testtypes.NewHandle("o1", "Unregistered")}
			_, err := me.Wrap(r, testtypes.TYPE_RIGHT, h)
			Expect(err).To(MatchError(me.ErrTypeMismatch))
		})
	})

	Context("identity", func() {
		It("compares handles", func() {
			h := testtypes.NewHandle("o1", testtypes.TYPE_LEAF)
			a := Must(me.New(r, testtypes.TYPE_LEFT, h))
			b := Must(me.New(r, testtypes.TYPE_RIGHT, testtypes.NewHandle("o1", testtypes.TYPE_LEAF)))
			c := Must(me.New(r, testtypes.TYPE_RIGHT, testtypes.NewHandle("o2", testtypes.TYPE_LEAF)))
			Expect(me.SameHandle(a, b)).To(BeTrue())
			Expect(me.SameHandle(a, c)).To(BeFalse())
			Expect(me.SameHandle(a, nil)).To(BeFalse())
			Expect(me.SameHandle(a, &testtypes.Left{})).To(BeFalse())
		})

		It("reports disposed handles", func() {
			h := &testtypes.DisposableHandle{Handle: testtypes.NewHandle("o1", testtypes.TYPE_LEAF)}
			o := Must(me.New(r, testtypes.TYPE_LEFT, h))
			Expect(me.Disposed(o)).To(BeFalse())
			h.Disposed = true
			Expect(me.Disposed(o)).To(BeTrue())
			Expect(me.Disposed(Must(me.New(r, testtypes.TYPE_LEFT, h.Handle)))).To(BeFalse())
			Expect(me.Disposed(&testtypes.Left{})).To(BeTrue())
		})
	})

	It("handles uninitialized wrappers", func() {
		var o testtypes.Left
		Expect(o.String()).To(Equal("<uninitialized>"))
		Expect(o.TypeName()).To(Equal(""))
		Expect(o.RuntimeType()).To(Equal(""))
		_, _, err := o.Value()
		Expect(err).To(MatchError(me.ErrUninitialized))
	})
})
