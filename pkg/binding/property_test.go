package binding_test

import (
	"errors"
	"fmt"
	"math"

	. "github.com/mandelsoft/goutils/testutils"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	me "github.com/mandelsoft/drivebind/pkg/binding"
	"github.com/mandelsoft/drivebind/pkg/binding/testtypes"
	"github.com/mandelsoft/drivebind/pkg/native"
)

var _ = Describe("properties", func() {
	r := testtypes.Registry

	var h *testtypes.Handle
	var o *testtypes.Both

	BeforeEach(func() {
		h = testtypes.NewHandle("o1", testtypes.TYPE_BOTH)
		o = Must(me.NewAs[*testtypes.Both](r, testtypes.TYPE_BOTH, h))
	})

	Context("scalars", func() {
		It("reads values", func() {
			h.Fields["name"] = "gear"
			h.Fields["count"] = 17
			h.Fields["flag"] = true
			h.Fields["left"] = "left"
			h.Fields["right"] = 1.5

			Expect(present(Must(me.CastTo[*testtypes.Root](o, testtypes.TYPE_ROOT)).Name())).To(Equal("gear"))
			v, ok, err := Must(me.CastTo[*testtypes.Root](o, testtypes.TYPE_ROOT)).Count()
			MustBeSuccessful(err)
			Expect(ok).To(BeTrue())
			Expect(v).To(Equal(17))

			f, ok, err := o.Flag()
			MustBeSuccessful(err)
			Expect(ok).To(BeTrue())
			Expect(f).To(BeTrue())

			s, _, err := Must(me.CastTo[*testtypes.Left](o, testtypes.TYPE_LEFT)).Value()
			MustBeSuccessful(err)
			Expect(s).To(Equal("left"))
			d, _, err := Must(me.CastTo[*testtypes.Right](o, testtypes.TYPE_RIGHT)).Value()
			MustBeSuccessful(err)
			Expect(d).To(Equal(1.5))
		})

		It("reports null as absent", func() {
			v, ok, err := o.Flag()
			MustBeSuccessful(err)
			Expect(ok).To(BeFalse())
			Expect(v).To(BeFalse())
		})

		It("converts integral numbers", func() {
			h.Fields["count"] = float64(3)
			Expect(present(me.Scalar[int](o, "Count"))).To(Equal(3))
			h.Fields["right"] = 2
			right := Must(me.CastTo[*testtypes.Right](o, testtypes.TYPE_RIGHT))
			Expect(present(right.Value())).To(Equal(2.0))
		})

		It("rejects non integral numbers", func() {
			h.Fields["count"] = 3.5
			_, ok, err := me.Scalar[int](o, "Count")
			Expect(ok).To(BeFalse())
			Expect(err).To(MatchError(me.ErrMarshal))
			var merr *me.MarshalError
			Expect(errors.As(err, &merr)).To(BeTrue())
			Expect(merr.Property).To(Equal("Count"))
			Expect(merr.Target).To(Equal("int"))
		})

		It("rejects numbers out of range", func() {
			h.Fields["count"] = 1e19
			_, ok, err := me.Scalar[int](o, "Count")
			Expect(ok).To(BeFalse())
			Expect(err).To(MatchError(me.ErrMarshal))

			h.Fields["count"] = 300
			_, _, err = me.Scalar[uint8](o, "Count")
			Expect(err).To(MatchError(me.ErrMarshal))
			_, _, err = me.Scalar[int8](o, "Count")
			Expect(err).To(MatchError(me.ErrMarshal))
			Expect(present(me.Scalar[int16](o, "Count"))).To(Equal(int16(300)))

			h.Fields["count"] = uint64(math.MaxUint64)
			_, _, err = me.Scalar[int64](o, "Count")
			Expect(err).To(MatchError(me.ErrMarshal))

			h.Fields["count"] = 1e300
			_, _, err = me.Scalar[float32](o, "Count")
			Expect(err).To(MatchError(me.ErrMarshal))
		})

		It("rejects negative numbers for unsigned types", func() {
			h.Fields["count"] = -1
			_, ok, err := me.Scalar[uint](o, "Count")
			Expect(ok).To(BeFalse())
			Expect(err).To(MatchError(me.ErrMarshal))

			h.Fields["count"] = -1.0
			_, _, err = me.Scalar[uint32](o, "Count")
			Expect(err).To(MatchError(me.ErrMarshal))
		})

		It("converts numbers in range", func() {
			h.Fields["count"] = 1200.0
			Expect(present(me.Scalar[int](o, "Count"))).To(Equal(1200))
			Expect(present(me.Scalar[uint16](o, "Count"))).To(Equal(uint16(1200)))
			h.Fields["count"] = -7
			Expect(present(me.Scalar[float64](o, "Count"))).To(Equal(-7.0))
			Expect(present(me.Scalar[int8](o, "Count"))).To(Equal(int8(-7)))
		})

		It("rejects mismatching kinds", func() {
			h.Fields["flag"] = "yes"
			_, _, err := o.Flag()
			Expect(err).To(MatchError(`property "Flag" of Both: cannot marshal native value string(yes) to bool`))
		})

		It("reads values on every access", func() {
			h.Fields["flag"] = true
			Expect(present(o.Flag())).To(BeTrue())
			h.Fields["flag"] = false
			Expect(present(o.Flag())).To(BeFalse())
		})
	})

	Context("objects", func() {
		It("wraps the most specific type", func() {
			h.Objects["child"] = testtypes.NewHandle("c1", testtypes.TYPE_LEAF)
			c, ok, err := me.Child(o, "Child")
			MustBeSuccessful(err)
			Expect(ok).To(BeTrue())
			Expect(c).To(BeAssignableToTypeOf(&testtypes.Leaf{}))
			Expect(c.Handle().Identity()).To(Equal("c1"))
		})

		It("reports null as absent", func() {
			c, ok, err := me.Child(o, "Child")
			MustBeSuccessful(err)
			Expect(ok).To(BeFalse())
			Expect(c).To(BeNil())

			var n *testtypes.Handle
			h.Objects["child"] = n
			_, ok, err = me.Child(o, "Child")
			MustBeSuccessful(err)
			Expect(ok).To(BeFalse())
		})

		It("creates fresh views on every access", func() {
			h.Objects["child"] = testtypes.NewHandle("c1", testtypes.TYPE_LEAF)
			a, _, _ := me.Child(o, "Child")
			b, _, _ := me.Child(o, "Child")
			Expect(a).NotTo(BeIdenticalTo(b))
			Expect(me.SameHandle(a, b)).To(BeTrue())
		})
	})

	Context("lists", func() {
		It("distinguishes empty and absent collections", func() {
			l, ok, err := me.List(o, "Items")
			MustBeSuccessful(err)
			Expect(ok).To(BeFalse())
			Expect(l).To(BeNil())

			h.Collections["items"] = native.SliceCollection(nil)
			l, ok, err = me.List(o, "Items")
			MustBeSuccessful(err)
			Expect(ok).To(BeFalse())
			Expect(l).To(BeNil())

			h.Collections["items"] = native.SliceCollection{}
			l, ok, err = me.List(o, "Items")
			MustBeSuccessful(err)
			Expect(ok).To(BeTrue())
			Expect(l).NotTo(BeNil())
			Expect(l).To(BeEmpty())
		})

		It("wraps polymorphic elements", func() {
			h.Collections["items"] = native.SliceCollection{
				testtypes.NewHandle("e1", testtypes.TYPE_LEFT),
				nil,
				testtypes.NewHandle("e3", testtypes.TYPE_OTHER),
				testtypes.NewHandle("e4", "Unregistered"),
			}
			l := present(me.List(o, "Items"))
			Expect(l).To(HaveLen(4))
			Expect(l[0]).To(BeAssignableToTypeOf(&testtypes.Left{}))
			Expect(l[1]).To(BeNil())
			Expect(l[2]).To(BeAssignableToTypeOf(&testtypes.Other{}))
			Expect(l[3]).To(BeAssignableToTypeOf(&testtypes.Root{}))
		})

		It("reflects changes of the native collection", func() {
			h.Collections["items"] = native.SliceCollection{testtypes.NewHandle("e1", testtypes.TYPE_LEFT)}
			Expect(present(me.List(o, "Items"))).To(HaveLen(1))
			h.Collections["items"] = native.SliceCollection{}
			Expect(present(me.List(o, "Items"))).To(BeEmpty())
		})
	})

	Context("generic access", func() {
		It("reads all shapes", func() {
			h.Fields["name"] = "gear"
			h.Collections["items"] = native.SliceCollection{}

			v := Must(me.ReadProperty(o, "Name"))
			Expect(v).To(Equal(me.Value{Name: "Name", Shape: me.SHAPE_SCALAR, Present: true, Scalar: "gear"}))
			v = Must(me.ReadProperty(o, "Child"))
			Expect(v.Present).To(BeFalse())
			Expect(v.Shape).To(Equal(me.SHAPE_OBJECT))
			v = Must(me.ReadProperty(o, "Items"))
			Expect(v.Present).To(BeTrue())
			Expect(v.List).To(BeEmpty())
		})

		It("rejects unknown properties", func() {
			_, err := me.ReadProperty(o, "Teeth")
			Expect(err).To(MatchError(me.ErrNoSuchProperty))
			Expect(err.Error()).To(Equal(`property "Teeth" of Both: no such property`))
		})

		It("rejects shape mismatches", func() {
			_, _, err := me.List(o, "Child")
			Expect(err).To(MatchError(me.ErrShapeMismatch))
			_, _, err = me.Scalar[string](o, "Items")
			Expect(err).To(MatchError(me.ErrShapeMismatch))
		})

		It("hides properties of descendants", func() {
			l := Must(me.CastTo[*testtypes.Left](o, testtypes.TYPE_LEFT))
			_, _, err := me.Scalar[bool](l, "Flag")
			Expect(err).To(MatchError(me.ErrNoSuchProperty))
		})

		It("propagates native errors", func() {
			fault := fmt.Errorf("runtime crashed")
			h.Fault = fault
			_, _, err := o.Flag()
			Expect(err).To(BeIdenticalTo(fault))
			_, err = me.ReadProperty(o, "Items")
			Expect(err).To(BeIdenticalTo(fault))
		})

		It("propagates invalidated handles", func() {
			h.Fault = native.ErrInvalidHandle
			_, _, err := me.Child(o, "Child")
			Expect(err).To(MatchError(native.ErrInvalidHandle))
		})
	})
})
