package binding_test

import (
	"errors"

	. "github.com/mandelsoft/goutils/testutils"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	me "github.com/mandelsoft/drivebind/pkg/binding"
	"github.com/mandelsoft/drivebind/pkg/binding/testtypes"
	"github.com/mandelsoft/drivebind/pkg/native"
)

var _ = Describe("casting", func() {
	r := testtypes.Registry

	var leaf *testtypes.Handle
	var right *testtypes.Handle

	BeforeEach(func() {
		leaf = testtypes.NewHandle("leaf", testtypes.TYPE_LEAF)
		right = testtypes.NewHandle("right", testtypes.TYPE_RIGHT)
	})

	It("returns the view itself for its own type", func() {
		o := Must(me.New(r, testtypes.TYPE_LEFT, leaf))
		Expect(Must(me.Cast(o, testtypes.TYPE_LEFT))).To(BeIdenticalTo(o))
	})

	It("casts to ancestors", func() {
		o := Must(me.New(r, testtypes.TYPE_LEAF, leaf))
		for _, a := range []string{testtypes.TYPE_BOTH, testtypes.TYPE_LEFT, testtypes.TYPE_RIGHT, testtypes.TYPE_ROOT} {
			c := Must(me.Cast(o, a))
			Expect(c.TypeName()).To(Equal(a))
			Expect(c.Handle()).To(BeIdenticalTo(leaf))
			Expect(me.SameHandle(o, c)).To(BeTrue())
		}
	})

	It("casts to compatible descendants", func() {
		o := Must(me.New(r, testtypes.TYPE_ROOT, leaf))
		c := Must(me.CastTo[*testtypes.Both](o, testtypes.TYPE_BOTH))
		Expect(c.Handle()).To(BeIdenticalTo(leaf))
	})

	It("casts across the diamond", func() {
		o := Must(me.New(r, testtypes.TYPE_LEFT, leaf))
		root := Must(me.Cast(o, testtypes.TYPE_ROOT))
		c := Must(me.CastTo[*testtypes.Right](root, testtypes.TYPE_RIGHT))
		Expect(c.TypeName()).To(Equal(testtypes.TYPE_RIGHT))
	})

	It("rejects incompatible descendants", func() {
		o := Must(me.New(r, testtypes.TYPE_ROOT, right))
		_, err := me.Cast(o, testtypes.TYPE_BOTH)
		Expect(err).To(MatchError(me.ErrIncompatibleRuntimeType))
		var cerr *me.CastError
		Expect(errors.As(err, &cerr)).To(BeTrue())
		Expect(cerr.Target).To(Equal(testtypes.TYPE_BOTH))
		Expect(err.Error()).To(Equal(`cannot cast Root to "Both": incompatible runtime type "Right"`))
	})

	It("rejects types outside the cast table", func() {
		o := Must(me.New(r, testtypes.TYPE_LEFT, leaf))
		_, err := me.Cast(o, testtypes.TYPE_OTHER)
		Expect(err).To(MatchError(me.ErrNoSuchCast))
		Expect(err.Error()).To(Equal(`cannot cast Left to "Other": no such cast`))

		_, err = me.Cast(o, "Unknown")
		Expect(err).To(MatchError(me.ErrNoSuchCast))
	})

	It("does not mix up siblings", func() {
		o := Must(me.New(r, testtypes.TYPE_LEFT, leaf))
		_, err := me.Cast(o, testtypes.TYPE_RIGHT)
		Expect(err).To(MatchError(me.ErrNoSuchCast))
		Expect(me.CanCast(o, testtypes.TYPE_RIGHT)).To(BeFalse())
		Expect(me.CanCast(o, testtypes.TYPE_LEAF)).To(BeTrue())
		Expect(me.CanCast(o, testtypes.TYPE_LEFT)).To(BeTrue())
	})

	It("is idempotent", func() {
		o := Must(me.New(r, testtypes.TYPE_ROOT, leaf))
		a := Must(me.Cast(o, testtypes.TYPE_BOTH))
		b := Must(me.Cast(o, testtypes.TYPE_BOTH))
		Expect(a).To(Equal(b))
		Expect(a).NotTo(BeIdenticalTo(b))

		o = Must(me.New(r, testtypes.TYPE_ROOT, right))
		_, err1 := me.Cast(o, testtypes.TYPE_LEAF)
		_, err2 := me.Cast(o, testtypes.TYPE_LEAF)
		Expect(err1).To(Equal(err2))
	})

	It("uses the type checker of the runtime", func() {
		h := &testtypes.CheckedHandle{Handle: testtypes.NewHandle("o1", "Unregistered"), Types: []string{testtypes.TYPE_ROOT, testtypes.TYPE_LEFT}}
		o := Must(me.New(r, testtypes.TYPE_ROOT, h))
		Must(me.Cast(o, testtypes.TYPE_LEFT))
		_, err := me.Cast(o, testtypes.TYPE_RIGHT)
		Expect(err).To(MatchError(me.ErrIncompatibleRuntimeType))
	})

	It("uses the type lineage of the runtime", func() {
		h := &testtypes.LineageHandle{Handle: testtypes.NewHandle("o1", "Unregistered"), Lineage: []string{testtypes.TYPE_RIGHT, testtypes.TYPE_ROOT}}
		o := Must(me.New(r, testtypes.TYPE_ROOT, h))
		Must(me.Cast(o, testtypes.TYPE_RIGHT))
		_, err := me.Cast(o, testtypes.TYPE_LEFT)
		Expect(err).To(MatchError(me.ErrIncompatibleRuntimeType))
	})

	It("rejects unknown runtime types without type information", func() {
		o := Must(me.New(r, testtypes.TYPE_ROOT, testtypes.NewHandle("o1", "Unregistered")))
		_, err := me.Cast(o, testtypes.TYPE_LEFT)
		Expect(err).To(MatchError(me.ErrIncompatibleRuntimeType))
	})

	It("rejects views of invalidated handles", func() {
		h := &testtypes.DisposableHandle{Handle: leaf}
		o := Must(me.New(r, testtypes.TYPE_BOTH, h))
		Expect(Must(me.Cast(o, testtypes.TYPE_ROOT)).TypeName()).To(Equal(testtypes.TYPE_ROOT))

		h.Disposed = true
		_, err := me.Cast(o, testtypes.TYPE_ROOT)
		Expect(err).To(MatchError(native.ErrInvalidHandle))
		Expect(err).To(MatchError(`native handle invalidated: "leaf"`))
		_, err = me.Cast(o, testtypes.TYPE_LEAF)
		Expect(err).To(MatchError(native.ErrInvalidHandle))
		Expect(Must(me.Cast(o, testtypes.TYPE_BOTH))).To(BeIdenticalTo(o))
	})

	It("rejects uninitialized views", func() {
		_, err := me.Cast(&testtypes.Left{}, testtypes.TYPE_ROOT)
		Expect(err).To(MatchError(me.ErrUninitialized))
		_, err = me.Cast(nil, testtypes.TYPE_ROOT)
		Expect(err).To(MatchError(me.ErrUninitialized))
		Expect(me.CanCast(nil, testtypes.TYPE_ROOT)).To(BeFalse())
	})
})
