package random_test

import (
	. "github.com/mandelsoft/goutils/testutils"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/spf13/pflag"

	"github.com/mandelsoft/drivebind/pkg/drivetrain"
	me "github.com/mandelsoft/drivebind/pkg/native/memory/random"
)

var _ = Describe("random spaces", func() {
	m := drivetrain.MustMetadata()

	It("is reproducible", func() {
		opts := me.Options{Seed: 4711, Roots: 5}
		a := Must(me.Generate(m, opts))
		b := Must(me.Generate(m, opts))
		Expect(a.Spec()).To(Equal(b.Spec()))
		Expect(len(Must(a.Roots()))).To(Equal(5))
	})

	It("creates concrete objects only", func() {
		s := Must(me.Generate(m, me.Options{Seed: 1, Roots: 10, Depth: 3}))
		for _, o := range s.Spec().Objects {
			Expect(m.GetType(o.Type).Abstract).To(BeFalse(), o.Type)
		}
	})

	It("selects root types", func() {
		s := Must(me.Generate(m, me.Options{Seed: 2, Roots: 4, Types: []string{"GearSetAnalysis"}}))
		for _, h := range Must(s.Roots()) {
			Expect(s.Graph().IsA(h.TypeName(), "GearSetAnalysis")).To(BeTrue(), h.TypeName())
		}
	})

	It("rejects unknown root types", func() {
		_, err := me.Generate(m, me.Options{Types: []string{"Gearbox"}})
		Expect(err).To(MatchError(`unknown type "Gearbox"`))
	})

	It("provides flags", func() {
		var opts me.Options
		fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
		opts.AddFlags(fs)
		MustBeSuccessful(fs.Parse([]string{"--seed", "3", "-r", "2", "-t", "ShaftAnalysis,BearingAnalysis"}))
		Expect(opts).To(Equal(me.Options{Seed: 3, Roots: 2, Depth: 2, MaxElements: 3, Types: []string{"ShaftAnalysis", "BearingAnalysis"}}))
	})
})
