package drivetrain_test

import (
	. "github.com/mandelsoft/goutils/testutils"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	me "github.com/mandelsoft/drivebind/pkg/drivetrain"
	"github.com/mandelsoft/drivebind/pkg/drivetrain/analyses"
	"github.com/mandelsoft/drivebind/pkg/drivetrain/design"
	"github.com/mandelsoft/drivebind/pkg/generator"
)

var _ = Describe("drivetrain bindings", func() {
	It("are up to date", func() {
		g := Must(generator.New(me.MustMetadata(), "github.com/mandelsoft/drivebind/pkg/drivetrain"))
		MustBeSuccessful(g.Check("."))
	})

	It("cover all metadata types", func() {
		m := me.MustMetadata()
		for _, t := range m.Types {
			switch t.Package {
			case "design":
				Expect(design.Registry.HasType(t.Name)).To(BeTrue(), t.Name)
			case "analyses":
				Expect(analyses.Registry.HasType(t.Name)).To(BeTrue(), t.Name)
			default:
				Fail("unexpected package " + t.Package)
			}
		}
		Expect(len(design.Registry.TypeNames()) + len(analyses.Registry.TypeNames())).To(Equal(len(m.Types)))
	})
})
