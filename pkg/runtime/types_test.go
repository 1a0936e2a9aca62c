package runtime_test

import (
	"fmt"

	. "github.com/mandelsoft/goutils/testutils"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	me "github.com/mandelsoft/drivebind/pkg/runtime"
)

type named struct {
	typ  string
	name string
}

func factory(typ string) me.Factory[*named, string] {
	return func(name string) (*named, error) {
		if name == "" {
			return nil, fmt.Errorf("name missing")
		}
		return &named{typ, name}, nil
	}
}

var _ = Describe("type scheme", func() {
	var scheme me.TypeScheme[*named, string]

	BeforeEach(func() {
		scheme = me.NewTypeScheme[*named, string]()
		MustBeSuccessful(scheme.Register("Gear", factory("Gear")))
		MustBeSuccessful(scheme.Register("Shaft", factory("Shaft")))
	})

	It("creates objects", func() {
		Expect(scheme.CreateObject("Gear", "g1")).To(Equal(&named{"Gear", "g1"}))
	})

	It("propagates factory errors", func() {
		_, err := scheme.CreateObject("Gear", "")
		Expect(err).To(MatchError("name missing"))
	})

	It("lists types", func() {
		Expect(scheme.TypeNames()).To(Equal([]string{"Gear", "Shaft"}))
		Expect(scheme.HasType("Gear")).To(BeTrue())
		Expect(scheme.HasType("Bearing")).To(BeFalse())
	})

	It("rejects unknown types", func() {
		_, err := scheme.CreateObject("Bearing", "b1")
		Expect(err).To(MatchError(`unknown object type "Bearing"`))
	})

	It("rejects duplicate registrations", func() {
		Expect(scheme.Register("Gear", factory("Gear"))).To(MatchError(`type "Gear" already registered`))
		Expect(scheme.TypeNames()).To(ConsistOf("Gear", "Shaft"))
	})

	It("rejects nil factories", func() {
		Expect(scheme.Register("Bearing", nil)).To(MatchError("factory for Bearing must not be nil"))
	})
})
