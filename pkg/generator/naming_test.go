package generator_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	me "github.com/mandelsoft/drivebind/pkg/generator"
)

var _ = Describe("naming", func() {
	DescribeTable("names",
		func(typ, constant, file string) {
			Expect(me.ConstName(typ)).To(Equal(constant))
			Expect(me.FileName(typ)).To(Equal(file))
		},
		Entry("simple", "Gear", "TYPE_GEAR", "gear.go"),
		Entry("camel case", "HypoidGearSetAnalysis", "TYPE_HYPOID_GEAR_SET_ANALYSIS", "hypoid_gear_set_analysis.go"),
		Entry("leading acronym", "AGMAGleasonConicalGearAnalysis", "TYPE_AGMA_GLEASON_CONICAL_GEAR_ANALYSIS", "agma_gleason_conical_gear_analysis.go"),
		Entry("trailing acronym", "PartFE", "TYPE_PART_FE", "part_fe.go"),
		Entry("inner acronym", "PartFEAnalysis", "TYPE_PART_FE_ANALYSIS", "part_fe_analysis.go"),
	)

	It("names cast helpers", func() {
		Expect(me.CastHelper("Gear")).To(Equal("GearCast"))
		Expect(me.CastMethod("CylindricalGear")).To(Equal("AsCylindricalGear"))
	})
})
