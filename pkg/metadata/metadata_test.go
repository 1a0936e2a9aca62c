package metadata_test

import (
	"fmt"

	. "github.com/mandelsoft/goutils/testutils"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/mandelsoft/vfs/pkg/vfs"

	me "github.com/mandelsoft/drivebind/pkg/metadata"
	. "github.com/mandelsoft/drivebind/pkg/testutils"
)

func model(types string) string {
	return fmt.Sprintf("name: test\ntypes:\n%s", types)
}

var _ = Describe("metadata", func() {
	Context("loading", func() {
		var fs vfs.FileSystem

		BeforeEach(func() {
			fs = Must(TestFileSystem("testdata", true))
		})

		AfterEach(func() {
			vfs.Cleanup(fs)
		})

		It("loads a model", func() {
			m := Must(me.Load("testdata/model.yaml", fs))
			Expect(m.Name).To(Equal("gears"))
			Expect(m.TypeNames()).To(Equal([]string{"Entity", "Gear", "Mesh", "GearAnalysis"}))
			Expect(m.Packages()).To(Equal([]string{"analyses", "design"}))
			Expect(len(m.PackageTypes("design"))).To(Equal(3))

			g := m.GetType("Gear")
			Expect(g.QualifiedName()).To(Equal("Gears.Gear"))
			Expect(m.GetType("Entity").QualifiedName()).To(Equal("Entity"))
			Expect(m.GetType("Entity").Abstract).To(BeTrue())
			Expect(g.Properties[0].NativeField()).To(Equal("teeth"))
			Expect(g.Properties[1].NativeField()).To(Equal("Meshes"))
			Expect(g.Properties[1].String()).To(Equal("Meshes(list Mesh)"))
			Expect(m.GetType("Unknown")).To(BeNil())
		})

		It("reports the failing file", func() {
			MustBeSuccessful(vfs.WriteFile(fs, "/broken.yaml", []byte(model("- name: A\n")), 0o600))
			_, err := me.Load("/broken.yaml", fs)
			Expect(err).To(MatchError(`/broken.yaml: type "A": package missing`))
		})

		It("fails for missing files", func() {
			_, err := me.Load("testdata/missing.yaml", fs)
			Expect(err).To(HaveOccurred())
		})
	})

	Context("validation", func() {
		It("requires a model name", func() {
			_, err := me.Parse([]byte("types: []\n"))
			Expect(err).To(MatchError("model name missing"))
		})

		It("rejects unknown fields", func() {
			_, err := me.Parse([]byte(model("- name: A\n  package: p\n  parent: B\n")))
			Expect(err).To(MatchError(ContainSubstring("invalid metadata")))
		})

		It("rejects duplicate types", func() {
			_, err := me.Parse([]byte(model("- name: A\n  package: p\n- name: A\n  package: p\n")))
			Expect(err).To(MatchError(`duplicate type "A"`))
		})

		It("rejects unknown ancestors", func() {
			_, err := me.Parse([]byte(model("- name: A\n  package: p\n  ancestors: [B]\n")))
			Expect(err).To(MatchError(`type "A": unknown ancestor "B"`))
		})

		It("rejects foreign ancestors", func() {
			_, err := me.Parse([]byte(model("- name: A\n  package: p\n- name: B\n  package: q\n  ancestors: [A]\n")))
			Expect(err).To(MatchError(`type "B": ancestor "A" belongs to foreign package "p"`))
		})

		It("rejects ancestor cycles", func() {
			_, err := me.Parse([]byte(model(`
- name: A
  package: p
  ancestors: [C]
- name: B
  package: p
  ancestors: [A]
- name: C
  package: p
  ancestors: [B]
`)))
			Expect(err).To(MatchError(`ancestor cycle for "A": A->C->B->A`))
		})

		It("rejects invalid properties", func() {
			_, err := me.Parse([]byte(model("- name: A\n  package: p\n  properties:\n  - name: X\n    shape: scalar\n    type: complex\n")))
			Expect(err).To(MatchError(`type "A": property "X": unsupported scalar kind "complex"`))

			_, err = me.Parse([]byte(model("- name: A\n  package: p\n  properties:\n  - name: X\n    shape: list\n    type: B\n")))
			Expect(err).To(MatchError(`type "A": property "X": unknown element type "B"`))

			_, err = me.Parse([]byte(model("- name: A\n  package: p\n  properties:\n  - name: X\n    shape: map\n    type: A\n")))
			Expect(err).To(MatchError(`type "A": property "X": invalid shape "map"`))

			_, err = me.Parse([]byte(model("- name: A\n  package: p\n  properties:\n  - name: X\n    shape: object\n    type: A\n  - name: X\n    shape: object\n    type: A\n")))
			Expect(err).To(MatchError(`type "A": duplicate property "X"`))
		})
	})

	Context("digest", func() {
		data := model("- name: A\n  package: p\n- name: B\n  package: p\n  ancestors: [A]\n")

		It("is stable", func() {
			d := Must(me.Digest(Must(me.Parse([]byte(data)))))
			Expect(d).To(HaveLen(64))
			Expect(me.Digest(Must(me.Parse([]byte(data))))).To(Equal(d))
		})

		It("ignores formatting", func() {
			d := Must(me.Digest(Must(me.Parse([]byte(data)))))
			json := `{"types":[{"package":"p","name":"A"},{"name":"B","ancestors":["A"],"package":"p"}],"name":"test"}`
			Expect(me.Digest(Must(me.Parse([]byte(json))))).To(Equal(d))
		})

		It("changes with the hierarchy", func() {
			d := Must(me.Digest(Must(me.Parse([]byte(data)))))
			changed := model("- name: A\n  package: p\n- name: B\n  package: p\n")
			Expect(me.Digest(Must(me.Parse([]byte(changed))))).NotTo(Equal(d))
		})
	})
})
