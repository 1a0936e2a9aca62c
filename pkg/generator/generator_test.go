package generator_test

import (
	"path"
	"strings"

	. "github.com/mandelsoft/goutils/testutils"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/mandelsoft/vfs/pkg/memoryfs"
	"github.com/mandelsoft/vfs/pkg/vfs"

	me "github.com/mandelsoft/drivebind/pkg/generator"
	"github.com/mandelsoft/drivebind/pkg/metadata"
)

const BASE = "example.com/gears"

func exists(fs vfs.FileSystem, p string) bool {
	_, err := fs.Stat(p)
	return err == nil
}

func read(fs vfs.FileSystem, p ...string) string {
	return string(Must(vfs.ReadFile(fs, path.Join(p...))))
}

var _ = Describe("generator", func() {
	var fs vfs.FileSystem
	var model *metadata.Model
	var gen *me.Generator

	BeforeEach(func() {
		fs = memoryfs.New()
		model = Must(metadata.Load("testdata/model.yaml"))
		gen = Must(me.New(model, BASE+"/", fs))
	})

	It("lists generated files", func() {
		Expect(gen.Files("design")).To(Equal([]string{"entity.go", "gear.go", "mesh.go", me.REGISTRY_FILE, me.DIGEST_FILE}))
		Expect(gen.Digest()).To(Equal(Must(metadata.Digest(model))))
	})

	Context("generation", func() {
		BeforeEach(func() {
			MustBeSuccessful(gen.Generate("/out"))
		})

		It("generates all packages", func() {
			for _, pkg := range []string{"design", "analyses"} {
				for _, f := range gen.Files(pkg) {
					Expect(exists(fs, path.Join("/out", pkg, f))).To(BeTrue(), f)
				}
			}
			Expect(read(fs, "/out/design", me.DIGEST_FILE)).To(Equal(gen.Digest() + "\n"))
		})

		It("generates type files", func() {
			src := read(fs, "/out/design/gear.go")
			Expect(src).To(HavePrefix("// " + me.HEADER))
			Expect(src).To(ContainSubstring("package design"))
			Expect(src).To(ContainSubstring(`const TYPE_GEAR = "Gear"`))
			Expect(src).To(ContainSubstring("// Gear wraps the native type Gears.Gear."))
			Expect(src).To(ContainSubstring("type Gear struct {\n\tbinding.Base\n}"))
			Expect(src).To(ContainSubstring("func NewGear(h native.Handle) (*Gear, error) {"))
			Expect(src).To(ContainSubstring("func (o *Gear) NumberOfTeeth() (int, bool, error) {"))
			Expect(src).To(ContainSubstring(`return binding.Scalar[int](o, "NumberOfTeeth")`))
			Expect(src).To(ContainSubstring("func (o *Gear) Meshes() ([]binding.Object, bool, error) {"))
			Expect(src).To(ContainSubstring("func (o *Gear) Name() (string, bool, error) {"))
			Expect(src).To(ContainSubstring("func (c GearCast) AsEntity() (*Entity, error) {"))
		})

		It("marks abstract types", func() {
			src := read(fs, "/out/design/entity.go")
			Expect(src).To(ContainSubstring("The native type is abstract"))
			Expect(src).To(ContainSubstring("func (c EntityCast) AsGear() (*Gear, error) {"))
			Expect(src).To(ContainSubstring("func (c EntityCast) AsMesh() (*Mesh, error) {"))
		})

		It("generates the registry", func() {
			src := read(fs, "/out/design/"+me.REGISTRY_FILE)
			Expect(src).To(ContainSubstring(`var Registry = binding.MustNewRegistry("design", registryTable...)`))
			Expect(src).To(MatchRegexp(`Namespace:\s+"Gears"`))
			Expect(src).To(ContainSubstring(`Field: "teeth"`))
		})

		It("references foreign packages", func() {
			src := read(fs, "/out/analyses/"+me.REGISTRY_FILE)
			Expect(src).To(ContainSubstring(`"example.com/gears/design"`))
			Expect(src).To(ContainSubstring("design.TYPE_GEAR"))
			Expect(src).To(ContainSubstring("design.Registry"))
		})

		It("accepts up to date bindings", func() {
			MustBeSuccessful(gen.Check("/out"))
		})

		It("detects metadata changes", func() {
			model.GetType("Mesh").Properties = nil
			changed := Must(me.New(model, BASE, fs))
			err := changed.Check("/out")
			Expect(err).To(MatchError(me.ErrStale))
			Expect(err.Error()).To(ContainSubstring(`package "analyses" generated for digest`))

			MustBeSuccessful(changed.Generate("/out"))
			MustBeSuccessful(changed.Check("/out"))
		})

		It("detects missing files", func() {
			MustBeSuccessful(fs.Remove("/out/design/mesh.go"))
			Expect(gen.Check("/out")).To(MatchError(`generated bindings are stale: package "design": file "mesh.go" missing`))
		})

		It("detects modified files", func() {
			src := read(fs, "/out/design/gear.go")
			Expect(src).To(ContainSubstring("binding.Scalar[int]"))
			MustBeSuccessful(vfs.WriteFile(fs, "/out/design/gear.go", []byte(strings.Replace(src, "binding.Scalar[int]", "binding.Scalar[int64]", 1)), 0o644))
			Expect(gen.Check("/out")).To(MatchError(`generated bindings are stale: package "design": file "gear.go" modified`))
		})

		It("detects modified comments", func() {
			src := read(fs, "/out/design/zz_generated_registry.go")
			MustBeSuccessful(vfs.WriteFile(fs, "/out/design/zz_generated_registry.go", []byte(src+"\n// added by hand\n"), 0o644))
			Expect(gen.Check("/out")).To(MatchError(`generated bindings are stale: package "design": file "zz_generated_registry.go" modified`))
		})

		It("ignores the layout", func() {
			src := read(fs, "/out/design/mesh.go")
			MustBeSuccessful(vfs.WriteFile(fs, "/out/design/mesh.go", []byte(strings.ReplaceAll(src, "\n}\n", "\n}\n\n\n")), 0o644))
			MustBeSuccessful(gen.Check("/out"))
		})

		It("detects broken files", func() {
			MustBeSuccessful(vfs.WriteFile(fs, "/out/analyses/gear_analysis.go", []byte("package analyses\n\nfunc {"), 0o644))
			Expect(gen.Check("/out")).To(MatchError(me.ErrStale))
		})

		It("detects outdated files", func() {
			MustBeSuccessful(vfs.WriteFile(fs, "/out/design/spur_gear.go", []byte("// "+me.HEADER+"\n\npackage design\n"), 0o644))
			Expect(gen.Check("/out")).To(MatchError(`generated bindings are stale: package "design": outdated file "spur_gear.go"`))
		})

		It("detects missing packages", func() {
			Expect(gen.Check("/other")).To(MatchError(me.ErrStale))
		})

		It("removes outdated files", func() {
			MustBeSuccessful(vfs.WriteFile(fs, "/out/design/spur_gear.go", []byte("// "+me.HEADER+"\n\npackage design\n"), 0o644))
			MustBeSuccessful(vfs.WriteFile(fs, "/out/design/helper.go", []byte("package design\n"), 0o644))
			MustBeSuccessful(gen.Generate("/out"))
			Expect(exists(fs, "/out/design/spur_gear.go")).To(BeFalse())
			Expect(exists(fs, "/out/design/helper.go")).To(BeTrue())
		})
	})

	It("rejects import cycles between packages", func() {
		model.Types = append(model.Types, metadata.TypeSpecification{
			Name:    "Gearbox",
			Package: "design",
			Properties: []metadata.PropertySpecification{
				{Name: "Analysis", Shape: metadata.SHAPE_OBJECT, Type: "GearAnalysis"},
			},
		})
		_, err := me.New(model, BASE, fs)
		Expect(err).To(MatchError("import cycle between generated packages: analyses->design->analyses"))
	})

	It("rejects reserved property names", func() {
		model.GetType("Mesh").Properties[0].Name = "Cast"
		_, err := me.New(model, BASE, fs)
		Expect(err).To(MatchError(`type "Mesh": property name "Cast" is reserved`))
	})
})
