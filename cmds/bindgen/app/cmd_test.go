package app_test

import (
	"bytes"

	. "github.com/mandelsoft/goutils/testutils"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/mandelsoft/vfs/pkg/vfs"
	"github.com/spf13/cobra"

	"github.com/mandelsoft/drivebind/cmds/bindgen/app"
	"github.com/mandelsoft/drivebind/pkg/generator"
	. "github.com/mandelsoft/drivebind/pkg/testutils"
)

var _ = Describe("bindgen", func() {
	var fs vfs.FileSystem
	var cmd *cobra.Command
	var buf *bytes.Buffer

	BeforeEach(func() {
		fs = Must(TestFileSystem("testdata", false))
		buf = bytes.NewBuffer(nil)
		cmd = app.New(fs)
		cmd.SetOut(buf)
	})

	AfterEach(func() {
		vfs.Cleanup(fs)
	})

	It("validates metadata", func() {
		cmd.SetArgs([]string{"-m", "testdata/model.yaml", "validate"})
		MustBeSuccessful(cmd.Execute())
		Expect(buf.String()).To(Equal("gears: 4 types in 2 packages, maximum depth 1\n"))
	})

	It("requires metadata", func() {
		cmd.SetArgs([]string{"validate"})
		Expect(cmd.Execute()).To(MatchError("metadata file required"))
	})

	It("shows cast tables", func() {
		cmd.SetArgs([]string{"-m", "testdata/model.yaml", "casts", "Entity", "Gear"})
		MustBeSuccessful(cmd.Execute())
		Expect("\n" + buf.String()).To(Equal(`
Entity
  ancestors:   
  descendants: Gear, Mesh
Gear
  ancestors:   Entity
  descendants: 
`))
	})

	It("rejects unknown types", func() {
		cmd.SetArgs([]string{"-m", "testdata/model.yaml", "casts", "Shaft"})
		Expect(cmd.Execute()).To(MatchError(`unknown type "Shaft"`))
	})

	It("dumps all cast tables", func() {
		cmd.SetArgs([]string{"-m", "testdata/model.yaml", "casts"})
		MustBeSuccessful(cmd.Execute())
		Expect(buf.String()).To(HavePrefix("- Entity\n  descendants:\n  - Gear\n  - Mesh\n"))
	})

	It("generates and checks bindings", func() {
		cmd.SetArgs([]string{"-m", "testdata/model.yaml", "check", "-o", "/gen", "-b", "example.com/gears"})
		Expect(cmd.Execute()).To(MatchError(generator.ErrStale))

		buf.Reset()
		cmd = app.New(fs)
		cmd.SetOut(buf)
		cmd.SetArgs([]string{"-m", "testdata/model.yaml", "generate", "-o", "/gen", "-b", "example.com/gears"})
		MustBeSuccessful(cmd.Execute())
		Expect(buf.String()).To(Equal("generated 4 types in 2 packages\n"))
		Expect(vfs.ReadFile(fs, "/gen/design/gear.go")).To(ContainSubstring("func NewGear("))

		buf.Reset()
		cmd = app.New(fs)
		cmd.SetOut(buf)
		cmd.SetArgs([]string{"-m", "testdata/model.yaml", "digest"})
		MustBeSuccessful(cmd.Execute())
		digest := buf.String()

		buf.Reset()
		cmd = app.New(fs)
		cmd.SetOut(buf)
		cmd.SetArgs([]string{"-m", "testdata/model.yaml", "check", "-o", "/gen", "-b", "example.com/gears"})
		MustBeSuccessful(cmd.Execute())
		Expect(buf.String()).To(Equal("bindings up to date (" + digest[:len(digest)-1] + ")\n"))
	})

	It("requires an import path", func() {
		cmd.SetArgs([]string{"-m", "testdata/model.yaml", "generate", "-o", "/gen"})
		Expect(cmd.Execute()).To(MatchError("import path of output directory required"))
	})
})
