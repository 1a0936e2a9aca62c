package app_test

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"

	. "github.com/mandelsoft/goutils/testutils"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/mandelsoft/vfs/pkg/vfs"
	"github.com/onsi/gomega/gbytes"
	"github.com/spf13/cobra"

	"github.com/mandelsoft/drivebind/cmds/drivectl/app"
	"github.com/mandelsoft/drivebind/pkg/binding"
	"github.com/mandelsoft/drivebind/pkg/ctxutil"
	. "github.com/mandelsoft/drivebind/pkg/testutils"
)

const SPACE = "testdata/space.yaml"

var _ = Describe("drivectl", func() {
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

	Context("get", func() {
		It("lists root objects", func() {
			cmd.SetArgs([]string{"-f", SPACE, "get"})
			MustBeSuccessful(cmd.Execute())
			Expect("\n" + buf.String()).To(Equal(`
ID            TYPE                 NAME
axle          Assembly             rear axle
final-drive   HypoidGearSet        final drive
axle-analysis RootAssemblyAnalysis rear axle analysis
`))
		})

		It("shows properties", func() {
			cmd.SetArgs([]string{"-f", SPACE, "get", "input-shaft-analysis", "-o", "yaml", "-p", "Name,NumberOfNodes,ComponentDesign,PowerLoss"})
			MustBeSuccessful(cmd.Execute())
			Expect(buf.String()).To(MatchYAML(`
id: input-shaft-analysis
type: ShaftAnalysis
runtimeType: ShaftAnalysis
properties:
  Name: input shaft analysis
  NumberOfNodes: 1200
  ComponentDesign: Shaft[input-shaft]
  PowerLoss: null
`))
		})

		It("shows collections", func() {
			cmd.SetArgs([]string{"-f", SPACE, "get", "accessory-drive-analysis", "final-drive-analysis", "-o", "json", "-p", "Pulleys,AssemblyAnalysisCases"})
			err := cmd.Execute()
			Expect(err).To(MatchError(binding.ErrNoSuchProperty))
			Expect(err.Error()).To(ContainSubstring(`final-drive-analysis: property "Pulleys" of HypoidGearSetAnalysis`))

			buf.Reset()
			cmd = app.New(fs)
			cmd.SetOut(buf)
			cmd.SetArgs([]string{"-f", SPACE, "get", "accessory-drive-analysis", "final-drive-analysis", "-o", "json", "-p", "AssemblyAnalysisCases,ComponentAnalyses"})
			MustBeSuccessful(cmd.Execute())
			Expect(buf.String()).To(MatchJSON(`[
  {"id":"accessory-drive-analysis","type":"BeltDriveAnalysis","runtimeType":"BeltDriveAnalysis","properties":{"AssemblyAnalysisCases":null,"ComponentAnalyses":null}},
  {"id":"final-drive-analysis","type":"HypoidGearSetAnalysis","runtimeType":"HypoidGearSetAnalysis","properties":{"AssemblyAnalysisCases":[],"ComponentAnalyses":null}}
]`))
		})

		It("shows polymorphic elements", func() {
			cmd.SetArgs([]string{"-f", SPACE, "get", "accessory-drive-analysis", "-o", "yaml", "-p", "Pulleys"})
			MustBeSuccessful(cmd.Execute())
			Expect(buf.String()).To(MatchYAML(`
id: accessory-drive-analysis
type: BeltDriveAnalysis
runtimeType: BeltDriveAnalysis
properties:
  Pulleys:
  - PulleyAnalysis[crank-pulley]
  - <null>
`))
		})

		It("reports unknown objects", func() {
			cmd.SetArgs([]string{"-f", SPACE, "get", "gearbox"})
			Expect(cmd.Execute()).To(HaveOccurred())
		})

		It("requires an object space", func() {
			cmd.SetArgs([]string{"get"})
			Expect(cmd.Execute()).To(MatchError("no object space specified (use --space or --server)"))
		})
	})

	Context("types", func() {
		It("shows cast tables", func() {
			cmd.SetArgs([]string{"-f", SPACE, "types", "ConicalGearSetAnalysis"})
			MustBeSuccessful(cmd.Execute())
			Expect(buf.String()).To(HavePrefix(`ConicalGearSetAnalysis (Drivetrain.Analyses.Gears.ConicalGearSetAnalysis)
  ancestors:   GearSetAnalysis, SpecialisedAssemblyAnalysis, AbstractAssemblyAnalysis, PartAnalysis, DesignEntityAnalysis
  descendants: AGMAGleasonConicalGearSetAnalysis, BevelGearSetAnalysis, HypoidGearSetAnalysis, SpiralBevelGearSetAnalysis
`))
		})

		It("describes types", func() {
			cmd.SetArgs([]string{"types", "PartFEAnalysis", "-o", "yaml"})
			MustBeSuccessful(cmd.Execute())
			Expect(buf.String()).To(MatchYAML(`
name: PartFEAnalysis
namespace: Drivetrain.Analyses.FE
package: analyses
ancestors: [PartAnalysis, DesignEntityAnalysis]
descendants: [BearingAnalysis, ShaftAnalysis]
properties:
- name: Converged
  field: Converged
  shape: scalar
  type: bool
  declaredBy: DesignEntityAnalysis
- name: Name
  field: Name
  shape: scalar
  type: string
  declaredBy: DesignEntityAnalysis
- name: NumberOfNodes
  field: NodeCount
  shape: scalar
  type: int
  declaredBy: PartFEAnalysis
`))
		})

		It("lists all types", func() {
			cmd.SetArgs([]string{"types"})
			MustBeSuccessful(cmd.Execute())
			Expect(buf.String()).To(HavePrefix("PACKAGE "))
			Expect(buf.String()).To(MatchRegexp(`(?m)^analyses +HypoidGearSetAnalysis +Drivetrain\.Analyses\.Gears +7$`))
		})

		It("rejects unknown types", func() {
			cmd.SetArgs([]string{"types", "Gearbox"})
			Expect(cmd.Execute()).To(MatchError(`unknown type "Gearbox"`))
		})
	})

	Context("cast", func() {
		It("casts along a chain", func() {
			cmd.SetArgs([]string{"-f", SPACE, "cast", "final-drive-analysis", "--as", "GearSetAnalysis", "ConicalGearSetAnalysis", "PartAnalysis", "HypoidGearSetAnalysis"})
			MustBeSuccessful(cmd.Execute())
			Expect("\n" + buf.String()).To(Equal(`
GearSetAnalysis[final-drive-analysis]
-> ConicalGearSetAnalysis[final-drive-analysis]
-> PartAnalysis[final-drive-analysis]
-> HypoidGearSetAnalysis[final-drive-analysis]
`))
		})

		It("reports invalid casts", func() {
			cmd.SetArgs([]string{"-f", SPACE, "cast", "final-drive-analysis", "--as", "SpecialisedAssemblyAnalysis", "BeltDriveAnalysis"})
			Expect(cmd.Execute()).To(MatchError(`cannot cast SpecialisedAssemblyAnalysis to "BeltDriveAnalysis": incompatible runtime type "HypoidGearSetAnalysis"`))
			Expect(buf.String()).To(Equal("SpecialisedAssemblyAnalysis[final-drive-analysis]\n"))
		})

		It("rejects mismatching declared types", func() {
			cmd.SetArgs([]string{"-f", SPACE, "cast", "final-drive-analysis", "--as", "BeltDriveAnalysis", "PartAnalysis"})
			Expect(cmd.Execute()).To(MatchError(binding.ErrTypeMismatch))
		})
	})

	Context("fake", func() {
		It("creates a random object space", func() {
			cmd.SetArgs([]string{"fake", "-o", "/fake.yaml", "--seed", "5", "-r", "3", "-t", "GearSetAnalysis"})
			MustBeSuccessful(cmd.Execute())
			Expect(buf.String()).To(MatchRegexp(`^created \d+ objects in /fake.yaml\n$`))

			buf.Reset()
			cmd = app.New(fs)
			cmd.SetOut(buf)
			cmd.SetArgs([]string{"-f", "/fake.yaml", "get", "-o", "yaml", "-p", "Name"})
			MustBeSuccessful(cmd.Execute())
			Expect(buf.String()).To(ContainSubstring("GearSetAnalysis"))
		})
	})

	Context("serve", func() {
		It("serves the object space", func() {
			out := gbytes.NewBuffer()
			ctx := ctxutil.CancelContext(context.Background())
			defer ctxutil.Cancel(ctx)

			cmd.SetOut(out)
			cmd.SetArgs([]string{"-f", SPACE, "serve", "-a", "127.0.0.1:0"})
			done := make(chan error, 1)
			go func() {
				defer GinkgoRecover()
				done <- cmd.ExecuteContext(ctx)
			}()
			Eventually(out, 5*time.Second).Should(gbytes.Say(`serving 13 objects on ws://`))
			url := regexp.MustCompile(`ws://\S+`).FindString(string(out.Contents()))

			remote := app.New(fs)
			remote.SetOut(buf)
			remote.SetArgs([]string{"-s", url, "get", "pinion-analysis", "-o", "yaml", "-p", "ComponentDesign,Meshes"})
			MustBeSuccessful(remote.Execute())
			Expect(buf.String()).To(MatchYAML(`
id: pinion-analysis
type: HypoidGearAnalysis
runtimeType: HypoidGearAnalysis
properties:
  ComponentDesign: HypoidGear[pinion]
  Meshes:
  - HypoidGearMeshAnalysis[mesh-analysis]
`))

			resp := Must(http.Get("http" + strings.TrimSuffix(strings.TrimPrefix(url, "ws"), "/native") + "/healthz"))
			defer resp.Body.Close()
			Expect(resp.StatusCode).To(Equal(http.StatusOK))
			Expect(string(Must(io.ReadAll(resp.Body)))).To(Equal("native: ok\nspace: ok\n"))

			ctxutil.Cancel(ctx)
			Eventually(done, 15*time.Second).Should(Receive(BeNil()))
		})
	})
})
