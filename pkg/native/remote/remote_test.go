package remote_test

import (
	"context"
	"math"
	"net/http/httptest"
	"strings"

	. "github.com/mandelsoft/goutils/testutils"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/mandelsoft/vfs/pkg/vfs"

	"github.com/mandelsoft/drivebind/pkg/binding"
	"github.com/mandelsoft/drivebind/pkg/drivetrain"
	"github.com/mandelsoft/drivebind/pkg/drivetrain/analyses"
	"github.com/mandelsoft/drivebind/pkg/native"
	"github.com/mandelsoft/drivebind/pkg/native/memory"
	me "github.com/mandelsoft/drivebind/pkg/native/remote"
	. "github.com/mandelsoft/drivebind/pkg/testutils"
)

var _ = Describe("remote runtime", func() {
	var fs vfs.FileSystem
	var space *memory.Space
	var handler *me.Handler
	var server *httptest.Server
	var client *me.Client

	BeforeEach(func() {
		fs = Must(TestFileSystem("testdata", true))
		space = Must(memory.Load("testdata/space.yaml", drivetrain.MustMetadata(), fs))
		handler = me.NewHandler(space)
		server = httptest.NewServer(handler)
		client = Must(me.Dial(context.Background(), "ws"+strings.TrimPrefix(server.URL, "http")))
	})

	AfterEach(func() {
		client.Close()
		handler.Close()
		server.Close()
		vfs.Cleanup(fs)
	})

	It("lists roots", func() {
		roots := Must(client.Roots())
		Expect(len(roots)).To(Equal(3))
		Expect(roots[2].Identity()).To(Equal("axle-analysis"))
		Expect(roots[2].TypeName()).To(Equal("RootAssemblyAnalysis"))
	})

	It("reads fields", func() {
		h := Must(client.Lookup("input-shaft-analysis"))
		Expect(h.Field("NodeCount")).To(Equal(float64(1200)))
		Expect(h.Field("PowerLoss")).To(BeNil())
	})

	It("resolves objects", func() {
		h := Must(client.Lookup("pinion-analysis"))
		d := Must(h.Object("ComponentDesign"))
		Expect(d.Identity()).To(Equal("pinion"))
		Expect(d.TypeName()).To(Equal("HypoidGear"))
		Expect(Must(client.Lookup("ring-analysis")).Object("ComponentDesign")).NotTo(BeNil())
		Expect(Must(client.Lookup("mesh-analysis")).Field("PowerLoss")).Error().To(MatchError(native.ErrUnknownField))
	})

	It("distinguishes empty and null collections", func() {
		c := Must(Must(client.Lookup("final-drive-analysis")).Collection("AssemblyAnalysisCases"))
		Expect(c).NotTo(BeNil())
		Expect(c.Len()).To(Equal(0))
		Expect(Must(client.Lookup("ring-analysis")).Collection("Meshes")).To(BeNil())
	})

	It("keeps null elements", func() {
		c := Must(Must(client.Lookup("accessory-drive-analysis")).Collection("Pulleys"))
		Expect(c.Len()).To(Equal(2))
		Expect(Must(c.Element(0)).TypeName()).To(Equal("PulleyAnalysis"))
		Expect(c.Element(1)).To(BeNil())
	})

	It("reports values which cannot be transferred", func() {
		MustBeSuccessful(space.SetField("input-shaft-analysis", "PowerLoss", math.NaN()))
		h := Must(client.Lookup("input-shaft-analysis"))
		_, err := h.Field("PowerLoss")
		Expect(err).To(MatchError(ContainSubstring("cannot encode response: json: unsupported value: NaN")))
		Expect(h.Field("NodeCount")).To(Equal(float64(1200)))
	})

	It("answers type questions", func() {
		h := Must(client.Lookup("final-drive-analysis"))
		Expect(h.(native.TypeChecker).IsInstanceOf("GearSetAnalysis")).To(BeTrue())
		Expect(h.(native.TypeChecker).IsInstanceOf("BeltDriveAnalysis")).To(BeFalse())
		Expect(Must(h.(native.Lineage).TypeLineage())[1]).To(Equal("AGMAGleasonConicalGearSetAnalysis"))
	})

	It("maps errors", func() {
		_, err := client.Lookup("gearbox")
		Expect(err).To(MatchError(native.ErrNotFound))

		h := Must(client.Lookup("ring-analysis"))
		MustBeSuccessful(space.Invalidate("ring-analysis"))
		_, err = h.Field("Name")
		Expect(err).To(MatchError(native.ErrInvalidHandle))
	})

	It("reports unknown operations", func() {
		resp := handler.Process(&me.Request{Op: "delete", Id: "axle"})
		Expect(resp.Error).To(Equal(`unknown operation "delete"`))
		Expect(resp.Code).To(Equal(""))
	})

	It("behaves like the local runtime", func() {
		local := Must(binding.Wrap(analyses.Registry, analyses.TYPE_ABSTRACT_ASSEMBLY_ANALYSIS, Must(space.Lookup("axle-analysis"))))
		remote := Must(binding.Wrap(analyses.Registry, analyses.TYPE_ABSTRACT_ASSEMBLY_ANALYSIS, Must(client.Lookup("axle-analysis"))))
		Expect(remote.TypeName()).To(Equal(local.TypeName()))

		for _, n := range local.Type().Properties() {
			lv := Must(binding.ReadProperty(local, n))
			rv := Must(binding.ReadProperty(remote, n))
			Expect(rv.Present).To(Equal(lv.Present), n)
			Expect(rv.Scalar).To(Equal(lv.Scalar), n)
			Expect(len(rv.List)).To(Equal(len(lv.List)), n)
			for i := range lv.List {
				Expect(rv.List[i].TypeName()).To(Equal(lv.List[i].TypeName()), n)
				Expect(binding.SameHandle(rv.List[i], lv.List[i])).To(BeTrue(), n)
			}
		}
	})

	It("fails after close", func() {
		MustBeSuccessful(client.Close())
		_, err := client.Lookup("axle")
		Expect(err).To(HaveOccurred())
		MustBeSuccessful(client.Close())
	})

	It("rejects connections after handler close", func() {
		MustBeSuccessful(handler.Health())
		MustBeSuccessful(handler.Close())
		Expect(handler.Health()).To(MatchError("native access handler closed"))
		_, err := me.Dial(context.Background(), "ws"+strings.TrimPrefix(server.URL, "http"))
		Expect(err).To(HaveOccurred())
	})
})
