package app_test

import (
	"bytes"
	"os"

	. "github.com/mandelsoft/goutils/testutils"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/mandelsoft/vfs/pkg/vfs"

	"github.com/mandelsoft/drivebind/cmds/drivectl/app"
	. "github.com/mandelsoft/drivebind/pkg/testutils"
)

var _ = Describe("config", func() {
	var fs vfs.FileSystem

	BeforeEach(func() {
		fs = Must(TestFileSystem("testdata", false))
	})

	AfterEach(func() {
		vfs.Cleanup(fs)
	})

	It("defaults the log level", func() {
		cfg := app.GetConfig(fs)
		Expect(*cfg.LogLevel).To(Equal("info"))
	})

	It("reads and expands config files", func() {
		GinkgoT().Setenv("SPACE_DIR", "testdata")
		MustBeSuccessful(vfs.WriteFile(fs, app.CONFIG_FILE, []byte("space: ${SPACE_DIR}/space.yaml\nlogLevel: debug\n"), 0o600))
		cfg := app.ReadConfig(fs, app.CONFIG_FILE)
		Expect(*cfg.Space).To(Equal("testdata/space.yaml"))
		Expect(*cfg.LogLevel).To(Equal("debug"))
		Expect(cfg.Server).To(BeNil())
	})

	It("ignores invalid config files", func() {
		MustBeSuccessful(vfs.WriteFile(fs, app.CONFIG_FILE, []byte("space: [\n"), 0o600))
		Expect(app.ReadConfig(fs, app.CONFIG_FILE)).To(BeNil())
		Expect(app.ReadConfig(fs, "missing")).To(BeNil())
	})

	It("merges configs", func() {
		space := "a.yaml"
		server := "ws://localhost:8080/native"
		cfg := &app.Config{Space: &space}
		app.MergeConfig(cfg, &app.Config{Server: &server})
		app.MergeConfig(cfg, nil)
		Expect(*cfg.Space).To(Equal("a.yaml"))
		Expect(*cfg.Server).To(Equal(server))
	})

	It("prefers the environment", func() {
		GinkgoT().Setenv(app.ENV_SPACE, "testdata/space.yaml")
		MustBeSuccessful(vfs.WriteFile(fs, app.CONFIG_FILE, []byte("space: other.yaml\n"), 0o600))
		Expect(*app.GetConfig(fs).Space).To(Equal("testdata/space.yaml"))
	})

	It("uses the configured space", func() {
		Expect(os.Getenv(app.ENV_SPACE)).To(BeEmpty())
		MustBeSuccessful(vfs.WriteFile(fs, app.CONFIG_FILE, []byte("space: testdata/space.yaml\n"), 0o600))
		buf := bytes.NewBuffer(nil)
		cmd := app.New(fs)
		cmd.SetOut(buf)
		cmd.SetArgs([]string{"get", "pinion"})
		MustBeSuccessful(cmd.Execute())
		Expect(buf.String()).To(ContainSubstring("pinion HypoidGear pinion"))
	})
})
