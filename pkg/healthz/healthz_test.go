package healthz_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	me "github.com/mandelsoft/drivebind/pkg/healthz"
)

var _ = Describe("health checks", func() {
	var failure error

	BeforeEach(func() {
		failure = nil
		me.Register("space", func() error { return nil })
		me.Register("handler", func() error { return failure })
		DeferCleanup(func() {
			me.Unregister("space")
			me.Unregister("handler")
		})
	})

	It("reports healthy components", func() {
		rec := httptest.NewRecorder()
		me.Healthz(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
		Expect(rec.Code).To(Equal(http.StatusOK))
		Expect(rec.Body.String()).To(Equal("handler: ok\nspace: ok\n"))
	})

	It("reports failed components", func() {
		failure = fmt.Errorf("closed")
		rec := httptest.NewRecorder()
		me.Healthz(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
		Expect(rec.Code).To(Equal(http.StatusInternalServerError))
		Expect(rec.Body.String()).To(Equal("handler: closed\nspace: ok\n"))
	})
})
