package server_test

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	. "github.com/mandelsoft/goutils/testutils"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	me "github.com/mandelsoft/drivebind/pkg/server"
)

var _ = Describe("server", func() {
	It("serves until cancelled", func() {
		srv := me.NewServer("127.0.0.1:0")
		srv.HandleFunc("/metadata", func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, "drivetrain")
		})
		Expect(srv.Address()).To(Equal("127.0.0.1:0"))
		MustBeSuccessful(srv.Listen())
		Expect(srv.Address()).NotTo(Equal("127.0.0.1:0"))

		ctx, cancel := context.WithCancel(context.Background())
		done := make(chan error, 1)
		go func() {
			done <- srv.ServeContext(ctx, time.Second)
		}()

		resp := Must(http.Get(fmt.Sprintf("http://%s/metadata", srv.Address())))
		data := Must(io.ReadAll(resp.Body))
		resp.Body.Close()
		Expect(string(data)).To(Equal("drivetrain"))

		cancel()
		Eventually(done, 5*time.Second).Should(Receive(BeNil()))
	})

	It("reports listen errors", func() {
		srv := me.NewServer("127.0.0.1:0")
		MustBeSuccessful(srv.Listen())
		defer srv.Close()

		other := me.NewServer(srv.Address())
		Expect(other.ServeContext(context.Background(), time.Second)).NotTo(Succeed())
	})
})
