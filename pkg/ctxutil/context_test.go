package ctxutil_test

import (
	"context"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	me "github.com/mandelsoft/drivebind/pkg/ctxutil"
)

var _ = Describe("contexts", func() {
	It("cancels", func() {
		ctx := me.CancelContext(context.Background())
		Expect(ctx.Err()).To(BeNil())
		me.Cancel(ctx)
		Expect(ctx.Err()).To(Equal(context.Canceled))
	})

	It("times out", func() {
		ctx := me.TimeoutContext(context.Background(), 10*time.Millisecond)
		Eventually(ctx.Done()).Should(BeClosed())
		Expect(ctx.Err()).To(Equal(context.DeadlineExceeded))
	})

	It("ignores foreign contexts", func() {
		me.Cancel(context.Background())
	})
})
