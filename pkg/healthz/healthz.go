// Package healthz keeps the health checks of the components of
// a serving process and reports them on the /healthz endpoint.
package healthz

import (
	"fmt"
	"io"
	"net/http"
	"sync"

	"github.com/mandelsoft/logging"

	"github.com/mandelsoft/drivebind/pkg/utils"
)

var REALM = logging.DefineRealm("drivebind/healthz", "server health monitoring")

var log = logging.DynamicLogger(logging.DefaultContext(), REALM)

// Check reports the health of a component. A nil error means healthy.
type Check func() error

var (
	lock   sync.Mutex
	checks = map[string]Check{}
)

func Register(key string, c Check) {
	lock.Lock()
	defer lock.Unlock()

	checks[key] = c
}

func Unregister(key string) {
	lock.Lock()
	defer lock.Unlock()

	delete(checks, key)
}

// HealthInfo executes all checks ordered by key.
func HealthInfo() (bool, string) {
	lock.Lock()
	defer lock.Unlock()

	ok := true
	info := ""
	for _, key := range utils.OrderedMapKeys(checks) {
		if err := checks[key](); err != nil {
			log.Warn("health check {{key}} failed", "key", key, "error", err)
			info = fmt.Sprintf("%s%s: %s\n", info, key, err)
			ok = false
		} else {
			info = fmt.Sprintf("%s%s: ok\n", info, key)
		}
	}
	return ok, info
}

// Healthz is a HTTP handler for the /healthz endpoint which responds with
// 200 OK if all checks succeed and with 500 Internal Server Error otherwise.
func Healthz(w http.ResponseWriter, r *http.Request) {
	ok, info := HealthInfo()
	if ok {
		w.WriteHeader(http.StatusOK)
	} else {
		w.WriteHeader(http.StatusInternalServerError)
	}
	io.WriteString(w, info)
}
