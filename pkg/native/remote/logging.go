package remote

import (
	"github.com/mandelsoft/logging"
)

var REALM = logging.DefineRealm("drivebind/native/remote", "remote native runtime access")

var log = logging.DynamicLogger(logging.DefaultContext(), REALM)
