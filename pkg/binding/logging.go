package binding

import (
	"github.com/mandelsoft/logging"
)

var REALM = logging.DefineRealm("drivebind/binding", "native object wrappers")

var log = logging.DynamicLogger(logging.DefaultContext(), REALM)
