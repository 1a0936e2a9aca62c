package random

import (
	"github.com/mandelsoft/logging"
)

var REALM = logging.DefineRealm("drivebind/native/memory/random", "random object spaces")

var log = logging.DynamicLogger(logging.DefaultContext(), REALM)
