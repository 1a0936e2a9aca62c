package memory

import (
	"github.com/mandelsoft/logging"
)

var REALM = logging.DefineRealm("drivebind/native/memory", "in-process native object space")

var log = logging.DynamicLogger(logging.DefaultContext(), REALM)
