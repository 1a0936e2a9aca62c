package generator

import (
	"github.com/mandelsoft/logging"
)

var REALM = logging.DefineRealm("drivebind/generator", "binding generator")

var log = logging.DynamicLogger(logging.DefaultContext(), REALM)
