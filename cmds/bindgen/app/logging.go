package app

import (
	"github.com/mandelsoft/logging"
)

var REALM = logging.DefineRealm("drivebind/bindgen", "binding generator command")

var log = logging.DynamicLogger(logging.DefaultContext(), REALM)
