package metadata

import (
	"github.com/mandelsoft/logging"
)

var REALM = logging.DefineRealm("drivebind/metadata", "native type metadata")

var log = logging.DynamicLogger(logging.DefaultContext(), REALM)
