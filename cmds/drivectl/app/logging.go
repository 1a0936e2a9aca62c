package app

import (
	"github.com/mandelsoft/logging"
)

var REALM = logging.DefineRealm("drivebind/drivectl", "object space inspection")

var log = logging.DynamicLogger(logging.DefaultContext(), REALM)

// SetupLogging enables the given log level for all drivebind realms.
func SetupLogging(level string) error {
	l, err := logging.ParseLevel(level)
	if err != nil {
		return err
	}
	logging.DefaultContext().AddRule(logging.NewConditionRule(l, logging.NewRealmPrefix("drivebind")))
	return nil
}
