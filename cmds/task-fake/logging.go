package main

import (
	"github.com/mandelsoft/logging"
	"github.com/mandelsoft/logging/logrusl"
	"github.com/mandelsoft/logging/logrusr"
)

var REALM = logging.NewRealm("fake")

var log logging.Logger

func init() {
	logcfg := logrusl.Human(true)
	lctx := logging.DefaultContext()
	lctx.SetBaseLogger(logrusr.New(logcfg.NewLogrus()))
	log = lctx.Logger(REALM)
}

func ConfigureLogging(level string) error {
	l, err := logging.ParseLevel(level)
	if err != nil {
		return err
	}
	lctx := logging.DefaultContext()
	lctx.AddRule(logging.NewConditionRule(l, logging.NewRealmPrefix("fake")))
	lctx.AddRule(logging.NewConditionRule(l, logging.NewRealmPrefix("tasktracker")))
	lctx.AddRule(logging.NewConditionRule(l, logging.NewRealmPrefix("database")))
	return nil
}
