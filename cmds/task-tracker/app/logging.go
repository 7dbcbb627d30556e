package app

import (
	"fmt"

	"github.com/mandelsoft/logging"
)

func ConfigureLogging(level string) error {
	l, err := logging.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("invalid log level %q", level)
	}
	lctx := logging.DefaultContext()
	lctx.AddRule(logging.NewConditionRule(l, logging.NewRealmPrefix("tasktracker")))
	lctx.AddRule(logging.NewConditionRule(l, logging.NewRealmPrefix("database")))
	return nil
}
