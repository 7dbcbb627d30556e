package tasks

import (
	"github.com/mandelsoft/logging"
)

var REALM = logging.DefineRealm("tasktracker", "task management")

var log = logging.DynamicLogger(logging.DefaultContext(), REALM)
