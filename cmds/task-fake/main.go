package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/goombaio/namegenerator"
	"github.com/spf13/pflag"

	"github.com/mandelsoft/tasktracker/pkg/impl/database/filesystem"
	"github.com/mandelsoft/tasktracker/pkg/tasks"
)

func Error(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+msg+"\n", args...)
	os.Exit(1)
}

func main() {
	var file string = "tasks.json"
	var count int = 20
	var seed int64
	var level string = "warn"

	flags := pflag.NewFlagSet("task-fake", pflag.ExitOnError)

	flags.StringVarP(&file, "file", "f", file, "task file")
	flags.IntVarP(&count, "count", "n", count, "number of tasks to add")
	flags.Int64Var(&seed, "seed", seed, "random seed (default current time)")
	flags.StringVarP(&level, "log-level", "L", level, "log level")

	err := flags.Parse(os.Args[1:])
	if err != nil {
		Error("invalid arguments: %s", err)
	}
	if count < 0 {
		Error("invalid count %d", count)
	}
	if err := ConfigureLogging(level); err != nil {
		Error("invalid log level %q", level)
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	db, err := filesystem.New[tasks.Task](file)
	if err != nil {
		Error("cannot open task file %q: %s", file, err)
	}
	m, err := tasks.NewManager(db)
	if err != nil {
		Error("cannot load tasks: %s", err)
	}

	f := NewFaker(rand.New(rand.NewSource(seed)), namegenerator.NewNameGenerator(seed))
	f.Populate(m, count)

	err = m.Save()
	if err != nil {
		Error("%s", err)
	}
	fmt.Printf("%d tasks in %s\n", len(m.TasksSortedByStatus()), file)
}
