package app

import (
	"fmt"

	"github.com/mandelsoft/goutils/general"
	"github.com/mandelsoft/vfs/pkg/osfs"
	"github.com/mandelsoft/vfs/pkg/vfs"
	"github.com/spf13/cobra"

	"github.com/mandelsoft/tasktracker/pkg/impl/database/filesystem"
	"github.com/mandelsoft/tasktracker/pkg/tasks"
)

const NAME = "task-tracker"

const DEFAULT_FILE = "tasks.json"
const DEFAULT_LOG_LEVEL = "warn"

type Options struct {
	file  string
	level string
	fs    vfs.FileSystem
}

// Complete fills unset options from the configuration
// and configures logging.
func (o *Options) Complete() error {
	cfg, err := GetConfig(o.fs)
	if err != nil {
		return err
	}
	if o.file == "" {
		o.file = *cfg.File
	}
	if o.level == "" {
		o.level = *cfg.LogLevel
	}
	return ConfigureLogging(o.level)
}

func (o *Options) Manager() (*tasks.Manager, error) {
	db, err := filesystem.NewSpecification[tasks.Task](o.file, o.fs).Create()
	if err != nil {
		return nil, fmt.Errorf("cannot open task file %q: %w", o.file, err)
	}
	return tasks.NewManager(db)
}

// Modify executes a task list modification and saves
// the result if it succeeds.
func (o *Options) Modify(f func(m *tasks.Manager) error) error {
	m, err := o.Manager()
	if err != nil {
		return err
	}
	err = f(m)
	if err != nil {
		return err
	}
	return m.Save()
}

func New(fss ...vfs.FileSystem) *cobra.Command {
	opts := &Options{
		fs: general.OptionalDefaulted(vfs.FileSystem(osfs.OsFs), fss...),
	}

	maincmd := &cobra.Command{
		Use:   NAME + " <options> <cmd> <args>",
		Short: "manage a task list",
		Long: `
This command can be used to manage a simple task list stored
as JSON file (default tasks.json in the current directory).
`,
		Args:             cobra.ArbitraryArgs,
		RunE:             func(cmd *cobra.Command, args []string) error { return cmd.Help() },
		SilenceUsage:     true,
		SilenceErrors:    true,
		TraverseChildren: true,
	}
	// usage output must work without a valid configuration
	maincmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if cmd == maincmd || cmd.Name() == "help" {
			return nil
		}
		return opts.Complete()
	}
	maincmd.SetFlagErrorFunc(FlagError)
	maincmd.CompletionOptions.DisableDefaultCmd = true

	flags := maincmd.PersistentFlags()
	flags.StringVarP(&opts.file, "file", "f", "", "task file (default "+DEFAULT_FILE+")")
	flags.StringVarP(&opts.level, "log-level", "L", "", "log level (default "+DEFAULT_LOG_LEVEL+")")

	maincmd.AddCommand(NewAdd(opts))
	maincmd.AddCommand(NewUpdate(opts))
	maincmd.AddCommand(NewDelete(opts))
	maincmd.AddCommand(NewMark(opts, tasks.IN_PROGRESS, "mark-in-progress", "in-progress"))
	maincmd.AddCommand(NewMark(opts, tasks.DONE, "mark-done", "done"))
	maincmd.AddCommand(NewMark(opts, tasks.TODO, "mark-todo", "todo"))
	maincmd.AddCommand(NewList(opts))
	maincmd.AddCommand(NewShow(opts))
	return maincmd
}
