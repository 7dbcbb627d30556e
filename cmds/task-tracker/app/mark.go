package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mandelsoft/tasktracker/pkg/tasks"
)

// Mark sets the status of a task.
type Mark struct {
	cmd *cobra.Command

	mainopts *Options
	status   tasks.Status
}

func NewMark(opts *Options, status tasks.Status, name string, aliases ...string) *cobra.Command {
	cmd := &cobra.Command{
		Use:     name + " <id>",
		Aliases: aliases,
		Short:   "mark a task " + status.Label(),
	}
	TweakCommand(cmd, cobra.ExactArgs(1))

	c := &Mark{
		cmd:      cmd,
		mainopts: opts,
		status:   status,
	}
	c.cmd.RunE = func(cmd *cobra.Command, args []string) error { return c.Run(args) }
	return cmd
}

func (c *Mark) Run(args []string) error {
	id, err := ParseId(args[0])
	if err != nil {
		return err
	}
	err = c.mainopts.Modify(func(m *tasks.Manager) error {
		return m.UpdateTaskStatus(id, c.status)
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(c.cmd.OutOrStdout(), "Marked task %d %s\n", id, c.status.Label())
	return nil
}
