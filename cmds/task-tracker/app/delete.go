package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mandelsoft/tasktracker/pkg/tasks"
)

type Delete struct {
	cmd *cobra.Command

	mainopts *Options
}

func NewDelete(opts *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "delete <id>",
		Aliases: []string{"remove", "d"},
		Short:   "delete a task",
	}
	TweakCommand(cmd, cobra.ExactArgs(1))

	c := &Delete{
		cmd:      cmd,
		mainopts: opts,
	}
	c.cmd.RunE = func(cmd *cobra.Command, args []string) error { return c.Run(args) }
	return cmd
}

func (c *Delete) Run(args []string) error {
	id, err := ParseId(args[0])
	if err != nil {
		return err
	}
	err = c.mainopts.Modify(func(m *tasks.Manager) error {
		return m.DeleteTask(id)
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(c.cmd.OutOrStdout(), "Task deleted: %d\n", id)
	return nil
}
