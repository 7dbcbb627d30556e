package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mandelsoft/tasktracker/pkg/tasks"
)

type Add struct {
	cmd *cobra.Command

	mainopts *Options
}

func NewAdd(opts *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "add <description>",
		Aliases: []string{"insert", "a"},
		Short:   "add a task to the list",
	}
	TweakCommand(cmd, cobra.MinimumNArgs(1))

	c := &Add{
		cmd:      cmd,
		mainopts: opts,
	}
	c.cmd.RunE = func(cmd *cobra.Command, args []string) error { return c.Run(args) }
	return cmd
}

func (c *Add) Run(args []string) error {
	desc, err := Description(args)
	if err != nil {
		return err
	}
	var id int
	err = c.mainopts.Modify(func(m *tasks.Manager) error {
		id, err = m.AddTask(desc)
		return err
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(c.cmd.OutOrStdout(), "Task added: %d\n", id)
	return nil
}
