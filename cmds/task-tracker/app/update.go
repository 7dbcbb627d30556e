package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mandelsoft/tasktracker/pkg/tasks"
)

type Update struct {
	cmd *cobra.Command

	mainopts *Options
}

func NewUpdate(opts *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "update <id> <description>",
		Aliases: []string{"modify", "u"},
		Short:   "update the description of a task",
	}
	TweakCommand(cmd, cobra.MinimumNArgs(2))

	c := &Update{
		cmd:      cmd,
		mainopts: opts,
	}
	c.cmd.RunE = func(cmd *cobra.Command, args []string) error { return c.Run(args) }
	return cmd
}

func (c *Update) Run(args []string) error {
	id, err := ParseId(args[0])
	if err != nil {
		return err
	}
	desc, err := Description(args[1:])
	if err != nil {
		return err
	}
	err = c.mainopts.Modify(func(m *tasks.Manager) error {
		return m.UpdateTask(id, desc)
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(c.cmd.OutOrStdout(), "Updated task %d with description %s\n", id, desc)
	return nil
}
