package app

import (
	"fmt"

	"github.com/spf13/cobra"
)

type Show struct {
	cmd *cobra.Command

	mainopts *Options
}

func NewShow(opts *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "show task details",
	}
	TweakCommand(cmd, cobra.ExactArgs(1))

	c := &Show{
		cmd:      cmd,
		mainopts: opts,
	}
	c.cmd.RunE = func(cmd *cobra.Command, args []string) error { return c.Run(args) }
	return cmd
}

func (c *Show) Run(args []string) error {
	id, err := ParseId(args[0])
	if err != nil {
		return err
	}
	m, err := c.mainopts.Manager()
	if err != nil {
		return err
	}
	t, err := m.Get(id)
	if err != nil {
		return err
	}

	w := c.cmd.OutOrStdout()
	fmt.Fprintf(w, "ID:          %d\n", t.Id)
	fmt.Fprintf(w, "Description: %s\n", t.Description)
	fmt.Fprintf(w, "Status:      %s\n", t.Status.Label())
	fmt.Fprintf(w, "Created:     %s\n", t.CreatedAt)
	if t.UpdatedAt != nil {
		fmt.Fprintf(w, "Updated:     %s\n", t.UpdatedAt)
	}
	return nil
}
