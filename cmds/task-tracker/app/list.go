package app

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"sigs.k8s.io/yaml"

	"github.com/mandelsoft/tasktracker/pkg/tasks"
)

type List struct {
	Items []tasks.Task `json:"items"`
}

type ListCmd struct {
	cmd *cobra.Command

	mainopts *Options
	sort     string
	output   string
}

func NewList(opts *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "list [todo/in-progress/done]",
		Aliases: []string{"l"},
		Short:   "list tasks",
	}
	TweakCommand(cmd, cobra.MaximumNArgs(1))

	c := &ListCmd{
		cmd:      cmd,
		mainopts: opts,
	}
	c.cmd.RunE = func(cmd *cobra.Command, args []string) error { return c.Run(args) }
	flags := cmd.Flags()
	flags.StringVarP(&c.sort, "sort", "s", "", "sort field (table output)")
	flags.StringVarP(&c.output, "output", "o", "", "output format (table, json, yaml)")
	return cmd
}

func (c *ListCmd) Run(args []string) error {
	var status *tasks.Status

	if len(args) > 0 {
		s, err := tasks.ParseStatus(args[0])
		if err != nil {
			return fmt.Errorf("%w (usage: %s)", err, Usage(c.cmd))
		}
		status = &s
	}

	m, err := c.mainopts.Manager()
	if err != nil {
		return err
	}

	var list []tasks.Task
	if status == nil {
		list = m.TasksSortedByStatus()
	} else {
		list = m.Tasks(*status)
	}

	w := c.cmd.OutOrStdout()
	switch strings.ToLower(strings.TrimSpace(c.output)) {
	case "":
		PrintTaskLines(w, list, status)
	case "table":
		return PrintTaskTable(w, list, c.sort)
	case "json":
		data, err := json.Marshal(&List{Items: list})
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s\n", string(data))
	case "yaml":
		data, err := yaml.Marshal(&List{Items: list})
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s", string(data))
	default:
		return fmt.Errorf("unknown output format %q", c.output)
	}
	return nil
}

func PrintTaskLines(w io.Writer, list []tasks.Task, status *tasks.Status) {
	if status == nil {
		fmt.Fprintf(w, "--- Listing all tasks ---\n")
	} else {
		fmt.Fprintf(w, "--- Listing all tasks by status: %s ---\n", status)
	}
	if len(list) == 0 {
		fmt.Fprintf(w, "No tasks found\n")
	}
	for _, t := range list {
		if status == nil {
			fmt.Fprintf(w, "- %s [%d] (%s)\n", t.Description, t.Id, t.Status.Label())
		} else {
			fmt.Fprintf(w, "- %s [%d]\n", t.Description, t.Id)
		}
	}
}

var columnList = []string{"ID", "DESCRIPTION", "STATUS", "CREATED", "UPDATED"}

func PrintTaskTable(w io.Writer, list []tasks.Task, sortField string) error {
	sortField = strings.ToUpper(strings.TrimSpace(sortField))
	sort := -1
	if sortField != "" {
		sort = slices.Index(columnList, sortField)
		if sort < 0 {
			return fmt.Errorf("unknown sort field %q", sortField)
		}
	}

	if len(list) == 0 {
		fmt.Fprintf(w, "No tasks found\n")
		return nil
	}

	fieldList := MapFields(list)
	switch {
	case sort == 0:
		slices.SortStableFunc(fieldList, func(a, b []string) int {
			x, _ := strconv.Atoi(a[0])
			y, _ := strconv.Atoi(b[0])
			return x - y
		})
	case sort > 0:
		slices.SortStableFunc(fieldList, func(a, b []string) int { return strings.Compare(a[sort], b[sort]) })
	}

	max := make([]int, len(columnList))
	for i, s := range columnList {
		max[i] = len(s)
	}
	for _, cols := range fieldList {
		for i, s := range cols {
			if max[i] < len(s) {
				max[i] = len(s)
			}
		}
	}

	f := formatString(max)
	printLine(w, columnList, f)
	for _, cols := range fieldList {
		printLine(w, cols, f)
	}
	return nil
}

func printLine(w io.Writer, cols []string, msg string) {
	args := make([]any, len(cols))
	for i, c := range cols {
		args[i] = c
	}
	fmt.Fprintf(w, "%s\n", strings.TrimRight(fmt.Sprintf(msg, args...), " "))
}

func formatString(max []int) string {
	msg := ""
	for _, l := range max {
		msg += fmt.Sprintf("%%-%ds ", l)
	}
	return msg[:len(msg)-1]
}

func MapFields(list []tasks.Task) [][]string {
	var r [][]string
	for _, t := range list {
		updated := ""
		if t.UpdatedAt != nil {
			updated = t.UpdatedAt.String()
		}
		r = append(r, []string{
			strconv.Itoa(t.Id), t.Description, t.Status.Label(), t.CreatedAt.String(), updated,
		})
	}
	return r
}
