package app

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

// TweakCommand prepares a sub command for usage error handling.
func TweakCommand(cmd *cobra.Command, args cobra.PositionalArgs) {
	cmd.Args = func(c *cobra.Command, a []string) error {
		if err := args(c, a); err != nil {
			return UsageError(c)
		}
		return nil
	}
}

func Usage(cmd *cobra.Command) string {
	return fmt.Sprintf("%s %s", NAME, cmd.Use)
}

func UsageError(cmd *cobra.Command) error {
	return fmt.Errorf("usage: %s", Usage(cmd))
}

func ParseId(s string) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid task id %q", s)
	}
	return id, nil
}

// FlagError reports negative numbers, which are taken for
// shorthand flags, as invalid task ids.
func FlagError(cmd *cobra.Command, err error) error {
	msg := err.Error()
	if !strings.HasPrefix(msg, "unknown shorthand flag: ") {
		return err
	}
	i := strings.LastIndex(msg, " in -")
	if i < 0 {
		return err
	}
	arg := msg[i+len(" in "):]
	if _, nerr := strconv.Atoi(arg); nerr != nil {
		return err
	}
	_, err = ParseId(arg)
	return err
}

func Description(args []string) (string, error) {
	desc := strings.TrimSpace(strings.Join(args, " "))
	if desc == "" {
		return "", fmt.Errorf("description must not be empty")
	}
	return desc, nil
}
