package tasks

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Status is the processing state of a task.
// The declaration order is the order used for listing.
type Status int

const (
	TODO Status = iota
	IN_PROGRESS
	DONE
)

var ErrInvalidStatus = fmt.Errorf("invalid task status")

var statusNames = []string{"TODO", "IN_PROGRESS", "DONE"}
var statusLabels = []string{"todo", "in progress", "done"}

// ParseStatus accepts the status names case-insensitively.
// Dashes and blanks may be used instead of underscores.
func ParseStatus(s string) (Status, error) {
	n := strings.ToUpper(strings.TrimSpace(s))
	n = strings.NewReplacer("-", "_", " ", "_").Replace(n)
	for i, name := range statusNames {
		if n == name {
			return Status(i), nil
		}
	}
	return TODO, fmt.Errorf("%w %q", ErrInvalidStatus, s)
}

func (s Status) Valid() bool {
	return s >= TODO && s <= DONE
}

func (s Status) String() string {
	if !s.Valid() {
		return fmt.Sprintf("Status(%d)", int(s))
	}
	return statusNames[s]
}

// Label is the human readable form.
func (s Status) Label() string {
	if !s.Valid() {
		return s.String()
	}
	return statusLabels[s]
}

func (s Status) MarshalJSON() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("%w %d", ErrInvalidStatus, int(s))
	}
	return json.Marshal(s.String())
}

func (s *Status) UnmarshalJSON(data []byte) error {
	var name string
	err := json.Unmarshal(data, &name)
	if err != nil {
		return err
	}
	st, err := ParseStatus(name)
	if err != nil {
		return err
	}
	*s = st
	return nil
}
