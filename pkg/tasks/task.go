package tasks

import (
	"fmt"

	"github.com/mandelsoft/tasktracker/pkg/utils"
)

type Task struct {
	Id          int              `json:"id"`
	Description string           `json:"description"`
	Status      Status           `json:"status"`
	CreatedAt   utils.Timestamp  `json:"createdAt"`
	UpdatedAt   *utils.Timestamp `json:"updatedAt,omitempty"`
}

func NewTask(id int, desc string) *Task {
	return &Task{
		Id:          id,
		Description: desc,
		Status:      TODO,
		CreatedAt:   utils.NewTimestamp(),
	}
}

func (t *Task) touch() {
	t.UpdatedAt = utils.NewTimestampP()
}

func (t *Task) String() string {
	return fmt.Sprintf("%d: %s (%s)", t.Id, t.Description, t.Status.Label())
}
