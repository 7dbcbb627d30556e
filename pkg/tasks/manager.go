package tasks

import (
	"fmt"
	"math"
	"slices"
	"sync"

	"github.com/mandelsoft/tasktracker/pkg/database"
)

var ErrNotFound = database.ErrNotExist

// MaxId is the highest task id. Files written by other tools use
// 32 bit integers for ids.
const MaxId = math.MaxInt32

var ErrIdsExhausted = fmt.Errorf("no task id left")

// NotFoundError is returned for operations on unknown task ids.
type NotFoundError struct {
	Id int
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("task %d not found", e.Id)
}

func (e *NotFoundError) Is(err error) bool {
	return err == ErrNotFound
}

// Manager keeps the task list of a database in memory.
// Changes are written back with Save.
type Manager struct {
	lock     sync.Mutex
	db       database.Database[Task]
	revision string
	tasks    []*Task
	modified bool
}

func NewManager(db database.Database[Task]) (*Manager, error) {
	list, rev, err := db.Snapshot()
	if err != nil {
		return nil, err
	}

	m := &Manager{db: db, revision: rev}
	for i := range list {
		t := list[i]
		if t.Id <= 0 {
			return nil, fmt.Errorf("invalid task id %d", t.Id)
		}
		if t.Id > MaxId {
			return nil, fmt.Errorf("task id %d exceeds maximum %d", t.Id, MaxId)
		}
		if m.find(t.Id) >= 0 {
			return nil, fmt.Errorf("duplicate task id %d", t.Id)
		}
		m.tasks = append(m.tasks, &t)
	}
	slices.SortStableFunc(m.tasks, compareId)
	log.Debug("loaded {{amount}} tasks", "amount", len(m.tasks))
	return m, nil
}

func compareId(a, b *Task) int {
	return a.Id - b.Id
}

func compareStatus(a, b *Task) int {
	return int(a.Status) - int(b.Status)
}

// IsModified reports whether there are unsaved changes.
func (m *Manager) IsModified() bool {
	m.lock.Lock()
	defer m.lock.Unlock()
	return m.modified
}

// AddTask creates a new task and returns its id,
// which is the highest known id plus one.
func (m *Manager) AddTask(desc string) (int, error) {
	m.lock.Lock()
	defer m.lock.Unlock()

	last := m.lastId()
	if last >= MaxId {
		return 0, fmt.Errorf("cannot add task: %w", ErrIdsExhausted)
	}
	t := NewTask(last+1, desc)
	m.tasks = append(m.tasks, t)
	m.modified = true
	log.Info("task {{id}} added", "id", t.Id)
	return t.Id, nil
}

func (m *Manager) lastId() int {
	if len(m.tasks) == 0 {
		return 0
	}
	return m.tasks[len(m.tasks)-1].Id
}

func (m *Manager) UpdateTask(id int, desc string) error {
	m.lock.Lock()
	defer m.lock.Unlock()

	t, err := m.get(id)
	if err != nil {
		return err
	}
	t.Description = desc
	t.touch()
	m.modified = true
	log.Info("task {{id}} updated", "id", id)
	return nil
}

func (m *Manager) UpdateTaskStatus(id int, status Status) error {
	if !status.Valid() {
		return fmt.Errorf("%w %d", ErrInvalidStatus, int(status))
	}

	m.lock.Lock()
	defer m.lock.Unlock()

	t, err := m.get(id)
	if err != nil {
		return err
	}
	t.Status = status
	t.touch()
	m.modified = true
	log.Info("task {{id}} set to {{status}}", "id", id, "status", status)
	return nil
}

func (m *Manager) DeleteTask(id int) error {
	m.lock.Lock()
	defer m.lock.Unlock()

	i := m.find(id)
	if i < 0 {
		return &NotFoundError{id}
	}
	m.tasks = slices.Delete(m.tasks, i, i+1)
	m.modified = true
	log.Info("task {{id}} deleted", "id", id)
	return nil
}

// Get returns a copy of the task with the given id.
func (m *Manager) Get(id int) (Task, error) {
	m.lock.Lock()
	defer m.lock.Unlock()

	t, err := m.get(id)
	if err != nil {
		return Task{}, err
	}
	return *t, nil
}

// Tasks returns the tasks with the given status ordered by id.
func (m *Manager) Tasks(status Status) []Task {
	m.lock.Lock()
	defer m.lock.Unlock()

	r := []Task{}
	for _, t := range m.tasks {
		if t.Status == status {
			r = append(r, *t)
		}
	}
	return r
}

// TasksSortedByStatus returns all tasks ordered by status.
// Tasks with the same status keep the id order.
func (m *Manager) TasksSortedByStatus() []Task {
	m.lock.Lock()
	defer m.lock.Unlock()

	list := slices.Clone(m.tasks)
	slices.SortStableFunc(list, compareStatus)
	return copyTasks(list)
}

// Save writes the task list if it has been modified.
// It fails with database.ErrModified if the stored list has been
// changed by somebody else since it was read.
func (m *Manager) Save() error {
	m.lock.Lock()
	defer m.lock.Unlock()

	if !m.modified {
		return nil
	}

	rev, err := m.db.Revision()
	if err != nil {
		return err
	}
	if rev != m.revision {
		return fmt.Errorf("cannot save tasks: %w", database.ErrModified)
	}
	err = m.db.SetObjects(copyTasks(m.tasks))
	if err != nil {
		return fmt.Errorf("cannot save tasks: %w", err)
	}
	rev, err = m.db.Revision()
	if err != nil {
		return err
	}
	m.revision = rev
	m.modified = false
	log.Debug("saved {{amount}} tasks", "amount", len(m.tasks))
	return nil
}

func (m *Manager) find(id int) int {
	return slices.IndexFunc(m.tasks, func(t *Task) bool { return t.Id == id })
}

func (m *Manager) get(id int) (*Task, error) {
	i := m.find(id)
	if i < 0 {
		return nil, &NotFoundError{id}
	}
	return m.tasks[i], nil
}

func copyTasks(list []*Task) []Task {
	r := make([]Task, 0, len(list))
	for _, t := range list {
		r = append(r, *t)
	}
	return r
}
