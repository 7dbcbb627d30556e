package main

import (
	"fmt"
	"math/rand"

	"github.com/goombaio/namegenerator"

	"github.com/mandelsoft/tasktracker/pkg/tasks"
)

var verbs = []string{"review", "fix", "plan", "clean up", "write", "call", "buy", "check"}

// Faker modifies a task list by random operations.
type Faker struct {
	rnd       *rand.Rand
	generator namegenerator.Generator
}

func NewFaker(rnd *rand.Rand, gen namegenerator.Generator) *Faker {
	return &Faker{rnd: rnd, generator: gen}
}

// Populate applies random operations until count new tasks
// have been added.
func (f *Faker) Populate(m *tasks.Manager, count int) {
	created := 0
	for created < count {
		i := f.rnd.Intn(100)
		switch {
		case i < 60:
			f.CreateTask(m)
			created++
		case i < 85:
			f.Progress(m)
		case i < 95:
			f.Rename(m)
		default:
			f.DeleteTask(m)
		}
	}
}

func (f *Faker) CreateTask(m *tasks.Manager) int {
	desc := fmt.Sprintf("%s %s", Random(f.rnd, verbs), f.generator.Generate())
	id, err := m.AddTask(desc)
	if err != nil {
		log.Warn("cannot create task", "error", err)
		return 0
	}
	log.Debug("{{id}} create", "id", id, "description", desc)
	return id
}

func (f *Faker) DeleteTask(m *tasks.Manager) bool {
	t := f.choose(m)
	if t == nil {
		return false
	}
	log.Debug("{{id}} delete", "id", t.Id)
	return m.DeleteTask(t.Id) == nil
}

func (f *Faker) Progress(m *tasks.Manager) bool {
	t := f.choose(m)
	if t == nil {
		return false
	}
	s := Random(f.rnd, follow[t.Status])
	log.Debug("{{id}} change status", "id", t.Id, "status", s)
	return m.UpdateTaskStatus(t.Id, s) == nil
}

func (f *Faker) Rename(m *tasks.Manager) bool {
	t := f.choose(m)
	if t == nil {
		return false
	}
	desc := fmt.Sprintf("%s %s", Random(f.rnd, verbs), f.generator.Generate())
	log.Debug("{{id}} rename", "id", t.Id, "description", desc)
	return m.UpdateTask(t.Id, desc) == nil
}

func (f *Faker) choose(m *tasks.Manager) *tasks.Task {
	list := m.TasksSortedByStatus()
	if len(list) == 0 {
		return nil
	}
	t := Random(f.rnd, list)
	return &t
}

func Random[E any](rnd *rand.Rand, list []E) E {
	return list[rnd.Intn(len(list))]
}

var follow = map[tasks.Status][]tasks.Status{
	tasks.TODO:        []tasks.Status{tasks.IN_PROGRESS, tasks.DONE},
	tasks.IN_PROGRESS: []tasks.Status{tasks.TODO, tasks.DONE},
	tasks.DONE:        []tasks.Status{tasks.TODO},
}
