package filesystem

import (
	"github.com/mandelsoft/goutils/general"
	"github.com/mandelsoft/vfs/pkg/osfs"
	"github.com/mandelsoft/vfs/pkg/vfs"

	"github.com/mandelsoft/tasktracker/pkg/database"
)

type Specification[O any] struct {
	Path       string
	FileSystem vfs.FileSystem
}

var _ database.Specification[any] = (*Specification[any])(nil)

func NewSpecification[O any](path string, fss ...vfs.FileSystem) *Specification[O] {
	return &Specification[O]{
		Path:       path,
		FileSystem: general.OptionalDefaulted(vfs.FileSystem(osfs.New()), fss...),
	}
}

func (s *Specification[O]) Create() (database.Database[O], error) {
	db, err := New[O](s.Path, s.FileSystem)
	if err != nil {
		return nil, err
	}
	return db, nil
}
