package database

import (
	"fmt"
)

var ErrModified = fmt.Errorf("object list modified")
var ErrNotExist = fmt.Errorf("object not found")

// Database stores a complete list of objects at once.
// The list is always read and written as a whole.
type Database[O any] interface {
	ListObjects() ([]O, error)
	SetObjects([]O) error

	// Revision returns a value identifying the actually stored
	// content. It changes whenever the stored list changes.
	Revision() (string, error)

	// Snapshot returns the list and the revision of the same
	// stored content.
	Snapshot() ([]O, string, error)
}
