package filesystem

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"sync"

	"github.com/google/uuid"
	"github.com/mandelsoft/goutils/general"
	"github.com/mandelsoft/vfs/pkg/osfs"
	"github.com/mandelsoft/vfs/pkg/vfs"
	"sigs.k8s.io/yaml"

	"github.com/mandelsoft/tasktracker/pkg/database"
	"github.com/mandelsoft/tasktracker/pkg/utils"
)

var emptyList = []byte("[]")

// Database keeps a list of objects as JSON array in a single file.
type Database[O any] struct {
	lock sync.Mutex
	path string
	fs   vfs.FileSystem
}

var _ database.Database[any] = (*Database[any])(nil)

// New provides a database for the given file path. A missing file
// is created with an empty list.
func New[O any](path string, fss ...vfs.FileSystem) (*Database[O], error) {
	fs := general.OptionalDefaulted(vfs.FileSystem(osfs.OsFs), fss...)

	err := fs.MkdirAll(filepath.Dir(path), 0o700)
	if err != nil && !errors.Is(err, vfs.ErrExist) {
		return nil, err
	}

	_, err = fs.Stat(path)
	if err != nil {
		if !errors.Is(err, vfs.ErrNotExist) {
			return nil, err
		}
		database.Log.Info("creating database {{path}}", "path", path)
		err = vfs.WriteFile(fs, path, emptyList, 0o600)
		if err != nil {
			return nil, err
		}
	}
	return &Database[O]{path: path, fs: fs}, nil
}

func (d *Database[O]) Path() string {
	return d.path
}

func (d *Database[O]) ListObjects() ([]O, error) {
	d.lock.Lock()
	defer d.lock.Unlock()

	data, err := d.read()
	if err != nil {
		return nil, err
	}

	var list []O
	err = yaml.Unmarshal(data, &list)
	if err != nil {
		return nil, fmt.Errorf("corrupted database %s: %w", d.path, err)
	}
	database.Log.Debug("read {{amount}} objects from {{path}}", "amount", len(list), "path", d.path)
	return list, nil
}

func (d *Database[O]) SetObjects(list []O) error {
	d.lock.Lock()
	defer d.lock.Unlock()

	if list == nil {
		list = []O{}
	}
	data, err := json.MarshalIndent(list, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')

	tmp := fmt.Sprintf("%s.%s.tmp", d.path, uuid.NewString())
	err = vfs.WriteFile(d.fs, tmp, data, 0o600)
	if err != nil {
		d.fs.Remove(tmp)
		return err
	}
	err = d.fs.Rename(tmp, d.path)
	if err != nil {
		// not every filesystem supports renaming onto an existing file,
		// the original is only replaced by a complete write.
		database.Log.Debug("rename failed for {{path}}: {{error}}", "path", d.path, "error", err)
		err = vfs.WriteFile(d.fs, d.path, data, 0o600)
	}
	d.fs.Remove(tmp)
	if err != nil {
		return err
	}
	database.Log.Debug("wrote {{amount}} objects to {{path}}", "amount", len(list), "path", d.path)
	return nil
}

func (d *Database[O]) Revision() (string, error) {
	d.lock.Lock()
	defer d.lock.Unlock()

	data, err := d.read()
	if err != nil {
		if errors.Is(err, vfs.ErrNotExist) {
			return "", nil
		}
		return "", err
	}
	return d.revision(data)
}

// Snapshot reads the file once and provides the list together
// with the revision of exactly this content.
func (d *Database[O]) Snapshot() ([]O, string, error) {
	d.lock.Lock()
	defer d.lock.Unlock()

	data, err := d.read()
	if err != nil {
		return nil, "", err
	}
	var list []O
	err = yaml.Unmarshal(data, &list)
	if err != nil {
		return nil, "", fmt.Errorf("corrupted database %s: %w", d.path, err)
	}
	rev, err := d.revision(data)
	if err != nil {
		return nil, "", err
	}
	return list, rev, nil
}

func (d *Database[O]) revision(data []byte) (string, error) {
	data, err := yaml.YAMLToJSON(data)
	if err != nil {
		return "", fmt.Errorf("corrupted database %s: %w", d.path, err)
	}
	return utils.HashJSON(data)
}

func (d *Database[O]) read() ([]byte, error) {
	data, err := vfs.ReadFile(d.fs, d.path)
	if err != nil {
		return nil, err
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return emptyList, nil
	}
	return data, nil
}
