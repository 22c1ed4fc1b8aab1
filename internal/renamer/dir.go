// © 2024 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package renamer

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// ErrNotADirectory is returned when the target path does not resolve to an
// existing directory.
var ErrNotADirectory = errors.New("not a directory")

// Dir is a directory whose entries can be listed and renamed in place. Names
// passed to its methods are entry names, not paths.
type Dir interface {
	fs.ReadDirFS

	// Lstat returns information about the named entry without following
	// symbolic links.
	Lstat(name string) (fs.FileInfo, error)
	// Rename renames oldname to newname, replacing newname if it exists.
	Rename(oldname, newname string) error
}

// OpenDir returns the Dir at path. Symbolic links are followed.
func OpenDir(path string) (Dir, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotADirectory, err)
	}
	if !fi.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrNotADirectory, path)
	}
	return &osDir{FS: os.DirFS(path), path: path}, nil
}

type osDir struct {
	fs.FS
	path string
}

func (d *osDir) String() string { return d.path }

func (d *osDir) join(name string) string { return filepath.Join(d.path, name) }

func (d *osDir) ReadDir(name string) ([]fs.DirEntry, error) {
	return os.ReadDir(d.join(name))
}

func (d *osDir) Lstat(name string) (fs.FileInfo, error) {
	return os.Lstat(d.join(name))
}

func (d *osDir) Rename(oldname, newname string) error {
	return os.Rename(d.join(oldname), d.join(newname))
}

var _ Dir = (*osDir)(nil)
