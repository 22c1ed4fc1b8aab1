// © 2024 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package renamer

import (
	"io/fs"
	"path/filepath"
	"strings"
)

const separator = filepath.Separator

// Entry is a name directly inside the target directory.
type Entry struct {
	Name  string
	IsDir bool
}

// Ext returns the extension of the entry name: the suffix starting at the
// final dot. Leading dots do not count, so ".profile" has no extension.
func (e Entry) Ext() string {
	return filepath.Ext(strings.TrimLeft(e.Name, "."))
}

// List returns the entries of the root directory of fsys, sorted by name.
// Symbolic links are classified by their target; a dangling link is treated
// as a regular file.
func List(fsys fs.FS) ([]Entry, error) {
	des, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return nil, err
	}

	entries := make([]Entry, 0, len(des))
	for _, de := range des {
		isDir := de.IsDir()
		if de.Type()&fs.ModeSymlink != 0 {
			if fi, err := fs.Stat(fsys, de.Name()); err == nil {
				isDir = fi.IsDir()
			}
		}
		entries = append(entries, Entry{Name: de.Name(), IsDir: isDir})
	}
	return entries, nil
}
