// © 2024 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package renamer

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"strings"

	"go.astrophena.name/seqrename/internal/util/set"
)

// ErrNoFiles is returned when the directory holds no regular files. It is
// informational: there is simply nothing to do.
var ErrNoFiles = errors.New("no files found in the directory")

// ConflictError is returned when some new names are already taken by entries
// that are not being renamed. Nothing is renamed in that case.
type ConflictError struct {
	Names []string // conflicting new names, in processing order
}

func (e *ConflictError) Error() string {
	return "new names already exist in the directory: " + strings.Join(e.Names, ", ")
}

// Rename is a single change of name.
type Rename struct {
	Old string
	New string
}

// String returns "old -> new".
func (r Rename) String() string { return r.Old + " -> " + r.New }

// Plan is an ordered, conflict-free list of renames.
type Plan struct {
	// Renames are index-aligned with the sorted regular files: the n-th file
	// gets number Start+n.
	Renames []Rename
}

// NewName returns the new name of the file numbered i. The number is padded
// with zeros to at least digits characters; wider numbers are kept whole.
func NewName(baseName string, i, digits int, ext string) string {
	return fmt.Sprintf("%s%0*d%s", baseName, digits, i, ext)
}

// NewPlan computes the renames for entries according to the naming fields of
// cfg. It does not touch the filesystem.
//
// Regular files are sorted by name and numbered from cfg.Start. NewPlan
// returns ErrNoFiles if there are none, and a *ConflictError listing every
// new name that is held by an entry outside the set of files being renamed.
func NewPlan(entries []Entry, cfg Config) (*Plan, error) {
	if err := cfg.validateNaming(); err != nil {
		return nil, err
	}

	existing := set.New[string](len(entries))
	var files []Entry
	for _, e := range entries {
		existing.Add(e.Name)
		if !e.IsDir {
			files = append(files, e)
		}
	}
	if len(files) == 0 {
		return nil, ErrNoFiles
	}
	slices.SortFunc(files, func(a, b Entry) int { return cmp.Compare(a.Name, b.Name) })

	sources := set.New[string](len(files))
	for _, f := range files {
		sources.Add(f.Name)
	}

	var (
		p         = &Plan{Renames: make([]Rename, 0, len(files))}
		targets   = set.New[string](len(files))
		conflicts []string
	)
	for n, f := range files {
		newName := NewName(cfg.BaseName, cfg.Start+n, cfg.Digits, f.Ext())
		if !targets.Add(newName) || existing.Has(newName) && !sources.Has(newName) {
			conflicts = append(conflicts, newName)
		}
		p.Renames = append(p.Renames, Rename{Old: f.Name, New: newName})
	}
	if len(conflicts) > 0 {
		return nil, &ConflictError{Names: conflicts}
	}
	return p, nil
}

// Pending returns the renames that actually change a name.
func (p *Plan) Pending() []Rename {
	var pending []Rename
	for _, r := range p.Renames {
		if r.Old != r.New {
			pending = append(pending, r)
		}
	}
	return pending
}

// Unchanged returns the number of files that already have their new name.
func (p *Plan) Unchanged() int { return len(p.Renames) - len(p.Pending()) }
