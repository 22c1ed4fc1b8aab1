// © 2024 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package renamer

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"go.astrophena.name/seqrename/internal/logger"
	"go.astrophena.name/seqrename/internal/util/set"
)

const (
	tempPrefix      = ".seqrename-"
	maxTempAttempts = 100
)

var errNoTempName = errors.New("no free temporary name")

// ExecError is returned when a rename fails while a plan is executed. The
// renames done before the failure are undone; the files that could not be
// restored are listed in Stranded.
type ExecError struct {
	// Op is the failed rename. Op.New is empty if no temporary name could be
	// chosen for Op.Old.
	Op  Rename
	Err error
	// Stranded maps the current name of every file that could not be restored
	// (Old) to the name it had before the run (New).
	Stranded    []Rename
	RollbackErr error
}

func (e *ExecError) Error() string {
	var sb strings.Builder
	if e.Op.New == "" {
		fmt.Fprintf(&sb, "choosing temporary name for %s: %v", e.Op.Old, e.Err)
	} else {
		fmt.Fprintf(&sb, "renaming %s to %s: %v", e.Op.Old, e.Op.New, e.Err)
	}
	if len(e.Stranded) == 0 {
		sb.WriteString("; all changes were rolled back")
		return sb.String()
	}
	fmt.Fprintf(&sb, "; rollback failed, %d left under wrong names:", len(e.Stranded))
	for _, s := range e.Stranded {
		fmt.Fprintf(&sb, "\n\t%s (was %s)", s.Old, s.New)
	}
	return sb.String()
}

func (e *ExecError) Unwrap() error { return e.Err }

// Execute renames the files of p inside d and returns how many were renamed.
//
// Every file is first moved to a unique temporary name and only then to its
// new name, so the plan is safe even when old and new names overlap. Files
// that already have their new name are left alone.
//
// If a rename fails, the renames done so far are undone in reverse order and
// an *ExecError is returned.
func (p *Plan) Execute(ctx context.Context, d Dir) (int, error) {
	return p.execute(ctx, d, uuid.NewString)
}

func (p *Plan) execute(ctx context.Context, d Dir, newToken func() string) (int, error) {
	pending := p.Pending()
	x := &executor{
		dir:      d,
		newToken: newToken,
		orig:     make([]string, len(pending)),
		at:       make([]string, len(pending)),
		taken:    set.New[string](len(p.Renames)),
	}
	for i, r := range pending {
		x.orig[i] = r.Old
		x.at[i] = r.Old
	}
	for _, r := range p.Renames {
		x.taken.Add(r.New)
	}

	temps := make([]string, len(pending))
	for i, r := range pending {
		tmp, err := x.tempName()
		if err != nil {
			return 0, x.fail(ctx, Rename{Old: r.Old}, err)
		}
		if err := x.rename(ctx, i, tmp); err != nil {
			return 0, x.fail(ctx, Rename{Old: r.Old, New: tmp}, err)
		}
		temps[i] = tmp
	}
	logger.Debug(ctx, "moved files to temporary names", slog.Int("count", len(pending)))

	for i, r := range pending {
		if err := x.rename(ctx, i, r.New); err != nil {
			return 0, x.fail(ctx, Rename{Old: temps[i], New: r.New}, err)
		}
	}
	return len(pending), nil
}

type step struct {
	file     int
	from, to string
}

type executor struct {
	dir      Dir
	newToken func() string
	orig     []string        // name of each pending file before the run
	at       []string        // current name of each pending file
	taken    set.Set[string] // names that must not be used as temporary names
	journal  []step
}

func (x *executor) tempName() (string, error) {
	for range maxTempAttempts {
		name := tempPrefix + x.newToken()
		if !x.taken.Add(name) {
			continue
		}
		_, err := x.dir.Lstat(name)
		if errors.Is(err, fs.ErrNotExist) {
			return name, nil
		}
		if err != nil {
			return "", err
		}
	}
	return "", errNoTempName
}

func (x *executor) rename(ctx context.Context, file int, to string) error {
	from := x.at[file]
	if err := x.dir.Rename(from, to); err != nil {
		return err
	}
	logger.Debug(ctx, "renamed", slog.String("from", from), slog.String("to", to))
	x.at[file] = to
	x.journal = append(x.journal, step{file: file, from: from, to: to})
	return nil
}

// fail undoes the journal and builds the error for the failed op.
func (x *executor) fail(ctx context.Context, op Rename, err error) error {
	logger.Warn(ctx, "rename failed, rolling back",
		slog.String("from", op.Old),
		slog.String("to", op.New),
		slog.Any("err", err),
		slog.Int("steps", len(x.journal)),
	)

	var undoErrs []error
	for i := len(x.journal) - 1; i >= 0; i-- {
		s := x.journal[i]
		if x.at[s.file] != s.to {
			// A later step of this file could not be undone.
			continue
		}
		if err := x.undo(s); err != nil {
			logger.Error(ctx, "undoing rename failed",
				slog.String("from", s.to),
				slog.String("to", s.from),
				slog.Any("err", err),
			)
			undoErrs = append(undoErrs, err)
			continue
		}
		x.at[s.file] = s.from
	}

	xerr := &ExecError{Op: op, Err: err, RollbackErr: errors.Join(undoErrs...)}
	for i, cur := range x.at {
		if cur != x.orig[i] {
			xerr.Stranded = append(xerr.Stranded, Rename{Old: cur, New: x.orig[i]})
		}
	}
	return xerr
}

// undo reverts s unless that would replace an existing entry.
func (x *executor) undo(s step) error {
	_, err := x.dir.Lstat(s.from)
	if err == nil {
		return &fs.PathError{Op: "undo rename", Path: s.from, Err: fs.ErrExist}
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return x.dir.Rename(s.to, s.from)
}
