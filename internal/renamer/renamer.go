// © 2024 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package renamer renames the files of a directory to a sequential,
// zero-padded naming scheme.
//
// Planning ([List], [NewPlan]) is kept apart from execution ([Plan.Execute]):
// a plan is computed from a directory listing alone and either fails as a
// whole or is applied as a whole.
package renamer

import (
	"context"
	"log/slog"

	"go.astrophena.name/seqrename/internal/logger"
)

// Result describes a completed run.
type Result struct {
	Plan    *Plan
	Renamed int  // files renamed; zero for a dry run
	DryRun  bool // the plan was only computed
}

// Run validates cfg, plans the renames of the files in cfg.Dir and, unless
// cfg.DryRun is set, executes the plan.
//
// It returns an error wrapping ErrNotADirectory, ErrNoFiles or
// ErrInvalidConfig, a *ConflictError, or an *ExecError.
func Run(ctx context.Context, cfg Config) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	d, err := OpenDir(cfg.Dir)
	if err != nil {
		return nil, err
	}
	return run(ctx, d, cfg)
}

func run(ctx context.Context, d Dir, cfg Config) (*Result, error) {
	entries, err := List(d)
	if err != nil {
		return nil, err
	}
	p, err := NewPlan(entries, cfg)
	if err != nil {
		return nil, err
	}
	logger.Debug(ctx, "planned renames",
		slog.String("dir", cfg.Dir),
		slog.Int("files", len(p.Renames)),
		slog.Int("unchanged", p.Unchanged()),
	)

	if cfg.DryRun {
		return &Result{Plan: p, DryRun: true}, nil
	}

	n, err := p.Execute(ctx, d)
	if err != nil {
		return nil, err
	}
	return &Result{Plan: p, Renamed: n}, nil
}
