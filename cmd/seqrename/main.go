// © 2024 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"

	"go.astrophena.name/seqrename/internal/cli"
	"go.astrophena.name/seqrename/internal/cli/envflag"
	"go.astrophena.name/seqrename/internal/cli/restrict"
	"go.astrophena.name/seqrename/internal/logger"
	"go.astrophena.name/seqrename/internal/renamer"

	"github.com/landlock-lsm/go-landlock/landlock"
)

func main() { cli.Main(new(app)) }

type app struct {
	start   int
	digits  int
	dryRun  bool
	verbose bool
}

func (a *app) EnvFlags(fs *flag.FlagSet, getenv func(string) string) {
	envflag.Var(&a.start, "start", "SEQRENAME_START", renamer.DefaultStart, "Number the first file `N`.", fs, getenv)
	envflag.Var(&a.digits, "digits", "SEQRENAME_DIGITS", renamer.DefaultDigits, "Pad numbers with zeros to at least `M` digits.", fs, getenv)
	envflag.Var(&a.dryRun, "dry-run", "SEQRENAME_DRY_RUN", false, "Print what would be renamed, but don't rename anything.", fs, getenv)
	fs.BoolVar(&a.verbose, "v", false, "Log every rename to stderr.")
}

func (a *app) Run(ctx context.Context) error {
	env := cli.GetEnv(ctx)

	if len(env.Args) != 2 {
		return fmt.Errorf("%w: exactly two arguments, <dir> and <base_name>, are required", cli.ErrInvalidArgs)
	}
	if a.verbose {
		logger.Get(ctx).Level.Set(slog.LevelDebug)
	}

	cfg := renamer.Config{
		Dir:      env.Args[0],
		BaseName: env.Args[1],
		Start:    a.start,
		Digits:   a.digits,
		DryRun:   a.dryRun,
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("%w: %v", cli.ErrInvalidArgs, err)
	}
	if realdir, err := filepath.EvalSymlinks(cfg.Dir); err == nil {
		cfg.Dir = realdir
	}

	// Drop privileges if not in tests.
	restrict.DoUnlessTesting(ctx, landlock.RWDirs(cfg.Dir).IgnoreIfMissing())

	res, err := renamer.Run(ctx, cfg)
	if errors.Is(err, renamer.ErrNoFiles) {
		fmt.Fprintln(env.Stdout, "No files found in the directory.")
		return nil
	}
	if err != nil {
		return err
	}

	report(env.Stdout, res)
	return nil
}

func report(w io.Writer, res *renamer.Result) {
	if res.DryRun {
		fmt.Fprintln(w, "Dry run: the following changes would be made:")
		for _, r := range res.Plan.Renames {
			fmt.Fprintln(w, r)
		}
		return
	}

	fmt.Fprintf(w, "Renamed %s.\n", plural(res.Renamed, "file"))
	if n := res.Plan.Unchanged(); n > 0 {
		fmt.Fprintf(w, "%s already had the right name.\n", plural(n, "file"))
	}
}

func plural(n int, noun string) string {
	if n == 1 {
		return "1 " + noun
	}
	return fmt.Sprintf("%d %ss", n, noun)
}
