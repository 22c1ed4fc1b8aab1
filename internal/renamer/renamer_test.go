// © 2024 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package renamer

import (
	"context"
	"errors"
	"io/fs"
	"path/filepath"
	"testing"

	"go.astrophena.name/seqrename/internal/testutil"
)

func TestRun(t *testing.T) {
	t.Parallel()

	dir, _ := setupDir(t, "b.txt", "a.txt", "c.txt")
	res, err := Run(context.Background(), Config{Dir: dir, BaseName: "base", Digits: 2})
	if err != nil {
		t.Fatal(err)
	}
	testutil.AssertEqual(t, res.Renamed, 3)
	testutil.AssertEqual(t, res.DryRun, false)
	testutil.AssertEqual(t, testutil.ListDir(t, dir), []string{"base00.txt", "base01.txt", "base02.txt"})
}

func TestRunDryRun(t *testing.T) {
	t.Parallel()

	dir, _ := setupDir(t, "b.txt", "a.txt", "sub/")
	before := contents(t, dir)

	res, err := Run(context.Background(), Config{Dir: dir, BaseName: "base", Digits: 2, DryRun: true})
	if err != nil {
		t.Fatal(err)
	}
	testutil.AssertEqual(t, res.DryRun, true)
	testutil.AssertEqual(t, res.Renamed, 0)
	testutil.AssertEqual(t, res.Plan.Renames, []Rename{
		{Old: "a.txt", New: "base00.txt"},
		{Old: "b.txt", New: "base01.txt"},
	})
	testutil.AssertEqual(t, contents(t, dir), before)
}

func TestRunErrors(t *testing.T) {
	t.Parallel()

	cases := map[string]struct {
		files   []string
		dir     func(dir string) string
		cfg     Config
		wantErr error
	}{
		"missing directory": {
			dir:     func(dir string) string { return filepath.Join(dir, "missing") },
			cfg:     Config{BaseName: "base", Digits: 2},
			wantErr: ErrNotADirectory,
		},
		"file instead of directory": {
			files:   []string{"a.txt"},
			dir:     func(dir string) string { return filepath.Join(dir, "a.txt") },
			cfg:     Config{BaseName: "base", Digits: 2},
			wantErr: ErrNotADirectory,
		},
		"empty directory": {
			files:   []string{"only-dirs/"},
			cfg:     Config{BaseName: "base", Digits: 2},
			wantErr: ErrNoFiles,
		},
		"conflict": {
			files:   []string{"a.txt", "b.txt", "base01.txt/"},
			cfg:     Config{BaseName: "base", Digits: 2},
			wantErr: &ConflictError{},
		},
		"invalid config": {
			files:   []string{"a.txt"},
			cfg:     Config{BaseName: "base", Digits: 0},
			wantErr: ErrInvalidConfig,
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			dir, _ := setupDir(t, tc.files...)
			before := contents(t, dir)

			cfg := tc.cfg
			cfg.Dir = dir
			if tc.dir != nil {
				cfg.Dir = tc.dir(dir)
			}

			_, err := Run(context.Background(), cfg)
			switch want := tc.wantErr.(type) {
			case *ConflictError:
				var cerr *ConflictError
				if !errors.As(err, &cerr) {
					t.Fatalf("want *ConflictError, got %v", err)
				}
				testutil.AssertEqual(t, cerr.Names, []string{"base01.txt"})
			default:
				if !errors.Is(err, want) {
					t.Fatalf("want %v, got %v", want, err)
				}
			}
			testutil.AssertEqual(t, contents(t, dir), before)
		})
	}
}

func TestOpenDirMissing(t *testing.T) {
	t.Parallel()

	_, err := OpenDir(filepath.Join(t.TempDir(), "missing"))
	if !errors.Is(err, ErrNotADirectory) || !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("want ErrNotADirectory wrapping fs.ErrNotExist, got %v", err)
	}
}
