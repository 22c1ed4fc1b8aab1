// © 2024 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package cli

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"fmt"
	"strings"
	"testing"

	"go.astrophena.name/seqrename/internal/logger"
	"go.astrophena.name/seqrename/internal/testutil"
)

func TestParseInterspersed(t *testing.T) {
	t.Parallel()

	cases := map[string]struct {
		args     []string
		wantArgs []string
		wantN    int
		wantDry  bool
	}{
		"flags first": {
			args:     []string{"-n", "3", "-dry", "dir", "base"},
			wantArgs: []string{"dir", "base"},
			wantN:    3,
			wantDry:  true,
		},
		"flags last": {
			args:     []string{"dir", "base", "--n", "3", "--dry"},
			wantArgs: []string{"dir", "base"},
			wantN:    3,
			wantDry:  true,
		},
		"flags between": {
			args:     []string{"dir", "-n=7", "base"},
			wantArgs: []string{"dir", "base"},
			wantN:    7,
		},
		"terminator": {
			args:     []string{"-n", "1", "--", "-dir", "-dry"},
			wantArgs: []string{"-dir", "-dry"},
			wantN:    1,
		},
		"no args": {
			args: []string{},
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			fs := flag.NewFlagSet("test", flag.ContinueOnError)
			n := fs.Int("n", 0, "")
			dry := fs.Bool("dry", false, "")

			args, err := parseInterspersed(fs, tc.args)
			if err != nil {
				t.Fatal(err)
			}
			testutil.AssertEqual(t, args, tc.wantArgs)
			testutil.AssertEqual(t, *n, tc.wantN)
			testutil.AssertEqual(t, *dry, tc.wantDry)
		})
	}
}

func TestParseDoc(t *testing.T) {
	t.Parallel()

	src := []byte(`// Copyright header.

/*
Amazinator does amazing things.

# Usage

	$ amazinator [flags...]
*/
package main

/*
Ignored.
*/
`)
	want := "Amazinator does amazing things.\n\n# Usage\n\n\t$ amazinator [flags...]\n"
	testutil.AssertEqual(t, parseDoc(src), want)
}

type testApp struct {
	name    string
	gotArgs []string
	ran     bool
	err     error
}

func (a *testApp) Flags(fs *flag.FlagSet) {
	fs.StringVar(&a.name, "name", "", "Name to greet.")
}

func (a *testApp) Run(ctx context.Context) error {
	a.ran = true
	env := GetEnv(ctx)
	a.gotArgs = env.Args
	logger.Info(ctx, "greeting")
	fmt.Fprintf(env.Stdout, "hello, %s\n", a.name)
	return a.err
}

func TestRun(t *testing.T) {
	t.Parallel()

	cases := map[string]struct {
		args       []string
		appErr     error
		wantErr    error
		wantRan    bool
		wantStdout string
		wantStderr string
	}{
		"runs with flags": {
			args:       []string{"pos", "-name", "gopher"},
			wantRan:    true,
			wantStdout: "hello, gopher\n",
			wantStderr: "level=INFO msg=greeting\n",
		},
		"help": {
			args:    []string{"-h"},
			wantErr: flag.ErrHelp,
		},
		"version": {
			args:    []string{"-version"},
			wantErr: ErrExitVersion,
		},
		"unknown flag": {
			args:    []string{"-bogus"},
			wantErr: &unprintableError{},
		},
		"app error": {
			args:    []string{},
			appErr:  fmt.Errorf("%w: nope", ErrInvalidArgs),
			wantErr: ErrInvalidArgs,
			wantRan: true,
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			var stdout, stderr bytes.Buffer
			app := &testApp{err: tc.appErr}
			err := Run(WithEnv(context.Background(), &Env{
				Args:   tc.args,
				Getenv: func(string) string { return "" },
				Stdin:  strings.NewReader(""),
				Stdout: &stdout,
				Stderr: &stderr,
			}), app)

			switch want := tc.wantErr.(type) {
			case nil:
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
			case *unprintableError:
				var ue *unprintableError
				if !errors.As(err, &ue) {
					t.Fatalf("want unprintable error, got %v", err)
				}
			default:
				if !errors.Is(err, want) {
					t.Fatalf("want error %v, got %v", want, err)
				}
			}

			testutil.AssertEqual(t, app.ran, tc.wantRan)
			if tc.wantStdout != "" {
				testutil.AssertEqual(t, stdout.String(), tc.wantStdout)
			}
			if tc.wantStderr != "" {
				testutil.AssertEqual(t, stderr.String(), tc.wantStderr)
			}
			if tc.wantRan && tc.appErr == nil {
				testutil.AssertEqual(t, app.gotArgs, []string{"pos"})
			}
		})
	}
}

func TestIsPrintableError(t *testing.T) {
	t.Parallel()

	cases := map[string]struct {
		err  error
		want bool
	}{
		"help":          {err: flag.ErrHelp, want: false},
		"version":       {err: ErrExitVersion, want: false},
		"wrapped help":  {err: fmt.Errorf("parse: %w", flag.ErrHelp), want: false},
		"invalid args":  {err: ErrInvalidArgs, want: true},
		"generic error": {err: errors.New("boom"), want: true},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			testutil.AssertEqual(t, isPrintableError(tc.err), tc.want)
		})
	}
}

func TestGetEnvDefault(t *testing.T) {
	t.Parallel()

	if GetEnv(context.Background()) == nil {
		t.Fatal("GetEnv must fall back to the OS environment")
	}
}
