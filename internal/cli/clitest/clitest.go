// © 2024 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package clitest provides utilities for testing command-line applications.
package clitest

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"go.astrophena.name/seqrename/internal/cli"
	"go.astrophena.name/seqrename/internal/testutil"
)

// DirArg is replaced in Case.Args by the path of the case's working
// directory.
const DirArg = "$DIR"

// Case represents a single test case for a command-line application.
type Case[App cli.App] struct {
	// Args are the command-line arguments to pass to the application.
	// Occurrences of DirArg are replaced by the working directory.
	Args []string
	// Files are created in a fresh working directory before the application
	// runs, keyed by name. A name ending with a slash creates an empty
	// directory.
	Files map[string]string
	// Stdin is the optional standard input to pass to the application.
	Stdin io.Reader
	// Env are the environment variables to set before running the application.
	Env map[string]string
	// WantErr is the expected error to be returned by the application, checked
	// with errors.Is.
	WantErr error
	// WantErrType is the expected type of the error to be returned by the
	// application, checked with errors.As.
	WantErrType error
	// WantNothingPrinted indicates that no output should be printed to stdout or
	// stderr.
	WantNothingPrinted bool
	// WantInStdout is the expected substring to be present in the stdout output.
	WantInStdout string
	// WantInStderr is the expected substring to be present in the stderr output.
	WantInStderr string
	// WantFiles, if not nil, are the names expected in the working directory
	// after the application has run, sorted.
	WantFiles []string
	// CheckFunc is an optional function to perform additional checks after the
	// application has run.
	CheckFunc func(*testing.T, App)
}

// Run runs the provided test cases against the given command-line application.
func Run[App cli.App](t *testing.T, setup func(*testing.T) App, cases map[string]Case[App]) {
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			app := setup(t)
			dir := t.TempDir()
			writeFiles(t, dir, tc.Files)

			stdin := tc.Stdin
			if stdin == nil {
				stdin = strings.NewReader("")
			}

			args := make([]string, 0, len(tc.Args))
			for _, arg := range tc.Args {
				args = append(args, strings.ReplaceAll(arg, DirArg, dir))
			}

			var stdout, stderr bytes.Buffer
			env := &cli.Env{
				Args:   args,
				Getenv: getenvFunc(tc.Env),
				Stdin:  stdin,
				Stdout: &stdout,
				Stderr: &stderr,
			}

			err := cli.Run(cli.WithEnv(context.Background(), env), app)

			// Don't use && because we want to trap all cases where err is
			// nil.
			if err == nil {
				if tc.WantErr != nil {
					t.Fatalf("must fail with error: %v", tc.WantErr)
				}
				if tc.WantErrType != nil {
					t.Fatalf("must fail with error type %T", tc.WantErrType)
				}
			}

			if err != nil && tc.WantErr == nil && tc.WantErrType == nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if err != nil && tc.WantErrType != nil {
				target := reflect.New(reflect.TypeOf(tc.WantErrType))
				if !errors.As(err, target.Interface()) {
					t.Fatalf("want error type %T, got %T", tc.WantErrType, err)
				}
			}

			if err != nil && tc.WantErr != nil && !errors.Is(err, tc.WantErr) {
				t.Fatalf("got error: %v", err)
			}

			if tc.WantNothingPrinted {
				if stdout.String() != "" {
					t.Errorf("stdout must be empty, got: %q", stdout.String())
				}
				if stderr.String() != "" {
					t.Errorf("stderr must be empty, got: %q", stderr.String())
				}
			}

			if tc.WantInStdout != "" && !strings.Contains(stdout.String(), tc.WantInStdout) {
				t.Errorf("stdout must contain %q, got: %q", tc.WantInStdout, stdout.String())
			}
			if tc.WantInStderr != "" && !strings.Contains(stderr.String(), tc.WantInStderr) {
				t.Errorf("stderr must contain %q, got: %q", tc.WantInStderr, stderr.String())
			}

			if tc.WantFiles != nil {
				testutil.AssertEqual(t, testutil.ListDir(t, dir), tc.WantFiles)
			}

			if tc.CheckFunc != nil {
				tc.CheckFunc(t, app)
			}
		})
	}
}

func writeFiles(t *testing.T, dir string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		path := filepath.Join(dir, filepath.FromSlash(name))
		if strings.HasSuffix(name, "/") {
			if err := os.MkdirAll(path, 0o755); err != nil {
				t.Fatal(err)
			}
			continue
		}
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
}

func getenvFunc(env map[string]string) func(string) string {
	return func(name string) string {
		if env == nil {
			return ""
		}
		return env[name]
	}
}
