// © 2024 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package version

import (
	"runtime"
	"runtime/debug"
	"strings"
	"testing"

	"go.astrophena.name/seqrename/internal/testutil"
)

func TestLoadInfo(t *testing.T) {
	t.Parallel()

	cases := map[string]struct {
		bi   *debug.BuildInfo
		ok   bool
		want Info
	}{
		"no build info": {
			ok: false,
			want: Info{
				Name:    "seqrename",
				Version: "devel",
			},
		},
		"devel build with vcs": {
			bi: &debug.BuildInfo{
				Main: debug.Module{Version: "(devel)"},
				Settings: []debug.BuildSetting{
					{Key: "vcs.revision", Value: "3f1c2a9"},
					{Key: "vcs.time", Value: "2024-05-20T10:00:00Z"},
				},
			},
			ok: true,
			want: Info{
				Name:    "seqrename",
				Version: "devel",
				Commit:  "3f1c2a9",
				BuiltAt: "2024-05-20T10:00:00Z",
			},
		},
		"tagged module": {
			bi: &debug.BuildInfo{
				Main: debug.Module{Version: "v1.2.0"},
			},
			ok: true,
			want: Info{
				Name:    "seqrename",
				Version: "v1.2.0",
			},
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			got := loadInfo("seqrename", func() (*debug.BuildInfo, bool) {
				return tc.bi, tc.ok
			})
			tc.want.Go = runtime.Version()
			tc.want.OS = runtime.GOOS
			tc.want.Arch = runtime.GOARCH
			testutil.AssertEqual(t, got, tc.want)
		})
	}
}

func TestInfoString(t *testing.T) {
	t.Parallel()

	i := Info{
		Name:    "seqrename",
		Version: "v1.2.0",
		Commit:  "3f1c2a9",
		BuiltAt: "2024-05-20T10:00:00Z",
		Go:      "go1.22.3",
		OS:      "linux",
		Arch:    "amd64",
	}
	want := "seqrename v1.2.0 (go1.22.3, linux/amd64)\ncommit 3f1c2a9\nbuilt at 2024-05-20T10:00:00Z\n"
	testutil.AssertEqual(t, i.String(), want)

	i.Commit = ""
	if got := i.String(); strings.Contains(got, "commit") {
		t.Fatalf("commit line must be omitted without vcs info, got %q", got)
	}
}
