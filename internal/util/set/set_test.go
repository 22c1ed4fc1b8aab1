// Copyright 2015 The LUCI Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package set

import (
	"testing"

	"go.astrophena.name/seqrename/internal/testutil"
)

func TestSet(t *testing.T) {
	t.Parallel()

	s := New[string](2)
	testutil.AssertEqual(t, s.Add("b.txt"), true)
	testutil.AssertEqual(t, s.Add("a.txt"), true)
	testutil.AssertEqual(t, s.Add("a.txt"), false)
	testutil.AssertEqual(t, s.Has("a.txt"), true)
	testutil.AssertEqual(t, s.Has("c.txt"), false)
	testutil.AssertEqual(t, s.Len(), 2)

	var zero Set[string]
	testutil.AssertEqual(t, zero.Has("a.txt"), false)
	testutil.AssertEqual(t, zero.Len(), 0)
}
