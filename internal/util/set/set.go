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

// Package set is an exceedingly simple 'set' implementation.
//
// It's not threadsafe, but can be used in place of a simple
// map[T]struct{}.
package set

import "cmp"

// Set is the base type. make(Set) can be used too.
type Set[T cmp.Ordered] map[T]struct{}

// New returns a new Set implementation.
func New[T cmp.Ordered](sizeHint int) Set[T] {
	return make(Set[T], sizeHint)
}

// Has returns true iff the Set contains value.
func (s Set[T]) Has(value T) bool {
	_, ret := s[value]
	return ret
}

// Add ensures that Set contains value, and returns true if it was added (i.e.
// it returns false if the Set already contained the value).
func (s Set[T]) Add(value T) bool {
	if _, ok := s[value]; ok {
		return false
	}
	s[value] = struct{}{}
	return true
}

// Len returns the number of items in this set.
func (s Set[T]) Len() int {
	return len(s)
}
