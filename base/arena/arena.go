// Copyright 2025 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package arena provides bulk allocation scoped to a parse session.
//
// Nodes built while parsing are never freed one by one: every arena is
// registered with a session, and releasing the session drops the whole
// tree at once. A released session can be reused for the next parse.
package arena

type resettable interface {
	reset()
	live() int
}

// Session owns a set of arenas with a common lifetime.
// It is not safe for concurrent use; parallel parse units
// must each own their own session.
type Session struct {
	arenas []resettable
}

// NewSession returns a new, empty session.
func NewSession() *Session {
	return &Session{}
}

// Release resets every arena registered with the session so that a new
// parse session starts clean. Values obtained from the arenas before
// the release must not be used afterwards. Releasing an empty or
// already released session is a no-op.
func (s *Session) Release() {
	for _, a := range s.arenas {
		a.reset()
	}
}

// Live returns the number of values currently allocated across all the
// arenas of the session.
func (s *Session) Live() int {
	n := 0
	for _, a := range s.arenas {
		n += a.live()
	}
	return n
}

// Arena allocates values of type T in slabs. Individual values cannot
// be freed; the backing slabs are dropped together when the owning
// session is released.
type Arena[T any] struct {
	chunk int
	slabs [][]T
	count int
}

// In returns a new arena for values of type T, registered with the
// session. The chunk size is the number of values per slab.
func In[T any](s *Session, chunk int) *Arena[T] {
	if chunk < 1 {
		chunk = 1
	}
	a := &Arena[T]{chunk: chunk}
	s.arenas = append(s.arenas, a)
	return a
}

// New returns a pointer to a zeroed value of T owned by the arena.
func (a *Arena[T]) New() *T {
	last := len(a.slabs) - 1
	if last < 0 || len(a.slabs[last]) == cap(a.slabs[last]) {
		a.slabs = append(a.slabs, make([]T, 0, a.chunk))
		last++
	}
	a.slabs[last] = append(a.slabs[last], *new(T))
	a.count++
	return &a.slabs[last][len(a.slabs[last])-1]
}

// NewSlice returns a zeroed slice of n values backed by the arena.
// The slice must not be appended to beyond its length.
func (a *Arena[T]) NewSlice(n int) []T {
	if n == 0 {
		return nil
	}
	// Large slices get a dedicated slab so they stay contiguous.
	if n > a.chunk {
		slab := make([]T, n)
		a.slabs = append(a.slabs, slab)
		a.count += n
		return slab
	}
	last := len(a.slabs) - 1
	if last < 0 || len(a.slabs[last])+n > cap(a.slabs[last]) {
		a.slabs = append(a.slabs, make([]T, 0, a.chunk))
		last++
	}
	start := len(a.slabs[last])
	a.slabs[last] = a.slabs[last][:start+n]
	a.count += n
	return a.slabs[last][start : start+n : start+n]
}

// Len returns the number of values allocated since the last reset.
func (a *Arena[T]) Len() int {
	return a.count
}

func (a *Arena[T]) live() int {
	return a.count
}

func (a *Arena[T]) reset() {
	a.slabs = nil
	a.count = 0
}
