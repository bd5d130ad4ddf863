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

// Package arena provides session-scoped allocators for symbolic value
// payloads.
//
// An allocator hands out Ref handles instead of pointers. A Ref stays valid
// until its allocator is torn down; there is no individual free. Every Ref
// carries the epoch of the arena that issued it, so resolving a handle
// after Reset, or against a different arena, fails fast instead of
// returning someone else's payload.
package arena

import (
	"fmt"
	"math"
	"sort"
	"sync/atomic"

	"golang.org/x/exp/maps"
)

// Ref is a handle to one payload held by an Allocator. The zero Ref is
// invalid. A Ref packs the issuing arena epoch with the payload slot index
// and fits in one machine word.
type Ref uint64

// Valid returns true if the ref was issued by an allocator.
func (r Ref) Valid() bool {
	return r != 0
}

func (r Ref) epoch() uint32 {
	return uint32(r >> 32)
}

func (r Ref) index() uint32 {
	return uint32(r)
}

// Allocator allocates storage for symbolic value payloads. Implementations
// decide where payloads live and for how long; all payloads of one
// allocator are reclaimed together when the allocator is torn down.
//
// Allocation cannot fail: running out of memory is fatal and is not part of
// the failure taxonomy callers plan for.
type Allocator interface {
	// Alloc stores a payload and returns its handle.
	Alloc(payload any) Ref

	// Resolve returns the payload stored for ref. Resolving a handle that
	// this allocator did not issue, or that a Reset invalidated, is a
	// programming error and panics.
	Resolve(ref Ref) any
}

// epochs numbers every arena session in the process, so a Ref can never
// alias a slot of another arena or of a previous session on the same arena.
var epochs atomic.Uint32

// Bump is a bump allocator over a payload slot table. Payloads are only
// reclaimed in bulk by Reset. The zero value is ready to use.
type Bump struct {
	epoch uint32
	slots []any
}

var _ Allocator = (*Bump)(nil)

// NewBump returns an empty bump allocator.
func NewBump() *Bump {
	return &Bump{epoch: epochs.Add(1)}
}

// Alloc stores a payload and returns its handle.
func (b *Bump) Alloc(payload any) Ref {
	if b.epoch == 0 {
		b.epoch = epochs.Add(1)
	}
	if len(b.slots) == math.MaxUint32 {
		panic("arena: slot table full")
	}
	b.slots = append(b.slots, payload)
	return Ref(uint64(b.epoch)<<32 | uint64(len(b.slots)-1))
}

// Resolve returns the payload stored for ref.
func (b *Bump) Resolve(ref Ref) any {
	if ref.epoch() != b.epoch || b.epoch == 0 {
		panic(fmt.Sprintf("arena: ref %#x was not issued by this arena session", uint64(ref)))
	}
	return b.slots[ref.index()]
}

// Reset discards every payload at once and invalidates every handle the
// arena has issued. The arena can be reused for a new session afterwards.
func (b *Bump) Reset() {
	b.epoch = epochs.Add(1)
	b.slots = nil
}

// Len returns the number of payloads held by the arena.
func (b *Bump) Len() int {
	return len(b.slots)
}

// Stats returns the number of payloads held by the arena per payload class.
func (b *Bump) Stats() map[string]int {
	stats := make(map[string]int)
	for _, payload := range b.slots {
		stats[fmt.Sprintf("%T", payload)]++
	}
	return stats
}

// String returns a deterministic summary of the arena content.
func (b *Bump) String() string {
	stats := b.Stats()
	keys := maps.Keys(stats)
	sort.Strings(keys)
	s := fmt.Sprintf("arena of %d payloads", len(b.slots))
	for _, key := range keys {
		s += fmt.Sprintf("\n%s: %d", key, stats[key])
	}
	return s
}

// Copy allocates storage holding a copy of elems and returns its handle.
// The stored slice never aliases the argument.
func Copy[T any](a Allocator, elems []T) Ref {
	own := make([]T, len(elems))
	copy(own, elems)
	return a.Alloc(own)
}

// Load returns the slice of elements stored at ref. Callers must not
// mutate the returned slice: it is the allocator-owned storage itself.
func Load[T any](a Allocator, ref Ref) []T {
	return a.Resolve(ref).([]T)
}

// Make allocates storage for n zero-valued elements and returns its handle
// together with the storage for initialization.
func Make[T any](a Allocator, n int) (Ref, []T) {
	elems := make([]T, n)
	return a.Alloc(elems), elems
}
