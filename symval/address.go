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

package symval

import (
	"fmt"
	"math"

	"github.com/gx-org/constexpr/arena"
)

// derivedAddress is the payload slot of an address pointing inside a
// memory object: the object plus the access path leading to the element.
type derivedAddress struct {
	obj  arena.Ref
	path []int
}

// NewAddress returns the address of the start of a memory object.
func NewAddress(obj *MemoryObject) Value {
	if obj == nil {
		panic("symval: address requires a memory object")
	}
	return newValue(rkDirectAddress, 0, uint64(obj.ref))
}

// NewIndexedAddress returns the address of an element within a memory
// object. Each step of path indexes one level of aggregate or array
// storage. The path is copied, so the caller keeps ownership of it. An
// empty path produces the same compact value as NewAddress.
func NewIndexedAddress(obj *MemoryObject, path []int, a arena.Allocator) Value {
	if obj == nil {
		panic("symval: address requires a memory object")
	}
	if len(path) == 0 {
		return NewAddress(obj)
	}
	if uint64(len(path)) > math.MaxUint32 {
		panic("symval: access path too long")
	}
	own := make([]int, len(path))
	copy(own, path)
	ref := a.Alloc(derivedAddress{obj: obj.ref, path: own})
	return newValue(rkDerivedAddress, uint32(len(own)), uint64(ref))
}

// AddressValue returns the memory object an address points into and the
// access path leading to the addressed element. The path is empty for the
// address of the start of the object. The path slice is owned by the
// allocator and must not be mutated by the caller.
func (v Value) AddressValue(a arena.Allocator) (*MemoryObject, []int) {
	switch v.rep() {
	case rkDirectAddress:
		return resolveObject(a, v.ref()), nil
	case rkDerivedAddress:
		slot := a.Resolve(v.ref()).(derivedAddress)
		return resolveObject(a, slot.obj), slot.path
	}
	panic(fmt.Sprintf("symval: value of kind %s used as %s", v.Kind(), Address))
}

// AddressValueMemoryObject returns the memory object an address points
// into, ignoring the access path.
func (v Value) AddressValueMemoryObject(a arena.Allocator) *MemoryObject {
	obj, _ := v.AddressValue(a)
	return obj
}

func resolveObject(a arena.Allocator, ref arena.Ref) *MemoryObject {
	return a.Resolve(ref).(*MemoryObject)
}
