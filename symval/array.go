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
	"github.com/gx-org/constexpr/ir"
)

// arrayStorage is the payload slot of the internal storage of an array:
// the element sequence together with the element type.
type arrayStorage struct {
	elems    []Value
	elemType ir.Type
}

// NewArrayStorage returns the internal storage of an array. The element
// list is copied into the allocator, so the caller keeps ownership of
// elems. The element type identity is borrowed from the compiler owning
// it.
func NewArrayStorage(elems []Value, elemType ir.Type, a arena.Allocator) Value {
	if elemType == nil {
		panic("symval: array storage requires an element type")
	}
	if uint64(len(elems)) > math.MaxUint32 {
		panic("symval: array storage too large")
	}
	own := make([]Value, len(elems))
	copy(own, elems)
	return newArrayStorageOwned(own, elemType, a)
}

func newArrayStorageOwned(elems []Value, elemType ir.Type, a arena.Allocator) Value {
	ref := a.Alloc(arrayStorage{elems: elems, elemType: elemType})
	return newValue(rkArrayStorage, uint32(len(elems)), uint64(ref))
}

// StoredElements returns the elements held by an array storage together
// with their element type. The slice is owned by the allocator and must
// not be mutated by the caller.
func (v Value) StoredElements(a arena.Allocator) ([]Value, ir.Type) {
	v.checkKind(ArrayStorage)
	slot := a.Resolve(v.ref()).(arrayStorage)
	return slot.elems, slot.elemType
}

// NewArray returns an array value of the given type. The array is backed
// by a fresh memory object holding storage, so that addresses derived from
// the array observe later writes to its elements.
func NewArray(arrayType ir.Type, storage Value, a arena.Allocator) Value {
	if arrayType == nil {
		panic("symval: array requires a type")
	}
	storage.checkKind(ArrayStorage)
	obj := NewMemoryObject(arrayType, storage, a)
	return newValue(rkArray, 0, uint64(obj.ref))
}

// StorageOfArray returns the current storage backing an array.
func (v Value) StorageOfArray(a arena.Allocator) Value {
	v.checkKind(Array)
	return resolveObject(a, v.ref()).Value()
}

// ArrayType returns the type of an array value.
func (v Value) ArrayType(a arena.Allocator) ir.Type {
	v.checkKind(Array)
	return resolveObject(a, v.ref()).Type()
}

// AddressOfArrayElement returns the address of the element of an array at
// the given index. The address stays valid across later writes to the
// array storage.
func (v Value) AddressOfArrayElement(a arena.Allocator, index int) Value {
	v.checkKind(Array)
	if index < 0 {
		panic(fmt.Sprintf("symval: negative array index %d", index))
	}
	ref := a.Alloc(derivedAddress{obj: arena.Ref(v.data), path: []int{index}})
	return newValue(rkDerivedAddress, 1, uint64(ref))
}
