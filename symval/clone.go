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

	"github.com/gx-org/constexpr/arena"
)

// CloneInto returns a deep copy of a constant with every payload
// reallocated in the destination allocator, so the copy outlives the
// session that produced the value. Memory objects referenced by addresses
// and arrays are cloned along with their current value. Borrowed compiler
// identities (types, functions, enum cases) are shared, not copied.
// Uninitialized elements inside aggregates are preserved; the value
// itself must be a constant.
func (v Value) CloneInto(from, to arena.Allocator) Value {
	if !v.IsConstant() {
		panic(fmt.Sprintf("symval: cannot clone a value of kind %s", v.Kind()))
	}
	return cloneValue(from, to, v)
}

func cloneValue(from, to arena.Allocator, v Value) Value {
	switch v.rep() {
	case rkUninitMemory, rkIntegerInline:
		// No payload to move.
		return v
	case rkMetatype:
		return NewMetatype(v.MetatypeValue(from), to)
	case rkFunction:
		return NewFunction(v.FunctionValue(from), to)
	case rkInteger:
		return NewInteger(v.IntValue(from), v.IntBitWidth(), to)
	case rkString:
		return NewString(v.StringValue(from), to)
	case rkAggregate:
		return newAggregateOwned(cloneElems(from, to, v.AggregateValue(from)))
	case rkEnum:
		return NewEnum(v.EnumValue(from), to)
	case rkEnumWithPayload:
		slot := from.Resolve(v.ref()).(enumWithPayload)
		return NewEnumWithPayload(slot.enumCase, cloneValue(from, to, slot.payload), to)
	case rkDirectAddress:
		return NewAddress(cloneObject(from, to, resolveObject(from, v.ref())))
	case rkDerivedAddress:
		slot := from.Resolve(v.ref()).(derivedAddress)
		return NewIndexedAddress(cloneObject(from, to, resolveObject(from, slot.obj)), slot.path, to)
	case rkArrayStorage:
		elems, elemType := v.StoredElements(from)
		cloned := make([]Value, len(elems))
		for i, elem := range elems {
			cloned[i] = cloneValue(from, to, elem)
		}
		return newArrayStorageOwned(cloned, elemType, to)
	case rkArray:
		storage := cloneValue(from, to, v.StorageOfArray(from))
		return NewArray(v.ArrayType(from), storage, to)
	}
	panic(fmt.Sprintf("symval: cannot clone a value of kind %s", v.Kind()))
}

func cloneElems(from, to arena.Allocator, elems []Value) ([]Value, arena.Ref) {
	ref, cloned := arena.Make[Value](to, len(elems))
	for i, elem := range elems {
		cloned[i] = cloneValue(from, to, elem)
	}
	return cloned, ref
}

func cloneObject(from, to arena.Allocator, obj *MemoryObject) *MemoryObject {
	return NewMemoryObject(obj.Type(), cloneValue(from, to, obj.Value()), to)
}
