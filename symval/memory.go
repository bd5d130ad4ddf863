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
	"github.com/gx-org/constexpr/ir"
)

// MemoryObject is one addressable storage cell: a fixed type identity
// together with a replaceable current value. Objects live in the allocator
// of their session, so address values can reference them in a single
// payload word.
type MemoryObject struct {
	typ ir.Type
	val Value
	ref arena.Ref
}

// NewMemoryObject returns a memory object of the given type holding value.
// Pass an uninitialized value for storage that has not been written yet.
func NewMemoryObject(typ ir.Type, value Value, a arena.Allocator) *MemoryObject {
	if typ == nil {
		panic("symval: memory object requires a type")
	}
	obj := &MemoryObject{typ: typ, val: value}
	obj.ref = a.Alloc(obj)
	return obj
}

// Type returns the type of the object. The type never changes over the
// lifetime of the object.
func (m *MemoryObject) Type() ir.Type {
	return m.typ
}

// Value returns the current value held by the object.
func (m *MemoryObject) Value() Value {
	return m.val
}

// SetValue replaces the value held by the object.
func (m *MemoryObject) SetValue(value Value) {
	m.val = value
}

// IndexedElement returns the element of the object at the given access
// path. If any step of the path crosses uninitialized memory, the result
// is uninitialized memory.
func (m *MemoryObject) IndexedElement(a arena.Allocator, path []int) Value {
	v := m.val
	for _, index := range path {
		if v.rep() == rkUninitMemory {
			return NewUninitMemory()
		}
		v = childAt(a, v, index)
	}
	return v
}

// SetIndexedElement replaces the element of the object at the given access
// path. Every level on the path is rebuilt rather than mutated in place,
// so values previously read from the object keep their contents. Writing
// through uninitialized memory materializes each level as an aggregate of
// uninitialized elements, which requires the type at that level to expose
// its element structure.
func (m *MemoryObject) SetIndexedElement(a arena.Allocator, path []int, newElement Value) {
	m.val = setIndexedElement(a, m.typ, m.val, path, newElement)
}

func childAt(a arena.Allocator, v Value, index int) Value {
	switch v.rep() {
	case rkAggregate:
		elems := arena.Load[Value](a, v.ref())
		checkIndex(index, len(elems))
		return elems[index]
	case rkArrayStorage:
		slot := a.Resolve(v.ref()).(arrayStorage)
		checkIndex(index, len(slot.elems))
		return slot.elems[index]
	}
	panic(fmt.Sprintf("symval: cannot index into a value of kind %s", v.Kind()))
}

func setIndexedElement(a arena.Allocator, typ ir.Type, v Value, path []int, newElement Value) Value {
	if len(path) == 0 {
		return newElement
	}
	index := path[0]
	switch v.rep() {
	case rkUninitMemory:
		agg, ok := typ.(ir.AggregateType)
		if !ok {
			panic(fmt.Sprintf("symval: cannot write through uninitialized memory of type %s", typeString(typ)))
		}
		elems := make([]Value, agg.NumElements())
		checkIndex(index, len(elems))
		elems[index] = setIndexedElement(a, agg.ElementType(index), NewUninitMemory(), path[1:], newElement)
		return NewAggregate(elems, a)
	case rkAggregate:
		elems := arena.Load[Value](a, v.ref())
		checkIndex(index, len(elems))
		ref, rebuilt := arena.Make[Value](a, len(elems))
		copy(rebuilt, elems)
		rebuilt[index] = setIndexedElement(a, elementType(typ, index), elems[index], path[1:], newElement)
		return newAggregateOwned(rebuilt, ref)
	case rkArrayStorage:
		slot := a.Resolve(v.ref()).(arrayStorage)
		checkIndex(index, len(slot.elems))
		rebuilt := make([]Value, len(slot.elems))
		copy(rebuilt, slot.elems)
		rebuilt[index] = setIndexedElement(a, slot.elemType, slot.elems[index], path[1:], newElement)
		return newArrayStorageOwned(rebuilt, slot.elemType, a)
	}
	panic(fmt.Sprintf("symval: cannot index into a value of kind %s", v.Kind()))
}

func checkIndex(index, numElements int) {
	if index < 0 || index >= numElements {
		panic(fmt.Sprintf("symval: access path index %d out of range for %d elements", index, numElements))
	}
}

func elementType(typ ir.Type, i int) ir.Type {
	agg, ok := typ.(ir.AggregateType)
	if !ok {
		return nil
	}
	return agg.ElementType(i)
}

func typeString(typ ir.Type) string {
	if typ == nil {
		return "<untyped>"
	}
	return typ.String()
}
