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

// NewAggregate returns a struct or tuple value. The element list is copied
// into the allocator, so the caller keeps ownership of elems.
func NewAggregate(elems []Value, a arena.Allocator) Value {
	if uint64(len(elems)) > math.MaxUint32 {
		panic("symval: aggregate too large")
	}
	return newValue(rkAggregate, uint32(len(elems)), uint64(arena.Copy(a, elems)))
}

func newAggregateOwned(elems []Value, ref arena.Ref) Value {
	return newValue(rkAggregate, uint32(len(elems)), uint64(ref))
}

// AggregateValue returns the elements of an aggregate. The slice is owned
// by the allocator and must not be mutated by the caller.
func (v Value) AggregateValue(a arena.Allocator) []Value {
	v.checkKind(Aggregate)
	return arena.Load[Value](a, v.ref())
}

// LookThroughSingleElementAggregates digs through intermediate single
// element aggregates and returns the innermost value. It allocates nothing
// and returns v unchanged if v is not such an aggregate.
func (v Value) LookThroughSingleElementAggregates(a arena.Allocator) Value {
	for v.rep() == rkAggregate && v.aux() == 1 {
		v = arena.Load[Value](a, v.ref())[0]
	}
	return v
}

// enumWithPayload is the payload slot of an enum case carrying an
// associated value.
type enumWithPayload struct {
	enumCase ir.EnumCase
	payload  Value
}

// NewEnum returns an enum case without payload. The case identity is
// borrowed from the compiler owning it.
func NewEnum(enumCase ir.EnumCase, a arena.Allocator) Value {
	if enumCase == nil {
		panic("symval: enum value requires a case")
	}
	return newValue(rkEnum, 0, uint64(a.Alloc(enumCase)))
}

// NewEnumWithPayload returns an enum case carrying an associated value.
// The payload must be a constant.
func NewEnumWithPayload(enumCase ir.EnumCase, payload Value, a arena.Allocator) Value {
	if enumCase == nil {
		panic("symval: enum value requires a case")
	}
	if !payload.IsConstant() {
		panic(fmt.Sprintf("symval: enum payload of kind %s is not a constant", payload.Kind()))
	}
	return newValue(rkEnumWithPayload, 0, uint64(a.Alloc(enumWithPayload{enumCase: enumCase, payload: payload})))
}

// EnumValue returns the case of an enum value, with or without payload.
func (v Value) EnumValue(a arena.Allocator) ir.EnumCase {
	switch v.rep() {
	case rkEnum:
		return a.Resolve(v.ref()).(ir.EnumCase)
	case rkEnumWithPayload:
		return a.Resolve(v.ref()).(enumWithPayload).enumCase
	}
	panic(fmt.Sprintf("symval: value of kind %s used as %s", v.Kind(), Enum))
}

// EnumPayloadValue returns the associated value of an enum case.
func (v Value) EnumPayloadValue(a arena.Allocator) Value {
	v.checkKind(EnumWithPayload)
	return a.Resolve(v.ref()).(enumWithPayload).payload
}
