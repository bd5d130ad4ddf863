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

// Package symval represents the values produced by a compile-time
// constant-expression evaluator.
//
// A Value is two machine words and is freely copied, so an evaluator can
// keep millions of them in hash tables. Payloads that do not fit in two
// words live in an arena.Allocator and are reclaimed all at once when the
// evaluation session ends. Values are immutable once constructed; mutation
// of addressable storage is modeled by MemoryObject, which replaces whole
// values instead of editing them in place.
package symval

import (
	"fmt"

	"github.com/gx-org/constexpr/arena"
	"github.com/gx-org/constexpr/ir"
)

// representation is the internal form of a value. Several representations
// can surface as the same public Kind.
type representation uint8

const (
	// rkUninitMemory is storage that has not been initialized yet.
	rkUninitMemory representation = iota

	// rkUnknown is a value that could not be folded to a constant.
	rkUnknown

	// rkMetatype is a type used as a value.
	rkMetatype

	// rkFunction is a function reference.
	rkFunction

	// rkInteger is an arena-allocated arbitrary-precision integer.
	rkInteger

	// rkIntegerInline is an integer held in the payload word.
	rkIntegerInline

	// rkString is an arena-allocated UTF-8 byte sequence.
	rkString

	// rkAggregate is a struct or tuple of values.
	rkAggregate

	// rkEnum is an enum case without payload.
	rkEnum

	// rkEnumWithPayload is an enum case with an associated value.
	rkEnumWithPayload

	// rkDirectAddress is the address of a memory object.
	rkDirectAddress

	// rkDerivedAddress is an address into a memory object.
	rkDerivedAddress

	// rkArrayStorage is the internal storage of an array.
	rkArrayStorage

	// rkArray is an array backed by a memory object holding its storage.
	rkArray
)

// Kind is the public classification of a value, independent of its
// internal representation.
type Kind uint

const (
	// Unknown is a value that is not a constant.
	Unknown Kind = iota

	// Metatype is a known type value.
	Metatype

	// Function is a function reference.
	Function

	// Integer is an integer constant of a fixed bit width.
	Integer

	// String is a UTF-8 string constant.
	String

	// Aggregate is a struct or tuple of constants.
	Aggregate

	// Enum is an enum case without payload.
	Enum

	// EnumWithPayload is an enum case with an associated value.
	EnumWithPayload

	// Address is the address of, or into, a memory object.
	Address

	// ArrayStorage is the internal storage of an array.
	ArrayStorage

	// Array is an array value.
	Array

	// UninitMemory is storage that has not been initialized yet. It is
	// generally only seen internally to the evaluator.
	UninitMemory
)

// String returns a string representation of a kind.
func (k Kind) String() string {
	switch k {
	case Unknown:
		return "unknown"
	case Metatype:
		return "metatype"
	case Function:
		return "function"
	case Integer:
		return "integer"
	case String:
		return "string"
	case Aggregate:
		return "aggregate"
	case Enum:
		return "enum"
	case EnumWithPayload:
		return "enum with payload"
	case Address:
		return "address"
	case ArrayStorage:
		return "array storage"
	case Array:
		return "array"
	case UninitMemory:
		return "uninitialized memory"
	}
	return fmt.Sprintf("invalid kind %d", uint(k))
}

// Value is the symbolic value tracked for each program value during an
// evaluation. A value is two machine words: one word packing the
// representation with its auxiliary size information, one payload word.
// The auxiliary word stores the integer bit width, the string byte length,
// or the element count, so none of these require resolving the payload.
//
// The zero Value is uninitialized memory.
type Value struct {
	meta uint64
	data uint64
}

func newValue(rk representation, aux uint32, data uint64) Value {
	return Value{meta: uint64(rk) | uint64(aux)<<32, data: data}
}

func (v Value) rep() representation {
	return representation(v.meta)
}

func (v Value) aux() uint32 {
	return uint32(v.meta >> 32)
}

func (v Value) ref() arena.Ref {
	return arena.Ref(v.data)
}

func (v Value) checkKind(want Kind) {
	if v.Kind() != want {
		panic(fmt.Sprintf("symval: value of kind %s used as %s", v.Kind(), want))
	}
}

// Kind returns the classification of the value.
func (v Value) Kind() Kind {
	switch v.rep() {
	case rkUninitMemory:
		return UninitMemory
	case rkUnknown:
		return Unknown
	case rkMetatype:
		return Metatype
	case rkFunction:
		return Function
	case rkInteger, rkIntegerInline:
		return Integer
	case rkString:
		return String
	case rkAggregate:
		return Aggregate
	case rkEnum:
		return Enum
	case rkEnumWithPayload:
		return EnumWithPayload
	case rkDirectAddress, rkDerivedAddress:
		return Address
	case rkArrayStorage:
		return ArrayStorage
	case rkArray:
		return Array
	}
	panic(fmt.Sprintf("symval: invalid representation %d", uint8(v.rep())))
}

// IsConstant returns true if the value is a fixed answer, that is anything
// but Unknown or UninitMemory.
func (v Value) IsConstant() bool {
	kind := v.Kind()
	return kind != Unknown && kind != UninitMemory
}

// NewUninitMemory returns the sentinel for storage that has not been
// initialized yet.
func NewUninitMemory() Value {
	return Value{}
}

// NewMetatype returns a value referencing a type identity. The identity is
// borrowed from the compiler owning it.
func NewMetatype(typ ir.Type, a arena.Allocator) Value {
	if typ == nil {
		panic("symval: metatype requires a type")
	}
	return newValue(rkMetatype, 0, uint64(a.Alloc(typ)))
}

// MetatypeValue returns the type referenced by a metatype value.
func (v Value) MetatypeValue(a arena.Allocator) ir.Type {
	v.checkKind(Metatype)
	return a.Resolve(v.ref()).(ir.Type)
}

// NewFunction returns a value referencing a function identity. The identity
// is borrowed from the compiler owning it.
func NewFunction(fn ir.Func, a arena.Allocator) Value {
	if fn == nil {
		panic("symval: function value requires a function")
	}
	return newValue(rkFunction, 0, uint64(a.Alloc(fn)))
}

// FunctionValue returns the function referenced by a function value.
func (v Value) FunctionValue(a arena.Allocator) ir.Func {
	v.checkKind(Function)
	return a.Resolve(v.ref()).(ir.Func)
}
