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
	"io"
	"strconv"
	"strings"

	"github.com/gx-org/constexpr/arena"
	basefmt "github.com/gx-org/constexpr/base/fmt"
)

// Sprint returns a deterministic representation of a value for debugging
// and tests. Aggregates and arrays print one element per line; addresses
// print the type of their object and the access path, never the object
// contents, so values with reference cycles still print.
func Sprint(a arena.Allocator, v Value) string {
	switch v.rep() {
	case rkUninitMemory:
		return "uninit"
	case rkUnknown:
		return fmt.Sprintf("unknown(%s)", reasonDetail(a, v.unknownSlot(a).reason))
	case rkMetatype:
		return fmt.Sprintf("metatype: %s", v.MetatypeValue(a).String())
	case rkFunction:
		return fmt.Sprintf("func: %s", v.FunctionValue(a).Name())
	case rkInteger, rkIntegerInline:
		return fmt.Sprintf("int<%d>: %s", v.IntBitWidth(), v.IntValue(a).String())
	case rkString:
		return fmt.Sprintf("string: %s", strconv.Quote(v.StringValue(a)))
	case rkAggregate:
		return sprintElems(a, "agg", arena.Load[Value](a, v.ref()))
	case rkEnum:
		return fmt.Sprintf("enum: %s", v.EnumValue(a).Name())
	case rkEnumWithPayload:
		slot := a.Resolve(v.ref()).(enumWithPayload)
		return fmt.Sprintf("enum: %s, payload: (\n%s\n)", slot.enumCase.Name(), basefmt.Indent(Sprint(a, slot.payload)))
	case rkDirectAddress, rkDerivedAddress:
		obj, path := v.AddressValue(a)
		return sprintAddress(obj, path)
	case rkArrayStorage:
		elems, elemType := v.StoredElements(a)
		return sprintElems(a, fmt.Sprintf("arrayStorage<%s>", elemType.String()), elems)
	case rkArray:
		elems, _ := v.StorageOfArray(a).StoredElements(a)
		return sprintElems(a, fmt.Sprintf("array<%s>", v.ArrayType(a).String()), elems)
	}
	panic(fmt.Sprintf("symval: invalid representation %d", uint8(v.rep())))
}

// Print writes the representation of Sprint to w.
func Print(w io.Writer, a arena.Allocator, v Value) {
	fmt.Fprint(w, Sprint(a, v))
}

func sprintElems(a arena.Allocator, label string, elems []Value) string {
	if len(elems) == 0 {
		return label + ": ()"
	}
	bld := strings.Builder{}
	bld.WriteString(label + ": (\n")
	for _, elem := range elems {
		bld.WriteString(basefmt.Indent(Sprint(a, elem)) + "\n")
	}
	bld.WriteString(")")
	return bld.String()
}

func sprintAddress(obj *MemoryObject, path []int) string {
	bld := strings.Builder{}
	fmt.Fprintf(&bld, "address[%s]", typeString(obj.Type()))
	for _, index := range path {
		fmt.Fprintf(&bld, "[%d]", index)
	}
	return bld.String()
}

func reasonDetail(a arena.Allocator, r UnknownReason) string {
	switch r.kind {
	case ReasonTrap:
		return fmt.Sprintf("trap: %s", strconv.Quote(r.TrapMessage(a)))
	case ReasonCalleeImplementationUnknown:
		return fmt.Sprintf("%s: %s", r.kind, r.callee.Name())
	}
	return r.kind.String()
}
