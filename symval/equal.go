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
	"slices"

	"github.com/gx-org/constexpr/arena"
)

// Equal reports whether two values of the same session are structurally
// equal. Integers compare by numeric value and width regardless of how
// they are stored. Types, functions, and enum cases compare by identity.
// Addresses and arrays compare by the object they reference, not by
// contents, so two arrays built from equal elements are not equal.
func Equal(a arena.Allocator, x, y Value) bool {
	if x.Kind() != y.Kind() {
		return false
	}
	switch x.Kind() {
	case UninitMemory:
		return true
	case Unknown:
		return x == y
	case Metatype:
		return x.MetatypeValue(a) == y.MetatypeValue(a)
	case Function:
		return x.FunctionValue(a) == y.FunctionValue(a)
	case Integer:
		if x.IntBitWidth() != y.IntBitWidth() {
			return false
		}
		return x.IntValue(a).Cmp(y.IntValue(a)) == 0
	case String:
		return x.StringValue(a) == y.StringValue(a)
	case Aggregate:
		return equalElems(a, x.AggregateValue(a), y.AggregateValue(a))
	case Enum:
		return x.EnumValue(a) == y.EnumValue(a)
	case EnumWithPayload:
		if x.EnumValue(a) != y.EnumValue(a) {
			return false
		}
		return Equal(a, x.EnumPayloadValue(a), y.EnumPayloadValue(a))
	case Address:
		xObj, xPath := x.AddressValue(a)
		yObj, yPath := y.AddressValue(a)
		return xObj == yObj && slices.Equal(xPath, yPath)
	case ArrayStorage:
		xElems, xType := x.StoredElements(a)
		yElems, yType := y.StoredElements(a)
		return xType == yType && equalElems(a, xElems, yElems)
	case Array:
		return x.data == y.data
	}
	return false
}

func equalElems(a arena.Allocator, xs, ys []Value) bool {
	if len(xs) != len(ys) {
		return false
	}
	for i, x := range xs {
		if !Equal(a, x, ys[i]) {
			return false
		}
	}
	return true
}
