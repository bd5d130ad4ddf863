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
	"math/big"

	"github.com/gx-org/constexpr/arena"
)

// NewInt64 returns an integer constant of the given bit width, stored
// inline in the payload word. Panics if value does not fit in width bits as
// a signed or unsigned quantity.
func NewInt64(value int64, width uint) Value {
	checkWidth(width)
	if !int64Fits(value, width) {
		panic(fmt.Sprintf("symval: %d does not fit in %d bits", value, width))
	}
	return newValue(rkIntegerInline, uint32(width), uint64(value))
}

// NewInteger returns an integer constant of the given bit width. Values
// representable as an int64 are stored inline; wider values are copied into
// the allocator. Panics if value does not fit in width bits as a signed or
// unsigned quantity.
func NewInteger(value *big.Int, width uint, a arena.Allocator) Value {
	if value == nil {
		panic("symval: integer value is nil")
	}
	checkWidth(width)
	if !bigFits(value, width) {
		panic(fmt.Sprintf("symval: %s does not fit in %d bits", value.String(), width))
	}
	if value.IsInt64() {
		return newValue(rkIntegerInline, uint32(width), uint64(value.Int64()))
	}
	return newValue(rkInteger, uint32(width), uint64(a.Alloc(new(big.Int).Set(value))))
}

// IntValue returns a copy of the integer constant. Inline values decode by
// sign extension, so the result always equals the value the constant was
// built from.
func (v Value) IntValue(a arena.Allocator) *big.Int {
	v.checkKind(Integer)
	if v.rep() == rkIntegerInline {
		return big.NewInt(int64(v.data))
	}
	return new(big.Int).Set(a.Resolve(v.ref()).(*big.Int))
}

// IntBitWidth returns the bit width of the integer constant. The width is
// available without resolving the payload.
func (v Value) IntBitWidth() uint {
	v.checkKind(Integer)
	return uint(v.aux())
}

// checkWidth panics unless width fits the auxiliary word of a value.
func checkWidth(width uint) {
	if width == 0 || uint64(width) > math.MaxUint32 {
		panic(fmt.Sprintf("symval: invalid integer width %d", width))
	}
}

// int64Fits reports whether v is representable in width bits, as a signed
// quantity if negative and as either a signed or unsigned quantity
// otherwise.
func int64Fits(v int64, width uint) bool {
	if width >= 64 {
		return true
	}
	if v < 0 {
		return v >= -(int64(1) << (width - 1))
	}
	return uint64(v) < uint64(1)<<width
}

func bigFits(v *big.Int, width uint) bool {
	if v.Sign() < 0 {
		// Lowest signed value at this width is -(2^(width-1)).
		min := new(big.Int).Lsh(big.NewInt(1), width-1)
		min.Neg(min)
		return v.Cmp(min) >= 0
	}
	return uint(v.BitLen()) <= width
}
