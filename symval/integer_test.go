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

package symval_test

import (
	"math"
	"math/big"
	"testing"

	"github.com/gx-org/constexpr/arena"
	"github.com/gx-org/constexpr/symval"
)

func bigPow2(exp uint) *big.Int {
	return new(big.Int).Lsh(big.NewInt(1), exp)
}

func TestIntegerRoundTrip(t *testing.T) {
	ar := arena.NewBump()
	tests := []struct {
		value *big.Int
		width uint
	}{
		{value: big.NewInt(0), width: 1},
		{value: big.NewInt(1), width: 1},
		{value: big.NewInt(-1), width: 1},
		{value: big.NewInt(255), width: 8},
		{value: big.NewInt(-128), width: 8},
		{value: big.NewInt(42), width: 32},
		{value: big.NewInt(math.MaxInt64), width: 64},
		{value: big.NewInt(math.MinInt64), width: 64},
		// Unsigned values above the signed range take the allocated form.
		{value: bigPow2(63), width: 64},
		{value: new(big.Int).Sub(bigPow2(64), big.NewInt(1)), width: 64},
		{value: bigPow2(100), width: 128},
		{value: new(big.Int).Neg(bigPow2(127)), width: 128},
	}
	for i, test := range tests {
		value := symval.NewInteger(test.value, test.width, ar)
		if got, want := value.Kind(), symval.Integer; got != want {
			t.Errorf("test %d: incorrect kind: got %s, want %s", i, got, want)
		}
		if got := value.IntValue(ar); got.Cmp(test.value) != 0 {
			t.Errorf("test %d: incorrect value: got %s, want %s", i, got, test.value)
		}
		if got := value.IntBitWidth(); got != test.width {
			t.Errorf("test %d: incorrect width: got %d, want %d", i, got, test.width)
		}
	}
}

func TestIntegerRepresentationIsTransparent(t *testing.T) {
	ar := arena.NewBump()
	inline := symval.NewInt64(42, 64)
	allocated := symval.NewInteger(big.NewInt(42), 64, ar)
	if !symval.Equal(ar, inline, allocated) {
		t.Errorf("values differ: want both constructions to be equal")
	}
	if got, want := symval.Sprint(ar, inline), symval.Sprint(ar, allocated); got != want {
		t.Errorf("representations print differently: got %q, want %q", got, want)
	}
}

func TestInt64RoundTrip(t *testing.T) {
	tests := []struct {
		value int64
		width uint
	}{
		{value: 0, width: 1},
		{value: -1, width: 1},
		{value: -7, width: 13},
		{value: 1 << 40, width: 64},
	}
	for i, test := range tests {
		value := symval.NewInt64(test.value, test.width)
		// Inline integers never touch the allocator.
		var empty arena.Bump
		if got := value.IntValue(&empty); got.Cmp(big.NewInt(test.value)) != 0 {
			t.Errorf("test %d: incorrect value: got %s, want %d", i, got, test.value)
		}
	}
}

func TestIntegerDoesNotFitPanics(t *testing.T) {
	ar := arena.NewBump()
	tests := []struct {
		desc  string
		build func()
	}{
		{desc: "width zero", build: func() { symval.NewInt64(0, 0) }},
		{desc: "2 in 1 bit", build: func() { symval.NewInt64(2, 1) }},
		{desc: "256 in 8 bits", build: func() { symval.NewInt64(256, 8) }},
		{desc: "-129 in 8 bits", build: func() { symval.NewInt64(-129, 8) }},
		{desc: "2^64 in 64 bits", build: func() { symval.NewInteger(bigPow2(64), 64, ar) }},
		{desc: "2^128 in 128 bits", build: func() { symval.NewInteger(bigPow2(128), 128, ar) }},
		{desc: "-(2^127)-1 in 128 bits", build: func() {
			min := new(big.Int).Neg(bigPow2(127))
			symval.NewInteger(min.Sub(min, big.NewInt(1)), 128, ar)
		}},
		{desc: "nil value", build: func() { symval.NewInteger(nil, 32, ar) }},
	}
	for _, test := range tests {
		t.Run(test.desc, func(t *testing.T) {
			wantPanic(t, test.build)
		})
	}
}
