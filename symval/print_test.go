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
	"fmt"
	"math/big"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/gx-org/constexpr/arena"
	"github.com/gx-org/constexpr/ir/irhelper"
	"github.com/gx-org/constexpr/symval"
)

func TestSprint(t *testing.T) {
	ar := arena.NewBump()
	elemType := int32Type()
	pairType := irhelper.Tuple(elemType, elemType)
	obj := symval.NewMemoryObject(pairType, symval.NewUninitMemory(), ar)
	tests := []struct {
		desc  string
		value symval.Value
		want  string
	}{
		{
			desc:  "uninit memory",
			value: symval.NewUninitMemory(),
			want:  "uninit",
		},
		{
			desc:  "inline integer",
			value: symval.NewInt64(-42, 32),
			want:  "int<32>: -42",
		},
		{
			desc:  "allocated integer",
			value: symval.NewInteger(bigPow2(100), 128, ar),
			want:  "int<128>: 1267650600228229401496703205376",
		},
		{
			desc:  "string",
			value: symval.NewString("say \"hi\"", ar),
			want:  `string: "say \"hi\""`,
		},
		{
			desc:  "metatype",
			value: symval.NewMetatype(elemType, ar),
			want:  fmt.Sprintf("metatype: %s", elemType.String()),
		},
		{
			desc:  "function",
			value: symval.NewFunction(irhelper.FuncDecl("fact"), ar),
			want:  "func: fact",
		},
		{
			desc:  "enum",
			value: symval.NewEnum(irhelper.Case("none"), ar),
			want:  "enum: none",
		},
		{
			desc:  "enum with payload",
			value: symval.NewEnumWithPayload(irhelper.Case("some"), symval.NewInt64(1, 32), ar),
			want:  "enum: some, payload: (\n  int<32>: 1\n)",
		},
		{
			desc:  "empty aggregate",
			value: symval.NewAggregate(nil, ar),
			want:  "agg: ()",
		},
		{
			desc: "nested aggregate",
			value: symval.NewAggregate([]symval.Value{
				symval.NewInt64(1, 32),
				symval.NewAggregate([]symval.Value{symval.NewString("x", ar)}, ar),
			}, ar),
			want: strings.Join([]string{
				"agg: (",
				"  int<32>: 1",
				"  agg: (",
				`    string: "x"`,
				"  )",
				")",
			}, "\n"),
		},
		{
			desc:  "unknown",
			value: symval.NewUnknown(irhelper.Ident("x"), symval.NewReason(symval.ReasonLoop), nil, ar),
			want:  "unknown(loop)",
		},
		{
			desc:  "unknown trap",
			value: symval.NewUnknown(irhelper.Ident("x"), symval.NewTrapReason("boom", ar), nil, ar),
			want:  `unknown(trap: "boom")`,
		},
		{
			desc:  "unknown callee",
			value: symval.NewUnknown(irhelper.Ident("x"), symval.NewCalleeUnknownReason(irhelper.FuncDecl("fact")), nil, ar),
			want:  "unknown(callee implementation unknown: fact)",
		},
		{
			desc:  "direct address",
			value: symval.NewAddress(obj),
			want:  fmt.Sprintf("address[%s]", pairType.String()),
		},
		{
			desc:  "indexed address",
			value: symval.NewIndexedAddress(obj, []int{0, 1}, ar),
			want:  fmt.Sprintf("address[%s][0][1]", pairType.String()),
		},
		{
			desc:  "array storage",
			value: symval.NewArrayStorage([]symval.Value{symval.NewInt64(10, 32)}, elemType, ar),
			want:  fmt.Sprintf("arrayStorage<%s>: (\n  int<32>: 10\n)", elemType.String()),
		},
		{
			desc:  "array",
			value: newIntArray(ar, 10, 20),
			want: fmt.Sprintf("array<[]%s>: (\n  int<32>: 10\n  int<32>: 20\n)",
				elemType.String()),
		},
	}
	for _, test := range tests {
		t.Run(test.desc, func(t *testing.T) {
			if diff := cmp.Diff(symval.Sprint(ar, test.value), test.want); diff != "" {
				t.Errorf("incorrect representation:\n%s", diff)
			}
		})
	}
}

func TestSprintIntegerIsCanonical(t *testing.T) {
	ar := arena.NewBump()
	inline := symval.NewInt64(7, 64)
	allocated := symval.NewInteger(big.NewInt(7), 64, ar)
	if got, want := symval.Sprint(ar, inline), symval.Sprint(ar, allocated); got != want {
		t.Errorf("representations differ: got %q, want %q", got, want)
	}
}

func TestPrint(t *testing.T) {
	ar := arena.NewBump()
	value := symval.NewInt64(5, 32)
	w := strings.Builder{}
	symval.Print(&w, ar, value)
	if got, want := w.String(), symval.Sprint(ar, value); got != want {
		t.Errorf("incorrect output: got %q, want %q", got, want)
	}
}
