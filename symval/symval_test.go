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
	"testing"
	"unsafe"

	"github.com/gx-org/backend/dtype"
	"github.com/gx-org/constexpr/arena"
	"github.com/gx-org/constexpr/ir/irhelper"
	"github.com/gx-org/constexpr/symval"
)

func wantPanic(t *testing.T, f func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Errorf("no panic: want one")
		}
	}()
	f()
}

func TestValueSize(t *testing.T) {
	const wordSize = unsafe.Sizeof(uintptr(0))
	if got, want := unsafe.Sizeof(symval.Value{}), 2*wordSize; got != want {
		t.Errorf("incorrect value size: got %d bytes, want %d bytes", got, want)
	}
}

func TestZeroValueIsUninitMemory(t *testing.T) {
	var value symval.Value
	if got, want := value.Kind(), symval.UninitMemory; got != want {
		t.Errorf("incorrect kind: got %s, want %s", got, want)
	}
	if value.IsConstant() {
		t.Errorf("uninitialized memory is a constant: want not a constant")
	}
	if value.IsUnknown() {
		t.Errorf("uninitialized memory is unknown: want not unknown")
	}
	if got, want := value, symval.NewUninitMemory(); got != want {
		t.Errorf("incorrect value: got %v, want %v", got, want)
	}
}

func TestKindString(t *testing.T) {
	tests := []struct {
		kind symval.Kind
		want string
	}{
		{kind: symval.Unknown, want: "unknown"},
		{kind: symval.Metatype, want: "metatype"},
		{kind: symval.Function, want: "function"},
		{kind: symval.Integer, want: "integer"},
		{kind: symval.String, want: "string"},
		{kind: symval.Aggregate, want: "aggregate"},
		{kind: symval.Enum, want: "enum"},
		{kind: symval.EnumWithPayload, want: "enum with payload"},
		{kind: symval.Address, want: "address"},
		{kind: symval.ArrayStorage, want: "array storage"},
		{kind: symval.Array, want: "array"},
		{kind: symval.UninitMemory, want: "uninitialized memory"},
	}
	for _, test := range tests {
		if got := test.kind.String(); got != test.want {
			t.Errorf("incorrect kind string: got %q, want %q", got, test.want)
		}
	}
}

func TestMetatype(t *testing.T) {
	ar := arena.NewBump()
	typ := irhelper.Scalar(dtype.Int32)
	value := symval.NewMetatype(typ, ar)
	if got, want := value.Kind(), symval.Metatype; got != want {
		t.Errorf("incorrect kind: got %s, want %s", got, want)
	}
	if !value.IsConstant() {
		t.Errorf("metatype is not a constant: want a constant")
	}
	if got := value.MetatypeValue(ar); got != typ {
		t.Errorf("incorrect type: got %v, want %v", got, typ)
	}
}

func TestFunction(t *testing.T) {
	ar := arena.NewBump()
	fn := irhelper.FuncDecl("fact")
	value := symval.NewFunction(fn, ar)
	if got, want := value.Kind(), symval.Function; got != want {
		t.Errorf("incorrect kind: got %s, want %s", got, want)
	}
	if got := value.FunctionValue(ar); got != fn {
		t.Errorf("incorrect function: got %v, want %v", got, fn)
	}
}

func TestNilIdentityPanics(t *testing.T) {
	ar := arena.NewBump()
	wantPanic(t, func() { symval.NewMetatype(nil, ar) })
	wantPanic(t, func() { symval.NewFunction(nil, ar) })
	wantPanic(t, func() { symval.NewEnum(nil, ar) })
	wantPanic(t, func() { symval.NewEnumWithPayload(nil, symval.NewInt64(1, 32), ar) })
	wantPanic(t, func() { symval.NewArrayStorage(nil, nil, ar) })
	wantPanic(t, func() { symval.NewAddress(nil) })
	wantPanic(t, func() { symval.NewUnknown(nil, symval.NewReason(symval.ReasonDefault), nil, ar) })
}

func TestAccessorKindMismatchPanics(t *testing.T) {
	ar := arena.NewBump()
	str := symval.NewString("payload", ar)
	num := symval.NewInt64(1, 32)
	tests := []struct {
		desc   string
		access func()
	}{
		{desc: "IntValue on a string", access: func() { str.IntValue(ar) }},
		{desc: "IntBitWidth on a string", access: func() { str.IntBitWidth() }},
		{desc: "StringValue on an integer", access: func() { num.StringValue(ar) }},
		{desc: "MetatypeValue on an integer", access: func() { num.MetatypeValue(ar) }},
		{desc: "FunctionValue on an integer", access: func() { num.FunctionValue(ar) }},
		{desc: "AggregateValue on an integer", access: func() { num.AggregateValue(ar) }},
		{desc: "EnumValue on an integer", access: func() { num.EnumValue(ar) }},
		{desc: "EnumPayloadValue on an integer", access: func() { num.EnumPayloadValue(ar) }},
		{desc: "AddressValue on an integer", access: func() { num.AddressValue(ar) }},
		{desc: "StoredElements on an integer", access: func() { num.StoredElements(ar) }},
		{desc: "StorageOfArray on an integer", access: func() { num.StorageOfArray(ar) }},
		{desc: "UnknownNode on an integer", access: func() { num.UnknownNode(ar) }},
	}
	for _, test := range tests {
		t.Run(test.desc, func(t *testing.T) {
			wantPanic(t, test.access)
		})
	}
}
