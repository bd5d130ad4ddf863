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

// Package irhelper provides helper functions to build identities
// programmatically, mostly for tests.
package irhelper

import (
	"fmt"
	"go/ast"
	"slices"

	"github.com/gx-org/backend/dtype"
	"github.com/gx-org/constexpr/base/stringseq"
	"github.com/gx-org/constexpr/ir"
)

// Ident returns an identifier usable as a program node identity.
func Ident(n string) *ast.Ident {
	return &ast.Ident{Name: n}
}

type scalarType struct {
	dt dtype.DataType
}

var _ ir.Type = (*scalarType)(nil)

// Scalar returns the type identity of a backend scalar data type.
func Scalar(dt dtype.DataType) ir.Type {
	return &scalarType{dt: dt}
}

// String representation of the type.
func (t *scalarType) String() string {
	return t.dt.String()
}

type tupleType struct {
	elems []ir.Type
}

var _ ir.AggregateType = (*tupleType)(nil)

// Tuple returns an aggregate type identity with the given element types.
func Tuple(elems ...ir.Type) ir.AggregateType {
	return &tupleType{elems: elems}
}

// String representation of the type.
func (t *tupleType) String() string {
	return "(" + stringseq.JoinStringer(slices.Values(t.elems), ", ") + ")"
}

// NumElements returns the number of elements in the tuple.
func (t *tupleType) NumElements() int {
	return len(t.elems)
}

// ElementType returns the type of the i-th element.
func (t *tupleType) ElementType(i int) ir.Type {
	return t.elems[i]
}

type arrayType struct {
	elem ir.Type
}

var _ ir.Type = (*arrayType)(nil)

// ArrayOf returns an array type identity with the given element type.
func ArrayOf(elem ir.Type) ir.Type {
	return &arrayType{elem: elem}
}

// String representation of the type.
func (t *arrayType) String() string {
	return fmt.Sprintf("[]%s", t.elem.String())
}

type funcDecl struct {
	name string
}

var _ ir.Func = (*funcDecl)(nil)

// FuncDecl returns a function identity with the given name.
func FuncDecl(name string) ir.Func {
	return &funcDecl{name: name}
}

// Name of the function.
func (f *funcDecl) Name() string {
	return f.name
}

type enumCase struct {
	name string
}

var _ ir.EnumCase = (*enumCase)(nil)

// Case returns an enum case declaration identity with the given name.
func Case(name string) ir.EnumCase {
	return &enumCase{name: name}
}

// Name of the case.
func (c *enumCase) Name() string {
	return c.name
}
