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

// Package ir declares the identities a constant evaluator borrows from the
// surrounding compiler.
//
// The symbolic value model references program nodes, types, functions, and
// enum case declarations without ever owning or interpreting them. Each
// identity is therefore an interface exposing only what the value model
// needs: a position for diagnostics, a name or a string for printing, and,
// for aggregate types, the element structure required to materialize
// storage for writes into uninitialized memory.
package ir

import "go/token"

type (
	// Node identifies one instruction or expression of the program
	// representation being evaluated. Every go/ast node satisfies it.
	Node interface {
		Pos() token.Pos
	}

	// Type is a type identity owned by the compiler's type system.
	Type interface {
		// String representation of the type.
		String() string
	}

	// AggregateType is a type identity with a fixed number of positional
	// elements. The value model requires it only where an indexed write
	// descends through uninitialized memory and storage of the right
	// arity has to be materialized.
	AggregateType interface {
		Type

		// NumElements returns the number of positional elements.
		NumElements() int

		// ElementType returns the type of the i-th element.
		ElementType(i int) Type
	}

	// Func is a function identity owned by the compiler.
	Func interface {
		// Name of the function.
		Name() string
	}

	// EnumCase is the declaration identity of one enum case.
	EnumCase interface {
		// Name of the case.
		Name() string
	}
)
