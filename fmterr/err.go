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

// Package fmterr formats errors attached to a position in the evaluated
// source code.
package fmterr

import (
	"fmt"
	"go/token"
	"io"

	"github.com/pkg/errors"
)

type (
	// ErrorWithPos is an error attached to a source position.
	ErrorWithPos interface {
		error
		FSet() *token.FileSet
		Pos() token.Pos
		Err() error
	}

	errorWithPos struct {
		fset *token.FileSet
		pos  token.Pos
		err  error
	}
)

// Position adds source position information to an error.
func Position(fset *token.FileSet, pos token.Pos, err error) ErrorWithPos {
	return errorWithPos{fset: fset, pos: pos, err: err}
}

// Errorf returns a formatted error attached to a source position.
func Errorf(fset *token.FileSet, pos token.Pos, format string, a ...any) error {
	return Position(fset, pos, errors.Errorf(format, a...))
}

// Internal marks an error as internal, potentially adding additional information.
func Internal(err error) error {
	return fmt.Errorf("constexpr internal error. This is a bug. Please report it. Error:\n%+v", err)
}

// Internalf returns a formatted internal error attached to a source position.
func Internalf(fset *token.FileSet, pos token.Pos, format string, a ...any) error {
	return Internal(Errorf(fset, pos, format, a...))
}

// Error returns a string description of the error.
func (err errorWithPos) Error() string {
	if err.fset == nil || !err.pos.IsValid() {
		return err.err.Error()
	}
	return PosString(err.fset, err.pos) + " " + err.err.Error()
}

// Unwrap the error.
func (err errorWithPos) Unwrap() error {
	return err.err
}

// Format writes the error into the state of the formatter.
func (err errorWithPos) Format(s fmt.State, verb rune) {
	format(err, s, verb)
}

func (err errorWithPos) FSet() *token.FileSet {
	return err.fset
}

func (err errorWithPos) Pos() token.Pos {
	return err.pos
}

func (err errorWithPos) Err() error {
	return err.err
}

// PosString returns a position as a string that can be used for an error.
func PosString(fset *token.FileSet, pos token.Pos) string {
	return fset.Position(pos).String() + ":"
}

func format(err error, s fmt.State, verb rune) {
	switch verb {
	case 'w':
		fallthrough
	case 'v':
		if s.Flag('+') {
			fmt.Fprintf(s, "%+v", err.Error())
			return
		}
		fallthrough
	case 's':
		io.WriteString(s, err.Error())
	case 'q':
		fmt.Fprintf(s, "%q", err.Error())
	}
}
