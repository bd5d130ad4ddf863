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
	"go/token"

	"go.uber.org/multierr"

	"github.com/gx-org/constexpr/arena"
	"github.com/gx-org/constexpr/fmterr"
)

// UnknownError returns an error explaining why a value could not be folded
// to a constant, positioned at the node that failed, with one note per
// frame of the call stack leading to it, innermost call first. The
// fallback position is used when the node has no valid position. Returns
// nil if the value is not unknown.
func UnknownError(fset *token.FileSet, a arena.Allocator, v Value, fallback token.Pos) error {
	if !v.IsUnknown() {
		return nil
	}
	info := v.unknownSlot(a)
	pos := info.node.Pos()
	if !pos.IsValid() {
		pos = fallback
	}
	errs := fmterr.FileSet{FSet: fset}
	err := errs.Errorf(pos, "%s", reasonMessage(a, info.reason))
	for i := len(info.stack) - 1; i >= 0; i-- {
		err = multierr.Append(err, errs.Errorf(info.stack[i], "when called from here"))
	}
	return err
}

func reasonMessage(a arena.Allocator, r UnknownReason) string {
	switch r.kind {
	case ReasonTooManyInstructions:
		return "evaluation exceeded the instruction budget"
	case ReasonLoop:
		return "evaluation found a control flow loop"
	case ReasonOverflow:
		return "integer overflow detected"
	case ReasonTrap:
		return fmt.Sprintf("evaluation reached a trap: %s", r.TrapMessage(a))
	case ReasonInvalidOperandValue:
		return "operation applied to an operand it does not support"
	case ReasonUnsupportedInstruction:
		return "encountered an instruction that cannot be evaluated"
	case ReasonCalleeImplementationUnknown:
		return fmt.Sprintf("the body of %s is not available", r.callee.Name())
	case ReasonUntrackedValue:
		return "accessed a value that is not tracked by the evaluator"
	case ReasonUnknownWitnessMethodConformance:
		return "could not resolve a concrete conformance for a witness method"
	case ReasonNoWitnessTableEntry:
		return "no witness table entry for the method"
	case ReasonNotTopLevelConstant:
		return "value is not a constant"
	case ReasonMultipleTopLevelWriters:
		return "value is initialized by multiple writers"
	case ReasonReturnedByUnevaluatedInstruction:
		return "value returned by an instruction that was not evaluated"
	case ReasonMutatedByUnevaluatedInstruction:
		return "value mutated by an instruction that was not evaluated"
	}
	return "not a constant"
}
