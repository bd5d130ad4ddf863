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
	"math"

	"github.com/gx-org/constexpr/arena"
	"github.com/gx-org/constexpr/ir"
)

// ReasonKind classifies why a value could not be folded to a constant.
type ReasonKind uint

const (
	// ReasonDefault is a failure with no more specific cause.
	ReasonDefault ReasonKind = iota

	// ReasonTooManyInstructions is an evaluation that exceeded the
	// instruction budget.
	ReasonTooManyInstructions

	// ReasonLoop is a control flow loop found during evaluation.
	ReasonLoop

	// ReasonOverflow is an integer overflow detected during evaluation.
	ReasonOverflow

	// ReasonTrap is an evaluation that reached a trap. The reason carries
	// the trap message.
	ReasonTrap

	// ReasonInvalidOperandValue is an operation applied to an operand it
	// does not support.
	ReasonInvalidOperandValue

	// ReasonUnsupportedInstruction is an instruction the evaluator does
	// not model.
	ReasonUnsupportedInstruction

	// ReasonCalleeImplementationUnknown is a call to a function whose body
	// is not available. The reason carries the callee.
	ReasonCalleeImplementationUnknown

	// ReasonUntrackedValue is an access to a value the evaluator does not
	// track.
	ReasonUntrackedValue

	// ReasonUnknownWitnessMethodConformance is a witness method call whose
	// concrete conformance could not be resolved.
	ReasonUnknownWitnessMethodConformance

	// ReasonNoWitnessTableEntry is a witness method call whose entry is
	// missing from the resolved table.
	ReasonNoWitnessTableEntry

	// ReasonNotTopLevelConstant is a top-level value that is not a
	// constant.
	ReasonNotTopLevelConstant

	// ReasonMultipleTopLevelWriters is a top-level value initialized by
	// more than one writer.
	ReasonMultipleTopLevelWriters

	// ReasonReturnedByUnevaluatedInstruction is a value produced by an
	// instruction that was skipped.
	ReasonReturnedByUnevaluatedInstruction

	// ReasonMutatedByUnevaluatedInstruction is a value possibly written by
	// an instruction that was skipped.
	ReasonMutatedByUnevaluatedInstruction
)

// String returns a string representation of a reason kind.
func (k ReasonKind) String() string {
	switch k {
	case ReasonDefault:
		return "default"
	case ReasonTooManyInstructions:
		return "too many instructions"
	case ReasonLoop:
		return "loop"
	case ReasonOverflow:
		return "overflow"
	case ReasonTrap:
		return "trap"
	case ReasonInvalidOperandValue:
		return "invalid operand value"
	case ReasonUnsupportedInstruction:
		return "unsupported instruction"
	case ReasonCalleeImplementationUnknown:
		return "callee implementation unknown"
	case ReasonUntrackedValue:
		return "untracked value"
	case ReasonUnknownWitnessMethodConformance:
		return "unknown witness method conformance"
	case ReasonNoWitnessTableEntry:
		return "no witness table entry"
	case ReasonNotTopLevelConstant:
		return "not a top-level constant"
	case ReasonMultipleTopLevelWriters:
		return "multiple top-level writers"
	case ReasonReturnedByUnevaluatedInstruction:
		return "returned by unevaluated instruction"
	case ReasonMutatedByUnevaluatedInstruction:
		return "mutated by unevaluated instruction"
	}
	return fmt.Sprintf("invalid reason kind %d", uint(k))
}

// HasPayload returns true if reasons of this kind carry extra data beyond
// the kind itself.
func (k ReasonKind) HasPayload() bool {
	return k == ReasonTrap || k == ReasonCalleeImplementationUnknown
}

// UnknownReason describes why a value could not be folded to a constant.
// Reasons are small and copied freely; a trap message lives in the
// allocator of the session that produced it.
type UnknownReason struct {
	kind   ReasonKind
	callee ir.Func
	msg    arena.Ref
	msgLen uint32
}

// NewReason returns a reason without payload.
func NewReason(kind ReasonKind) UnknownReason {
	if kind.HasPayload() {
		panic(fmt.Sprintf("symval: reason %s requires a payload", kind))
	}
	return UnknownReason{kind: kind}
}

// NewCalleeUnknownReason returns a reason reporting a call to a function
// whose body is not available.
func NewCalleeUnknownReason(callee ir.Func) UnknownReason {
	if callee == nil {
		panic("symval: callee reason requires a function")
	}
	return UnknownReason{kind: ReasonCalleeImplementationUnknown, callee: callee}
}

// NewTrapReason returns a reason reporting a trap with its message. The
// message is copied into the allocator.
func NewTrapReason(message string, a arena.Allocator) UnknownReason {
	if uint64(len(message)) > math.MaxUint32 {
		panic("symval: trap message too large")
	}
	bytes := make([]byte, len(message))
	copy(bytes, message)
	return UnknownReason{kind: ReasonTrap, msg: a.Alloc(bytes), msgLen: uint32(len(message))}
}

// Kind returns the classification of the reason.
func (r UnknownReason) Kind() ReasonKind {
	return r.kind
}

// Callee returns the function whose body was not available.
func (r UnknownReason) Callee() ir.Func {
	if r.kind != ReasonCalleeImplementationUnknown {
		panic(fmt.Sprintf("symval: reason %s has no callee", r.kind))
	}
	return r.callee
}

// TrapMessage returns the message of a trap reason.
func (r UnknownReason) TrapMessage(a arena.Allocator) string {
	if r.kind != ReasonTrap {
		panic(fmt.Sprintf("symval: reason %s has no trap message", r.kind))
	}
	bytes := a.Resolve(r.msg).([]byte)
	return string(bytes[:r.msgLen])
}

// unknownInfo is the payload slot of an Unknown value: the node that could
// not be folded, why, and the call stack leading to it.
type unknownInfo struct {
	node   ir.Node
	reason UnknownReason
	stack  []token.Pos
}

// NewUnknown returns a value recording that node could not be folded for
// the given reason. callStack holds the positions of the calls leading to
// node, outermost first; it is copied into the allocator.
func NewUnknown(node ir.Node, reason UnknownReason, callStack []token.Pos, a arena.Allocator) Value {
	if node == nil {
		panic("symval: unknown value requires a node")
	}
	if uint64(len(callStack)) > math.MaxUint32 {
		panic("symval: call stack too deep")
	}
	stack := make([]token.Pos, len(callStack))
	copy(stack, callStack)
	ref := a.Alloc(unknownInfo{node: node, reason: reason, stack: stack})
	return newValue(rkUnknown, uint32(len(stack)), uint64(ref))
}

func (v Value) unknownSlot(a arena.Allocator) unknownInfo {
	v.checkKind(Unknown)
	return a.Resolve(v.ref()).(unknownInfo)
}

// IsUnknown returns true if the value records a failure to fold.
func (v Value) IsUnknown() bool {
	return v.rep() == rkUnknown
}

// UnknownNode returns the node that could not be folded.
func (v Value) UnknownNode(a arena.Allocator) ir.Node {
	return v.unknownSlot(a).node
}

// UnknownReason returns why the value could not be folded.
func (v Value) UnknownReason(a arena.Allocator) UnknownReason {
	return v.unknownSlot(a).reason
}

// UnknownCallStack returns the positions of the calls leading to the node
// that could not be folded, outermost first. The slice is owned by the
// allocator and must not be mutated by the caller.
func (v Value) UnknownCallStack(a arena.Allocator) []token.Pos {
	return v.unknownSlot(a).stack
}

// IsUnknownDueToUnevaluatedInstructions returns true if the value is
// unknown because instructions were skipped, rather than because of an
// error in the evaluated code itself.
func (v Value) IsUnknownDueToUnevaluatedInstructions(a arena.Allocator) bool {
	if !v.IsUnknown() {
		return false
	}
	switch v.unknownSlot(a).reason.kind {
	case ReasonReturnedByUnevaluatedInstruction, ReasonMutatedByUnevaluatedInstruction:
		return true
	}
	return false
}
