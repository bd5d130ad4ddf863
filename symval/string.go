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
	"math"

	"github.com/gx-org/constexpr/arena"
)

// NewString returns a string constant. The bytes are copied into the
// allocator with a trailing zero byte so that the payload can be handed to
// foreign code expecting terminated strings. The byte length is kept in the
// value itself, not derived from the terminator.
func NewString(s string, a arena.Allocator) Value {
	if uint64(len(s)) > math.MaxUint32 {
		panic("symval: string constant too large")
	}
	bytes := make([]byte, len(s)+1)
	copy(bytes, s)
	return newValue(rkString, uint32(len(s)), uint64(a.Alloc(bytes)))
}

// StringValue returns the contents of a string constant.
func (v Value) StringValue(a arena.Allocator) string {
	v.checkKind(String)
	bytes := a.Resolve(v.ref()).([]byte)
	return string(bytes[:v.aux()])
}
