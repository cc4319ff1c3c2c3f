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

package ast_test

import (
	"testing"

	"github.com/vast-org/vast/build/ast"
)

func TestOperatorRoundTrip(t *testing.T) {
	for _, op := range ast.Operators() {
		s := op.String()
		if s == "none" {
			t.Errorf("operator %d has no source form", op)
			continue
		}
		if got := ast.OperatorFromString(s); got != op {
			t.Errorf("%q maps to %d but want %d", s, got, op)
		}
	}
	if got := ast.OperatorFromString("not an operator"); got != ast.OpNone {
		t.Errorf("unknown token maps to %d", got)
	}
	if got, want := ast.OpArithShiftRight.String(), ">>>"; got != want {
		t.Errorf("arithmetic shift is %q but want %q", got, want)
	}
}
