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

	"github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"
	"github.com/vast-org/vast/base/ordered"
	"github.com/vast-org/vast/build/ast"
)

// blockingStmt wraps lv = expr into statement position.
func blockingStmt(t *testing.T, b *ast.Builder, target, source string) *ast.Statement {
	t.Helper()
	lv, err := b.LvalueID(ast.LvalueVarIdentifier, b.Identifier(target))
	if err != nil {
		t.Fatalf("cannot build lvalue: %v", err)
	}
	a, err := b.BlockingAssignment(lv, identExpr(t, b, source), nil)
	if err != nil {
		t.Fatalf("cannot build assignment: %v", err)
	}
	s, err := b.Statement(ast.StmtAssignment, nil, false, a)
	if err != nil {
		t.Fatalf("cannot build statement: %v", err)
	}
	return s
}

func TestStatementTagCheck(t *testing.T) {
	b := ast.NewBuilder()
	defer b.Close()

	lv, err := b.LvalueID(ast.LvalueVarIdentifier, b.Identifier("q"))
	if err != nil {
		t.Fatalf("cannot build lvalue: %v", err)
	}
	a, err := b.BlockingAssignment(lv, identExpr(t, b, "d"), nil)
	if err != nil {
		t.Fatalf("cannot build assignment: %v", err)
	}
	if _, err := b.Statement(ast.StmtWait, nil, false, a); !errors.Is(err, ast.ErrContract) {
		t.Errorf("assignment under wait tag: error is %v", err)
	}
	if _, err := b.Statement(ast.StmtAssignment, nil, false, nil); !errors.Is(err, ast.ErrContract) {
		t.Errorf("nil payload: error is %v", err)
	}
	s, err := b.Statement(ast.StmtAssignment, nil, true, a)
	if err != nil {
		t.Fatalf("cannot build statement: %v", err)
	}
	if !s.InFunction || s.InGenerate {
		t.Errorf("statement context flags are function=%v generate=%v", s.InFunction, s.InGenerate)
	}
}

func TestGenerateItem(t *testing.T) {
	b := ast.NewBuilder()
	defer b.Close()

	s := blockingStmt(t, b, "q", "d")
	items := ordered.NewList[*ast.Statement]()
	items.Append(s)
	gb, err := b.GenerateBlock(b.Identifier("gen"), items)
	if err != nil {
		t.Fatalf("cannot build generate block: %v", err)
	}
	gi, err := b.GenerateItem(ast.StmtGenerateBlock, gb)
	if err != nil {
		t.Fatalf("cannot build generate item: %v", err)
	}
	if !gi.InGenerate {
		t.Errorf("generate item is not flagged as inside a generate construct")
	}
}

func TestHybridAssignmentForms(t *testing.T) {
	b := ast.NewBuilder()
	defer b.Close()

	lv, err := b.LvalueID(ast.LvalueVarIdentifier, b.Identifier("i"))
	if err != nil {
		t.Fatalf("cannot build lvalue: %v", err)
	}
	single, err := b.SingleAssignment(lv, constExpr(t, b, "1"))
	if err != nil {
		t.Fatalf("cannot build single assignment: %v", err)
	}

	compound, err := b.HybridAssignment(ast.HybridAdd, single)
	if err != nil {
		t.Fatalf("cannot build compound assignment: %v", err)
	}
	if compound.Single == nil || compound.LValue != nil {
		t.Errorf("compound assignment fills lvalue instead of assignment")
	}

	inc, err := b.HybridLvalueAssignment(ast.HybridIncrement, lv)
	if err != nil {
		t.Fatalf("cannot build increment: %v", err)
	}
	if inc.LValue == nil || inc.Single != nil {
		t.Errorf("increment fills assignment instead of lvalue")
	}

	if _, err := b.HybridAssignment(ast.HybridIncrement, single); !errors.Is(err, ast.ErrContract) {
		t.Errorf("increment with source expression: error is %v", err)
	}
	if _, err := b.HybridLvalueAssignment(ast.HybridAdd, lv); !errors.Is(err, ast.ErrContract) {
		t.Errorf("compound operator without source: error is %v", err)
	}
}

func TestContinuousAssignment(t *testing.T) {
	b := ast.NewBuilder()
	defer b.Close()

	lv, err := b.LvalueID(ast.LvalueNetIdentifier, b.Identifier("out"))
	if err != nil {
		t.Fatalf("cannot build lvalue: %v", err)
	}
	single, err := b.SingleAssignment(lv, identExpr(t, b, "in"))
	if err != nil {
		t.Fatalf("cannot build single assignment: %v", err)
	}
	assigns := ordered.NewList[*ast.SingleAssignment]()
	assigns.Append(single)
	ca, err := b.ContinuousAssignment(assigns, b.DriveStrength(ast.StrengthStrong0, ast.StrengthStrong1), nil)
	if err != nil {
		t.Fatalf("cannot build continuous assignment: %v", err)
	}
	if ca.Kind != ast.AssignContinuous {
		t.Errorf("assignment kind is %s", ca.Kind)
	}
	if _, err := b.ContinuousAssignment(nil, nil, nil); !errors.Is(err, ast.ErrContract) {
		t.Errorf("empty assignment list: error is %v", err)
	}
}

func TestLoopForms(t *testing.T) {
	b := ast.NewBuilder()
	defer b.Close()

	body := blockingStmt(t, b, "q", "d")
	lv, err := b.LvalueID(ast.LvalueVarIdentifier, b.Identifier("i"))
	if err != nil {
		t.Fatalf("cannot build lvalue: %v", err)
	}
	initial, err := b.SingleAssignment(lv, constExpr(t, b, "0"))
	if err != nil {
		t.Fatalf("cannot build initial assignment: %v", err)
	}
	modify, err := b.SingleAssignment(lv, identExpr(t, b, "i"))
	if err != nil {
		t.Fatalf("cannot build modify assignment: %v", err)
	}
	cond := identExpr(t, b, "run")

	forever, err := b.ForeverLoop(body)
	if err != nil {
		t.Fatalf("cannot build forever loop: %v", err)
	}
	if forever.Initial != nil || forever.Condition != nil || forever.Modify != nil {
		t.Errorf("forever loop carries clauses")
	}

	forLoop, err := b.ForLoop(initial, cond, modify, body)
	if err != nil {
		t.Fatalf("cannot build for loop: %v", err)
	}
	if forLoop.Initial != initial || forLoop.Modify != modify {
		t.Errorf("for loop lost its clauses")
	}

	if _, err := b.ForLoop(initial, cond, nil, body); !errors.Is(err, ast.ErrContract) {
		t.Errorf("for loop without modify clause: error is %v", err)
	}
	if _, err := b.WhileLoop(nil, body); !errors.Is(err, ast.ErrContract) {
		t.Errorf("while loop without condition: error is %v", err)
	}
	if _, err := b.RepeatLoop(cond, nil); !errors.Is(err, ast.ErrContract) {
		t.Errorf("repeat loop without body: error is %v", err)
	}
}

func TestCaseDefaultFirstWins(t *testing.T) {
	b := ast.NewBuilder()
	defer b.Close()

	conds := ordered.NewList[*ast.Expression]()
	conds.Append(constExpr(t, b, "0"))
	armed := b.CaseItem(conds, blockingStmt(t, b, "q", "a"))
	default1 := b.CaseItem(nil, blockingStmt(t, b, "q", "b"))
	default2 := b.CaseItem(ordered.NewList[*ast.Expression](), blockingStmt(t, b, "q", "c"))

	if armed.IsDefault {
		t.Errorf("armed item is flagged default")
	}
	if !default1.IsDefault || !default2.IsDefault {
		t.Errorf("empty-condition items are not flagged default")
	}

	items := ordered.NewList[*ast.CaseItem]()
	items.Append(armed)
	items.Append(default1)
	items.Append(default2)
	cs, err := b.CaseStatement(ast.CaseZ, identExpr(t, b, "sel"), items)
	if err != nil {
		t.Fatalf("cannot build case statement: %v", err)
	}
	if cs.DefaultItem != default1 {
		t.Errorf("default item is not the first default arm")
	}

	noDefault := ordered.NewList[*ast.CaseItem]()
	noDefault.Append(armed)
	cs2, err := b.CaseStatement(ast.CasePlain, identExpr(t, b, "sel"), noDefault)
	if err != nil {
		t.Fatalf("cannot build case statement: %v", err)
	}
	if cs2.DefaultItem != nil {
		t.Errorf("case without default arm reports one")
	}
}

func TestIfElseExtendOrder(t *testing.T) {
	b := ast.NewBuilder()
	defer b.Close()

	arm := func(name string) *ast.ConditionalStatement {
		cs, err := b.ConditionalStatement(identExpr(t, b, name), blockingStmt(t, b, "q", name))
		if err != nil {
			t.Fatalf("cannot build conditional %s: %v", name, err)
		}
		return cs
	}
	c1, c2, c3 := arm("c1"), arm("c2"), arm("c3")

	ie, err := b.IfElse(c1, blockingStmt(t, b, "q", "e"))
	if err != nil {
		t.Fatalf("cannot build if else: %v", err)
	}
	more := ordered.NewList[*ast.ConditionalStatement]()
	more.Append(c2)
	more.Append(c3)
	ie.Extend(more)

	var got []string
	for cs := range ie.Conditionals.Iter() {
		got = append(got, cs.Condition.Primary.Value.(*ast.Identifier).Name)
	}
	if want := []string{"c1", "c2", "c3"}; !cmp.Equal(got, want) {
		t.Errorf("arm order is %v but want %v", got, want)
	}
	ie.Extend(nil) // no-op
	if ie.Conditionals.Len() != 3 {
		t.Errorf("extending with nil changed the chain")
	}
}

func TestStatementBlockDefaults(t *testing.T) {
	b := ast.NewBuilder()
	defer b.Close()

	sb := b.StatementBlock(ast.BlockParallel, nil, nil, nil)
	if sb.Declarations == nil || sb.Statements == nil {
		t.Errorf("nil lists did not become empty lists")
	}
	if sb.Kind != ast.BlockParallel {
		t.Errorf("block kind is %s", sb.Kind)
	}
}

func TestTaskControlContracts(t *testing.T) {
	b := ast.NewBuilder()
	defer b.Close()

	if _, err := b.WaitStatement(nil, nil); !errors.Is(err, ast.ErrContract) {
		t.Errorf("wait without condition: error is %v", err)
	}
	if _, err := b.DisableStatement(nil); !errors.Is(err, ast.ErrContract) {
		t.Errorf("disable without identifier: error is %v", err)
	}
	te, err := b.TaskEnableStatement(b.Identifier("$display"), true, nil)
	if err != nil {
		t.Fatalf("cannot build task enable: %v", err)
	}
	if !te.System || te.Arguments.Len() != 0 {
		t.Errorf("task enable is system=%v with %d arguments", te.System, te.Arguments.Len())
	}
}
