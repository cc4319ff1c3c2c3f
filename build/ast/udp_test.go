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

	"github.com/pkg/errors"
	"github.com/vast-org/vast/base/ordered"
	"github.com/vast-org/vast/build/ast"
)

func TestUDPPortDirections(t *testing.T) {
	b := ast.NewBuilder()
	defer b.Close()

	out, err := b.UDPPort(ast.PortOutput, b.Identifier("q"), nil, true, nil)
	if err != nil {
		t.Fatalf("cannot build output port: %v", err)
	}
	if !out.Reg {
		t.Errorf("output port dropped reg flag")
	}
	// Input ports have their own constructor.
	if _, err := b.UDPPort(ast.PortInput, b.Identifier("d"), nil, false, nil); !errors.Is(err, ast.ErrContract) {
		t.Errorf("input direction: error is %v", err)
	}
	if _, err := b.UDPPort(ast.PortOutput, nil, nil, false, nil); !errors.Is(err, ast.ErrContract) {
		t.Errorf("nil identifier: error is %v", err)
	}

	ids := ordered.NewList[*ast.Identifier]()
	ids.Append(b.Identifier("d"))
	ids.Append(b.Identifier("clk"))
	in, err := b.UDPInputPort(ids, nil)
	if err != nil {
		t.Fatalf("cannot build input port: %v", err)
	}
	if in.Direction != ast.PortInput || in.Reg || in.Default != nil {
		t.Errorf("input port carries output modifiers")
	}
	if _, err := b.UDPInputPort(nil, nil); !errors.Is(err, ast.ErrContract) {
		t.Errorf("no identifiers: error is %v", err)
	}
}

func TestUDPSequentialEntry(t *testing.T) {
	b := ast.NewBuilder()
	defer b.Close()

	edge, err := b.UDPEdge(ast.Level0, ast.Level1)
	if err != nil {
		t.Fatalf("cannot build edge: %v", err)
	}
	levels := ordered.NewList[ast.UDPTableSymbol]()
	levels.Append(ast.Level1)
	levels.Append(ast.LevelAny)

	entry, err := b.UDPSequentialEntry(ast.PrefixLevels, levels, ast.Level0, ast.NextState1)
	if err != nil {
		t.Fatalf("cannot build level entry: %v", err)
	}
	if entry.Levels == nil || entry.Edges != nil {
		t.Errorf("level entry fills edges")
	}

	edges := ordered.NewList[ast.UDPTableSymbol]()
	edges.Append(edge)
	edges.Append(ast.LevelAny)
	entry, err = b.UDPSequentialEntry(ast.PrefixEdges, edges, ast.LevelB, ast.NextStateNoChange)
	if err != nil {
		t.Fatalf("cannot build edge entry: %v", err)
	}
	if entry.Edges == nil || entry.Levels != nil {
		t.Errorf("edge entry fills levels")
	}

	mixed := ordered.NewList[ast.UDPTableSymbol]()
	mixed.Append(ast.Level0)
	mixed.Append(edge)
	if _, err := b.UDPSequentialEntry(ast.PrefixLevels, mixed, ast.Level0, ast.NextStateX); !errors.Is(err, ast.ErrContract) {
		t.Errorf("edge in level row: error is %v", err)
	}
	if _, err := b.UDPSequentialEntry(ast.PrefixEdges, nil, ast.Level0, ast.NextStateX); !errors.Is(err, ast.ErrContract) {
		t.Errorf("empty row: error is %v", err)
	}
}

func TestUDPDeclaration(t *testing.T) {
	b := ast.NewBuilder()
	defer b.Close()

	levels := ordered.NewList[ast.LevelSymbol]()
	levels.Append(ast.Level0)
	levels.Append(ast.Level1)
	entry, err := b.UDPCombinatorialEntry(levels, ast.NextState1)
	if err != nil {
		t.Fatalf("cannot build entry: %v", err)
	}
	entries := ordered.NewList[*ast.UDPCombinatorialEntry]()
	entries.Append(entry)
	body, err := b.UDPCombinatorialBody(entries)
	if err != nil {
		t.Fatalf("cannot build body: %v", err)
	}
	if body.Kind != ast.UDPBodyCombinatorial || body.Initial != nil {
		t.Errorf("combinatorial body is malformed")
	}

	ports := ordered.NewList[*ast.UDPPort]()
	out, err := b.UDPPort(ast.PortOutput, b.Identifier("q"), nil, false, nil)
	if err != nil {
		t.Fatalf("cannot build port: %v", err)
	}
	ports.Append(out)
	decl, err := b.UDPDeclaration(nil, b.Identifier("mux"), ports, body)
	if err != nil {
		t.Fatalf("cannot build declaration: %v", err)
	}
	if decl.Body != body {
		t.Errorf("declaration does not keep its body")
	}
	if _, err := b.UDPDeclaration(nil, b.Identifier("bad"), ports, nil); !errors.Is(err, ast.ErrContract) {
		t.Errorf("nil body: error is %v", err)
	}
}

func TestUDPSequentialBody(t *testing.T) {
	b := ast.NewBuilder()
	defer b.Close()

	n, err := b.Number(ast.BaseBinary, "0")
	if err != nil {
		t.Fatalf("cannot build number: %v", err)
	}
	initial, err := b.UDPInitialStatement(b.Identifier("q"), n)
	if err != nil {
		t.Fatalf("cannot build initial statement: %v", err)
	}
	levels := ordered.NewList[ast.UDPTableSymbol]()
	levels.Append(ast.Level1)
	entry, err := b.UDPSequentialEntry(ast.PrefixLevels, levels, ast.Level0, ast.NextState1)
	if err != nil {
		t.Fatalf("cannot build entry: %v", err)
	}
	entries := ordered.NewList[*ast.UDPSequentialEntry]()
	entries.Append(entry)
	body, err := b.UDPSequentialBody(initial, entries)
	if err != nil {
		t.Fatalf("cannot build body: %v", err)
	}
	if body.Kind != ast.UDPBodySequential || body.Initial != initial {
		t.Errorf("sequential body is malformed")
	}
	if _, err := b.UDPInitialStatement(nil, n); !errors.Is(err, ast.ErrContract) {
		t.Errorf("nil output: error is %v", err)
	}
}

func TestUDPInstantiation(t *testing.T) {
	b := ast.NewBuilder()
	defer b.Close()

	out, err := b.LvalueID(ast.LvalueNetIdentifier, b.Identifier("y"))
	if err != nil {
		t.Fatalf("cannot build lvalue: %v", err)
	}
	inputs := ordered.NewList[*ast.Expression]()
	inputs.Append(identExpr(t, b, "a"))
	inst, err := b.UDPInstance(nil, nil, out, inputs)
	if err != nil {
		t.Fatalf("cannot build instance: %v", err)
	}
	instances := ordered.NewList[*ast.UDPInstance]()
	instances.Append(inst)
	ui, err := b.UDPInstantiation(b.Identifier("mux"), nil, nil, instances)
	if err != nil {
		t.Fatalf("cannot build instantiation: %v", err)
	}
	if ui.Instances.Len() != 1 {
		t.Errorf("instantiation has %d instances", ui.Instances.Len())
	}
	if _, err := b.UDPInstantiation(nil, nil, nil, instances); !errors.Is(err, ast.ErrContract) {
		t.Errorf("nil primitive: error is %v", err)
	}
	if _, err := b.UDPInstance(nil, nil, nil, inputs); !errors.Is(err, ast.ErrContract) {
		t.Errorf("nil output: error is %v", err)
	}
}
