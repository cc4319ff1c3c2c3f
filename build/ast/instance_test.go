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

func TestPortConnections(t *testing.T) {
	b := ast.NewBuilder()
	defer b.Close()

	named, err := b.NamedPortConnection(b.Identifier("clk"), identExpr(t, b, "sys_clk"))
	if err != nil {
		t.Fatalf("cannot build named connection: %v", err)
	}
	if named.Name == nil {
		t.Errorf("named connection has no name")
	}
	unconnected, err := b.NamedPortConnection(b.Identifier("unused"), nil)
	if err != nil {
		t.Fatalf("cannot build unconnected port: %v", err)
	}
	if unconnected.Value != nil {
		t.Errorf("unconnected port has a value")
	}
	positional, err := b.OrderedPortConnection(identExpr(t, b, "rst"))
	if err != nil {
		t.Fatalf("cannot build ordered connection: %v", err)
	}
	if positional.Name != nil {
		t.Errorf("ordered connection has a name")
	}
	if _, err := b.NamedPortConnection(nil, nil); !errors.Is(err, ast.ErrContract) {
		t.Errorf("nil name: error is %v", err)
	}
	if _, err := b.OrderedPortConnection(nil); !errors.Is(err, ast.ErrContract) {
		t.Errorf("nil value: error is %v", err)
	}
}

func TestModuleInstantiation(t *testing.T) {
	b := ast.NewBuilder()
	defer b.Close()

	conn, err := b.OrderedPortConnection(identExpr(t, b, "a"))
	if err != nil {
		t.Fatalf("cannot build connection: %v", err)
	}
	conns := ordered.NewList[*ast.PortConnection]()
	conns.Append(conn)
	inst, err := b.ModuleInstance(b.Identifier("u0"), conns)
	if err != nil {
		t.Fatalf("cannot build instance: %v", err)
	}
	instances := ordered.NewList[*ast.ModuleInstance]()
	instances.Append(inst)

	mi, err := b.ModuleInstantiation(b.Identifier("adder"), nil, instances)
	if err != nil {
		t.Fatalf("cannot build instantiation: %v", err)
	}
	if mi.Parameters == nil || mi.Parameters.Len() != 0 {
		t.Errorf("nil parameter list did not become an empty list")
	}
	if _, err := b.ModuleInstantiation(b.Identifier("adder"), nil, nil); !errors.Is(err, ast.ErrContract) {
		t.Errorf("no instances: error is %v", err)
	}
	if _, err := b.ModuleInstance(nil, nil); !errors.Is(err, ast.ErrContract) {
		t.Errorf("nil instance identifier: error is %v", err)
	}
}

func TestModuleDeclaration(t *testing.T) {
	b := ast.NewBuilder()
	defer b.Close()

	names := ordered.NewList[*ast.Identifier]()
	names.Append(b.Identifier("clk"))
	pd, err := b.PortDeclaration(ast.PortInput, ast.NetTypeWire, false, false, false, nil, names)
	if err != nil {
		t.Fatalf("cannot build port declaration: %v", err)
	}
	ports := ordered.NewList[*ast.PortDeclaration]()
	ports.Append(pd)

	constructs := ordered.NewList[*ast.Statement]()
	constructs.Append(blockingStmt(t, b, "q", "d"))

	m, err := b.ModuleDeclaration(nil, b.Identifier("counter"), nil, ports, constructs)
	if err != nil {
		t.Fatalf("cannot build module: %v", err)
	}
	if m.Parameters == nil || m.Parameters.Len() != 0 {
		t.Errorf("nil parameter list did not become an empty list")
	}
	if m.Ports.Len() != 1 || m.Constructs.Len() != 1 {
		t.Errorf("module lost ports or constructs")
	}
	if _, err := b.ModuleDeclaration(nil, nil, nil, nil, nil); !errors.Is(err, ast.ErrContract) {
		t.Errorf("nil identifier: error is %v", err)
	}
}
