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

func TestIdentifierInterning(t *testing.T) {
	b := ast.NewBuilder()
	defer b.Close()

	clk1 := b.Identifier("clk")
	rst := b.Identifier("rst")
	clk2 := b.Identifier("clk")
	if clk1 != clk2 {
		t.Errorf("same name produced distinct identifier nodes")
	}
	if clk1 == rst {
		t.Errorf("distinct names share an identifier node")
	}
	if got, want := clk1.String(), "clk"; got != want {
		t.Errorf("identifier is %q but want %q", got, want)
	}
}

func TestNumberContract(t *testing.T) {
	b := ast.NewBuilder()
	defer b.Close()

	n, err := b.Number(ast.BaseHex, "deadbeef")
	if err != nil {
		t.Fatalf("cannot build number: %v", err)
	}
	if n.Base != ast.BaseHex || n.Digits != "deadbeef" {
		t.Errorf("number is %s %q", n.Base, n.Digits)
	}
	if _, err := b.Number(ast.BaseDecimal, ""); !errors.Is(err, ast.ErrContract) {
		t.Errorf("empty digits: error is %v, want contract violation", err)
	}
}

func TestBuilderErr(t *testing.T) {
	b := ast.NewBuilder()
	defer b.Close()

	if err := b.Err(); err != nil {
		t.Fatalf("fresh builder reports error: %v", err)
	}
	b.Number(ast.BaseBinary, "")
	b.Range(nil, nil)
	err := b.Err()
	if !errors.Is(err, ast.ErrContract) {
		t.Fatalf("error is %v, want contract violation", err)
	}
}

func TestBuilderClose(t *testing.T) {
	b := ast.NewBuilder()
	b.Identifier("a")
	if _, err := b.Number(ast.BaseDecimal, "42"); err != nil {
		t.Fatalf("cannot build number: %v", err)
	}
	if b.Live() == 0 {
		t.Fatalf("no live nodes after building")
	}
	b.Close()
	if got := b.Live(); got != 0 {
		t.Errorf("%d live nodes after close", got)
	}
	if err := b.Err(); err != nil {
		t.Errorf("close kept errors: %v", err)
	}
}

func TestFailedConstructorAllocatesNothing(t *testing.T) {
	b := ast.NewBuilder()
	defer b.Close()

	expr := identExpr(t, b, "clk")
	edge, err := b.UDPEdge(ast.Level0, ast.Level1)
	if err != nil {
		t.Fatalf("cannot build udp edge: %v", err)
	}
	symbols := ordered.NewList[ast.UDPTableSymbol]()
	symbols.Append(edge)

	before := b.Live()
	if _, err := b.Number(ast.BaseDecimal, ""); err == nil {
		t.Fatalf("empty digits accepted")
	}
	if _, err := b.EventExpression(ast.EdgeNone, expr); !errors.Is(err, ast.ErrContract) {
		t.Fatalf("no trigger edge: error is %v", err)
	}
	if _, err := b.UDPSequentialEntry(ast.PrefixLevels, symbols, ast.Level0, ast.NextState1); !errors.Is(err, ast.ErrContract) {
		t.Fatalf("edge symbol in a level row: error is %v", err)
	}
	if got := b.Live(); got != before {
		t.Errorf("failed calls left %d nodes live, want %d", got, before)
	}
}
