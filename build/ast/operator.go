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

package ast

import (
	"slices"

	"golang.org/x/exp/maps"
)

// Operator is a unary, binary or polarity operator token.
type Operator uint

// Operators.
const (
	OpNone Operator = iota
	OpPlus
	OpMinus
	OpStar
	OpDiv
	OpMod
	OpPow
	OpGT
	OpLT
	OpGE
	OpLE
	OpLogicalEq
	OpLogicalNeq
	OpCaseEq
	OpCaseNeq
	OpLogicalAnd
	OpLogicalOr
	OpLogicalNot
	OpBitwiseAnd
	OpBitwiseOr
	OpBitwiseXor
	OpBitwiseNot
	OpNand
	OpNor
	OpXnor
	OpShiftLeft
	OpShiftRight
	OpArithShiftLeft
	OpArithShiftRight
)

var opNames = map[Operator]string{
	OpPlus:            "+",
	OpMinus:           "-",
	OpStar:            "*",
	OpDiv:             "/",
	OpMod:             "%",
	OpPow:             "**",
	OpGT:              ">",
	OpLT:              "<",
	OpGE:              ">=",
	OpLE:              "<=",
	OpLogicalEq:       "==",
	OpLogicalNeq:      "!=",
	OpCaseEq:          "===",
	OpCaseNeq:         "!==",
	OpLogicalAnd:      "&&",
	OpLogicalOr:       "||",
	OpLogicalNot:      "!",
	OpBitwiseAnd:      "&",
	OpBitwiseOr:       "|",
	OpBitwiseXor:      "^",
	OpBitwiseNot:      "~",
	OpNand:            "~&",
	OpNor:             "~|",
	OpXnor:            "~^",
	OpShiftLeft:       "<<",
	OpShiftRight:      ">>",
	OpArithShiftLeft:  "<<<",
	OpArithShiftRight: ">>>",
}

var opFromName = func() map[string]Operator {
	m := make(map[string]Operator, len(opNames))
	for op, s := range opNames {
		m[s] = op
	}
	return m
}()

// String returns the operator as written in source.
func (op Operator) String() string {
	s, ok := opNames[op]
	if !ok {
		return "none"
	}
	return s
}

// OperatorFromString returns the operator for a source token,
// or OpNone if the token is not an operator.
func OperatorFromString(s string) Operator {
	return opFromName[s]
}

// Operators returns every operator token, in ascending token order.
func Operators() []Operator {
	ops := maps.Keys(opNames)
	slices.Sort(ops)
	return ops
}
