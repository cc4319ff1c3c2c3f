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
	"github.com/vast-org/vast/base/ordered"
)

// ExprKind discriminates the expression forms.
type ExprKind uint

// Expression kinds.
const (
	ExprPrimary ExprKind = iota
	ExprUnary
	ExprBinary
	ExprRange
	ExprIndex
	ExprString
	ExprConditional
	ExprMinTypMax
)

// String returns a string representation of the kind.
func (k ExprKind) String() string {
	switch k {
	case ExprPrimary:
		return "primary"
	case ExprUnary:
		return "unary"
	case ExprBinary:
		return "binary"
	case ExprRange:
		return "range"
	case ExprIndex:
		return "index"
	case ExprString:
		return "string"
	case ExprConditional:
		return "conditional"
	case ExprMinTypMax:
		return "mintypmax"
	}
	return "invalid"
}

// Expression is any expression form. The fields used depend on Kind:
//
//	ExprPrimary      Primary
//	ExprUnary        Op, Right
//	ExprBinary       Left, Op, Right
//	ExprRange        Left (upper), Right (lower)
//	ExprIndex        Left
//	ExprString       StringLit
//	ExprConditional  Left (condition), Right (if true), Aux (if false)
//	ExprMinTypMax    Left (min), Right (typ), Aux (max)
//
// Constant is true when the expression is built from constant parts
// only and may appear where the grammar requires a constant.
type Expression struct {
	Kind       ExprKind
	Attributes *AttributeList
	Left       *Expression
	Right      *Expression
	Aux        *Expression
	Primary    *Primary
	StringLit  string
	Op         Operator
	Constant   bool
}

func (*Expression) node()         {}
func (*Expression) primaryValue() {}
func (*Expression) concatItem()   {}

// PrimaryKind is the grammar context a primary appears in.
type PrimaryKind uint

// Primary kinds.
const (
	PrimaryConstant PrimaryKind = iota
	PrimaryGeneral
	PrimaryModulePath
)

// String returns a string representation of the kind.
func (k PrimaryKind) String() string {
	switch k {
	case PrimaryConstant:
		return "constant"
	case PrimaryGeneral:
		return "general"
	case PrimaryModulePath:
		return "module path"
	}
	return "invalid"
}

// PrimaryValueKind tags the payload held by a primary.
type PrimaryValueKind uint

// Primary value kinds.
const (
	PrimaryValueNumber PrimaryValueKind = iota
	PrimaryValueIdentifier
	PrimaryValueConcatenation
	PrimaryValueFunctionCall
	PrimaryValueMinTypMax
)

// String returns a string representation of the kind.
func (k PrimaryValueKind) String() string {
	switch k {
	case PrimaryValueNumber:
		return "number"
	case PrimaryValueIdentifier:
		return "identifier"
	case PrimaryValueConcatenation:
		return "concatenation"
	case PrimaryValueFunctionCall:
		return "function call"
	case PrimaryValueMinTypMax:
		return "mintypmax"
	}
	return "invalid"
}

// PrimaryValue is a payload a primary can hold.
type PrimaryValue interface {
	Node
	primaryValue()
}

// Primary is a leaf of the expression grammar.
type Primary struct {
	Kind      PrimaryKind
	ValueKind PrimaryValueKind
	Value     PrimaryValue
}

func (*Primary) node()         {}
func (*Primary) primaryValue() {}

// FunctionCall is a task or function invocation in expression position.
type FunctionCall struct {
	Function   *Identifier
	Constant   bool
	System     bool
	Attributes *AttributeList
	Arguments  *ordered.List[*Expression]
}

func (*FunctionCall) node()         {}
func (*FunctionCall) primaryValue() {}

// ConcatKind is the grammar context of a concatenation.
type ConcatKind uint

// Concatenation kinds.
const (
	ConcatExpression ConcatKind = iota
	ConcatConstantExpression
	ConcatNet
	ConcatVariable
	ConcatModulePath
)

// String returns a string representation of the kind.
func (k ConcatKind) String() string {
	switch k {
	case ConcatExpression:
		return "expression"
	case ConcatConstantExpression:
		return "constant expression"
	case ConcatNet:
		return "net"
	case ConcatVariable:
		return "variable"
	case ConcatModulePath:
		return "module path"
	}
	return "invalid"
}

// ConcatItem is an element a concatenation can hold: an expression in
// expression contexts, an lvalue in net and variable contexts.
type ConcatItem interface {
	Node
	concatItem()
}

// Concatenation is a {...} grouping, optionally replicated Repeat
// times. Items are stored in textual order.
type Concatenation struct {
	Kind   ConcatKind
	Repeat *Expression
	Items  *ordered.List[ConcatItem]
}

func (*Concatenation) node()         {}
func (*Concatenation) primaryValue() {}
func (*Concatenation) concatItem()   {}

// Extend inserts an item at the front of the concatenation. The
// grammar is left recursive so items arrive in reverse textual order.
func (c *Concatenation) Extend(item ConcatItem) {
	c.Items.Prepend(item)
}

// LvalueKind tags what an assignment target refers to.
type LvalueKind uint

// Lvalue kinds.
const (
	LvalueNetIdentifier LvalueKind = iota
	LvalueVarIdentifier
	LvalueGenvarIdentifier
	LvalueNetConcatenation
	LvalueVarConcatenation
)

// String returns a string representation of the kind.
func (k LvalueKind) String() string {
	switch k {
	case LvalueNetIdentifier:
		return "net identifier"
	case LvalueVarIdentifier:
		return "variable identifier"
	case LvalueGenvarIdentifier:
		return "genvar identifier"
	case LvalueNetConcatenation:
		return "net concatenation"
	case LvalueVarConcatenation:
		return "variable concatenation"
	}
	return "invalid"
}

// Lvalue is an assignment target. Exactly one of ID and Concat is set,
// according to Kind.
type Lvalue struct {
	Kind   LvalueKind
	ID     *Identifier
	Concat *Concatenation
}

func (*Lvalue) node()       {}
func (*Lvalue) concatItem() {}

var (
	_ PrimaryValue = (*Number)(nil)
	_ PrimaryValue = (*Identifier)(nil)
	_ PrimaryValue = (*Concatenation)(nil)
	_ PrimaryValue = (*FunctionCall)(nil)
	_ PrimaryValue = (*Expression)(nil)

	_ ConcatItem = (*Expression)(nil)
	_ ConcatItem = (*Lvalue)(nil)
	_ ConcatItem = (*Identifier)(nil)
)

// ----------------------------------------------------------------------------
// Constructors.

// Primary builds an expression leaf. The payload must match valueKind.
func (b *Builder) Primary(kind PrimaryKind, valueKind PrimaryValueKind, value PrimaryValue) (*Primary, error) {
	if value == nil {
		return nil, b.contractf("primary: nil value")
	}
	ok := false
	switch value.(type) {
	case *Number:
		ok = valueKind == PrimaryValueNumber
	case *Identifier:
		ok = valueKind == PrimaryValueIdentifier
	case *Concatenation:
		ok = valueKind == PrimaryValueConcatenation
	case *FunctionCall:
		ok = valueKind == PrimaryValueFunctionCall
	case *Expression:
		ok = valueKind == PrimaryValueMinTypMax
	}
	if !ok {
		return nil, b.contractf("primary: %T payload tagged %s", value, valueKind)
	}
	p := b.primaries.New()
	p.Kind = kind
	p.ValueKind = valueKind
	p.Value = value
	return p, nil
}

// PrimaryExpression wraps a primary as an expression. The wrapper is
// constant exactly when the primary is a constant primary.
func (b *Builder) PrimaryExpression(p *Primary) (*Expression, error) {
	if p == nil {
		return nil, b.contractf("primary expression: nil primary")
	}
	e := b.expressions.New()
	e.Kind = ExprPrimary
	e.Primary = p
	e.Constant = p.Kind == PrimaryConstant
	return e, nil
}

// UnaryExpression builds op operand.
func (b *Builder) UnaryExpression(attrs *AttributeList, op Operator, operand *Expression, constant bool) (*Expression, error) {
	if operand == nil {
		return nil, b.contractf("unary expression: nil operand")
	}
	if op == OpNone {
		return nil, b.contractf("unary expression: missing operator")
	}
	e := b.expressions.New()
	e.Kind = ExprUnary
	e.Attributes = attrs
	e.Op = op
	e.Right = operand
	e.Constant = constant
	return e, nil
}

// BinaryExpression builds left op right.
func (b *Builder) BinaryExpression(attrs *AttributeList, left *Expression, op Operator, right *Expression, constant bool) (*Expression, error) {
	if left == nil || right == nil {
		return nil, b.contractf("binary expression: nil operand")
	}
	if op == OpNone {
		return nil, b.contractf("binary expression: missing operator")
	}
	e := b.expressions.New()
	e.Kind = ExprBinary
	e.Attributes = attrs
	e.Left = left
	e.Op = op
	e.Right = right
	e.Constant = constant
	return e, nil
}

// RangeExpression builds the [upper:lower] form of a select.
func (b *Builder) RangeExpression(upper, lower *Expression) (*Expression, error) {
	if upper == nil || lower == nil {
		return nil, b.contractf("range expression: nil bound")
	}
	e := b.expressions.New()
	e.Kind = ExprRange
	e.Left = upper
	e.Right = lower
	return e, nil
}

// IndexExpression builds the [index] form of a select.
func (b *Builder) IndexExpression(index *Expression) (*Expression, error) {
	if index == nil {
		return nil, b.contractf("index expression: nil index")
	}
	e := b.expressions.New()
	e.Kind = ExprIndex
	e.Left = index
	return e, nil
}

// StringExpression builds a string literal. Strings are constant.
func (b *Builder) StringExpression(s string) *Expression {
	e := b.expressions.New()
	e.Kind = ExprString
	e.StringLit = s
	e.Constant = true
	return e
}

// ConditionalExpression builds condition ? ifTrue : ifFalse.
func (b *Builder) ConditionalExpression(attrs *AttributeList, condition, ifTrue, ifFalse *Expression) (*Expression, error) {
	if condition == nil || ifTrue == nil || ifFalse == nil {
		return nil, b.contractf("conditional expression: nil operand")
	}
	e := b.expressions.New()
	e.Kind = ExprConditional
	e.Attributes = attrs
	e.Left = condition
	e.Right = ifTrue
	e.Aux = ifFalse
	return e, nil
}

// MinTypMaxExpression builds min:typ:max.
func (b *Builder) MinTypMaxExpression(min, typ, max *Expression) (*Expression, error) {
	if min == nil || typ == nil || max == nil {
		return nil, b.contractf("mintypmax expression: nil operand")
	}
	e := b.expressions.New()
	e.Kind = ExprMinTypMax
	e.Left = min
	e.Right = typ
	e.Aux = max
	return e, nil
}

// FunctionCall builds a function or task invocation. A nil argument
// list stands for an empty one.
func (b *Builder) FunctionCall(function *Identifier, constant, system bool, attrs *AttributeList, args *ordered.List[*Expression]) (*FunctionCall, error) {
	if function == nil {
		return nil, b.contractf("function call: nil function identifier")
	}
	if args == nil {
		args = ordered.NewList[*Expression]()
	}
	f := b.functionCalls.New()
	f.Function = function
	f.Constant = constant
	f.System = system
	f.Attributes = attrs
	f.Arguments = args
	return f, nil
}

// Concatenation starts a concatenation from its rightmost item. Items
// added later with Extend end up in front of it. Repeat may be nil.
func (b *Builder) Concatenation(kind ConcatKind, repeat *Expression, first ConcatItem) (*Concatenation, error) {
	if first == nil {
		return nil, b.contractf("concatenation: nil first item")
	}
	c := b.concatenations.New()
	c.Kind = kind
	c.Repeat = repeat
	c.Items = ordered.NewList[ConcatItem]()
	c.Items.Append(first)
	return c, nil
}

// EmptyConcatenation starts a concatenation with no items yet.
func (b *Builder) EmptyConcatenation(kind ConcatKind) *Concatenation {
	c := b.concatenations.New()
	c.Kind = kind
	c.Items = ordered.NewList[ConcatItem]()
	return c
}

// LvalueID builds an identifier assignment target.
func (b *Builder) LvalueID(kind LvalueKind, id *Identifier) (*Lvalue, error) {
	switch kind {
	case LvalueNetIdentifier, LvalueVarIdentifier, LvalueGenvarIdentifier:
	default:
		return nil, b.contractf("lvalue: identifier payload tagged %s", kind)
	}
	if id == nil {
		return nil, b.contractf("lvalue: nil identifier")
	}
	lv := b.lvalues.New()
	lv.Kind = kind
	lv.ID = id
	return lv, nil
}

// LvalueConcat builds a concatenation assignment target.
func (b *Builder) LvalueConcat(kind LvalueKind, concat *Concatenation) (*Lvalue, error) {
	switch kind {
	case LvalueNetConcatenation, LvalueVarConcatenation:
	default:
		return nil, b.contractf("lvalue: concatenation payload tagged %s", kind)
	}
	if concat == nil {
		return nil, b.contractf("lvalue: nil concatenation")
	}
	lv := b.lvalues.New()
	lv.Kind = kind
	lv.Concat = concat
	return lv, nil
}
