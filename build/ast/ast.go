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

// Package ast is the Verilog abstract syntax tree.
//
// The tree is built bottom-up by the parser: one Builder method per
// grammar production, each consuming already-built children and
// returning an owned node. Nodes are allocated in arenas owned by the
// Builder's session and are released together when the session ends.
//
// Consumers (elaborator, printer) switch on the kind tags before
// touching a payload, exactly mirroring how the tree was built.
package ast

import (
	"github.com/vast-org/vast/base/ordered"
)

// Node in the tree.
type Node interface {
	// node marks a structure as a node structure.
	// It prevents arbitrary structures from being used as nodes.
	node()
}

// ----------------------------------------------------------------------------
// Terminals recognized by the lexer.

// Identifier names a net, variable, module, port, task or function.
// Identifiers are interned: the builder returns the same node for the
// same name within one session.
type Identifier struct {
	Name string
}

func (*Identifier) node()         {}
func (*Identifier) primaryValue() {}
func (*Identifier) concatItem()   {}

func (i *Identifier) String() string { return i.Name }

// NumberBase is the radix of a number literal.
type NumberBase uint

// Number literal radixes.
const (
	BaseBinary NumberBase = iota
	BaseOctal
	BaseDecimal
	BaseHex
)

// String returns a string representation of the base.
func (b NumberBase) String() string {
	switch b {
	case BaseBinary:
		return "binary"
	case BaseOctal:
		return "octal"
	case BaseDecimal:
		return "decimal"
	case BaseHex:
		return "hex"
	}
	return "invalid"
}

// Number is an unelaborated number literal: the digits as written,
// tagged with their radix.
type Number struct {
	Base   NumberBase
	Digits string
}

func (*Number) node()         {}
func (*Number) primaryValue() {}

// Attribute is a single (* name = value *) annotation. The value may
// be nil for a bare name.
type Attribute struct {
	Name  *Identifier
	Value *Expression
}

func (*Attribute) node() {}

// AttributeList is the ordered set of attributes attached to a node.
// A nil list means no attributes.
type AttributeList = ordered.List[*Attribute]

// Range is a bit range [Upper:Lower].
type Range struct {
	Upper *Expression
	Lower *Expression
}

func (*Range) node() {}

// ----------------------------------------------------------------------------
// Shared enumerations.

// Edge identifies a signal transition.
type Edge uint

// Signal edges.
const (
	EdgeNone Edge = iota
	EdgePos
	EdgeNeg
	EdgeAny
)

// String returns a string representation of the edge.
func (e Edge) String() string {
	switch e {
	case EdgePos:
		return "posedge"
	case EdgeNeg:
		return "negedge"
	case EdgeAny:
		return "edge"
	}
	return "none"
}

// PortDirection of a module or primitive port.
type PortDirection uint

// Port directions.
const (
	PortNone PortDirection = iota
	PortInput
	PortOutput
	PortInout
)

// String returns a string representation of the direction.
func (d PortDirection) String() string {
	switch d {
	case PortInput:
		return "input"
	case PortOutput:
		return "output"
	case PortInout:
		return "inout"
	}
	return "none"
}

// NetType of a declared net.
type NetType uint

// Net types.
const (
	NetTypeNone NetType = iota
	NetTypeWire
	NetTypeWAnd
	NetTypeWOr
	NetTypeTri
	NetTypeTriAnd
	NetTypeTriOr
	NetTypeTri0
	NetTypeTri1
	NetTypeTriReg
	NetTypeSupply0
	NetTypeSupply1
	NetTypeUWire
)

// PrimitiveStrength is a drive strength level for one logic value.
type PrimitiveStrength uint

// Primitive strengths.
const (
	StrengthNone PrimitiveStrength = iota
	StrengthSupply0
	StrengthSupply1
	StrengthStrong0
	StrengthStrong1
	StrengthPull0
	StrengthPull1
	StrengthWeak0
	StrengthWeak1
	StrengthHighZ0
	StrengthHighZ1
)

// DriveStrength pairs the strengths a net is driven with for 0 and 1.
type DriveStrength struct {
	Strength0 PrimitiveStrength
	Strength1 PrimitiveStrength
}

func (*DriveStrength) node() {}

// ChargeStrength of a trireg net.
type ChargeStrength uint

// Charge strengths.
const (
	ChargeNone ChargeStrength = iota
	ChargeSmall
	ChargeMedium
	ChargeLarge
)
