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

// LevelSymbol is one input or state level of a UDP table row.
type LevelSymbol uint

// Level symbols.
const (
	Level0 LevelSymbol = iota
	Level1
	LevelX
	LevelAny
	LevelB
)

// String returns the symbol as written in a UDP table.
func (l LevelSymbol) String() string {
	switch l {
	case Level0:
		return "0"
	case Level1:
		return "1"
	case LevelX:
		return "x"
	case LevelAny:
		return "?"
	case LevelB:
		return "b"
	}
	return "invalid"
}

func (LevelSymbol) udpTableSymbol() {}

// NextState is the output column of a UDP table row.
type NextState uint

// Next states.
const (
	NextStateX NextState = iota
	NextState0
	NextState1
	NextStateNoChange
	NextStateAny
)

// String returns the symbol as written in a UDP table.
func (n NextState) String() string {
	switch n {
	case NextStateX:
		return "x"
	case NextState0:
		return "0"
	case NextState1:
		return "1"
	case NextStateNoChange:
		return "-"
	case NextStateAny:
		return "?"
	}
	return "invalid"
}

// UDPEdge is a (from to) transition in a UDP table row.
type UDPEdge struct {
	From LevelSymbol
	To   LevelSymbol
}

func (*UDPEdge) node()           {}
func (*UDPEdge) udpTableSymbol() {}

// UDPTableSymbol is one column of a UDP table row: a level symbol or
// an edge specification.
type UDPTableSymbol interface {
	udpTableSymbol()
}

// UDPPort declares one port of a primitive. An input port declares a
// list of names; output and inout ports declare a single name with an
// optional register modifier and default value.
type UDPPort struct {
	Direction  PortDirection
	ID         *Identifier
	IDs        *ordered.List[*Identifier]
	Attributes *AttributeList
	Reg        bool
	Default    *Expression
}

func (*UDPPort) node() {}

// UDPBodyKind distinguishes sequential from combinatorial primitives.
type UDPBodyKind uint

// UDP body kinds.
const (
	UDPBodySequential UDPBodyKind = iota
	UDPBodyCombinatorial
)

// String returns a string representation of the kind.
func (k UDPBodyKind) String() string {
	switch k {
	case UDPBodySequential:
		return "sequential"
	case UDPBodyCombinatorial:
		return "combinatorial"
	}
	return "invalid"
}

// UDPInitialStatement sets the power-up state of a sequential
// primitive output.
type UDPInitialStatement struct {
	Output *Identifier
	Value  *Number
}

func (*UDPInitialStatement) node() {}

// UDPCombinatorialEntry is one row of a combinatorial UDP table.
type UDPCombinatorialEntry struct {
	Levels    *ordered.List[LevelSymbol]
	NextState NextState
}

func (*UDPCombinatorialEntry) node() {}

// UDPEntryPrefix tells whether the input columns of a sequential row
// are plain levels or contain an edge.
type UDPEntryPrefix uint

// Entry prefixes.
const (
	PrefixLevels UDPEntryPrefix = iota
	PrefixEdges
)

// UDPSequentialEntry is one row of a sequential UDP table. Exactly one
// of Levels and Edges is set, according to Prefix.
type UDPSequentialEntry struct {
	Prefix       UDPEntryPrefix
	Levels       *ordered.List[UDPTableSymbol]
	Edges        *ordered.List[UDPTableSymbol]
	CurrentState LevelSymbol
	NextState    NextState
}

func (*UDPSequentialEntry) node() {}

// UDPBody is the table of a primitive. Initial and Sequential are set
// for sequential bodies, Combinatorial for combinatorial ones.
type UDPBody struct {
	Kind          UDPBodyKind
	Initial       *UDPInitialStatement
	Sequential    *ordered.List[*UDPSequentialEntry]
	Combinatorial *ordered.List[*UDPCombinatorialEntry]
}

func (*UDPBody) node() {}

// UDPDeclaration is one user defined primitive.
type UDPDeclaration struct {
	Attributes *AttributeList
	ID         *Identifier
	Ports      *ordered.List[*UDPPort]
	Body       *UDPBody
}

func (*UDPDeclaration) node() {}

// UDPInstance is one instance of a primitive.
type UDPInstance struct {
	ID     *Identifier
	Range  *Range
	Output *Lvalue
	Inputs *ordered.List[*Expression]
}

func (*UDPInstance) node() {}

// UDPInstantiation instantiates a primitive one or more times with a
// shared strength and delay.
type UDPInstantiation struct {
	Primitive *Identifier
	Strength  *DriveStrength
	Delay     *Delay2
	Instances *ordered.List[*UDPInstance]
}

func (*UDPInstantiation) node()                        {}
func (*UDPInstantiation) statementKind() StatementKind { return StmtUDPInstantiation }

// ----------------------------------------------------------------------------
// Constructors.

// UDPPort declares an output or inout port of a primitive. Input
// ports use UDPInputPort.
func (b *Builder) UDPPort(direction PortDirection, id *Identifier, attrs *AttributeList, reg bool, defaultValue *Expression) (*UDPPort, error) {
	if direction != PortOutput && direction != PortInout {
		return nil, b.contractf("udp port: direction %s, want output or inout", direction)
	}
	if id == nil {
		return nil, b.contractf("udp port: nil identifier")
	}
	p := b.udpPorts.New()
	p.Direction = direction
	p.ID = id
	p.Attributes = attrs
	p.Reg = reg
	p.Default = defaultValue
	return p, nil
}

// UDPInputPort declares the input ports of a primitive. Input ports
// are never registers and carry no default value.
func (b *Builder) UDPInputPort(ids *ordered.List[*Identifier], attrs *AttributeList) (*UDPPort, error) {
	if ids == nil || ids.Len() == 0 {
		return nil, b.contractf("udp input port: no identifiers")
	}
	p := b.udpPorts.New()
	p.Direction = PortInput
	p.IDs = ids
	p.Attributes = attrs
	return p, nil
}

// UDPInitialStatement sets the power-up value of a sequential
// primitive output.
func (b *Builder) UDPInitialStatement(output *Identifier, value *Number) (*UDPInitialStatement, error) {
	if output == nil {
		return nil, b.contractf("udp initial statement: nil output port")
	}
	if value == nil {
		return nil, b.contractf("udp initial statement: nil initial value")
	}
	st := b.udpInitials.New()
	st.Output = output
	st.Value = value
	return st, nil
}

// UDPCombinatorialEntry builds one row of a combinatorial table.
func (b *Builder) UDPCombinatorialEntry(levels *ordered.List[LevelSymbol], next NextState) (*UDPCombinatorialEntry, error) {
	if levels == nil || levels.Len() == 0 {
		return nil, b.contractf("udp combinatorial entry: no input levels")
	}
	e := b.udpCombEntries.New()
	e.Levels = levels
	e.NextState = next
	return e, nil
}

// UDPSequentialEntry builds one row of a sequential table. The prefix
// selects whether the symbols are plain levels or contain an edge.
func (b *Builder) UDPSequentialEntry(prefix UDPEntryPrefix, symbols *ordered.List[UDPTableSymbol], current LevelSymbol, next NextState) (*UDPSequentialEntry, error) {
	if symbols == nil || symbols.Len() == 0 {
		return nil, b.contractf("udp sequential entry: no input symbols")
	}
	switch prefix {
	case PrefixEdges:
	case PrefixLevels:
		for sym := range symbols.Iter() {
			if _, isEdge := sym.(*UDPEdge); isEdge {
				return nil, b.contractf("udp sequential entry: edge symbol in a level row")
			}
		}
	default:
		return nil, b.contractf("udp sequential entry: invalid prefix %d", prefix)
	}
	e := b.udpSeqEntries.New()
	e.Prefix = prefix
	if prefix == PrefixEdges {
		e.Edges = symbols
	} else {
		e.Levels = symbols
	}
	e.CurrentState = current
	e.NextState = next
	return e, nil
}

// UDPEdge builds a (from to) transition symbol.
func (b *Builder) UDPEdge(from, to LevelSymbol) (*UDPEdge, error) {
	if from > LevelB || to > LevelB {
		return nil, b.contractf("udp edge: invalid level symbol")
	}
	e := b.udpEdges.New()
	e.From = from
	e.To = to
	return e, nil
}

// UDPSequentialBody builds the table of a sequential primitive. The
// initial statement may be nil.
func (b *Builder) UDPSequentialBody(initial *UDPInitialStatement, entries *ordered.List[*UDPSequentialEntry]) (*UDPBody, error) {
	if entries == nil || entries.Len() == 0 {
		return nil, b.contractf("udp sequential body: no table entries")
	}
	body := b.udpBodies.New()
	body.Kind = UDPBodySequential
	body.Initial = initial
	body.Sequential = entries
	return body, nil
}

// UDPCombinatorialBody builds the table of a combinatorial primitive.
func (b *Builder) UDPCombinatorialBody(entries *ordered.List[*UDPCombinatorialEntry]) (*UDPBody, error) {
	if entries == nil || entries.Len() == 0 {
		return nil, b.contractf("udp combinatorial body: no table entries")
	}
	body := b.udpBodies.New()
	body.Kind = UDPBodyCombinatorial
	body.Combinatorial = entries
	return body, nil
}

// UDPDeclaration assembles a primitive from its ports and table.
func (b *Builder) UDPDeclaration(attrs *AttributeList, id *Identifier, ports *ordered.List[*UDPPort], body *UDPBody) (*UDPDeclaration, error) {
	if id == nil {
		return nil, b.contractf("udp declaration: nil identifier")
	}
	if ports == nil || ports.Len() == 0 {
		return nil, b.contractf("udp declaration: no ports")
	}
	if body == nil {
		return nil, b.contractf("udp declaration: nil body")
	}
	d := b.udpDecls.New()
	d.Attributes = attrs
	d.ID = id
	d.Ports = ports
	d.Body = body
	return d, nil
}

// UDPInstance builds one instance of a primitive. The name and range
// may be nil.
func (b *Builder) UDPInstance(id *Identifier, rng *Range, output *Lvalue, inputs *ordered.List[*Expression]) (*UDPInstance, error) {
	if output == nil {
		return nil, b.contractf("udp instance: nil output terminal")
	}
	if inputs == nil || inputs.Len() == 0 {
		return nil, b.contractf("udp instance: no input terminals")
	}
	inst := b.udpInstances.New()
	inst.ID = id
	inst.Range = rng
	inst.Output = output
	inst.Inputs = inputs
	return inst, nil
}

// UDPInstantiation instantiates a primitive. Strength and delay may be
// nil.
func (b *Builder) UDPInstantiation(primitive *Identifier, strength *DriveStrength, delay *Delay2, instances *ordered.List[*UDPInstance]) (*UDPInstantiation, error) {
	if primitive == nil {
		return nil, b.contractf("udp instantiation: nil primitive identifier")
	}
	if instances == nil || instances.Len() == 0 {
		return nil, b.contractf("udp instantiation: no instances")
	}
	ui := b.udpInstas.New()
	ui.Primitive = primitive
	ui.Strength = strength
	ui.Delay = delay
	ui.Instances = instances
	return ui, nil
}
