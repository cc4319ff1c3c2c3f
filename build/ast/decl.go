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

// ParameterKind is the value type of a parameter declaration.
type ParameterKind uint

// Parameter kinds.
const (
	ParamGeneric ParameterKind = iota
	ParamInteger
	ParamReal
	ParamRealtime
	ParamTime
	ParamSpecparam
)

// String returns a string representation of the kind.
func (k ParameterKind) String() string {
	switch k {
	case ParamGeneric:
		return "parameter"
	case ParamInteger:
		return "integer"
	case ParamReal:
		return "real"
	case ParamRealtime:
		return "realtime"
	case ParamTime:
		return "time"
	case ParamSpecparam:
		return "specparam"
	}
	return "invalid"
}

// ParameterDeclarations declares one or more parameters of the same
// kind. Range and Signed apply to generic parameters only; typed
// parameters carry their width in the kind.
type ParameterDeclarations struct {
	Kind        ParameterKind
	Assignments *ordered.List[*SingleAssignment]
	Signed      bool
	Local       bool
	Range       *Range
}

func (*ParameterDeclarations) node()                        {}
func (*ParameterDeclarations) statementKind() StatementKind { return StmtParameterDeclaration }

// PortDeclaration declares one or more ports sharing direction, type
// and width.
type PortDeclaration struct {
	Direction PortDirection
	NetType   NetType
	Signed    bool
	Reg       bool
	Variable  bool
	Range     *Range
	Names     *ordered.List[*Identifier]
}

func (*PortDeclaration) node()                        {}
func (*PortDeclaration) statementKind() StatementKind { return StmtPortDeclaration }

// DeclarationKind is the object class of a type declaration.
type DeclarationKind uint

// Declaration kinds.
const (
	DeclareEvent DeclarationKind = iota
	DeclareGenvar
	DeclareInteger
	DeclareNet
	DeclareReal
	DeclareRealtime
	DeclareReg
	DeclareTime
)

// String returns a string representation of the kind.
func (k DeclarationKind) String() string {
	switch k {
	case DeclareEvent:
		return "event"
	case DeclareGenvar:
		return "genvar"
	case DeclareInteger:
		return "integer"
	case DeclareNet:
		return "net"
	case DeclareReal:
		return "real"
	case DeclareRealtime:
		return "realtime"
	case DeclareReg:
		return "reg"
	case DeclareTime:
		return "time"
	}
	return "invalid"
}

// TypeDeclaration declares nets, variables, events or genvars. The
// grammar has too many optional modifiers for a single constructor
// signature, so the builder returns the declaration with every
// modifier zeroed and the parser fills in what it saw.
type TypeDeclaration struct {
	Kind        DeclarationKind
	Identifiers *ordered.List[*Identifier]
	Delay       *Delay3
	Drive       *DriveStrength
	Charge      ChargeStrength
	Range       *Range
	Vectored    bool
	Scalared    bool
	Signed      bool
	NetType     NetType
}

func (*TypeDeclaration) node()                        {}
func (*TypeDeclaration) statementKind() StatementKind { return StmtTypeDeclaration }

// ----------------------------------------------------------------------------
// Specify paths.

// PathKind discriminates the path declaration forms of a specify
// block.
type PathKind uint

// Path kinds.
const (
	PathSimpleParallel PathKind = iota
	PathSimpleFull
	PathEdgeParallel
	PathEdgeFull
	PathStateSimpleParallel
	PathStateSimpleFull
	PathStateEdgeParallel
	PathStateEdgeFull
)

// String returns a string representation of the kind.
func (k PathKind) String() string {
	switch k {
	case PathSimpleParallel:
		return "simple parallel"
	case PathSimpleFull:
		return "simple full"
	case PathEdgeParallel:
		return "edge parallel"
	case PathEdgeFull:
		return "edge full"
	case PathStateSimpleParallel:
		return "state-dependent simple parallel"
	case PathStateSimpleFull:
		return "state-dependent simple full"
	case PathStateEdgeParallel:
		return "state-dependent edge parallel"
	case PathStateEdgeFull:
		return "state-dependent edge full"
	}
	return "invalid"
}

func (k PathKind) edgeSensitive() bool {
	switch k {
	case PathEdgeParallel, PathEdgeFull, PathStateEdgeParallel, PathStateEdgeFull:
		return true
	}
	return false
}

func (k PathKind) parallel() bool {
	switch k {
	case PathSimpleParallel, PathEdgeParallel, PathStateSimpleParallel, PathStateEdgeParallel:
		return true
	}
	return false
}

func (k PathKind) stateDependent() bool {
	return k >= PathStateSimpleParallel
}

// PathPayload is the body of a path declaration.
type PathPayload interface {
	Node
	pathPayload()
}

// SimplePath is a level-sensitive path. A parallel path connects one
// input terminal to one output terminal; a full path connects lists of
// terminals. Exactly one pair of fields is set.
type SimplePath struct {
	Input    *Identifier
	Output   *Identifier
	Inputs   *ordered.List[*Identifier]
	Outputs  *ordered.List[*Identifier]
	Polarity Operator
	Delays   *ordered.List[*Expression]
}

func (*SimplePath) node()        {}
func (*SimplePath) pathPayload() {}

// EdgeSensitivePath is a path qualified by a trigger edge and a data
// source expression. Terminal fields follow the SimplePath convention.
type EdgeSensitivePath struct {
	Edge       Edge
	Input      *Identifier
	Output     *Identifier
	Inputs     *ordered.List[*Identifier]
	Outputs    *ordered.List[*Identifier]
	Polarity   Operator
	DataSource *Expression
	Delays     *ordered.List[*Expression]
}

func (*EdgeSensitivePath) node()        {}
func (*EdgeSensitivePath) pathPayload() {}

// PathDeclaration is one path of a specify block. Condition is the
// state expression of a state-dependent path, nil otherwise.
type PathDeclaration struct {
	Kind      PathKind
	Condition *Expression
	Payload   PathPayload
}

func (*PathDeclaration) node()                        {}
func (*PathDeclaration) statementKind() StatementKind { return StmtPathDeclaration }

// ----------------------------------------------------------------------------
// Constructors.

// ParameterDeclarations declares parameters of one kind. Range and
// signedness only apply to generic parameters and are discarded for
// typed ones, whose kind fixes both.
func (b *Builder) ParameterDeclarations(kind ParameterKind, assigns *ordered.List[*SingleAssignment], signed, local bool, rng *Range) (*ParameterDeclarations, error) {
	if assigns == nil || assigns.Len() == 0 {
		return nil, b.contractf("parameter declarations: no assignments")
	}
	pd := b.parameterDecls.New()
	pd.Kind = kind
	pd.Assignments = assigns
	pd.Local = local
	if kind == ParamGeneric {
		pd.Signed = signed
		pd.Range = rng
	}
	return pd, nil
}

// PortDeclaration declares ports sharing one set of modifiers.
func (b *Builder) PortDeclaration(direction PortDirection, netType NetType, signed, reg, variable bool, rng *Range, names *ordered.List[*Identifier]) (*PortDeclaration, error) {
	if direction == PortNone {
		return nil, b.contractf("port declaration: no direction")
	}
	if names == nil || names.Len() == 0 {
		return nil, b.contractf("port declaration: no port names")
	}
	pd := b.portDecls.New()
	pd.Direction = direction
	pd.NetType = netType
	pd.Signed = signed
	pd.Reg = reg
	pd.Variable = variable
	pd.Range = rng
	pd.Names = names
	return pd, nil
}

// TypeDeclaration starts a declaration of the given kind with every
// modifier zeroed. The caller fills in identifiers and modifiers.
func (b *Builder) TypeDeclaration(kind DeclarationKind) (*TypeDeclaration, error) {
	if kind > DeclareTime {
		return nil, b.contractf("type declaration: invalid kind %d", kind)
	}
	td := b.typeDecls.New()
	td.Kind = kind
	td.Identifiers = ordered.NewList[*Identifier]()
	return td, nil
}

// SimpleParallelPath connects one input terminal to one output
// terminal.
func (b *Builder) SimpleParallelPath(input *Identifier, polarity Operator, output *Identifier, delays *ordered.List[*Expression]) (*SimplePath, error) {
	if input == nil || output == nil {
		return nil, b.contractf("simple parallel path: nil terminal")
	}
	if delays == nil || delays.Len() == 0 {
		return nil, b.contractf("simple parallel path: no delay values")
	}
	sp := b.simplePaths.New()
	sp.Input = input
	sp.Output = output
	sp.Polarity = polarity
	sp.Delays = delays
	return sp, nil
}

// SimpleFullPath connects every input terminal to every output
// terminal.
func (b *Builder) SimpleFullPath(inputs *ordered.List[*Identifier], polarity Operator, outputs *ordered.List[*Identifier], delays *ordered.List[*Expression]) (*SimplePath, error) {
	if inputs == nil || inputs.Len() == 0 || outputs == nil || outputs.Len() == 0 {
		return nil, b.contractf("simple full path: no terminals")
	}
	if delays == nil || delays.Len() == 0 {
		return nil, b.contractf("simple full path: no delay values")
	}
	sp := b.simplePaths.New()
	sp.Inputs = inputs
	sp.Outputs = outputs
	sp.Polarity = polarity
	sp.Delays = delays
	return sp, nil
}

// EdgeParallelPath connects one input terminal to one output terminal,
// triggered on an edge of the input.
func (b *Builder) EdgeParallelPath(edge Edge, input *Identifier, polarity Operator, output *Identifier, dataSource *Expression, delays *ordered.List[*Expression]) (*EdgeSensitivePath, error) {
	if input == nil || output == nil {
		return nil, b.contractf("edge parallel path: nil terminal")
	}
	if dataSource == nil {
		return nil, b.contractf("edge parallel path: nil data source")
	}
	if delays == nil || delays.Len() == 0 {
		return nil, b.contractf("edge parallel path: no delay values")
	}
	ep := b.edgePaths.New()
	ep.Edge = edge
	ep.Input = input
	ep.Output = output
	ep.Polarity = polarity
	ep.DataSource = dataSource
	ep.Delays = delays
	return ep, nil
}

// EdgeFullPath connects terminal lists, triggered on an edge of the
// inputs.
func (b *Builder) EdgeFullPath(edge Edge, inputs *ordered.List[*Identifier], polarity Operator, outputs *ordered.List[*Identifier], dataSource *Expression, delays *ordered.List[*Expression]) (*EdgeSensitivePath, error) {
	if inputs == nil || inputs.Len() == 0 || outputs == nil || outputs.Len() == 0 {
		return nil, b.contractf("edge full path: no terminals")
	}
	if dataSource == nil {
		return nil, b.contractf("edge full path: nil data source")
	}
	if delays == nil || delays.Len() == 0 {
		return nil, b.contractf("edge full path: no delay values")
	}
	ep := b.edgePaths.New()
	ep.Edge = edge
	ep.Inputs = inputs
	ep.Outputs = outputs
	ep.Polarity = polarity
	ep.DataSource = dataSource
	ep.Delays = delays
	return ep, nil
}

// PathDeclaration wraps a path body under its kind tag. The condition
// is required for state-dependent kinds and forbidden otherwise.
func (b *Builder) PathDeclaration(kind PathKind, condition *Expression, payload PathPayload) (*PathDeclaration, error) {
	if kind > PathStateEdgeFull {
		return nil, b.contractf("path declaration: invalid kind %d", kind)
	}
	if kind.stateDependent() && condition == nil {
		return nil, b.contractf("path declaration: %s kind without state expression", kind)
	}
	if !kind.stateDependent() && condition != nil {
		return nil, b.contractf("path declaration: %s kind with state expression", kind)
	}
	var parallel bool
	switch p := payload.(type) {
	case *SimplePath:
		if kind.edgeSensitive() {
			return nil, b.contractf("path declaration: simple payload tagged %s", kind)
		}
		parallel = p.Input != nil
	case *EdgeSensitivePath:
		if !kind.edgeSensitive() {
			return nil, b.contractf("path declaration: edge-sensitive payload tagged %s", kind)
		}
		parallel = p.Input != nil
	default:
		return nil, b.contractf("path declaration: nil payload")
	}
	if parallel != kind.parallel() {
		return nil, b.contractf("path declaration: terminal shape does not match %s", kind)
	}
	pd := b.pathDecls.New()
	pd.Kind = kind
	pd.Condition = condition
	pd.Payload = payload
	return pd, nil
}
