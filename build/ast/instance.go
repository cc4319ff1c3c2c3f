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

// ModuleDeclaration is one module from source text. Parameters and
// ports keep declaration order; Constructs holds the module items.
type ModuleDeclaration struct {
	Attributes *AttributeList
	ID         *Identifier
	Parameters *ordered.List[*ParameterDeclarations]
	Ports      *ordered.List[*PortDeclaration]
	Constructs *ordered.List[*Statement]
}

func (*ModuleDeclaration) node() {}

// PortConnection binds a module port for one instance. Name is nil
// for an ordered connection; Value may be nil for an unconnected
// named port.
type PortConnection struct {
	Name  *Identifier
	Value *Expression
}

func (*PortConnection) node() {}

// ModuleInstance is one named instance within an instantiation.
type ModuleInstance struct {
	ID          *Identifier
	Connections *ordered.List[*PortConnection]
}

func (*ModuleInstance) node() {}

// ModuleInstantiation instantiates a module one or more times with a
// shared parameter list.
type ModuleInstantiation struct {
	Module     *Identifier
	Parameters *ordered.List[*PortConnection]
	Instances  *ordered.List[*ModuleInstance]
}

func (*ModuleInstantiation) node()                        {}
func (*ModuleInstantiation) statementKind() StatementKind { return StmtModuleInstantiation }

// ----------------------------------------------------------------------------
// Constructors.

// ModuleDeclaration assembles a module from its header and items. Nil
// lists stand for empty ones.
func (b *Builder) ModuleDeclaration(attrs *AttributeList, id *Identifier, params *ordered.List[*ParameterDeclarations], ports *ordered.List[*PortDeclaration], constructs *ordered.List[*Statement]) (*ModuleDeclaration, error) {
	if id == nil {
		return nil, b.contractf("module declaration: nil identifier")
	}
	if params == nil {
		params = ordered.NewList[*ParameterDeclarations]()
	}
	if ports == nil {
		ports = ordered.NewList[*PortDeclaration]()
	}
	if constructs == nil {
		constructs = ordered.NewList[*Statement]()
	}
	m := b.modules.New()
	m.Attributes = attrs
	m.ID = id
	m.Parameters = params
	m.Ports = ports
	m.Constructs = constructs
	return m, nil
}

// NamedPortConnection binds a port by name. The value may be nil to
// leave the port unconnected.
func (b *Builder) NamedPortConnection(name *Identifier, value *Expression) (*PortConnection, error) {
	if name == nil {
		return nil, b.contractf("port connection: nil port name")
	}
	pc := b.portConnections.New()
	pc.Name = name
	pc.Value = value
	return pc, nil
}

// OrderedPortConnection binds the next port in declaration order.
func (b *Builder) OrderedPortConnection(value *Expression) (*PortConnection, error) {
	if value == nil {
		return nil, b.contractf("port connection: nil value")
	}
	pc := b.portConnections.New()
	pc.Value = value
	return pc, nil
}

// ModuleInstance names one instance and its port bindings. A nil
// connection list stands for an empty one.
func (b *Builder) ModuleInstance(id *Identifier, connections *ordered.List[*PortConnection]) (*ModuleInstance, error) {
	if id == nil {
		return nil, b.contractf("module instance: nil instance identifier")
	}
	if connections == nil {
		connections = ordered.NewList[*PortConnection]()
	}
	mi := b.moduleInstances.New()
	mi.ID = id
	mi.Connections = connections
	return mi, nil
}

// ModuleInstantiation instantiates a module. Parameters may be nil
// when no parameter overrides are written.
func (b *Builder) ModuleInstantiation(module *Identifier, params *ordered.List[*PortConnection], instances *ordered.List[*ModuleInstance]) (*ModuleInstantiation, error) {
	if module == nil {
		return nil, b.contractf("module instantiation: nil module identifier")
	}
	if instances == nil || instances.Len() == 0 {
		return nil, b.contractf("module instantiation: no instances")
	}
	if params == nil {
		params = ordered.NewList[*PortConnection]()
	}
	mi := b.moduleInstas.New()
	mi.Module = module
	mi.Parameters = params
	mi.Instances = instances
	return mi, nil
}
