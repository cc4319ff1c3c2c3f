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
	"github.com/vast-org/vast/base/arena"
	"github.com/vast-org/vast/base/ordered"
)

// Builder represents a build session. All nodes of a tree are allocated
// through one builder; Close releases them all at once. A builder is
// not safe for concurrent use.
type Builder struct {
	session *arena.Session

	// Identifiers are interned per session.
	idents *ordered.Map[string, *Identifier]

	// Construction errors, in call order. See Err.
	errs []error

	// Terminals.
	identifiers    *arena.Arena[Identifier]
	numbers        *arena.Arena[Number]
	attributes     *arena.Arena[Attribute]
	ranges         *arena.Arena[Range]
	driveStrengths *arena.Arena[DriveStrength]

	// Expressions.
	expressions    *arena.Arena[Expression]
	primaries      *arena.Arena[Primary]
	functionCalls  *arena.Arena[FunctionCall]
	concatenations *arena.Arena[Concatenation]
	lvalues        *arena.Arena[Lvalue]

	// Statements.
	statements     *arena.Arena[Statement]
	assignments    *arena.Arena[Assignment]
	singleAssigns  *arena.Arena[SingleAssignment]
	generateBlocks *arena.Arena[GenerateBlock]
	caseItems      *arena.Arena[CaseItem]
	cases          *arena.Arena[CaseStatement]
	conditionals   *arena.Arena[ConditionalStatement]
	ifElses        *arena.Arena[IfElse]
	loops          *arena.Arena[LoopStatement]
	waits          *arena.Arena[WaitStatement]
	disables       *arena.Arena[DisableStatement]
	taskEnables    *arena.Arena[TaskEnableStatement]
	blocks         *arena.Arena[StatementBlock]

	// Timing and events.
	eventExpressions *arena.Arena[EventExpression]
	eventControls    *arena.Arena[EventControl]
	delayControls    *arena.Arena[DelayControl]
	timingControls   *arena.Arena[TimingControlStatement]
	delayValues      *arena.Arena[DelayValue]
	delay2s          *arena.Arena[Delay2]
	delay3s          *arena.Arena[Delay3]

	// Declarations.
	parameterDecls *arena.Arena[ParameterDeclarations]
	portDecls      *arena.Arena[PortDeclaration]
	typeDecls      *arena.Arena[TypeDeclaration]
	pathDecls      *arena.Arena[PathDeclaration]
	simplePaths    *arena.Arena[SimplePath]
	edgePaths      *arena.Arena[EdgeSensitivePath]

	// Module structure.
	modules         *arena.Arena[ModuleDeclaration]
	moduleInstas    *arena.Arena[ModuleInstantiation]
	moduleInstances *arena.Arena[ModuleInstance]
	portConnections *arena.Arena[PortConnection]

	// Gates and switches.
	switchGates     *arena.Arena[SwitchGate]
	primitivePulls  *arena.Arena[PrimitivePullStrength]
	pullStrengths   *arena.Arena[PullStrength]
	pullGates       *arena.Arena[PullGateInstance]
	passSwitches    *arena.Arena[PassSwitchInstance]
	passEnables     *arena.Arena[PassEnableSwitch]
	passEnableSets  *arena.Arena[PassEnableSwitches]
	mosSwitches     *arena.Arena[MosSwitchInstance]
	cmosSwitches    *arena.Arena[CmosSwitchInstance]
	nInputGates     *arena.Arena[NInputGateInstance]
	nInputGateSets  *arena.Arena[NInputGateInstances]
	nOutputGates    *arena.Arena[NOutputGateInstance]
	nOutputGateSets *arena.Arena[NOutputGateInstances]
	enableGates     *arena.Arena[EnableGateInstance]
	enableGateSets  *arena.Arena[EnableGateInstances]
	switchSets      *arena.Arena[Switches]
	gateInstas      *arena.Arena[GateInstantiation]

	// User defined primitives.
	udpPorts       *arena.Arena[UDPPort]
	udpDecls       *arena.Arena[UDPDeclaration]
	udpInstances   *arena.Arena[UDPInstance]
	udpInstas      *arena.Arena[UDPInstantiation]
	udpInitials    *arena.Arena[UDPInitialStatement]
	udpBodies      *arena.Arena[UDPBody]
	udpCombEntries *arena.Arena[UDPCombinatorialEntry]
	udpSeqEntries  *arena.Arena[UDPSequentialEntry]
	udpEdges       *arena.Arena[UDPEdge]
}

// Chunk sizes per node family. Identifiers and expressions dominate a
// typical source file; specify blocks and primitives are rare.
const (
	chunkTiny   = 16
	chunkSmall  = 64
	chunkMedium = 256
	chunkLarge  = 1024
)

// NewBuilder returns a builder with a fresh session.
func NewBuilder() *Builder {
	s := arena.NewSession()
	return &Builder{
		session: s,
		idents:  ordered.NewMap[string, *Identifier](),

		identifiers:    arena.In[Identifier](s, chunkLarge),
		numbers:        arena.In[Number](s, chunkMedium),
		attributes:     arena.In[Attribute](s, chunkSmall),
		ranges:         arena.In[Range](s, chunkMedium),
		driveStrengths: arena.In[DriveStrength](s, chunkTiny),

		expressions:    arena.In[Expression](s, chunkLarge),
		primaries:      arena.In[Primary](s, chunkLarge),
		functionCalls:  arena.In[FunctionCall](s, chunkSmall),
		concatenations: arena.In[Concatenation](s, chunkSmall),
		lvalues:        arena.In[Lvalue](s, chunkMedium),

		statements:     arena.In[Statement](s, chunkMedium),
		assignments:    arena.In[Assignment](s, chunkMedium),
		singleAssigns:  arena.In[SingleAssignment](s, chunkMedium),
		generateBlocks: arena.In[GenerateBlock](s, chunkTiny),
		caseItems:      arena.In[CaseItem](s, chunkSmall),
		cases:          arena.In[CaseStatement](s, chunkSmall),
		conditionals:   arena.In[ConditionalStatement](s, chunkSmall),
		ifElses:        arena.In[IfElse](s, chunkSmall),
		loops:          arena.In[LoopStatement](s, chunkSmall),
		waits:          arena.In[WaitStatement](s, chunkTiny),
		disables:       arena.In[DisableStatement](s, chunkTiny),
		taskEnables:    arena.In[TaskEnableStatement](s, chunkSmall),
		blocks:         arena.In[StatementBlock](s, chunkSmall),

		eventExpressions: arena.In[EventExpression](s, chunkSmall),
		eventControls:    arena.In[EventControl](s, chunkSmall),
		delayControls:    arena.In[DelayControl](s, chunkSmall),
		timingControls:   arena.In[TimingControlStatement](s, chunkSmall),
		delayValues:      arena.In[DelayValue](s, chunkSmall),
		delay2s:          arena.In[Delay2](s, chunkTiny),
		delay3s:          arena.In[Delay3](s, chunkTiny),

		parameterDecls: arena.In[ParameterDeclarations](s, chunkSmall),
		portDecls:      arena.In[PortDeclaration](s, chunkMedium),
		typeDecls:      arena.In[TypeDeclaration](s, chunkMedium),
		pathDecls:      arena.In[PathDeclaration](s, chunkTiny),
		simplePaths:    arena.In[SimplePath](s, chunkTiny),
		edgePaths:      arena.In[EdgeSensitivePath](s, chunkTiny),

		modules:         arena.In[ModuleDeclaration](s, chunkTiny),
		moduleInstas:    arena.In[ModuleInstantiation](s, chunkSmall),
		moduleInstances: arena.In[ModuleInstance](s, chunkSmall),
		portConnections: arena.In[PortConnection](s, chunkMedium),

		switchGates:     arena.In[SwitchGate](s, chunkTiny),
		primitivePulls:  arena.In[PrimitivePullStrength](s, chunkTiny),
		pullStrengths:   arena.In[PullStrength](s, chunkTiny),
		pullGates:       arena.In[PullGateInstance](s, chunkTiny),
		passSwitches:    arena.In[PassSwitchInstance](s, chunkTiny),
		passEnables:     arena.In[PassEnableSwitch](s, chunkTiny),
		passEnableSets:  arena.In[PassEnableSwitches](s, chunkTiny),
		mosSwitches:     arena.In[MosSwitchInstance](s, chunkTiny),
		cmosSwitches:    arena.In[CmosSwitchInstance](s, chunkTiny),
		nInputGates:     arena.In[NInputGateInstance](s, chunkSmall),
		nInputGateSets:  arena.In[NInputGateInstances](s, chunkTiny),
		nOutputGates:    arena.In[NOutputGateInstance](s, chunkSmall),
		nOutputGateSets: arena.In[NOutputGateInstances](s, chunkTiny),
		enableGates:     arena.In[EnableGateInstance](s, chunkTiny),
		enableGateSets:  arena.In[EnableGateInstances](s, chunkTiny),
		switchSets:      arena.In[Switches](s, chunkTiny),
		gateInstas:      arena.In[GateInstantiation](s, chunkSmall),

		udpPorts:       arena.In[UDPPort](s, chunkTiny),
		udpDecls:       arena.In[UDPDeclaration](s, chunkTiny),
		udpInstances:   arena.In[UDPInstance](s, chunkTiny),
		udpInstas:      arena.In[UDPInstantiation](s, chunkTiny),
		udpInitials:    arena.In[UDPInitialStatement](s, chunkTiny),
		udpBodies:      arena.In[UDPBody](s, chunkTiny),
		udpCombEntries: arena.In[UDPCombinatorialEntry](s, chunkSmall),
		udpSeqEntries:  arena.In[UDPSequentialEntry](s, chunkSmall),
		udpEdges:       arena.In[UDPEdge](s, chunkSmall),
	}
}

// Close releases every node built during the session. The builder and
// all nodes it returned must not be used afterwards.
func (b *Builder) Close() {
	b.session.Release()
	b.idents.Clear()
	b.errs = nil
}

// Live returns the number of nodes currently allocated in the session.
func (b *Builder) Live() int {
	return b.session.Live()
}

// ----------------------------------------------------------------------------
// Terminal constructors.

// Identifier returns the node for a name, allocating it on first use.
func (b *Builder) Identifier(name string) *Identifier {
	return b.idents.LoadOrStore(name, func() *Identifier {
		id := b.identifiers.New()
		id.Name = name
		return id
	})
}

// Number builds a number literal from its radix and digit string.
func (b *Builder) Number(base NumberBase, digits string) (*Number, error) {
	if base > BaseHex {
		return nil, b.contractf("number: invalid base %d", base)
	}
	if digits == "" {
		return nil, b.contractf("number: empty digit string")
	}
	n := b.numbers.New()
	n.Base = base
	n.Digits = digits
	return n, nil
}

// Attribute builds a single (* name = value *) annotation.
// Value may be nil for a bare name.
func (b *Builder) Attribute(name *Identifier, value *Expression) (*Attribute, error) {
	if name == nil {
		return nil, b.contractf("attribute: nil name")
	}
	a := b.attributes.New()
	a.Name = name
	a.Value = value
	return a, nil
}

// Range builds a bit range [upper:lower].
func (b *Builder) Range(upper, lower *Expression) (*Range, error) {
	if upper == nil || lower == nil {
		return nil, b.contractf("range: nil bound")
	}
	r := b.ranges.New()
	r.Upper = upper
	r.Lower = lower
	return r, nil
}

// DriveStrength pairs the drive strengths for 0 and 1.
func (b *Builder) DriveStrength(s0, s1 PrimitiveStrength) *DriveStrength {
	d := b.driveStrengths.New()
	d.Strength0 = s0
	d.Strength1 = s1
	return d
}
