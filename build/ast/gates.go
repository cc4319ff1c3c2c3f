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

// SwitchType identifies a MOS or pass transistor primitive.
type SwitchType uint

// Switch types.
const (
	SwitchCmos SwitchType = iota
	SwitchRCmos
	SwitchNmos
	SwitchPmos
	SwitchRNmos
	SwitchRPmos
	SwitchTran
	SwitchRTran
)

// String returns a string representation of the type.
func (t SwitchType) String() string {
	switch t {
	case SwitchCmos:
		return "cmos"
	case SwitchRCmos:
		return "rcmos"
	case SwitchNmos:
		return "nmos"
	case SwitchPmos:
		return "pmos"
	case SwitchRNmos:
		return "rnmos"
	case SwitchRPmos:
		return "rpmos"
	case SwitchTran:
		return "tran"
	case SwitchRTran:
		return "rtran"
	}
	return "invalid"
}

// SwitchGate names a switch primitive together with its delay.
// Bidirectional pass switches (tran, rtran) carry a two-value delay,
// every other switch a three-value delay.
type SwitchGate struct {
	Kind   SwitchType
	Delay3 *Delay3
	Delay2 *Delay2
}

func (*SwitchGate) node() {}

// PullDirection of a pullup or pulldown source.
type PullDirection uint

// Pull directions.
const (
	PullUp PullDirection = iota
	PullDown
)

// String returns a string representation of the direction.
func (d PullDirection) String() string {
	switch d {
	case PullUp:
		return "pullup"
	case PullDown:
		return "pulldown"
	}
	return "invalid"
}

// PrimitivePullStrength is the strength specification of a pull
// source.
type PrimitivePullStrength struct {
	Direction PullDirection
	Strength1 PrimitiveStrength
	Strength0 PrimitiveStrength
}

func (*PrimitivePullStrength) node() {}

// PullStrength pairs the strengths of a pull source for 1 and 0.
type PullStrength struct {
	Strength1 PrimitiveStrength
	Strength0 PrimitiveStrength
}

func (*PullStrength) node() {}

// PullGateInstance is one pullup or pulldown source.
type PullGateInstance struct {
	Name   *Identifier
	Output *Lvalue
}

func (*PullGateInstance) node() {}

// PassSwitchInstance is one bidirectional pass switch. Both terminals
// can drive.
type PassSwitchInstance struct {
	Name      *Identifier
	Terminal1 *Lvalue
	Terminal2 *Lvalue
}

func (*PassSwitchInstance) node()           {}
func (*PassSwitchInstance) switchInstance() {}

// NInputGateType identifies a gate with one output and any number of
// inputs.
type NInputGateType uint

// N-input gate types.
const (
	GateAnd NInputGateType = iota
	GateNand
	GateOr
	GateNor
	GateXor
	GateXnor
)

// String returns a string representation of the type.
func (t NInputGateType) String() string {
	switch t {
	case GateAnd:
		return "and"
	case GateNand:
		return "nand"
	case GateOr:
		return "or"
	case GateNor:
		return "nor"
	case GateXor:
		return "xor"
	case GateXnor:
		return "xnor"
	}
	return "invalid"
}

// NInputGateInstance is one n-input gate.
type NInputGateInstance struct {
	Name   *Identifier
	Inputs *ordered.List[*Expression]
	Output *Lvalue
}

func (*NInputGateInstance) node() {}

// NInputGateInstances is a set of n-input gates sharing type, delay
// and strength.
type NInputGateInstances struct {
	Kind      NInputGateType
	Delay     *Delay3
	Strength  *DriveStrength
	Instances *ordered.List[*NInputGateInstance]
}

func (*NInputGateInstances) node() {}

// EnableGateType identifies a three-state driver.
type EnableGateType uint

// Enable gate types.
const (
	GateBufif0 EnableGateType = iota
	GateBufif1
	GateNotif0
	GateNotif1
)

// String returns a string representation of the type.
func (t EnableGateType) String() string {
	switch t {
	case GateBufif0:
		return "bufif0"
	case GateBufif1:
		return "bufif1"
	case GateNotif0:
		return "notif0"
	case GateNotif1:
		return "notif1"
	}
	return "invalid"
}

// EnableGateInstance is one three-state driver.
type EnableGateInstance struct {
	Name   *Identifier
	Output *Lvalue
	Enable *Expression
	Input  *Expression
}

func (*EnableGateInstance) node() {}

// EnableGateInstances is a set of three-state drivers sharing type,
// delay and strength.
type EnableGateInstances struct {
	Kind      EnableGateType
	Delay     *Delay3
	Strength  *DriveStrength
	Instances *ordered.List[*EnableGateInstance]
}

func (*EnableGateInstances) node() {}

// MosSwitchInstance is one unidirectional MOS transistor.
type MosSwitchInstance struct {
	Name   *Identifier
	Output *Lvalue
	Enable *Expression
	Input  *Expression
}

func (*MosSwitchInstance) node()           {}
func (*MosSwitchInstance) switchInstance() {}

// CmosSwitchInstance is one complementary MOS transistor pair.
type CmosSwitchInstance struct {
	Name     *Identifier
	Output   *Lvalue
	NControl *Expression
	PControl *Expression
	Input    *Expression
}

func (*CmosSwitchInstance) node()           {}
func (*CmosSwitchInstance) switchInstance() {}

// PassEnableSwitchType identifies a gated bidirectional pass switch.
type PassEnableSwitchType uint

// Pass enable switch types.
const (
	SwitchTranif0 PassEnableSwitchType = iota
	SwitchTranif1
	SwitchRTranif0
	SwitchRTranif1
)

// String returns a string representation of the type.
func (t PassEnableSwitchType) String() string {
	switch t {
	case SwitchTranif0:
		return "tranif0"
	case SwitchTranif1:
		return "tranif1"
	case SwitchRTranif0:
		return "rtranif0"
	case SwitchRTranif1:
		return "rtranif1"
	}
	return "invalid"
}

// PassEnableSwitch is one gated bidirectional pass switch.
type PassEnableSwitch struct {
	Name      *Identifier
	Terminal1 *Lvalue
	Terminal2 *Lvalue
	Enable    *Expression
}

func (*PassEnableSwitch) node() {}

// PassEnableSwitches is a set of gated pass switches sharing type and
// delay.
type PassEnableSwitches struct {
	Kind     PassEnableSwitchType
	Delay    *Delay2
	Switches *ordered.List[*PassEnableSwitch]
}

func (*PassEnableSwitches) node() {}

// NOutputGateType identifies a gate with one input and any number of
// outputs.
type NOutputGateType uint

// N-output gate types.
const (
	GateBuf NOutputGateType = iota
	GateNot
)

// String returns a string representation of the type.
func (t NOutputGateType) String() string {
	switch t {
	case GateBuf:
		return "buf"
	case GateNot:
		return "not"
	}
	return "invalid"
}

// NOutputGateInstance is one buf or not gate.
type NOutputGateInstance struct {
	Name    *Identifier
	Outputs *ordered.List[*Lvalue]
	Input   *Expression
}

func (*NOutputGateInstance) node() {}

// NOutputGateInstances is a set of buf or not gates sharing type,
// delay and strength.
type NOutputGateInstances struct {
	Kind      NOutputGateType
	Delay     *Delay2
	Strength  *DriveStrength
	Instances *ordered.List[*NOutputGateInstance]
}

func (*NOutputGateInstances) node() {}

// SwitchInstance is a transistor-level instance a Switches collection
// can hold.
type SwitchInstance interface {
	Node
	switchInstance()
}

// Switches is a set of switch instances sharing one switch gate.
type Switches struct {
	Gate      *SwitchGate
	Instances *ordered.List[SwitchInstance]
}

func (*Switches) node() {}

// GateKind discriminates the gate instantiation families.
type GateKind uint

// Gate kinds.
const (
	GatePullKind GateKind = iota
	GateNInputKind
	GateEnableKind
	GateNOutputKind
	GatePassEnableKind
	GateSwitchKind
)

// String returns a string representation of the kind.
func (k GateKind) String() string {
	switch k {
	case GatePullKind:
		return "pull"
	case GateNInputKind:
		return "n-input"
	case GateEnableKind:
		return "enable"
	case GateNOutputKind:
		return "n-output"
	case GatePassEnableKind:
		return "pass enable"
	case GateSwitchKind:
		return "switch"
	}
	return "invalid"
}

// GateInstantiation is one gate instantiation item. The grammar
// reaches this node from many distant productions, so the builder
// returns it with only the kind set and the parser fills in the field
// matching the kind.
type GateInstantiation struct {
	Kind GateKind

	PullStrength *PrimitivePullStrength
	Pulls        *ordered.List[*PullGateInstance]

	NInput     *NInputGateInstances
	Enable     *EnableGateInstances
	NOutput    *NOutputGateInstances
	PassEnable *PassEnableSwitches
	Switches   *Switches
}

func (*GateInstantiation) node()                        {}
func (*GateInstantiation) statementKind() StatementKind { return StmtGateInstantiation }

// ----------------------------------------------------------------------------
// Constructors.

// SwitchGateD3 names a switch primitive with a three-value delay.
// Bidirectional pass switches take a two-value delay instead.
func (b *Builder) SwitchGateD3(kind SwitchType, delay *Delay3) (*SwitchGate, error) {
	if kind == SwitchTran || kind == SwitchRTran {
		return nil, b.contractf("switch gate: %s takes a two-value delay", kind)
	}
	sg := b.switchGates.New()
	sg.Kind = kind
	sg.Delay3 = delay
	return sg, nil
}

// SwitchGateD2 names a bidirectional pass switch with a two-value
// delay.
func (b *Builder) SwitchGateD2(kind SwitchType, delay *Delay2) (*SwitchGate, error) {
	if kind != SwitchTran && kind != SwitchRTran {
		return nil, b.contractf("switch gate: %s takes a three-value delay", kind)
	}
	sg := b.switchGates.New()
	sg.Kind = kind
	sg.Delay2 = delay
	return sg, nil
}

// PrimitivePullStrength builds the strength specification of a pull
// source.
func (b *Builder) PrimitivePullStrength(direction PullDirection, strength1, strength0 PrimitiveStrength) (*PrimitivePullStrength, error) {
	if direction > PullDown {
		return nil, b.contractf("pull strength: invalid direction %d", direction)
	}
	ps := b.primitivePulls.New()
	ps.Direction = direction
	ps.Strength1 = strength1
	ps.Strength0 = strength0
	return ps, nil
}

// PullStrength pairs the pull strengths for 1 and 0.
func (b *Builder) PullStrength(strength1, strength0 PrimitiveStrength) *PullStrength {
	ps := b.pullStrengths.New()
	ps.Strength1 = strength1
	ps.Strength0 = strength0
	return ps
}

// PullGateInstance builds one pull source. The name may be nil.
func (b *Builder) PullGateInstance(name *Identifier, output *Lvalue) (*PullGateInstance, error) {
	if output == nil {
		return nil, b.contractf("pull gate: nil output terminal")
	}
	pg := b.pullGates.New()
	pg.Name = name
	pg.Output = output
	return pg, nil
}

// PassSwitchInstance builds one bidirectional pass switch. The name
// may be nil.
func (b *Builder) PassSwitchInstance(name *Identifier, terminal1, terminal2 *Lvalue) (*PassSwitchInstance, error) {
	if terminal1 == nil || terminal2 == nil {
		return nil, b.contractf("pass switch: nil terminal")
	}
	ps := b.passSwitches.New()
	ps.Name = name
	ps.Terminal1 = terminal1
	ps.Terminal2 = terminal2
	return ps, nil
}

// NInputGateInstance builds one n-input gate. The name may be nil.
func (b *Builder) NInputGateInstance(name *Identifier, inputs *ordered.List[*Expression], output *Lvalue) (*NInputGateInstance, error) {
	if inputs == nil || inputs.Len() == 0 {
		return nil, b.contractf("n-input gate: no input terminals")
	}
	if output == nil {
		return nil, b.contractf("n-input gate: nil output terminal")
	}
	g := b.nInputGates.New()
	g.Name = name
	g.Inputs = inputs
	g.Output = output
	return g, nil
}

// NInputGateInstances groups n-input gates sharing type, delay and
// strength. Delay and strength may be nil.
func (b *Builder) NInputGateInstances(kind NInputGateType, delay *Delay3, strength *DriveStrength, instances *ordered.List[*NInputGateInstance]) (*NInputGateInstances, error) {
	if instances == nil || instances.Len() == 0 {
		return nil, b.contractf("n-input gates: no instances")
	}
	gs := b.nInputGateSets.New()
	gs.Kind = kind
	gs.Delay = delay
	gs.Strength = strength
	gs.Instances = instances
	return gs, nil
}

// EnableGateInstance builds one three-state driver. The name may be
// nil.
func (b *Builder) EnableGateInstance(name *Identifier, output *Lvalue, enable, input *Expression) (*EnableGateInstance, error) {
	if output == nil {
		return nil, b.contractf("enable gate: nil output terminal")
	}
	if enable == nil || input == nil {
		return nil, b.contractf("enable gate: nil input terminal")
	}
	g := b.enableGates.New()
	g.Name = name
	g.Output = output
	g.Enable = enable
	g.Input = input
	return g, nil
}

// EnableGateInstances groups three-state drivers sharing type, delay
// and strength. Delay and strength may be nil.
func (b *Builder) EnableGateInstances(kind EnableGateType, delay *Delay3, strength *DriveStrength, instances *ordered.List[*EnableGateInstance]) (*EnableGateInstances, error) {
	if instances == nil || instances.Len() == 0 {
		return nil, b.contractf("enable gates: no instances")
	}
	gs := b.enableGateSets.New()
	gs.Kind = kind
	gs.Delay = delay
	gs.Strength = strength
	gs.Instances = instances
	return gs, nil
}

// MosSwitchInstance builds one MOS transistor. The name may be nil.
func (b *Builder) MosSwitchInstance(name *Identifier, output *Lvalue, enable, input *Expression) (*MosSwitchInstance, error) {
	if output == nil {
		return nil, b.contractf("mos switch: nil output terminal")
	}
	if enable == nil || input == nil {
		return nil, b.contractf("mos switch: nil input terminal")
	}
	m := b.mosSwitches.New()
	m.Name = name
	m.Output = output
	m.Enable = enable
	m.Input = input
	return m, nil
}

// CmosSwitchInstance builds one complementary MOS pair. The name may
// be nil.
func (b *Builder) CmosSwitchInstance(name *Identifier, output *Lvalue, ncontrol, pcontrol, input *Expression) (*CmosSwitchInstance, error) {
	if output == nil {
		return nil, b.contractf("cmos switch: nil output terminal")
	}
	if ncontrol == nil || pcontrol == nil || input == nil {
		return nil, b.contractf("cmos switch: nil input terminal")
	}
	c := b.cmosSwitches.New()
	c.Name = name
	c.Output = output
	c.NControl = ncontrol
	c.PControl = pcontrol
	c.Input = input
	return c, nil
}

// PassEnableSwitch builds one gated pass switch. The name may be nil.
func (b *Builder) PassEnableSwitch(name *Identifier, terminal1, terminal2 *Lvalue, enable *Expression) (*PassEnableSwitch, error) {
	if terminal1 == nil || terminal2 == nil {
		return nil, b.contractf("pass enable switch: nil terminal")
	}
	if enable == nil {
		return nil, b.contractf("pass enable switch: nil enable terminal")
	}
	ps := b.passEnables.New()
	ps.Name = name
	ps.Terminal1 = terminal1
	ps.Terminal2 = terminal2
	ps.Enable = enable
	return ps, nil
}

// PassEnableSwitches groups gated pass switches sharing type and
// delay. The delay may be nil.
func (b *Builder) PassEnableSwitches(kind PassEnableSwitchType, delay *Delay2, switches *ordered.List[*PassEnableSwitch]) (*PassEnableSwitches, error) {
	if switches == nil || switches.Len() == 0 {
		return nil, b.contractf("pass enable switches: no instances")
	}
	ss := b.passEnableSets.New()
	ss.Kind = kind
	ss.Delay = delay
	ss.Switches = switches
	return ss, nil
}

// NOutputGateInstance builds one buf or not gate. The name may be nil.
func (b *Builder) NOutputGateInstance(name *Identifier, outputs *ordered.List[*Lvalue], input *Expression) (*NOutputGateInstance, error) {
	if outputs == nil || outputs.Len() == 0 {
		return nil, b.contractf("n-output gate: no output terminals")
	}
	if input == nil {
		return nil, b.contractf("n-output gate: nil input terminal")
	}
	g := b.nOutputGates.New()
	g.Name = name
	g.Outputs = outputs
	g.Input = input
	return g, nil
}

// NOutputGateInstances groups buf or not gates sharing type, delay and
// strength. Delay and strength may be nil.
func (b *Builder) NOutputGateInstances(kind NOutputGateType, delay *Delay2, strength *DriveStrength, instances *ordered.List[*NOutputGateInstance]) (*NOutputGateInstances, error) {
	if instances == nil || instances.Len() == 0 {
		return nil, b.contractf("n-output gates: no instances")
	}
	gs := b.nOutputGateSets.New()
	gs.Kind = kind
	gs.Delay = delay
	gs.Strength = strength
	gs.Instances = instances
	return gs, nil
}

// Switches groups switch instances sharing one switch gate.
func (b *Builder) Switches(gate *SwitchGate, instances *ordered.List[SwitchInstance]) (*Switches, error) {
	if gate == nil {
		return nil, b.contractf("switches: nil switch gate")
	}
	if instances == nil || instances.Len() == 0 {
		return nil, b.contractf("switches: no instances")
	}
	sw := b.switchSets.New()
	sw.Gate = gate
	sw.Instances = instances
	return sw, nil
}

// GateInstantiation starts a gate instantiation item of the given
// kind. The caller fills in the field matching the kind.
func (b *Builder) GateInstantiation(kind GateKind) (*GateInstantiation, error) {
	if kind > GateSwitchKind {
		return nil, b.contractf("gate instantiation: invalid kind %d", kind)
	}
	gi := b.gateInstas.New()
	gi.Kind = kind
	return gi, nil
}
