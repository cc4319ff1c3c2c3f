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

// EventExpressionKind discriminates the event expression forms.
type EventExpressionKind uint

// Event expression kinds.
const (
	EventPosedge EventExpressionKind = iota
	EventNegedge
	EventExpr
	EventSequence
)

// String returns a string representation of the kind.
func (k EventExpressionKind) String() string {
	switch k {
	case EventPosedge:
		return "posedge"
	case EventNegedge:
		return "negedge"
	case EventExpr:
		return "expression"
	case EventSequence:
		return "sequence"
	}
	return "invalid"
}

// EventExpression is one trigger of a sensitivity list, or a sequence
// of triggers joined with "or". Expression is set for the three
// single-trigger kinds, Sequence for EventSequence.
type EventExpression struct {
	Kind       EventExpressionKind
	Expression *Expression
	Sequence   *ordered.List[*EventExpression]
}

func (*EventExpression) node() {}

// EventControlKind discriminates the @ control forms.
type EventControlKind uint

// Event control kinds.
const (
	EventControlNone EventControlKind = iota
	EventControlAny
	EventControlTriggers
)

// String returns a string representation of the kind.
func (k EventControlKind) String() string {
	switch k {
	case EventControlNone:
		return "none"
	case EventControlAny:
		return "any"
	case EventControlTriggers:
		return "triggers"
	}
	return "invalid"
}

// EventControl is an @ specifier. Triggers is set only for
// EventControlTriggers; @* carries no expression.
type EventControl struct {
	Kind     EventControlKind
	Triggers *EventExpression
}

func (*EventControl) node() {}

// DelayValueKind discriminates what a delay value is written as.
type DelayValueKind uint

// Delay value kinds.
const (
	DelayValueNumber DelayValueKind = iota
	DelayValueIdentifier
	DelayValueMinTypMax
)

// String returns a string representation of the kind.
func (k DelayValueKind) String() string {
	switch k {
	case DelayValueNumber:
		return "number"
	case DelayValueIdentifier:
		return "identifier"
	case DelayValueMinTypMax:
		return "mintypmax"
	}
	return "invalid"
}

// DelayValue is a single delay operand. One of Number, ID and
// MinTypMax is set, according to Kind.
type DelayValue struct {
	Kind      DelayValueKind
	Number    *Number
	ID        *Identifier
	MinTypMax *Expression
}

func (*DelayValue) node() {}

// Delay2 is a rise/fall delay pair. Fall may be nil when only one
// value is written.
type Delay2 struct {
	Rise *DelayValue
	Fall *DelayValue
}

func (*Delay2) node() {}

// Delay3 is a rise/fall/turn-off delay triple. Fall and Off may be
// nil when fewer values are written.
type Delay3 struct {
	Rise *DelayValue
	Fall *DelayValue
	Off  *DelayValue
}

func (*Delay3) node() {}

// DelayControlKind discriminates the # control forms.
type DelayControlKind uint

// Delay control kinds.
const (
	DelayControlValue DelayControlKind = iota
	DelayControlMinTypMax
)

// String returns a string representation of the kind.
func (k DelayControlKind) String() string {
	switch k {
	case DelayControlValue:
		return "value"
	case DelayControlMinTypMax:
		return "mintypmax"
	}
	return "invalid"
}

// DelayControl is a # specifier. Value is set for DelayControlValue,
// MinTypMax for DelayControlMinTypMax.
type DelayControl struct {
	Kind      DelayControlKind
	Value     *DelayValue
	MinTypMax *Expression
}

func (*DelayControl) node() {}

// TimingControlKind discriminates the timing control statement forms.
type TimingControlKind uint

// Timing control kinds.
const (
	TimingControlDelay TimingControlKind = iota
	TimingControlEvent
	TimingControlEventRepeat
)

// String returns a string representation of the kind.
func (k TimingControlKind) String() string {
	switch k {
	case TimingControlDelay:
		return "delay"
	case TimingControlEvent:
		return "event"
	case TimingControlEventRepeat:
		return "event repeat"
	}
	return "invalid"
}

// TimingControlStatement attaches a delay or event control to a
// statement. Body may be nil for an intra-assignment control. Repeat
// is set only for TimingControlEventRepeat.
type TimingControlStatement struct {
	Kind   TimingControlKind
	Delay  *DelayControl
	Event  *EventControl
	Repeat *Expression
	Body   *Statement
}

func (*TimingControlStatement) node()                        {}
func (*TimingControlStatement) statementKind() StatementKind { return StmtTimingControl }

// ----------------------------------------------------------------------------
// Constructors.

// EventExpression builds a single trigger. The edge selects the kind;
// a plain expression trigger uses EdgeAny.
func (b *Builder) EventExpression(edge Edge, expr *Expression) (*EventExpression, error) {
	if expr == nil {
		return nil, b.contractf("event expression: nil expression")
	}
	var kind EventExpressionKind
	switch edge {
	case EdgePos:
		kind = EventPosedge
	case EdgeNeg:
		kind = EventNegedge
	case EdgeAny:
		kind = EventExpr
	default:
		return nil, b.contractf("event expression: no trigger edge")
	}
	ee := b.eventExpressions.New()
	ee.Kind = kind
	ee.Expression = expr
	return ee, nil
}

// EventSequence joins two event expressions with "or". The grammar is
// left recursive: the right trigger is stored first, then the left.
func (b *Builder) EventSequence(left, right *EventExpression) (*EventExpression, error) {
	if left == nil || right == nil {
		return nil, b.contractf("event sequence: nil trigger")
	}
	ee := b.eventExpressions.New()
	ee.Kind = EventSequence
	ee.Sequence = ordered.NewList[*EventExpression]()
	ee.Sequence.Append(right)
	ee.Sequence.Append(left)
	return ee, nil
}

// EventControl builds an @ specifier. Only EventControlTriggers
// carries an event expression.
func (b *Builder) EventControl(kind EventControlKind, triggers *EventExpression) (*EventControl, error) {
	switch kind {
	case EventControlTriggers:
		if triggers == nil {
			return nil, b.contractf("event control: triggers kind with no triggers")
		}
	case EventControlNone, EventControlAny:
		if triggers != nil {
			return nil, b.contractf("event control: %s kind with triggers", kind)
		}
	default:
		return nil, b.contractf("event control: invalid kind %d", kind)
	}
	ec := b.eventControls.New()
	ec.Kind = kind
	ec.Triggers = triggers
	return ec, nil
}

// DelayValueNumber builds a delay operand from a number literal.
func (b *Builder) DelayValueNumber(n *Number) (*DelayValue, error) {
	if n == nil {
		return nil, b.contractf("delay value: nil number")
	}
	dv := b.delayValues.New()
	dv.Kind = DelayValueNumber
	dv.Number = n
	return dv, nil
}

// DelayValueIdentifier builds a delay operand from an identifier.
func (b *Builder) DelayValueIdentifier(id *Identifier) (*DelayValue, error) {
	if id == nil {
		return nil, b.contractf("delay value: nil identifier")
	}
	dv := b.delayValues.New()
	dv.Kind = DelayValueIdentifier
	dv.ID = id
	return dv, nil
}

// DelayValueMinTypMax builds a delay operand from a min:typ:max
// expression.
func (b *Builder) DelayValueMinTypMax(expr *Expression) (*DelayValue, error) {
	if expr == nil {
		return nil, b.contractf("delay value: nil expression")
	}
	dv := b.delayValues.New()
	dv.Kind = DelayValueMinTypMax
	dv.MinTypMax = expr
	return dv, nil
}

// Delay2 builds a rise/fall delay pair. Fall may be nil.
func (b *Builder) Delay2(rise, fall *DelayValue) (*Delay2, error) {
	if rise == nil {
		return nil, b.contractf("delay2: nil rise value")
	}
	d := b.delay2s.New()
	d.Rise = rise
	d.Fall = fall
	return d, nil
}

// Delay3 builds a rise/fall/turn-off delay triple. Fall and off may be
// nil.
func (b *Builder) Delay3(rise, fall, off *DelayValue) (*Delay3, error) {
	if rise == nil {
		return nil, b.contractf("delay3: nil rise value")
	}
	if fall == nil && off != nil {
		return nil, b.contractf("delay3: turn-off value without fall value")
	}
	d := b.delay3s.New()
	d.Rise = rise
	d.Fall = fall
	d.Off = off
	return d, nil
}

// DelayControlValue builds a # specifier from a single delay value.
func (b *Builder) DelayControlValue(v *DelayValue) (*DelayControl, error) {
	if v == nil {
		return nil, b.contractf("delay control: nil value")
	}
	dc := b.delayControls.New()
	dc.Kind = DelayControlValue
	dc.Value = v
	return dc, nil
}

// DelayControlMinTypMax builds a # specifier from a min:typ:max
// expression.
func (b *Builder) DelayControlMinTypMax(expr *Expression) (*DelayControl, error) {
	if expr == nil {
		return nil, b.contractf("delay control: nil expression")
	}
	dc := b.delayControls.New()
	dc.Kind = DelayControlMinTypMax
	dc.MinTypMax = expr
	return dc, nil
}

// TimingControlDelay attaches a delay control to a statement.
func (b *Builder) TimingControlDelay(delay *DelayControl, body *Statement) (*TimingControlStatement, error) {
	if delay == nil {
		return nil, b.contractf("timing control: nil delay control")
	}
	tc := b.timingControls.New()
	tc.Kind = TimingControlDelay
	tc.Delay = delay
	tc.Body = body
	return tc, nil
}

// TimingControlEvent attaches an event control to a statement, with
// an optional repetition count. Repeat must be set exactly for
// TimingControlEventRepeat.
func (b *Builder) TimingControlEvent(kind TimingControlKind, repeat *Expression, event *EventControl, body *Statement) (*TimingControlStatement, error) {
	switch kind {
	case TimingControlEvent:
		if repeat != nil {
			return nil, b.contractf("timing control: event kind with repeat count")
		}
	case TimingControlEventRepeat:
		if repeat == nil {
			return nil, b.contractf("timing control: event repeat kind without repeat count")
		}
	default:
		return nil, b.contractf("timing control: %s kind built as event control", kind)
	}
	if event == nil {
		return nil, b.contractf("timing control: nil event control")
	}
	tc := b.timingControls.New()
	tc.Kind = kind
	tc.Event = event
	tc.Repeat = repeat
	tc.Body = body
	return tc, nil
}
