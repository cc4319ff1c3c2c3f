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

// StatementKind discriminates the statement payloads.
type StatementKind uint

// Statement kinds.
const (
	StmtAssignment StatementKind = iota
	StmtCase
	StmtConditional
	StmtLoop
	StmtBlock
	StmtWait
	StmtDisable
	StmtTaskEnable
	StmtTimingControl
	StmtModuleInstantiation
	StmtGateInstantiation
	StmtUDPInstantiation
	StmtParameterDeclaration
	StmtPortDeclaration
	StmtTypeDeclaration
	StmtPathDeclaration
	StmtGenerateBlock
)

// String returns a string representation of the kind.
func (k StatementKind) String() string {
	switch k {
	case StmtAssignment:
		return "assignment"
	case StmtCase:
		return "case"
	case StmtConditional:
		return "conditional"
	case StmtLoop:
		return "loop"
	case StmtBlock:
		return "block"
	case StmtWait:
		return "wait"
	case StmtDisable:
		return "disable"
	case StmtTaskEnable:
		return "task enable"
	case StmtTimingControl:
		return "timing control"
	case StmtModuleInstantiation:
		return "module instantiation"
	case StmtGateInstantiation:
		return "gate instantiation"
	case StmtUDPInstantiation:
		return "udp instantiation"
	case StmtParameterDeclaration:
		return "parameter declaration"
	case StmtPortDeclaration:
		return "port declaration"
	case StmtTypeDeclaration:
		return "type declaration"
	case StmtPathDeclaration:
		return "path declaration"
	case StmtGenerateBlock:
		return "generate block"
	}
	return "invalid"
}

// StatementPayload is a construct usable in statement position.
// Each payload reports the one kind tag it may be stored under.
type StatementPayload interface {
	Node
	statementKind() StatementKind
}

// Statement wraps a payload with the context it appears in.
type Statement struct {
	Kind       StatementKind
	Attributes *AttributeList
	InFunction bool
	InGenerate bool
	Payload    StatementPayload
}

func (*Statement) node() {}

// ----------------------------------------------------------------------------
// Assignments.

// AssignmentKind discriminates the assignment forms.
type AssignmentKind uint

// Assignment kinds.
const (
	AssignBlocking AssignmentKind = iota
	AssignNonblocking
	AssignContinuous
	AssignHybrid
)

// String returns a string representation of the kind.
func (k AssignmentKind) String() string {
	switch k {
	case AssignBlocking:
		return "blocking"
	case AssignNonblocking:
		return "nonblocking"
	case AssignContinuous:
		return "continuous"
	case AssignHybrid:
		return "hybrid"
	}
	return "invalid"
}

// HybridAssignmentKind is the operator of a compound assignment.
type HybridAssignmentKind uint

// Hybrid assignment kinds.
const (
	HybridNone HybridAssignmentKind = iota
	HybridAdd
	HybridSub
	HybridMul
	HybridDiv
	HybridMod
	HybridAnd
	HybridOr
	HybridXor
	HybridShiftLeft
	HybridShiftRight
	HybridIncrement
	HybridDecrement
)

// SingleAssignment is one target = source pair, without any
// surrounding timing or strength information.
type SingleAssignment struct {
	LValue     *Lvalue
	Expression *Expression
}

func (*SingleAssignment) node() {}

// Assignment is any assignment form. The fields used depend on Kind:
//
//	AssignBlocking     LValue, Expression, Timing
//	AssignNonblocking  LValue, Expression, Timing
//	AssignContinuous   Assignments, Strength, Delay
//	AssignHybrid       HybridKind, then Single (compound operators)
//	                   or LValue (increment and decrement)
type Assignment struct {
	Kind AssignmentKind

	LValue     *Lvalue
	Expression *Expression
	Timing     *TimingControlStatement

	Assignments *ordered.List[*SingleAssignment]
	Strength    *DriveStrength
	Delay       *Delay3

	HybridKind HybridAssignmentKind
	Single     *SingleAssignment
}

func (*Assignment) node()                        {}
func (*Assignment) statementKind() StatementKind { return StmtAssignment }

// ----------------------------------------------------------------------------
// Control flow.

// LoopKind discriminates the loop forms.
type LoopKind uint

// Loop kinds.
const (
	LoopForever LoopKind = iota
	LoopFor
	LoopWhile
	LoopRepeat
)

// String returns a string representation of the kind.
func (k LoopKind) String() string {
	switch k {
	case LoopForever:
		return "forever"
	case LoopFor:
		return "for"
	case LoopWhile:
		return "while"
	case LoopRepeat:
		return "repeat"
	}
	return "invalid"
}

// LoopStatement is any loop form. Initial and Modify are set for for
// loops only. Condition holds the continue condition, or the iteration
// count of a repeat loop. It is nil for forever loops.
type LoopStatement struct {
	Kind      LoopKind
	Body      *Statement
	Initial   *SingleAssignment
	Condition *Expression
	Modify    *SingleAssignment
}

func (*LoopStatement) node()                        {}
func (*LoopStatement) statementKind() StatementKind { return StmtLoop }

// CaseKind distinguishes case, casex and casez statements.
type CaseKind uint

// Case kinds.
const (
	CasePlain CaseKind = iota
	CaseX
	CaseZ
)

// String returns a string representation of the kind.
func (k CaseKind) String() string {
	switch k {
	case CasePlain:
		return "case"
	case CaseX:
		return "casex"
	case CaseZ:
		return "casez"
	}
	return "invalid"
}

// CaseItem is one arm of a case statement. An item with no conditions
// is the default arm.
type CaseItem struct {
	Conditions *ordered.List[*Expression]
	Body       *Statement
	IsDefault  bool
}

func (*CaseItem) node() {}

// CaseStatement selects one arm by comparing Condition against each
// item's conditions. DefaultItem caches the first default arm, nil if
// there is none.
type CaseStatement struct {
	Kind        CaseKind
	Condition   *Expression
	Items       *ordered.List[*CaseItem]
	DefaultItem *CaseItem
}

func (*CaseStatement) node()                        {}
func (*CaseStatement) statementKind() StatementKind { return StmtCase }

// ConditionalStatement is one condition and its body inside an
// if-else chain.
type ConditionalStatement struct {
	Condition *Expression
	Body      *Statement
}

func (*ConditionalStatement) node() {}

// IfElse is an if / else if / else chain. Conditionals are tried in
// order; Else runs when none of them holds. Else may be nil.
type IfElse struct {
	Conditionals *ordered.List[*ConditionalStatement]
	Else         *Statement
}

func (*IfElse) node()                        {}
func (*IfElse) statementKind() StatementKind { return StmtConditional }

// Extend appends further else-if arms after the existing ones.
// Arms added first keep priority. A nil list is a no-op.
func (ie *IfElse) Extend(arms *ordered.List[*ConditionalStatement]) {
	ie.Conditionals.Concat(arms)
}

// ----------------------------------------------------------------------------
// Task control.

// WaitStatement blocks until Condition evaluates true, then runs Body.
type WaitStatement struct {
	Condition *Expression
	Body      *Statement
}

func (*WaitStatement) node()                        {}
func (*WaitStatement) statementKind() StatementKind { return StmtWait }

// DisableStatement terminates the named task or block.
type DisableStatement struct {
	ID *Identifier
}

func (*DisableStatement) node()                        {}
func (*DisableStatement) statementKind() StatementKind { return StmtDisable }

// TaskEnableStatement invokes a task in statement position.
type TaskEnableStatement struct {
	ID        *Identifier
	System    bool
	Arguments *ordered.List[*Expression]
}

func (*TaskEnableStatement) node()                        {}
func (*TaskEnableStatement) statementKind() StatementKind { return StmtTaskEnable }

// ----------------------------------------------------------------------------
// Blocks.

// BlockKind distinguishes begin/end from fork/join blocks.
type BlockKind uint

// Block kinds.
const (
	BlockSequential BlockKind = iota
	BlockParallel
)

// String returns a string representation of the kind.
func (k BlockKind) String() string {
	switch k {
	case BlockSequential:
		return "sequential"
	case BlockParallel:
		return "parallel"
	}
	return "invalid"
}

// StatementBlock is a begin/end or fork/join grouping. Label may be
// nil for an unnamed block.
type StatementBlock struct {
	Kind         BlockKind
	Label        *Identifier
	Declarations *ordered.List[Node]
	Statements   *ordered.List[*Statement]
}

func (*StatementBlock) node()                        {}
func (*StatementBlock) statementKind() StatementKind { return StmtBlock }

// GenerateBlock groups generate items under an optional label.
type GenerateBlock struct {
	ID    *Identifier
	Items *ordered.List[*Statement]
}

func (*GenerateBlock) node()                        {}
func (*GenerateBlock) statementKind() StatementKind { return StmtGenerateBlock }

var (
	_ StatementPayload = (*Assignment)(nil)
	_ StatementPayload = (*CaseStatement)(nil)
	_ StatementPayload = (*IfElse)(nil)
	_ StatementPayload = (*LoopStatement)(nil)
	_ StatementPayload = (*StatementBlock)(nil)
	_ StatementPayload = (*WaitStatement)(nil)
	_ StatementPayload = (*DisableStatement)(nil)
	_ StatementPayload = (*TaskEnableStatement)(nil)
	_ StatementPayload = (*TimingControlStatement)(nil)
	_ StatementPayload = (*ModuleInstantiation)(nil)
	_ StatementPayload = (*GateInstantiation)(nil)
	_ StatementPayload = (*UDPInstantiation)(nil)
	_ StatementPayload = (*ParameterDeclarations)(nil)
	_ StatementPayload = (*PortDeclaration)(nil)
	_ StatementPayload = (*TypeDeclaration)(nil)
	_ StatementPayload = (*PathDeclaration)(nil)
	_ StatementPayload = (*GenerateBlock)(nil)
)

// ----------------------------------------------------------------------------
// Constructors.

// Statement wraps a payload for statement position. The payload must
// match the kind tag.
func (b *Builder) Statement(kind StatementKind, attrs *AttributeList, inFunction bool, payload StatementPayload) (*Statement, error) {
	if payload == nil {
		return nil, b.contractf("statement: nil payload")
	}
	if got := payload.statementKind(); got != kind {
		return nil, b.contractf("statement: %s payload tagged %s", got, kind)
	}
	s := b.statements.New()
	s.Kind = kind
	s.Attributes = attrs
	s.InFunction = inFunction
	s.Payload = payload
	return s, nil
}

// GenerateItem wraps a payload appearing inside a generate construct.
func (b *Builder) GenerateItem(kind StatementKind, payload StatementPayload) (*Statement, error) {
	s, err := b.Statement(kind, nil, false, payload)
	if err != nil {
		return nil, err
	}
	s.InGenerate = true
	return s, nil
}

// GenerateBlock groups generate items. The label may be nil.
func (b *Builder) GenerateBlock(id *Identifier, items *ordered.List[*Statement]) (*GenerateBlock, error) {
	if items == nil {
		return nil, b.contractf("generate block: nil item list")
	}
	g := b.generateBlocks.New()
	g.ID = id
	g.Items = items
	return g, nil
}

// SingleAssignment builds one target = source pair.
func (b *Builder) SingleAssignment(lv *Lvalue, expr *Expression) (*SingleAssignment, error) {
	if lv == nil {
		return nil, b.contractf("single assignment: nil lvalue")
	}
	if expr == nil {
		return nil, b.contractf("single assignment: nil expression")
	}
	a := b.singleAssigns.New()
	a.LValue = lv
	a.Expression = expr
	return a, nil
}

// BlockingAssignment builds lv = expr with an optional delay or event
// control.
func (b *Builder) BlockingAssignment(lv *Lvalue, expr *Expression, timing *TimingControlStatement) (*Assignment, error) {
	return b.proceduralAssignment(AssignBlocking, lv, expr, timing)
}

// NonblockingAssignment builds lv <= expr with an optional delay or
// event control.
func (b *Builder) NonblockingAssignment(lv *Lvalue, expr *Expression, timing *TimingControlStatement) (*Assignment, error) {
	return b.proceduralAssignment(AssignNonblocking, lv, expr, timing)
}

func (b *Builder) proceduralAssignment(kind AssignmentKind, lv *Lvalue, expr *Expression, timing *TimingControlStatement) (*Assignment, error) {
	if lv == nil {
		return nil, b.contractf("%s assignment: nil lvalue", kind)
	}
	if expr == nil {
		return nil, b.contractf("%s assignment: nil expression", kind)
	}
	a := b.assignments.New()
	a.Kind = kind
	a.LValue = lv
	a.Expression = expr
	a.Timing = timing
	return a, nil
}

// ContinuousAssignment builds an assign construct driving one or more
// targets. Strength and delay may be nil.
func (b *Builder) ContinuousAssignment(assigns *ordered.List[*SingleAssignment], strength *DriveStrength, delay *Delay3) (*Assignment, error) {
	if assigns == nil || assigns.Len() == 0 {
		return nil, b.contractf("continuous assignment: no assignments")
	}
	a := b.assignments.New()
	a.Kind = AssignContinuous
	a.Assignments = assigns
	a.Strength = strength
	a.Delay = delay
	return a, nil
}

// HybridAssignment builds a compound assignment such as lv += expr.
func (b *Builder) HybridAssignment(kind HybridAssignmentKind, single *SingleAssignment) (*Assignment, error) {
	switch kind {
	case HybridNone, HybridIncrement, HybridDecrement:
		return nil, b.contractf("hybrid assignment: kind %d takes no source expression", kind)
	}
	if single == nil {
		return nil, b.contractf("hybrid assignment: nil assignment")
	}
	a := b.assignments.New()
	a.Kind = AssignHybrid
	a.HybridKind = kind
	a.Single = single
	return a, nil
}

// HybridLvalueAssignment builds lv++ or lv--.
func (b *Builder) HybridLvalueAssignment(kind HybridAssignmentKind, lv *Lvalue) (*Assignment, error) {
	if kind != HybridIncrement && kind != HybridDecrement {
		return nil, b.contractf("hybrid assignment: kind %d requires a source expression", kind)
	}
	if lv == nil {
		return nil, b.contractf("hybrid assignment: nil lvalue")
	}
	a := b.assignments.New()
	a.Kind = AssignHybrid
	a.HybridKind = kind
	a.LValue = lv
	return a, nil
}

// ForeverLoop builds forever body.
func (b *Builder) ForeverLoop(body *Statement) (*LoopStatement, error) {
	if body == nil {
		return nil, b.contractf("forever loop: nil body")
	}
	l := b.loops.New()
	l.Kind = LoopForever
	l.Body = body
	return l, nil
}

// ForLoop builds for (initial; condition; modify) body.
func (b *Builder) ForLoop(initial *SingleAssignment, condition *Expression, modify *SingleAssignment, body *Statement) (*LoopStatement, error) {
	if initial == nil || condition == nil || modify == nil {
		return nil, b.contractf("for loop: nil clause")
	}
	if body == nil {
		return nil, b.contractf("for loop: nil body")
	}
	l := b.loops.New()
	l.Kind = LoopFor
	l.Initial = initial
	l.Condition = condition
	l.Modify = modify
	l.Body = body
	return l, nil
}

// WhileLoop builds while (condition) body.
func (b *Builder) WhileLoop(condition *Expression, body *Statement) (*LoopStatement, error) {
	return b.conditionLoop(LoopWhile, condition, body)
}

// RepeatLoop builds repeat (count) body.
func (b *Builder) RepeatLoop(count *Expression, body *Statement) (*LoopStatement, error) {
	return b.conditionLoop(LoopRepeat, count, body)
}

func (b *Builder) conditionLoop(kind LoopKind, condition *Expression, body *Statement) (*LoopStatement, error) {
	if condition == nil {
		return nil, b.contractf("%s loop: nil condition", kind)
	}
	if body == nil {
		return nil, b.contractf("%s loop: nil body", kind)
	}
	l := b.loops.New()
	l.Kind = kind
	l.Condition = condition
	l.Body = body
	return l, nil
}

// CaseItem builds one case arm. A nil or empty condition list makes
// the arm the default. The body may be nil for an empty arm.
func (b *Builder) CaseItem(conditions *ordered.List[*Expression], body *Statement) *CaseItem {
	ci := b.caseItems.New()
	if conditions == nil {
		conditions = ordered.NewList[*Expression]()
	}
	ci.Conditions = conditions
	ci.Body = body
	ci.IsDefault = conditions.Len() == 0
	return ci
}

// CaseStatement builds a case, casex or casez statement. If several
// arms are defaults the first one wins.
func (b *Builder) CaseStatement(kind CaseKind, condition *Expression, items *ordered.List[*CaseItem]) (*CaseStatement, error) {
	if condition == nil {
		return nil, b.contractf("case statement: nil condition")
	}
	if items == nil || items.Len() == 0 {
		return nil, b.contractf("case statement: no case items")
	}
	cs := b.cases.New()
	cs.Kind = kind
	cs.Condition = condition
	cs.Items = items
	for item := range items.Iter() {
		if item.IsDefault {
			cs.DefaultItem = item
			break
		}
	}
	return cs, nil
}

// ConditionalStatement builds one arm of an if-else chain.
func (b *Builder) ConditionalStatement(condition *Expression, body *Statement) (*ConditionalStatement, error) {
	if condition == nil {
		return nil, b.contractf("conditional statement: nil condition")
	}
	cs := b.conditionals.New()
	cs.Condition = condition
	cs.Body = body
	return cs, nil
}

// IfElse starts an if-else chain from its first arm. The else body may
// be nil. Further arms are added with Extend.
func (b *Builder) IfElse(first *ConditionalStatement, elseBody *Statement) (*IfElse, error) {
	if first == nil {
		return nil, b.contractf("if else: nil first conditional")
	}
	ie := b.ifElses.New()
	ie.Conditionals = ordered.NewList[*ConditionalStatement]()
	ie.Conditionals.Append(first)
	ie.Else = elseBody
	return ie, nil
}

// WaitStatement builds wait (condition) body.
func (b *Builder) WaitStatement(condition *Expression, body *Statement) (*WaitStatement, error) {
	if condition == nil {
		return nil, b.contractf("wait statement: nil condition")
	}
	w := b.waits.New()
	w.Condition = condition
	w.Body = body
	return w, nil
}

// DisableStatement builds disable id.
func (b *Builder) DisableStatement(id *Identifier) (*DisableStatement, error) {
	if id == nil {
		return nil, b.contractf("disable statement: nil identifier")
	}
	d := b.disables.New()
	d.ID = id
	return d, nil
}

// TaskEnableStatement builds a task invocation. A nil argument list
// stands for an empty one.
func (b *Builder) TaskEnableStatement(id *Identifier, system bool, args *ordered.List[*Expression]) (*TaskEnableStatement, error) {
	if id == nil {
		return nil, b.contractf("task enable: nil identifier")
	}
	if args == nil {
		args = ordered.NewList[*Expression]()
	}
	te := b.taskEnables.New()
	te.ID = id
	te.System = system
	te.Arguments = args
	return te, nil
}

// StatementBlock builds a begin/end or fork/join block. Label,
// declarations and statements may all be nil.
func (b *Builder) StatementBlock(kind BlockKind, label *Identifier, decls *ordered.List[Node], stmts *ordered.List[*Statement]) *StatementBlock {
	if decls == nil {
		decls = ordered.NewList[Node]()
	}
	if stmts == nil {
		stmts = ordered.NewList[*Statement]()
	}
	sb := b.blocks.New()
	sb.Kind = kind
	sb.Label = label
	sb.Declarations = decls
	sb.Statements = stmts
	return sb
}
