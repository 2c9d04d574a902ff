package ast

import "fmt"

// Variadic marks an Arity with no upper bound.
const Variadic = -1

// Arity is the accepted argument-count range of a procedure. Max == Variadic
// means "at least Min".
type Arity struct {
	Min int
	Max int
}

// Exactly accepts n arguments and no other count.
func Exactly(n int) Arity { return Arity{Min: n, Max: n} }

// AtLeast accepts n or more arguments.
func AtLeast(n int) Arity { return Arity{Min: n, Max: Variadic} }

// Between accepts any count in [min, max].
func Between(min, max int) Arity { return Arity{Min: min, Max: max} }

// FixedArity is the minimum number of required arguments.
func (a Arity) FixedArity() int { return a.Min }

// IsVariableArity reports whether arguments past FixedArity are collected.
func (a Arity) IsVariableArity() bool { return a.Max == Variadic }

// Accepts reports whether n arguments satisfy the arity.
func (a Arity) Accepts(n int) bool {
	if n < a.Min {
		return false
	}
	return a.Max == Variadic || n <= a.Max
}

func (a Arity) String() string {
	switch {
	case a.Max == Variadic:
		return fmt.Sprintf("at least %d", a.Min)
	case a.Min == a.Max:
		return fmt.Sprintf("%d", a.Min)
	default:
		return fmt.Sprintf("%d to %d", a.Min, a.Max)
	}
}

// Procedure is the payload of a procedure leaf. The runtime package supplies
// the native, compound and primitive implementations.
type Procedure interface {
	Name() string
	Arity() Arity
}

// ProcedureNode is a leaf carrying a procedure value.
type ProcedureNode struct {
	proc Procedure
}

// Proc wraps p as an expression node.
func Proc(p Procedure) *ProcedureNode {
	return &ProcedureNode{proc: p}
}

// Procedure returns the wrapped procedure.
func (p *ProcedureNode) Procedure() Procedure { return p.proc }

func (p *ProcedureNode) Kind() Kind { return KindProcedure }
func (*ProcedureNode) isNode()      {}

func (p *ProcedureNode) String() string {
	if p == nil || p.proc == nil {
		return "#<procedure>"
	}
	name := p.proc.Name()
	if name == "" {
		name = "anonymous"
	}
	return "#<procedure " + name + ">"
}
