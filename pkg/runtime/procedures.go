package runtime

import "github.com/btwooton/shaka-scheme/pkg/ast"

//-----------------------------------------------------------------------------
// Native procedures
//-----------------------------------------------------------------------------

// NativeFunc implements a built-in. It receives fully evaluated arguments and
// decides for itself how to consume a variable-length sequence.
type NativeFunc func(args []ast.Node) (ast.Node, error)

type NativeProcedure struct {
	name  string
	arity ast.Arity
	impl  NativeFunc
}

func NewNativeProcedure(name string, arity ast.Arity, impl NativeFunc) *NativeProcedure {
	return &NativeProcedure{name: name, arity: arity, impl: impl}
}

func (p *NativeProcedure) Name() string     { return p.name }
func (p *NativeProcedure) Arity() ast.Arity { return p.arity }

// Call invokes the wrapped function. Arity has already been checked by the caller.
func (p *NativeProcedure) Call(args []ast.Node) (ast.Node, error) {
	return p.impl(args)
}

//-----------------------------------------------------------------------------
// Compound procedures (closures)
//-----------------------------------------------------------------------------

// CompoundProcedure is a user-defined closure. It keeps a reference to the
// environment it was created in, not a copy.
type CompoundProcedure struct {
	name    string
	formals []ast.Symbol
	rest    ast.Symbol
	hasRest bool
	body    []ast.Node
	closure *Environment
}

// NewCompoundProcedure builds a fixed-arity closure over formals.
func NewCompoundProcedure(name string, formals []ast.Symbol, body []ast.Node, closure *Environment) *CompoundProcedure {
	return &CompoundProcedure{
		name:    name,
		formals: append([]ast.Symbol(nil), formals...),
		body:    append([]ast.Node(nil), body...),
		closure: closure,
	}
}

// NewVariadicProcedure builds a closure that binds every argument, as one
// list, to rest.
func NewVariadicProcedure(name string, rest ast.Symbol, body []ast.Node, closure *Environment) *CompoundProcedure {
	return &CompoundProcedure{
		name:    name,
		rest:    rest,
		hasRest: true,
		body:    append([]ast.Node(nil), body...),
		closure: closure,
	}
}

func (p *CompoundProcedure) Name() string { return p.name }

func (p *CompoundProcedure) Arity() ast.Arity {
	if p.hasRest {
		return ast.AtLeast(len(p.formals))
	}
	return ast.Exactly(len(p.formals))
}

// Formals returns the positional parameter symbols.
func (p *CompoundProcedure) Formals() []ast.Symbol {
	return append([]ast.Symbol(nil), p.formals...)
}

// Rest returns the symbol collecting surplus arguments, if any.
func (p *CompoundProcedure) Rest() (ast.Symbol, bool) {
	return p.rest, p.hasRest
}

// Body returns the body expressions in evaluation order.
func (p *CompoundProcedure) Body() []ast.Node {
	return append([]ast.Node(nil), p.body...)
}

// Closure returns the defining environment.
func (p *CompoundProcedure) Closure() *Environment {
	return p.closure
}

// Bind creates the application scope: a child of the closure environment with
// each formal bound positionally and the rest symbol bound to the surplus.
func (p *CompoundProcedure) Bind(args []ast.Node) (*Environment, error) {
	if !p.Arity().Accepts(len(args)) {
		return nil, ArityMismatchError(p.name, p.Arity(), len(args))
	}
	local := p.closure.Child()
	for idx, formal := range p.formals {
		local.SetValue(formal, args[idx])
	}
	if p.hasRest {
		local.SetValue(p.rest, ast.List(args[len(p.formals):]...))
	}
	return local, nil
}

//-----------------------------------------------------------------------------
// Primitive special forms
//-----------------------------------------------------------------------------

// PrimitiveContext is handed to a primitive special form. Operands arrive
// unevaluated; Eval evaluates any of them on demand.
type PrimitiveContext struct {
	Env      *Environment
	Operands []ast.Node
	Eval     func(node ast.Node, env *Environment) (ast.Node, error)
}

type PrimitiveFunc func(ctx *PrimitiveContext) (ast.Node, error)

// PrimitiveProcedure is bound in an environment like any procedure but
// controls the evaluation of its own operands.
type PrimitiveProcedure struct {
	name  string
	arity ast.Arity
	impl  PrimitiveFunc
}

func NewPrimitiveProcedure(name string, arity ast.Arity, impl PrimitiveFunc) *PrimitiveProcedure {
	return &PrimitiveProcedure{name: name, arity: arity, impl: impl}
}

func (p *PrimitiveProcedure) Name() string     { return p.name }
func (p *PrimitiveProcedure) Arity() ast.Arity { return p.arity }

func (p *PrimitiveProcedure) Call(ctx *PrimitiveContext) (ast.Node, error) {
	return p.impl(ctx)
}
