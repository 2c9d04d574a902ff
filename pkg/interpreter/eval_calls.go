package interpreter

import (
	"github.com/btwooton/shaka-scheme/pkg/ast"
	"github.com/btwooton/shaka-scheme/pkg/runtime"
)

// evaluateCall evaluates the operator, then the operands strictly left to
// right, then applies. Primitive special forms receive their operands
// unevaluated.
func (i *Interpreter) evaluateCall(form *ast.Form, env *runtime.Environment) (ast.Node, error) {
	operatorNode, ok := form.First()
	if !ok {
		return nil, runtime.MalformedFormError(form, "procedure call requires an operator")
	}
	operator, err := i.evaluate(operatorNode, env)
	if err != nil {
		return nil, err
	}
	procNode, ok := operator.(*ast.ProcedureNode)
	if !ok || procNode.Procedure() == nil {
		return nil, runtime.NotAProcedureError(operator)
	}
	operands := form.Rest()
	if prim, ok := procNode.Procedure().(*runtime.PrimitiveProcedure); ok {
		return i.applyPrimitive(prim, operands.Children(), env)
	}
	args := make([]ast.Node, 0, operands.Len())
	for idx := 0; idx < operands.Len(); idx++ {
		value, err := i.evaluate(operands.At(idx), env)
		if err != nil {
			return nil, err
		}
		args = append(args, value)
	}
	return i.Apply(procNode.Procedure(), args)
}

// Apply invokes proc with already evaluated arguments. A primitive special
// form receives each argument as a quoted operand.
func (i *Interpreter) Apply(proc ast.Procedure, args []ast.Node) (ast.Node, error) {
	switch p := proc.(type) {
	case *runtime.NativeProcedure:
		if !p.Arity().Accepts(len(args)) {
			return nil, runtime.ArityMismatchError(p.Name(), p.Arity(), len(args))
		}
		i.enterProcedure(p.Name(), len(args))
		defer i.popCallFrame()
		return p.Call(args)
	case *runtime.CompoundProcedure:
		local, err := p.Bind(args)
		if err != nil {
			return nil, err
		}
		i.enterProcedure(procedureLabel(p), len(args))
		defer i.popCallFrame()
		return i.evaluateBody(p.Body(), local)
	case *runtime.PrimitiveProcedure:
		operands := make([]ast.Node, len(args))
		for idx, arg := range args {
			operands[idx] = ast.Quote(arg)
		}
		return i.applyPrimitive(p, operands, i.global)
	default:
		var value ast.Node
		if proc != nil {
			value = ast.Proc(proc)
		}
		return nil, runtime.NotAProcedureError(value)
	}
}

func (i *Interpreter) applyPrimitive(prim *runtime.PrimitiveProcedure, operands []ast.Node, env *runtime.Environment) (ast.Node, error) {
	if !prim.Arity().Accepts(len(operands)) {
		return nil, runtime.ArityMismatchError(prim.Name(), prim.Arity(), len(operands))
	}
	i.enterProcedure(prim.Name(), len(operands))
	defer i.popCallFrame()
	return prim.Call(&runtime.PrimitiveContext{
		Env:      env,
		Operands: operands,
		Eval:     i.evaluate,
	})
}

// evaluateBody evaluates each expression in order and returns the last value.
func (i *Interpreter) evaluateBody(body []ast.Node, env *runtime.Environment) (ast.Node, error) {
	var result ast.Node = ast.Unspecific
	for _, expr := range body {
		value, err := i.evaluate(expr, env)
		if err != nil {
			return nil, err
		}
		result = value
	}
	return result, nil
}

func (i *Interpreter) enterProcedure(name string, argc int) {
	i.applications++
	i.pushCallFrame(name)
	i.logger.Debug("apply", "procedure", name, "args", argc, "depth", len(i.callStack))
}

func procedureLabel(p ast.Procedure) string {
	if name := p.Name(); name != "" {
		return name
	}
	return "<anonymous>"
}
