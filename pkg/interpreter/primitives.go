package interpreter

import (
	"github.com/btwooton/shaka-scheme/pkg/ast"
	"github.com/btwooton/shaka-scheme/pkg/runtime"
)

func primitiveProcedures() []*runtime.PrimitiveProcedure {
	return []*runtime.PrimitiveProcedure{
		runtime.NewPrimitiveProcedure("if", ast.Between(2, 3), primitiveIf),
		runtime.NewPrimitiveProcedure("set!", ast.Exactly(2), primitiveSet),
		runtime.NewPrimitiveProcedure("begin", ast.AtLeast(0), primitiveBegin),
	}
}

// primitiveIf evaluates the test and then only the selected branch.
func primitiveIf(ctx *runtime.PrimitiveContext) (ast.Node, error) {
	test, err := ctx.Eval(ctx.Operands[0], ctx.Env)
	if err != nil {
		return nil, err
	}
	if ast.IsTruthy(test) {
		return ctx.Eval(ctx.Operands[1], ctx.Env)
	}
	if len(ctx.Operands) == 3 {
		return ctx.Eval(ctx.Operands[2], ctx.Env)
	}
	return ast.Unspecific, nil
}

// primitiveSet rebinds an existing symbol in the scope that defines it.
func primitiveSet(ctx *runtime.PrimitiveContext) (ast.Node, error) {
	sym, ok := setTarget(ctx.Operands[0])
	if !ok {
		return nil, runtime.MalformedFormError(ast.CallSym("set!", ctx.Operands...), "set! target must be a symbol")
	}
	value, err := ctx.Eval(ctx.Operands[1], ctx.Env)
	if err != nil {
		return nil, err
	}
	if err := ctx.Env.Assign(sym, value); err != nil {
		return nil, err
	}
	return ast.Unspecific, nil
}

// setTarget accepts a bare symbol, or a quoted one as produced when the
// host applies set! to evaluated arguments.
func setTarget(operand ast.Node) (ast.Symbol, bool) {
	if form, ok := operand.(*ast.Form); ok && form.Tag() == ast.TagQuote && form.Len() == 1 {
		operand = form.At(0)
	}
	sym, ok := operand.(ast.Symbol)
	return sym, ok
}

func primitiveBegin(ctx *runtime.PrimitiveContext) (ast.Node, error) {
	var result ast.Node = ast.Unspecific
	for _, operand := range ctx.Operands {
		value, err := ctx.Eval(operand, ctx.Env)
		if err != nil {
			return nil, err
		}
		result = value
	}
	return result, nil
}
