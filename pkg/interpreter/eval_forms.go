package interpreter

import (
	"github.com/btwooton/shaka-scheme/pkg/ast"
	"github.com/btwooton/shaka-scheme/pkg/runtime"
)

// evaluateQuote returns its datum untouched.
func (i *Interpreter) evaluateQuote(form *ast.Form) (ast.Node, error) {
	if form.Len() != 1 {
		return nil, runtime.MalformedFormError(form, "quote expects exactly one datum, got %d", form.Len())
	}
	return form.At(0), nil
}

// evaluateDefine binds a value in env itself. Besides (define name expr) it
// accepts the procedure shorthand (define (name formals...) body...).
func (i *Interpreter) evaluateDefine(form *ast.Form, env *runtime.Environment) (ast.Node, error) {
	target, ok := form.First()
	if !ok {
		return nil, runtime.MalformedFormError(form, "define expects a target symbol")
	}
	switch t := target.(type) {
	case ast.Symbol:
		if form.Len() != 2 {
			return nil, runtime.MalformedFormError(form, "define expects a symbol and one value expression, got %d operands", form.Len())
		}
		value, err := i.evaluateNamed(form.At(1), env, t.Name())
		if err != nil {
			return nil, err
		}
		env.SetValue(t, value)
		return ast.Unspecific, nil
	case *ast.Form:
		name, ok := t.First()
		sym, isSym := name.(ast.Symbol)
		if !ok || !isSym {
			return nil, runtime.MalformedFormError(form, "define shorthand expects a procedure name")
		}
		body := form.Rest()
		if body.IsEmpty() {
			return nil, runtime.MalformedFormError(form, "define of '%s' is missing a body", sym.Name())
		}
		proc, err := makeClosure(form, sym.Name(), t.Rest(), body.Children(), env)
		if err != nil {
			return nil, err
		}
		env.SetValue(sym, proc)
		return ast.Unspecific, nil
	default:
		return nil, runtime.MalformedFormError(form, "define target must be a symbol, got %s", target.Kind())
	}
}

// evaluateNamed evaluates expr, naming the closure when expr is a lambda.
func (i *Interpreter) evaluateNamed(expr ast.Node, env *runtime.Environment, name string) (ast.Node, error) {
	if form, ok := expr.(*ast.Form); ok {
		switch {
		case form.Tag() == ast.TagLambda:
			return i.evaluateLambda(form, env, name)
		case form.Tag() == ast.TagList:
			if tag, ok := keywordTag(firstOrNil(form)); ok && tag == ast.TagLambda {
				return i.evaluateLambda(form.Rest().WithTag(ast.TagLambda), env, name)
			}
		}
	}
	return i.evaluate(expr, env)
}

func firstOrNil(form *ast.Form) ast.Node {
	head, _ := form.First()
	return head
}

// evaluateLambda captures env by reference in a new closure.
func (i *Interpreter) evaluateLambda(form *ast.Form, env *runtime.Environment, name string) (ast.Node, error) {
	if form.Len() < 2 {
		return nil, runtime.MalformedFormError(form, "lambda expects formals and at least one body expression")
	}
	return makeClosure(form, name, form.At(0), form.Rest().Children(), env)
}

// makeClosure accepts either a list of symbols (fixed arity) or a single
// symbol (every argument collected into one list).
func makeClosure(form *ast.Form, name string, formals ast.Node, body []ast.Node, env *runtime.Environment) (ast.Node, error) {
	switch f := formals.(type) {
	case ast.Symbol:
		return ast.Proc(runtime.NewVariadicProcedure(name, f, body, env)), nil
	case *ast.Form:
		params := make([]ast.Symbol, 0, f.Len())
		seen := make(map[ast.Symbol]struct{}, f.Len())
		for idx := 0; idx < f.Len(); idx++ {
			sym, ok := f.At(idx).(ast.Symbol)
			if !ok {
				return nil, runtime.MalformedFormError(form, "formal parameter %d must be a symbol, got %s", idx, f.At(idx).Kind())
			}
			if _, dup := seen[sym]; dup {
				return nil, runtime.MalformedFormError(form, "duplicate formal parameter '%s'", sym.Name())
			}
			seen[sym] = struct{}{}
			params = append(params, sym)
		}
		return ast.Proc(runtime.NewCompoundProcedure(name, params, body, env)), nil
	default:
		return nil, runtime.MalformedFormError(form, "lambda formals must be a symbol or a list of symbols")
	}
}
