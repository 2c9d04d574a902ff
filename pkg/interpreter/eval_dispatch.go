package interpreter

import (
	"fmt"

	"github.com/btwooton/shaka-scheme/pkg/ast"
	"github.com/btwooton/shaka-scheme/pkg/runtime"
)

func (i *Interpreter) evaluate(node ast.Node, env *runtime.Environment) (result ast.Node, err error) {
	defer func() {
		if err != nil {
			err = i.attachRuntimeContext(err, node)
		}
	}()
	if node == nil {
		return nil, fmt.Errorf("cannot evaluate <nil> node")
	}
	switch n := node.(type) {
	case ast.Number:
		return n, nil
	case *ast.ProcedureNode:
		return n, nil
	case ast.Symbol:
		return env.Lookup(n)
	case *ast.Form:
		return i.evaluateForm(n, env)
	default:
		return nil, fmt.Errorf("unsupported node kind %s", node.Kind())
	}
}

func (i *Interpreter) evaluateForm(form *ast.Form, env *runtime.Environment) (ast.Node, error) {
	switch form.Tag() {
	case ast.TagQuote:
		return i.evaluateQuote(form)
	case ast.TagDefine:
		return i.evaluateDefine(form, env)
	case ast.TagLambda:
		return i.evaluateLambda(form, env, "")
	case ast.TagProcCall:
		return i.evaluateCall(form, env)
	case ast.TagList:
		return i.evaluateList(form, env)
	default:
		return nil, runtime.MalformedFormError(form, "unknown form tag %s", form.Tag())
	}
}

// evaluateList classifies an untagged form by its head. The empty list is
// self-evaluating.
func (i *Interpreter) evaluateList(form *ast.Form, env *runtime.Environment) (ast.Node, error) {
	head, ok := form.First()
	if !ok {
		return form, nil
	}
	if tag, ok := keywordTag(head); ok {
		return i.evaluateForm(form.Rest().WithTag(tag), env)
	}
	return i.evaluateCall(form.WithTag(ast.TagProcCall), env)
}

func keywordTag(head ast.Node) (ast.Tag, bool) {
	sym, ok := head.(ast.Symbol)
	if !ok {
		return 0, false
	}
	switch sym.Name() {
	case "quote":
		return ast.TagQuote, true
	case "lambda":
		return ast.TagLambda, true
	case "define":
		return ast.TagDefine, true
	}
	return 0, false
}
