package interpreter

import (
	"errors"
	"fmt"
	"strings"

	"github.com/btwooton/shaka-scheme/pkg/ast"
	"github.com/btwooton/shaka-scheme/pkg/runtime"
)

const maxDiagnosticNotes = 8

type runtimeDiagnosticContext struct {
	form      ast.Node
	callStack []string
}

type runtimeDiagnosticError struct {
	err     error
	context *runtimeDiagnosticContext
}

func (e runtimeDiagnosticError) Error() string {
	if e.err == nil {
		return ""
	}
	return e.err.Error()
}

func (e runtimeDiagnosticError) Unwrap() error {
	return e.err
}

// RuntimeDiagnostic is a user-facing rendering of an evaluation failure.
type RuntimeDiagnostic struct {
	Kind    string
	Message string
	Form    string
	Notes   []string
}

// BuildRuntimeDiagnostic extracts the failing form and the active call
// frames from an error returned by the interpreter.
func BuildRuntimeDiagnostic(err error) RuntimeDiagnostic {
	if err == nil {
		return RuntimeDiagnostic{}
	}
	diag := RuntimeDiagnostic{Message: runtimeMessageFromError(err)}
	var rtErr *runtime.Error
	if errors.As(err, &rtErr) {
		diag.Kind = string(rtErr.Kind)
	}
	ctx := runtimeContextFromError(err)
	if ctx == nil {
		return diag
	}
	if ctx.form != nil {
		diag.Form = ctx.form.String()
	}
	for idx := len(ctx.callStack) - 1; idx >= 0 && len(diag.Notes) < maxDiagnosticNotes; idx-- {
		diag.Notes = append(diag.Notes, "called from "+ctx.callStack[idx])
	}
	return diag
}

// DescribeRuntimeDiagnostic formats diag as a multi-line message.
func DescribeRuntimeDiagnostic(diag RuntimeDiagnostic) string {
	message := strings.TrimSpace(diag.Message)
	message = strings.TrimSpace(strings.TrimPrefix(message, "runtime:"))
	var b strings.Builder
	fmt.Fprintf(&b, "runtime: %s", message)
	if diag.Form != "" {
		fmt.Fprintf(&b, "\nnote: in %s", diag.Form)
	}
	for _, note := range diag.Notes {
		fmt.Fprintf(&b, "\nnote: %s", note)
	}
	return b.String()
}

func (i *Interpreter) attachRuntimeContext(err error, node ast.Node) error {
	if err == nil || node == nil {
		return err
	}
	if runtimeContextFromError(err) != nil {
		return err
	}
	return runtimeDiagnosticError{
		err: err,
		context: &runtimeDiagnosticContext{
			form:      node,
			callStack: i.snapshotCallStack(),
		},
	}
}

func runtimeContextFromError(err error) *runtimeDiagnosticContext {
	var diagErr runtimeDiagnosticError
	if errors.As(err, &diagErr) {
		return diagErr.context
	}
	return nil
}

func runtimeMessageFromError(err error) string {
	var rtErr *runtime.Error
	if errors.As(err, &rtErr) {
		return rtErr.Error()
	}
	return err.Error()
}
