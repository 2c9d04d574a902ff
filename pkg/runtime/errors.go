package runtime

import (
	"fmt"

	"github.com/btwooton/shaka-scheme/pkg/ast"
)

// ErrorKind classifies evaluation failures.
type ErrorKind string

const (
	KindUnboundSymbol ErrorKind = "UnboundSymbol"
	KindNotAProcedure ErrorKind = "NotAProcedure"
	KindArityMismatch ErrorKind = "ArityMismatch"
	KindMalformedForm ErrorKind = "MalformedForm"
	KindWrongType     ErrorKind = "WrongType"
)

// Error is raised at the point a failure is detected and propagates to the
// embedding caller unchanged apart from wrapping.
type Error struct {
	Kind    ErrorKind
	Message string
	// Symbol names the unbound symbol or the procedure involved, when known.
	Symbol string
	// Form is the offending node, when known.
	Form ast.Node
	// Expected and Got describe an arity mismatch.
	Expected ast.Arity
	Got      int
}

func (e *Error) Error() string {
	if e.Message == "" {
		return string(e.Kind)
	}
	return e.Message
}

// Is matches sentinels by kind, so errors.Is(err, ErrArityMismatch) holds for
// every arity error however it was wrapped.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind && t.Message == ""
}

// Sentinels for errors.Is.
var (
	ErrUnboundSymbol = &Error{Kind: KindUnboundSymbol}
	ErrNotAProcedure = &Error{Kind: KindNotAProcedure}
	ErrArityMismatch = &Error{Kind: KindArityMismatch}
	ErrMalformedForm = &Error{Kind: KindMalformedForm}
	ErrWrongType     = &Error{Kind: KindWrongType}
)

func UnboundSymbolError(sym ast.Symbol) error {
	return &Error{
		Kind:    KindUnboundSymbol,
		Message: fmt.Sprintf("Undefined symbol '%s'", sym.Name()),
		Symbol:  sym.Name(),
		Form:    sym,
	}
}

func NotAProcedureError(value ast.Node) error {
	desc := "<nil>"
	if value != nil {
		desc = fmt.Sprintf("%s %s", value.Kind(), value)
	}
	return &Error{
		Kind:    KindNotAProcedure,
		Message: fmt.Sprintf("Cannot apply %s: not a procedure", desc),
		Form:    value,
	}
}

func ArityMismatchError(name string, expected ast.Arity, got int) error {
	if name == "" {
		name = "<anonymous>"
	}
	return &Error{
		Kind:     KindArityMismatch,
		Message:  fmt.Sprintf("Procedure '%s' expects %s arguments, got %d", name, expected, got),
		Symbol:   name,
		Expected: expected,
		Got:      got,
	}
}

func MalformedFormError(form ast.Node, format string, args ...any) error {
	msg := fmt.Sprintf(format, args...)
	if form != nil {
		msg = fmt.Sprintf("%s in %s", msg, form)
	}
	return &Error{
		Kind:    KindMalformedForm,
		Message: msg,
		Form:    form,
	}
}

func WrongTypeError(procedure string, want string, got ast.Node) error {
	desc := "<nil>"
	if got != nil {
		desc = fmt.Sprintf("%s %s", got.Kind(), got)
	}
	return &Error{
		Kind:    KindWrongType,
		Message: fmt.Sprintf("%s: expected %s, got %s", procedure, want, desc),
		Symbol:  procedure,
		Form:    got,
	}
}
