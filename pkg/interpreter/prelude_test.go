package interpreter

import (
	"errors"
	"strings"
	"testing"

	"github.com/btwooton/shaka-scheme/pkg/ast"
	"github.com/btwooton/shaka-scheme/pkg/driver"
	"github.com/btwooton/shaka-scheme/pkg/runtime"
)

func TestDefaultPreludeReferencesKnownNatives(t *testing.T) {
	prelude := DefaultPrelude()
	known := make(map[string]bool)
	for _, name := range NativeNames() {
		known[name] = true
	}
	for _, binding := range prelude.Bindings {
		if binding.Constant == nil && !known[binding.Native] {
			t.Fatalf("binding %s references unknown native %q", binding.Symbol, binding.Native)
		}
	}
	for _, symbol := range []string{"+", "add", "car", "if", "#t", "#f"} {
		if _, ok := prelude.Lookup(symbol); !ok {
			t.Fatalf("expected default prelude to bind %s", symbol)
		}
	}
}

func TestNewWithCustomPrelude(t *testing.T) {
	prelude, err := driver.ParsePrelude([]byte(`
name: tiny
bindings:
  - symbol: plus
    native: add
  - symbol: answer
    constant: 42
`), "tiny.yml")
	if err != nil {
		t.Fatalf("parse prelude: %v", err)
	}
	interp, err := NewWithPrelude(prelude)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := mustEval(t, interp, ast.CallSym("plus", ast.Sym("answer"), ast.Int(1)))
	if !ast.Equal(got, ast.Int(43)) {
		t.Fatalf("expected 43, got %s", got)
	}
	_, err = interp.Evaluate(ast.CallSym("+", ast.Int(1)), nil)
	if !errors.Is(err, runtime.ErrUnboundSymbol) {
		t.Fatalf("expected + to be unbound, got %v", err)
	}
}

func TestInstallPreludeRejectsUnknownNative(t *testing.T) {
	prelude := &driver.Prelude{
		Name:     "broken",
		Bindings: []driver.PreludeBinding{{Symbol: "frob", Native: "frobnicate"}},
	}
	_, err := NewWithPrelude(prelude)
	if err == nil || !strings.Contains(err.Error(), `unknown native "frobnicate"`) {
		t.Fatalf("expected unknown native error, got %v", err)
	}
}

func TestInterpretersDoNotShareGlobals(t *testing.T) {
	a, b := New(), New()
	mustEval(t, a, ast.Define(ast.Sym("x"), ast.Int(1)))
	if b.GlobalEnvironment().Has(ast.Sym("x")) {
		t.Fatalf("definitions leaked between interpreters")
	}
}
