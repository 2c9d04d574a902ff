package interpreter

import (
	"errors"
	"testing"

	"github.com/btwooton/shaka-scheme/pkg/ast"
	"github.com/btwooton/shaka-scheme/pkg/runtime"
)

func mustEval(t *testing.T, interp *Interpreter, node ast.Node) ast.Node {
	t.Helper()
	result, err := interp.Evaluate(node, nil)
	if err != nil {
		t.Fatalf("unexpected error evaluating %s: %v", node, err)
	}
	return result
}

func TestEvaluateSelfEvaluatingAtoms(t *testing.T) {
	interp := New()
	if got := mustEval(t, interp, ast.Int(42)); !ast.Equal(got, ast.Int(42)) {
		t.Fatalf("expected 42, got %s", got)
	}
	proc := ast.Proc(runtime.NewNativeProcedure("id", ast.Exactly(1), func(args []ast.Node) (ast.Node, error) {
		return args[0], nil
	}))
	if got := mustEval(t, interp, proc); got != proc {
		t.Fatalf("expected procedure node to evaluate to itself, got %s", got)
	}
	empty := ast.List()
	if got := mustEval(t, interp, empty); !ast.Equal(got, empty) {
		t.Fatalf("expected empty list, got %s", got)
	}
}

func TestEvaluateUnboundSymbol(t *testing.T) {
	interp := New()
	_, err := interp.Evaluate(ast.Sym("x"), nil)
	if !errors.Is(err, runtime.ErrUnboundSymbol) {
		t.Fatalf("expected unbound symbol error, got %v", err)
	}
	var rtErr *runtime.Error
	if !errors.As(err, &rtErr) || rtErr.Symbol != "x" {
		t.Fatalf("expected error to name x, got %v", err)
	}
}

func TestQuoteDoesNotEvaluate(t *testing.T) {
	interp := New()
	datum := ast.Syms("a", "b", "c")
	got := mustEval(t, interp, ast.Quote(datum))
	if !ast.Equal(got, datum) {
		t.Fatalf("expected %s, got %s", datum, got)
	}
}

func TestLambdaApplicationAndArity(t *testing.T) {
	interp := New()
	add := ast.Lambda(ast.Syms("x", "y"), ast.CallSym("+", ast.Sym("x"), ast.Sym("y")))

	got := mustEval(t, interp, ast.Call(add, ast.Int(1), ast.Int(2)))
	if !ast.Equal(got, ast.Int(3)) {
		t.Fatalf("expected 3, got %s", got)
	}
	for _, args := range [][]ast.Node{{ast.Int(1)}, {ast.Int(1), ast.Int(2), ast.Int(3)}} {
		_, err := interp.Evaluate(ast.Call(add, args...), nil)
		if !errors.Is(err, runtime.ErrArityMismatch) {
			t.Fatalf("expected arity mismatch for %d args, got %v", len(args), err)
		}
	}

	three := ast.Lambda(ast.Syms("x", "y", "z"), ast.CallSym("+", ast.Sym("x"), ast.Sym("y"), ast.Sym("z")))
	got = mustEval(t, interp, ast.Call(three, ast.Int(1), ast.Int(2), ast.Int(3)))
	if !ast.Equal(got, ast.Int(6)) {
		t.Fatalf("expected 6, got %s", got)
	}
}

func TestVariadicLambda(t *testing.T) {
	interp := New()
	collect := ast.Lambda(ast.Sym("args"), ast.Sym("args"))
	got := mustEval(t, interp, ast.Call(collect, ast.Int(1), ast.Int(2), ast.Int(3)))
	if !ast.Equal(got, ast.Ints(1, 2, 3)) {
		t.Fatalf("expected (1 2 3), got %s", got)
	}
	first := mustEval(t, interp, ast.CallSym("car", ast.Call(collect, ast.Int(1), ast.Int(2), ast.Int(3))))
	if !ast.Equal(first, ast.Int(1)) {
		t.Fatalf("expected 1, got %s", first)
	}
	none := mustEval(t, interp, ast.Call(collect))
	if !ast.Equal(none, ast.List()) {
		t.Fatalf("expected (), got %s", none)
	}
}

func TestRecursionThroughLateBinding(t *testing.T) {
	interp := New()
	xs := ast.Sym("xs")
	sumList := ast.Lambda(ast.Syms("xs"),
		ast.CallSym("if", ast.CallSym("null?", xs),
			ast.Int(0),
			ast.CallSym("+", ast.CallSym("car", xs), ast.CallSym("sum-list", ast.CallSym("cdr", xs)))))
	proc := mustEval(t, interp, sumList)
	interp.GlobalEnvironment().SetValue(ast.Sym("sum-list"), proc)

	got := mustEval(t, interp, ast.CallSym("sum-list", ast.CallSym("list", ast.Int(1), ast.Int(2), ast.Int(3))))
	if !ast.Equal(got, ast.Int(6)) {
		t.Fatalf("expected 6, got %s", got)
	}
}

func TestOperandsEvaluateLeftToRight(t *testing.T) {
	interp := New()
	var order []int64
	for idx, name := range []string{"first", "second", "third"} {
		value := int64(idx + 1)
		interp.GlobalEnvironment().SetValue(ast.Sym(name), ast.Proc(runtime.NewNativeProcedure(name, ast.Exactly(0), func([]ast.Node) (ast.Node, error) {
			order = append(order, value)
			return ast.Int(value), nil
		})))
	}
	mustEval(t, interp, ast.CallSym("list", ast.CallSym("first"), ast.CallSym("second"), ast.CallSym("third")))
	if len(order) != 3 || order[0] != 1 || order[1] != 2 || order[2] != 3 {
		t.Fatalf("unexpected evaluation order %v", order)
	}
}

func TestOperandErrorStopsEvaluation(t *testing.T) {
	interp := New()
	calls := 0
	interp.GlobalEnvironment().SetValue(ast.Sym("tick"), ast.Proc(runtime.NewNativeProcedure("tick", ast.Exactly(0), func([]ast.Node) (ast.Node, error) {
		calls++
		return ast.Int(0), nil
	})))
	_, err := interp.Evaluate(ast.CallSym("list", ast.Sym("missing"), ast.CallSym("tick")), nil)
	if !errors.Is(err, runtime.ErrUnboundSymbol) {
		t.Fatalf("expected unbound symbol error, got %v", err)
	}
	if calls != 0 {
		t.Fatalf("expected later operands to be skipped, got %d calls", calls)
	}
}

func TestApplyingNonProcedure(t *testing.T) {
	interp := New()
	_, err := interp.Evaluate(ast.Call(ast.Int(5), ast.Int(1)), nil)
	if !errors.Is(err, runtime.ErrNotAProcedure) {
		t.Fatalf("expected not-a-procedure error, got %v", err)
	}
}

func TestApplyFromHost(t *testing.T) {
	interp := New()
	plus := mustEval(t, interp, ast.Sym("+")).(*ast.ProcedureNode)
	got, err := interp.Apply(plus.Procedure(), []ast.Node{ast.Int(2), ast.Int(5)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ast.Equal(got, ast.Int(7)) {
		t.Fatalf("expected 7, got %s", got)
	}

	ifProc := mustEval(t, interp, ast.Sym("if")).(*ast.ProcedureNode)
	got, err = interp.Apply(ifProc.Procedure(), []ast.Node{ast.False, ast.Int(1), ast.Sym("unbound")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ast.Equal(got, ast.Sym("unbound")) {
		t.Fatalf("expected quoted argument to come back unevaluated, got %s", got)
	}
}

func TestClosureCapturesDefiningEnvironment(t *testing.T) {
	interp := New()
	mustEval(t, interp, ast.Define(ast.Sym("n"), ast.Int(10)))
	mustEval(t, interp, ast.Define(ast.Syms("add-n", "x"), ast.CallSym("+", ast.Sym("x"), ast.Sym("n"))))

	scope := interp.GlobalEnvironment().Child()
	scope.SetValue(ast.Sym("n"), ast.Int(1000))
	got, err := interp.Evaluate(ast.CallSym("add-n", ast.Int(1)), scope)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ast.Equal(got, ast.Int(11)) {
		t.Fatalf("expected lexical n, got %s", got)
	}
}

func TestApplySetFromHost(t *testing.T) {
	interp := New()
	mustEval(t, interp, ast.Define(ast.Sym("x"), ast.Int(1)))
	set := mustEval(t, interp, ast.Sym("set!")).(*ast.ProcedureNode)
	got, err := interp.Apply(set.Procedure(), []ast.Node{ast.Sym("x"), ast.Int(2)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != ast.Unspecific {
		t.Fatalf("expected unspecific, got %s", got)
	}
	if value := mustEval(t, interp, ast.Sym("x")); !ast.Equal(value, ast.Int(2)) {
		t.Fatalf("expected x to be 2, got %s", value)
	}
	_, err = interp.Apply(set.Procedure(), []ast.Node{ast.Int(1), ast.Int(2)})
	if !errors.Is(err, runtime.ErrMalformedForm) {
		t.Fatalf("expected malformed form error, got %v", err)
	}
}
