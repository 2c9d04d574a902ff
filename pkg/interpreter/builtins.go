package interpreter

import (
	"github.com/btwooton/shaka-scheme/pkg/ast"
	"github.com/btwooton/shaka-scheme/pkg/runtime"
)

func nativeProcedures() []*runtime.NativeProcedure {
	return []*runtime.NativeProcedure{
		runtime.NewNativeProcedure("add", ast.AtLeast(0), nativeAdd),
		runtime.NewNativeProcedure("sub", ast.AtLeast(1), nativeSub),
		runtime.NewNativeProcedure("mul", ast.AtLeast(0), nativeMul),
		runtime.NewNativeProcedure("num-eq", ast.AtLeast(1), nativeNumEq),
		runtime.NewNativeProcedure("less", ast.AtLeast(1), nativeLess),
		runtime.NewNativeProcedure("car", ast.Exactly(1), nativeCar),
		runtime.NewNativeProcedure("cdr", ast.Exactly(1), nativeCdr),
		runtime.NewNativeProcedure("cons", ast.Exactly(2), nativeCons),
		runtime.NewNativeProcedure("list", ast.AtLeast(0), nativeList),
		runtime.NewNativeProcedure("null?", ast.Exactly(1), nativeNullP),
		runtime.NewNativeProcedure("eq?", ast.Exactly(2), nativeEqP),
	}
}

//-----------------------------------------------------------------------------
// Numbers
//-----------------------------------------------------------------------------

func numberArgs(name string, args []ast.Node) ([]ast.Number, error) {
	nums := make([]ast.Number, len(args))
	for idx, arg := range args {
		n, ok := arg.(ast.Number)
		if !ok {
			return nil, runtime.WrongTypeError(name, "number", arg)
		}
		nums[idx] = n
	}
	return nums, nil
}

func nativeAdd(args []ast.Node) (ast.Node, error) {
	nums, err := numberArgs("add", args)
	if err != nil {
		return nil, err
	}
	sum := ast.Int(0)
	for _, n := range nums {
		sum = sum.Add(n)
	}
	return sum, nil
}

// nativeSub negates a single argument and otherwise subtracts left to right.
func nativeSub(args []ast.Node) (ast.Node, error) {
	nums, err := numberArgs("sub", args)
	if err != nil {
		return nil, err
	}
	if len(nums) == 1 {
		return ast.Int(0).Sub(nums[0]), nil
	}
	acc := nums[0]
	for _, n := range nums[1:] {
		acc = acc.Sub(n)
	}
	return acc, nil
}

func nativeMul(args []ast.Node) (ast.Node, error) {
	nums, err := numberArgs("mul", args)
	if err != nil {
		return nil, err
	}
	product := ast.Int(1)
	for _, n := range nums {
		product = product.Mul(n)
	}
	return product, nil
}

func nativeNumEq(args []ast.Node) (ast.Node, error) {
	return compareChain("num-eq", args, func(c int) bool { return c == 0 })
}

func nativeLess(args []ast.Node) (ast.Node, error) {
	return compareChain("less", args, func(c int) bool { return c < 0 })
}

func compareChain(name string, args []ast.Node, holds func(int) bool) (ast.Node, error) {
	nums, err := numberArgs(name, args)
	if err != nil {
		return nil, err
	}
	for idx := 1; idx < len(nums); idx++ {
		if !holds(nums[idx-1].Cmp(nums[idx])) {
			return ast.False, nil
		}
	}
	return ast.True, nil
}

//-----------------------------------------------------------------------------
// Lists
//-----------------------------------------------------------------------------

func nativeCar(args []ast.Node) (ast.Node, error) {
	form, ok := args[0].(*ast.Form)
	if !ok || form.IsEmpty() {
		return nil, runtime.WrongTypeError("car", "non-empty list", args[0])
	}
	return form.At(0), nil
}

func nativeCdr(args []ast.Node) (ast.Node, error) {
	form, ok := args[0].(*ast.Form)
	if !ok || form.IsEmpty() {
		return nil, runtime.WrongTypeError("cdr", "non-empty list", args[0])
	}
	return form.Rest().WithTag(ast.TagList), nil
}

func nativeCons(args []ast.Node) (ast.Node, error) {
	tail, ok := args[1].(*ast.Form)
	if !ok {
		return nil, runtime.WrongTypeError("cons", "list", args[1])
	}
	children := make([]ast.Node, 0, tail.Len()+1)
	children = append(children, args[0])
	children = append(children, tail.Children()...)
	return ast.List(children...), nil
}

func nativeList(args []ast.Node) (ast.Node, error) {
	return ast.List(args...), nil
}

func nativeNullP(args []ast.Node) (ast.Node, error) {
	form, ok := args[0].(*ast.Form)
	return ast.Bool(ok && form.IsEmpty()), nil
}

func nativeEqP(args []ast.Node) (ast.Node, error) {
	return ast.Bool(ast.Equal(args[0], args[1])), nil
}
