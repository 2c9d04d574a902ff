package ast

import (
	"fmt"
	"math/big"
	"unique"

	"github.com/nukata/goarith"
)

var zero = goarith.AsNumber(big.NewInt(0))

// Number is an immutable numeric atom. Integers widen to arbitrary precision
// on overflow; floats are float64.
type Number struct {
	val goarith.Number
}

// Int builds an integer Number.
func Int(n int64) Number {
	return Number{val: goarith.AsNumber(big.NewInt(n))}
}

// BigInt builds an integer Number from a big.Int.
func BigInt(n *big.Int) Number {
	return Number{val: goarith.AsNumber(new(big.Int).Set(n))}
}

// Float builds a floating Number.
func Float(f float64) Number {
	return Number{val: goarith.AsNumber(f)}
}

func (n Number) num() goarith.Number {
	if n.val == nil {
		return zero
	}
	return n.val
}

// Value exposes the underlying arithmetic value.
func (n Number) Value() goarith.Number { return n.num() }

func (n Number) Add(other Number) Number { return Number{val: n.num().Add(other.num())} }
func (n Number) Sub(other Number) Number { return Number{val: n.num().Sub(other.num())} }
func (n Number) Mul(other Number) Number { return Number{val: n.num().Mul(other.num())} }

// Cmp compares numerically: -1, 0 or +1.
func (n Number) Cmp(other Number) int { return n.num().Cmp(other.num()) }

// Equal reports numeric equality.
func (n Number) Equal(other Number) bool { return n.Cmp(other) == 0 }

func (Number) Kind() Kind       { return KindNumber }
func (n Number) String() string { return fmt.Sprint(n.num()) }
func (Number) isNode()          {}

// Symbol is an interned identifier. Two symbols are equal (==) exactly when
// their names are equal.
type Symbol struct {
	h unique.Handle[string]
}

// Sym interns name.
func Sym(name string) Symbol {
	return Symbol{h: unique.Make(name)}
}

// Name returns the symbol's text.
func (s Symbol) Name() string {
	if s == (Symbol{}) {
		return ""
	}
	return s.h.Value()
}

func (Symbol) Kind() Kind       { return KindSymbol }
func (s Symbol) String() string { return s.Name() }
func (Symbol) isNode()          {}

// Reserved symbols. #f is the only false value; #!unspecific is returned by
// forms that produce no value.
var (
	True       = Sym("#t")
	False      = Sym("#f")
	Unspecific = Sym("#!unspecific")
)

// Bool maps a Go bool onto #t / #f.
func Bool(b bool) Symbol {
	if b {
		return True
	}
	return False
}

// IsTruthy reports whether n counts as true in a test position.
func IsTruthy(n Node) bool {
	sym, ok := n.(Symbol)
	return !ok || sym != False
}
