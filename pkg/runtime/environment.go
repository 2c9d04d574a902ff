package runtime

import (
	"sort"

	"github.com/btwooton/shaka-scheme/pkg/ast"
)

// Environment provides lexical scoping for evaluated nodes. Environments are
// shared by reference between closures and child scopes; a write through any
// holder is visible to all of them. The parent link is only followed for
// lookup.
type Environment struct {
	values map[ast.Symbol]ast.Node
	parent *Environment
}

// NewEnvironment creates a new environment, optionally nested under a parent.
func NewEnvironment(parent *Environment) *Environment {
	return &Environment{
		values: make(map[ast.Symbol]ast.Node),
		parent: parent,
	}
}

// Parent exposes the lexical parent (nil when global).
func (e *Environment) Parent() *Environment {
	return e.parent
}

// Child creates a new scope whose parent is e.
func (e *Environment) Child() *Environment {
	return NewEnvironment(e)
}

// SetValue inserts or overwrites a binding in this scope only.
func (e *Environment) SetValue(sym ast.Symbol, value ast.Node) {
	e.values[sym] = value
}

// Lookup resolves sym against this scope and then each ancestor. The search
// reads the live bindings, so values set after a closure captured e are seen.
func (e *Environment) Lookup(sym ast.Symbol) (ast.Node, error) {
	for scope := e; scope != nil; scope = scope.parent {
		if v, ok := scope.values[sym]; ok {
			return v, nil
		}
	}
	return nil, UnboundSymbolError(sym)
}

// Assign updates an existing binding in the first scope where it appears.
func (e *Environment) Assign(sym ast.Symbol, value ast.Node) error {
	for scope := e; scope != nil; scope = scope.parent {
		if _, ok := scope.values[sym]; ok {
			scope.values[sym] = value
			return nil
		}
	}
	return UnboundSymbolError(sym)
}

// Has reports whether the binding exists anywhere in the scope chain.
func (e *Environment) Has(sym ast.Symbol) bool {
	for scope := e; scope != nil; scope = scope.parent {
		if _, ok := scope.values[sym]; ok {
			return true
		}
	}
	return false
}

// HasInCurrentScope reports whether the binding exists in the current scope.
func (e *Environment) HasInCurrentScope(sym ast.Symbol) bool {
	_, ok := e.values[sym]
	return ok
}

// Symbols returns the local bindings sorted by name (useful for determinism in tests).
func (e *Environment) Symbols() []ast.Symbol {
	syms := make([]ast.Symbol, 0, len(e.values))
	for sym := range e.values {
		syms = append(syms, sym)
	}
	sort.Slice(syms, func(i, j int) bool {
		return syms[i].Name() < syms[j].Name()
	})
	return syms
}
