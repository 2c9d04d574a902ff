// Package interpreter evaluates shaka-scheme expression trees. It consumes the
// node trees built by a reader (or by hosts through the ast DSL), resolves
// symbols through chained runtime environments, and applies native, primitive
// and compound procedures by plain recursive descent. Behaviour is pinned by
// the exec fixtures under testdata/fixtures.
package interpreter
