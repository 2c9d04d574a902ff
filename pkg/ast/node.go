package ast

import "fmt"

// Kind identifies the expression node category.
type Kind int

const (
	KindNumber Kind = iota
	KindSymbol
	KindProcedure
	KindForm
)

func (k Kind) String() string {
	switch k {
	case KindNumber:
		return "number"
	case KindSymbol:
		return "symbol"
	case KindProcedure:
		return "procedure"
	case KindForm:
		return "form"
	default:
		return fmt.Sprintf("unknown_kind_%d", int(k))
	}
}

// Tag identifies the syntactic role of a composite form.
type Tag int

const (
	TagList Tag = iota
	TagProcCall
	TagQuote
	TagLambda
	TagDefine
)

func (t Tag) String() string {
	switch t {
	case TagList:
		return "LIST"
	case TagProcCall:
		return "PROC_CALL"
	case TagQuote:
		return "QUOTE"
	case TagLambda:
		return "LAMBDA"
	case TagDefine:
		return "DEFINE"
	default:
		return fmt.Sprintf("TAG_%d", int(t))
	}
}

// Node is an expression tree node. The set of implementations is closed:
// Number, Symbol, *ProcedureNode and *Form.
type Node interface {
	Kind() Kind
	String() string
	isNode()
}

// Form is a composite node: a tag plus an ordered sequence of children.
// Forms are immutable once built, so sub-forms may share backing storage.
type Form struct {
	tag      Tag
	children []Node
}

// NewForm builds a form over a copy of children.
func NewForm(tag Tag, children []Node) *Form {
	owned := make([]Node, len(children))
	copy(owned, children)
	return &Form{tag: tag, children: owned}
}

func (f *Form) Kind() Kind { return KindForm }
func (*Form) isNode()      {}

// Tag reports the syntactic role of the form.
func (f *Form) Tag() Tag { return f.tag }

// Len returns the number of children.
func (f *Form) Len() int { return len(f.children) }

// IsEmpty reports whether the form has no children.
func (f *Form) IsEmpty() bool { return len(f.children) == 0 }

// At returns the child at index i.
func (f *Form) At(i int) Node { return f.children[i] }

// Children returns a copy of the child sequence.
func (f *Form) Children() []Node {
	out := make([]Node, len(f.children))
	copy(out, f.children)
	return out
}

// First returns the head child, if any.
func (f *Form) First() (Node, bool) {
	if len(f.children) == 0 {
		return nil, false
	}
	return f.children[0], true
}

// Rest returns a form with the same tag over every child but the first.
// The rest of an empty form is empty.
func (f *Form) Rest() *Form {
	if len(f.children) == 0 {
		return &Form{tag: f.tag}
	}
	return &Form{tag: f.tag, children: f.children[1:]}
}

// WithTag returns a form over the same children under a different tag.
func (f *Form) WithTag(tag Tag) *Form {
	return &Form{tag: tag, children: f.children}
}
