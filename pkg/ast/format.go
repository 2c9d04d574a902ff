package ast

import "strings"

// String renders the form as an s-expression for diagnostics. Tagged forms
// print with the keyword the tag stands for.
func (f *Form) String() string {
	var b strings.Builder
	b.WriteByte('(')
	switch f.tag {
	case TagQuote:
		b.WriteString("quote")
	case TagLambda:
		b.WriteString("lambda")
	case TagDefine:
		b.WriteString("define")
	}
	for i, child := range f.children {
		if i > 0 || b.Len() > 1 {
			b.WriteByte(' ')
		}
		if child == nil {
			b.WriteString("<nil>")
			continue
		}
		b.WriteString(child.String())
	}
	b.WriteByte(')')
	return b.String()
}
