package ast

// Constructors for building trees in hosts and tests.

// List builds a LIST form, the shape of list data and of untagged source forms.
func List(children ...Node) *Form {
	return NewForm(TagList, children)
}

// Syms builds a LIST of symbols, handy for lambda formals.
func Syms(names ...string) *Form {
	children := make([]Node, len(names))
	for i, name := range names {
		children[i] = Sym(name)
	}
	return NewForm(TagList, children)
}

// Call builds a PROC_CALL form.
func Call(operator Node, operands ...Node) *Form {
	children := make([]Node, 0, len(operands)+1)
	children = append(children, operator)
	children = append(children, operands...)
	return &Form{tag: TagProcCall, children: children}
}

// CallSym is Call with a symbol operator.
func CallSym(operator string, operands ...Node) *Form {
	return Call(Sym(operator), operands...)
}

// Quote builds a QUOTE form over datum.
func Quote(datum Node) *Form {
	return &Form{tag: TagQuote, children: []Node{datum}}
}

// Lambda builds a LAMBDA form: formals followed by body expressions.
func Lambda(formals Node, body ...Node) *Form {
	children := make([]Node, 0, len(body)+1)
	children = append(children, formals)
	children = append(children, body...)
	return &Form{tag: TagLambda, children: children}
}

// Define builds a DEFINE form.
func Define(target Node, value ...Node) *Form {
	children := make([]Node, 0, len(value)+1)
	children = append(children, target)
	children = append(children, value...)
	return &Form{tag: TagDefine, children: children}
}

// Ints builds a LIST of integers.
func Ints(values ...int64) *Form {
	children := make([]Node, len(values))
	for i, v := range values {
		children[i] = Int(v)
	}
	return NewForm(TagList, children)
}
