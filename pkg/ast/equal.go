package ast

// Equal compares two nodes structurally. Procedures compare by identity;
// forms must agree on tag and on every child.
func Equal(a, b Node) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.Kind() != b.Kind() {
		return false
	}
	switch x := a.(type) {
	case Number:
		return x.Equal(b.(Number))
	case Symbol:
		return x == b.(Symbol)
	case *ProcedureNode:
		return x.Procedure() == b.(*ProcedureNode).Procedure()
	case *Form:
		y := b.(*Form)
		if x.tag != y.tag || len(x.children) != len(y.children) {
			return false
		}
		for i := range x.children {
			if !Equal(x.children[i], y.children[i]) {
				return false
			}
		}
		return true
	}
	return false
}
