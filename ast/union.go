package ast

// Union is a set operation between two relations.
type Union struct {
	Left, Right Node
	All         bool
}

func (n *Union) Accept(v Visitor) string { return v.VisitUnion(n) }
func (n *Union) stmtNode()               {}
