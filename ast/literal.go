package ast

// Literal wraps a raw Go value (string, int, float, bool, nil, time.Time,
// ...) as an AST leaf. The compiler always renders it inline in the SQL
// text; there are no bind parameters.
type Literal struct {
	ops
	Value any
}

// NewLiteral builds a Literal node. If val already implements Expr it is
// returned unchanged, mirroring how comparisons and infix operators
// accept either a raw Go value or an existing expression.
func NewLiteral(val any) Expr {
	if e, ok := val.(Expr); ok {
		return e
	}
	n := &Literal{Value: val}
	n.ops.self = n
	return n
}

func (n *Literal) Accept(v Visitor) string { return v.VisitLiteral(n) }
func (n *Literal) exprNode()               {}

// SqlLiteral injects a raw SQL fragment verbatim into the output.
//
// The Raw field is never escaped or quoted by the compiler. Only use it
// for fragments fixed at build time (e.g. a dialect-specific function
// name); never interpolate caller-supplied strings into Raw.
type SqlLiteral struct {
	ops
	Raw string
}

// NewSqlLiteral builds a raw SQL fragment node.
func NewSqlLiteral(raw string) *SqlLiteral {
	n := &SqlLiteral{Raw: raw}
	n.ops.self = n
	return n
}

func (n *SqlLiteral) Accept(v Visitor) string { return v.VisitSqlLiteral(n) }
func (n *SqlLiteral) exprNode()               {}

// Star represents SQL * or table.* in a projection list.
type Star struct {
	Table *TableRef // nil for unqualified *
}

func (n *Star) Accept(v Visitor) string { return v.VisitStar(n) }
func (n *Star) exprNode()               {}

// StarOf returns a star qualified by a table.
func StarOf(t *TableRef) *Star { return &Star{Table: t} }

// AnyStar returns an unqualified star.
func AnyStar() *Star { return &Star{} }
