package ast

import "github.com/bawdo/relast/relerr"

// Cte names a relation (any Node — typically a Select) as a Common Table
// Expression. The compiler assigns its WITH-clause alias at render time
// and hoists it (and any CTE it in turn references) into the enclosing
// query's WITH prefix, deduplicated by node identity.
//
// Params, when given, names the CTE's output columns explicitly
// (WITH alias(col1, col2) AS (...)); otherwise the compiler emits no
// column list and consumers must reference the underlying query's own
// output names.
type Cte struct {
	Query  Node
	Params []string
}

// NewCte wraps query as a CTE, optionally naming its output columns.
func NewCte(query Node, params ...string) *Cte {
	return &Cte{Query: query, Params: params}
}

func (n *Cte) Accept(v Visitor) string { return v.VisitCte(n) }
func (n *Cte) stmtNode()               {}

// Col resolves name against the CTE's declared Params if it has any,
// otherwise falls through to its underlying query's own output columns.
// A Cte over anything other than a Select rejects every name unless it
// has Params.
func (n *Cte) Col(name string) *Column {
	if len(n.Params) > 0 {
		for _, p := range n.Params {
			if p == name {
				c := &Column{Name: name, Source: n}
				c.ops.self = c
				return c
			}
		}
		panic(&relerr.ScopeMiss{Column: name})
	}
	if inner, ok := n.Query.(*Select); ok {
		inner.Col(name) // validates name is one of the query's outputs
		c := &Column{Name: name, Source: n}
		c.ops.self = c
		return c
	}
	panic(&relerr.ScopeMiss{Column: name})
}

func (n *Cte) Select(exprs ...Expr) *Select         { return fresh(n).Select(exprs...) }
func (n *Cte) SelectDistinct(exprs ...Expr) *Select { return fresh(n).SelectDistinct(exprs...) }
func (n *Cte) Where(exprs ...Expr) *Select          { return fresh(n).Where(exprs...) }
func (n *Cte) GroupBy(keys, values []Expr) *Select  { return fresh(n).GroupBy(keys, values) }
func (n *Cte) OrderBy(exprs ...Expr) *Select        { return fresh(n).OrderBy(exprs...) }
func (n *Cte) Limit(v int) *Select                  { return fresh(n).Limit(v) }
func (n *Cte) Offset(v int) *Select                 { return fresh(n).Offset(v) }
