package ast

import "github.com/bawdo/relast/relerr"

// Select is the immutable query-shape node: every builder method
// returns a new Select rather than mutating the receiver.
//
// Calling Select or GroupBy on a Select that is already "sealed" (its
// output shape is already fixed by a prior Select/GroupBy, its rows are
// already deduplicated by SelectDistinct, or its row count is already
// fixed by Limit/Offset) wraps the receiver as a
// subquery instead of overwriting its projection list — the compiler
// assigns the subquery's alias at render time. Where, Having, OrderBy,
// Limit and Offset never trigger a wrap: they only ever add or set a
// clause on a copy of the receiver, since none of them redefine what a
// row of the result looks like.
type Select struct {
	From        Node
	Projections []Expr
	Wheres      []Expr
	Groups      []Expr
	Havings     []Expr
	Orders      []*Ordering
	LimitVal    *int
	OffsetVal   *int
	DistinctVal bool
}

func (s *Select) Accept(v Visitor) string { return v.VisitSelect(s) }
func (s *Select) stmtNode()               {}

func fresh(from Node) *Select { return &Select{From: from} }

func (s *Select) copy() *Select {
	c := *s
	return &c
}

func (s *Select) sealed() bool {
	return s != nil && (s.Projections != nil || s.DistinctVal || s.LimitVal != nil || s.OffsetVal != nil)
}

// Select sets the projection list (SELECT expr, expr, ...), wrapping the
// receiver as a subquery first if it is already sealed.
func (s *Select) Select(exprs ...Expr) *Select {
	return s.projectionOp(exprs, nil, false)
}

// SelectDistinct is Select with SELECT DISTINCT.
func (s *Select) SelectDistinct(exprs ...Expr) *Select {
	return s.projectionOp(exprs, nil, true)
}

// GroupBy sets the projection list to keys followed by values and
// records keys as the GROUP BY list, rendered positionally by the
// compiler. Wraps as a subquery first if the receiver is already sealed.
func (s *Select) GroupBy(keys, values []Expr) *Select {
	projections := append(append([]Expr{}, keys...), values...)
	return s.projectionOp(projections, keys, s.DistinctVal)
}

func (s *Select) projectionOp(projections []Expr, groups []Expr, distinct bool) *Select {
	if s.sealed() {
		// A bare *-projection call with no distinct-flag change asks for
		// nothing the receiver doesn't already provide — drop it instead
		// of wrapping a redundant subquery around an unchanged shape.
		if projections == nil && groups == nil && distinct == s.DistinctVal {
			return s
		}
		return &Select{From: s, Projections: projections, Groups: groups, DistinctVal: distinct}
	}
	c := s.copy()
	c.Projections = projections
	c.Groups = groups
	c.DistinctVal = distinct
	return c
}

// Where adds WHERE conditions, ANDed with any already present.
func (s *Select) Where(exprs ...Expr) *Select {
	c := s.copy()
	c.Wheres = append(append([]Expr{}, c.Wheres...), exprs...)
	return c
}

// Having adds HAVING conditions, ANDed with any already present. Unlike
// Select/GroupBy, Having never wraps: it only ever decorates the
// receiver's existing shape. Panics with *relerr.StructuralError if the
// receiver has no GROUP BY to attach to.
func (s *Select) Having(exprs ...Expr) *Select {
	if len(s.Groups) == 0 {
		panic(&relerr.StructuralError{Msg: "having without a prior group_by"})
	}
	c := s.copy()
	c.Havings = append(append([]Expr{}, c.Havings...), exprs...)
	return c
}

// OrderBy adds ORDER BY entries. A plain expression (not already built
// via Asc/Desc) orders ascending by default.
func (s *Select) OrderBy(exprs ...Expr) *Select {
	c := s.copy()
	orderings := make([]*Ordering, len(exprs))
	for i, e := range exprs {
		orderings[i] = asOrdering(e)
	}
	c.Orders = append(append([]*Ordering{}, c.Orders...), orderings...)
	return c
}

func asOrdering(e Expr) *Ordering {
	if o, ok := e.(*Ordering); ok {
		return o
	}
	return &Ordering{Expr: e, Dir: DirAsc}
}

// Limit sets LIMIT n.
func (s *Select) Limit(n int) *Select {
	c := s.copy()
	c.LimitVal = &n
	return c
}

// Offset sets OFFSET n.
func (s *Select) Offset(n int) *Select {
	c := s.copy()
	c.OffsetVal = &n
	return c
}

// Union combines this select with another relation via UNION.
func (s *Select) Union(other Node) *Union { return &Union{Left: s, Right: other, All: false} }

// UnionAll combines this select with another relation via UNION ALL.
func (s *Select) UnionAll(other Node) *Union { return &Union{Left: s, Right: other, All: true} }

// Col resolves name against this select's own output columns — the
// projection list it was built with — so a query can be composed on top
// of another by referencing its aliases. Panics with *relerr.ScopeMiss
// if name was never selected.
func (s *Select) Col(name string) *Column {
	for _, p := range s.Projections {
		if outputName(p) == name {
			c := &Column{Name: name, Source: s}
			c.ops.self = c
			return c
		}
	}
	panic(&relerr.ScopeMiss{Column: name})
}

func outputName(e Expr) string {
	switch n := e.(type) {
	case *Grouping:
		if n.Alias != "" {
			return n.Alias
		}
		return outputName(n.Expr)
	case *Column:
		return n.Name
	case *DeferredColumn:
		return n.Name
	default:
		return ""
	}
}
