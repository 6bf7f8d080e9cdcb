package ast

// JoinKind identifies the kind of SQL JOIN.
type JoinKind int

const (
	InnerJoin JoinKind = iota
	LeftOuterJoin
	RightOuterJoin
	FullOuterJoin
	CrossJoin
)

// Join is a binary relation: Left <kind> Right [ON cond]. Like TableRef
// and Cte, a Join can itself be the From of a Select, or be compiled
// directly — an implicit SELECT * is assumed when it is.
type Join struct {
	Left, Right Node
	Kind        JoinKind
	On          Expr // nil only valid for CrossJoin
}

func (n *Join) Accept(v Visitor) string { return v.VisitJoin(n) }
func (n *Join) stmtNode()               {}

// joinBuilder holds a join awaiting its ON condition. A join besides
// CROSS JOIN cannot be used until On is called, mirroring how a caller
// must supply a join condition before the join means anything.
type joinBuilder struct {
	left, right Node
	kind        JoinKind
}

// On supplies the join condition(s), ANDed together, and returns the
// finished Join.
func (b *joinBuilder) On(conds ...Expr) *Join {
	var cond Expr
	for _, c := range conds {
		if cond == nil {
			cond = c
		} else {
			l := &Logical{Left: cond, Right: c, Op: OpAnd}
			l.ops.self = l
			cond = l
		}
	}
	return &Join{Left: b.left, Right: b.right, Kind: b.kind, On: cond}
}

// Outerjoin starts a FULL OUTER JOIN between left and right.
func Outerjoin(left, right Node) *joinBuilder {
	return &joinBuilder{left: left, right: right, kind: FullOuterJoin}
}

// Innerjoin starts an INNER JOIN between left and right.
func Innerjoin(left, right Node) *joinBuilder {
	return &joinBuilder{left: left, right: right, kind: InnerJoin}
}

// Leftjoin starts a LEFT OUTER JOIN between left and right.
func Leftjoin(left, right Node) *joinBuilder {
	return &joinBuilder{left: left, right: right, kind: LeftOuterJoin}
}

// Rightjoin starts a RIGHT OUTER JOIN between left and right.
func Rightjoin(left, right Node) *joinBuilder {
	return &joinBuilder{left: left, right: right, kind: RightOuterJoin}
}

// Crossjoin builds a CROSS JOIN, which needs no condition.
func Crossjoin(left, right Node) *Join {
	return &Join{Left: left, Right: right, Kind: CrossJoin}
}

// Builder methods start a fresh Select over the join, as TableRef and Cte do.
func (n *Join) Select(exprs ...Expr) *Select         { return fresh(n).Select(exprs...) }
func (n *Join) SelectDistinct(exprs ...Expr) *Select { return fresh(n).SelectDistinct(exprs...) }
func (n *Join) Where(exprs ...Expr) *Select          { return fresh(n).Where(exprs...) }
func (n *Join) GroupBy(keys, values []Expr) *Select  { return fresh(n).GroupBy(keys, values) }
func (n *Join) OrderBy(exprs ...Expr) *Select        { return fresh(n).OrderBy(exprs...) }
func (n *Join) Limit(v int) *Select                  { return fresh(n).Limit(v) }
func (n *Join) Offset(v int) *Select                 { return fresh(n).Offset(v) }
