package ast

// AggregateFunc identifies an aggregate function.
type AggregateFunc int

const (
	AggCount AggregateFunc = iota
	AggSum
	AggAvg
	AggMin
	AggMax
)

// Aggregate represents an aggregate function call: SUM(expr),
// COUNT(DISTINCT expr), etc.
type Aggregate struct {
	ops
	Func     AggregateFunc
	Expr     Expr // nil for COUNT(*)
	Distinct bool
}

func newAggregate(fn AggregateFunc, expr Expr) *Aggregate {
	n := &Aggregate{Func: fn, Expr: expr}
	n.ops.self = n
	return n
}

func (n *Aggregate) Accept(v Visitor) string { return v.VisitAggregate(n) }
func (n *Aggregate) exprNode()               {}

// CountStar builds a COUNT(*) aggregate.
func CountStar() *Aggregate { return newAggregate(AggCount, nil) }

// CountDistinct builds a COUNT(DISTINCT expr) aggregate.
func CountDistinct(expr Expr) *Aggregate {
	n := newAggregate(AggCount, expr)
	n.Distinct = true
	return n
}

// NamedFunction represents a named SQL function call.
type NamedFunction struct {
	ops
	Name string
	Args []Expr
}

// Func builds a NamedFunction node.
func Func(name string, args ...Expr) *NamedFunction {
	n := &NamedFunction{Name: name, Args: args}
	n.ops.self = n
	return n
}

func (n *NamedFunction) Accept(v Visitor) string { return v.VisitNamedFunction(n) }
func (n *NamedFunction) exprNode()               {}

// Random represents the dialect's random-value function, e.g. random()
// or RAND() depending on the bound Dialect.
type Random struct {
	ops
}

// NewRandom builds a Random node.
func NewRandom() *Random {
	n := &Random{}
	n.ops.self = n
	return n
}

func (n *Random) Accept(v Visitor) string { return v.VisitRandom(n) }
func (n *Random) exprNode()               {}

// CaseBranch is one WHEN cond THEN result pair.
type CaseBranch struct {
	Cond   Expr
	Result Expr
}

// Case represents a searched CASE expression: CASE WHEN ... THEN ... [ELSE ...] END.
type Case struct {
	ops
	Branches []CaseBranch
	ElseVal  Expr
}

func (n *Case) Accept(v Visitor) string { return v.VisitCase(n) }
func (n *Case) exprNode()               {}

// caseBuilder accumulates WHEN/THEN/ELSE before the Case node exists;
// When(cond) starts one, Then(result) commits it, chaining returns a
// builder so a follow-up When adds another branch.
type caseBuilder struct {
	branches []CaseBranch
	pending  Expr
}

// When starts a new CASE expression (or continues one) with a condition
// awaiting its Then.
func When(cond Expr) *caseBuilder {
	return &caseBuilder{pending: cond}
}

// Then completes the pending WHEN with its THEN result and returns the
// Case so far; call When again on it to add more branches, or Else to
// finish.
func (b *caseBuilder) Then(result Expr) *Case {
	n := &Case{Branches: append(append([]CaseBranch{}, b.branches...), CaseBranch{Cond: b.pending, Result: result})}
	n.ops.self = n
	return n
}

// When starts another WHEN branch on an existing Case; Then on the
// returned builder yields a fresh Case with the branch appended. An ELSE
// already set on n is not carried over.
func (n *Case) When(cond Expr) *caseBuilder {
	return &caseBuilder{branches: n.Branches, pending: cond}
}

// Else sets the ELSE branch, returning a fresh immutable Case.
func (n *Case) Else(result Expr) *Case {
	c := &Case{Branches: n.Branches, ElseVal: result}
	c.ops.self = c
	return c
}

// OrderDirection is ASC or DESC.
type OrderDirection int

const (
	DirAsc OrderDirection = iota
	DirDesc
)

// Ordering is one ORDER BY entry.
type Ordering struct {
	Expr Expr
	Dir  OrderDirection
}

func (n *Ordering) Accept(v Visitor) string { return v.VisitOrdering(n) }
func (n *Ordering) exprNode()               {}
