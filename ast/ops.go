package ast

// ops provides the fluent operator methods shared by every expression
// node. self must be set to the embedding node by its constructor so
// that chained comparisons reference the right left-hand side — the
// same self-pointer mixin shape bawdo-gosbee's Predications/Combinable/
// Arithmetics use, collapsed into one mixin since relast's operator set
// is narrower (only what spec.md §6 lists).
type ops struct {
	self Expr
}

func wrap(v any) Expr {
	if e, ok := v.(Expr); ok {
		return e
	}
	return NewLiteral(v)
}

func (o ops) cmp(op CompareOp, val any) *Comparison {
	n := &Comparison{Left: o.self, Right: wrap(val), Op: op}
	n.ops.self = n
	return n
}

func (o ops) Eq(val any) *Comparison      { return o.cmp(OpEq, val) }
func (o ops) NotEq(val any) *Comparison   { return o.cmp(OpNotEq, val) }
func (o ops) Gt(val any) *Comparison      { return o.cmp(OpGt, val) }
func (o ops) GtEq(val any) *Comparison    { return o.cmp(OpGtEq, val) }
func (o ops) Lt(val any) *Comparison      { return o.cmp(OpLt, val) }
func (o ops) LtEq(val any) *Comparison    { return o.cmp(OpLtEq, val) }
func (o ops) Like(val any) *Comparison    { return o.cmp(OpLike, val) }
func (o ops) NotLike(val any) *Comparison { return o.cmp(OpNotLike, val) }

// IsDistinctFrom and IsNotDistinctFrom go through the dialect's
// is_distinct_from hook at compile time rather than rendering an
// operator directly, since not every engine spells it the same way.
func (o ops) IsDistinctFrom(val any) *Comparison    { return o.cmp(OpDistinctFrom, val) }
func (o ops) IsNotDistinctFrom(val any) *Comparison { return o.cmp(OpNotDistinctFrom, val) }

func (o ops) In(vals ...any) *In {
	wrapped := make([]Expr, len(vals))
	for i, v := range vals {
		wrapped[i] = wrap(v)
	}
	n := &In{Expr: o.self, Vals: wrapped}
	n.ops.self = n
	return n
}

func (o ops) NotIn(vals ...any) *In {
	n := o.In(vals...)
	n.Negate = true
	return n
}

func (o ops) Between(low, high any) *Between {
	n := &Between{Expr: o.self, Low: wrap(low), High: wrap(high)}
	n.ops.self = n
	return n
}

func (o ops) NotBetween(low, high any) *Between {
	n := o.Between(low, high)
	n.Negate = true
	return n
}

func (o ops) IsNull() *Unary {
	n := &Unary{Expr: o.self, Op: OpIsNull}
	n.ops.self = n
	return n
}

func (o ops) IsNotNull() *Unary {
	n := &Unary{Expr: o.self, Op: OpIsNotNull}
	n.ops.self = n
	return n
}

func (o ops) And(other Expr) *Logical {
	n := &Logical{Left: o.self, Right: other, Op: OpAnd}
	n.ops.self = n
	return n
}

func (o ops) Or(other Expr) *Logical {
	n := &Logical{Left: o.self, Right: other, Op: OpOr}
	n.ops.self = n
	return n
}

func (o ops) Not() *Not {
	n := &Not{Expr: o.self}
	n.ops.self = n
	return n
}

func (o ops) infix(op InfixOp, val any) *Infix {
	n := &Infix{Left: o.self, Right: wrap(val), Op: op}
	n.ops.self = n
	return n
}

func (o ops) Plus(val any) *Infix     { return o.infix(OpPlus, val) }
func (o ops) Minus(val any) *Infix    { return o.infix(OpMinus, val) }
func (o ops) Multiply(val any) *Infix { return o.infix(OpMultiply, val) }
func (o ops) Divide(val any) *Infix   { return o.infix(OpDivide, val) }

// Neg returns the unary negation of the expression: -self.
func (o ops) Neg() *UnaryMath {
	n := &UnaryMath{Expr: o.self, Op: OpNeg}
	n.ops.self = n
	return n
}

func (o ops) Sum() *Aggregate { return newAggregate(AggSum, o.self) }
func (o ops) Count() *Aggregate {
	return newAggregate(AggCount, o.self)
}
func (o ops) Avg() *Aggregate { return newAggregate(AggAvg, o.self) }
func (o ops) Min() *Aggregate { return newAggregate(AggMin, o.self) }
func (o ops) Max() *Aggregate { return newAggregate(AggMax, o.self) }

// As wraps self under an output alias for a Select projection list.
func (o ops) As(name string) *Grouping {
	n := &Grouping{Expr: o.self, Alias: name}
	n.ops.self = n
	return n
}

// Asc/Desc produce ORDER BY entries.
func (o ops) Asc() *Ordering  { return &Ordering{Expr: o.self, Dir: DirAsc} }
func (o ops) Desc() *Ordering { return &Ordering{Expr: o.self, Dir: DirDesc} }
