package ast

// CompareOp identifies a binary comparison operator.
type CompareOp int

const (
	OpEq CompareOp = iota
	OpNotEq
	OpGt
	OpGtEq
	OpLt
	OpLtEq
	OpLike
	OpNotLike
	OpDistinctFrom
	OpNotDistinctFrom
)

// Comparison is a binary predicate: Left <op> Right.
type Comparison struct {
	ops
	Left, Right Expr
	Op          CompareOp
}

func (n *Comparison) Accept(v Visitor) string { return v.VisitComparison(n) }
func (n *Comparison) exprNode()               {}

// LogicalOp identifies AND/OR.
type LogicalOp int

const (
	OpAnd LogicalOp = iota
	OpOr
)

// Logical is a boolean combination: Left AND/OR Right.
type Logical struct {
	ops
	Left, Right Expr
	Op          LogicalOp
}

func (n *Logical) Accept(v Visitor) string { return v.VisitLogical(n) }
func (n *Logical) exprNode()               {}

// Not negates a predicate.
type Not struct {
	ops
	Expr Expr
}

func (n *Not) Accept(v Visitor) string { return v.VisitNot(n) }
func (n *Not) exprNode()               {}

// In represents IN / NOT IN (vals...).
type In struct {
	ops
	Expr   Expr
	Vals   []Expr
	Negate bool
}

func (n *In) Accept(v Visitor) string { return v.VisitIn(n) }
func (n *In) exprNode()               {}

// Between represents BETWEEN / NOT BETWEEN low AND high.
type Between struct {
	ops
	Expr      Expr
	Low, High Expr
	Negate    bool
}

func (n *Between) Accept(v Visitor) string { return v.VisitBetween(n) }
func (n *Between) exprNode()               {}

// UnaryOp identifies a postfix unary predicate.
type UnaryOp int

const (
	OpIsNull UnaryOp = iota
	OpIsNotNull
)

// Unary represents Expr IS NULL / IS NOT NULL.
type Unary struct {
	ops
	Expr Expr
	Op   UnaryOp
}

func (n *Unary) Accept(v Visitor) string { return v.VisitUnary(n) }
func (n *Unary) exprNode()               {}

// InfixOp identifies an arithmetic operator.
type InfixOp int

const (
	OpPlus InfixOp = iota
	OpMinus
	OpMultiply
	OpDivide
)

// Infix represents a binary arithmetic expression: Left <op> Right.
type Infix struct {
	ops
	Left, Right Expr
	Op          InfixOp
}

func (n *Infix) Accept(v Visitor) string { return v.VisitInfix(n) }
func (n *Infix) exprNode()               {}

// UnaryMathOp identifies a prefix arithmetic operator.
type UnaryMathOp int

const (
	OpNeg UnaryMathOp = iota
)

// UnaryMath represents a prefix arithmetic expression: <op>Expr.
type UnaryMath struct {
	ops
	Expr Expr
	Op   UnaryMathOp
}

func (n *UnaryMath) Accept(v Visitor) string { return v.VisitUnaryMath(n) }
func (n *UnaryMath) exprNode()               {}

// Grouping wraps an expression in parentheses or, when Alias is set,
// names it as an output column of a Select projection list (see ops.As);
// an aliased Grouping renders as expr AS alias, with no extra parentheses.
type Grouping struct {
	ops
	Expr  Expr
	Alias string
}

func (n *Grouping) Accept(v Visitor) string { return v.VisitGrouping(n) }
func (n *Grouping) exprNode()               {}
