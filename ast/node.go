// Package ast defines the immutable query AST: expressions (columns,
// literals, operators, functions) and statements (table references,
// selects, joins, CTEs, unions). Every node implements Node and is
// rendered by a Visitor — in practice the one compiler.Compiler, kept
// separate here so the AST has no dependency on how it gets compiled.
package ast

// Node is the interface every AST element implements.
type Node interface {
	Accept(v Visitor) string
}

// Expr is a Node that yields a scalar value. Most concrete expression
// types embed the fluent operator mixin ops (Eq, And, Plus, ...) with
// self set to themselves; Star and Ordering do not, and the Expr
// interface itself does not include those methods.
type Expr interface {
	Node
	exprNode()
}

// Stmt is a Node that yields a relation (rows), and can itself be the
// source of a further Select/Join/Cte composition.
type Stmt interface {
	Node
	stmtNode()
}

// Visitor renders every concrete node type to SQL text. A Visitor also
// owns whatever per-compile state rendering needs (alias assignment,
// scope tracking); the AST itself holds none.
type Visitor interface {
	VisitTableRef(n *TableRef) string
	VisitColumn(n *Column) string
	VisitDeferredColumn(n *DeferredColumn) string
	VisitLiteral(n *Literal) string
	VisitSqlLiteral(n *SqlLiteral) string
	VisitStar(n *Star) string
	VisitComparison(n *Comparison) string
	VisitLogical(n *Logical) string
	VisitNot(n *Not) string
	VisitIn(n *In) string
	VisitBetween(n *Between) string
	VisitUnary(n *Unary) string
	VisitGrouping(n *Grouping) string
	VisitInfix(n *Infix) string
	VisitUnaryMath(n *UnaryMath) string
	VisitAggregate(n *Aggregate) string
	VisitNamedFunction(n *NamedFunction) string
	VisitRandom(n *Random) string
	VisitCase(n *Case) string
	VisitOrdering(n *Ordering) string
	VisitJoin(n *Join) string
	VisitSelect(n *Select) string
	VisitCte(n *Cte) string
	VisitUnion(n *Union) string
}
