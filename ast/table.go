package ast

import "github.com/bawdo/relast/schema"

// TableRef is a bound reference to a physical table, optionally carrying
// a schema for column validation and an alias for self-joins.
type TableRef struct {
	Name      string
	AliasName string
	Schema    *schema.Schema
}

// Table creates a table reference. Pass a *schema.Schema to validate and
// canonicalize column access through Col; omit it
// (nil) to accept any column name unchecked.
func Table(name string, sch *schema.Schema) *TableRef {
	return &TableRef{Name: name, Schema: sch}
}

func (t *TableRef) Accept(v Visitor) string { return v.VisitTableRef(t) }
func (t *TableRef) stmtNode()               {}

// Alias returns a copy of t bound under a new name, for self-joins.
func (t *TableRef) Alias(name string) *TableRef {
	c := *t
	c.AliasName = name
	return &c
}

// Qualifier returns the name that should qualify a column of this table:
// the alias if one was set, else the table name.
func (t *TableRef) Qualifier() string {
	if t.AliasName != "" {
		return t.AliasName
	}
	return t.Name
}

func (t *TableRef) Select(exprs ...Expr) *Select         { return fresh(t).Select(exprs...) }
func (t *TableRef) SelectDistinct(exprs ...Expr) *Select { return fresh(t).SelectDistinct(exprs...) }
func (t *TableRef) Where(exprs ...Expr) *Select          { return fresh(t).Where(exprs...) }
func (t *TableRef) GroupBy(keys, values []Expr) *Select  { return fresh(t).GroupBy(keys, values) }
func (t *TableRef) OrderBy(exprs ...Expr) *Select        { return fresh(t).OrderBy(exprs...) }
func (t *TableRef) Limit(v int) *Select                  { return fresh(t).Limit(v) }
func (t *TableRef) Offset(v int) *Select                 { return fresh(t).Offset(v) }

// Col binds a column reference to this table, validating and
// canonicalizing the name against the table's schema if one is set.
func (t *TableRef) Col(name string) *Column {
	resolved := name
	if t.Schema != nil {
		resolved = t.Schema.Lookup(t.Name, name)
	}
	n := &Column{Name: resolved, Source: t}
	n.ops.self = n
	return n
}

// Column is an explicitly bound column reference (tbl.Col("x") or
// tbl["x"] in builder terms). Unlike DeferredColumn it always knows
// which relation it came from, and is qualified at render time whenever
// that relation carries an alias.
type Column struct {
	ops
	Name   string
	Source Node // *TableRef, *Join, *Cte, or *Select this column was resolved from
}

func (n *Column) Accept(v Visitor) string { return v.VisitColumn(n) }
func (n *Column) exprNode()               {}

// deferredFactory is the sentinel builder for deferred ("this.x" in the
// implementation this spec was distilled from) column references —
// DeferredColumn resolves by unqualified name lookup against whatever
// relation it ends up scoped under, rather than a relation bound at
// construction time. See This.
type deferredFactory struct{}

// This constructs DeferredColumn references that resolve lazily, once
// the compiler knows which relation(s) are in scope.
var This deferredFactory

// Col builds a deferred reference to a column named name.
func (deferredFactory) Col(name string) *DeferredColumn {
	n := &DeferredColumn{Name: name}
	n.ops.self = n
	return n
}

// DeferredColumn is a column reference resolved by unqualified name
// lookup against the compiler's current scope, rather than a relation
// bound at build time. It always renders as the bare column name.
type DeferredColumn struct {
	ops
	Name string
}

func (n *DeferredColumn) Accept(v Visitor) string { return v.VisitDeferredColumn(n) }
func (n *DeferredColumn) exprNode()               {}
