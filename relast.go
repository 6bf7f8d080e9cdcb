// Package relast provides a fluent, immutable SQL query AST and a
// dialect-aware compiler for Go.
//
// This package re-exports the commonly used types and constructors from
// its subpackages for convenience. Advanced users can import
// subpackages directly:
//   - github.com/bawdo/relast/ast (the query AST and its builders)
//   - github.com/bawdo/relast/compiler (the Dialect contract and Compiler)
//   - github.com/bawdo/relast/schema (column schemas for validation)
//   - github.com/bawdo/relast/mockdialect (the literal test dialect)
package relast

import (
	"github.com/bawdo/relast/ast"
	"github.com/bawdo/relast/compiler"
	"github.com/bawdo/relast/schema"
)

// --- Core types ---

// Node is the base interface every AST element implements.
type Node = ast.Node

// Expr is a Node that yields a scalar value.
type Expr = ast.Expr

// TableRef is a bound reference to a physical table.
type TableRef = ast.TableRef

// Select is the immutable query-shape node.
type Select = ast.Select

// Join is a binary relation produced by Outerjoin/Innerjoin/etc.
type Join = ast.Join

// Cte names a relation as a Common Table Expression.
type Cte = ast.Cte

// Schema attaches column-name/type information to a TableRef.
type Schema = schema.Schema

// Compiler renders a query AST to SQL for one bound Dialect.
type Compiler = compiler.Compiler

// Dialect is the narrow set of vendor-specific hooks the compiler needs.
type Dialect = compiler.Dialect

// --- Constructors ---

// Table creates a table reference, optionally validated against sch.
func Table(name string, sch *schema.Schema) *ast.TableRef { return ast.Table(name, sch) }

// This is the sentinel builder for deferred column references that
// resolve against whatever relation is in scope at compile time.
var This = ast.This

// NewSchema builds a case-sensitive column schema.
func NewSchema(columns map[string]string) *schema.Schema { return schema.New(columns) }

// NewCaseInsensitiveSchema builds a case-insensitive column schema.
func NewCaseInsensitiveSchema(columns map[string]string) *schema.Schema {
	return schema.NewCaseInsensitive(columns)
}

// NewCompiler binds a Compiler to dialect.
func NewCompiler(dialect compiler.Dialect) *compiler.Compiler { return compiler.New(dialect) }

// Outerjoin starts a FULL OUTER JOIN awaiting its ON condition.
func Outerjoin(left, right ast.Node) interface{ On(...ast.Expr) *ast.Join } {
	return ast.Outerjoin(left, right)
}

// Innerjoin starts an INNER JOIN awaiting its ON condition.
func Innerjoin(left, right ast.Node) interface{ On(...ast.Expr) *ast.Join } {
	return ast.Innerjoin(left, right)
}

// Leftjoin starts a LEFT OUTER JOIN awaiting its ON condition.
func Leftjoin(left, right ast.Node) interface{ On(...ast.Expr) *ast.Join } {
	return ast.Leftjoin(left, right)
}

// Rightjoin starts a RIGHT OUTER JOIN awaiting its ON condition.
func Rightjoin(left, right ast.Node) interface{ On(...ast.Expr) *ast.Join } {
	return ast.Rightjoin(left, right)
}

// Crossjoin builds a CROSS JOIN, which needs no condition.
func Crossjoin(left, right ast.Node) *ast.Join { return ast.Crossjoin(left, right) }

// NewCte wraps query as a Common Table Expression.
func NewCte(query ast.Node, params ...string) *ast.Cte { return ast.NewCte(query, params...) }

// When starts a searched CASE expression.
func When(cond ast.Expr) interface{ Then(ast.Expr) *ast.Case } { return ast.When(cond) }

// Random builds a call to the dialect's random-value function.
func Random() *ast.Random { return ast.NewRandom() }

// CountStar builds a COUNT(*) aggregate.
func CountStar() *ast.Aggregate { return ast.CountStar() }

// Func builds a named SQL function call.
func Func(name string, args ...ast.Expr) *ast.NamedFunction { return ast.Func(name, args...) }
