// Package compiler renders a query AST (package ast) to a SQL string for
// a bound Dialect. The compiler performs alias assignment and CTE
// hoisting in the same depth-first walk that renders text: a relation
// that needs a generated alias (a join operand, a subquery used as a
// FROM source, a CTE) is registered the first time it is reached, and
// every later reference to that same node resolves to the alias already
// assigned — so the walk behaves like two passes (resolve, then render)
// without needing to be written as two separate ones.
package compiler

import "time"

// Dialect is the narrow set of vendor-specific hooks the compiler needs.
// Everything else about SQL generation is shared logic in Compiler.
type Dialect interface {
	// Quote quotes an identifier (table or column name) if the dialect
	// requires it; MockDialect-style dialects can return s unchanged.
	Quote(s string) string

	// Concat renders a multi-argument string concatenation.
	Concat(parts []string) string

	// ToString renders a cast-to-text of the given SQL expression text.
	ToString(expr string) string

	// IsDistinctFrom renders an IS DISTINCT FROM comparison between two
	// already-rendered operands.
	IsDistinctFrom(a, b string) string

	// Random renders a call to the dialect's random-value function.
	Random() string

	// OffsetLimit renders the OFFSET/LIMIT tail of a query. Either
	// pointer may be nil to omit that clause; an entirely empty result
	// omits the whole tail.
	OffsetLimit(offset, limit *int) string

	// ExplainAsText wraps a compiled query so it returns its own plan as
	// text rather than executing.
	ExplainAsText(query string) string

	// TimestampValue renders a timestamp literal.
	TimestampValue(t time.Time) string

	// RoundsOnPrecisionLoss reports whether numeric rounding in this
	// dialect can lose precision when comparing computed values;
	// exposed for callers to factor into their own tolerance decisions,
	// the compiler itself does not branch on it.
	RoundsOnPrecisionLoss() bool
}
