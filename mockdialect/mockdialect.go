// Package mockdialect provides the literal test dialect used throughout
// relast's own test suite: no identifier quoting, uppercase OFFSET/LIMIT,
// lowercase function-style hooks (concat, cast, random, is distinct from,
// explain, timestamp), and the simplest possible rendering of every
// Dialect hook. It has no
// business being used against a real database.
package mockdialect

import (
	"fmt"
	"strings"
	"time"
)

// Dialect is the zero-configuration compiler.Dialect used by tests and
// by cmd/relsql's default demo session.
type Dialect struct{}

// New returns a Dialect.
func New() Dialect { return Dialect{} }

func (Dialect) Quote(s string) string { return s }

func (Dialect) Concat(parts []string) string {
	return fmt.Sprintf("concat(%s)", strings.Join(parts, ", "))
}

func (Dialect) ToString(expr string) string {
	return fmt.Sprintf("cast(%s as varchar)", expr)
}

func (Dialect) IsDistinctFrom(a, b string) string {
	return fmt.Sprintf("%s is distinct from %s", a, b)
}

func (Dialect) Random() string { return "random()" }

func (Dialect) OffsetLimit(offset, limit *int) string {
	var parts []string
	if offset != nil {
		parts = append(parts, fmt.Sprintf("OFFSET %d", *offset))
	}
	if limit != nil {
		parts = append(parts, fmt.Sprintf("LIMIT %d", *limit))
	}
	return strings.Join(parts, " ")
}

func (Dialect) ExplainAsText(query string) string {
	return "explain " + query
}

func (Dialect) TimestampValue(t time.Time) string {
	return fmt.Sprintf("timestamp '%s'", t)
}

func (Dialect) RoundsOnPrecisionLoss() bool { return false }
