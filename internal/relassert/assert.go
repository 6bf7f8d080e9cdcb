// Package relassert adds the one assertion shape that recurs in every
// compiler test and that a bare testify call doesn't shorten any
// further: compile a node and compare the result against an expected
// SQL string.
package relassert

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bawdo/relast/ast"
	"github.com/bawdo/relast/compiler"
)

// CompilesTo compiles query with c and asserts the result equals want.
func CompilesTo(t *testing.T, c *compiler.Compiler, query ast.Node, want string) {
	t.Helper()
	got, err := c.Compile(query)
	if !assert.NoError(t, err) {
		return
	}
	assert.Equal(t, want, got)
}
