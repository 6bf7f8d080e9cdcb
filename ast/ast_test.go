package ast_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bawdo/relast/ast"
	"github.com/bawdo/relast/relerr"
	"github.com/bawdo/relast/schema"
)

func TestSelectWrapsOnceSealedByProjections(t *testing.T) {
	a := ast.Table("a", nil)
	first := a.Select(ast.This.Col("x"))
	second := first.Select(ast.This.Col("y"))

	wrapped, ok := second.From.(*ast.Select)
	require.True(t, ok, "a Select on an already-sealed Select must wrap it as From")
	require.Same(t, first, wrapped)
}

func TestBareSelectOnSealedSelectDropsInsteadOfWrapping(t *testing.T) {
	a := ast.Table("a", nil)
	first := a.Select(ast.This.Col("x"))

	require.Same(t, first, first.Select(), "a no-op Select() on an already-sealed Select must drop, not wrap")

	// Changing the distinct flag still needs to wrap: it is not a no-op.
	distinct := first.SelectDistinct()
	require.NotSame(t, first, distinct)
	wrapped, ok := distinct.From.(*ast.Select)
	require.True(t, ok)
	require.Same(t, first, wrapped)

	// A repeated SelectDistinct() with no new projections drops again.
	require.Same(t, distinct, distinct.SelectDistinct())
}

func TestSelectMergesWhileUnsealed(t *testing.T) {
	a := ast.Table("a", nil)
	withWhere := a.Where(ast.This.Col("x").Eq(1))
	projected := withWhere.Select(ast.This.Col("x"))

	require.Same(t, a, projected.From, "Select on an unsealed Select must merge onto a copy, not wrap")
	require.Len(t, projected.Wheres, 1)
}

func TestLimitOffsetHavingOrderByNeverWrap(t *testing.T) {
	a := ast.Table("a", nil)
	sel := a.GroupBy([]ast.Expr{ast.This.Col("x")}, nil)

	limited := sel.Limit(5).Offset(2)
	_, wrapped := limited.From.(*ast.Select)
	require.False(t, wrapped, "Limit and Offset must decorate the receiver, not wrap it")

	withHaving := limited.Having(ast.This.Col("x").Gt(0))
	_, wrapped = withHaving.From.(*ast.Select)
	require.False(t, wrapped, "Having must never wrap, even on a sealed Select")

	ordered := withHaving.OrderBy(ast.This.Col("x"))
	_, wrapped = ordered.From.(*ast.Select)
	require.False(t, wrapped, "OrderBy must never wrap")
	require.Len(t, ordered.Orders, 1)
	require.Equal(t, ast.DirAsc, ordered.Orders[0].Dir)
}

func TestHavingRequiresAPriorGroupBy(t *testing.T) {
	a := ast.Table("a", nil)
	sel := a.Select(ast.This.Col("x"))

	require.PanicsWithValue(t, &relerr.StructuralError{Msg: "having without a prior group_by"}, func() {
		sel.Having(ast.This.Col("x").Gt(0))
	})

	grouped := sel.GroupBy([]ast.Expr{ast.This.Col("x")}, nil)
	require.NotPanics(t, func() { grouped.Having(ast.This.Col("x").Gt(0)) })
}

func TestGroupByWrapsWhenSealed(t *testing.T) {
	a := ast.Table("a", nil)
	sealed := a.Select(ast.This.Col("x")).Limit(10)
	grouped := sealed.GroupBy([]ast.Expr{ast.This.Col("x")}, nil)

	wrapped, ok := grouped.From.(*ast.Select)
	require.True(t, ok)
	require.Same(t, sealed, wrapped)
}

func TestOpsChainAndOr(t *testing.T) {
	a := ast.Table("a", nil)
	var cond ast.Expr = a.Col("x").Eq(1).And(a.Col("y").Eq(2)).Or(a.Col("z").IsNull())
	logical, ok := cond.(*ast.Logical)
	require.True(t, ok)
	require.Equal(t, ast.OpOr, logical.Op)
}

func TestInAndBetweenNegation(t *testing.T) {
	a := ast.Table("a", nil)
	in := a.Col("x").NotIn(1, 2, 3)
	require.True(t, in.Negate)
	require.Len(t, in.Vals, 3)

	between := a.Col("x").NotBetween(1, 10)
	require.True(t, between.Negate)
}

func TestCaseBuilderChainsMultipleBranches(t *testing.T) {
	c := ast.When(ast.NewLiteral(true)).Then(ast.NewLiteral(1)).
		When(ast.NewLiteral(false)).Then(ast.NewLiteral(2)).
		Else(ast.NewLiteral(0))
	require.Len(t, c.Branches, 2)
	require.NotNil(t, c.ElseVal)
}

func TestTableColValidatesCaseSensitiveSchema(t *testing.T) {
	sch := schema.New(map[string]string{"id": "int"})
	a := ast.Table("a", sch)

	require.NotPanics(t, func() { a.Col("id") })
	require.PanicsWithValue(t, &relerr.SchemaMiss{Table: "a", Column: "Id"}, func() { a.Col("Id") })
}

func TestCteColValidatesParamsOrInnerSelect(t *testing.T) {
	a := ast.Table("a", nil)
	inner := a.Select(ast.This.Col("x"), ast.This.Col("y"))

	unnamed := ast.NewCte(inner)
	require.NotPanics(t, func() { unnamed.Col("x") })
	require.Panics(t, func() { unnamed.Col("z") })

	named := ast.NewCte(inner, "only")
	require.NotPanics(t, func() { named.Col("only") })
	require.Panics(t, func() { named.Col("x") })
}

func TestSelectColResolvesOwnProjectionsOnly(t *testing.T) {
	a := ast.Table("a", nil)
	sel := a.Select(ast.This.Col("x").As("renamed"))

	require.NotPanics(t, func() { sel.Col("renamed") })
	require.Panics(t, func() { sel.Col("x") })
}

func TestStarOfAndAnyStar(t *testing.T) {
	a := ast.Table("a", nil)
	qualified := ast.StarOf(a)
	require.Same(t, a, qualified.Table)

	bare := ast.AnyStar()
	require.Nil(t, bare.Table)
}

func TestCrossjoinNeedsNoCondition(t *testing.T) {
	a := ast.Table("a", nil)
	b := ast.Table("b", nil)
	j := ast.Crossjoin(a, b)
	require.Nil(t, j.On)
	require.Equal(t, ast.CrossJoin, j.Kind)
}
