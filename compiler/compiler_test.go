package compiler_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bawdo/relast/ast"
	"github.com/bawdo/relast/compiler"
	"github.com/bawdo/relast/internal/relassert"
	"github.com/bawdo/relast/mockdialect"
	"github.com/bawdo/relast/relerr"
	"github.com/bawdo/relast/schema"
)

func newCompiler() *compiler.Compiler {
	return compiler.New(mockdialect.New())
}

func TestBasicSelectAndWhere(t *testing.T) {
	c := newCompiler()
	point := ast.Table("point", nil)

	q := point.Select(ast.This.Col("x").Plus(1).As("x"), point.Col("y").Plus(ast.This.Col("x")).As("y"))
	relassert.CompilesTo(t, c, q, "SELECT (x + 1) AS x, (y + x) AS y FROM point")

	filtered := point.Where(ast.This.Col("x").Eq(1), ast.This.Col("y").Eq(2))
	relassert.CompilesTo(t, c, filtered, "SELECT * FROM point WHERE (x = 1) AND (y = 2)")
}

func TestOuterJoinAliasesBothOperands(t *testing.T) {
	c := newCompiler()
	a := ast.Table("a", nil)
	b := ast.Table("b", nil)

	join := ast.Outerjoin(a, b).On(
		mustQualify(a, "x").Eq(mustQualify(b, "x")),
		mustQualify(a, "y").Eq(mustQualify(b, "y")),
	)
	relassert.CompilesTo(t, c, join,
		"SELECT * FROM a tmp1 FULL OUTER JOIN b tmp2 ON (tmp1.x = tmp2.x) AND (tmp1.y = tmp2.y)")
}

// mustQualify exists only so the join ON clause above can reference each
// side's bound column the way application code would: tbl.Col("x").
func mustQualify(t *ast.TableRef, col string) *ast.Column { return t.Col(col) }

func TestSchemaValidatesDeferredAndBoundColumns(t *testing.T) {
	sch := schema.NewCaseInsensitive(map[string]string{"id": "int", "comment": "text"})
	a := ast.Table("a", sch)

	boundCompiler := newCompiler()
	relassert.CompilesTo(t, boundCompiler, a.Select(a.Col("ID"), a.Col("Comment")), "SELECT id, comment FROM a")

	deferredCompiler := newCompiler()
	relassert.CompilesTo(t, deferredCompiler, a.Select(ast.This.Col("ID"), ast.This.Col("Comment")), "SELECT id, comment FROM a")

	sensitive := ast.Table("a", schema.New(map[string]string{"id": "int"}))
	require.Panics(t, func() { sensitive.Col("ID") })

	deferredMiss := newCompiler()
	_, err := deferredMiss.Compile(sensitive.Select(ast.This.Col("ID")))
	require.Error(t, err)
	require.ErrorAs(t, err, new(*relerr.SchemaMiss))
}

func TestCteHoistingAndRegistrationOrder(t *testing.T) {
	a := ast.Table("a", nil)

	single := newCompiler()
	cte := ast.NewCte(a.Select(ast.This.Col("x")))
	relassert.CompilesTo(t, single, cte.Select(ast.This.Col("x")),
		"WITH tmp1 AS (SELECT x FROM a) SELECT x FROM tmp1")

	nested := newCompiler()
	inner := ast.NewCte(a.Select(ast.This.Col("x")))
	outer := ast.NewCte(inner.Select(ast.This.Col("x")))
	relassert.CompilesTo(t, nested, outer.Select(ast.This.Col("x")),
		"WITH tmp1 AS (SELECT x FROM a), tmp2 AS (SELECT x FROM tmp1) SELECT x FROM tmp2")

	params := newCompiler()
	paramCte := ast.NewCte(a.Select(ast.This.Col("x")), "y")
	relassert.CompilesTo(t, params, paramCte.Select(ast.This.Col("y")),
		"WITH tmp1(y) AS (SELECT x FROM a) SELECT y FROM tmp1")
}

func TestRandomOrderAndLimit(t *testing.T) {
	c := newCompiler()
	a := ast.Table("a", nil)
	relassert.CompilesTo(t, c, a.OrderBy(ast.NewRandom()).Limit(10), "SELECT * FROM a ORDER BY random() LIMIT 10")
}

func TestSelectDistinctSequentialCompilesShareTheAliasCounter(t *testing.T) {
	c := newCompiler()
	a := ast.Table("a", nil)

	relassert.CompilesTo(t, c, a.Select(ast.This.Col("x")), "SELECT x FROM a")
	relassert.CompilesTo(t, c, a.SelectDistinct(ast.This.Col("x")), "SELECT DISTINCT x FROM a")

	sealed := a.Select(ast.This.Col("x")).Limit(5)
	relassert.CompilesTo(t, c, sealed.Select(ast.This.Col("x")),
		"SELECT x FROM (SELECT x FROM a LIMIT 5) tmp1")
	relassert.CompilesTo(t, c, sealed.SelectDistinct(ast.This.Col("x")),
		"SELECT DISTINCT x FROM (SELECT x FROM a LIMIT 5) tmp2")
}

func TestUnionDoesNotWrapTheRootInAnImplicitSelect(t *testing.T) {
	c := newCompiler()
	a := ast.Table("a", nil)
	b := ast.Table("b", nil)

	relassert.CompilesTo(t, c, a.Select(ast.This.Col("x")).Union(b.Select(ast.This.Col("y"))),
		"SELECT x FROM a UNION SELECT y FROM b")
}

func TestArithmeticLikeAndNegation(t *testing.T) {
	c := newCompiler()
	a := ast.Table("a", nil)

	relassert.CompilesTo(t, c, a.Select(ast.This.Col("b").Plus(ast.This.Col("c"))), "SELECT (b + c) FROM a")
	relassert.CompilesTo(t, c, a.Select(ast.This.Col("b").Like(ast.This.Col("c"))), "SELECT (b LIKE c) FROM a")
	relassert.CompilesTo(t, c, a.Select(ast.This.Col("b").Sum().Neg()), "SELECT (-SUM(b)) FROM a")
}

func TestGroupBySequentialCompilesAndHavingNeverWraps(t *testing.T) {
	c := newCompiler()
	a := ast.Table("a", nil)
	key := ast.This.Col("k")
	total := ast.This.Col("v").Sum().As("total")

	grouped := a.GroupBy([]ast.Expr{key}, []ast.Expr{total})
	relassert.CompilesTo(t, c, grouped, "SELECT k, SUM(v) AS total FROM a GROUP BY 1")

	withHaving := grouped.Having(ast.This.Col("v").Sum().Gt(10))
	relassert.CompilesTo(t, c, withHaving, "SELECT k, SUM(v) AS total FROM a GROUP BY 1 HAVING (SUM(v) > 10)")

	sealed := grouped.Limit(5)
	rewrapped := sealed.GroupBy([]ast.Expr{key}, []ast.Expr{total})
	sql, err := c.Compile(rewrapped)
	require.NoError(t, err)
	require.Contains(t, sql, "FROM (SELECT k, SUM(v) AS total FROM a GROUP BY 1 LIMIT 5) tmp1")

	relassert.CompilesTo(t, c, a.GroupBy([]ast.Expr{key}, nil), "SELECT k FROM a GROUP BY 1")
}

func TestCaseWhen(t *testing.T) {
	c := newCompiler()
	a := ast.Table("a", nil)

	plain := a.Select(ast.When(ast.This.Col("x").Gt(0)).Then(ast.NewLiteral("positive")))
	relassert.CompilesTo(t, c, plain, `SELECT CASE WHEN (x > 0) THEN 'positive' END FROM a`)

	withElse := a.Select(
		ast.When(ast.This.Col("x").Gt(0)).Then(ast.NewLiteral("positive")).Else(ast.NewLiteral("other")),
	)
	relassert.CompilesTo(t, c, withElse, `SELECT CASE WHEN (x > 0) THEN 'positive' ELSE 'other' END FROM a`)
}

func TestCommutableSelectAndWhere(t *testing.T) {
	a := ast.Table("a", nil)
	proj := ast.This.Col("b")
	cond := ast.This.Col("c").Eq(1)

	selectThenWhere := a.Select(proj).Where(cond)
	whereThenSelect := a.Where(cond).Select(proj)

	// Same projection and filter regardless of call order: the two
	// trees carry identical field values, not merely identical output.
	require.Equal(t, selectThenWhere, whereThenSelect)

	first := newCompiler()
	sql1, err := first.Compile(selectThenWhere)
	require.NoError(t, err)

	second := newCompiler()
	sql2, err := second.Compile(whereThenSelect)
	require.NoError(t, err)

	require.Equal(t, sql1, sql2)
}

func TestAmbiguousReferenceAcrossJoinedSchemas(t *testing.T) {
	c := newCompiler()
	a := ast.Table("a", schema.NewCaseInsensitive(map[string]string{"id": "ID"}))
	b := ast.Table("b", schema.NewCaseInsensitive(map[string]string{"id": "Id"}))

	join := ast.Innerjoin(a, b).On(mustQualify(a, "id").Eq(mustQualify(b, "id")))
	_, err := c.Compile(join.Select(ast.This.Col("id")))
	require.Error(t, err)
	var ambiguous *relerr.AmbiguousReference
	require.ErrorAs(t, err, &ambiguous)
	require.Equal(t, "id", ambiguous.Column)
}

func TestScopeMissOnUnknownProjectionReference(t *testing.T) {
	a := ast.Table("a", nil)
	sel := a.Select(ast.This.Col("x"))
	require.Panics(t, func() { sel.Col("never_selected") })
}

// TestConcreteScenarios directly encodes the numbered example queries,
// literally as given, one compiler per case since each is independent.
func TestConcreteScenarios(t *testing.T) {
	a := ast.Table("a", nil)

	relassert.CompilesTo(t, newCompiler(), a.Limit(10).SelectDistinct(ast.This.Col("b")),
		"SELECT DISTINCT b FROM (SELECT * FROM a LIMIT 10) tmp1")

	grouped := a.GroupBy([]ast.Expr{ast.This.Col("b")}, []ast.Expr{ast.This.Col("c")})
	relassert.CompilesTo(t, newCompiler(), grouped.Having(ast.This.Col("b").Sum().Gt(1)),
		"SELECT b, c FROM a GROUP BY 1 HAVING (SUM(b) > 1)")

	relassert.CompilesTo(t, newCompiler(), a.Select(
		ast.When(ast.This.Col("b")).Then(ast.This.Col("c")).Else(ast.This.Col("d")),
	), "SELECT CASE WHEN b THEN c ELSE d END FROM a")
}

func TestCompileRecoversRelErrPanicsOnly(t *testing.T) {
	c := newCompiler()
	sensitive := ast.Table("a", schema.New(map[string]string{"id": "int"}))
	_, err := c.Compile(sensitive.Select(ast.This.Col("nope")))
	require.Error(t, err)
	var miss *relerr.SchemaMiss
	require.ErrorAs(t, err, &miss)
}
