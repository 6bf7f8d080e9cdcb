package compiler

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/bawdo/relast/ast"
	"github.com/bawdo/relast/relerr"
)

type cteEntry struct {
	alias  string
	body   string
	params []string
}

// Compiler renders an ast.Node tree to SQL for one bound Dialect.
//
// Its alias counter persists across separate Compile calls on the same
// instance — only New starts a fresh one — while everything else
// (the CTE table, the join/subquery alias map, the scope stack) is
// reset at the start of every Compile call, so a CTE registered by one
// compilation never leaks into the WITH clause of an unrelated later
// one.
type Compiler struct {
	dialect Dialect
	counter int

	cteAlias   map[ast.Node]string
	cteEntries []cteEntry
	relAlias   map[ast.Node]string
	scopeStack [][]*ast.TableRef
}

// New binds a Compiler to dialect, with its alias counter at zero.
func New(dialect Dialect) *Compiler {
	return &Compiler{dialect: dialect}
}

// Compile renders root to a SQL string. A bare relation (TableRef, Join
// or Cte) at the root is compiled as an implicit SELECT *. Builder and
// resolution errors raised as relerr panics anywhere in the tree are
// recovered here and returned as a plain error; any other panic is a
// real bug and is allowed to propagate.
func (c *Compiler) Compile(root ast.Node) (sql string, err error) {
	c.cteAlias = make(map[ast.Node]string)
	c.cteEntries = nil
	c.relAlias = make(map[ast.Node]string)
	c.scopeStack = nil

	defer func() {
		if r := recover(); r != nil {
			if e, ok := r.(error); ok && isRelErr(r) {
				err = e
				return
			}
			panic(r)
		}
	}()

	// A Select or Union is already a complete query; anything else (a
	// bare TableRef, Join or Cte) is an implicit SELECT * over it.
	var top ast.Node = root
	switch root.(type) {
	case *ast.Select, *ast.Union:
	default:
		top = &ast.Select{From: root}
	}
	body := top.Accept(c)
	if len(c.cteEntries) == 0 {
		return body, nil
	}
	parts := make([]string, len(c.cteEntries))
	for i, e := range c.cteEntries {
		name := e.alias
		if len(e.params) > 0 {
			name = e.alias + "(" + strings.Join(e.params, ", ") + ")"
		}
		parts[i] = name + " AS (" + e.body + ")"
	}
	return "WITH " + strings.Join(parts, ", ") + " " + body, nil
}

func isRelErr(r any) bool {
	switch r.(type) {
	case *relerr.SchemaMiss, *relerr.ScopeMiss, *relerr.AmbiguousReference,
		*relerr.StructuralError, *relerr.DialectUnsupported:
		return true
	default:
		return false
	}
}

func (c *Compiler) nextAlias() string {
	c.counter++
	return "tmp" + strconv.Itoa(c.counter)
}

// resolveCte registers n the first time it is seen (recursively
// rendering — and so registering — anything n itself depends on) and
// returns its assigned WITH-clause alias on every call.
func (c *Compiler) resolveCte(n *ast.Cte) string {
	if alias, ok := c.cteAlias[n]; ok {
		return alias
	}
	body := n.Query.Accept(c)
	alias := c.nextAlias()
	c.cteAlias[n] = alias
	c.cteEntries = append(c.cteEntries, cteEntry{alias: alias, body: body, params: n.Params})
	return alias
}

// renderFrom renders a Select's From clause. A nested Select or Union
// always gets wrapped in parens and assigned a fresh alias; everything
// else (TableRef, Join, Cte) renders through its own Accept.
func (c *Compiler) renderFrom(from ast.Node) string {
	switch f := from.(type) {
	case *ast.Select:
		inner := f.Accept(c)
		alias := c.nextAlias()
		c.relAlias[f] = alias
		return "(" + inner + ") " + alias
	case *ast.Union:
		inner := f.Accept(c)
		alias := c.nextAlias()
		c.relAlias[f] = alias
		return "(" + inner + ") " + alias
	default:
		return from.Accept(c)
	}
}

// renderJoinOperand renders one side of a Join. Unlike a plain Select's
// From, every join operand is always assigned a fresh alias — even a
// bare table — since a join's ON clause must be able to qualify columns
// from either side unambiguously.
func (c *Compiler) renderJoinOperand(n ast.Node) string {
	if t, ok := n.(*ast.TableRef); ok {
		alias := c.nextAlias()
		c.relAlias[t] = alias
		return t.Name + " " + alias
	}
	inner := n.Accept(c)
	alias := c.nextAlias()
	c.relAlias[n] = alias
	return inner + " " + alias
}

// qualifierFor decides what (if anything) should prefix a bound
// Column's name. A relation only needs qualifying once it shares scope
// with another — a join operand, or a Select/Union wrapped as a nested
// subquery by renderFrom — which is exactly when relAlias carries an
// entry for it. A bare table as the sole FROM of its Select, or a bare
// CTE the same way, renders its columns unqualified, same as the
// single-relation case in the implementation this behavior is modeled
// on; only an explicit TableRef.Alias() also forces qualification.
func (c *Compiler) qualifierFor(src ast.Node) string {
	if alias, ok := c.relAlias[src]; ok {
		return alias
	}
	if t, ok := src.(*ast.TableRef); ok && t.AliasName != "" {
		return t.AliasName
	}
	return ""
}

func reachableTables(n ast.Node) []*ast.TableRef {
	switch t := n.(type) {
	case *ast.TableRef:
		return []*ast.TableRef{t}
	case *ast.Join:
		return append(reachableTables(t.Left), reachableTables(t.Right)...)
	default:
		return nil
	}
}

func (c *Compiler) currentScope() []*ast.TableRef {
	if len(c.scopeStack) == 0 {
		return nil
	}
	return c.scopeStack[len(c.scopeStack)-1]
}

// resolveDeferred validates and canonicalizes a DeferredColumn's name
// against whatever tables are in the current scope. A name that no
// in-scope schema recognizes, when at least one in-scope table carries
// a schema, is a SchemaMiss; a name that the schemas of two different
// in-scope tables both recognize is ambiguous.
func (c *Compiler) resolveDeferred(name string) string {
	scope := c.currentScope()
	hasSchema := false
	resolved := name
	matched := false
	for _, t := range scope {
		if t.Schema == nil {
			continue
		}
		hasSchema = true
		if canon, ok := t.Schema.TryLookup(name); ok {
			if matched {
				panic(&relerr.AmbiguousReference{Column: name})
			}
			resolved = canon
			matched = true
		}
	}
	if hasSchema && !matched {
		table := ""
		if len(scope) > 0 {
			table = scope[0].Name
		}
		panic(&relerr.SchemaMiss{Table: table, Column: name})
	}
	return resolved
}

func indexOf(projections []ast.Expr, target ast.Expr) int {
	for i, p := range projections {
		if p == target {
			return i
		}
	}
	return -1
}

// --- Visitor implementation ---

func (c *Compiler) VisitTableRef(n *ast.TableRef) string {
	if n.AliasName != "" {
		return n.Name + " " + n.AliasName
	}
	return n.Name
}

func (c *Compiler) VisitColumn(n *ast.Column) string {
	name := c.dialect.Quote(n.Name)
	q := c.qualifierFor(n.Source)
	if q == "" {
		return name
	}
	return c.dialect.Quote(q) + "." + name
}

func (c *Compiler) VisitDeferredColumn(n *ast.DeferredColumn) string {
	return c.dialect.Quote(c.resolveDeferred(n.Name))
}

func (c *Compiler) VisitLiteral(n *ast.Literal) string {
	return c.renderLiteralValue(n.Value)
}

func (c *Compiler) renderLiteralValue(v any) string {
	switch val := v.(type) {
	case nil:
		return "NULL"
	case bool:
		if val {
			return "TRUE"
		}
		return "FALSE"
	case string:
		return "'" + strings.ReplaceAll(val, "'", "''") + "'"
	case time.Time:
		return c.dialect.TimestampValue(val)
	default:
		return fmt.Sprint(val)
	}
}

func (c *Compiler) VisitSqlLiteral(n *ast.SqlLiteral) string { return n.Raw }

func (c *Compiler) VisitStar(n *ast.Star) string {
	if n.Table == nil {
		return "*"
	}
	return n.Table.Qualifier() + ".*"
}

var compareOps = map[ast.CompareOp]string{
	ast.OpEq: "=", ast.OpNotEq: "<>", ast.OpGt: ">", ast.OpGtEq: ">=",
	ast.OpLt: "<", ast.OpLtEq: "<=", ast.OpLike: "LIKE", ast.OpNotLike: "NOT LIKE",
}

func (c *Compiler) VisitComparison(n *ast.Comparison) string {
	left := n.Left.Accept(c)
	right := n.Right.Accept(c)
	if n.Op == ast.OpDistinctFrom {
		return "(" + c.dialect.IsDistinctFrom(left, right) + ")"
	}
	if n.Op == ast.OpNotDistinctFrom {
		return "(NOT " + c.dialect.IsDistinctFrom(left, right) + ")"
	}
	return "(" + left + " " + compareOps[n.Op] + " " + right + ")"
}

func (c *Compiler) VisitLogical(n *ast.Logical) string {
	op := "AND"
	if n.Op == ast.OpOr {
		op = "OR"
	}
	return "(" + n.Left.Accept(c) + " " + op + " " + n.Right.Accept(c) + ")"
}

func (c *Compiler) VisitNot(n *ast.Not) string {
	return "(NOT " + n.Expr.Accept(c) + ")"
}

func (c *Compiler) VisitIn(n *ast.In) string {
	parts := make([]string, len(n.Vals))
	for i, v := range n.Vals {
		parts[i] = v.Accept(c)
	}
	op := "IN"
	if n.Negate {
		op = "NOT IN"
	}
	return "(" + n.Expr.Accept(c) + " " + op + " (" + strings.Join(parts, ", ") + "))"
}

func (c *Compiler) VisitBetween(n *ast.Between) string {
	op := "BETWEEN"
	if n.Negate {
		op = "NOT BETWEEN"
	}
	return "(" + n.Expr.Accept(c) + " " + op + " " + n.Low.Accept(c) + " AND " + n.High.Accept(c) + ")"
}

func (c *Compiler) VisitUnary(n *ast.Unary) string {
	op := "IS NULL"
	if n.Op == ast.OpIsNotNull {
		op = "IS NOT NULL"
	}
	return "(" + n.Expr.Accept(c) + " " + op + ")"
}

func (c *Compiler) VisitGrouping(n *ast.Grouping) string {
	inner := n.Expr.Accept(c)
	if n.Alias != "" {
		return inner + " AS " + c.dialect.Quote(n.Alias)
	}
	return "(" + inner + ")"
}

var infixOps = map[ast.InfixOp]string{
	ast.OpPlus: "+", ast.OpMinus: "-", ast.OpMultiply: "*", ast.OpDivide: "/",
}

func (c *Compiler) VisitInfix(n *ast.Infix) string {
	return "(" + n.Left.Accept(c) + " " + infixOps[n.Op] + " " + n.Right.Accept(c) + ")"
}

func (c *Compiler) VisitUnaryMath(n *ast.UnaryMath) string {
	return "(-" + n.Expr.Accept(c) + ")"
}

var aggNames = map[ast.AggregateFunc]string{
	ast.AggCount: "COUNT", ast.AggSum: "SUM", ast.AggAvg: "AVG",
	ast.AggMin: "MIN", ast.AggMax: "MAX",
}

func (c *Compiler) VisitAggregate(n *ast.Aggregate) string {
	arg := "*"
	if n.Expr != nil {
		arg = n.Expr.Accept(c)
	}
	if n.Distinct {
		arg = "DISTINCT " + arg
	}
	return aggNames[n.Func] + "(" + arg + ")"
}

func (c *Compiler) VisitNamedFunction(n *ast.NamedFunction) string {
	parts := make([]string, len(n.Args))
	for i, a := range n.Args {
		parts[i] = a.Accept(c)
	}
	return n.Name + "(" + strings.Join(parts, ", ") + ")"
}

func (c *Compiler) VisitRandom(n *ast.Random) string { return c.dialect.Random() }

func (c *Compiler) VisitCase(n *ast.Case) string {
	var sb strings.Builder
	sb.WriteString("CASE")
	for _, b := range n.Branches {
		sb.WriteString(" WHEN ")
		sb.WriteString(b.Cond.Accept(c))
		sb.WriteString(" THEN ")
		sb.WriteString(b.Result.Accept(c))
	}
	if n.ElseVal != nil {
		sb.WriteString(" ELSE ")
		sb.WriteString(n.ElseVal.Accept(c))
	}
	sb.WriteString(" END")
	return sb.String()
}

func (c *Compiler) VisitOrdering(n *ast.Ordering) string {
	s := n.Expr.Accept(c)
	if n.Dir == ast.DirDesc {
		s += " DESC"
	}
	return s
}

var joinKeywords = map[ast.JoinKind]string{
	ast.InnerJoin: "INNER JOIN", ast.LeftOuterJoin: "LEFT OUTER JOIN",
	ast.RightOuterJoin: "RIGHT OUTER JOIN", ast.FullOuterJoin: "FULL OUTER JOIN",
	ast.CrossJoin: "CROSS JOIN",
}

func (c *Compiler) VisitJoin(n *ast.Join) string {
	left := c.renderJoinOperand(n.Left)
	right := c.renderJoinOperand(n.Right)
	sql := left + " " + joinKeywords[n.Kind] + " " + right
	if n.On != nil {
		// A top-level chain of ANDs (what On builds from several
		// predicates) renders as a flat conjunction, as WHERE does.
		var conds []ast.Expr
		e := n.On
		for {
			l, ok := e.(*ast.Logical)
			if !ok || l.Op != ast.OpAnd {
				break
			}
			conds = append([]ast.Expr{l.Right}, conds...)
			e = l.Left
		}
		conds = append([]ast.Expr{e}, conds...)
		sql += " ON " + c.renderConjunction(conds)
	}
	return sql
}

func (c *Compiler) VisitSelect(n *ast.Select) string {
	c.scopeStack = append(c.scopeStack, reachableTables(n.From))
	fromSQL := c.renderFrom(n.From)

	var sb strings.Builder
	sb.WriteString("SELECT ")
	if n.DistinctVal {
		sb.WriteString("DISTINCT ")
	}
	if len(n.Projections) == 0 {
		sb.WriteString("*")
	} else {
		parts := make([]string, len(n.Projections))
		for i, p := range n.Projections {
			parts[i] = p.Accept(c)
		}
		sb.WriteString(strings.Join(parts, ", "))
	}
	sb.WriteString(" FROM ")
	sb.WriteString(fromSQL)

	if len(n.Wheres) > 0 {
		sb.WriteString(" WHERE ")
		sb.WriteString(c.renderConjunction(n.Wheres))
	}
	if len(n.Groups) > 0 {
		positions := make([]string, len(n.Groups))
		for i, g := range n.Groups {
			positions[i] = strconv.Itoa(indexOf(n.Projections, g) + 1)
		}
		sb.WriteString(" GROUP BY ")
		sb.WriteString(strings.Join(positions, ", "))
	}
	if len(n.Havings) > 0 {
		sb.WriteString(" HAVING ")
		sb.WriteString(c.renderConjunction(n.Havings))
	}
	if len(n.Orders) > 0 {
		parts := make([]string, len(n.Orders))
		for i, o := range n.Orders {
			parts[i] = o.Accept(c)
		}
		sb.WriteString(" ORDER BY ")
		sb.WriteString(strings.Join(parts, ", "))
	}
	if tail := c.dialect.OffsetLimit(n.OffsetVal, n.LimitVal); tail != "" {
		sb.WriteString(" ")
		sb.WriteString(tail)
	}

	c.scopeStack = c.scopeStack[:len(c.scopeStack)-1]
	return sb.String()
}

func (c *Compiler) renderConjunction(exprs []ast.Expr) string {
	parts := make([]string, len(exprs))
	for i, e := range exprs {
		parts[i] = e.Accept(c)
	}
	return strings.Join(parts, " AND ")
}

func (c *Compiler) VisitCte(n *ast.Cte) string { return c.resolveCte(n) }

func (c *Compiler) VisitUnion(n *ast.Union) string {
	kw := "UNION"
	if n.All {
		kw = "UNION ALL"
	}
	return n.Left.Accept(c) + " " + kw + " " + n.Right.Accept(c)
}
