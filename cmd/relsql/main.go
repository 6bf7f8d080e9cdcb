// relsql is an interactive session for building queries against the
// relast AST and printing the SQL a chosen dialect would render for
// them. It never opens a database connection — per this module's
// design, execution against a live engine is explicitly out of scope.
//
// Configuration (env vars):
//
//	RELAST_DIALECT=mock|demo  (default mock)
//
// Usage:
//
//	go run ./cmd/relsql
package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ergochat/readline"

	"github.com/bawdo/relast/ast"
	"github.com/bawdo/relast/compiler"
	"github.com/bawdo/relast/mockdialect"
)

func main() {
	rl, err := readline.NewFromConfig(&readline.Config{
		Prompt:          "relsql> ",
		HistoryFile:     historyPath(),
		HistoryLimit:    500,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "readline init: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = rl.Close() }()

	dialect := loadDialect()
	sess := newSession(dialect)

	fmt.Println("relsql — type 'help' for commands, 'exit' to quit")
	fmt.Println()

	for {
		line, err := rl.ReadLine()
		if errors.Is(err, readline.ErrInterrupt) {
			continue
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			break
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		lower := strings.ToLower(line)
		if lower == "exit" || lower == "quit" {
			break
		}
		if err := sess.execute(line); err != nil {
			log.Printf("  Error: %v", err)
		}
	}
	fmt.Println()
}

func loadDialect() string {
	d := strings.TrimSpace(strings.ToLower(os.Getenv("RELAST_DIALECT")))
	if d == "" {
		d = "mock"
	}
	if d != "mock" && d != "demo" {
		log.Printf("Warning: unknown RELAST_DIALECT=%q, defaulting to mock", d)
		d = "mock"
	}
	return d
}

// dialectFor resolves the named demo dialect to the compiler.Dialect it
// should bind. "demo" exists purely so the REPL has a second dialect to
// point at besides the test-only mockdialect, without pretending either
// one targets a real database engine.
func dialectFor(name string) compiler.Dialect {
	if name == "demo" {
		return demoDialect{}
	}
	return mockdialect.New()
}

func historyPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".relsql_history")
}

// session holds the state of one interactive query-building pass: the
// registered tables, the query built so far, and the bound compiler.
type session struct {
	tables map[string]*ast.TableRef
	query  ast.Node
	c      *compiler.Compiler
}

func newSession(dialect string) *session {
	return &session{
		tables: make(map[string]*ast.TableRef),
		c:      compiler.New(dialectFor(dialect)),
	}
}

// demoDialect is a second, equally non-production Dialect: ANSI double
// quoting and uppercase keywords, so the REPL can show that rendering
// actually depends on the bound Dialect without shipping anything that
// looks like a real vendor target.
type demoDialect struct{}

func (demoDialect) Quote(s string) string { return `"` + s + `"` }

func (demoDialect) Concat(parts []string) string {
	return "CONCAT(" + strings.Join(parts, ", ") + ")"
}

func (demoDialect) ToString(expr string) string { return "CAST(" + expr + " AS TEXT)" }

func (demoDialect) IsDistinctFrom(a, b string) string {
	return a + " IS DISTINCT FROM " + b
}

func (demoDialect) Random() string { return "RANDOM()" }

func (demoDialect) OffsetLimit(offset, limit *int) string {
	var parts []string
	if limit != nil {
		parts = append(parts, fmt.Sprintf("LIMIT %d", *limit))
	}
	if offset != nil {
		parts = append(parts, fmt.Sprintf("OFFSET %d", *offset))
	}
	return strings.Join(parts, " ")
}

func (demoDialect) ExplainAsText(query string) string { return "EXPLAIN " + query }

func (demoDialect) TimestampValue(t time.Time) string {
	return "TIMESTAMP '" + t.Format(time.RFC3339) + "'"
}

func (demoDialect) RoundsOnPrecisionLoss() bool { return true }

var errNoQuery = errors.New("no query defined (use 'table <name>' then 'from <name>' first)")

func (s *session) execute(line string) error {
	switch {
	case line == "help":
		s.printHelp()
		return nil
	case line == "reset":
		s.query = nil
		return nil
	case line == "sql" || line == "tosql":
		return s.cmdSQL()
	case strings.HasPrefix(line, "table "):
		return s.cmdTable(strings.TrimSpace(line[len("table "):]))
	case strings.HasPrefix(line, "from "):
		return s.cmdFrom(strings.TrimSpace(line[len("from "):]))
	case strings.HasPrefix(line, "select "):
		return s.cmdSelect(strings.TrimSpace(line[len("select "):]))
	case strings.HasPrefix(line, "where "):
		return s.cmdWhere(strings.TrimSpace(line[len("where "):]))
	case strings.HasPrefix(line, "limit "):
		return s.cmdLimit(strings.TrimSpace(line[len("limit "):]))
	default:
		return fmt.Errorf("unrecognized command %q (try 'help')", line)
	}
}

func (s *session) cmdTable(name string) error {
	s.tables[name] = ast.Table(name, nil)
	fmt.Printf("  registered table %q\n", name)
	return nil
}

func (s *session) cmdFrom(name string) error {
	t, ok := s.tables[name]
	if !ok {
		return fmt.Errorf("unknown table %q, use 'table %s' first", name, name)
	}
	s.query = t
	return nil
}

// cmdSelect projects bare column names via ast.This, the deferred,
// unqualified column reference — the demo keeps scope resolution in
// the compiler rather than asking the user to spell out a source table.
func (s *session) cmdSelect(cols string) error {
	sel, ok := s.query.(*ast.Select)
	if !ok {
		if s.query == nil {
			return errNoQuery
		}
		var err error
		sel, err = s.selectOf(s.query)
		if err != nil {
			return err
		}
	}
	var exprs []ast.Expr
	for _, name := range strings.Fields(cols) {
		exprs = append(exprs, ast.This.Col(strings.Trim(name, ",")))
	}
	s.query = sel.Select(exprs...)
	return nil
}

func (s *session) selectOf(from ast.Node) (*ast.Select, error) {
	switch n := from.(type) {
	case *ast.TableRef:
		return n.Select(), nil
	case *ast.Join:
		return n.Select(), nil
	default:
		return nil, fmt.Errorf("cannot select from %T", from)
	}
}

func (s *session) cmdWhere(expr string) error {
	if s.query == nil {
		return errNoQuery
	}
	// The demo only supports "<col> = <value>" for brevity; richer
	// expression parsing is a job for a real grammar, not this tool.
	parts := strings.SplitN(expr, "=", 2)
	if len(parts) != 2 {
		return fmt.Errorf("expected '<col> = <value>', got %q", expr)
	}
	col := ast.This.Col(strings.TrimSpace(parts[0]))
	cond := col.Eq(strings.TrimSpace(parts[1]))
	switch n := s.query.(type) {
	case *ast.Select:
		s.query = n.Where(cond)
	case *ast.TableRef:
		s.query = n.Where(cond)
	case *ast.Join:
		s.query = n.Where(cond)
	default:
		return fmt.Errorf("cannot filter %T", s.query)
	}
	return nil
}

func (s *session) cmdLimit(n string) error {
	if s.query == nil {
		return errNoQuery
	}
	var limit int
	if _, err := fmt.Sscanf(n, "%d", &limit); err != nil {
		return fmt.Errorf("invalid limit %q", n)
	}
	sel, ok := s.query.(*ast.Select)
	if !ok {
		var err error
		sel, err = s.selectOf(s.query)
		if err != nil {
			return err
		}
	}
	s.query = sel.Limit(limit)
	return nil
}

func (s *session) cmdSQL() error {
	if s.query == nil {
		return errNoQuery
	}
	sql, err := s.c.Compile(s.query)
	if err != nil {
		return err
	}
	fmt.Println(sql)
	return nil
}

func (s *session) printHelp() {
	fmt.Println(`Commands:
  table <name>        register a table
  from <name>          start a query from a registered table
  select <cols...>     project columns (space separated)
  where <col> = <val>  add an equality filter
  limit <n>            cap the row count
  sql                  print the compiled SQL
  reset                discard the current query
  help                 show this message
  exit                 quit`)
}
