package transport

import (
	"context"
	"testing"

	"github.com/grafdb/sparqlgo/rdfterm"
	"github.com/grafdb/sparqlgo/sparqlparse/tree"
)

// countingExecutor counts how many times Execute is invoked, letting
// tests observe that every Connection.Query reaches the Executor; the
// parse cache saves parsing work only, not execution.
type countingExecutor struct {
	execCount int
}

func (e *countingExecutor) Execute(ctx context.Context, queryText string, parsed *tree.Tree) (Result, error) {
	e.execCount++
	return &emptyResult{}, nil
}

func (e *countingExecutor) ExecuteUpdate(ctx context.Context, updateText string, parsed *tree.Tree) error {
	return nil
}

// emptyResult is a zero-row Result, enough to exercise Connection.Query
// end to end without a real storage backend.
type emptyResult struct{}

func (emptyResult) Next() bool                 { return false }
func (emptyResult) GetNColumns() int           { return 0 }
func (emptyResult) GetVariableName(int) string { return "" }
func (emptyResult) Term(int) rdfterm.Term      { return rdfterm.Unbound{} }
func (emptyResult) Close() error               { return nil }

func TestConnectionDirectQuery(t *testing.T) {
	exec := &countingExecutor{}
	conn, err := Dial("direct:///var/lib/store", exec)
	if err != nil {
		t.Fatalf("Dial: %v", err)
	}
	const q = "SELECT ?s WHERE { ?s a <http://example/C> }"
	if _, err := conn.Query(context.Background(), q); err != nil {
		t.Fatalf("Query: %v", err)
	}
	if exec.execCount != 1 {
		t.Fatalf("execCount after first Query = %d, want 1", exec.execCount)
	}
}

func TestConnectionQueryCachesParseNotExecution(t *testing.T) {
	exec := &countingExecutor{}
	conn, err := Dial("direct:///var/lib/store", exec)
	if err != nil {
		t.Fatalf("Dial: %v", err)
	}
	const q = "SELECT ?s WHERE { ?s a <http://example/C> }"

	if _, err := conn.Query(context.Background(), q); err != nil {
		t.Fatalf("Query (1st): %v", err)
	}
	_, digest1, err := conn.parseCached(q)
	if err != nil {
		t.Fatalf("parseCached (1st): %v", err)
	}
	_, digest2, err := conn.parseCached(q)
	if err != nil {
		t.Fatalf("parseCached (2nd): %v", err)
	}
	if digest1 != digest2 {
		t.Fatalf("digest changed across calls: %q vs %q", digest1, digest2)
	}
	if len(conn.queryCache) != 1 {
		t.Fatalf("cache has %d entries, want 1", len(conn.queryCache))
	}
}

func TestConnectionRejectsDirectWithoutExecutor(t *testing.T) {
	if _, err := Dial("direct:///var/lib/store", nil); err == nil {
		t.Fatal("Dial(direct, nil Executor) succeeded, want error")
	}
}
