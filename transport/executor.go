package transport

import (
	"context"

	"github.com/grafdb/sparqlgo/rdfterm"
	"github.com/grafdb/sparqlgo/sparqlparse/tree"
)

// Executor is the out-of-scope collaborator that actually runs a parsed
// query or update against the storage/execution engine. It is supplied
// by the caller; this package never implements one beyond a test stub,
// since the execution engine proper is explicitly out of scope here.
type Executor interface {
	// Execute runs a parsed SELECT/CONSTRUCT/DESCRIBE/ASK query and
	// returns its result rows.
	Execute(ctx context.Context, queryText string, parsed *tree.Tree) (Result, error)
	// ExecuteUpdate runs a parsed INSERT/DELETE/LOAD/... update request.
	ExecuteUpdate(ctx context.Context, updateText string, parsed *tree.Tree) error
}

// Result is the row-wise iteration surface every transport exposes,
// regardless of wire format. *rowcursor.Cursor already implements this
// interface exactly (Next/GetNColumns/GetVariableName/Term/Close); the
// IPC transport returns one wrapped only so that Close also closes the
// socket, and the Direct transport returns whatever its Executor
// returns. The HTTP transport needs an adapter (see http.go), since its
// wire format is JSON, not the binary row-stream.
type Result interface {
	Next() bool
	GetNColumns() int
	GetVariableName(col int) string
	Term(col int) rdfterm.Term
	Close() error
}
