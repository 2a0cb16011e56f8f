package transport

import (
	"context"

	"github.com/grafdb/sparqlgo/sparqlparse/tree"
)

// Direct calls a locally-linked Executor in-process; no IPC or network
// hop is involved. It is the thinnest of the three transports and
// exists mainly to give the parser a realistic, synchronous caller.
type Direct struct {
	exec Executor
}

// NewDirect wraps exec as a Direct transport.
func NewDirect(exec Executor) *Direct {
	return &Direct{exec: exec}
}

// Query executes q against the already-parsed tree parsed, which the
// caller (Connection) is expected to have obtained from its own
// parse-digest cache rather than reparsing here.
func (d *Direct) Query(ctx context.Context, q string, parsed *tree.Tree) (Result, error) {
	return d.exec.Execute(ctx, q, parsed)
}

// Update executes u against the already-parsed tree parsed.
func (d *Direct) Update(ctx context.Context, u string, parsed *tree.Tree) error {
	return d.exec.ExecuteUpdate(ctx, u, parsed)
}
