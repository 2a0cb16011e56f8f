package transport

import (
	"bufio"
	"context"
	"encoding/binary"
	"fmt"
	"net"
	"strings"
	"time"

	"github.com/npillmayer/schuko/tracing"

	"github.com/grafdb/sparqlgo/rowcursor"
	"github.com/grafdb/sparqlgo/sparqlparse/tree"
)

func tracer() tracing.Trace {
	return tracing.Select("sparqlgo.transport")
}

// IPC dials a Unix domain socket to a locally-running store process.
// This is package rowcursor's one real producer in this repository: the
// request/response framing below is this package's own, but the row
// payload that follows the variable-name header is exactly the binary
// format rowcursor.Cursor decodes.
type IPC struct {
	sockPath string
	dialer   net.Dialer
}

// NewIPC returns an IPC transport dialing sockPath on each Query/Update.
func NewIPC(sockPath string) *IPC {
	return &IPC{sockPath: sockPath, dialer: net.Dialer{Timeout: 5 * time.Second}}
}

// writeFrame writes a 4-byte little-endian length prefix followed by
// payload, the same "explicit little-endian decode" discipline the
// binary cursor format requires on the read side.
func writeFrame(conn net.Conn, payload []byte) error {
	var lenBuf [4]byte
	binary.LittleEndian.PutUint32(lenBuf[:], uint32(len(payload)))
	if _, err := conn.Write(lenBuf[:]); err != nil {
		return err
	}
	_, err := conn.Write(payload)
	return err
}

// readVarHeader reads the newline-terminated, comma-separated variable
// name list the store sends ahead of the binary row stream, fixing
// GetNColumns/GetVariableName for the cursor about to be constructed.
func readVarHeader(r *bufio.Reader) ([]string, error) {
	line, err := r.ReadString('\n')
	if err != nil {
		return nil, fmt.Errorf("transport: reading variable header: %w", err)
	}
	line = strings.TrimRight(line, "\r\n")
	if line == "" {
		return nil, nil
	}
	return strings.Split(line, ","), nil
}

// Query dials the store, sends the query text, and wraps the reply's
// row-stream in a *rowcursor.Cursor. parsed is the already-parsed tree
// for q, supplied by the caller's parse-digest cache; ipc.Query never
// reparses it.
func (ipc *IPC) Query(ctx context.Context, q string, parsed *tree.Tree) (Result, error) {
	conn, err := ipc.dialer.DialContext(ctx, "unix", ipc.sockPath)
	if err != nil {
		return nil, fmt.Errorf("transport: dialing %s: %w", ipc.sockPath, err)
	}
	if err := writeFrame(conn, []byte(q)); err != nil {
		conn.Close()
		return nil, fmt.Errorf("transport: sending query: %w", err)
	}
	r := bufio.NewReader(conn)
	vars, err := readVarHeader(r)
	if err != nil {
		conn.Close()
		return nil, err
	}
	tracer().Debugf("ipc query over %s: %d variables", ipc.sockPath, len(vars))
	return &closingCursor{Cursor: rowcursor.New(r, vars), conn: conn}, nil
}

// Update dials the store and sends an update request, then closes the
// connection without reading any reply (out of scope to model here: the
// storage layer owns the actual semantics). parsed is the
// already-parsed tree for u.
func (ipc *IPC) Update(ctx context.Context, u string, parsed *tree.Tree) error {
	conn, err := ipc.dialer.DialContext(ctx, "unix", ipc.sockPath)
	if err != nil {
		return fmt.Errorf("transport: dialing %s: %w", ipc.sockPath, err)
	}
	defer conn.Close()
	if err := writeFrame(conn, []byte(u)); err != nil {
		return fmt.Errorf("transport: sending update: %w", err)
	}
	return nil
}

// closingCursor wraps a *rowcursor.Cursor so that Close also tears down
// the underlying socket once a row-stream cursor is done with it.
type closingCursor struct {
	*rowcursor.Cursor
	conn net.Conn
}

func (c *closingCursor) Close() error {
	err := c.Cursor.Close()
	if cerr := c.conn.Close(); err == nil {
		err = cerr
	}
	return err
}
