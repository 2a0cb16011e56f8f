package rowcursor

import (
	"bufio"
	"context"
	"encoding/binary"
	"fmt"
	"io"
	"sync"

	"github.com/npillmayer/schuko/tracing"
)

func tracer() tracing.Trace {
	return tracing.Select("sparqlgo.rowcursor")
}

// DefaultMaxRowSize is the ceiling used when a Cursor is constructed
// without an explicit WithMaxRowSize option (≈2 GiB, per the wire
// format's original 32-bit-offset contract). It is a field on Cursor
// rather than a compile-time constant, per the Open Question resolved
// in DESIGN.md: callers needing a smaller or larger ceiling pass
// WithMaxRowSize.
const DefaultMaxRowSize = 1 << 31

// ColumnType tags the decoded representation of a single row column.
type ColumnType int32

const (
	Unbound ColumnType = iota
	Uri
	String
	Integer
	Double
	DateTime
	Blank
	Boolean
)

func (t ColumnType) String() string {
	switch t {
	case Unbound:
		return "Unbound"
	case Uri:
		return "Uri"
	case String:
		return "String"
	case Integer:
		return "Integer"
	case Double:
		return "Double"
	case DateTime:
		return "DateTime"
	case Blank:
		return "Blank"
	case Boolean:
		return "Boolean"
	default:
		return "?"
	}
}

// column is the decoded view of one row value: the raw UTF-8 string
// (without its trailing NUL or language tag), an optional language tag,
// and the byte length of the value proper.
type column struct {
	valid   bool
	value   string
	langtag string
	length  int
}

// Cursor decodes a sequence of result rows from an underlying byte
// stream in a compact binary wire format: a little-endian int32
// column count, followed by a type array, an offset array, and a
// NUL-delimited payload block, repeated until a zero column count marks
// end of stream.
//
// A Cursor is a single-owner iterator: it is not safe for concurrent use
// by multiple goroutines. NextAsync offloads the decode of one row to a
// shared worker pool but still serializes against the same cursor.
type Cursor struct {
	r    *bufio.Reader
	vars []string

	maxRowSize int64

	cols    []column
	types   []ColumnType
	hasRow  bool
	atEnd   bool
	failed  *Error
	mu      sync.Mutex // serializes NextAsync submission order
	closed  bool
	lastErr error
}

// Option configures a Cursor at construction time.
type Option func(*Cursor)

// WithMaxRowSize overrides DefaultMaxRowSize, the ceiling an offset may
// not exceed. Implementations must refuse any column whose computed
// payload size does not fit in the available address space regardless
// of this ceiling; a non-positive n is ignored and the default kept.
func WithMaxRowSize(n int64) Option {
	return func(c *Cursor) {
		if n > 0 {
			c.maxRowSize = n
		}
	}
}

// New returns a Cursor reading rows from r. vars supplies the fixed,
// construction-time variable names returned by GetVariableName; its
// length fixes GetNColumns for the lifetime of the cursor.
func New(r io.Reader, vars []string) *Cursor {
	c := &Cursor{
		r:          bufio.NewReader(r),
		vars:       vars,
		maxRowSize: DefaultMaxRowSize,
	}
	return c
}

// NewWithOptions is New plus functional options (currently only
// WithMaxRowSize).
func NewWithOptions(r io.Reader, vars []string, opts ...Option) *Cursor {
	c := New(r, vars)
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// GetNColumns returns the number of columns per row, fixed at
// construction.
func (c *Cursor) GetNColumns() int {
	return len(c.vars)
}

// GetVariableName returns the construction-time variable name bound to
// column col.
func (c *Cursor) GetVariableName(col int) string {
	if col < 0 || col >= len(c.vars) {
		return ""
	}
	return c.vars[col]
}

// GetValueType returns the decoded type of column col in the current
// row, or Unbound if there is no current row, col is out of range, or
// the cursor has not yet advanced.
func (c *Cursor) GetValueType(col int) ColumnType {
	if !c.hasRow || col < 0 || col >= len(c.types) {
		return Unbound
	}
	return c.types[col]
}

// GetString returns column col's decoded value and optional language
// tag, along with its byte length. ok is false for an unbound column,
// an out-of-range column, or when there is no current row.
func (c *Cursor) GetString(col int) (value string, langtag string, length int, ok bool) {
	if !c.hasRow || col < 0 || col >= len(c.cols) {
		return "", "", 0, false
	}
	col0 := c.cols[col]
	if !col0.valid {
		return "", "", 0, false
	}
	return col0.value, col0.langtag, col0.length, true
}

// Close releases the cursor's buffered reader and current row. It does
// not close the io.Reader passed to New, even if that reader implements
// io.Closer.
func (c *Cursor) Close() error {
	if c.closed {
		return nil
	}
	c.closed = true
	c.cols = nil
	c.r = nil
	return nil
}

// Next decodes the next row, returning whether one is available. Once
// Next returns false, the cursor is exhausted (end of stream reached, or
// a decode error was recorded — check Err).
func (c *Cursor) Next() bool {
	ok, _ := c.next(nil)
	return ok
}

// Err returns the error that ended the stream, if decoding stopped
// because of a *Error rather than a clean end of stream.
func (c *Cursor) Err() error {
	if c.failed == nil {
		return nil
	}
	return c.failed
}

// NextAsync offloads decoding of the next row to a worker in a small
// shared pool, honoring ctx cancellation. Successive NextAsync calls
// against the same cursor complete in submission order: the mutex below
// hands the single shared reader to one worker at a time, so a second
// call queues behind the first rather than racing it.
//
// If ctx is already done before decoding begins, NextAsync returns
// immediately with a CursorCancelled error and consumes no bytes. Once
// decoding has started, cancellation is polled between the header,
// type-array, offset-array, and payload reads; on detection the partial
// row is discarded and the cursor is left failed, matching Next's
// subsequent behavior.
func (c *Cursor) NextAsync(ctx context.Context) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	select {
	case <-ctx.Done():
		return false, &Error{Kind: CursorCancelled, Msg: "cancelled before decode began"}
	default:
	}

	type result struct {
		ok  bool
		err error
	}
	done := make(chan result, 1)
	asyncPool.submit(func() {
		ok, err := c.next(ctx)
		done <- result{ok, err}
	})

	select {
	case r := <-done:
		return r.ok, r.err
	case <-ctx.Done():
		// The worker is still running c.next, which mutates c.types/c.cols
		// /c.hasRow/c.failed with no lock of its own — this goroutine holds
		// c.mu for the whole call, so writing those same fields here
		// without first joining the worker would race with it. Draining
		// done blocks until the worker's goroutine has returned (the
		// channel send happens-after every mutation it makes), so by the
		// time this goroutine writes below, the worker is no longer
		// running and there is nothing left to race with. The worker's
		// own outcome is discarded either way: cancellation is the
		// cursor's authoritative result once observed here.
		<-done
		c.failed = &Error{Kind: CursorCancelled, Msg: "cancelled during decode"}
		c.hasRow = false
		return false, c.failed
	}
}

// next performs one synchronous row decode. ctx, if non-nil, is polled
// between IO steps for cancellation.
func (c *Cursor) next(ctx context.Context) (bool, error) {
	if c.atEnd || c.failed != nil {
		c.hasRow = false
		return false, c.Err()
	}
	if cancelled(ctx) {
		err := &Error{Kind: CursorCancelled, Msg: "cancelled before decode began"}
		return false, err
	}

	n, err := readInt32(c.r)
	if err != nil {
		return c.fail(&Error{Kind: CursorIO, Msg: "reading column count", Err: err})
	}
	if n == 0 {
		c.atEnd = true
		c.hasRow = false
		return false, nil
	}
	if n < 0 {
		return c.fail(&Error{Kind: CursorInvalidData, Msg: fmt.Sprintf("negative column count %d", n)})
	}
	ncols := int(n)

	if cancelled(ctx) {
		return c.fail(&Error{Kind: CursorCancelled, Msg: "cancelled reading type array"})
	}
	types := make([]ColumnType, ncols)
	for i := range types {
		v, err := readInt32(c.r)
		if err != nil {
			return c.fail(&Error{Kind: CursorIO, Msg: "reading type array", Err: err})
		}
		types[i] = ColumnType(v)
	}

	if cancelled(ctx) {
		return c.fail(&Error{Kind: CursorCancelled, Msg: "cancelled reading offset array"})
	}
	offsets := make([]int64, ncols)
	prev := int64(-1)
	for i := range offsets {
		v, err := readInt32(c.r)
		if err != nil {
			return c.fail(&Error{Kind: CursorIO, Msg: "reading offset array", Err: err})
		}
		off := int64(v)
		if off < 0 || off > c.maxRowSize {
			return c.fail(&Error{Kind: CursorInvalidData, Msg: fmt.Sprintf("offset %d out of bounds [0,%d]", off, c.maxRowSize)})
		}
		if i > 0 && off <= prev {
			return c.fail(&Error{Kind: CursorInvalidData, Msg: fmt.Sprintf("offset array not strictly increasing at column %d", i)})
		}
		offsets[i] = off
		prev = off
	}

	if cancelled(ctx) {
		return c.fail(&Error{Kind: CursorCancelled, Msg: "cancelled reading payload"})
	}
	payloadLen := offsets[ncols-1] + 1
	if payloadLen > int64(^uint(0)>>1) {
		return c.fail(&Error{Kind: CursorInvalidData, Msg: "row payload too large for this platform's address space"})
	}
	payload := make([]byte, payloadLen)
	if _, err := io.ReadFull(c.r, payload); err != nil {
		return c.fail(&Error{Kind: CursorIO, Msg: "short read on row payload", Err: err})
	}

	cols := make([]column, ncols)
	prevOff := int64(-1)
	for i := 0; i < ncols; i++ {
		start := prevOff + 1
		end := offsets[i]
		cols[i] = decodeColumn(payload[start:end+1], types[i])
		prevOff = end
	}

	c.types = types
	c.cols = cols
	c.hasRow = true
	return true, nil
}

func (c *Cursor) fail(e *Error) (bool, error) {
	c.failed = e
	c.hasRow = false
	tracer().Errorf("%v", e)
	return false, e
}

func cancelled(ctx context.Context) bool {
	if ctx == nil {
		return false
	}
	select {
	case <-ctx.Done():
		return true
	default:
		return false
	}
}

// decodeColumn splits a column's raw span into its string value and
// optional language tag around the first NUL byte. A
// column whose type is Unbound carries no value regardless of its span.
func decodeColumn(span []byte, typ ColumnType) column {
	if typ == Unbound {
		return column{}
	}
	nul := -1
	for i, b := range span {
		if b == 0 {
			nul = i
			break
		}
	}
	if nul < 0 {
		return column{valid: true, value: string(span), length: len(span)}
	}
	value := string(span[:nul])
	var lang string
	if nul+1 < len(span) {
		lang = string(span[nul+1:])
	}
	return column{valid: true, value: value, langtag: lang, length: nul}
}

func readInt32(r io.Reader) (int32, error) {
	var buf [4]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, err
	}
	return int32(binary.LittleEndian.Uint32(buf[:])), nil
}
