package rowcursor

import (
	"bytes"
	"context"
	"encoding/binary"
	"io"
	"testing"
	"time"
)

// encodeRow appends one row in wire format to buf: a column count, a
// type array, an offset array, and the NUL-delimited payload computed
// from values (value, langtag) pairs.
func encodeRow(buf *bytes.Buffer, types []ColumnType, values [][2]string) {
	var payload bytes.Buffer
	offsets := make([]int32, len(types))
	for i, v := range values {
		payload.WriteString(v[0])
		payload.WriteByte(0)
		if v[1] != "" {
			payload.WriteString(v[1])
		}
		offsets[i] = int32(payload.Len() - 1)
	}
	writeInt32(buf, int32(len(types)))
	for _, t := range types {
		writeInt32(buf, int32(t))
	}
	for _, o := range offsets {
		writeInt32(buf, o)
	}
	buf.Write(payload.Bytes())
}

func writeInt32(buf *bytes.Buffer, v int32) {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], uint32(v))
	buf.Write(b[:])
}

func endOfStream(buf *bytes.Buffer) {
	writeInt32(buf, 0)
}

func TestCursorDecodesTwoRowScenario(t *testing.T) {
	var buf bytes.Buffer
	encodeRow(&buf, []ColumnType{Uri}, [][2]string{{"http://x", ""}})
	encodeRow(&buf, []ColumnType{String}, [][2]string{{"hi", "en"}})
	endOfStream(&buf)

	c := New(&buf, []string{"s"})
	if !c.Next() {
		t.Fatalf("Next() (row 1) = false, err=%v", c.Err())
	}
	if typ := c.GetValueType(0); typ != Uri {
		t.Fatalf("row 1 type = %v, want Uri", typ)
	}
	val, lang, n, ok := c.GetString(0)
	if !ok || val != "http://x" || lang != "" || n != len("http://x") {
		t.Fatalf("row 1 GetString = (%q, %q, %d, %v)", val, lang, n, ok)
	}

	if !c.Next() {
		t.Fatalf("Next() (row 2) = false, err=%v", c.Err())
	}
	if typ := c.GetValueType(0); typ != String {
		t.Fatalf("row 2 type = %v, want String", typ)
	}
	val, lang, n, ok = c.GetString(0)
	if !ok || val != "hi" || lang != "en" || n != len("hi") {
		t.Fatalf("row 2 GetString = (%q, %q, %d, %v)", val, lang, n, ok)
	}

	if c.Next() {
		t.Fatal("Next() (row 3) = true, want end of stream")
	}
	if c.Err() != nil {
		t.Fatalf("Err() after clean end of stream = %v, want nil", c.Err())
	}
}

func TestCursorRejectsNonMonotonicOffsets(t *testing.T) {
	var buf bytes.Buffer
	writeInt32(&buf, 2)
	writeInt32(&buf, int32(String))
	writeInt32(&buf, int32(String))
	writeInt32(&buf, 5) // offsets[0]
	writeInt32(&buf, 5) // offsets[1] == offsets[0]: not strictly increasing
	buf.WriteString("abcdef")

	c := New(&buf, []string{"a", "b"})
	if c.Next() {
		t.Fatal("Next() = true, want decode failure on non-monotonic offsets")
	}
	cerr, ok := c.Err().(*Error)
	if !ok || cerr.Kind != CursorInvalidData {
		t.Fatalf("Err() = %v, want CursorInvalidData", c.Err())
	}
}

func TestCursorReportsIOErrorOnShortPayload(t *testing.T) {
	var buf bytes.Buffer
	writeInt32(&buf, 1)
	writeInt32(&buf, int32(String))
	writeInt32(&buf, 9) // claims a 10-byte payload
	buf.WriteString("short")

	c := New(&buf, []string{"a"})
	if c.Next() {
		t.Fatal("Next() = true, want IO failure on short payload")
	}
	cerr, ok := c.Err().(*Error)
	if !ok || cerr.Kind != CursorIO {
		t.Fatalf("Err() = %v, want CursorIO", c.Err())
	}
}

func TestCursorUnboundColumnHasNoString(t *testing.T) {
	var buf bytes.Buffer
	writeInt32(&buf, 1)
	writeInt32(&buf, int32(Unbound))
	writeInt32(&buf, 0)
	buf.WriteByte(0)
	endOfStream(&buf)

	c := New(&buf, []string{"o"})
	if !c.Next() {
		t.Fatalf("Next() = false, err=%v", c.Err())
	}
	if _, _, _, ok := c.GetString(0); ok {
		t.Fatal("GetString on an Unbound column returned ok=true")
	}
}

func TestCursorNextAsyncCancelledBeforeDecode(t *testing.T) {
	var buf bytes.Buffer
	encodeRow(&buf, []ColumnType{Uri}, [][2]string{{"http://x", ""}})
	endOfStream(&buf)

	c := New(&buf, []string{"s"})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	ok, err := c.NextAsync(ctx)
	if ok {
		t.Fatal("NextAsync with a pre-cancelled context = true, want false")
	}
	cerr, isCursorErr := err.(*Error)
	if !isCursorErr || cerr.Kind != CursorCancelled {
		t.Fatalf("NextAsync err = %v, want CursorCancelled", err)
	}
}

func TestCursorNextAsyncCompletesInSubmissionOrder(t *testing.T) {
	var buf bytes.Buffer
	encodeRow(&buf, []ColumnType{Integer}, [][2]string{{"1", ""}})
	encodeRow(&buf, []ColumnType{Integer}, [][2]string{{"2", ""}})
	endOfStream(&buf)

	c := New(&buf, []string{"n"})
	ctx := context.Background()
	var got []string
	for i := 0; i < 2; i++ {
		ok, err := c.NextAsync(ctx)
		if !ok || err != nil {
			t.Fatalf("NextAsync() = (%v, %v)", ok, err)
		}
		v, _, _, _ := c.GetString(0)
		got = append(got, v)
	}
	if got[0] != "1" || got[1] != "2" {
		t.Fatalf("NextAsync order = %v, want [1 2]", got)
	}
}

// blockingReader feeds data one byte at a time so a bufio.Reader sitting
// on top of it must re-enter Read between every decoded field, then
// blocks for exactly one call so a test can cancel a context while a
// NextAsync worker is provably still inside that read.
type blockingReader struct {
	data    []byte
	pos     int
	calls   int
	blockOn int
	blocked chan struct{}
	unblock chan struct{}
}

func newBlockingReader(data []byte, blockOn int) *blockingReader {
	return &blockingReader{
		data:    data,
		blockOn: blockOn,
		blocked: make(chan struct{}),
		unblock: make(chan struct{}),
	}
}

func (r *blockingReader) Read(p []byte) (int, error) {
	if r.calls == r.blockOn {
		close(r.blocked)
		<-r.unblock
	}
	r.calls++
	if r.pos >= len(r.data) {
		return 0, io.EOF
	}
	n := copy(p, r.data[r.pos:r.pos+1])
	r.pos += n
	return n, nil
}

// TestCursorNextAsyncJoinsWorkerBeforeMutatingStateOnCancel exercises the
// path where ctx is cancelled while a NextAsync worker is still inside
// next(): the outer call must wait for the worker to fully return before
// it writes c.failed/c.hasRow itself, rather than racing the worker's own
// writes to the same fields.
func TestCursorNextAsyncJoinsWorkerBeforeMutatingStateOnCancel(t *testing.T) {
	var buf bytes.Buffer
	encodeRow(&buf, []ColumnType{Integer}, [][2]string{{"1", ""}})
	endOfStream(&buf)

	// Block on the 5th underlying Read call: calls 0-3 deliver the
	// column-count's 4 bytes, call 4 is the first byte of the type
	// array, landing after the "cancelled before type array" check and
	// before the "cancelled before offset array" check can observe it.
	r := newBlockingReader(buf.Bytes(), 4)
	c := New(r, []string{"n"})
	ctx, cancel := context.WithCancel(context.Background())

	type asyncResult struct {
		ok  bool
		err error
	}
	resCh := make(chan asyncResult, 1)
	go func() {
		ok, err := c.NextAsync(ctx)
		resCh <- asyncResult{ok, err}
	}()

	select {
	case <-r.blocked:
	case <-time.After(5 * time.Second):
		t.Fatal("worker never reached the blocking read")
	}
	cancel()
	close(r.unblock)

	select {
	case res := <-resCh:
		if res.ok {
			t.Fatal("NextAsync() = true, want false on mid-decode cancellation")
		}
		cerr, ok := res.err.(*Error)
		if !ok || cerr.Kind != CursorCancelled {
			t.Fatalf("NextAsync() err = %v, want CursorCancelled", res.err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("NextAsync did not return after the worker was unblocked")
	}

	if c.hasRow {
		t.Fatal("cursor reports hasRow = true after a cancelled decode")
	}
	cerr, ok := c.Err().(*Error)
	if !ok || cerr.Kind != CursorCancelled {
		t.Fatalf("c.Err() = %v, want CursorCancelled", c.Err())
	}
}

func TestGetNColumnsAndVariableNamesAreFixedAtConstruction(t *testing.T) {
	var buf bytes.Buffer
	c := New(&buf, []string{"s", "p", "o"})
	if n := c.GetNColumns(); n != 3 {
		t.Fatalf("GetNColumns() = %d, want 3", n)
	}
	if c.GetVariableName(1) != "p" {
		t.Fatalf("GetVariableName(1) = %q, want %q", c.GetVariableName(1), "p")
	}
}
