package transport

import (
	"context"
	"fmt"
	"sync"

	"github.com/cnf/structhash"

	"github.com/grafdb/sparqlgo/sparqlparse"
	"github.com/grafdb/sparqlgo/sparqlparse/tree"
)

// QueryDigest is a content hash of a canonicalized parse tree, stored with
// each entry of Connection's in-process parsed-tree cache (the cache
// itself is keyed by query text).
type QueryDigest string

// canonicalize flattens a parse tree into a pre-order sequence of
// "ruleName:sourceText" pairs, the same shape a downstream pass would
// compare to detect two queries that parsed identically.
func canonicalize(tr *tree.Tree, src string) []string {
	var out []string
	for idx := tr.FindFirst(); idx >= 0; idx = tr.FindNext(idx) {
		n := tr.Node(idx)
		name := ""
		if n.Rule != nil {
			name = n.Rule.Name
		}
		from, to := n.Extent[0], n.Extent[1]
		text := ""
		if from >= 0 && to <= len(src) && from <= to {
			text = src[from:to]
		}
		out = append(out, name+":"+text)
	}
	return out
}

// computeDigest hashes the canonicalized tree with structhash: canonicalize,
// then hash for a cheap equality/dedup key.
func computeDigest(tr *tree.Tree, src string) (QueryDigest, error) {
	h, err := structhash.Hash(canonicalize(tr, src), 1)
	if err != nil {
		return "", fmt.Errorf("transport: hashing parse tree: %w", err)
	}
	return QueryDigest(h), nil
}

type cacheEntry struct {
	tree   *tree.Tree
	digest QueryDigest
}

// Connection is the public façade over whichever of the three
// transports an Endpoint names. Query/Update are safe for concurrent
// use (parsing is a pure function); Close is not safe to call
// concurrently with an in-flight Query/Update, matching the row-stream
// cursor's own single-owner discipline.
type Connection struct {
	ep     *Endpoint
	direct *Direct
	ipc    *IPC
	http   *HTTP

	mu          sync.Mutex
	queryCache  map[string]*cacheEntry
	updateCache map[string]*cacheEntry
}

// Dial parses endpoint and returns a Connection selecting the
// appropriate transport. exec is only consulted for SchemeDirect; it
// may be nil for the other two schemes.
func Dial(endpoint string, exec Executor) (*Connection, error) {
	ep, err := ParseEndpoint(endpoint)
	if err != nil {
		return nil, err
	}
	c := &Connection{
		ep:          ep,
		queryCache:  make(map[string]*cacheEntry),
		updateCache: make(map[string]*cacheEntry),
	}
	switch ep.Scheme {
	case SchemeDirect:
		if exec == nil {
			return nil, fmt.Errorf("transport: direct endpoint %q requires a non-nil Executor", endpoint)
		}
		c.direct = NewDirect(exec)
	case SchemeIPC:
		c.ipc = NewIPC(ep.Path)
	case SchemeHTTP, SchemeHTTPS:
		c.http = NewHTTP(ep.URL)
	default:
		return nil, fmt.Errorf("transport: unsupported endpoint scheme %v", ep.Scheme)
	}
	return c, nil
}

// Endpoint returns the parsed connection target.
func (c *Connection) Endpoint() *Endpoint { return c.ep }

// parseCachedWith returns the cached parse tree and digest for text,
// parsing (and caching) it in cache only on the first call with this
// exact text. parseFn is sparqlparse.ParseQuery or sparqlparse.ParseUpdate
// depending on which cache is passed.
func (c *Connection) parseCachedWith(cache map[string]*cacheEntry, text string, parseFn func(string) (*tree.Tree, int, error)) (*tree.Tree, QueryDigest, error) {
	c.mu.Lock()
	if e, ok := cache[text]; ok {
		c.mu.Unlock()
		return e.tree, e.digest, nil
	}
	c.mu.Unlock()

	tr, _, err := parseFn(text)
	if err != nil {
		return nil, "", err
	}
	digest, err := computeDigest(tr, text)
	if err != nil {
		return nil, "", err
	}

	c.mu.Lock()
	cache[text] = &cacheEntry{tree: tr, digest: digest}
	c.mu.Unlock()
	return tr, digest, nil
}

// parseCached returns the cached parse tree and digest for query text q.
func (c *Connection) parseCached(q string) (*tree.Tree, QueryDigest, error) {
	return c.parseCachedWith(c.queryCache, q, sparqlparse.ParseQuery)
}

// parseCachedUpdate returns the cached parse tree and digest for update
// text u.
func (c *Connection) parseCachedUpdate(u string) (*tree.Tree, QueryDigest, error) {
	return c.parseCachedWith(c.updateCache, u, sparqlparse.ParseUpdate)
}

// Query issues q over the connection's selected transport, parsing it at
// most once per distinct query string for the lifetime of c; the same
// cached tree is handed to whichever transport actually executes it, so
// no transport reparses q itself.
func (c *Connection) Query(ctx context.Context, q string) (Result, error) {
	parsed, _, err := c.parseCached(q)
	if err != nil {
		return nil, err
	}
	switch c.ep.Scheme {
	case SchemeDirect:
		return c.direct.Query(ctx, q, parsed)
	case SchemeIPC:
		return c.ipc.Query(ctx, q, parsed)
	default:
		return c.http.Query(ctx, q, parsed)
	}
}

// Update issues u (an INSERT/DELETE/LOAD/... request) over the
// connection's selected transport, parsing it at most once per distinct
// update string for the lifetime of c. Only the direct and IPC
// transports carry updates; over an HTTP(S) endpoint Update returns an
// error.
func (c *Connection) Update(ctx context.Context, u string) error {
	parsed, _, err := c.parseCachedUpdate(u)
	if err != nil {
		return err
	}
	switch c.ep.Scheme {
	case SchemeDirect:
		return c.direct.Update(ctx, u, parsed)
	case SchemeIPC:
		return c.ipc.Update(ctx, u, parsed)
	default:
		return fmt.Errorf("transport: %v transport does not support SPARQL Update", c.ep.Scheme)
	}
}

// Close releases any resources held by the connection. Direct and HTTP
// transports hold nothing persistent; IPC dials fresh per call, so it
// likewise holds nothing between calls.
func (c *Connection) Close() error {
	return nil
}
