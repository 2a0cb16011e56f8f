package transport

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/grafdb/sparqlgo/rdfterm"
	"github.com/grafdb/sparqlgo/sparqlparse/tree"
)

// HTTP POSTs to a SPARQL 1.1 Protocol endpoint and decodes a
// application/sparql-results+json reply into the same Result surface
// the other two transports expose, even though the wire format here is
// JSON rather than rowcursor's binary row-stream (explicitly a
// different wire format).
type HTTP struct {
	endpoint string
	client   *http.Client
}

// NewHTTP returns an HTTP transport posting queries to endpoint.
func NewHTTP(endpoint string) *HTTP {
	return &HTTP{endpoint: endpoint, client: &http.Client{Timeout: 30 * time.Second}}
}

// sparqlJSONResults mirrors the SPARQL 1.1 Query Results JSON Format.
type sparqlJSONResults struct {
	Head struct {
		Vars []string `json:"vars"`
	} `json:"head"`
	Results struct {
		Bindings []map[string]jsonBinding `json:"bindings"`
	} `json:"results"`
}

type jsonBinding struct {
	Type     string `json:"type"`
	Value    string `json:"value"`
	Lang     string `json:"xml:lang"`
	Datatype string `json:"datatype"`
}

// Query posts q to the endpoint and decodes the JSON reply. parsed is the
// already-parsed tree for q, supplied by the caller's parse-digest cache;
// it plays no role in the HTTP request itself (the remote endpoint does
// its own parsing) but is accepted here so Connection never needs to
// special-case which transport actually consumes it.
func (h *HTTP) Query(ctx context.Context, q string, parsed *tree.Tree) (Result, error) {
	form := url.Values{"query": {q}}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, h.endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("transport: building HTTP request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/sparql-results+json")

	resp, err := h.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("transport: HTTP request to %s: %w", h.endpoint, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("transport: HTTP endpoint %s returned status %s", h.endpoint, resp.Status)
	}

	var parsedJSON sparqlJSONResults
	if err := json.NewDecoder(resp.Body).Decode(&parsedJSON); err != nil {
		return nil, fmt.Errorf("transport: decoding sparql-results+json: %w", err)
	}
	return &httpResult{vars: parsedJSON.Head.Vars, rows: parsedJSON.Results.Bindings, idx: -1}, nil
}

// httpResult adapts a decoded JSON results document to the Result
// interface shared with the binary-cursor-backed transports.
type httpResult struct {
	vars []string
	rows []map[string]jsonBinding
	idx  int
}

func (r *httpResult) Next() bool {
	r.idx++
	return r.idx < len(r.rows)
}

func (r *httpResult) GetNColumns() int { return len(r.vars) }

func (r *httpResult) GetVariableName(col int) string {
	if col < 0 || col >= len(r.vars) {
		return ""
	}
	return r.vars[col]
}

func (r *httpResult) Term(col int) rdfterm.Term {
	if r.idx < 0 || r.idx >= len(r.rows) || col < 0 || col >= len(r.vars) {
		return rdfterm.Unbound{}
	}
	b, ok := r.rows[r.idx][r.vars[col]]
	if !ok {
		return rdfterm.Unbound{}
	}
	switch b.Type {
	case "uri":
		return rdfterm.IRI{Value: b.Value}
	case "bnode":
		return rdfterm.BlankNode{ID: b.Value}
	case "literal", "typed-literal":
		if b.Datatype != "" {
			return rdfterm.TypedLiteral{Value: b.Value, Datatype: rdfterm.IRI{Value: b.Datatype}}
		}
		if b.Lang != "" {
			return rdfterm.LangLiteral{Value: b.Value, Lang: b.Lang}
		}
		return rdfterm.PlainLiteral{Value: b.Value}
	default:
		return rdfterm.PlainLiteral{Value: b.Value}
	}
}

func (r *httpResult) Close() error { return nil }
