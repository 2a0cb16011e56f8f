package sparqlparse

import (
	"testing"

	"github.com/grafdb/sparqlgo/grammar"
	"github.com/grafdb/sparqlgo/sparqlparse/tree"
)

// leaves collects, in pre-order, the source text of every node whose
// grammar rule is itself a Literal or Terminal (i.e. every leaf the
// driver actually committed from matching input, as opposed to the
// NamedRule nodes that merely group them).
func leaves(t *tree.Tree, input string) []string {
	var out []string
	for idx := t.FindFirst(); idx >= 0; idx = t.FindNext(idx) {
		n := t.Node(idx)
		if n.Rule == nil {
			continue
		}
		switch n.Rule.Kind {
		case grammar.Literal, grammar.Terminal:
			out = append(out, input[n.Extent[0]:n.Extent[1]])
		}
	}
	return out
}

func TestParseQuerySimpleSelect(t *testing.T) {
	input := `SELECT ?s WHERE { ?s a <http://example/C> }`
	tr, n, err := ParseQuery(input)
	if err != nil {
		t.Fatalf("ParseQuery() error = %v", err)
	}
	if n != len(input) {
		t.Fatalf("consumed %d bytes, want %d", n, len(input))
	}
	root := tr.Node(tr.Root())
	if root.Rule.Named != grammar.QueryUnit {
		t.Fatalf("root production = %v, want QueryUnit", root.Rule.Named)
	}
	want := []string{"SELECT", "?s", "WHERE", "{", "?s", "a", "<http://example/C>", "}"}
	got := leaves(tr, input)
	if len(got) != len(want) {
		t.Fatalf("leaves = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("leaves[%d] = %q, want %q (full: %v)", i, got[i], want[i], got)
		}
	}
}

func TestParseQueryPrefixDecl(t *testing.T) {
	input := `PREFIX ex: <http://example/> SELECT * { ex:a ex:p ?o . }`
	tr, n, err := ParseQuery(input)
	if err != nil {
		t.Fatalf("ParseQuery() error = %v", err)
	}
	if n != len(input) {
		t.Fatalf("consumed %d bytes, want %d", n, len(input))
	}
	got := leaves(tr, input)
	wantPrefix := []string{"PREFIX", "ex:", "<http://example/>", "SELECT", "*", "{", "ex:a", "ex:p", "?o", ".", "}"}
	if len(got) != len(wantPrefix) {
		t.Fatalf("leaves = %v, want %v", got, wantPrefix)
	}
	for i := range wantPrefix {
		if got[i] != wantPrefix[i] {
			t.Fatalf("leaves[%d] = %q, want %q", i, got[i], wantPrefix[i])
		}
	}
}

func TestParseUpdateInsertDataWithLangtag(t *testing.T) {
	input := `INSERT DATA { GRAPH <urn:g> { <urn:s> <urn:p> "v"@en } }`
	tr, n, err := ParseUpdate(input)
	if err != nil {
		t.Fatalf("ParseUpdate() error = %v", err)
	}
	if n != len(input) {
		t.Fatalf("consumed %d bytes, want %d", n, len(input))
	}
	got := leaves(tr, input)
	foundString, foundLang := false, false
	for i, v := range got {
		if v == `"v"` {
			foundString = true
		}
		if v == "@en" && i > 0 && got[i-1] == `"v"` {
			foundLang = true
		}
	}
	if !foundString || !foundLang {
		t.Fatalf("leaves = %v, want a \"v\" node followed by an @en node", got)
	}
}

func TestParseQueryParameterizedVarInLimit(t *testing.T) {
	input := `SELECT ?s WHERE { ?s ?p ?o } LIMIT ~lim`
	tr, n, err := ParseQuery(input)
	if err != nil {
		t.Fatalf("ParseQuery() error = %v", err)
	}
	if n != len(input) {
		t.Fatalf("consumed %d bytes, want %d", n, len(input))
	}
	got := leaves(tr, input)
	if got[len(got)-1] != "~lim" {
		t.Fatalf("last leaf = %q, want ~lim (full: %v)", got[len(got)-1], got)
	}
}

func TestParseQueryTruncatedInputReportsFarthestError(t *testing.T) {
	input := `SELECT ?s WHERE { ?s ?p `
	_, _, err := ParseQuery(input)
	if err == nil {
		t.Fatal("ParseQuery() succeeded, want error")
	}
	perr, ok := err.(*Error)
	if !ok {
		t.Fatalf("error type = %T, want *Error", err)
	}
	if perr.Offset != len(input) {
		t.Fatalf("Offset = %d, want %d", perr.Offset, len(input))
	}
	if len(perr.Expected) == 0 {
		t.Fatal("Expected set is empty, want at least one candidate token")
	}
}

func TestParseIsDeterministic(t *testing.T) {
	input := `SELECT ?s WHERE { ?s a <http://example/C> }`
	tr1, n1, err1 := ParseQuery(input)
	tr2, n2, err2 := ParseQuery(input)
	if err1 != nil || err2 != nil {
		t.Fatalf("unexpected errors: %v, %v", err1, err2)
	}
	if n1 != n2 || tr1.Len() != tr2.Len() {
		t.Fatalf("non-deterministic parse: (%d,%d) vs (%d,%d)", n1, tr1.Len(), n2, tr2.Len())
	}
}

func TestParseWhitespaceInsensitive(t *testing.T) {
	a := `SELECT ?s WHERE { ?s a <http://example/C> }`
	b := "SELECT\n?s\tWHERE   {\n  ?s   a\t<http://example/C>\n# a comment\n}"
	tra, _, erra := ParseQuery(a)
	trb, _, errb := ParseQuery(b)
	if erra != nil || errb != nil {
		t.Fatalf("unexpected errors: %v, %v", erra, errb)
	}
	if tra.Len() != trb.Len() {
		t.Fatalf("node count differs: %d vs %d", tra.Len(), trb.Len())
	}
}

func TestParseCaseInsensitiveKeywords(t *testing.T) {
	a := `SELECT ?s WHERE { ?s a <http://example/C> }`
	b := `select ?s where { ?s a <http://example/C> }`
	tra, _, erra := ParseQuery(a)
	trb, _, errb := ParseQuery(b)
	if erra != nil || errb != nil {
		t.Fatalf("unexpected errors: %v, %v", erra, errb)
	}
	if tra.Len() != trb.Len() {
		t.Fatalf("node count differs: %d vs %d", tra.Len(), trb.Len())
	}
}

func TestKeywordDoesNotMatchLongerIdentifierPrefix(t *testing.T) {
	// "ASKx" must not be accepted as ASK followed by a dangling "x"; the
	// boundary rule requires the driver to keep looking for a grammar
	// alternative where "ASKx" is consumed as a single PNAME_LN/variable
	// instead, which does not exist here as a valid query form, so the
	// whole parse must fail rather than silently truncate "ASK".
	_, _, err := ParseQuery(`ASKx WHERE { ?s ?p ?o }`)
	if err == nil {
		t.Fatal("ParseQuery() succeeded on ASKx, want error (keyword must not match as an identifier prefix)")
	}
}

func TestMatchAttemptGuardFiresAsParseInternalOverflow(t *testing.T) {
	// Drive state.match directly with the attempt counter already at the
	// guard's threshold, the same state any sufficiently pathological
	// backtracking search would eventually reach on its own; this
	// isolates the guard's behavior from having to construct an input
	// that actually exhausts 100,000 real attempts.
	s := &state{input: "42", tree: tree.New(), attempts: maxMatchAttempts}
	rule := &grammar.Rule{Kind: grammar.Terminal, Term: grammar.INTEGER, Name: "INTEGER"}

	if s.match(rule, -1) {
		t.Fatal("match() succeeded past the attempt guard, want false")
	}
	if !s.overflowed {
		t.Fatal("state.overflowed not set after the guard fired")
	}
	if s.tree.Len() != 0 {
		t.Fatalf("tree has %d nodes, want 0 (guard must not commit a node)", s.tree.Len())
	}

	err := s.buildError()
	if err.Kind != ParseInternalOverflow {
		t.Fatalf("Kind = %v, want ParseInternalOverflow", err.Kind)
	}
}

func TestMatchAttemptGuardShortCircuitsOnceOverflowed(t *testing.T) {
	s := &state{input: "SELECT", tree: tree.New(), attempts: maxMatchAttempts}
	rule := &grammar.Rule{Kind: grammar.Literal, Lit: "SELECT", Name: "SELECT"}

	// First call trips the guard.
	if s.match(rule, -1) {
		t.Fatal("first match() succeeded, want false")
	}
	attemptsAfterTrip := s.attempts

	// A subsequent call must not resume matching or grow the counter
	// further; it short-circuits on s.overflowed instead.
	if s.match(rule, -1) {
		t.Fatal("second match() succeeded after overflow, want false")
	}
	if s.attempts != attemptsAfterTrip {
		t.Fatalf("attempts grew after overflow: %d -> %d", attemptsAfterTrip, s.attempts)
	}
}
