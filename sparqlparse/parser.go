package sparqlparse

import (
	"unicode"
	"unicode/utf8"

	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"
	"github.com/npillmayer/schuko/tracing"

	"github.com/grafdb/sparqlgo/grammar"
	"github.com/grafdb/sparqlgo/sparqlparse/tree"
)

func tracer() tracing.Trace {
	return tracing.Select("sparqlgo.sparqlparse")
}

// maxFarthestAttempts bounds the number of distinct expected-token
// entries recorded at any single farthest offset, preventing quadratic
// blow-up on adversarial inputs that fail the same way many times over.
const maxFarthestAttempts = 1000

// maxMatchAttempts bounds the total number of frames (calls to match)
// a single ParseQuery/ParseUpdate call may open across its whole
// backtracking search. Go's call stack plays the role the rule-stack
// array would in a table-driven driver, so this counter is the
// recursive-descent equivalent of the "abort rollback past ~100 000
// accumulated frames" safety guard: it bounds the same pathological
// exponential-backtracking blow-up without needing an explicit stack to
// measure.
const maxMatchAttempts = 100_000

// state carries the mutable parsing context threaded through match. It
// is allocated fresh per ParseQuery/ParseUpdate call and never shared,
// so the package as a whole has no mutable global state.
type state struct {
	input string
	pos   int
	tree  *tree.Tree

	farthest int
	expected *treeset.Set

	attempts   int
	overflowed bool
}

// ParseQuery parses input as a SPARQL query, returning the parse tree and
// the number of bytes consumed on success.
func ParseQuery(input string) (*tree.Tree, int, error) {
	return parseRoot(input, grammar.QueryUnit)
}

// ParseUpdate parses input as a SPARQL update request, returning the
// parse tree and the number of bytes consumed on success.
func ParseUpdate(input string) (*tree.Tree, int, error) {
	return parseRoot(input, grammar.UpdateUnit)
}

func parseRoot(input string, root grammar.Production) (*tree.Tree, int, error) {
	s := &state{input: input, tree: tree.New()}
	rootRef := &grammar.Rule{Kind: grammar.NamedRule, Named: root, Name: root.String()}

	ok := s.match(rootRef, -1)
	end := skipWS(s.input, s.pos)
	if !ok || end != len(input) {
		if ok && end != len(input) {
			// The grammar matched a prefix but left trailing input; this
			// is still reported as a Parse error at the unconsumed tail.
			s.recordFailureAt(end, "end of input")
		}
		return nil, s.pos, s.buildError()
	}
	tracer().Debugf("parse succeeded, consumed %d of %d bytes", end, len(input))
	return s.tree, end, nil
}

func (s *state) buildError() *Error {
	expected := []string{}
	if s.expected != nil {
		for _, v := range s.expected.Values() {
			expected = append(expected, v.(string))
		}
	}
	kind := Parse
	if s.overflowed {
		kind = ParseInternalOverflow
	}
	return &Error{
		Kind:     kind,
		Offset:   s.farthest,
		Expected: expected,
		Snippet:  snippet(s.input, s.farthest),
	}
}

// match attempts rule starting at s.pos, attaching any tree nodes it
// commits as children of attachTo (-1 for the tree root). It returns
// whether rule matched; on failure s.pos is left unchanged and any nodes
// allocated during the attempt have been discarded.
//
// Every call counts against maxMatchAttempts. Once the guard has fired,
// match short-circuits to false without touching the tree or cursor, so
// an overflowed parse unwinds through the recursion the same way an
// ordinary failure would, just with every further alternative refused.
func (s *state) match(rule *grammar.Rule, attachTo tree.Index) bool {
	if s.overflowed {
		return false
	}
	s.attempts++
	if s.attempts > maxMatchAttempts {
		s.overflowed = true
		tracer().Errorf("match attempt guard fired at %d attempts, offset %d", s.attempts, s.pos)
		return false
	}
	switch rule.Kind {
	case grammar.Literal:
		return s.matchLiteral(rule, attachTo)
	case grammar.Terminal:
		return s.matchTerminal(rule, attachTo)
	case grammar.NamedRule:
		return s.matchNamed(rule, attachTo)
	case grammar.Sequence:
		return s.matchSequence(rule.Children, attachTo)
	case grammar.Alternation:
		return s.matchAlternation(rule.Children, attachTo)
	case grammar.ZeroOrMore:
		s.matchRepeat(rule.Children[0], attachTo)
		return true
	case grammar.OneOrMore:
		return s.matchRepeat(rule.Children[0], attachTo) > 0
	case grammar.Optional:
		start, mark := s.pos, s.tree.Len()
		if !s.match(rule.Children[0], attachTo) {
			s.tree.TruncateAfter(tree.Index(mark))
			s.pos = start
		}
		return true
	default:
		panic("sparqlparse: attempted to match an End sentinel")
	}
}

func (s *state) matchLiteral(rule *grammar.Rule, attachTo tree.Index) bool {
	pos := skipWS(s.input, s.pos)
	lit := rule.Lit
	if pos+len(lit) > len(s.input) {
		s.recordFailureAt(pos, rule.Name)
		return false
	}
	seg := s.input[pos : pos+len(lit)]
	// A literal starting with a letter is a keyword (SELECT, SHA256,
	// GROUP_CONCAT, ...); anything else is punctuation.
	alpha := isAllASCIIAlpha(lit[:1])
	if alpha {
		if !equalFoldASCII(seg, lit) {
			s.recordFailureAt(pos, rule.Name)
			return false
		}
	} else if seg != lit {
		s.recordFailureAt(pos, rule.Name)
		return false
	}
	end := pos + len(lit)
	if (alpha || lit == "?") && nextIsIdentCont(s.input, end) {
		s.recordFailureAt(pos, rule.Name)
		return false
	}
	s.commit(rule, pos, end, attachTo)
	s.pos = end
	return true
}

func (s *state) matchTerminal(rule *grammar.Rule, attachTo tree.Index) bool {
	pos := skipWS(s.input, s.pos)
	matcher := grammar.TerminalMatcherFor(rule.Term)
	end, ok := matcher(s.input, pos)
	if !ok {
		s.recordFailureAt(pos, rule.Name)
		return false
	}
	s.commit(rule, pos, end, attachTo)
	s.pos = end
	return true
}

func (s *state) matchNamed(rule *grammar.Rule, attachTo tree.Index) bool {
	orig := s.pos
	start := skipWS(s.input, s.pos)
	s.pos = start
	mark := s.tree.Len()
	node := s.tree.Allocate(rule, start, start, attachTo)

	body := grammar.RuleFor(rule.Named)
	if !s.match(body, node) {
		s.tree.TruncateAfter(tree.Index(mark))
		s.pos = orig
		s.recordContext(rule.Name)
		return false
	}
	s.tree.SetEnd(node, s.pos)
	if attachTo >= 0 {
		s.tree.AppendChild(attachTo, node)
	}
	return true
}

func (s *state) matchSequence(children []*grammar.Rule, attachTo tree.Index) bool {
	start, mark := s.pos, s.tree.Len()
	for _, c := range children {
		if c.Kind == grammar.End {
			break
		}
		if !s.match(c, attachTo) {
			s.tree.TruncateAfter(tree.Index(mark))
			s.pos = start
			return false
		}
	}
	return true
}

func (s *state) matchAlternation(children []*grammar.Rule, attachTo tree.Index) bool {
	for _, c := range children {
		if c.Kind == grammar.End {
			break
		}
		start, mark := s.pos, s.tree.Len()
		if s.match(c, attachTo) {
			return true
		}
		s.tree.TruncateAfter(tree.Index(mark))
		s.pos = start
	}
	return false
}

// matchRepeat greedily matches child as many times as possible, returning
// the number of successful iterations. A failing iteration's partial
// work is discarded and the loop simply stops; the error it produced
// still participates in farthest-error tracking.
func (s *state) matchRepeat(child *grammar.Rule, attachTo tree.Index) int {
	count := 0
	for {
		start, mark := s.pos, s.tree.Len()
		if !s.match(child, attachTo) {
			s.tree.TruncateAfter(tree.Index(mark))
			s.pos = start
			return count
		}
		count++
	}
}

func (s *state) commit(rule *grammar.Rule, from, to int, attachTo tree.Index) {
	node := s.tree.Allocate(rule, from, to, attachTo)
	if attachTo >= 0 {
		s.tree.AppendChild(attachTo, node)
	}
}

func (s *state) recordFailureAt(pos int, name string) {
	if pos > s.farthest {
		s.farthest = pos
		s.expected = treeset.NewWith(utils.StringComparator)
	}
	if pos == s.farthest && s.expected.Size() < maxFarthestAttempts {
		s.expected.Add(name)
	}
}

// recordContext adds a NamedRule's name to the expected set once a
// farthest offset has already been established, giving diagnostic
// context without itself being a Literal/Terminal candidate.
func (s *state) recordContext(name string) {
	if s.expected != nil && s.expected.Size() < maxFarthestAttempts {
		s.expected.Add(name)
	}
}

func skipWS(input string, pos int) int {
	for pos < len(input) {
		switch input[pos] {
		case ' ', '\t', '\n', '\r':
			pos++
			continue
		case '#':
			for pos < len(input) && input[pos] != '\n' {
				pos++
			}
			continue
		}
		break
	}
	return pos
}

func isAllASCIIAlpha(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !((c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')) {
			return false
		}
	}
	return true
}

func equalFoldASCII(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := 0; i < len(a); i++ {
		ca, cb := a[i], b[i]
		if ca >= 'A' && ca <= 'Z' {
			ca += 'a' - 'A'
		}
		if cb >= 'A' && cb <= 'Z' {
			cb += 'a' - 'A'
		}
		if ca != cb {
			return false
		}
	}
	return true
}

// nextIsIdentCont reports whether the rune at end would extend an
// identifier-like token, used to enforce the boundary rule: an
// alphabetic keyword (or the "?" path-modifier literal) must not match
// as a strict prefix of a longer VAR1/identifier token.
func nextIsIdentCont(input string, end int) bool {
	if end >= len(input) {
		return false
	}
	r, _ := utf8.DecodeRuneInString(input[end:])
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}
