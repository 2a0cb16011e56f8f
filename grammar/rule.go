package grammar

// Kind tags the variant a Rule carries.
type Kind uint8

const (
	// Literal matches an exact keyword or punctuation string.
	Literal Kind = iota
	// Terminal matches via a character-level matcher function.
	Terminal
	// NamedRule refers to another production by its Production index.
	NamedRule
	// Sequence requires all children to match, in order.
	Sequence
	// Alternation requires exactly one child to match (first one wins).
	Alternation
	// ZeroOrMore repeats its single child zero or more times.
	ZeroOrMore
	// OneOrMore repeats its single child one or more times.
	OneOrMore
	// Optional tries its single child, never fails.
	Optional
	// End is the sentinel terminating every composite child list.
	End
)

func (k Kind) String() string {
	switch k {
	case Literal:
		return "Literal"
	case Terminal:
		return "Terminal"
	case NamedRule:
		return "NamedRule"
	case Sequence:
		return "Sequence"
	case Alternation:
		return "Alternation"
	case ZeroOrMore:
		return "ZeroOrMore"
	case OneOrMore:
		return "OneOrMore"
	case Optional:
		return "Optional"
	case End:
		return "End"
	default:
		return "?"
	}
}

// Rule is a single node in the static grammar description. Exactly one of
// its payload fields is meaningful, depending on Kind.
type Rule struct {
	Kind Kind

	// Literal payload.
	Lit string

	// Terminal payload.
	Term TerminalTag

	// NamedRule payload: the production this rule refers to.
	Named Production

	// Composite payload (Sequence, Alternation, ZeroOrMore, OneOrMore,
	// Optional): children, terminated by the shared endRule sentinel.
	Children []*Rule

	// Name is a short human label used only for error reporting and
	// tree/debug printing; it never drives matching.
	Name string
}

// endRule is the single shared sentinel appended to every composite
// rule's child list, preserving the "null terminated list" invariant
// even though Go slices already carry a length.
var endRule = &Rule{Kind: End, Name: "∎"}

// --- compact constructors ---------------------------------------------

// lit declares a Literal rule. Keyword literals (those starting with a
// letter) are matched case-insensitively and are subject to the
// identifier-boundary rule (see package sparqlparse); punctuation literals
// are matched byte-for-byte.
func lit(name, text string) *Rule {
	return &Rule{Kind: Literal, Lit: text, Name: name}
}

// L declares a Literal rule whose display name is its own text — the
// common case for both keywords ("SELECT") and punctuation ("{").
func L(text string) *Rule {
	return lit(text, text)
}

// term declares a Terminal rule delegating to the matcher registered for tag.
func term(tag TerminalTag) *Rule {
	return &Rule{Kind: Terminal, Term: tag, Name: tag.String()}
}

// ref declares a NamedRule rule pointing at another production.
func ref(p Production) *Rule {
	return &Rule{Kind: NamedRule, Named: p, Name: p.String()}
}

// seq declares a Sequence of children, all of which must match in order.
func seq(name string, children ...*Rule) *Rule {
	return &Rule{Kind: Sequence, Name: name, Children: terminate(children)}
}

// alt declares an Alternation; the first matching child wins.
func alt(name string, children ...*Rule) *Rule {
	return &Rule{Kind: Alternation, Name: name, Children: terminate(children)}
}

// star declares a ZeroOrMore repetition of a single child (itself usually
// a seq/alt when more than one rule participates in each iteration).
func star(name string, child *Rule) *Rule {
	return &Rule{Kind: ZeroOrMore, Name: name, Children: terminate([]*Rule{child})}
}

// plus declares a OneOrMore repetition of a single child.
func plus(name string, child *Rule) *Rule {
	return &Rule{Kind: OneOrMore, Name: name, Children: terminate([]*Rule{child})}
}

// opt declares an Optional single child.
func opt(name string, child *Rule) *Rule {
	return &Rule{Kind: Optional, Name: name, Children: terminate([]*Rule{child})}
}

func terminate(children []*Rule) []*Rule {
	return append(children, endRule)
}

// RuleFor returns the top-level rule body for a production. It panics if p
// is out of range or the table entry was never initialized — both
// indicate a bug in the grammar tables, not a runtime/input condition.
func RuleFor(p Production) *Rule {
	r := productions[p]
	if r == nil {
		panic("grammar: production " + p.String() + " has no rule (uninitialized table entry)")
	}
	return r
}
