package grammar

import "testing"

func TestEveryProductionHasARule(t *testing.T) {
	for p := Production(0); p < numProductions; p++ {
		if productions[p] == nil {
			t.Errorf("production %s (%d) has no rule", p, p)
		}
	}
}

func TestCompositeChildListsAreEndTerminated(t *testing.T) {
	for p := Production(0); p < numProductions; p++ {
		r := productions[p]
		walkRule(t, p, r, make(map[*Rule]bool))
	}
}

func walkRule(t *testing.T, p Production, r *Rule, seen map[*Rule]bool) {
	if r == nil || seen[r] {
		return
	}
	seen[r] = true
	switch r.Kind {
	case Sequence, Alternation, ZeroOrMore, OneOrMore, Optional:
		if len(r.Children) == 0 {
			t.Errorf("production %s: composite rule %q has no children", p, r.Name)
			return
		}
		last := r.Children[len(r.Children)-1]
		if last.Kind != End {
			t.Errorf("production %s: composite rule %q child list not End-terminated", p, r.Name)
		}
		for _, c := range r.Children {
			if c.Kind != End {
				walkRule(t, p, c, seen)
			}
		}
	}
}

func TestNumericLiteralAlternativesPreferLongestMatch(t *testing.T) {
	// DOUBLE must be tried before DECIMAL before INTEGER, or "3.14e10"
	// would be mis-parsed as DECIMAL "3.14" leaving "e10" unconsumed.
	children := productions[NumericLiteralUnsigned].Children
	order := []TerminalTag{}
	for _, c := range children {
		if c.Kind == Terminal {
			order = append(order, c.Term)
		}
	}
	if len(order) != 3 || order[0] != DOUBLE || order[1] != DECIMAL || order[2] != INTEGER {
		t.Fatalf("NumericLiteralUnsigned terminal order = %v, want [DOUBLE DECIMAL INTEGER]", order)
	}
}

func TestTerminalMatcherForEveryTag(t *testing.T) {
	tags := []TerminalTag{
		IRIREF, PNAME_NS, PNAME_LN, BLANK_NODE_LABEL, VAR1, VAR2, LANGTAG,
		INTEGER, DECIMAL, DOUBLE, INTEGER_POSITIVE, INTEGER_NEGATIVE,
		DECIMAL_POSITIVE, DECIMAL_NEGATIVE, DOUBLE_POSITIVE, DOUBLE_NEGATIVE,
		STRING_LITERAL1, STRING_LITERAL2, STRING_LITERAL_LONG1, STRING_LITERAL_LONG2,
		NIL, ANON, PARAMETERIZED_VAR,
	}
	for _, tag := range tags {
		if TerminalMatcherFor(tag) == nil {
			t.Errorf("no matcher registered for %s", tag)
		}
	}
}

func TestRuleForPanicsOnUnknownProduction(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("RuleFor(numProductions) did not panic")
		}
	}()
	RuleFor(numProductions)
}
