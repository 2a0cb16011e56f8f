package rdfterm

import "testing"

func TestLangLiteralString(t *testing.T) {
	lit := LangLiteral{Value: "hi", Lang: "en"}
	if got, want := lit.String(), "hi@en"; got != want {
		t.Fatalf("LangLiteral.String() = %q, want %q", got, want)
	}
}

func TestTermsImplementInterface(t *testing.T) {
	var terms = []Term{
		IRI{Value: "http://example/s"},
		BlankNode{ID: "_:b0"},
		PlainLiteral{Value: "v"},
		LangLiteral{Value: "v", Lang: "en"},
		TypedLiteral{Value: "1", Datatype: IRI{Value: "http://www.w3.org/2001/XMLSchema#int"}},
		NumericLiteral{Value: "1"},
		BooleanLiteral{Value: true},
		Unbound{},
	}
	for _, term := range terms {
		if term.String() == "" && term != Term(Unbound{}) {
			// Unbound is the only zero-string term; everything else
			// should render non-empty given the fixtures above.
			if _, isUnbound := term.(Unbound); !isUnbound {
				t.Fatalf("term %#v rendered an empty string", term)
			}
		}
	}
}
