package grammar

import "testing"

func TestMatchIRIREF(t *testing.T) {
	end, ok := matchIRIREF(`<http://example/C> rest`, 0)
	if !ok || end != len(`<http://example/C>`) {
		t.Fatalf("matchIRIREF = (%d, %v), want (%d, true)", end, ok, len(`<http://example/C>`))
	}
}

func TestMatchDoubleRequiresExponent(t *testing.T) {
	if _, ok := matchDouble("3.14", 0); ok {
		t.Fatal("matchDouble matched \"3.14\" without an exponent")
	}
	end, ok := matchDouble("3.14e10", 0)
	if !ok || end != len("3.14e10") {
		t.Fatalf("matchDouble(\"3.14e10\") = (%d, %v), want (%d, true)", end, ok, len("3.14e10"))
	}
}

func TestMatchDecimalRejectsLoneDot(t *testing.T) {
	if _, ok := matchDecimal(".", 0); ok {
		t.Fatal("matchDecimal matched a lone \".\"")
	}
	end, ok := matchDecimal("3.14", 0)
	if !ok || end != 4 {
		t.Fatalf("matchDecimal(\"3.14\") = (%d, %v), want (4, true)", end, ok)
	}
}

func TestMatchTripleQuotedString(t *testing.T) {
	input := `"""hello "world" """rest`
	lit := `"""hello "world" """`
	end, ok := matchStringLiteralLong2(input, 0)
	if !ok || end != len(lit) {
		t.Fatalf("matchStringLiteralLong2 = (%d, %v), want (%d, true)", end, ok, len(lit))
	}
}

func TestMatchTripleQuotedStringUnterminated(t *testing.T) {
	if _, ok := matchStringLiteralLong2(`"""unterminated`, 0); ok {
		t.Fatal("matchStringLiteralLong2 matched an unterminated triple-quoted string")
	}
}

func TestMatchPNLocalGivesBackTrailingDot(t *testing.T) {
	end, ok := matchPNameLN("ex:a.b.", 0)
	if !ok {
		t.Fatal("matchPNameLN failed to match \"ex:a.b.\"")
	}
	if input := "ex:a.b."; input[end-1] == '.' {
		t.Fatalf("matchPNameLN consumed a trailing \".\": matched %q", input[:end])
	}
}

func TestMatchLangtag(t *testing.T) {
	end, ok := matchLangtag("@en-US rest", 0)
	if !ok || end != len("@en-US") {
		t.Fatalf("matchLangtag = (%d, %v), want (%d, true)", end, ok, len("@en-US"))
	}
}

func TestMatchParameterizedVar(t *testing.T) {
	end, ok := matchParameterizedVar("~lim)", 0)
	if !ok || end != len("~lim") {
		t.Fatalf("matchParameterizedVar = (%d, %v), want (%d, true)", end, ok, len("~lim"))
	}
}
