package grammar

// This file declares the SPARQL 1.1 property-path productions.

func init() {
	productions[Path] = seq("Path", ref(PathAlternative))

	productions[PathAlternative] = seq("PathAlternative",
		ref(PathSequence), star("MoreAlt*", seq("MoreAlt", L("|"), ref(PathSequence))),
	)

	productions[PathSequence] = seq("PathSequence",
		ref(PathEltOrInverse), star("MoreSeq*", seq("MoreSeq", L("/"), ref(PathEltOrInverse))),
	)

	productions[PathEltOrInverse] = alt("PathEltOrInverse",
		seq("InversePathElt", L("^"), ref(PathElt)),
		ref(PathElt),
	)

	productions[PathElt] = seq("PathElt", ref(PathPrimary), opt("PathMod?", ref(PathMod)))

	productions[PathPrimary] = alt("PathPrimary",
		ref(Iri),
		seq("PathPrimaryA", L("a")),
		seq("PathPrimaryNegated", L("!"), ref(PathNegatedPropertySet)),
		seq("PathPrimaryGroup", L("("), ref(Path), L(")")),
	)

	// PathMod alternatives spell "*", "?", "+"; these are distinct
	// Production/Literal identities from the expression-grammar operators
	// that reuse "*", so no Go-level collision arises from sharing glyphs.
	productions[PathMod] = alt("PathMod", L("*"), L("?"), L("+"))

	productions[PathNegatedPropertySet] = alt("PathNegatedPropertySet",
		ref(PathOneInPropertySet),
		seq("PathNegatedGroup", L("("),
			opt("PathOneInPropertySetList?", seq("PathOneInPropertySetList",
				ref(PathOneInPropertySet),
				star("MoreOneInPropertySet*", seq("MoreOneInPropertySet", L("|"), ref(PathOneInPropertySet))),
			)),
			L(")"),
		),
	)

	productions[PathOneInPropertySet] = alt("PathOneInPropertySet",
		ref(Iri),
		seq("PathOneInPropertySetA", L("a")),
		seq("PathOneInPropertySetInverse", L("^"), alt("IriOrA", ref(Iri), L("a"))),
	)
}
