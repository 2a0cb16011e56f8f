package grammar

// This file declares the leaf-level var/term/literal productions. Numeric
// alternatives are ordered DOUBLE, DECIMAL, INTEGER (longest-match-first):
// Alternation picks the first matching child, and a DECIMAL matcher alone
// would happily consume the "3.14" prefix of "3.14e10", stranding "e10".

func init() {
	productions[VarOrTerm] = alt("VarOrTerm", ref(Var), ref(GraphTerm))

	productions[VarOrIri] = alt("VarOrIri", ref(Var), ref(Iri))

	productions[Var] = alt("Var", term(VAR1), term(VAR2), term(PARAMETERIZED_VAR))

	productions[GraphTerm] = alt("GraphTerm",
		ref(Iri),
		ref(RDFLiteral),
		ref(NumericLiteral),
		ref(BooleanLiteral),
		ref(BlankNode),
		ref(NullNode),
		seq("NIL", term(NIL)),
	)

	// NullNode is a vendor extension: the literal keyword NULL, usable
	// anywhere a GraphTerm is expected. It carries no RDF semantics here;
	// transport/rowcursor consumers decide what an unbound NULL node means.
	productions[NullNode] = seq("NullNode", L("NULL"))

	productions[Iri] = alt("Iri", seq("IRIREF", term(IRIREF)), ref(PrefixedName))

	productions[PrefixedName] = alt("PrefixedName", term(PNAME_LN), term(PNAME_NS))

	productions[BlankNode] = alt("BlankNode", term(BLANK_NODE_LABEL), term(ANON))

	productions[StringNode] = alt("String",
		term(STRING_LITERAL_LONG1), term(STRING_LITERAL_LONG2),
		term(STRING_LITERAL1), term(STRING_LITERAL2),
	)

	productions[RDFLiteral] = seq("RDFLiteral",
		ref(StringNode),
		opt("LangOrType?", alt("LangOrType",
			term(LANGTAG),
			seq("DatatypeIri", L("^^"), ref(Iri)),
		)),
	)

	productions[NumericLiteral] = alt("NumericLiteral",
		ref(NumericLiteralUnsigned), ref(NumericLiteralPositive), ref(NumericLiteralNegative),
	)

	productions[NumericLiteralUnsigned] = alt("NumericLiteralUnsigned",
		term(DOUBLE), term(DECIMAL), term(INTEGER),
	)

	productions[NumericLiteralPositive] = alt("NumericLiteralPositive",
		term(DOUBLE_POSITIVE), term(DECIMAL_POSITIVE), term(INTEGER_POSITIVE),
	)

	productions[NumericLiteralNegative] = alt("NumericLiteralNegative",
		term(DOUBLE_NEGATIVE), term(DECIMAL_NEGATIVE), term(INTEGER_NEGATIVE),
	)

	productions[BooleanLiteral] = alt("BooleanLiteral", L("true"), L("false"))
}
