package grammar

// This file declares the SPARQL 1.1 expression productions, including the
// built-in function call grammar.

func init() {
	productions[Expression] = seq("Expression", ref(ConditionalOrExpression))

	productions[ConditionalOrExpression] = seq("ConditionalOrExpression",
		ref(ConditionalAndExpression),
		star("OrMore*", seq("OrMore", L("||"), ref(ConditionalAndExpression))),
	)

	productions[ConditionalAndExpression] = seq("ConditionalAndExpression",
		ref(ValueLogical),
		star("AndMore*", seq("AndMore", L("&&"), ref(ValueLogical))),
	)

	productions[ValueLogical] = seq("ValueLogical", ref(RelationalExpression))

	productions[RelationalExpression] = seq("RelationalExpression",
		ref(NumericExpression),
		opt("RelationalTail?", alt("RelationalTail",
			seq("Eq", L("="), ref(NumericExpression)),
			seq("Neq", L("!="), ref(NumericExpression)),
			seq("Lt", L("<"), ref(NumericExpression)),
			seq("Gt", L(">"), ref(NumericExpression)),
			seq("Le", L("<="), ref(NumericExpression)),
			seq("Ge", L(">="), ref(NumericExpression)),
			seq("In", L("IN"), ref(ExpressionList)),
			seq("NotIn", L("NOT"), L("IN"), ref(ExpressionList)),
		)),
	)

	productions[NumericExpression] = seq("NumericExpression", ref(AdditiveExpression))

	productions[AdditiveExpression] = seq("AdditiveExpression",
		ref(MultiplicativeExpression),
		star("AdditiveMore*", alt("AdditiveMore",
			seq("Plus", L("+"), ref(MultiplicativeExpression)),
			seq("Minus", L("-"), ref(MultiplicativeExpression)),
			seq("SignedNumeric",
				alt("SignedNumericLit", ref(NumericLiteralPositive), ref(NumericLiteralNegative)),
				star("SignedNumericTail*", alt("SignedNumericTailOp",
					seq("STimes", L("*"), ref(UnaryExpression)),
					seq("SDivide", L("/"), ref(UnaryExpression)),
				)),
			),
		)),
	)

	// MultiplicativeExpression's "*" sits in the Sequence rule named
	// ExprTimes, a distinct rule identity from PathMod's "*" alternative
	// even though both spell "*".
	productions[MultiplicativeExpression] = seq("MultiplicativeExpression",
		ref(UnaryExpression),
		star("MultiplicativeMore*", alt("MultiplicativeMore",
			seq("ExprTimes", L("*"), ref(UnaryExpression)),
			seq("ExprDivide", L("/"), ref(UnaryExpression)),
		)),
	)

	productions[UnaryExpression] = alt("UnaryExpression",
		seq("Not", L("!"), ref(PrimaryExpression)),
		seq("UnaryPlus", L("+"), ref(PrimaryExpression)),
		seq("UnaryMinus", L("-"), ref(PrimaryExpression)),
		ref(PrimaryExpression),
	)

	productions[PrimaryExpression] = alt("PrimaryExpression",
		ref(BrackettedExpression),
		ref(BuiltInCall),
		ref(IriOrFunction),
		ref(RDFLiteral),
		ref(NumericLiteral),
		ref(BooleanLiteral),
		ref(Var),
		ref(NullNode),
	)

	// BrackettedExpression also accepts a bare SubSelect, a vendor
	// extension allowing scalar subqueries inside filter/bind contexts.
	productions[BrackettedExpression] = seq("BrackettedExpression",
		L("("), alt("BracketedBody", ref(SubSelect), ref(Expression)), L(")"),
	)

	productions[BuiltInCall] = alt("BuiltInCall",
		ref(Aggregate),
		seq("STR", L("STR"), L("("), ref(Expression), L(")")),
		seq("LANG", L("LANG"), L("("), ref(Expression), L(")")),
		seq("LANGMATCHES", L("LANGMATCHES"), L("("), ref(Expression), L(","), ref(Expression), L(")")),
		seq("DATATYPE", L("DATATYPE"), L("("), ref(Expression), L(")")),
		seq("BOUND", L("BOUND"), L("("), ref(Var), L(")")),
		seq("IRI", L("IRI"), L("("), ref(Expression), L(")")),
		seq("URI", L("URI"), L("("), ref(Expression), L(")")),
		seq("BNODE", L("BNODE"), alt("BNODEArg", seq("NIL", term(NIL)), seq("BNODEExpr", L("("), ref(Expression), L(")")))),
		seq("RAND", L("RAND"), seq("NIL", term(NIL))),
		seq("ABS", L("ABS"), L("("), ref(Expression), L(")")),
		seq("CEIL", L("CEIL"), L("("), ref(Expression), L(")")),
		seq("FLOOR", L("FLOOR"), L("("), ref(Expression), L(")")),
		seq("ROUND", L("ROUND"), L("("), ref(Expression), L(")")),
		seq("CONCAT", L("CONCAT"), ref(ExpressionList)),
		ref(SubstringExpression),
		seq("STRLEN", L("STRLEN"), L("("), ref(Expression), L(")")),
		ref(StrReplaceExpression),
		seq("UCASE", L("UCASE"), L("("), ref(Expression), L(")")),
		seq("LCASE", L("LCASE"), L("("), ref(Expression), L(")")),
		seq("ENCODE_FOR_URI", L("ENCODE_FOR_URI"), L("("), ref(Expression), L(")")),
		seq("CONTAINS", L("CONTAINS"), L("("), ref(Expression), L(","), ref(Expression), L(")")),
		seq("STRSTARTS", L("STRSTARTS"), L("("), ref(Expression), L(","), ref(Expression), L(")")),
		seq("STRENDS", L("STRENDS"), L("("), ref(Expression), L(","), ref(Expression), L(")")),
		seq("STRBEFORE", L("STRBEFORE"), L("("), ref(Expression), L(","), ref(Expression), L(")")),
		seq("STRAFTER", L("STRAFTER"), L("("), ref(Expression), L(","), ref(Expression), L(")")),
		seq("YEAR", L("YEAR"), L("("), ref(Expression), L(")")),
		seq("MONTH", L("MONTH"), L("("), ref(Expression), L(")")),
		seq("DAY", L("DAY"), L("("), ref(Expression), L(")")),
		seq("HOURS", L("HOURS"), L("("), ref(Expression), L(")")),
		seq("MINUTES", L("MINUTES"), L("("), ref(Expression), L(")")),
		seq("SECONDS", L("SECONDS"), L("("), ref(Expression), L(")")),
		seq("TIMEZONE", L("TIMEZONE"), L("("), ref(Expression), L(")")),
		seq("TZ", L("TZ"), L("("), ref(Expression), L(")")),
		seq("NOW", L("NOW"), seq("NIL", term(NIL))),
		seq("UUID", L("UUID"), seq("NIL", term(NIL))),
		seq("STRUUID", L("STRUUID"), seq("NIL", term(NIL))),
		seq("MD5", L("MD5"), L("("), ref(Expression), L(")")),
		seq("SHA1", L("SHA1"), L("("), ref(Expression), L(")")),
		seq("SHA256", L("SHA256"), L("("), ref(Expression), L(")")),
		seq("SHA384", L("SHA384"), L("("), ref(Expression), L(")")),
		seq("SHA512", L("SHA512"), L("("), ref(Expression), L(")")),
		seq("COALESCE", L("COALESCE"), ref(ExpressionList)),
		seq("IF", L("IF"), L("("), ref(Expression), L(","), ref(Expression), L(","), ref(Expression), L(")")),
		seq("STRLANG", L("STRLANG"), L("("), ref(Expression), L(","), ref(Expression), L(")")),
		seq("STRDT", L("STRDT"), L("("), ref(Expression), L(","), ref(Expression), L(")")),
		seq("sameTerm", L("sameTerm"), L("("), ref(Expression), L(","), ref(Expression), L(")")),
		seq("isIRI", L("isIRI"), L("("), ref(Expression), L(")")),
		seq("isURI", L("isURI"), L("("), ref(Expression), L(")")),
		seq("isBLANK", L("isBLANK"), L("("), ref(Expression), L(")")),
		seq("isLITERAL", L("isLITERAL"), L("("), ref(Expression), L(")")),
		seq("isNUMERIC", L("isNUMERIC"), L("("), ref(Expression), L(")")),
		ref(RegexExpression),
		ref(ExistsFunc),
		ref(NotExistsFunc),
	)

	productions[RegexExpression] = seq("RegexExpression",
		L("REGEX"), L("("), ref(Expression), L(","), ref(Expression),
		opt("RegexFlags?", seq("RegexFlags", L(","), ref(Expression))),
		L(")"),
	)

	productions[SubstringExpression] = seq("SubstringExpression",
		L("SUBSTR"), L("("), ref(Expression), L(","), ref(Expression),
		opt("SubstrLen?", seq("SubstrLen", L(","), ref(Expression))),
		L(")"),
	)

	productions[StrReplaceExpression] = seq("StrReplaceExpression",
		L("REPLACE"), L("("), ref(Expression), L(","), ref(Expression), L(","), ref(Expression),
		opt("ReplaceFlags?", seq("ReplaceFlags", L(","), ref(Expression))),
		L(")"),
	)

	productions[ExistsFunc] = seq("ExistsFunc", L("EXISTS"), ref(GroupGraphPattern))

	productions[NotExistsFunc] = seq("NotExistsFunc", L("NOT"), L("EXISTS"), ref(GroupGraphPattern))

	productions[Aggregate] = alt("Aggregate",
		seq("COUNT", L("COUNT"), L("("), opt("DISTINCT?", L("DISTINCT")),
			alt("CountArg", L("*"), ref(Expression)), L(")")),
		seq("SUM", L("SUM"), L("("), opt("DISTINCT?", L("DISTINCT")), ref(Expression), L(")")),
		seq("MIN", L("MIN"), L("("), opt("DISTINCT?", L("DISTINCT")), ref(Expression), L(")")),
		seq("MAX", L("MAX"), L("("), opt("DISTINCT?", L("DISTINCT")), ref(Expression), L(")")),
		seq("AVG", L("AVG"), L("("), opt("DISTINCT?", L("DISTINCT")), ref(Expression), L(")")),
		seq("SAMPLE", L("SAMPLE"), L("("), opt("DISTINCT?", L("DISTINCT")), ref(Expression), L(")")),
		seq("GROUP_CONCAT", L("GROUP_CONCAT"), L("("), opt("DISTINCT?", L("DISTINCT")), ref(Expression),
			opt("Separator?", seq("Separator", L(";"), L("SEPARATOR"), L("="), ref(StringNode))),
			L(")"),
		),
	)

	productions[IriOrFunction] = seq("IriOrFunction", ref(Iri), opt("ArgList?", ref(ArgList)))
}
