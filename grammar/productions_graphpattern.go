package grammar

// This file declares the group graph pattern productions: the WHERE-clause
// body grammar shared by all query forms and by Modify's DELETE/INSERT
// template bodies.

func init() {
	productions[TriplesTemplate] = seq("TriplesTemplate",
		ref(TriplesSameSubject),
		opt("MoreTriplesTemplate?", seq("MoreTriplesTemplate",
			L("."), opt("TriplesTemplate?", ref(TriplesTemplate)),
		)),
	)

	productions[GroupGraphPattern] = seq("GroupGraphPattern",
		L("{"), alt("GroupGraphPatternBody", ref(SubSelect), ref(GroupGraphPatternSub)), L("}"),
	)

	productions[GroupGraphPatternSub] = seq("GroupGraphPatternSub",
		opt("TriplesBlock?", ref(TriplesBlock)),
		star("GraphPatternNotTriplesAndMore*", seq("GraphPatternNotTriplesAndMore",
			ref(GraphPatternNotTriples),
			opt("Dot?", L(".")),
			opt("TriplesBlock?", ref(TriplesBlock)),
		)),
	)

	productions[TriplesBlock] = seq("TriplesBlock",
		ref(TriplesSameSubjectPath),
		opt("MoreTriplesBlock?", seq("MoreTriplesBlock",
			L("."), opt("TriplesBlock?", ref(TriplesBlock)),
		)),
	)

	productions[GraphPatternNotTriples] = alt("GraphPatternNotTriples",
		ref(GroupOrUnionGraphPattern),
		ref(OptionalGraphPattern),
		ref(MinusGraphPattern),
		ref(GraphGraphPattern),
		ref(ServiceGraphPattern),
		ref(Filter),
		ref(Bind),
		ref(InlineData),
	)

	productions[OptionalGraphPattern] = seq("OptionalGraphPattern", L("OPTIONAL"), ref(GroupGraphPattern))

	productions[GraphGraphPattern] = seq("GraphGraphPattern", L("GRAPH"), ref(VarOrIri), ref(GroupGraphPattern))

	productions[ServiceGraphPattern] = seq("ServiceGraphPattern",
		L("SERVICE"), opt("SILENT?", L("SILENT")), ref(VarOrIri), ref(GroupGraphPattern),
	)

	productions[Bind] = seq("Bind", L("BIND"), L("("), ref(Expression), L("AS"), ref(Var), L(")"))

	productions[InlineData] = seq("InlineData", L("VALUES"), ref(DataBlock))

	productions[DataBlock] = alt("DataBlock", ref(InlineDataOneVar), ref(InlineDataFull))

	productions[InlineDataOneVar] = seq("InlineDataOneVar",
		ref(Var), L("{"), star("DataBlockValue*", ref(DataBlockValue)), L("}"),
	)

	productions[InlineDataFull] = seq("InlineDataFull",
		alt("VarListOrNil", seq("NIL", term(NIL)), seq("VarList", L("("), star("Var*", ref(Var)), L(")"))),
		L("{"),
		star("ValueRow*", seq("ValueRow",
			L("("), star("DataBlockValue*", ref(DataBlockValue)), L(")"),
		)),
		L("}"),
	)

	productions[DataBlockValue] = alt("DataBlockValue",
		ref(Iri), ref(RDFLiteral), ref(NumericLiteral), ref(BooleanLiteral), ref(NullNode), L("UNDEF"),
	)

	productions[MinusGraphPattern] = seq("MinusGraphPattern", L("MINUS"), ref(GroupGraphPattern))

	productions[GroupOrUnionGraphPattern] = seq("GroupOrUnionGraphPattern",
		ref(GroupGraphPattern),
		star("UnionMore*", seq("UnionMore", L("UNION"), ref(GroupGraphPattern))),
	)

	productions[Filter] = seq("Filter", L("FILTER"), ref(Constraint))

	productions[Constraint] = alt("Constraint",
		ref(BrackettedExpression), ref(BuiltInCall), ref(FunctionCall),
	)

	productions[FunctionCall] = seq("FunctionCall", ref(Iri), ref(ArgList))

	productions[ArgList] = alt("ArgList",
		seq("NIL", term(NIL)),
		seq("Args", L("("), opt("DISTINCT?", L("DISTINCT")),
			ref(Expression),
			star("MoreExpr*", seq("MoreExpr", L(","), ref(Expression))),
			L(")"),
		),
	)

	productions[ExpressionList] = alt("ExpressionList",
		seq("NIL", term(NIL)),
		seq("ExprList", L("("), ref(Expression),
			star("MoreExpr*", seq("MoreExpr", L(","), ref(Expression))),
			L(")"),
		),
	)
}
