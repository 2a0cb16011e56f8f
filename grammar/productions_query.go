package grammar

// This file declares the query-form productions: QueryUnit down through
// the solution-modifier clauses shared by all four query forms.

func init() {
	productions[QueryUnit] = seq("QueryUnit", ref(Query))

	productions[Query] = seq("Query",
		ref(Prologue),
		alt("QueryForm", ref(SelectQuery), ref(ConstructQuery), ref(DescribeQuery), ref(AskQuery)),
		star("ValuesClause*", ref(ValuesClause)),
	)

	productions[Prologue] = star("Prologue",
		alt("PrologueDecl", ref(BaseDecl), ref(PrefixDecl), ref(ConstraintDecl)),
	)

	productions[BaseDecl] = seq("BaseDecl", L("BASE"), term(IRIREF))

	productions[PrefixDecl] = seq("PrefixDecl", L("PREFIX"), term(PNAME_NS), term(IRIREF))

	// ConstraintDecl is a vendor extension: a "CONSTRAINT GRAPH/SERVICE"
	// prologue declaration, pinning a default graph or federation member
	// before the query body is parsed.
	productions[ConstraintDecl] = seq("ConstraintDecl",
		L("CONSTRAINT"),
		alt("ConstraintKind", L("GRAPH"), L("SERVICE")),
		alt("ConstraintTarget", term(IRIREF), ref(Var)),
	)

	productions[SelectQuery] = seq("SelectQuery",
		ref(SelectClause),
		star("DatasetClause*", ref(DatasetClause)),
		ref(WhereClause),
		ref(SolutionModifier),
	)

	productions[SubSelect] = seq("SubSelect",
		ref(SelectClause),
		ref(WhereClause),
		ref(SolutionModifier),
		star("ValuesClause*", ref(ValuesClause)),
	)

	productions[SelectClause] = seq("SelectClause",
		L("SELECT"),
		opt("DistinctOrReduced?", alt("DistinctOrReduced", L("DISTINCT"), L("REDUCED"))),
		alt("ProjectionOrStar",
			L("*"),
			plus("SelectVarEntry+", ref(SelectVarEntry)),
		),
	)

	// SelectVarEntry covers both plain Var projections and the
	// "(Expression AS Var)" aliasing form.
	productions[SelectVarEntry] = alt("SelectVarEntry",
		ref(Var),
		seq("AliasedExpr", L("("), ref(Expression), L("AS"), ref(Var), L(")")),
	)

	productions[ConstructQuery] = alt("ConstructQuery",
		seq("ConstructLong",
			L("CONSTRUCT"), ref(ConstructTemplate),
			star("DatasetClause*", ref(DatasetClause)),
			ref(WhereClause), ref(SolutionModifier),
		),
		seq("ConstructShort",
			L("CONSTRUCT"),
			star("DatasetClause*", ref(DatasetClause)),
			L("WHERE"), L("{"),
			opt("TriplesTemplate?", ref(TriplesTemplate)),
			L("}"),
			ref(SolutionModifier),
		),
	)

	productions[DescribeQuery] = seq("DescribeQuery",
		L("DESCRIBE"),
		alt("DescribeTargets", L("*"), plus("VarOrIri+", ref(VarOrIri))),
		star("DatasetClause*", ref(DatasetClause)),
		opt("WhereClause?", ref(WhereClause)),
		ref(SolutionModifier),
	)

	productions[AskQuery] = seq("AskQuery",
		L("ASK"),
		star("DatasetClause*", ref(DatasetClause)),
		ref(WhereClause),
		ref(SolutionModifier),
	)

	productions[DatasetClause] = seq("DatasetClause",
		L("FROM"),
		alt("GraphClause", ref(DefaultGraphClause), ref(NamedGraphClause)),
	)

	productions[DefaultGraphClause] = seq("DefaultGraphClause", ref(SourceSelector))

	productions[NamedGraphClause] = seq("NamedGraphClause", L("NAMED"), ref(SourceSelector))

	productions[SourceSelector] = seq("SourceSelector", ref(Iri))

	productions[WhereClause] = seq("WhereClause",
		opt("WHERE?", L("WHERE")),
		L("{"), ref(GroupGraphPatternSub), L("}"),
	)

	productions[SolutionModifier] = seq("SolutionModifier",
		opt("GroupClause?", ref(GroupClause)),
		opt("HavingClause?", ref(HavingClause)),
		opt("OrderClause?", ref(OrderClause)),
		opt("LimitOffsetClauses?", ref(LimitOffsetClauses)),
	)

	productions[GroupClause] = seq("GroupClause",
		L("GROUP"), L("BY"), plus("GroupCondition+", ref(GroupCondition)),
	)

	productions[GroupCondition] = alt("GroupCondition",
		ref(BuiltInCall),
		ref(FunctionCall),
		seq("GroupAliasedExpr", L("("), ref(Expression), opt("AS Var?", seq("AsVar", L("AS"), ref(Var))), L(")")),
		ref(Var),
	)

	productions[HavingClause] = seq("HavingClause", L("HAVING"), plus("HavingCondition+", ref(HavingCondition)))

	productions[HavingCondition] = seq("HavingCondition", ref(Constraint))

	productions[OrderClause] = seq("OrderClause", L("ORDER"), L("BY"), plus("OrderCondition+", ref(OrderCondition)))

	productions[OrderCondition] = alt("OrderCondition",
		seq("OrderDirected", alt("AscOrDesc", L("ASC"), L("DESC")), ref(BrackettedExpression)),
		alt("OrderUndirected", ref(Constraint), ref(Var)),
	)

	productions[LimitOffsetClauses] = alt("LimitOffsetClauses",
		seq("LimitThenOffset", ref(LimitClause), opt("OffsetClause?", ref(OffsetClause))),
		seq("OffsetThenLimit", ref(OffsetClause), opt("LimitClause?", ref(LimitClause))),
	)

	productions[LimitClause] = seq("LimitClause", L("LIMIT"), alt("LimitBound", term(INTEGER), term(PARAMETERIZED_VAR)))

	productions[OffsetClause] = seq("OffsetClause", L("OFFSET"), alt("OffsetBound", term(INTEGER), term(PARAMETERIZED_VAR)))

	productions[ValuesClause] = seq("ValuesClause", L("VALUES"), ref(DataBlock))
}
