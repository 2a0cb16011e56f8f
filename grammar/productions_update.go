package grammar

// This file declares the SPARQL 1.1 Update productions, including the
// vendor relaxations: ';' between updates is optional, and Modify's
// WHERE clause is optional.

func init() {
	productions[UpdateUnit] = seq("UpdateUnit", ref(Update))

	productions[Update] = seq("Update",
		ref(Prologue),
		opt("Update1AndMore?", seq("Update1AndMore",
			ref(Update1),
			opt("Semi?", L(";")),
			opt("MoreUpdate?", ref(Update)),
		)),
	)

	productions[Update1] = alt("Update1",
		ref(Load), ref(Clear), ref(Drop), ref(Add), ref(Move), ref(Copy),
		ref(Create), ref(InsertData), ref(DeleteData), ref(DeleteWhere), ref(Modify),
	)

	productions[Load] = seq("Load",
		L("LOAD"), opt("SILENT?", L("SILENT")), ref(Iri),
		opt("IntoGraph?", seq("IntoGraph", L("INTO"), ref(GraphRef))),
	)

	productions[Clear] = seq("Clear", L("CLEAR"), opt("SILENT?", L("SILENT")), ref(GraphRefAll))

	productions[Drop] = seq("Drop", L("DROP"), opt("SILENT?", L("SILENT")), ref(GraphRefAll))

	productions[Create] = seq("Create", L("CREATE"), opt("SILENT?", L("SILENT")), ref(GraphRef))

	productions[Add] = seq("Add", L("ADD"), opt("SILENT?", L("SILENT")), ref(GraphOrDefault), L("TO"), ref(GraphOrDefault))

	productions[Move] = seq("Move", L("MOVE"), opt("SILENT?", L("SILENT")), ref(GraphOrDefault), L("TO"), ref(GraphOrDefault))

	productions[Copy] = seq("Copy", L("COPY"), opt("SILENT?", L("SILENT")), ref(GraphOrDefault), L("TO"), ref(GraphOrDefault))

	productions[InsertData] = seq("InsertData", L("INSERT"), L("DATA"), ref(QuadData))

	productions[DeleteData] = seq("DeleteData", L("DELETE"), L("DATA"), ref(QuadData))

	productions[DeleteWhere] = seq("DeleteWhere", L("DELETE"), L("WHERE"), ref(QuadPattern))

	// Modify's WHERE is optional, a vendor relaxation allowing a bare
	// DELETE/INSERT quad template with no matching pattern (e.g. fixed
	// bulk edits against a known dataset shape).
	productions[Modify] = seq("Modify",
		opt("WithGraph?", seq("WithGraph", L("WITH"), ref(Iri))),
		alt("DeleteOrInsertClauses",
			seq("DeleteThenInsert", ref(DeleteClause), opt("InsertClause?", ref(InsertClause))),
			ref(InsertClause),
		),
		star("UsingClause*", ref(UsingClause)),
		opt("ModifyWhere?", seq("ModifyWhere", L("WHERE"), ref(GroupGraphPattern))),
	)

	productions[DeleteClause] = seq("DeleteClause", L("DELETE"), ref(QuadPattern))

	productions[InsertClause] = seq("InsertClause", L("INSERT"), ref(QuadPattern))

	productions[UsingClause] = seq("UsingClause",
		L("USING"),
		alt("UsingTarget",
			ref(Iri),
			seq("UsingNamed", L("NAMED"), ref(Iri)),
		),
	)

	productions[GraphOrDefault] = alt("GraphOrDefault",
		L("DEFAULT"),
		seq("GraphOrDefaultNamed", opt("GRAPH?", L("GRAPH")), ref(Iri)),
	)

	productions[GraphRef] = seq("GraphRef", L("GRAPH"), ref(Iri))

	productions[GraphRefAll] = alt("GraphRefAll",
		ref(GraphRef), L("DEFAULT"), L("NAMED"), L("ALL"),
	)

	productions[QuadPattern] = seq("QuadPattern", L("{"), ref(Quads), L("}"))

	productions[QuadData] = seq("QuadData", L("{"), ref(Quads), L("}"))

	productions[Quads] = seq("Quads",
		opt("TriplesTemplate?", ref(TriplesTemplate)),
		star("QuadsNotTriplesAndMore*", seq("QuadsNotTriplesAndMore",
			ref(QuadsNotTriples),
			opt("Dot?", L(".")),
			opt("TriplesTemplate?", ref(TriplesTemplate)),
		)),
	)

	productions[QuadsNotTriples] = seq("QuadsNotTriples",
		L("GRAPH"), ref(VarOrIri), L("{"), opt("TriplesTemplate?", ref(TriplesTemplate)), L("}"),
	)
}
