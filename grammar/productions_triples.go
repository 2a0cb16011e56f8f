package grammar

// This file declares the triples-pattern productions, split into the
// "simple" (non-path) forms used by templates and the "path" forms used
// inside WHERE-clause bodies, per the grammar's own split.

func init() {
	productions[ConstructTemplate] = seq("ConstructTemplate",
		L("{"), opt("ConstructTriples?", ref(ConstructTriples)), L("}"),
	)

	productions[ConstructTriples] = seq("ConstructTriples",
		ref(TriplesSameSubject),
		opt("MoreConstructTriples?", seq("MoreConstructTriples",
			L("."), opt("ConstructTriples?", ref(ConstructTriples)),
		)),
	)

	productions[TriplesSameSubject] = alt("TriplesSameSubject",
		seq("VarOrTermPropertyList", ref(VarOrTerm), ref(PropertyListNotEmpty)),
		seq("TriplesNodePropertyList", ref(TriplesNode), ref(PropertyList)),
	)

	productions[PropertyList] = opt("PropertyList", ref(PropertyListNotEmpty))

	productions[PropertyListNotEmpty] = seq("PropertyListNotEmpty",
		ref(Verb), ref(ObjectList),
		star("MoreVerbs*", seq("MoreVerbs",
			L(";"), opt("VerbObjectList?", seq("VerbObjectList", ref(Verb), ref(ObjectList))),
		)),
	)

	productions[Verb] = alt("Verb", ref(VarOrIri), L("a"))

	productions[ObjectList] = seq("ObjectList",
		ref(Object), star("MoreObjects*", seq("MoreObjects", L(","), ref(Object))),
	)

	productions[Object] = seq("Object", ref(GraphNode))

	productions[TriplesSameSubjectPath] = alt("TriplesSameSubjectPath",
		seq("VarOrTermPropertyListPath", ref(VarOrTerm), ref(PropertyListPathNotEmpty)),
		seq("TriplesNodePathPropertyListPath", ref(TriplesNodePath), ref(PropertyListPath)),
	)

	productions[PropertyListPath] = opt("PropertyListPath", ref(PropertyListPathNotEmpty))

	productions[PropertyListPathNotEmpty] = seq("PropertyListPathNotEmpty",
		alt("VerbPathOrSimple", ref(VerbPath), ref(VerbSimple)),
		ref(ObjectListPath),
		star("MoreVerbPaths*", seq("MoreVerbPaths",
			L(";"),
			opt("VerbPathObjectList?", seq("VerbPathObjectList",
				alt("VerbPathOrSimple", ref(VerbPath), ref(VerbSimple)), ref(ObjectListPath),
			)),
		)),
	)

	productions[VerbPath] = seq("VerbPath", ref(Path))

	productions[VerbSimple] = seq("VerbSimple", ref(Var))

	productions[ObjectListPath] = seq("ObjectListPath",
		ref(ObjectPath), star("MoreObjectPaths*", seq("MoreObjectPaths", L(","), ref(ObjectPath))),
	)

	productions[ObjectPath] = seq("ObjectPath", ref(GraphNodePath))

	productions[TriplesNode] = alt("TriplesNode", ref(Collection), ref(BlankNodePropertyList))

	productions[BlankNodePropertyList] = seq("BlankNodePropertyList", L("["), ref(PropertyListNotEmpty), L("]"))

	productions[TriplesNodePath] = alt("TriplesNodePath", ref(CollectionPath), ref(BlankNodePropertyListPath))

	productions[BlankNodePropertyListPath] = seq("BlankNodePropertyListPath",
		L("["), ref(PropertyListPathNotEmpty), L("]"),
	)

	productions[Collection] = seq("Collection", L("("), plus("GraphNode+", ref(GraphNode)), L(")"))

	productions[CollectionPath] = seq("CollectionPath", L("("), plus("GraphNodePath+", ref(GraphNodePath)), L(")"))

	productions[GraphNode] = alt("GraphNode", ref(VarOrTerm), ref(TriplesNode))

	productions[GraphNodePath] = alt("GraphNodePath", ref(VarOrTerm), ref(TriplesNodePath))
}
