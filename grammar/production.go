package grammar

// Production enumerates every named rule (nonterminal) in the grammar,
// covering QueryUnit, UpdateUnit, and all of their transitively reachable
// rules per the SPARQL 1.1 grammar, plus this project's extensions.
type Production int

const (
	QueryUnit Production = iota
	UpdateUnit
	Query
	Prologue
	BaseDecl
	PrefixDecl
	ConstraintDecl
	SelectQuery
	SubSelect
	SelectClause
	SelectVarEntry
	ConstructQuery
	DescribeQuery
	AskQuery
	DatasetClause
	DefaultGraphClause
	NamedGraphClause
	SourceSelector
	WhereClause
	SolutionModifier
	GroupClause
	GroupCondition
	HavingClause
	HavingCondition
	OrderClause
	OrderCondition
	LimitOffsetClauses
	LimitClause
	OffsetClause
	ValuesClause

	Update
	Update1
	Load
	Clear
	Drop
	Create
	Add
	Move
	Copy
	InsertData
	DeleteData
	DeleteWhere
	Modify
	DeleteClause
	InsertClause
	UsingClause
	GraphOrDefault
	GraphRef
	GraphRefAll
	QuadPattern
	QuadData
	Quads
	QuadsNotTriples

	TriplesTemplate
	GroupGraphPattern
	GroupGraphPatternSub
	TriplesBlock
	GraphPatternNotTriples
	OptionalGraphPattern
	GraphGraphPattern
	ServiceGraphPattern
	Bind
	InlineData
	DataBlock
	InlineDataOneVar
	InlineDataFull
	DataBlockValue
	MinusGraphPattern
	GroupOrUnionGraphPattern
	Filter
	Constraint
	FunctionCall
	ArgList
	ExpressionList

	ConstructTemplate
	ConstructTriples
	TriplesSameSubject
	PropertyList
	PropertyListNotEmpty
	Verb
	ObjectList
	Object
	TriplesSameSubjectPath
	PropertyListPath
	PropertyListPathNotEmpty
	VerbPath
	VerbSimple
	ObjectListPath
	ObjectPath

	Path
	PathAlternative
	PathSequence
	PathEltOrInverse
	PathElt
	PathPrimary
	PathMod
	PathNegatedPropertySet
	PathOneInPropertySet

	TriplesNode
	BlankNodePropertyList
	TriplesNodePath
	BlankNodePropertyListPath
	Collection
	CollectionPath
	GraphNode
	GraphNodePath

	VarOrTerm
	VarOrIri
	Var
	GraphTerm
	NullNode

	Expression
	ConditionalOrExpression
	ConditionalAndExpression
	ValueLogical
	RelationalExpression
	NumericExpression
	AdditiveExpression
	MultiplicativeExpression
	UnaryExpression
	PrimaryExpression
	BrackettedExpression
	BuiltInCall
	RegexExpression
	SubstringExpression
	StrReplaceExpression
	ExistsFunc
	NotExistsFunc
	Aggregate
	IriOrFunction
	RDFLiteral
	NumericLiteral
	NumericLiteralUnsigned
	NumericLiteralPositive
	NumericLiteralNegative
	BooleanLiteral
	StringNode
	Iri
	PrefixedName
	BlankNode

	numProductions
)

var productionNames = [numProductions]string{
	QueryUnit: "QueryUnit", UpdateUnit: "UpdateUnit", Query: "Query",
	Prologue: "Prologue", BaseDecl: "BaseDecl", PrefixDecl: "PrefixDecl",
	ConstraintDecl: "ConstraintDecl",
	SelectQuery:    "SelectQuery", SubSelect: "SubSelect", SelectClause: "SelectClause",
	SelectVarEntry: "SelectVarEntry",
	ConstructQuery: "ConstructQuery", DescribeQuery: "DescribeQuery", AskQuery: "AskQuery",
	DatasetClause: "DatasetClause", DefaultGraphClause: "DefaultGraphClause",
	NamedGraphClause: "NamedGraphClause", SourceSelector: "SourceSelector",
	WhereClause: "WhereClause", SolutionModifier: "SolutionModifier",
	GroupClause: "GroupClause", GroupCondition: "GroupCondition",
	HavingClause: "HavingClause", HavingCondition: "HavingCondition",
	OrderClause: "OrderClause", OrderCondition: "OrderCondition",
	LimitOffsetClauses: "LimitOffsetClauses", LimitClause: "LimitClause",
	OffsetClause: "OffsetClause", ValuesClause: "ValuesClause",

	Update: "Update", Update1: "Update1", Load: "Load", Clear: "Clear",
	Drop: "Drop", Create: "Create", Add: "Add", Move: "Move", Copy: "Copy",
	InsertData: "InsertData", DeleteData: "DeleteData", DeleteWhere: "DeleteWhere",
	Modify: "Modify", DeleteClause: "DeleteClause", InsertClause: "InsertClause",
	UsingClause: "UsingClause", GraphOrDefault: "GraphOrDefault", GraphRef: "GraphRef",
	GraphRefAll: "GraphRefAll", QuadPattern: "QuadPattern", QuadData: "QuadData",
	Quads: "Quads", QuadsNotTriples: "QuadsNotTriples",

	TriplesTemplate: "TriplesTemplate", GroupGraphPattern: "GroupGraphPattern",
	GroupGraphPatternSub: "GroupGraphPatternSub", TriplesBlock: "TriplesBlock",
	GraphPatternNotTriples: "GraphPatternNotTriples", OptionalGraphPattern: "OptionalGraphPattern",
	GraphGraphPattern: "GraphGraphPattern", ServiceGraphPattern: "ServiceGraphPattern",
	Bind: "Bind", InlineData: "InlineData", DataBlock: "DataBlock",
	InlineDataOneVar: "InlineDataOneVar", InlineDataFull: "InlineDataFull",
	DataBlockValue: "DataBlockValue", MinusGraphPattern: "MinusGraphPattern",
	GroupOrUnionGraphPattern: "GroupOrUnionGraphPattern", Filter: "Filter",
	Constraint: "Constraint", FunctionCall: "FunctionCall", ArgList: "ArgList",
	ExpressionList: "ExpressionList",

	ConstructTemplate: "ConstructTemplate", ConstructTriples: "ConstructTriples",
	TriplesSameSubject: "TriplesSameSubject", PropertyList: "PropertyList",
	PropertyListNotEmpty: "PropertyListNotEmpty", Verb: "Verb",
	ObjectList: "ObjectList", Object: "Object",
	TriplesSameSubjectPath: "TriplesSameSubjectPath", PropertyListPath: "PropertyListPath",
	PropertyListPathNotEmpty: "PropertyListPathNotEmpty", VerbPath: "VerbPath",
	VerbSimple: "VerbSimple", ObjectListPath: "ObjectListPath", ObjectPath: "ObjectPath",

	Path: "Path", PathAlternative: "PathAlternative", PathSequence: "PathSequence",
	PathEltOrInverse: "PathEltOrInverse", PathElt: "PathElt", PathPrimary: "PathPrimary",
	PathMod: "PathMod", PathNegatedPropertySet: "PathNegatedPropertySet",
	PathOneInPropertySet: "PathOneInPropertySet",

	TriplesNode: "TriplesNode", BlankNodePropertyList: "BlankNodePropertyList",
	TriplesNodePath: "TriplesNodePath", BlankNodePropertyListPath: "BlankNodePropertyListPath",
	Collection: "Collection", CollectionPath: "CollectionPath",
	GraphNode: "GraphNode", GraphNodePath: "GraphNodePath",

	VarOrTerm: "VarOrTerm", VarOrIri: "VarOrIri", Var: "Var", GraphTerm: "GraphTerm",
	NullNode: "NullNode",

	Expression: "Expression", ConditionalOrExpression: "ConditionalOrExpression",
	ConditionalAndExpression: "ConditionalAndExpression", ValueLogical: "ValueLogical",
	RelationalExpression: "RelationalExpression", NumericExpression: "NumericExpression",
	AdditiveExpression: "AdditiveExpression", MultiplicativeExpression: "MultiplicativeExpression",
	UnaryExpression: "UnaryExpression", PrimaryExpression: "PrimaryExpression",
	BrackettedExpression: "BrackettedExpression", BuiltInCall: "BuiltInCall",
	RegexExpression: "RegexExpression", SubstringExpression: "SubstringExpression",
	StrReplaceExpression: "StrReplaceExpression", ExistsFunc: "ExistsFunc",
	NotExistsFunc: "NotExistsFunc", Aggregate: "Aggregate", IriOrFunction: "IriOrFunction",
	RDFLiteral: "RDFLiteral", NumericLiteral: "NumericLiteral",
	NumericLiteralUnsigned: "NumericLiteralUnsigned", NumericLiteralPositive: "NumericLiteralPositive",
	NumericLiteralNegative: "NumericLiteralNegative", BooleanLiteral: "BooleanLiteral",
	StringNode: "String", Iri: "iri", PrefixedName: "PrefixedName", BlankNode: "BlankNode",
}

func (p Production) String() string {
	if p >= 0 && int(p) < len(productionNames) && productionNames[p] != "" {
		return productionNames[p]
	}
	return "?production?"
}

// productions is the fixed-size, read-only named-rule table: productions[p]
// is the rule body for production p. Every entry is populated by an init()
// function in one of this package's productions_*.go files, split by
// grammar area (query forms, updates, triples, paths, graph patterns,
// expressions, terms).
var productions [numProductions]*Rule
