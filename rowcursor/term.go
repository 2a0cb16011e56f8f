package rowcursor

import "github.com/grafdb/sparqlgo/rdfterm"

// Term converts column col of the current row into a typed rdfterm.Term
// using its decoded ColumnType and, where present, its language tag. It
// performs no semantic validation: a malformed numeric or boolean
// lexical form is passed through as-is inside the literal's Value.
func (c *Cursor) Term(col int) rdfterm.Term {
	typ := c.GetValueType(col)
	value, lang, _, ok := c.GetString(col)
	if !ok || typ == Unbound {
		return rdfterm.Unbound{}
	}
	switch typ {
	case Uri:
		return rdfterm.IRI{Value: value}
	case Blank:
		return rdfterm.BlankNode{ID: value}
	case Integer, Double:
		return rdfterm.NumericLiteral{Value: value}
	case Boolean:
		return rdfterm.BooleanLiteral{Value: value == "true" || value == "1"}
	case DateTime:
		return rdfterm.TypedLiteral{
			Value:    value,
			Datatype: rdfterm.IRI{Value: "http://www.w3.org/2001/XMLSchema#dateTime"},
		}
	case String:
		if lang != "" {
			return rdfterm.LangLiteral{Value: value, Lang: lang}
		}
		return rdfterm.PlainLiteral{Value: value}
	default:
		return rdfterm.PlainLiteral{Value: value}
	}
}
