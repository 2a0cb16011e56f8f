/*
Package rdfterm gives the row-stream cursor's (ColumnType, string) column
pairs a typed Go representation, without performing any semantic
validation — that remains the job of downstream passes, per the parser's
own Non-goals.

Term is a closed interface implemented by IRI, PlainLiteral, LangLiteral,
TypedLiteral, BlankNode, NumericLiteral, BooleanLiteral, and Unbound,
mirroring the Subj/Pred/Obj term split in knakk/rdf's Turtle decoder
(IRI{str}, Blank{id}) but widened to the richer ColumnType set the
row-stream cursor decodes.
*/
package rdfterm
