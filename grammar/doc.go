/*
Package grammar holds a static, read-only description of the SPARQL 1.1
concrete grammar (plus a small set of vendor extensions) as plain Go data.

Every production is a *Rule built from a handful of compact constructors
(lit, term, ref, seq, alt, star, plus, opt); the parser driver in package
sparqlparse interprets these tables, so no per-production Go code is needed to
add or change a production. Composite rules carry their children as a
slice terminated by the shared endRule sentinel, keeping every child-list
walk a plain "advance until End" loop even though Go slices already
carry a length.

Rule tables are built once, in package init order, and never mutated
afterwards — they are safe to share across any number of concurrent
parses.
*/
package grammar
