/*
Package sparqlgo is a client-side SPARQL 1.1 library.

It connects applications to an RDF triple store over three transports: a
locally-linked store, an IPC endpoint on the same machine, and a remote
HTTP endpoint (package transport). The hard engineering lives in two
tightly related packages:

■ grammar: a static, read-only description of the SPARQL 1.1 concrete
grammar (productions and terminal matchers), expressed as a tagged rule
tree with compact constructors.

■ sparqlparse: a hand-rolled recursive-descent parser with backtracking
that drives the grammar tables against an input string and reduces it to
a parse tree (package sparqlparse/tree) or a structured parse error.

A secondary concern, package rowcursor, decodes the binary row-stream
format used to transport query results over the IPC transport.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2026 the grafdb/sparqlgo authors.
*/
package sparqlgo
