/*
Package sparqlparse implements the backtracking parser driver over the
grammar tables in package grammar, producing a sparqlparse/tree.Tree or a
structured *Error.

ParseQuery and ParseUpdate are the two public entry points. Both are
pure functions of their input string: they hold no package-level mutable
state, so concurrent calls never need external synchronization.

Internally the driver matches a grammar.Rule by recursive descent with
full backtracking: a failed subtree rewinds the input cursor and discards
any tree nodes it allocated via tree.Tree.TruncateAfter before trying the
next alternative. Go's own goroutine stack grows on demand without
per-frame heap allocation, so recursion substitutes for a hand-rolled
rule-stack array without losing that property.
*/
package sparqlparse
