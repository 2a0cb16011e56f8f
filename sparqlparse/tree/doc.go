/*
Package tree implements the parse-tree arena produced by package
sparqlparse.

Nodes are allocated from grow-only chunks of 128 entries; a tree never
frees a chunk, but the parser can cheaply discard a failed branch by
decrementing a high-water index (TruncateAfter) rather than physically
deallocating anything. Nodes are addressed by a stable integer index
that survives truncation of later nodes, so a caller can hold on to a
node index across backtracking as long as that node itself was never
rolled back.
*/
package tree
