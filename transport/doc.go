/*
Package transport gives the parser and the row-stream cursor a realistic
caller: connection lifecycle over three transports — a locally-linked
store, an IPC endpoint on the same machine, and a remote HTTP endpoint.

This package is deliberately thin. It is not the execution engine or the
storage layer (both remain out of scope); Connection parses each request
once with package sparqlparse (proving the parser's public contract) and
hands the parse tree to the selected transport. The direct transport
passes it on to an Executor, a narrow interface the real engine would
implement. Only the IPC transport
produces a real consumer of package rowcursor, since that is the only
transport whose wire format this repository owns.
*/
package transport
