/*
Package rowcursor decodes the little-endian binary row-stream format
produced by the storage/execution engine: a sequence of fixed-shape rows
terminated by a zero column count. Each row carries a type tag and a
NUL-terminated UTF-8 value (with an optional trailing language tag) per
column.

Cursor is a single-owner, not-concurrency-safe iterator; NextAsync
offloads decoding to a small shared worker pool while still completing
calls against the same cursor in submission order.
*/
package rowcursor
