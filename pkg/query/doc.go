// Package query builds MongoDB filter documents from named operator
// functions and logical combinators.
//
// Filters are plain Doc values in the shape the server expects: field paths
// mapped to literal values or single-operator objects, and logical documents
// such as {"$or": [...]}. Structured values passed to operator functions are
// expanded into dotted field paths first, so filters over embedded documents
// compose the same way as filters over top-level fields.
//
// Every function in this package is a pure constructor. Returned documents
// are freshly allocated, never retain caller state, and are safe to share
// across goroutines once built.
package query
