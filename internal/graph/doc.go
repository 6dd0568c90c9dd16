// Package graph holds the graph document: an arena of nodes and ports
// addressed by opaque integer handles, plus the connection maps between them.
//
// The document is owned and mutated by the editor layer; the compiler only
// ever reads it. Storing records in an arena keyed by handles (rather than
// linking structs with pointers) keeps the Go structure acyclic even when the
// user wires a cyclic graph, and gives every edge a stable identity for error
// reporting.
//
// Two indexes are maintained: the forward map from an input to the single
// output feeding it, and the derived reverse map from an output to every
// input it feeds. Data outputs fan out freely. Execution-typed ports are
// stricter: an execution input keeps at most one incoming connection and an
// execution output keeps at most one outgoing connection; establishing a new
// edge silently supersedes the old one.
package graph
