// Package intmap provides an integer keyed map that is built in bulk from a
// key list, probed in bulk and torn down explicitly. It is the primitive that
// benchmark harnesses call through the C library in cmd/libintmap, the
// handle registry and the MCP tools.
//
// Every key maps to the index of its last occurrence in the construction
// sequence. Lookups fold their results into a package level sink so that a
// timed probe always performs real work.
package intmap
