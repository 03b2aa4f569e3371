// Command libintmap builds the map primitive as a C shared library so that
// benchmark harnesses written in other languages can create, probe and
// destroy maps through intmap.h:
//
//	go build -buildmode=c-shared -o libintmap.so ./cmd/libintmap
//
// Handles are registry ids rather than Go pointers; a stale handle is logged
// and ignored.
package main
