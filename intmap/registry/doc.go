// Package registry tracks live maps behind numeric handles so that callers on
// the far side of a boundary (C ABI, MCP tools) never hold Go pointers. A
// handle is released exactly once; stale or repeated releases are reported
// instead of touching freed storage.
package registry
