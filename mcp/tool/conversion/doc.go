// Package conversion translates between Go action signatures and MCP tool
// JSON schemas in both directions: local signatures are published as tool
// schemas, remote tool schemas become dynamically generated struct types.
package conversion
