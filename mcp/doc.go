// Package mcp wires the intmap handle registry to the MCP protocol. Its
// central Service type loads configuration, exposes map operations as an
// action service, converts every action into an MCP tool, optionally imports
// tools of remote intmap servers and can serve all of them over MCP.
package mcp
