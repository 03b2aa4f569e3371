// Package tool bridges action signatures and MCP tools. It provides
// canonical tool naming, JSON schema conversion (see conversion) and a proxy
// that exposes the tools of a remote intmap server as a local action service.
package tool
