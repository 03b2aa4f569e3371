// Package mapaction exposes registry backed integer maps as a Fluxor action
// service, so every map operation can be described by a typed signature and
// turned into an MCP tool.
package mapaction
