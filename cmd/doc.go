// Package cmd implements all sub-commands that make up the intmap
// command-line interface. Each file in this directory registers a single
// sub-command (probe, stats, serve, exec, list-tools, …). Plumbing shared
// between commands such as configuration loading or service initialisation
// is located in shared.go.
package cmd
