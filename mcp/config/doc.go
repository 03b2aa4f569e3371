// Package config defines the YAML/JSON configuration model of the intmap
// service: map backend and node capacities, the MCP server options, the set
// of exposed tools and an optional preset key list. Configuration files and
// key lists can be addressed by any URL supported by viant/afs.
package config
