package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/viant/intmap/intmap"
	"github.com/viant/intmap/mcp"
	mcpconfig "github.com/viant/intmap/mcp/config"
)

var (
	cfgPath string

	cfgOnce sync.Once
	cfgInst *mcpconfig.Config
	cfgErr  error

	svcOnce sync.Once
	svcInst *mcp.Service
	svcErr  error
)

// setConfigPath remembers the CLI-level -f/--config parameter so that the
// config and service singletons can be created lazily.
func setConfigPath(p string) { cfgPath = p }

// configSingleton loads the configuration once, a missing path yields the
// zero value config.
func configSingleton() (*mcpconfig.Config, error) {
	cfgOnce.Do(func() {
		if cfgPath == "" {
			cfgInst = &mcpconfig.Config{}
			return
		}
		cfgInst, cfgErr = mcpconfig.Load(context.Background(), cfgPath)
		if cfgErr != nil {
			return
		}
		// Dump the effective config when asked to via env for debugging.
		if debug := os.Getenv("INTMAP_DEBUG_CONFIG"); debug == "1" {
			_ = json.NewEncoder(os.Stderr).Encode(cfgInst)
		}
	})
	return cfgInst, cfgErr
}

// serviceSingleton initialises an mcp.Service only once and reuses the
// instance across sub-commands within the same CLI invocation.
func serviceSingleton() (*mcp.Service, error) {
	svcOnce.Do(func() {
		var cfg *mcpconfig.Config
		if cfg, svcErr = configSingleton(); svcErr != nil {
			return
		}
		svcInst, svcErr = mcp.New(context.Background(), mcp.WithConfig(cfg))
		if svcErr == nil {
			svcErr = svcInst.Start(context.Background())
		}
	})
	return svcInst, svcErr
}

// KeySource selects the keys a map is built from: inline, a file/URL or,
// when both are empty, the configured preset keys.
type KeySource struct {
	Keys    string `short:"k" long:"keys" description:"comma separated keys to build the map from"`
	KeysURL string `short:"u" long:"keys-url" description:"file or URL with keys (YAML/JSON list or plain integers)"`
	Backend string `short:"b" long:"backend" description:"storage backend: btree, hash, sync or lockfree"`
}

// build creates the map described by the source and the configuration.
func (s *KeySource) build(ctx context.Context) (*intmap.Map, error) {
	cfg, err := configSingleton()
	if err != nil {
		return nil, err
	}
	var keys []int
	switch {
	case s.Keys != "":
		if keys, err = parseInline(s.Keys); err != nil {
			return nil, err
		}
	case s.KeysURL != "":
		if keys, err = mcpconfig.LoadKeys(ctx, s.KeysURL); err != nil {
			return nil, err
		}
	default:
		if keys, err = cfg.LoadKeys(ctx); err != nil {
			return nil, err
		}
	}

	opts, err := cfg.MapOptions()
	if err != nil {
		return nil, err
	}
	if s.Backend != "" {
		kind, err := intmap.ParseKind(s.Backend)
		if err != nil {
			return nil, err
		}
		opts = append(opts, intmap.WithKind(kind))
	}
	return intmap.Create(keys, opts...), nil
}

func parseInline(value string) ([]int, error) {
	keys, err := mcpconfig.ParseKeys([]byte(strings.TrimSpace(value)))
	if err != nil {
		return nil, fmt.Errorf("invalid keys %q: %w", value, err)
	}
	return keys, nil
}
