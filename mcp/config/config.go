package config

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/viant/afs"
	"github.com/viant/intmap/intmap"
	"github.com/viant/intmap/intmap/btree"
	"gopkg.in/yaml.v3"

	mcp "github.com/viant/mcp"
)

type Group[T any] struct {
	URL   string `yaml:"url,omitempty" json:"url,omitempty" short:"u" long:"url" description:"url"`
	Items []T    `yaml:"items,omitempty" json:"items,omitempty" short:"i" long:"items" description:"items"`
}

type Config struct {
	Server           *mcp.ServerOptions `yaml:"server,omitempty" json:"server,omitempty"`
	Backend          string             `yaml:"backend,omitempty" json:"backend,omitempty"`
	NodeCapacity     int                `yaml:"nodeCapacity,omitempty" json:"nodeCapacity,omitempty"`
	InternalCapacity int                `yaml:"internalCapacity,omitempty" json:"internalCapacity,omitempty"`
	// Tools lists tool patterns to expose: "*" for all, an exact tool name
	// such as "intmap-probe" or a prefix.
	Tools []string    `yaml:"tools,omitempty" json:"tools,omitempty"`
	Keys  *Group[int] `yaml:"keys,omitempty" json:"keys,omitempty"`
	// Remotes lists intmap MCP servers whose tools are proxied locally,
	// inline or referenced by URL.
	Remotes *Group[*mcp.ClientOptions] `yaml:"remotes,omitempty" json:"remotes,omitempty"`
}

// Load reads a YAML or JSON configuration from a local path or URL.
func Load(ctx context.Context, URL string) (*Config, error) {
	fs := afs.New()
	data, err := fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %q: %w", URL, err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %q: %w", URL, err)
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if _, err := intmap.ParseKind(c.Backend); err != nil {
		return err
	}
	if c.NodeCapacity != 0 && c.NodeCapacity < btree.MinCapacity {
		return fmt.Errorf("nodeCapacity must be at least %d, got %d", btree.MinCapacity, c.NodeCapacity)
	}
	if c.InternalCapacity != 0 && c.InternalCapacity < btree.MinCapacity {
		return fmt.Errorf("internalCapacity must be at least %d, got %d", btree.MinCapacity, c.InternalCapacity)
	}
	return nil
}

// MapOptions converts backend settings into map construction options.
func (c *Config) MapOptions() ([]intmap.Option, error) {
	kind, err := intmap.ParseKind(c.Backend)
	if err != nil {
		return nil, err
	}
	return []intmap.Option{
		intmap.WithKind(kind),
		intmap.WithCapacity(c.NodeCapacity, c.InternalCapacity),
	}, nil
}

// LoadKeys resolves the preset key list, inline items take precedence over URL.
func (c *Config) LoadKeys(ctx context.Context) ([]int, error) {
	if c.Keys == nil {
		return nil, nil
	}
	if len(c.Keys.Items) > 0 {
		return c.Keys.Items, nil
	}
	if c.Keys.URL == "" {
		return nil, nil
	}
	return LoadKeys(ctx, c.Keys.URL)
}

// LoadKeys downloads and parses a key list.
func LoadKeys(ctx context.Context, URL string) ([]int, error) {
	fs := afs.New()
	data, err := fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("download keys %q: %w", URL, err)
	}
	keys, err := ParseKeys(data)
	if err != nil {
		return nil, fmt.Errorf("parse keys %q: %w", URL, err)
	}
	return keys, nil
}

// ParseKeys accepts a YAML/JSON sequence of integers or plain integers
// separated by whitespace or commas.
func ParseKeys(data []byte) ([]int, error) {
	text := strings.TrimSpace(string(data))
	if text == "" {
		return nil, nil
	}
	var keys []int
	if err := yaml.Unmarshal(data, &keys); err == nil {
		return keys, nil
	}
	fields := strings.FieldsFunc(text, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\n' || r == '\t' || r == '\r'
	})
	keys = make([]int, 0, len(fields))
	for _, field := range fields {
		key, err := strconv.Atoi(field)
		if err != nil {
			return nil, fmt.Errorf("invalid key %q: %w", field, err)
		}
		keys = append(keys, key)
	}
	return keys, nil
}
