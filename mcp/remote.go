package mcp

import (
	"context"
	"fmt"
	"log"

	"github.com/viant/afs"
	"github.com/viant/fluxor/model/types"
	"github.com/viant/intmap/mcp/tool"
	"github.com/viant/mcp"
	mcpclient "github.com/viant/mcp/client"
	"gopkg.in/yaml.v3"
)

// registerRemotes imports the tools of every configured remote server.
func (s *Service) registerRemotes(ctx context.Context) error {
	remotes, err := s.loadRemoteConfig(ctx)
	if err != nil {
		return err
	}
	for _, options := range remotes {
		if _, err = s.RegisterRemote(ctx, options); err != nil {
			return err
		}
	}
	return nil
}

// RegisterRemote connects to a remote intmap server and re-registers its
// tools locally under the client name, e.g. "edge-intmap-probe".
func (s *Service) RegisterRemote(ctx context.Context, options *mcp.ClientOptions) (types.Service, error) {
	cli, err := Dial(options)
	if err != nil {
		return nil, err
	}
	return s.RegisterClient(ctx, options.Name, cli)
}

// RegisterClient exposes the tools of an already connected client.
func (s *Service) RegisterClient(ctx context.Context, name string, cli mcpclient.Interface) (types.Service, error) {
	proxy, err := tool.NewProxy(ctx, name, cli)
	if err != nil {
		return nil, fmt.Errorf("load tools for %q: %w", name, err)
	}
	s.mu.Lock()
	s.services = append(s.services, proxy)
	s.mu.Unlock()
	s.addToolEntries(serviceToToolEntries(proxy))
	log.Printf("intmap: imported %d tool(s) from %v", len(proxy.Methods()), name)
	return proxy, nil
}

// Dial creates a client for a remote MCP server.
func Dial(options *mcp.ClientOptions) (mcpclient.Interface, error) {
	options.Init()
	cli, err := mcp.NewClient(newMcpClient(), options)
	if err != nil {
		return nil, fmt.Errorf("create mcp client %q: %w", options.Name, err)
	}
	return cli, nil
}

// loadRemoteConfig resolves remote client options either embedded directly
// in the config or referenced via URL.
func (s *Service) loadRemoteConfig(ctx context.Context) ([]*mcp.ClientOptions, error) {
	if s.config.Remotes == nil {
		return nil, nil
	}
	if len(s.config.Remotes.Items) > 0 {
		return s.config.Remotes.Items, nil
	}
	if s.config.Remotes.URL == "" {
		return nil, nil
	}

	fs := afs.New()
	data, err := fs.DownloadWithURL(ctx, s.config.Remotes.URL)
	if err != nil {
		return nil, fmt.Errorf("download remotes config %q: %w", s.config.Remotes.URL, err)
	}
	var out []*mcp.ClientOptions
	if err := yaml.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("parse remotes config %q: %w", s.config.Remotes.URL, err)
	}
	return out, nil
}
