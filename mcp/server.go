package mcp

import (
	"context"

	"github.com/viant/jsonrpc/transport"
	protocolclient "github.com/viant/mcp-protocol/client"
	"github.com/viant/mcp-protocol/logger"
	serverproto "github.com/viant/mcp-protocol/server"
)

// NewHandler returns a server handler exposing every registered tool. Tools
// are built once during bootstrap; each connection only registers them.
func (s *Service) NewHandler(ctx context.Context, notifier transport.Notifier, l logger.Logger, cli protocolclient.Operations) (serverproto.Handler, error) {
	impl := serverproto.NewDefaultHandler(notifier, l, cli)
	for _, entry := range s.toolEntries() {
		e := entry
		impl.RegisterToolWithSchema(e.name, e.description, e.inputSchema, e.outputSchema, e.handler)
	}
	return impl, nil
}
