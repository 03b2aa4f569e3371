package mcp

import (
	"context"

	"github.com/viant/jsonrpc"
	protoclient "github.com/viant/mcp-protocol/client"
	mcpschema "github.com/viant/mcp-protocol/schema"
)

// defaultClient answers server-initiated callbacks of remote intmap servers.
// intmap tools never call back, so every operation reports not implemented.
type defaultClient struct {
	implements map[string]bool
}

func (d *defaultClient) Init(_ context.Context, _ *mcpschema.ClientCapabilities) {
	if d.implements == nil {
		d.implements = make(map[string]bool)
	}
}

func (*defaultClient) OnNotification(context.Context, *jsonrpc.Notification) {}

func (d *defaultClient) Implements(method string) bool {
	return d.implements[method]
}

func (*defaultClient) ListRoots(context.Context, *mcpschema.ListRootsRequestParams) (*mcpschema.ListRootsResult, *jsonrpc.Error) {
	return nil, notImplemented()
}

func (*defaultClient) CreateMessage(context.Context, *mcpschema.CreateMessageRequestParams) (*mcpschema.CreateMessageResult, *jsonrpc.Error) {
	return nil, notImplemented()
}

func (*defaultClient) Elicit(context.Context, *mcpschema.ElicitRequestParams) (*mcpschema.ElicitResult, *jsonrpc.Error) {
	return nil, notImplemented()
}

func (*defaultClient) CreateUserInteraction(context.Context, *mcpschema.CreateUserInteractionRequestParams) (*mcpschema.CreateUserInteractionResult, *jsonrpc.Error) {
	return nil, notImplemented()
}

func notImplemented() *jsonrpc.Error {
	return jsonrpc.NewError(jsonrpc.MethodNotFound, "not implemented", nil)
}

func newMcpClient() protoclient.Handler { return &defaultClient{} }
