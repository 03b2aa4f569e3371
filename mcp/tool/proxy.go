package tool

import (
	"context"
	"encoding/json"
	"fmt"
	"reflect"
	"strings"

	"github.com/viant/fluxor/model/types"
	"github.com/viant/intmap/internal/conv"
	"github.com/viant/intmap/mcp/tool/conversion"
	mcpschema "github.com/viant/mcp-protocol/schema"
	mcpclient "github.com/viant/mcp/client"
)

// Proxy implements types.Service by delegating each method to the matching
// tool of a remote server. Signatures are generated from the server's
// listTools response.
type Proxy struct {
	name    string
	client  mcpclient.Interface
	methods map[string]*mcpschema.Tool
	sigs    types.Signatures
}

// NewProxy lists the remote tools (all pages) and builds the proxy service.
func NewProxy(ctx context.Context, name string, cli mcpclient.Interface) (types.Service, error) {
	tools := make([]mcpschema.Tool, 0)
	var cursor *string
	for {
		res, err := cli.ListTools(ctx, cursor)
		if err != nil {
			return nil, err
		}
		tools = append(tools, res.Tools...)
		if res.NextCursor == nil || *res.NextCursor == "" {
			break
		}
		cursor = res.NextCursor
	}

	ret := &Proxy{name: name, client: cli, methods: make(map[string]*mcpschema.Tool, len(tools))}
	for i := range tools {
		tool := &tools[i]
		ret.methods[tool.Name] = tool
		ret.sigs = append(ret.sigs, types.Signature{
			Name:        tool.Name,
			Description: conv.Dereference[string](tool.Description),
			Input:       inputType(tool),
			Output:      outputType(tool),
		})
	}
	return ret, nil
}

// inputType falls back to a generic map when the schema cannot be converted.
func inputType(tool *mcpschema.Tool) reflect.Type {
	if tool.InputSchema.Type == "" && len(tool.InputSchema.Properties) == 0 {
		return reflect.TypeOf(map[string]interface{}{})
	}
	t, err := conversion.TypeFromInputSchema(tool.InputSchema)
	if err != nil {
		return reflect.TypeOf(map[string]interface{}{})
	}
	return t
}

// outputType uses an empty struct when the server publishes no output schema.
func outputType(tool *mcpschema.Tool) reflect.Type {
	if tool.OutputSchema == nil {
		return reflect.StructOf([]reflect.StructField{})
	}
	t, err := conversion.TypeFromOutputSchema(*tool.OutputSchema)
	if err != nil {
		return reflect.TypeOf(map[string]interface{}{})
	}
	return t
}

func (r *Proxy) Name() string {
	return r.name
}

func (r *Proxy) Methods() types.Signatures {
	return r.sigs
}

func (r *Proxy) Method(name string) (types.Executable, error) {
	tool, ok := r.methods[name]
	if !ok {
		return nil, types.NewMethodNotFoundError(name)
	}

	exec := func(ctx context.Context, input, output interface{}) error {
		args, err := conv.ToMap(input)
		if err != nil {
			return fmt.Errorf("convert %v arguments: %w", tool.Name, err)
		}
		params := &mcpschema.CallToolRequestParams{
			Name:      tool.Name,
			Arguments: mcpschema.CallToolRequestParamsArguments(args),
		}
		res, err := r.client.CallTool(ctx, params)
		if err != nil {
			return err
		}
		text := resultText(res)
		if res.IsError != nil && *res.IsError {
			return fmt.Errorf("%v: %s", tool.Name, text)
		}
		if output == nil {
			return nil
		}
		switch v := output.(type) {
		case *string:
			*v = text
		case **mcpschema.CallToolResult:
			*v = res
		default:
			if err := json.Unmarshal([]byte(text), v); err != nil {
				return fmt.Errorf("decode %v result: %w", tool.Name, err)
			}
		}
		return nil
	}
	return exec, nil
}

func resultText(res *mcpschema.CallToolResult) string {
	if len(res.Content) == 1 {
		return res.Content[0].Text
	}
	var texts []string
	for _, elem := range res.Content {
		texts = append(texts, elem.Text)
	}
	return strings.Join(texts, "\n")
}
