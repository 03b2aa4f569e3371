package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/viant/fluxor/model/types"
	"github.com/viant/intmap/internal/conv"
	"github.com/viant/intmap/mcp/matcher"
	"github.com/viant/intmap/mcp/tool"
	"github.com/viant/intmap/mcp/tool/conversion"
	"github.com/viant/jsonrpc"
	mcpschema "github.com/viant/mcp-protocol/schema"
)

// toolEntry holds metadata and execution handler for one MCP tool derived
// from an action method.
type toolEntry struct {
	name         string
	description  string
	inputSchema  mcpschema.ToolInputSchema
	outputSchema *mcpschema.ToolOutputSchema
	service      types.Service
	method       string
}

// Descriptor is the public view of a tool.
type Descriptor struct {
	Name        string      `json:"name"`
	Description string      `json:"description"`
	InputSchema interface{} `json:"inputSchema"`
}

// addToolEntries appends tool entries, skipping duplicates and tools not
// selected by the configured patterns.
func (s *Service) addToolEntries(entries []toolEntry) {
	if len(entries) == 0 {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	existing := make(map[string]struct{}, len(s.mcpTools))
	for _, e := range s.mcpTools {
		existing[e.name] = struct{}{}
	}
	for _, e := range entries {
		if _, dup := existing[e.name]; dup {
			continue // keep first definition encountered
		}
		if !matcher.MatchAny(s.config.Tools, e.name) {
			continue
		}
		s.mcpTools = append(s.mcpTools, e)
		existing[e.name] = struct{}{}
	}
}

// buildMcpToolRegistry converts every action service into tool entries.
func (s *Service) buildMcpToolRegistry() {
	for _, svc := range s.services {
		s.addToolEntries(serviceToToolEntries(svc))
	}
}

// serviceToToolEntries converts a single action service to tool entries.
func serviceToToolEntries(svc types.Service) []toolEntry {
	entries := make([]toolEntry, 0, len(svc.Methods()))
	for _, sig := range svc.Methods() {
		sigCopy := sig
		name := tool.NewName(svc.Name(), sig.Name).String()
		entry := toolEntry{
			name:        name,
			description: sig.Description,
			service:     svc,
			method:      sig.Name,
		}
		if meta, err := conversion.BuildSchema(&sigCopy); err == nil {
			entry.inputSchema = meta.InputSchema
			entry.outputSchema = meta.OutputSchema
			if desc := conv.Dereference[string](meta.Description); desc != "" {
				entry.description = desc
			}
		}
		if entry.inputSchema.Type == "" {
			entry.inputSchema.Type = "object"
		}
		entries = append(entries, entry)
	}
	return entries
}

// toolEntries returns a snapshot of all converted tools.
func (s *Service) toolEntries() []toolEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]toolEntry{}, s.mcpTools...)
}

// toolEntryByName returns the entry with the given name; canonical aliases
// such as "intmap/create" are accepted.
func (s *Service) toolEntryByName(name string) (*toolEntry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	canonical := tool.Canonical(name)
	for i, e := range s.mcpTools {
		if e.name == name || e.name == canonical {
			return &s.mcpTools[i], true
		}
	}
	return nil, false
}

// ToolNames returns all tool names in registration order.
func (s *Service) ToolNames() []string {
	entries := s.toolEntries()
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.name
	}
	return names
}

// Tools returns descriptors of every registered tool.
func (s *Service) Tools() []Descriptor {
	return s.MatchTools("*")
}

// MatchTools returns descriptors of tools whose name satisfies pattern.
func (s *Service) MatchTools(pattern string) []Descriptor {
	var ret []Descriptor
	for _, e := range s.toolEntries() {
		if matcher.Match(pattern, e.name) {
			ret = append(ret, Descriptor{Name: e.name, Description: e.description, InputSchema: e.inputSchema})
		}
	}
	return ret
}

// ToolMetadata returns description and input schema for a named tool. The
// second return value is false when the tool does not exist.
func (s *Service) ToolMetadata(name string) (string, interface{}, bool) {
	e, ok := s.toolEntryByName(name)
	if !ok {
		return "", nil, false
	}
	return e.description, e.inputSchema, true
}

// ExecuteTool invokes a tool with generic arguments and returns its output.
func (s *Service) ExecuteTool(ctx context.Context, name string, args map[string]interface{}) (interface{}, error) {
	e, ok := s.toolEntryByName(name)
	if !ok {
		return nil, fmt.Errorf("unknown tool: %v", name)
	}
	return e.execute(ctx, args)
}

func (e *toolEntry) execute(ctx context.Context, args map[string]interface{}) (interface{}, error) {
	exec, err := e.service.Method(e.method)
	if err != nil {
		return nil, err
	}
	var output interface{}
	if err := exec(ctx, args, &output); err != nil {
		return nil, err
	}
	return output, nil
}

// handler adapts the entry to an MCP tool handler. Execution errors are
// reported as error results so clients see the message.
func (e *toolEntry) handler(ctx context.Context, request *mcpschema.CallToolRequest) (*mcpschema.CallToolResult, *jsonrpc.Error) {
	res := &mcpschema.CallToolResult{}
	output, err := e.execute(ctx, request.Params.Arguments)
	if err != nil {
		res.IsError = conv.Pointer[bool](true)
		res.Content = append(res.Content, mcpschema.CallToolResultContentElem{Type: "text", Text: err.Error()})
		return res, nil
	}
	data, err := json.Marshal(output)
	if err != nil {
		return nil, jsonrpc.NewError(jsonrpc.InternalError, err.Error(), nil)
	}
	res.Content = append(res.Content, mcpschema.CallToolResultContentElem{Type: "text", Text: string(data)})
	return res, nil
}
