package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/viant/intmap/mcp"
	"github.com/viant/intmap/mcp/tool"
)

// ToolCmd prints the description and input schema of one tool. Service
// style references (intmap/probe, intmap.probe) resolve to intmap-probe.
type ToolCmd struct {
	Name string `short:"n" long:"name" description:"tool name (intmap-create or intmap/create)" positional-arg-name:"name" required:"yes"`
	JSON bool   `long:"json" description:"print result as JSON"`
}

func (c *ToolCmd) Execute(_ []string) error {
	svc, err := serviceSingleton()
	if err != nil {
		return err
	}

	description, schema, ok := svc.ToolMetadata(c.Name)
	if !ok {
		return fmt.Errorf("tool %q not found, see list-tools", c.Name)
	}
	name := tool.Name(tool.Canonical(c.Name))
	found := &mcp.Descriptor{Name: name.String(), Description: description, InputSchema: schema}

	if c.JSON {
		data, _ := json.MarshalIndent(found, "", "  ")
		fmt.Println(string(data))
		return nil
	}
	fmt.Printf("Name    : %s\n", found.Name)
	fmt.Printf("Service : %s\n", name.Service())
	fmt.Printf("Method  : %s\n", name.Method())
	fmt.Printf("Desc    : %s\n", found.Description)
	js, _ := json.MarshalIndent(found.InputSchema, "", "  ")
	fmt.Printf("InputSchema:\n%s\n", string(js))
	return nil
}
