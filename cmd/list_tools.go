package cmd

import (
	"encoding/json"
	"fmt"
	"sort"
)

// ListToolsCmd prints the exposed map tools, optionally filtered by pattern.
type ListToolsCmd struct {
	Pattern string `short:"p" long:"pattern" description:"tool name pattern (* or prefix such as intmap-*)" default:"*"`
	Names   bool   `long:"names" description:"print tool names only"`
	JSON    bool   `long:"json" description:"print result as JSON"`
}

func (c *ListToolsCmd) Execute(_ []string) error {
	svc, err := serviceSingleton()
	if err != nil {
		return err
	}

	if c.Names && c.Pattern == "*" {
		names := svc.ToolNames()
		sort.Strings(names)
		for _, name := range names {
			fmt.Println(name)
		}
		return nil
	}

	tools := svc.MatchTools(c.Pattern)
	sort.Slice(tools, func(i, j int) bool { return tools[i].Name < tools[j].Name })
	switch {
	case c.JSON:
		data, _ := json.MarshalIndent(tools, "", "  ")
		fmt.Println(string(data))
	case c.Names:
		for _, t := range tools {
			fmt.Println(t.Name)
		}
	default:
		for _, t := range tools {
			fmt.Printf("%-24s %s\n", t.Name, t.Description)
		}
		fmt.Printf("%d tool(s)\n", len(tools))
	}
	return nil
}
