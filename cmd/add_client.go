package cmd

import (
	"context"
	"fmt"

	mcp "github.com/viant/mcp"
)

// AddClientCmd imports the tools exposed by a remote intmap server and
// re-registers them locally under the given name.
type AddClientCmd struct {
	Name    string `short:"n" long:"name"    description:"Identifier for the remote endpoint"`
	Address string `short:"a" long:"address" description:"HTTP address of the remote MCP server"`
	Version string `short:"v" long:"version" description:"Expected protocol version (optional)"`
}

func (c *AddClientCmd) Execute(_ []string) error {
	if c.Name == "" || c.Address == "" {
		return fmt.Errorf("both --name and --address are required")
	}

	svc, err := serviceSingleton()
	if err != nil {
		return err
	}

	opts := &mcp.ClientOptions{
		Name:    c.Name,
		Version: c.Version,
		Transport: mcp.ClientTransport{
			Type:                "sse",
			ClientTransportHTTP: mcp.ClientTransportHTTP{URL: c.Address},
		},
	}
	proxy, err := svc.RegisterRemote(context.Background(), opts)
	if err != nil {
		return err
	}
	for _, sig := range proxy.Methods() {
		fmt.Printf("%s-%s\t%s\n", proxy.Name(), sig.Name, sig.Description)
	}
	fmt.Printf("imported tools from %s (%s)\n", c.Name, c.Address)
	return nil
}
