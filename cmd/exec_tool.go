package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	mcpctx "github.com/viant/intmap/mcp/context"
	"github.com/viant/intmap/mcp/tool"
	mcp "github.com/viant/mcp"
)

// ExecCmd executes a registered tool from the CLI. Arguments can be supplied
// either inline via -i/--input or loaded from a JSON file via --file. With
// --address the tool runs on a remote intmap server.
type ExecCmd struct {
	Name       string `short:"n" long:"name" positional-arg-name:"tool" description:"Tool name (intmap-probe or intmap/probe)" required:"yes"`
	Inline     string `short:"i" long:"input" description:"Inline JSON arguments (object)"`
	File       string `long:"file" description:"Path to JSON file with arguments (use - for stdin)"`
	Address    string `short:"a" long:"address" description:"HTTP address of a remote intmap MCP server"`
	Token      string `long:"token" description:"Bearer token for the remote server"`
	TimeoutSec int    `long:"timeout" description:"Seconds to wait for completion" default:"120"`
	JSON       bool   `long:"json" description:"Print result as JSON"`
}

const remoteName = "remote"

func (c *ExecCmd) Execute(_ []string) error {
	if c.Inline != "" && c.File != "" {
		return fmt.Errorf("-i/--input and --file are mutually exclusive")
	}
	args, err := c.arguments()
	if err != nil {
		return err
	}

	svc, err := serviceSingleton()
	if err != nil {
		return err
	}

	timeout := time.Duration(c.TimeoutSec) * time.Second
	if timeout == 0 {
		timeout = 120 * time.Second
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	name := c.Name
	if c.Address != "" {
		ctx = mcpctx.WithAuthToken(ctx, c.Token)
		options := &mcp.ClientOptions{
			Name: remoteName,
			Transport: mcp.ClientTransport{
				Type:                "sse",
				ClientTransportHTTP: mcp.ClientTransportHTTP{URL: c.Address},
			},
		}
		if _, err := svc.RegisterRemote(ctx, options); err != nil {
			return err
		}
		name = tool.NewName(remoteName, tool.Canonical(c.Name)).String()
	}

	out, err := svc.ExecuteTool(ctx, name, args)
	if err != nil {
		return err
	}

	if c.JSON {
		bytes, _ := json.MarshalIndent(out, "", "  ")
		fmt.Println(string(bytes))
		return nil
	}
	switch v := out.(type) {
	case string:
		fmt.Println(v)
	default:
		bytes, _ := json.Marshal(v)
		fmt.Println(string(bytes))
	}
	return nil
}

// arguments decodes the inline or file supplied JSON arguments.
func (c *ExecCmd) arguments() (map[string]interface{}, error) {
	var args map[string]interface{}
	switch {
	case c.Inline != "":
		if err := json.Unmarshal([]byte(c.Inline), &args); err != nil {
			return nil, fmt.Errorf("invalid inline JSON: %w", err)
		}
	case c.File != "":
		var rdr io.Reader
		if c.File == "-" {
			rdr = os.Stdin
		} else {
			f, err := os.Open(c.File)
			if err != nil {
				return nil, fmt.Errorf("open input file: %w", err)
			}
			defer f.Close()
			rdr = f
		}
		data, err := io.ReadAll(rdr)
		if err != nil {
			return nil, fmt.Errorf("read input: %w", err)
		}
		if err := json.Unmarshal(data, &args); err != nil {
			return nil, fmt.Errorf("decode JSON: %w", err)
		}
	}
	return args, nil
}
