package cmd

// Options is the root for the CLI. Struct tags are interpreted by
// github.com/jessevdk/go-flags.
type Options struct {
	Config string `short:"f" long:"config" description:"service configuration YAML/JSON path or URL"`

	Probe       *ProbeCmd       `command:"probe"        description:"Build a map from keys and probe it"`
	Stats       *StatsCmd       `command:"stats"        description:"Build a map from keys and describe it"`
	AddClient   *AddClientCmd   `command:"add-client"   description:"Import tools of a remote intmap server"`
	ListTools   *ListToolsCmd   `command:"list-tools"   description:"List all registered tools"`
	ListActions *ListActionsCmd `command:"list-actions" description:"List action services and their methods"`
	Action      *ActionCmd      `command:"action"       description:"Show detailed info about one action"`
	Tool        *ToolCmd        `command:"tool"         description:"Show detailed info about one MCP tool"`
	Exec        *ExecCmd        `command:"exec"         description:"Execute a tool"`
	Serve       *ServeCmd       `command:"serve"        description:"Start MCP server exposing the map tools"`
}

// Init instantiates the sub-command referenced by the first positional argument
// so that go-flags can populate its fields.
func (o *Options) Init(firstArg string) {
	switch firstArg {
	case "probe":
		o.Probe = &ProbeCmd{}
	case "stats":
		o.Stats = &StatsCmd{}
	case "add-client":
		o.AddClient = &AddClientCmd{}
	case "list-tools":
		o.ListTools = &ListToolsCmd{}
	case "list-actions":
		o.ListActions = &ListActionsCmd{}
	case "action":
		o.Action = &ActionCmd{}
	case "tool":
		o.Tool = &ToolCmd{}
	case "exec":
		o.Exec = &ExecCmd{}
	case "serve":
		o.Serve = &ServeCmd{}
	}
}
