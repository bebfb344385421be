// Package mcp exposes the inspecting operations as an MCP server over
// stdio, built on the official MCP Go SDK.
package mcp

import (
	"context"
	"fmt"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/sirupsen/logrus"

	"github.com/conneroisu/dotnetctl/pkg/dotnet/options"
	"github.com/conneroisu/dotnetctl/pkg/dotnet/ports"
	"github.com/conneroisu/dotnetctl/pkg/dotnet/tooling"
)

// DefaultName is the implementation name announced to clients.
const DefaultName = "dotnetctl"

// Config configures the server.
type Config struct {
	// Name defaults to DefaultName.
	Name    string
	Version string
	Logger  logrus.FieldLogger
}

// NewServer creates an MCP server with one tool per inspecting operation.
// Tool failures are reported to the client as error results carrying the
// error text, including exit code and stderr for failed commands.
func NewServer(insp ports.Inspector, cfg Config) *mcpsdk.Server {
	name := cfg.Name
	if name == "" {
		name = DefaultName
	}
	h := &handlers{
		insp:   insp,
		logger: options.LoggerOrDiscard(cfg.Logger),
	}

	server := mcpsdk.NewServer(&mcpsdk.Implementation{
		Name:    name,
		Version: cfg.Version,
	}, nil)

	mcpsdk.AddTool(server, tool(tooling.ToolListSDKs), h.listSDKs)
	mcpsdk.AddTool(server, tool(tooling.ToolListRuntimes), h.listRuntimes)
	mcpsdk.AddTool(server, tool(tooling.ToolEnvironmentInfo), h.environmentInfo)
	mcpsdk.AddTool(server, tool(tooling.ToolEffectiveSDKVersion), h.effectiveSDKVersion)
	mcpsdk.AddTool(server, tool(tooling.ToolCheckSDKInstalled), h.checkSDKInstalled)
	mcpsdk.AddTool(server, tool(tooling.ToolLatestSDK), h.latestSDK)

	return server
}

// Serve runs server over stdin/stdout until ctx is done or the client
// disconnects. Nothing else may write to stdout meanwhile.
func Serve(ctx context.Context, server *mcpsdk.Server) error {
	if err := server.Run(ctx, &mcpsdk.StdioTransport{}); err != nil {
		return fmt.Errorf("mcp server: %w", err)
	}

	return nil
}

func tool(name string) *mcpsdk.Tool {
	return &mcpsdk.Tool{
		Name:        name,
		Description: tooling.Descriptions[name],
	}
}
