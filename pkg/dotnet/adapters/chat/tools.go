package chat

import (
	"context"
	"encoding/json"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/conneroisu/dotnetctl/pkg/dotnet/ports"
	"github.com/conneroisu/dotnetctl/pkg/dotnet/tooling"
)

type definition struct {
	tool    mcp.Tool
	handler server.ToolHandlerFunc
}

func definitions(insp ports.Inspector) []definition {
	describe := func(name string) mcp.ToolOption {
		return mcp.WithDescription(tooling.Descriptions[name])
	}

	return []definition{
		{
			tool: mcp.NewTool(tooling.ToolListSDKs, describe(tooling.ToolListSDKs)),
			handler: func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
				return respond(tooling.ListSDKs(ctx, insp))
			},
		},
		{
			tool: mcp.NewTool(tooling.ToolListRuntimes,
				describe(tooling.ToolListRuntimes),
				mcp.WithString("name", mcp.Description(tooling.DescRuntimeName)),
			),
			handler: func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
				return respond(tooling.ListRuntimes(ctx, insp, tooling.RuntimesArgs{
					Name: req.GetString("name", ""),
				}))
			},
		},
		{
			tool: mcp.NewTool(tooling.ToolEnvironmentInfo, describe(tooling.ToolEnvironmentInfo)),
			handler: func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
				return respond(tooling.EnvironmentInfo(ctx, insp))
			},
		},
		{
			tool: mcp.NewTool(tooling.ToolEffectiveSDKVersion,
				describe(tooling.ToolEffectiveSDKVersion),
				mcp.WithString("working_directory", mcp.Description(tooling.DescWorkingDirectory)),
			),
			handler: func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
				return respond(tooling.EffectiveSDKVersion(ctx, insp, tooling.VersionArgs{
					WorkingDirectory: req.GetString("working_directory", ""),
				}))
			},
		},
		{
			tool: mcp.NewTool(tooling.ToolCheckSDKInstalled,
				describe(tooling.ToolCheckSDKInstalled),
				mcp.WithString("version", mcp.Description(tooling.DescVersion), mcp.Required()),
			),
			handler: func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
				return respond(tooling.CheckSDKInstalled(ctx, insp, tooling.CheckArgs{
					Version: req.GetString("version", ""),
				}))
			},
		},
		{
			tool: mcp.NewTool(tooling.ToolLatestSDK,
				describe(tooling.ToolLatestSDK),
				mcp.WithBoolean("semantic", mcp.Description(tooling.DescSemantic)),
			),
			handler: func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
				return respond(tooling.LatestSDK(ctx, insp, tooling.LatestArgs{
					Semantic: req.GetBool("semantic", false),
				}))
			},
		},
	}
}

// respond turns an operation result into a text tool result. Operation
// errors become error results rather than JSON-RPC errors.
func respond(out any, err error) (*mcp.CallToolResult, error) {
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	data, err := json.Marshal(out)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(string(data)), nil
}
