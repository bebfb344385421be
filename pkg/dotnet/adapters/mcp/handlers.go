package mcp

import (
	"context"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/sirupsen/logrus"

	"github.com/conneroisu/dotnetctl/pkg/dotnet/ports"
	"github.com/conneroisu/dotnetctl/pkg/dotnet/records"
	"github.com/conneroisu/dotnetctl/pkg/dotnet/tooling"
)

// handlers adapts tooling calls to typed MCP tool handlers. Returning an
// error makes the SDK send an error result instead of a protocol error.
type handlers struct {
	insp   ports.Inspector
	logger logrus.FieldLogger
}

func (h *handlers) logged(name string, err error) error {
	if err != nil {
		h.logger.WithError(err).WithField("tool", name).Warn("tool call failed")
	}

	return err
}

func (h *handlers) listSDKs(
	ctx context.Context,
	_ *mcpsdk.CallToolRequest,
	_ tooling.NoArgs,
) (*mcpsdk.CallToolResult, tooling.SDKList, error) {
	out, err := tooling.ListSDKs(ctx, h.insp)

	return nil, out, h.logged(tooling.ToolListSDKs, err)
}

func (h *handlers) listRuntimes(
	ctx context.Context,
	_ *mcpsdk.CallToolRequest,
	args tooling.RuntimesArgs,
) (*mcpsdk.CallToolResult, tooling.RuntimeList, error) {
	out, err := tooling.ListRuntimes(ctx, h.insp, args)

	return nil, out, h.logged(tooling.ToolListRuntimes, err)
}

func (h *handlers) environmentInfo(
	ctx context.Context,
	_ *mcpsdk.CallToolRequest,
	_ tooling.NoArgs,
) (*mcpsdk.CallToolResult, records.EnvironmentInfo, error) {
	out, err := tooling.EnvironmentInfo(ctx, h.insp)

	return nil, out, h.logged(tooling.ToolEnvironmentInfo, err)
}

func (h *handlers) effectiveSDKVersion(
	ctx context.Context,
	_ *mcpsdk.CallToolRequest,
	args tooling.VersionArgs,
) (*mcpsdk.CallToolResult, tooling.VersionResult, error) {
	out, err := tooling.EffectiveSDKVersion(ctx, h.insp, args)

	return nil, out, h.logged(tooling.ToolEffectiveSDKVersion, err)
}

func (h *handlers) checkSDKInstalled(
	ctx context.Context,
	_ *mcpsdk.CallToolRequest,
	args tooling.CheckArgs,
) (*mcpsdk.CallToolResult, tooling.CheckResult, error) {
	out, err := tooling.CheckSDKInstalled(ctx, h.insp, args)

	return nil, out, h.logged(tooling.ToolCheckSDKInstalled, err)
}

func (h *handlers) latestSDK(
	ctx context.Context,
	_ *mcpsdk.CallToolRequest,
	args tooling.LatestArgs,
) (*mcpsdk.CallToolResult, tooling.LatestResult, error) {
	out, err := tooling.LatestSDK(ctx, h.insp, args)

	return nil, out, h.logged(tooling.ToolLatestSDK, err)
}
