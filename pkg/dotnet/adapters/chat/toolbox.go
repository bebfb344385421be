// Package chat adapts the inspecting operations to LLM tool calling.
//
// Tools are registered on an in-process MCP server and dispatched as raw
// JSON-RPC messages, so the definitions a model sees and the handlers that
// run are the same ones an MCP client would get.
package chat

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/sirupsen/logrus"

	"github.com/conneroisu/dotnetctl/pkg/dotnet/options"
	"github.com/conneroisu/dotnetctl/pkg/dotnet/ports"
	"github.com/conneroisu/dotnetctl/pkg/dotnet/tooling"
	"github.com/conneroisu/dotnetctl/pkg/dotneterrs"
)

const (
	toolboxName    = "dotnetctl-chat"
	toolboxVersion = "1.0.0"
)

// Toolbox owns the tool definitions offered to a model and executes the
// calls it makes.
type Toolbox struct {
	server *server.MCPServer
	tools  []mcp.Tool
	known  map[string]struct{}
	logger logrus.FieldLogger
}

// NewToolbox registers one tool per inspecting operation.
func NewToolbox(insp ports.Inspector, logger logrus.FieldLogger) *Toolbox {
	tb := &Toolbox{
		server: server.NewMCPServer(
			toolboxName,
			toolboxVersion,
			server.WithToolCapabilities(false),
		),
		known:  make(map[string]struct{}),
		logger: options.LoggerOrDiscard(logger),
	}

	for _, def := range definitions(insp) {
		tb.server.AddTool(def.tool, def.handler)
		tb.tools = append(tb.tools, def.tool)
		tb.known[def.tool.Name] = struct{}{}
	}
	tb.initialize()

	return tb
}

// Tools returns the tool definitions, including their input schemas.
func (tb *Toolbox) Tools() []mcp.Tool {
	tools := make([]mcp.Tool, len(tb.tools))
	copy(tools, tb.tools)

	return tools
}

// Call runs the named tool with JSON-encoded arguments and returns the
// text the model should see. Tool failures are returned as a JSON
// {"error": "..."} string with a nil error so the model can react to
// them. Unknown tools and malformed arguments are Go errors.
func (tb *Toolbox) Call(ctx context.Context, name, argsJSON string) (string, error) {
	if _, ok := tb.known[name]; !ok {
		return "", dotneterrs.NewProtocolError(
			dotneterrs.ErrCodeUnknownTool,
			fmt.Sprintf("unknown tool %q", name),
			nil,
		)
	}

	args := map[string]any{}
	if s := strings.TrimSpace(argsJSON); s != "" {
		if err := json.Unmarshal([]byte(s), &args); err != nil {
			return "", dotneterrs.NewProtocolError(
				dotneterrs.ErrCodeMessageParseFailed,
				fmt.Sprintf("arguments for %s are not a JSON object", name),
				err,
			)
		}
	}

	raw, err := json.Marshal(rpcRequest{
		JSONRPC: mcp.JSONRPC_VERSION,
		ID:      uuid.NewString(),
		Method:  string(mcp.MethodToolsCall),
		Params:  callParams{Name: name, Arguments: args},
	})
	if err != nil {
		return "", fmt.Errorf("encode %s call: %w", name, err)
	}

	tb.logger.WithField("tool", name).Debug("dispatching tool call")
	result, err := tb.dispatch(ctx, raw)
	if err != nil {
		return "", fmt.Errorf("%s: %w", name, err)
	}

	text := result.text()
	if result.IsError {
		tb.logger.WithField("tool", name).Warn("tool call failed")

		return errorEnvelope(text), nil
	}

	return text, nil
}

// initialize performs the MCP handshake so the server treats later
// requests as coming from an initialized client. It is independent of any
// caller's context.
func (tb *Toolbox) initialize() {
	raw, err := json.Marshal(rpcRequest{
		JSONRPC: mcp.JSONRPC_VERSION,
		ID:      uuid.NewString(),
		Method:  string(mcp.MethodInitialize),
		Params: map[string]any{
			"protocolVersion": mcp.LATEST_PROTOCOL_VERSION,
			"capabilities":    map[string]any{},
			"clientInfo": map[string]any{
				"name":    toolboxName,
				"version": toolboxVersion,
			},
		},
	})
	if err != nil {
		return
	}
	if _, err := tb.dispatch(context.Background(), raw); err != nil {
		tb.logger.WithError(err).Warn("toolbox initialize failed")
	}
}

func (tb *Toolbox) dispatch(ctx context.Context, raw []byte) (*toolResult, error) {
	resp := tb.server.HandleMessage(ctx, raw)
	if resp == nil {
		return nil, dotneterrs.NewProtocolError(
			dotneterrs.ErrCodeMessageParseFailed,
			"no response from tool server",
			nil,
		)
	}

	encoded, err := json.Marshal(resp)
	if err != nil {
		return nil, fmt.Errorf("encode response: %w", err)
	}

	var msg rpcResponse
	if err := json.Unmarshal(encoded, &msg); err != nil {
		return nil, dotneterrs.NewProtocolError(
			dotneterrs.ErrCodeMessageParseFailed,
			"malformed tool server response",
			err,
		)
	}
	if msg.Error != nil {
		return nil, dotneterrs.NewProtocolError(
			dotneterrs.ErrCodeMessageParseFailed,
			fmt.Sprintf("tool server error %d: %s", msg.Error.Code, msg.Error.Message),
			nil,
		)
	}

	return &msg.Result, nil
}

func errorEnvelope(msg string) string {
	out, err := json.Marshal(tooling.ErrorEnvelope{Error: msg})
	if err != nil {
		return `{"error":"tool failed"}`
	}

	return string(out)
}
