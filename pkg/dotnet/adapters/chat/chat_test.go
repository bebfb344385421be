package chat_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"

	"github.com/conneroisu/dotnetctl/pkg/dotnet/adapters/chat"
	"github.com/conneroisu/dotnetctl/pkg/dotnet/inspecting"
	"github.com/conneroisu/dotnetctl/pkg/dotnet/internal/testutil"
	"github.com/conneroisu/dotnetctl/pkg/dotnet/tooling"
	"github.com/conneroisu/dotnetctl/pkg/dotneterrs"
)

func newToolbox(runner *testutil.FakeRunner) *chat.Toolbox {
	insp := inspecting.NewService(inspecting.Dependencies{Runner: runner, CLIPath: "dotnet"})

	return chat.NewToolbox(insp, nil)
}

func defaultRunner() *testutil.FakeRunner {
	return testutil.NewFakeRunner().
		Respond(inspecting.FlagListSDKs, "8.0.404 [/sdk]\n9.0.302 [/sdk]\n").
		Respond(inspecting.FlagListRuntimes, testutil.RuntimeListOutput)
}

func TestToolboxTools(t *testing.T) {
	tb := newToolbox(defaultRunner())

	tools := tb.Tools()
	assert.Equal(t, len(tools), len(tooling.Names))
	for i, tool := range tools {
		assert.Equal(t, tool.Name, tooling.Names[i])
		assert.Equal(t, tool.Description, tooling.Descriptions[tool.Name])
	}

	check := tools[4]
	assert.Equal(t, check.Name, tooling.ToolCheckSDKInstalled)
	assert.Check(t, is.Contains(check.InputSchema.Required, "version"))
}

func TestToolboxCall(t *testing.T) {
	ctx := context.Background()
	tb := newToolbox(defaultRunner())

	out, err := tb.Call(ctx, tooling.ToolCheckSDKInstalled, `{"version":"9.0.302"}`)
	assert.NilError(t, err)

	var res tooling.CheckResult
	assert.NilError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, res, tooling.CheckResult{Version: "9.0.302", Installed: true})

	out, err = tb.Call(ctx, tooling.ToolListRuntimes, `{"name":"Microsoft.AspNetCore.App"}`)
	assert.NilError(t, err)

	var runtimes tooling.RuntimeList
	assert.NilError(t, json.Unmarshal([]byte(out), &runtimes))
	assert.Assert(t, len(runtimes.Runtimes) > 0)
	for _, rt := range runtimes.Runtimes {
		assert.Equal(t, rt.Name, "Microsoft.AspNetCore.App")
	}
}

func TestToolboxCallEmptyArguments(t *testing.T) {
	tb := newToolbox(defaultRunner())

	out, err := tb.Call(context.Background(), tooling.ToolListSDKs, "")
	assert.NilError(t, err)

	var sdks tooling.SDKList
	assert.NilError(t, json.Unmarshal([]byte(out), &sdks))
	assert.Equal(t, len(sdks.SDKs), 2)
}

func TestToolboxCallFailures(t *testing.T) {
	ctx := context.Background()
	failure := dotneterrs.NewCommandFailedError("dotnet --info", 1, "boom", nil)
	tb := newToolbox(defaultRunner().Fail(inspecting.FlagInfo, failure))

	t.Run("tool error becomes envelope", func(t *testing.T) {
		out, err := tb.Call(ctx, tooling.ToolEnvironmentInfo, "{}")
		assert.NilError(t, err)

		var env tooling.ErrorEnvelope
		assert.NilError(t, json.Unmarshal([]byte(out), &env))
		assert.Check(t, is.Contains(env.Error, "boom"))
	})

	t.Run("unknown tool", func(t *testing.T) {
		_, err := tb.Call(ctx, "rm_rf", "{}")
		assert.Assert(t, dotneterrs.IsProtocolError(err))
	})

	t.Run("malformed arguments", func(t *testing.T) {
		_, err := tb.Call(ctx, tooling.ToolListSDKs, "{not json")
		assert.Assert(t, dotneterrs.IsProtocolError(err))
	})
}

func TestToolboxFirstCallWithCancelledContext(t *testing.T) {
	logger, hook := logtest.NewNullLogger()
	insp := inspecting.NewService(inspecting.Dependencies{Runner: defaultRunner(), CLIPath: "dotnet"})
	tb := chat.NewToolbox(insp, logger)
	for _, entry := range hook.AllEntries() {
		assert.Assert(t, entry.Message != "toolbox initialize failed")
	}

	cancelled, cancel := context.WithCancel(context.Background())
	cancel()
	out, err := tb.Call(cancelled, tooling.ToolListSDKs, "{}")
	if err == nil {
		assert.Check(t, is.Contains(out, `"error"`))
	}

	out, err = tb.Call(context.Background(), tooling.ToolListSDKs, "{}")
	assert.NilError(t, err)

	var sdks tooling.SDKList
	assert.NilError(t, json.Unmarshal([]byte(out), &sdks))
	assert.Equal(t, len(sdks.SDKs), 2)
}

// scriptedModel replays canned replies and records what it was shown.
type scriptedModel struct {
	replies []chat.Reply
	seen    [][]chat.Message
	err     error
}

func (m *scriptedModel) Complete(_ context.Context, history []chat.Message, _ []mcp.Tool) (chat.Reply, error) {
	m.seen = append(m.seen, history)
	if m.err != nil {
		return chat.Reply{}, m.err
	}
	if len(m.replies) == 0 {
		return chat.Reply{Content: "done"}, nil
	}
	reply := m.replies[0]
	m.replies = m.replies[1:]

	return reply, nil
}

func TestSessionSendRunsTools(t *testing.T) {
	model := &scriptedModel{replies: []chat.Reply{
		{ToolCalls: []chat.ToolCall{{
			ID:        "call-1",
			Name:      tooling.ToolLatestSDK,
			Arguments: `{"semantic":true}`,
		}}},
		{Content: "Your newest SDK is 9.0.302."},
	}}
	s := chat.NewSession(model, newToolbox(defaultRunner()), chat.SessionConfig{})

	reply, err := s.Send(context.Background(), "what is my newest sdk?")
	assert.NilError(t, err)
	assert.Equal(t, reply, "Your newest SDK is 9.0.302.")

	history := s.History()
	assert.Equal(t, history[0].Role, chat.RoleSystem)
	assert.Equal(t, history[0].Content, chat.DefaultSystemPrompt)
	assert.Equal(t, history[1].Role, chat.RoleUser)

	tool := history[3]
	assert.Equal(t, tool.Role, chat.RoleTool)
	assert.Equal(t, tool.ToolCallID, "call-1")
	assert.Check(t, is.Contains(tool.Content, `"9.0.302"`))
	assert.Equal(t, len(model.seen), 2)
}

func TestSessionUnknownToolReportedToModel(t *testing.T) {
	model := &scriptedModel{replies: []chat.Reply{
		{ToolCalls: []chat.ToolCall{{ID: "c", Name: "nope"}}},
	}}
	s := chat.NewSession(model, newToolbox(defaultRunner()), chat.SessionConfig{})

	reply, err := s.Send(context.Background(), "hi")
	assert.NilError(t, err)
	assert.Equal(t, reply, "done")

	history := s.History()
	assert.Check(t, is.Contains(history[3].Content, `"error"`))
}

func TestSessionToolRoundLimit(t *testing.T) {
	loop := chat.Reply{ToolCalls: []chat.ToolCall{{ID: "c", Name: tooling.ToolListSDKs}}}
	replies := make([]chat.Reply, 10)
	for i := range replies {
		replies[i] = loop
	}
	model := &scriptedModel{replies: replies}
	s := chat.NewSession(model, newToolbox(defaultRunner()), chat.SessionConfig{MaxToolRounds: 2})

	_, err := s.Send(context.Background(), "loop")
	assert.Assert(t, errors.Is(err, chat.ErrToolRoundsExceeded))
	assert.Equal(t, len(model.seen), 3)
}

func TestSessionRun(t *testing.T) {
	model := &scriptedModel{replies: []chat.Reply{{Content: "hello there"}}}
	s := chat.NewSession(model, newToolbox(defaultRunner()), chat.SessionConfig{})

	var out bytes.Buffer
	in := strings.NewReader("hi\n\nquit\nnever read\n")
	assert.NilError(t, s.Run(context.Background(), in, &out))

	assert.Check(t, is.Contains(out.String(), "hello there"))
	assert.Equal(t, len(model.seen), 1)
}

func TestSessionRunReportsModelErrors(t *testing.T) {
	model := &scriptedModel{err: errors.New("rate limited")}
	s := chat.NewSession(model, newToolbox(defaultRunner()), chat.SessionConfig{})

	var out bytes.Buffer
	assert.NilError(t, s.Run(context.Background(), strings.NewReader("hi\n"), &out))
	assert.Check(t, is.Contains(out.String(), "error: model completion: rate limited"))
}
