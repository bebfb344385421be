package chat

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/sirupsen/logrus"

	"github.com/conneroisu/dotnetctl/pkg/dotnet/options"
)

// DefaultMaxToolRounds bounds how many times one user turn may go back to
// the model with tool results.
const DefaultMaxToolRounds = 8

// DefaultSystemPrompt primes the model for the available tools.
const DefaultSystemPrompt = "You help developers inspect their local .NET installation. " +
	"Use the provided tools to answer questions about installed SDKs, runtimes " +
	"and environment details. Report tool errors plainly."

// ErrToolRoundsExceeded is returned when the model keeps requesting tools
// past the round limit.
var ErrToolRoundsExceeded = errors.New("chat: tool round limit exceeded")

// Role identifies the author of a message.
type Role string

// Message roles.
const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
	RoleTool      Role = "tool"
)

// ToolCall is a model request to run one tool.
type ToolCall struct {
	ID        string
	Name      string
	Arguments string
}

// Message is one entry of the conversation history.
type Message struct {
	Role    Role
	Content string
	// ToolCalls is set on assistant messages that request tools.
	ToolCalls []ToolCall
	// ToolCallID links a tool message to the call it answers.
	ToolCallID string
}

// Reply is a single model completion.
type Reply struct {
	Content   string
	ToolCalls []ToolCall
}

// Model is the LLM behind the session.
type Model interface {
	Complete(ctx context.Context, history []Message, tools []mcp.Tool) (Reply, error)
}

// SessionConfig configures a Session.
type SessionConfig struct {
	SystemPrompt  string
	MaxToolRounds int
	Logger        logrus.FieldLogger
}

// Session is a multi-turn conversation. It is not safe for concurrent use.
type Session struct {
	model     Model
	toolbox   *Toolbox
	history   []Message
	maxRounds int
	logger    logrus.FieldLogger
}

// NewSession starts a conversation seeded with the system prompt.
func NewSession(model Model, toolbox *Toolbox, cfg SessionConfig) *Session {
	prompt := cfg.SystemPrompt
	if prompt == "" {
		prompt = DefaultSystemPrompt
	}
	rounds := cfg.MaxToolRounds
	if rounds <= 0 {
		rounds = DefaultMaxToolRounds
	}

	return &Session{
		model:     model,
		toolbox:   toolbox,
		history:   []Message{{Role: RoleSystem, Content: prompt}},
		maxRounds: rounds,
		logger:    options.LoggerOrDiscard(cfg.Logger),
	}
}

// History returns a copy of the conversation so far.
func (s *Session) History() []Message {
	out := make([]Message, len(s.history))
	copy(out, s.history)

	return out
}

// Send adds a user message and returns the assistant's final text after
// any tool calls it makes.
func (s *Session) Send(ctx context.Context, text string) (string, error) {
	s.history = append(s.history, Message{Role: RoleUser, Content: text})
	tools := s.toolbox.Tools()

	for round := 0; ; round++ {
		reply, err := s.model.Complete(ctx, s.History(), tools)
		if err != nil {
			return "", fmt.Errorf("model completion: %w", err)
		}
		s.history = append(s.history, Message{
			Role:      RoleAssistant,
			Content:   reply.Content,
			ToolCalls: reply.ToolCalls,
		})

		if len(reply.ToolCalls) == 0 {
			return reply.Content, nil
		}
		if round >= s.maxRounds {
			return reply.Content, ErrToolRoundsExceeded
		}

		for _, call := range reply.ToolCalls {
			s.history = append(s.history, Message{
				Role:       RoleTool,
				Content:    s.runTool(ctx, call),
				ToolCallID: call.ID,
			})
		}
	}
}

// runTool executes a call. Every failure is reported to the model as an
// error envelope.
func (s *Session) runTool(ctx context.Context, call ToolCall) string {
	log := s.logger.WithField("tool", call.Name)
	out, err := s.toolbox.Call(ctx, call.Name, call.Arguments)
	if err != nil {
		log.WithError(err).Warn("tool call rejected")

		return errorEnvelope(err.Error())
	}
	log.Debug("tool call completed")

	return out
}

// Run reads user lines from in and writes replies to out until EOF, an
// "exit" or "quit" line, or ctx is done. Model failures are written to
// out and the loop continues.
func (s *Session) Run(ctx context.Context, in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)
	for {
		if _, err := fmt.Fprint(out, "> "); err != nil {
			return err
		}
		if !scanner.Scan() {
			return scanner.Err()
		}

		line := strings.TrimSpace(scanner.Text())
		switch strings.ToLower(line) {
		case "":
			continue
		case "exit", "quit":
			return nil
		}

		reply, err := s.Send(ctx, line)
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if err != nil {
			s.logger.WithError(err).Warn("chat turn failed")
			if _, werr := fmt.Fprintf(out, "error: %v\n", err); werr != nil {
				return werr
			}

			continue
		}
		if _, err := fmt.Fprintln(out, reply); err != nil {
			return err
		}
	}
}
