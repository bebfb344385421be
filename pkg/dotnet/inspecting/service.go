// Package inspecting answers questions about the local .NET installation
// by running the dotnet CLI and parsing what it prints.
package inspecting

import (
	"context"
	"fmt"
	"maps"

	"github.com/sirupsen/logrus"

	"github.com/conneroisu/dotnetctl/pkg/dotnet/adapters/parse"
	"github.com/conneroisu/dotnetctl/pkg/dotnet/options"
	"github.com/conneroisu/dotnetctl/pkg/dotnet/ports"
	"github.com/conneroisu/dotnetctl/pkg/dotnet/records"
	"github.com/conneroisu/dotnetctl/pkg/dotneterrs"
)

// defaultEnv keeps the CLI output free of first-run banners and in the
// language the parser expects.
var defaultEnv = map[string]string{
	"DOTNET_NOLOGO":          "1",
	"DOTNET_CLI_UI_LANGUAGE": "en",
}

// Dependencies groups all external dependencies for the inspecting service.
type Dependencies struct {
	Runner ports.Runner
	// Parser defaults to parse.Adapter.
	Parser ports.OutputParser
	// CLIPath is the dotnet executable.
	CLIPath string
	// Env is merged over defaultEnv for every invocation.
	Env    map[string]string
	Logger logrus.FieldLogger
}

// Service maps each operation to one CLI invocation and one parse.
// It keeps no state between calls and is safe for concurrent use.
type Service struct {
	runner  ports.Runner
	parser  ports.OutputParser
	cliPath string
	env     map[string]string
	logger  logrus.FieldLogger
}

// NewService creates a new inspecting service.
func NewService(deps Dependencies) *Service {
	parser := deps.Parser
	if parser == nil {
		parser = parse.NewAdapter()
	}

	env := maps.Clone(defaultEnv)
	maps.Copy(env, deps.Env)

	return &Service{
		runner:  deps.Runner,
		parser:  parser,
		cliPath: deps.CLIPath,
		env:     env,
		logger:  options.LoggerOrDiscard(deps.Logger),
	}
}

// run executes one dotnet invocation. A done ctx short-circuits before the
// runner is touched.
func (s *Service) run(ctx context.Context, op string, inv ports.Invocation) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", dotneterrs.NewCancelledError(inv.String(), err)
	}

	s.logger.WithFields(logrus.Fields{
		"operation": op,
		"command":   inv.String(),
	}).Debug("running dotnet")

	out, err := s.runner.Run(ctx, inv)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	return out, nil
}

// ListSDKs returns the installed SDKs in the order the CLI lists them.
func (s *Service) ListSDKs(ctx context.Context) ([]records.SDK, error) {
	out, err := s.run(ctx, "list sdks", s.listSDKsCommand())
	if err != nil {
		return nil, err
	}

	return s.parser.SDKs(out), nil
}

// ListRuntimes returns the installed runtimes in the order the CLI lists
// them.
func (s *Service) ListRuntimes(ctx context.Context) ([]records.Runtime, error) {
	out, err := s.run(ctx, "list runtimes", s.listRuntimesCommand())
	if err != nil {
		return nil, err
	}

	return s.parser.Runtimes(out), nil
}

// EnvironmentInfo returns the summary of `dotnet --info`. Fields the
// output does not contain are records.Unknown.
func (s *Service) EnvironmentInfo(ctx context.Context) (records.EnvironmentInfo, error) {
	out, err := s.run(ctx, "environment info", s.infoCommand())
	if err != nil {
		return records.EnvironmentInfo{}, err
	}

	return s.parser.EnvironmentInfo(out), nil
}

// EffectiveSDKVersion returns the SDK version the CLI selects in dir,
// honoring any global.json there or above. An empty dir means the current
// directory. Resolution is left entirely to the CLI.
func (s *Service) EffectiveSDKVersion(ctx context.Context, dir string) (string, error) {
	out, err := s.run(ctx, "effective sdk version", s.versionCommand(dir))
	if err != nil {
		return "", err
	}

	return s.parser.Version(out), nil
}
