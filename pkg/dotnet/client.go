package dotnet

import (
	"context"

	"github.com/conneroisu/dotnetctl/pkg/dotnet/adapters/cli"
	"github.com/conneroisu/dotnetctl/pkg/dotnet/inspecting"
	"github.com/conneroisu/dotnetctl/pkg/dotnet/options"
	"github.com/conneroisu/dotnetctl/pkg/dotnet/records"
)

// Public type aliases for convenience.
type (
	SDK             = records.SDK
	Runtime         = records.Runtime
	EnvironmentInfo = records.EnvironmentInfo
	Options         = options.Options
)

// Unknown is the value of EnvironmentInfo fields that could not be parsed.
const Unknown = records.Unknown

// Client provides the main interface for inspecting the .NET installation.
// This facade wires the process runner to the inspecting service.
type Client struct {
	service *inspecting.Service
	cliPath string
}

// NewClient creates a client. A nil opts uses discovery and no logging.
func NewClient(opts *options.Options) (*Client, error) {
	if opts == nil {
		opts = &options.Options{}
	}

	custom := ""
	if opts.CLIPath != nil {
		custom = *opts.CLIPath
	}
	cliPath := cli.ResolveCLI(custom)

	service := inspecting.NewService(inspecting.Dependencies{
		Runner:  cli.NewRunner(opts),
		CLIPath: cliPath,
		Env:     opts.Env,
		Logger:  opts.Logger,
	})

	return &Client{
		service: service,
		cliPath: cliPath,
	}, nil
}

// Service returns the underlying inspecting service, for adapters.
func (c *Client) Service() *inspecting.Service {
	return c.service
}

// CLIPath returns the dotnet executable the client runs.
func (c *Client) CLIPath() string {
	return c.cliPath
}

// ListSDKs runs `dotnet --list-sdks`.
func (c *Client) ListSDKs(ctx context.Context) ([]SDK, error) {
	return c.service.ListSDKs(ctx)
}

// ListRuntimes runs `dotnet --list-runtimes`.
func (c *Client) ListRuntimes(ctx context.Context) ([]Runtime, error) {
	return c.service.ListRuntimes(ctx)
}

// EnvironmentInfo runs `dotnet --info`.
func (c *Client) EnvironmentInfo(ctx context.Context) (EnvironmentInfo, error) {
	return c.service.EnvironmentInfo(ctx)
}

// EffectiveSDKVersion runs `dotnet --version` in dir.
func (c *Client) EffectiveSDKVersion(ctx context.Context, dir string) (string, error) {
	return c.service.EffectiveSDKVersion(ctx, dir)
}

// IsSDKInstalled reports whether exactly this SDK version is installed.
func (c *Client) IsSDKInstalled(ctx context.Context, version string) (bool, error) {
	return c.service.IsSDKInstalled(ctx, version)
}

// LatestSDK returns the greatest SDK by plain string ordering.
func (c *Client) LatestSDK(ctx context.Context) (SDK, bool, error) {
	return c.service.LatestSDK(ctx)
}

// LatestSDKBySemver returns the greatest SDK by semantic version.
func (c *Client) LatestSDKBySemver(ctx context.Context) (SDK, bool, error) {
	return c.service.LatestSDKBySemver(ctx)
}

// RuntimesByName returns the installed runtimes of one family.
func (c *Client) RuntimesByName(ctx context.Context, name string) ([]Runtime, error) {
	return c.service.RuntimesByName(ctx, name)
}
