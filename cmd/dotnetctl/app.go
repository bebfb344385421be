package main

import (
	"context"
	"encoding/json"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/conneroisu/dotnetctl/internal/config"
	"github.com/conneroisu/dotnetctl/internal/logging"
	"github.com/conneroisu/dotnetctl/pkg/dotnet"
	"github.com/conneroisu/dotnetctl/pkg/dotnet/ports"
)

// app carries state built from the global flags before a subcommand runs.
type app struct {
	cfg    config.Config
	logger *logrus.Logger
	client *dotnet.Client
}

func newApp() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "dotnetctl",
		Short: "Inspect installed .NET SDKs and runtimes",
		Example: `  List installed SDKs:
  $ dotnetctl sdks

  Newest SDK by semantic version:
  $ dotnetctl sdks --latest --semver

  Serve MCP over stdio:
  $ dotnetctl serve`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().String("config", "", "Path to a YAML config file")
	rootCmd.PersistentFlags().String("log-level", "", "Set the logging level [trace, debug, info, warn, error]")
	rootCmd.PersistentFlags().String("log-format", "", "Set the logging format [text, json]")
	rootCmd.PersistentFlags().String("cli-path", "", "Path to the dotnet executable")
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		return a.setup(cmd)
	}

	rootCmd.AddCommand(
		newSDKsCommand(a),
		newRuntimesCommand(a),
		newInfoCommand(a),
		newVersionCommand(a),
		newHasSDKCommand(a),
		newServeCommand(a),
		newToolsCommand(a),
	)

	return rootCmd
}

// setup loads config, applies flag overrides, and builds the logger and
// client. Flags win over the environment, which wins over the file.
func (a *app) setup(cmd *cobra.Command) error {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}

	if l, _ := cmd.Flags().GetString("log-level"); l != "" {
		cfg.Log.Level = l
	}
	if f, _ := cmd.Flags().GetString("log-format"); f != "" {
		cfg.Log.Format = f
	}
	if p, _ := cmd.Flags().GetString("cli-path"); p != "" {
		cfg.CLIPath = p
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, err := logging.Configure(logging.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cmd.ErrOrStderr(),
	})
	if err != nil {
		return err
	}

	opts := &dotnet.Options{Env: cfg.Env, Logger: logger}
	if cfg.CLIPath != "" {
		opts.CLIPath = &cfg.CLIPath
	}
	client, err := dotnet.NewClient(opts)
	if err != nil {
		return err
	}

	a.cfg, a.logger, a.client = cfg, logger, client
	logger.WithField("cli", client.CLIPath()).Debug("client ready")

	return nil
}

// requestContext applies the configured timeout to one request.
func (a *app) requestContext(parent context.Context) (context.Context, context.CancelFunc) {
	if a.cfg.Timeout > 0 {
		return context.WithTimeout(parent, a.cfg.Timeout)
	}

	return context.WithCancel(parent)
}

// inspector returns the client's service with the request timeout
// applied to every call.
func (a *app) inspector() ports.Inspector {
	return &deadlineInspector{next: a.client.Service(), newContext: a.requestContext}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(v)
}
