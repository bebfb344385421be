package main

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/conneroisu/dotnetctl/pkg/dotnet/adapters/chat"
	dotnetmcp "github.com/conneroisu/dotnetctl/pkg/dotnet/adapters/mcp"
	"github.com/conneroisu/dotnetctl/pkg/dotnet/tooling"
)

func newServeCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the inspection tools over MCP on stdin/stdout",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			server := dotnetmcp.NewServer(a.inspector(), dotnetmcp.Config{
				Name:    a.cfg.Server.Name,
				Version: a.cfg.Server.Version,
				Logger:  a.logger,
			})
			a.logger.WithField("name", a.cfg.Server.Name).Info("serving MCP on stdio")

			return dotnetmcp.Serve(ctx, server)
		},
	}
}

func newToolsCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tools",
		Short: "List or call the chat tools directly",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "Print tool definitions as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return writeJSON(cmd.OutOrStdout(), chat.NewToolbox(a.inspector(), a.logger).Tools())
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:       "call NAME [ARGS_JSON]",
		Short:     "Call a tool and print its result",
		Args:      cobra.RangeArgs(1, 2),
		ValidArgs: tooling.Names,
		RunE: func(cmd *cobra.Command, args []string) error {
			argsJSON := "{}"
			if len(args) == 2 {
				argsJSON = args[1]
			}

			out, err := chat.NewToolbox(a.inspector(), a.logger).Call(cmd.Context(), args[0], argsJSON)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), out)

			return err
		},
	})

	return cmd
}
