package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/conneroisu/dotnetctl/pkg/dotnet/tooling"
)

func newSDKsCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sdks",
		Short: "List installed SDKs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			latest, _ := cmd.Flags().GetBool("latest")
			semantic, _ := cmd.Flags().GetBool("semver")
			insp := a.inspector()

			if latest {
				out, err := tooling.LatestSDK(cmd.Context(), insp, tooling.LatestArgs{Semantic: semantic})
				if err != nil {
					return err
				}

				return writeJSON(cmd.OutOrStdout(), out)
			}

			out, err := tooling.ListSDKs(cmd.Context(), insp)
			if err != nil {
				return err
			}

			return writeJSON(cmd.OutOrStdout(), out.SDKs)
		},
	}
	cmd.Flags().Bool("latest", false, "Print only the newest SDK")
	cmd.Flags().Bool("semver", false, "With --latest, compare versions semantically")

	return cmd
}

func newRuntimesCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "runtimes",
		Short: "List installed runtimes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			name, _ := cmd.Flags().GetString("name")
			out, err := tooling.ListRuntimes(cmd.Context(), a.inspector(), tooling.RuntimesArgs{Name: name})
			if err != nil {
				return err
			}

			return writeJSON(cmd.OutOrStdout(), out.Runtimes)
		},
	}
	cmd.Flags().String("name", "", "Only runtimes with this exact name, e.g. Microsoft.NETCore.App")

	return cmd
}

func newInfoCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "info",
		Short: "Summarize dotnet --info",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			info, err := tooling.EnvironmentInfo(cmd.Context(), a.inspector())
			if err != nil {
				return err
			}

			if raw, _ := cmd.Flags().GetBool("raw"); raw {
				_, err := fmt.Fprint(cmd.OutOrStdout(), info.RawText)

				return err
			}

			return writeJSON(cmd.OutOrStdout(), info)
		},
	}
	cmd.Flags().Bool("raw", false, "Print the unparsed output")

	return cmd
}

func newVersionCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print the SDK version selected in a directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			dir, _ := cmd.Flags().GetString("dir")
			out, err := tooling.EffectiveSDKVersion(cmd.Context(), a.inspector(), tooling.VersionArgs{
				WorkingDirectory: dir,
			})
			if err != nil {
				return err
			}

			return writeJSON(cmd.OutOrStdout(), out)
		},
	}
	cmd.Flags().String("dir", "", "Directory to resolve global.json from")

	return cmd
}

func newHasSDKCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "has-sdk VERSION",
		Short: "Check whether an exact SDK version is installed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := tooling.CheckSDKInstalled(cmd.Context(), a.inspector(), tooling.CheckArgs{
				Version: args[0],
			})
			if err != nil {
				return err
			}

			return writeJSON(cmd.OutOrStdout(), out)
		},
	}
}
