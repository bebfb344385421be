package ports

import (
	"context"

	"github.com/conneroisu/dotnetctl/pkg/dotnet/records"
)

// Inspector is what the chat and protocol adapters need from the core.
// Both inspecting.Service and dotnet.Client implement it.
type Inspector interface {
	ListSDKs(ctx context.Context) ([]records.SDK, error)
	ListRuntimes(ctx context.Context) ([]records.Runtime, error)
	RuntimesByName(ctx context.Context, name string) ([]records.Runtime, error)
	EnvironmentInfo(ctx context.Context) (records.EnvironmentInfo, error)
	EffectiveSDKVersion(ctx context.Context, dir string) (string, error)
	IsSDKInstalled(ctx context.Context, version string) (bool, error)
	LatestSDK(ctx context.Context) (records.SDK, bool, error)
	LatestSDKBySemver(ctx context.Context) (records.SDK, bool, error)
}
