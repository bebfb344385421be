package tooling

import (
	"context"
	"strings"

	"github.com/conneroisu/dotnetctl/pkg/dotnet/ports"
	"github.com/conneroisu/dotnetctl/pkg/dotnet/records"
	"github.com/conneroisu/dotnetctl/pkg/dotneterrs"
)

// ListSDKs backs list_sdks.
func ListSDKs(ctx context.Context, insp ports.Inspector) (SDKList, error) {
	sdks, err := insp.ListSDKs(ctx)
	if err != nil {
		return SDKList{}, err
	}

	return SDKList{SDKs: sdks}, nil
}

// ListRuntimes backs list_runtimes.
func ListRuntimes(ctx context.Context, insp ports.Inspector, args RuntimesArgs) (RuntimeList, error) {
	var (
		runtimes []records.Runtime
		err      error
	)
	if name := strings.TrimSpace(args.Name); name != "" {
		runtimes, err = insp.RuntimesByName(ctx, name)
	} else {
		runtimes, err = insp.ListRuntimes(ctx)
	}
	if err != nil {
		return RuntimeList{}, err
	}

	return RuntimeList{Runtimes: runtimes}, nil
}

// EnvironmentInfo backs get_environment_info.
func EnvironmentInfo(ctx context.Context, insp ports.Inspector) (records.EnvironmentInfo, error) {
	return insp.EnvironmentInfo(ctx)
}

// EffectiveSDKVersion backs get_effective_sdk_version.
func EffectiveSDKVersion(ctx context.Context, insp ports.Inspector, args VersionArgs) (VersionResult, error) {
	version, err := insp.EffectiveSDKVersion(ctx, args.WorkingDirectory)
	if err != nil {
		return VersionResult{}, err
	}

	return VersionResult{
		Version:          version,
		WorkingDirectory: args.WorkingDirectory,
	}, nil
}

// CheckSDKInstalled backs check_sdk_installed.
func CheckSDKInstalled(ctx context.Context, insp ports.Inspector, args CheckArgs) (CheckResult, error) {
	version := strings.TrimSpace(args.Version)
	if version == "" {
		return CheckResult{}, dotneterrs.NewValidationError(
			dotneterrs.ErrCodeMissingField,
			"version is required",
			nil,
			"version",
			args.Version,
		)
	}

	installed, err := insp.IsSDKInstalled(ctx, version)
	if err != nil {
		return CheckResult{}, err
	}

	return CheckResult{Version: version, Installed: installed}, nil
}

// LatestSDK backs get_latest_sdk.
func LatestSDK(ctx context.Context, insp ports.Inspector, args LatestArgs) (LatestResult, error) {
	latest, ordering := insp.LatestSDK, OrderingString
	if args.Semantic {
		latest, ordering = insp.LatestSDKBySemver, OrderingSemantic
	}

	sdk, found, err := latest(ctx)
	if err != nil {
		return LatestResult{}, err
	}

	return LatestResult{Found: found, SDK: sdk, Ordering: ordering}, nil
}
