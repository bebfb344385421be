package inspecting

import (
	"context"

	"github.com/coreos/go-semver/semver"

	"github.com/conneroisu/dotnetctl/pkg/dotnet/records"
)

// IsSDKInstalled reports whether an SDK with exactly this version string
// is installed.
func (s *Service) IsSDKInstalled(ctx context.Context, version string) (bool, error) {
	sdks, err := s.ListSDKs(ctx)
	if err != nil {
		return false, err
	}

	for _, sdk := range sdks {
		if sdk.Version == version {
			return true, nil
		}
	}

	return false, nil
}

// LatestSDK returns the SDK with the greatest version by plain string
// comparison. This is wrong for components of different width ("9.0.9"
// sorts after "9.0.10"); LatestSDKBySemver orders semantically.
// The bool is false when no SDK is installed.
func (s *Service) LatestSDK(ctx context.Context) (records.SDK, bool, error) {
	sdks, err := s.ListSDKs(ctx)
	if err != nil {
		return records.SDK{}, false, err
	}

	return latestByString(sdks)
}

// LatestSDKBySemver returns the SDK with the greatest semantic version.
// Versions that do not parse as semver are ignored.
func (s *Service) LatestSDKBySemver(ctx context.Context) (records.SDK, bool, error) {
	sdks, err := s.ListSDKs(ctx)
	if err != nil {
		return records.SDK{}, false, err
	}

	return latestBySemver(sdks)
}

// RuntimesByName returns the installed runtimes of one family, such as
// Microsoft.AspNetCore.App.
func (s *Service) RuntimesByName(ctx context.Context, name string) ([]records.Runtime, error) {
	runtimes, err := s.ListRuntimes(ctx)
	if err != nil {
		return nil, err
	}

	matched := make([]records.Runtime, 0, len(runtimes))
	for _, rt := range runtimes {
		if rt.Name == name {
			matched = append(matched, rt)
		}
	}

	return matched, nil
}

func latestByString(sdks []records.SDK) (records.SDK, bool, error) {
	if len(sdks) == 0 {
		return records.SDK{}, false, nil
	}

	latest := sdks[0]
	for _, sdk := range sdks[1:] {
		if sdk.Version > latest.Version {
			latest = sdk
		}
	}

	return latest, true, nil
}

func latestBySemver(sdks []records.SDK) (records.SDK, bool, error) {
	var (
		latest    records.SDK
		latestVer *semver.Version
	)
	for _, sdk := range sdks {
		v, err := semver.NewVersion(sdk.Version)
		if err != nil {
			continue
		}
		if latestVer == nil || latestVer.LessThan(*v) {
			latest, latestVer = sdk, v
		}
	}

	return latest, latestVer != nil, nil
}
