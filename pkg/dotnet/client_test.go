package dotnet_test

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"gotest.tools/v3/assert"

	"github.com/conneroisu/dotnetctl/pkg/dotnet"
	"github.com/conneroisu/dotnetctl/pkg/dotnet/internal/testutil"
	"github.com/conneroisu/dotnetctl/pkg/dotnet/ports"
)

// fakeCLI writes a shell script standing in for dotnet and returns its
// path. --version honours a global.json in the working directory.
func fakeCLI(t *testing.T) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("fake dotnet is a shell script")
	}

	dir := t.TempDir()
	info := filepath.Join(dir, "info.txt")
	assert.NilError(t, os.WriteFile(info, []byte(testutil.InfoOutput), 0o600))

	script := `#!/bin/sh
case "$1" in
  --list-sdks) printf '%s' "` + testutil.SDKListOutput + `" ;;
  --list-runtimes) printf '%s' "` + testutil.RuntimeListOutput + `" ;;
  --info) cat "` + info + `" ;;
  --version)
    if [ -f global.json ]; then echo 8.0.404; else echo 9.0.302; fi ;;
  *) echo "Unknown option: $1" >&2; exit 1 ;;
esac
`
	path := filepath.Join(dir, "dotnet")
	assert.NilError(t, os.WriteFile(path, []byte(script), 0o755))

	return path
}

func newClient(t *testing.T) *dotnet.Client {
	t.Helper()
	path := fakeCLI(t)
	client, err := dotnet.NewClient(&dotnet.Options{CLIPath: &path})
	assert.NilError(t, err)
	assert.Equal(t, client.CLIPath(), path)

	return client
}

func TestClientListSDKs(t *testing.T) {
	client := newClient(t)

	sdks, err := client.ListSDKs(context.Background())
	assert.NilError(t, err)
	assert.Assert(t, len(sdks) > 0)
	for _, sdk := range sdks {
		assert.Assert(t, sdk.Version != "" && sdk.Path != "")
	}
}

func TestClientRuntimes(t *testing.T) {
	client := newClient(t)
	ctx := context.Background()

	all, err := client.ListRuntimes(ctx)
	assert.NilError(t, err)

	netcore, err := client.RuntimesByName(ctx, "Microsoft.NETCore.App")
	assert.NilError(t, err)
	assert.Assert(t, len(netcore) > 0 && len(netcore) < len(all))
}

func TestClientEnvironmentInfo(t *testing.T) {
	client := newClient(t)

	info, err := client.EnvironmentInfo(context.Background())
	assert.NilError(t, err)
	assert.Equal(t, info.SDKVersion, "9.0.302")
	assert.Equal(t, info.Architecture, "arm64")
	assert.Equal(t, info.RawText, testutil.InfoOutput)
}

func TestClientEffectiveSDKVersion(t *testing.T) {
	client := newClient(t)
	ctx := context.Background()

	pinned := t.TempDir()
	assert.NilError(t, os.WriteFile(filepath.Join(pinned, "global.json"), []byte(`{"sdk":{"version":"8.0.404"}}`), 0o600))

	got, err := client.EffectiveSDKVersion(ctx, pinned)
	assert.NilError(t, err)
	assert.Equal(t, got, "8.0.404")

	got, err = client.EffectiveSDKVersion(ctx, t.TempDir())
	assert.NilError(t, err)
	assert.Equal(t, got, "9.0.302")
}

func TestClientMissingBinary(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "no-dotnet-here")
	client, err := dotnet.NewClient(&dotnet.Options{CLIPath: &missing})
	assert.NilError(t, err)

	_, err = client.ListSDKs(context.Background())
	assert.Assert(t, dotnet.IsSpawnFailed(err))
}

func TestClientCancelled(t *testing.T) {
	client := newClient(t)
	ctx, cancel := context.WithTimeout(context.Background(), time.Nanosecond)
	defer cancel()
	<-ctx.Done()

	_, err := client.EnvironmentInfo(ctx)
	assert.Assert(t, dotnet.IsCancelled(err))
}

var _ ports.Inspector = (*dotnet.Client)(nil)
