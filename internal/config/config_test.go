package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"gotest.tools/v3/assert"

	"github.com/conneroisu/dotnetctl/pkg/dotneterrs"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "dotnetctl.yaml")
	assert.NilError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.NilError(t, err)
	if diff := cmp.Diff(Default(), cfg); diff != "" {
		t.Errorf("Load() mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
cli_path: /opt/dotnet/dotnet
env:
  DOTNET_ROLL_FORWARD: Major
timeout: 5s
log:
  level: debug
server:
  name: sdk-inspector
`)

	cfg, err := Load(path)
	assert.NilError(t, err)

	want := Default()
	want.CLIPath = "/opt/dotnet/dotnet"
	want.Env = map[string]string{"DOTNET_ROLL_FORWARD": "Major"}
	want.Timeout = 5 * time.Second
	want.Log.Level = "debug"
	want.Server.Name = "sdk-inspector"
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("Load() mismatch (-want +got):\n%s", diff)
	}
	assert.NilError(t, cfg.Validate())
}

func TestLoadMalformedFile(t *testing.T) {
	_, err := Load(writeConfig(t, "log: [unterminated"))
	assert.Assert(t, dotneterrs.IsValidationError(err))
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv(EnvCLIPath, "/usr/bin/dotnet")
	t.Setenv(EnvLogLevel, "warn")
	t.Setenv(EnvLogFormat, "json")
	t.Setenv(EnvTimeout, "90s")

	cfg, err := Load("")
	assert.NilError(t, err)
	assert.Equal(t, cfg.CLIPath, "/usr/bin/dotnet")
	assert.Equal(t, cfg.Log.Level, "warn")
	assert.Equal(t, cfg.Log.Format, "json")
	assert.Equal(t, cfg.Timeout, 90*time.Second)
}

func TestEnvTimeoutInvalid(t *testing.T) {
	t.Setenv(EnvTimeout, "soon")

	_, err := Load("")
	assert.Assert(t, dotneterrs.IsValidationError(err))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "defaults", mutate: func(*Config) {}},
		{name: "upper case level", mutate: func(c *Config) { c.Log.Level = "DEBUG" }},
		{name: "unknown level", mutate: func(c *Config) { c.Log.Level = "verbose" }, wantErr: true},
		{name: "unknown format", mutate: func(c *Config) { c.Log.Format = "logfmt" }, wantErr: true},
		{name: "negative timeout", mutate: func(c *Config) { c.Timeout = -time.Second }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Assert(t, dotneterrs.IsValidationError(err))

				return
			}
			assert.NilError(t, err)
		})
	}
}
