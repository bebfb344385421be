package ports

import "github.com/conneroisu/dotnetctl/pkg/dotnet/records"

// OutputParser converts raw CLI text to domain records.
//
// Error Handling: parsing never fails. Lines that do not match are skipped
// and fields that cannot be extracted hold records.Unknown, because the
// CLI output format drifts between SDK releases.
type OutputParser interface {
	// SDKs parses `dotnet --list-sdks` output.
	SDKs(text string) []records.SDK
	// Runtimes parses `dotnet --list-runtimes` output.
	Runtimes(text string) []records.Runtime
	// EnvironmentInfo parses `dotnet --info` output.
	EnvironmentInfo(text string) records.EnvironmentInfo
	// Version parses `dotnet --version` output.
	Version(text string) string
}
