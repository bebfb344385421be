package tooling

import "github.com/conneroisu/dotnetctl/pkg/dotnet/records"

// NoArgs is the input of tools without parameters.
type NoArgs struct{}

// RuntimesArgs is the input of list_runtimes.
type RuntimesArgs struct {
	Name string `json:"name,omitempty" jsonschema:"Exact runtime name to filter by"`
}

// VersionArgs is the input of get_effective_sdk_version.
type VersionArgs struct {
	WorkingDirectory string `json:"working_directory,omitempty" jsonschema:"Directory to resolve the SDK in"`
}

// CheckArgs is the input of check_sdk_installed.
type CheckArgs struct {
	Version string `json:"version" jsonschema:"Exact SDK version such as 9.0.302"`
}

// LatestArgs is the input of get_latest_sdk.
type LatestArgs struct {
	Semantic bool `json:"semantic,omitempty" jsonschema:"Order versions semantically instead of as plain strings"`
}

// SDKList is the result of list_sdks.
type SDKList struct {
	SDKs []records.SDK `json:"sdks"`
}

// RuntimeList is the result of list_runtimes.
type RuntimeList struct {
	Runtimes []records.Runtime `json:"runtimes"`
}

// VersionResult is the result of get_effective_sdk_version.
type VersionResult struct {
	Version          string `json:"version"`
	WorkingDirectory string `json:"working_directory,omitempty"`
}

// CheckResult is the result of check_sdk_installed.
type CheckResult struct {
	Version   string `json:"version"`
	Installed bool   `json:"installed"`
}

// Orderings reported by get_latest_sdk.
const (
	OrderingString   = "string"
	OrderingSemantic = "semantic"
)

// LatestResult is the result of get_latest_sdk. SDK is the zero value
// when Found is false.
type LatestResult struct {
	Found    bool        `json:"found"`
	SDK      records.SDK `json:"sdk"`
	Ordering string      `json:"ordering"`
}

// ErrorEnvelope is the JSON body returned to a model when a tool fails.
type ErrorEnvelope struct {
	Error string `json:"error"`
}
