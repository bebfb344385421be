// Package records defines the values produced by parsing dotnet CLI output.
//
// Records are plain immutable values built fresh for every call. String
// fields are never nil: a field that could not be extracted holds Unknown.
package records

// Unknown is the value of any EnvironmentInfo field whose pattern did not
// match.
const Unknown = "Unknown"

// SDK is one line of `dotnet --list-sdks`.
type SDK struct {
	// Version is the dotted SDK version, possibly with a prerelease suffix.
	Version string `json:"version"`
	// Path is the directory the SDK is installed under.
	Path string `json:"path"`
}

// Runtime is one line of `dotnet --list-runtimes`.
type Runtime struct {
	// Name is the runtime family, e.g. Microsoft.NETCore.App.
	Name    string `json:"name"`
	Version string `json:"version"`
	Path    string `json:"path"`
}

// EnvironmentInfo is the summary extracted from `dotnet --info`.
type EnvironmentInfo struct {
	SDKVersion     string `json:"sdkVersion"`
	RuntimeVersion string `json:"runtimeVersion"`
	OSDescription  string `json:"osDescription"`
	Architecture   string `json:"architecture"`
	RID            string `json:"rid"`
	BasePath       string `json:"basePath"`
	// RawText is the unparsed command output, kept for display when the
	// extracted fields are not enough.
	RawText string `json:"rawText"`
}

// NewEnvironmentInfo returns an EnvironmentInfo with every extracted field
// set to Unknown.
func NewEnvironmentInfo(raw string) EnvironmentInfo {
	return EnvironmentInfo{
		SDKVersion:     Unknown,
		RuntimeVersion: Unknown,
		OSDescription:  Unknown,
		Architecture:   Unknown,
		RID:            Unknown,
		BasePath:       Unknown,
		RawText:        raw,
	}
}
