// Package tooling defines the tool surface shared by the chat and protocol
// adapters: names, descriptions, argument and result shapes, and the
// calls into the core that back each tool.
package tooling

// Tool names as exposed to LLMs and MCP clients.
const (
	ToolListSDKs            = "list_sdks"
	ToolListRuntimes        = "list_runtimes"
	ToolEnvironmentInfo     = "get_environment_info"
	ToolEffectiveSDKVersion = "get_effective_sdk_version"
	ToolCheckSDKInstalled   = "check_sdk_installed"
	ToolLatestSDK           = "get_latest_sdk"
)

// Names lists every tool in registration order.
var Names = []string{
	ToolListSDKs,
	ToolListRuntimes,
	ToolEnvironmentInfo,
	ToolEffectiveSDKVersion,
	ToolCheckSDKInstalled,
	ToolLatestSDK,
}

// Descriptions holds the tool descriptions shown to models.
var Descriptions = map[string]string{
	ToolListSDKs: "List the .NET SDKs installed on this machine " +
		"with their versions and install paths.",
	ToolListRuntimes: "List the installed .NET runtimes " +
		"(Microsoft.NETCore.App, Microsoft.AspNetCore.App, ...), " +
		"optionally filtered by runtime name.",
	ToolEnvironmentInfo: "Summarize `dotnet --info`: SDK version, runtime version, " +
		"OS, architecture, RID, and the raw output.",
	ToolEffectiveSDKVersion: "Report the SDK version the dotnet CLI selects " +
		"in a directory, honoring global.json.",
	ToolCheckSDKInstalled: "Check whether an exact SDK version is installed.",
	ToolLatestSDK: "Return the newest installed SDK. Ordering is plain string " +
		"comparison unless semantic is true.",
}

// Argument descriptions.
const (
	DescRuntimeName      = "Exact runtime name to filter by, e.g. Microsoft.AspNetCore.App"
	DescWorkingDirectory = "Directory to resolve the SDK in; defaults to the server's working directory"
	DescVersion          = "Exact SDK version, e.g. 9.0.302"
	DescSemantic         = "Order versions semantically instead of as plain strings"
)
