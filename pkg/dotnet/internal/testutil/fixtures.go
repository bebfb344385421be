package testutil

// Captured dotnet CLI output used across package tests.
const (
	// SDKListOutput is `dotnet --list-sdks` on a machine with two SDKs.
	SDKListOutput = "9.0.302 [/usr/local/share/dotnet/sdk]\n" +
		"8.0.404 [/usr/local/share/dotnet/sdk]\n"

	// RuntimeListOutput is `dotnet --list-runtimes`.
	RuntimeListOutput = "Microsoft.AspNetCore.App 8.0.11 [/usr/local/share/dotnet/shared/Microsoft.AspNetCore.App]\n" +
		"Microsoft.AspNetCore.App 9.0.3 [/usr/local/share/dotnet/shared/Microsoft.AspNetCore.App]\n" +
		"Microsoft.NETCore.App 8.0.11 [/usr/local/share/dotnet/shared/Microsoft.NETCore.App]\n" +
		"Microsoft.NETCore.App 9.0.3 [/usr/local/share/dotnet/shared/Microsoft.NETCore.App]\n"

	// InfoOutput is `dotnet --info` from an arm64 macOS host.
	InfoOutput = `.NET SDK:
 Version:           9.0.302
 Commit:            bb2550b9af
 Workload version:  9.0.300-manifests.183aaee6
 MSBuild version:   17.14.13+65391c53b

Runtime Environment:
 OS Name:     Mac OS X
 OS Version:  15.5
 OS Platform: Darwin
 RID:         osx-arm64
 Base Path:   /usr/local/share/dotnet/sdk/9.0.302/

.NET workloads installed:
There are no installed workloads to display.

Host:
  Version:      9.0.3
  Architecture: arm64
  Commit:       3c298d9f00

.NET SDKs installed:
  8.0.404 [/usr/local/share/dotnet/sdk]
  9.0.302 [/usr/local/share/dotnet/sdk]

.NET runtimes installed:
  Microsoft.NETCore.App 9.0.3 [/usr/local/share/dotnet/shared/Microsoft.NETCore.App]
`

	// InfoOutputMultiRuntime is the tail of `dotnet --info` on a Linux host
	// with two runtime generations installed side by side.
	InfoOutputMultiRuntime = `Host:
  Version:      9.0.3
  Architecture: x64
  Commit:       831d23e561

.NET runtimes installed:
  Microsoft.AspNetCore.App 8.0.11 [/usr/share/dotnet/shared/Microsoft.AspNetCore.App]
  Microsoft.NETCore.App 8.0.11 [/usr/share/dotnet/shared/Microsoft.NETCore.App]
  Microsoft.NETCore.App 9.0.3 [/usr/share/dotnet/shared/Microsoft.NETCore.App]
`

	// VersionOutput is `dotnet --version`.
	VersionOutput = "9.0.302\n"
)
