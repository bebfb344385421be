package parse

import (
	"regexp"
	"strings"

	"github.com/conneroisu/dotnetctl/pkg/dotnet/records"
)

// runtimeMarker is the component whose version is reported as the
// runtime version.
const runtimeMarker = "Microsoft.NETCore.App"

// Patterns run against the whole `dotnet --info` text. Each is independent;
// the first match wins.
var (
	sdkVersionRe   = regexp.MustCompile(`(?m)^[ \t]*Version:[ \t]*(\S+)`)
	runtimeMarkRe  = regexp.MustCompile(regexp.QuoteMeta(runtimeMarker) + `[ \t]+(` + versionPattern + `)`)
	hostVersionRe  = regexp.MustCompile(`(?m)^Host[^\n]*:[ \t]*\r?\n(?:[ \t]+[^\n]*\n)*?[ \t]+Version:[ \t]*(\S+)`)
	osVersionRe    = regexp.MustCompile(`(?m)^[ \t]*OS Version:[ \t]*(.+)$`)
	osNameRe       = regexp.MustCompile(`(?m)^[ \t]*OS Name:[ \t]*(.+)$`)
	architectureRe = regexp.MustCompile(`(?m)^[ \t]*Architecture:[ \t]*(\S+)`)
	ridRe          = regexp.MustCompile(`(?m)^[ \t]*RID:[ \t]*(\S+)`)
	basePathRe     = regexp.MustCompile(`(?m)^[ \t]*Base Path:[ \t]*(.+)$`)
)

// ParseEnvironmentInfo extracts the summary fields of `dotnet --info`.
// A field whose pattern does not match is records.Unknown; RawText is
// always the input verbatim.
//
// RuntimeVersion is the first Microsoft.NETCore.App entry in the text, in
// CLI listing order, which is the oldest installed runtime when several
// are present. The Host section's Version is used only when no such entry
// exists.
func ParseEnvironmentInfo(text string) records.EnvironmentInfo {
	info := records.NewEnvironmentInfo(text)

	info.SDKVersion = firstMatch(text, sdkVersionRe)
	info.RuntimeVersion = firstMatch(text, runtimeMarkRe, hostVersionRe)
	info.OSDescription = firstMatch(text, osVersionRe, osNameRe)
	info.Architecture = firstMatch(text, architectureRe)
	info.RID = firstMatch(text, ridRe)
	info.BasePath = firstMatch(text, basePathRe)

	return info
}

// firstMatch returns the trimmed first capture group of the first pattern
// that matches text, or records.Unknown.
func firstMatch(text string, patterns ...*regexp.Regexp) string {
	for _, re := range patterns {
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		if v := strings.TrimSpace(m[1]); v != "" {
			return v
		}
	}

	return records.Unknown
}
