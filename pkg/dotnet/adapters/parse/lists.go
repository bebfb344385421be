package parse

import (
	"regexp"
	"strings"

	"github.com/conneroisu/dotnetctl/pkg/dotnet/records"
)

// versionPattern matches major.minor.patch with an optional prerelease
// suffix such as -preview.7.24407.12.
const versionPattern = `\d+\.\d+\.\d+(?:-[0-9A-Za-z.\-]+)?`

var (
	// 9.0.302 [/usr/local/share/dotnet/sdk]
	sdkLineRe = regexp.MustCompile(
		`^(` + versionPattern + `)\s+\[(.+)\]$`,
	)
	// Microsoft.NETCore.App 9.0.3 [/usr/local/share/dotnet/shared/Microsoft.NETCore.App]
	runtimeLineRe = regexp.MustCompile(
		`^([A-Za-z0-9.]+)\s+(` + versionPattern + `)\s+\[(.+)\]$`,
	)
)

// ParseSDKList parses `dotnet --list-sdks` output in input order.
// Banner and warning lines are skipped. The result is never nil.
func ParseSDKList(text string) []records.SDK {
	sdks := make([]records.SDK, 0)
	for _, line := range lines(text) {
		m := sdkLineRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		sdks = append(sdks, records.SDK{
			Version: m[1],
			Path:    m[2],
		})
	}

	return sdks
}

// ParseRuntimeList parses `dotnet --list-runtimes` output in input order.
// The result is never nil.
func ParseRuntimeList(text string) []records.Runtime {
	runtimes := make([]records.Runtime, 0)
	for _, line := range lines(text) {
		m := runtimeLineRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		runtimes = append(runtimes, records.Runtime{
			Name:    m[1],
			Version: m[2],
			Path:    m[3],
		})
	}

	return runtimes
}

// ParseVersion returns the first non-empty line of `dotnet --version`
// output, trimmed. It returns "" when there is none.
func ParseVersion(text string) string {
	if ls := lines(text); len(ls) > 0 {
		return ls[0]
	}

	return ""
}

// lines splits text into trimmed, non-empty lines. Trimming also drops the
// carriage returns of CRLF output.
func lines(text string) []string {
	raw := strings.Split(text, "\n")
	out := make([]string, 0, len(raw))
	for _, line := range raw {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		out = append(out, line)
	}

	return out
}
