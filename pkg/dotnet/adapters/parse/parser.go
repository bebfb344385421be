// Package parse turns dotnet CLI text output into records.
//
// All functions are pure and tolerant: unmatched input is dropped or
// defaulted to records.Unknown, never reported as an error.
package parse

import (
	"github.com/conneroisu/dotnetctl/pkg/dotnet/ports"
	"github.com/conneroisu/dotnetctl/pkg/dotnet/records"
)

// Adapter implements ports.OutputParser with the package functions.
type Adapter struct{}

// Verify interface compliance at compile time.
var _ ports.OutputParser = (*Adapter)(nil)

// NewAdapter creates a parser adapter.
func NewAdapter() *Adapter {
	return &Adapter{}
}

// SDKs implements ports.OutputParser.
func (*Adapter) SDKs(text string) []records.SDK {
	return ParseSDKList(text)
}

// Runtimes implements ports.OutputParser.
func (*Adapter) Runtimes(text string) []records.Runtime {
	return ParseRuntimeList(text)
}

// EnvironmentInfo implements ports.OutputParser.
func (*Adapter) EnvironmentInfo(text string) records.EnvironmentInfo {
	return ParseEnvironmentInfo(text)
}

// Version implements ports.OutputParser.
func (*Adapter) Version(text string) string {
	return ParseVersion(text)
}
