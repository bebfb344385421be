package dotnet

import "github.com/conneroisu/dotnetctl/pkg/dotneterrs"

// Error predicates re-exported from dotneterrs.
var (
	IsSpawnFailed   = dotneterrs.IsSpawnFailed
	IsCommandFailed = dotneterrs.IsCommandFailed
	IsCancelled     = dotneterrs.IsCancelled
	AsProcessError  = dotneterrs.AsProcessError
)
