package inspecting

import "github.com/conneroisu/dotnetctl/pkg/dotnet/ports"

// CLI flags for the four supported invocations.
const (
	FlagListSDKs     = "--list-sdks"
	FlagListRuntimes = "--list-runtimes"
	FlagInfo         = "--info"
	FlagVersion      = "--version"
)

func (s *Service) command(dir string, args ...string) ports.Invocation {
	return ports.Invocation{
		Name: s.cliPath,
		Args: args,
		Dir:  dir,
		Env:  s.env,
	}
}

func (s *Service) listSDKsCommand() ports.Invocation {
	return s.command("", FlagListSDKs)
}

func (s *Service) listRuntimesCommand() ports.Invocation {
	return s.command("", FlagListRuntimes)
}

func (s *Service) infoCommand() ports.Invocation {
	return s.command("", FlagInfo)
}

func (s *Service) versionCommand(dir string) ports.Invocation {
	return s.command(dir, FlagVersion)
}
