package cli

import (
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
)

// BinaryName is the executable looked up on PATH.
const BinaryName = "dotnet"

// ResolveCLI locates the dotnet executable.
// A custom path wins; then PATH; then DOTNET_ROOT and the default install
// locations. When nothing is found it returns BinaryName unchanged, so the
// failure surfaces as a spawn error on first use instead of here.
func ResolveCLI(custom string) string {
	if custom != "" {
		return custom
	}

	if path, err := exec.LookPath(BinaryName); err == nil {
		return path
	}

	for _, loc := range candidateLocations() {
		if info, err := os.Stat(loc); err == nil && !info.IsDir() {
			return loc
		}
	}

	return BinaryName
}

// candidateLocations lists install directories used by the official
// installers and the dotnet-install script.
func candidateLocations() []string {
	exe := BinaryName
	if runtime.GOOS == "windows" {
		exe += ".exe"
	}

	var locations []string
	if root := os.Getenv("DOTNET_ROOT"); root != "" {
		locations = append(locations, filepath.Join(root, exe))
	}

	homeDir, _ := os.UserHomeDir()
	if homeDir != "" {
		locations = append(locations, filepath.Join(homeDir, ".dotnet", exe))
	}

	switch runtime.GOOS {
	case "windows":
		locations = append(locations,
			filepath.Join(os.Getenv("ProgramFiles"), "dotnet", exe),
		)
	case "darwin":
		locations = append(locations,
			"/usr/local/share/dotnet/"+exe,
			"/opt/homebrew/bin/"+exe,
		)
	default:
		locations = append(locations,
			"/usr/share/dotnet/"+exe,
			"/usr/lib/dotnet/"+exe,
			"/usr/local/share/dotnet/"+exe,
		)
	}

	return locations
}
