// Package options provides configuration for the dotnet client.
package options

import (
	"io"

	"github.com/sirupsen/logrus"
)

// Options configures a dotnet client. The zero value is usable.
type Options struct {
	// CLIPath overrides discovery of the dotnet executable.
	CLIPath *string
	// Env holds extra environment variables for every invocation. They
	// override the client defaults (DOTNET_NOLOGO, DOTNET_CLI_UI_LANGUAGE).
	Env map[string]string
	// Logger receives debug records about spawned processes. Nil discards.
	Logger logrus.FieldLogger
}

// DiscardLogger returns a logger that writes nothing.
func DiscardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	l.SetLevel(logrus.PanicLevel)

	return l
}

// LoggerOrDiscard returns l, or a discard logger when l is nil.
func LoggerOrDiscard(l logrus.FieldLogger) logrus.FieldLogger {
	if l == nil {
		return DiscardLogger()
	}

	return l
}
