// Package logging builds the logrus logger used by the executable.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Config selects the level and output format.
type Config struct {
	// Level is one of trace, debug, info, warn or error.
	Level string
	// Format is text or json.
	Format string
	// Output defaults to stderr. Stdout carries MCP traffic and must stay
	// clean.
	Output io.Writer
}

// Configure returns a fresh logger. The standard logger is left alone.
func Configure(cfg Config) (*logrus.Logger, error) {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	if cfg.Output != nil {
		logger.SetOutput(cfg.Output)
	}

	if cfg.Level != "" {
		lvl, err := logrus.ParseLevel(cfg.Level)
		if err != nil {
			return nil, err
		}
		logger.SetLevel(lvl)
	}

	switch strings.ToLower(cfg.Format) {
	case "", "text":
		logger.SetFormatter(&logrus.TextFormatter{
			DisableColors: true,
			FullTimestamp: true,
		})
	case "json":
		logger.SetFormatter(new(logrus.JSONFormatter))
	default:
		return nil, fmt.Errorf("unsupported log-format: %q", cfg.Format)
	}

	return logger, nil
}
