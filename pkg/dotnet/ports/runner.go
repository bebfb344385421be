// Package ports defines interfaces that the domain needs from infrastructure.
// These are "ports" in hexagonal architecture - contracts defined by
// domain needs, not by external systems.
package ports

import (
	"context"
	"strings"
)

// Invocation describes a single external command.
type Invocation struct {
	// Name is the executable name or path.
	Name string
	// Args are passed to the executable verbatim, without shell parsing.
	Args []string
	// Dir is the working directory. Empty means the current directory.
	Dir string
	// Env holds extra variables appended to the inherited environment.
	Env map[string]string
}

// String renders the invocation as a command line for diagnostics.
func (i Invocation) String() string {
	return strings.Join(append([]string{i.Name}, i.Args...), " ")
}

// Runner defines what the domain needs from process execution.
//
// Error Handling: Run returns typed errors from the dotneterrs package:
// - the executable could not be started: spawn failed
// - the executable exited non-zero: command failed, with exit code and stderr
// - ctx was done before the command finished: operation cancelled
type Runner interface {
	// Run executes inv and returns its stdout, one "\n" terminated line
	// per output line.
	Run(ctx context.Context, inv Invocation) (string, error)
}
