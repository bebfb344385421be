// Package testutil provides test doubles and captured CLI output.
package testutil

import (
	"context"
	"sync"

	"github.com/conneroisu/dotnetctl/pkg/dotnet/ports"
	"github.com/conneroisu/dotnetctl/pkg/dotneterrs"
)

// FakeRunner simulates the dotnet CLI for hermetic testing.
// It answers invocations by their first argument and records every call
// without spawning processes.
type FakeRunner struct {
	mu        sync.Mutex
	responses map[string]string
	errors    map[string]error
	calls     []ports.Invocation
}

// NewFakeRunner creates an empty fake runner.
func NewFakeRunner() *FakeRunner {
	return &FakeRunner{
		responses: make(map[string]string),
		errors:    make(map[string]error),
	}
}

// Respond sets the stdout returned when the first argument is flag.
func (f *FakeRunner) Respond(flag, output string) *FakeRunner {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.responses[flag] = output

	return f
}

// Fail makes invocations whose first argument is flag return err.
func (f *FakeRunner) Fail(flag string, err error) *FakeRunner {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.errors[flag] = err

	return f
}

// Run implements ports.Runner. Unconfigured flags return empty output.
func (f *FakeRunner) Run(ctx context.Context, inv ports.Invocation) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, inv)

	if err := ctx.Err(); err != nil {
		return "", dotneterrs.NewCancelledError(inv.String(), err)
	}

	var flag string
	if len(inv.Args) > 0 {
		flag = inv.Args[0]
	}
	if err, ok := f.errors[flag]; ok {
		return "", err
	}

	return f.responses[flag], nil
}

// Calls returns a copy of every invocation seen so far.
func (f *FakeRunner) Calls() []ports.Invocation {
	f.mu.Lock()
	defer f.mu.Unlock()
	calls := make([]ports.Invocation, len(f.calls))
	copy(calls, f.calls)

	return calls
}

// Compile-time interface check.
var _ ports.Runner = (*FakeRunner)(nil)
