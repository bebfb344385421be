// Package cli implements ports.Runner by spawning local processes.
package cli

import (
	"context"
	"errors"
	"io"
	"os/exec"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/conneroisu/dotnetctl/pkg/dotnet/options"
	"github.com/conneroisu/dotnetctl/pkg/dotnet/ports"
	"github.com/conneroisu/dotnetctl/pkg/dotneterrs"
)

// defaultWaitDelay bounds how long Wait keeps pipes open after a cancelled
// process has been killed.
const defaultWaitDelay = 5 * time.Second

// Runner implements ports.Runner with os/exec.
// Each Run spawns exactly one process; Runner holds no per-call state and
// is safe for concurrent use.
type Runner struct {
	logger    logrus.FieldLogger
	waitDelay time.Duration
}

// Verify interface compliance at compile time.
var _ ports.Runner = (*Runner)(nil)

// NewRunner creates a process runner.
func NewRunner(opts *options.Options) *Runner {
	var logger logrus.FieldLogger
	if opts != nil {
		logger = opts.Logger
	}

	return &Runner{
		logger:    options.LoggerOrDiscard(logger),
		waitDelay: defaultWaitDelay,
	}
}

// result is what a finished process left behind.
type result struct {
	stdout   string
	stderr   string
	drainErr error
	waitErr  error
}

// Run implements ports.Runner.
func (r *Runner) Run(ctx context.Context, inv ports.Invocation) (string, error) {
	command := inv.String()
	if err := ctx.Err(); err != nil {
		return "", dotneterrs.NewCancelledError(command, err)
	}

	path, err := exec.LookPath(inv.Name)
	if err != nil {
		return "", dotneterrs.NewSpawnFailedError(command, err)
	}

	cmd := exec.CommandContext(ctx, path, inv.Args...)
	cmd.Dir = inv.Dir
	cmd.Env = buildEnvironment(inv.Env)
	cmd.WaitDelay = r.waitDelay

	stdout, stderr, err := setupPipes(cmd)
	if err != nil {
		return "", dotneterrs.NewSpawnFailedError(command, err)
	}

	log := r.logger.WithFields(logrus.Fields{
		"command": command,
		"dir":     inv.Dir,
	})
	if err := cmd.Start(); err != nil {
		_ = stdout.Close()
		_ = stderr.Close()

		return "", dotneterrs.NewSpawnFailedError(command, err)
	}
	log.WithField("pid", cmd.Process.Pid).Debug("process started")
	started := time.Now()

	// The collector owns the process from here on and always reaps it,
	// including after an early return on cancellation.
	done := make(chan result, 1)
	go func() {
		done <- r.collect(cmd, stdout, stderr, log)
	}()

	select {
	case res := <-done:
		log.WithField("elapsed", time.Since(started)).Debug("process finished")

		return finish(ctx, command, cmd, res)
	case <-ctx.Done():
		log.Debug("process cancelled")

		return "", dotneterrs.NewCancelledError(command, ctx.Err())
	}
}

// setupPipes connects stdout and stderr. Both are closed by Wait.
func setupPipes(cmd *exec.Cmd) (io.ReadCloser, io.ReadCloser, error) {
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, nil, err
	}

	stderr, err := cmd.StderrPipe()
	if err != nil {
		_ = stdout.Close()

		return nil, nil, err
	}

	return stdout, stderr, nil
}

// collect drains both streams concurrently, then waits for exit. Wait must
// not run before the reads complete.
func (*Runner) collect(
	cmd *exec.Cmd,
	stdout, stderr io.Reader,
	log logrus.FieldLogger,
) result {
	var out, errOut strings.Builder
	var g errgroup.Group
	g.Go(func() error {
		return drainLines(stdout, &out, nil)
	})
	g.Go(func() error {
		return drainLines(stderr, &errOut, func(line string) {
			log.WithField("stream", "stderr").Debug(line)
		})
	})
	drainErr := g.Wait()

	return result{
		stdout:   out.String(),
		stderr:   errOut.String(),
		drainErr: drainErr,
		waitErr:  cmd.Wait(),
	}
}

// finish maps a completed process to its output or a typed error.
func finish(
	ctx context.Context,
	command string,
	cmd *exec.Cmd,
	res result,
) (string, error) {
	if res.waitErr == nil && res.drainErr == nil {
		return res.stdout, nil
	}

	// A process killed by our own cancellation reports a signal exit.
	if ctxErr := ctx.Err(); ctxErr != nil {
		return "", dotneterrs.NewCancelledError(command, ctxErr)
	}

	var exitErr *exec.ExitError
	if errors.As(res.waitErr, &exitErr) {
		return "", dotneterrs.NewCommandFailedError(
			command,
			exitErr.ExitCode(),
			res.stderr,
			res.waitErr,
		)
	}

	exitCode := -1
	if cmd.ProcessState != nil {
		exitCode = cmd.ProcessState.ExitCode()
	}

	return "", dotneterrs.NewCommandFailedError(
		command,
		exitCode,
		res.stderr,
		errors.Join(res.waitErr, res.drainErr),
	)
}
