package dotneterrs

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestProcessErrorPredicates(t *testing.T) {
	tests := []struct {
		name          string
		err           error
		wantSpawn     bool
		wantCommand   bool
		wantCancelled bool
	}{
		{
			name:      "spawn failed",
			err:       NewSpawnFailedError("dotnet --info", errors.New("not found")),
			wantSpawn: true,
		},
		{
			name:        "command failed",
			err:         NewCommandFailedError("dotnet --info", 1, "boom", nil),
			wantCommand: true,
		},
		{
			name:          "cancelled",
			err:           NewCancelledError("dotnet --info", context.Canceled),
			wantCancelled: true,
		},
		{
			name:        "wrapped command failed",
			err:         fmt.Errorf("list sdks: %w", NewCommandFailedError("dotnet", 2, "", nil)),
			wantCommand: true,
		},
		{
			name: "plain error",
			err:  errors.New("plain"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsSpawnFailed(tt.err); got != tt.wantSpawn {
				t.Errorf("IsSpawnFailed() = %v, want %v", got, tt.wantSpawn)
			}
			if got := IsCommandFailed(tt.err); got != tt.wantCommand {
				t.Errorf("IsCommandFailed() = %v, want %v", got, tt.wantCommand)
			}
			if got := IsCancelled(tt.err); got != tt.wantCancelled {
				t.Errorf("IsCancelled() = %v, want %v", got, tt.wantCancelled)
			}
			wantProcess := tt.wantSpawn || tt.wantCommand || tt.wantCancelled
			if got := IsProcessError(tt.err); got != wantProcess {
				t.Errorf("IsProcessError() = %v, want %v", got, wantProcess)
			}
		})
	}
}

func TestCommandFailedError(t *testing.T) {
	err := NewCommandFailedError("dotnet --list-sdks", 1, "boom\n", nil)

	if err.ExitCode() != 1 {
		t.Errorf("expected exit code 1, got %d", err.ExitCode())
	}
	if err.Stderr() != "boom\n" {
		t.Errorf("expected stderr %q, got %q", "boom\n", err.Stderr())
	}
	if err.Command() != "dotnet --list-sdks" {
		t.Errorf("unexpected command %q", err.Command())
	}
	if !strings.Contains(err.Error(), "boom") {
		t.Errorf("expected message to carry stderr, got %q", err.Error())
	}
	if got := err.Metadata()["exit_code"]; got != 1 {
		t.Errorf("expected exit_code metadata 1, got %v", got)
	}

	procErr, ok := AsProcessError(fmt.Errorf("wrapped: %w", err))
	if !ok || procErr != err {
		t.Fatal("expected AsProcessError to find the wrapped error")
	}
}

func TestCancelledErrorUnwrap(t *testing.T) {
	t.Run("explicit cancel", func(t *testing.T) {
		err := NewCancelledError("dotnet", context.Canceled)
		if !errors.Is(err, context.Canceled) {
			t.Error("expected errors.Is(err, context.Canceled)")
		}
		if err.DeadlineExceeded() {
			t.Error("expected DeadlineExceeded() to be false")
		}
	})

	t.Run("deadline", func(t *testing.T) {
		err := NewCancelledError("dotnet", context.DeadlineExceeded)
		if !errors.Is(err, context.DeadlineExceeded) {
			t.Error("expected errors.Is(err, context.DeadlineExceeded)")
		}
		if !err.DeadlineExceeded() {
			t.Error("expected DeadlineExceeded() to be true")
		}
	})

	t.Run("nil cause defaults to canceled", func(t *testing.T) {
		err := NewCancelledError("dotnet", nil)
		if !errors.Is(err, context.Canceled) {
			t.Error("expected default cause context.Canceled")
		}
	})
}

func TestValidationError(t *testing.T) {
	err := NewValidationError(ErrCodeInvalidFormat, "bad level", nil, "log.level", "loud")

	if !IsValidationError(err) {
		t.Error("expected validation error")
	}
	if IsProcessError(err) {
		t.Error("validation error must not be a process error")
	}
	if err.Field() != "log.level" || err.Value() != "loud" {
		t.Errorf("unexpected field/value %q/%v", err.Field(), err.Value())
	}
	if err.Error() != "validation: bad level" {
		t.Errorf("unexpected message %q", err.Error())
	}
}
