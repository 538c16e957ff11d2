package commands

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/exec"

	cryptoDomain "github.com/allisson/envseal/internal/crypto/domain"
	envfileUseCase "github.com/allisson/envseal/internal/envfile/usecase"
)

// RunExec loads the environment file into the process environment and then
// executes a child command, which inherits the decrypted variables.
//
// Per-entry decryption failures are logged by name and fail the run before
// the child starts, unless ignoreFailures is set. The child's stdio is wired
// to the parent's so the command behaves like a transparent wrapper.
func RunExec(
	ctx context.Context,
	envUseCase envfileUseCase.EnvUseCase,
	keys *cryptoDomain.SessionKeys,
	logger *slog.Logger,
	args []string,
	ignoreFailures bool,
) error {
	if len(args) == 0 {
		return fmt.Errorf("no command to run")
	}

	report, err := envUseCase.Load(keys)
	if err != nil {
		return fmt.Errorf("failed to load env file: %w", err)
	}

	logger.Debug("environment loaded",
		slog.Int("applied", len(report.Applied)),
		slog.Int("passthrough", len(report.Passthrough)),
		slog.Int("failed", len(report.Failed)),
	)

	for name, entryErr := range report.Failed {
		logger.Error("failed to load entry",
			slog.String("name", name),
			slog.Any("error", entryErr),
		)
	}
	if len(report.Failed) > 0 && !ignoreFailures {
		return fmt.Errorf("%d entries failed to load", len(report.Failed))
	}

	// Session keys are no longer needed once the environment is populated;
	// the child must never see them
	keys.Close()

	cmd := exec.CommandContext(ctx, args[0], args[1:]...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.Env = os.Environ()

	return cmd.Run()
}
