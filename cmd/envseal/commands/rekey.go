package commands

import (
	"fmt"
	"log/slog"

	cryptoDomain "github.com/allisson/envseal/internal/crypto/domain"
	envfileUseCase "github.com/allisson/envseal/internal/envfile/usecase"
)

// RunRekey re-encrypts every sealed entry of the environment file under new
// session keys, optionally switching algorithms. Plaintext entries are left
// untouched. The file is only rewritten after every sealed entry has opened
// with the old keys, so a wrong password cannot corrupt the file.
func RunRekey(
	envUseCase envfileUseCase.EnvUseCase,
	oldKeys, newKeys *cryptoDomain.SessionKeys,
	logger *slog.Logger,
	io IOTuple,
) error {
	report, err := envUseCase.Rekey(oldKeys, newKeys)
	if err != nil {
		return fmt.Errorf("failed to rekey: %w", err)
	}

	logger.Info("env file rekeyed",
		slog.Int("resealed", len(report.Resealed)),
		slog.Int("passthrough", len(report.Passthrough)),
		slog.String("algorithm", string(newKeys.Algorithm)),
	)

	fmt.Fprintf(io.Writer, "resealed %d entries (%d plaintext entries untouched)\n",
		len(report.Resealed), len(report.Passthrough))
	return nil
}
