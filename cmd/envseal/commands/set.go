package commands

import (
	"fmt"
	"log/slog"

	cryptoDomain "github.com/allisson/envseal/internal/crypto/domain"
	envfileUseCase "github.com/allisson/envseal/internal/envfile/usecase"
)

// RunSet seals a single value into the environment file.
//
// The value comes from the flag when given, otherwise it is prompted for so
// it never lands in shell history. Existing entries are refused unless force
// is set. Neither the plaintext nor any derived material is printed or logged.
func RunSet(
	envUseCase envfileUseCase.EnvUseCase,
	keys *cryptoDomain.SessionKeys,
	logger *slog.Logger,
	io IOTuple,
	name, value string,
	force bool,
) error {
	if value == "" {
		var err error
		value, err = PromptSecret(io, fmt.Sprintf("Value for %s: ", name))
		if err != nil {
			return err
		}
	}

	setEncrypted := envUseCase.SetEncrypted
	if force {
		setEncrypted = envUseCase.ForceSetEncrypted
	}

	if err := setEncrypted(name, value, keys); err != nil {
		return fmt.Errorf("failed to seal %s: %w", name, err)
	}

	logger.Info("value sealed",
		slog.String("name", name),
		slog.String("algorithm", string(keys.Algorithm)),
	)
	fmt.Fprintf(io.Writer, "sealed %s\n", name)

	return nil
}
