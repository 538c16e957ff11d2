package commands

import (
	"fmt"

	cryptoDomain "github.com/allisson/envseal/internal/crypto/domain"
	envfileUseCase "github.com/allisson/envseal/internal/envfile/usecase"
)

// RunGet opens a single entry from the environment file and prints the
// plaintext to the command writer. Printing the secret is the whole point of
// the command, so this is the one place plaintext reaches output.
func RunGet(
	envUseCase envfileUseCase.EnvUseCase,
	keys *cryptoDomain.SessionKeys,
	io IOTuple,
	name string,
) error {
	value, err := envUseCase.GetEncrypted(name, keys)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", name, err)
	}

	fmt.Fprintln(io.Writer, value)
	return nil
}
