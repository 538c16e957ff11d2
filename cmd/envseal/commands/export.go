package commands

import (
	"fmt"
	"sort"
	"strings"

	cryptoDomain "github.com/allisson/envseal/internal/crypto/domain"
	envfileUseCase "github.com/allisson/envseal/internal/envfile/usecase"
)

// Supported export formats.
const (
	FormatDotenv = "dotenv"
	FormatShell  = "shell"
)

// RunExport prints every decrypted entry of the environment file in the
// requested format: dotenv NAME=VALUE lines or shell `export NAME='VALUE'`
// lines for eval-style consumption.
//
// Entries that fail to open are reported by name on the error path and fail
// the command; successfully decrypted entries are still printed first so a
// partial export is visible.
func RunExport(
	envUseCase envfileUseCase.EnvUseCase,
	fileStore envfileUseCase.FileStore,
	keys *cryptoDomain.SessionKeys,
	io IOTuple,
	format string,
) error {
	if format != FormatDotenv && format != FormatShell {
		return fmt.Errorf("invalid format: %s (valid options: dotenv, shell)", format)
	}

	entries, err := fileStore.Read()
	if err != nil {
		return fmt.Errorf("failed to read env file: %w", err)
	}

	results := envUseCase.DecryptAll(entries, keys)

	names := make([]string, 0, len(results))
	for name := range results {
		names = append(names, name)
	}
	sort.Strings(names)

	var failed []string
	for _, name := range names {
		result := results[name]
		if result.Err != nil {
			failed = append(failed, name)
			continue
		}

		switch format {
		case FormatDotenv:
			fmt.Fprintf(io.Writer, "%s=%s\n", name, result.Plaintext)
		case FormatShell:
			fmt.Fprintf(io.Writer, "export %s='%s'\n", name, shellEscape(result.Plaintext))
		}
	}

	if len(failed) > 0 {
		return fmt.Errorf("failed to decrypt entries: %s", strings.Join(failed, ", "))
	}
	return nil
}

// shellEscape makes a value safe inside single quotes.
func shellEscape(value string) string {
	return strings.ReplaceAll(value, "'", `'\''`)
}
