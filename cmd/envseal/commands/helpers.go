// Package commands contains CLI command implementations for the application.
package commands

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/allisson/envseal/internal/app"
)

// IOTuple holds reader and writer for commands, allowing for testing.
type IOTuple struct {
	Reader io.Reader
	Writer io.Writer
}

// DefaultIO returns an IOTuple with os.Stdin and os.Stdout.
func DefaultIO() IOTuple {
	return IOTuple{
		Reader: os.Stdin,
		Writer: os.Stdout,
	}
}

// CloseContainer closes all resources in the container and logs any errors.
func CloseContainer(container *app.Container, logger *slog.Logger) {
	if err := container.Shutdown(context.Background()); err != nil {
		logger.Error("failed to shutdown container", slog.Any("error", err))
	}
}

// PromptSecret reads a secret value from the IOTuple reader.
//
// When the reader is an interactive terminal the input is read without echo,
// so passwords never appear on screen. Otherwise (tests, pipes) a single line
// is read from the reader. The prompt is written to stderr so it never mixes
// with command output on stdout.
func PromptSecret(io IOTuple, prompt string) (string, error) {
	fmt.Fprint(os.Stderr, prompt)

	if file, ok := io.Reader.(*os.File); ok && term.IsTerminal(int(file.Fd())) {
		secret, err := term.ReadPassword(int(file.Fd()))
		fmt.Fprintln(os.Stderr)
		if err != nil {
			return "", fmt.Errorf("failed to read secret: %w", err)
		}
		return string(secret), nil
	}

	reader := bufio.NewReader(io.Reader)
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("failed to read secret: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// ResolvePasswords returns the key and nonce passwords for a command.
//
// The key password comes from configuration when set, otherwise from an
// interactive prompt. An unset nonce password reuses the key password; the
// per-purpose derivation labels still keep key and nonce material independent.
func ResolvePasswords(keyPassword, noncePassword string, io IOTuple) (string, string, error) {
	if keyPassword == "" {
		var err error
		keyPassword, err = PromptSecret(io, "Key password: ")
		if err != nil {
			return "", "", err
		}
	}

	if noncePassword == "" {
		noncePassword = keyPassword
	}

	return keyPassword, noncePassword, nil
}
