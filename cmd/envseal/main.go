// Package main provides the entry point for the envseal CLI.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/allisson/envseal/cmd/envseal/commands"
	"github.com/allisson/envseal/internal/app"
	"github.com/allisson/envseal/internal/config"
	cryptoDomain "github.com/allisson/envseal/internal/crypto/domain"
)

// loadConfig loads configuration and applies command-line overrides.
func loadConfig(cmd *cli.Command) *config.Config {
	cfg := config.Load()
	if file := cmd.String("file"); file != "" {
		cfg.EnvFile = file
	}
	if algorithm := cmd.String("algorithm"); algorithm != "" {
		cfg.Algorithm = algorithm
	}
	return cfg
}

// sessionKeys resolves passwords and derives the session keys for a command.
func sessionKeys(
	container *app.Container,
	cfg *config.Config,
	io commands.IOTuple,
) (*cryptoDomain.SessionKeys, error) {
	algorithm, err := cryptoDomain.ParseAlgorithm(cfg.Algorithm)
	if err != nil {
		return nil, fmt.Errorf("invalid algorithm: %s (valid options: aes-gcm, chacha20-poly1305)", cfg.Algorithm)
	}

	keyPassword, noncePassword, err := commands.ResolvePasswords(cfg.KeyPassword, cfg.NoncePassword, io)
	if err != nil {
		return nil, err
	}

	return container.SessionKeys(keyPassword, noncePassword, algorithm)
}

func main() {
	cmd := &cli.Command{
		Name:    "envseal",
		Usage:   "Encrypt environment-variable values in dotenv files with password-derived keys",
		Version: "1.0.0",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "file",
				Aliases: []string{"f"},
				Value:   "",
				Usage:   "Path of the environment file (default \".env\", or ENVSEAL_FILE)",
			},
			&cli.StringFlag{
				Name:    "algorithm",
				Aliases: []string{"alg"},
				Value:   "",
				Usage:   "Encryption algorithm to use (aes-gcm or chacha20-poly1305)",
			},
		},
		Commands: []*cli.Command{
			{
				Name:  "set",
				Usage: "Seal a value into the environment file",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "name",
						Aliases:  []string{"n"},
						Required: true,
						Usage:    "Environment variable name",
					},
					&cli.StringFlag{
						Name:    "value",
						Aliases: []string{"v"},
						Value:   "",
						Usage:   "Value to seal (omit to be prompted)",
					},
					&cli.BoolFlag{
						Name:  "force",
						Value: false,
						Usage: "Replace the entry if it already exists",
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					cfg := loadConfig(cmd)
					container := app.NewContainer(cfg)
					logger := container.Logger()
					defer commands.CloseContainer(container, logger)

					io := commands.DefaultIO()
					keys, err := sessionKeys(container, cfg, io)
					if err != nil {
						return err
					}

					return commands.RunSet(
						container.EnvUseCase(),
						keys,
						logger,
						io,
						cmd.String("name"),
						cmd.String("value"),
						cmd.Bool("force"),
					)
				},
			},
			{
				Name:  "get",
				Usage: "Open a sealed entry and print its plaintext",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "name",
						Aliases:  []string{"n"},
						Required: true,
						Usage:    "Environment variable name",
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					cfg := loadConfig(cmd)
					container := app.NewContainer(cfg)
					defer commands.CloseContainer(container, container.Logger())

					io := commands.DefaultIO()
					keys, err := sessionKeys(container, cfg, io)
					if err != nil {
						return err
					}

					return commands.RunGet(container.EnvUseCase(), keys, io, cmd.String("name"))
				},
			},
			{
				Name:      "run",
				Usage:     "Load the environment file and run a command with the decrypted environment",
				ArgsUsage: "-- COMMAND [ARGS...]",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "ignore-failures",
						Value: false,
						Usage: "Run the command even if some entries fail to decrypt",
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					cfg := loadConfig(cmd)
					container := app.NewContainer(cfg)
					logger := container.Logger()
					defer commands.CloseContainer(container, logger)

					keys, err := sessionKeys(container, cfg, commands.DefaultIO())
					if err != nil {
						return err
					}

					return commands.RunExec(
						ctx,
						container.EnvUseCase(),
						keys,
						logger,
						cmd.Args().Slice(),
						cmd.Bool("ignore-failures"),
					)
				},
			},
			{
				Name:  "export",
				Usage: "Print decrypted entries for eval-style consumption",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "format",
						Value: "dotenv",
						Usage: "Output format: 'dotenv' or 'shell'",
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					cfg := loadConfig(cmd)
					container := app.NewContainer(cfg)
					defer commands.CloseContainer(container, container.Logger())

					io := commands.DefaultIO()
					keys, err := sessionKeys(container, cfg, io)
					if err != nil {
						return err
					}

					return commands.RunExport(
						container.EnvUseCase(),
						container.FileStore(),
						keys,
						io,
						cmd.String("format"),
					)
				},
			},
			{
				Name:  "rekey",
				Usage: "Re-encrypt every sealed entry under new passwords",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "new-key-password",
						Value: "",
						Usage: "New key password (omit to be prompted)",
					},
					&cli.StringFlag{
						Name:  "new-nonce-password",
						Value: "",
						Usage: "New nonce password (defaults to the new key password)",
					},
					&cli.StringFlag{
						Name:  "new-algorithm",
						Value: "",
						Usage: "Algorithm for the resealed entries (defaults to the current algorithm)",
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					cfg := loadConfig(cmd)
					container := app.NewContainer(cfg)
					logger := container.Logger()
					defer commands.CloseContainer(container, logger)

					io := commands.DefaultIO()
					oldKeys, err := sessionKeys(container, cfg, io)
					if err != nil {
						return err
					}

					newAlgorithmName := cmd.String("new-algorithm")
					if newAlgorithmName == "" {
						newAlgorithmName = cfg.Algorithm
					}
					newAlgorithm, err := cryptoDomain.ParseAlgorithm(newAlgorithmName)
					if err != nil {
						return fmt.Errorf("invalid algorithm: %s (valid options: aes-gcm, chacha20-poly1305)", newAlgorithmName)
					}

					newKeyPassword := cmd.String("new-key-password")
					if newKeyPassword == "" {
						newKeyPassword, err = commands.PromptSecret(io, "New key password: ")
						if err != nil {
							return err
						}
					}
					newNoncePassword := cmd.String("new-nonce-password")
					if newNoncePassword == "" {
						newNoncePassword = newKeyPassword
					}

					newKeys, err := container.KeyDeriver().DeriveSessionKeys(newKeyPassword, newNoncePassword, newAlgorithm)
					if err != nil {
						return err
					}
					defer newKeys.Close()

					return commands.RunRekey(container.EnvUseCase(), oldKeys, newKeys, logger, io)
				},
			},
			{
				Name:  "status",
				Usage: "Show which entries are sealed and with which algorithm",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					cfg := loadConfig(cmd)
					container := app.NewContainer(cfg)
					defer commands.CloseContainer(container, container.Logger())

					return commands.RunStatus(container.EnvUseCase(), commands.DefaultIO())
				},
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		slog.Error("application error", slog.Any("error", err))
		os.Exit(1)
	}
}
