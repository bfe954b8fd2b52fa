package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/bitesapp/security/cmd/app/commands"
	"github.com/bitesapp/security/internal/app"
	"github.com/bitesapp/security/internal/config"
)

func getKeyCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:  "generate-key",
			Usage: "Generate a 32-byte encryption key for ENCRYPTION_KEY or PII_ENCRYPTION_KEY",
			Flags: []cli.Flag{formatFlag()},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return commands.RunGenerateKey(commands.DefaultIO().Writer, cmd.String("format"))
			},
		},
		{
			Name:  "encrypt",
			Usage: "Encrypt a value into an iv:authTag:ciphertext envelope (reads stdin when --plaintext is omitted)",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "plaintext",
					Aliases: []string{"p"},
					Usage:   "Value to encrypt",
				},
				piiFlag(),
				formatFlag(),
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				container := app.NewContainer(cfg)
				defer func() { _ = container.Shutdown(ctx) }()

				envelopeUseCase, err := container.EnvelopeUseCase()
				if err != nil {
					return err
				}

				return commands.RunEncrypt(
					ctx,
					envelopeUseCase,
					commands.DefaultIO(),
					cmd.String("plaintext"),
					cmd.Bool("pii"),
					cmd.String("format"),
				)
			},
		},
		{
			Name:  "decrypt",
			Usage: "Decrypt an envelope (reads stdin when --envelope is omitted)",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "envelope",
					Aliases: []string{"e"},
					Usage:   "Envelope in iv:authTag:ciphertext form",
				},
				piiFlag(),
				formatFlag(),
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				container := app.NewContainer(cfg)
				defer func() { _ = container.Shutdown(ctx) }()

				envelopeUseCase, err := container.EnvelopeUseCase()
				if err != nil {
					return err
				}

				return commands.RunDecrypt(
					ctx,
					envelopeUseCase,
					commands.DefaultIO(),
					cmd.String("envelope"),
					cmd.Bool("pii"),
					cmd.String("format"),
				)
			},
		},
	}
}

func piiFlag() cli.Flag {
	return &cli.BoolFlag{
		Name:  "pii",
		Value: false,
		Usage: "Use the PII key instead of the general key",
	}
}
