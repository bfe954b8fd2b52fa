package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/bitesapp/security/cmd/app/commands"
	"github.com/bitesapp/security/internal/app"
	"github.com/bitesapp/security/internal/config"
)

func getAuthCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:  "generate-api-key",
			Usage: "Generate a bts_ API key and the hash to store for it",
			Flags: []cli.Flag{formatFlag()},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				container := app.NewContainer(config.Load())
				defer func() { _ = container.Shutdown(ctx) }()

				return commands.RunGenerateAPIKey(
					container.APIKeyService(),
					commands.DefaultIO().Writer,
					cmd.String("format"),
				)
			},
		},
		{
			Name:  "hash-password",
			Usage: "Hash a password with the configured algorithm (reads stdin when --password is omitted)",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "password",
					Aliases: []string{"p"},
					Usage:   "Password to hash",
				},
				formatFlag(),
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				container := app.NewContainer(config.Load())
				defer func() { _ = container.Shutdown(ctx) }()

				passwordService, err := container.PasswordService()
				if err != nil {
					return err
				}

				return commands.RunHashPassword(
					passwordService,
					container.Logger(),
					commands.DefaultIO(),
					cmd.String("password"),
					cmd.String("format"),
				)
			},
		},
		{
			Name:  "verify-password",
			Usage: "Check a password against a stored hash; exits non-zero on mismatch",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "password",
					Aliases: []string{"p"},
					Usage:   "Password to check (reads stdin when omitted)",
				},
				&cli.StringFlag{
					Name:     "hash",
					Required: true,
					Usage:    "Stored Argon2id or bcrypt hash",
				},
				formatFlag(),
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				container := app.NewContainer(config.Load())
				defer func() { _ = container.Shutdown(ctx) }()

				passwordService, err := container.PasswordService()
				if err != nil {
					return err
				}

				return commands.RunVerifyPassword(
					passwordService,
					commands.DefaultIO(),
					cmd.String("password"),
					cmd.String("hash"),
					cmd.String("format"),
				)
			},
		},
		{
			Name:  "issue-token",
			Usage: "Issue a signed service token",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "subject",
					Aliases:  []string{"s"},
					Required: true,
					Usage:    "Token subject (e.g., svc-orders)",
				},
				&cli.StringFlag{
					Name:    "claims",
					Aliases: []string{"c"},
					Usage:   "Additional claims as a JSON object",
				},
				&cli.DurationFlag{
					Name:  "ttl",
					Value: 0,
					Usage: "Token lifetime (defaults to JWT_EXPIRATION_SECONDS)",
				},
				formatFlag(),
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				container := app.NewContainer(config.Load())
				defer func() { _ = container.Shutdown(ctx) }()

				jwtService, err := container.JWTService()
				if err != nil {
					return err
				}

				return commands.RunIssueToken(
					jwtService,
					container.Logger(),
					commands.DefaultIO().Writer,
					cmd.String("subject"),
					cmd.String("claims"),
					cmd.Duration("ttl"),
					cmd.String("format"),
				)
			},
		},
		{
			Name:  "verify-token",
			Usage: "Verify a service token and print its claims",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "token",
					Aliases:  []string{"t"},
					Required: true,
					Usage:    "Token to verify",
				},
				formatFlag(),
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				container := app.NewContainer(config.Load())
				defer func() { _ = container.Shutdown(ctx) }()

				jwtService, err := container.JWTService()
				if err != nil {
					return err
				}

				return commands.RunVerifyToken(
					jwtService,
					commands.DefaultIO().Writer,
					cmd.String("token"),
					cmd.String("format"),
				)
			},
		},
	}
}
