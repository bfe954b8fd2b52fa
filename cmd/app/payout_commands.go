package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/bitesapp/security/cmd/app/commands"
	"github.com/bitesapp/security/internal/app"
	"github.com/bitesapp/security/internal/config"
)

func getPayoutCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:  "seal-payout",
			Usage: "Encrypt a payout request for the gateway (reads stdin when --request is omitted)",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "request",
					Aliases: []string{"r"},
					Usage:   "Payout request as gateway JSON",
				},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				container := app.NewContainer(config.Load())
				defer func() { _ = container.Shutdown(ctx) }()

				sealer, err := container.PayoutSealer()
				if err != nil {
					return err
				}

				return commands.RunSealPayout(ctx, sealer, commands.DefaultIO(), cmd.String("request"))
			},
		},
		{
			Name:  "open-payout",
			Usage: "Decrypt a sealed payout addressed to the configured merchant",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "merchant-id",
					Required: true,
					Usage:    "Merchant ID from the sealed payout",
				},
				&cli.StringFlag{
					Name:     "enc-data",
					Required: true,
					Usage:    "Base64 encData from the sealed payout",
				},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				container := app.NewContainer(config.Load())
				defer func() { _ = container.Shutdown(ctx) }()

				sealer, err := container.PayoutSealer()
				if err != nil {
					return err
				}

				return commands.RunOpenPayout(
					ctx,
					sealer,
					commands.DefaultIO().Writer,
					cmd.String("merchant-id"),
					cmd.String("enc-data"),
				)
			},
		},
	}
}
