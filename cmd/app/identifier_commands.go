package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/dernekportal/tcguard/cmd/app/commands"
	"github.com/dernekportal/tcguard/internal/app"
	"github.com/dernekportal/tcguard/internal/config"
)

func getIdentifierCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:  "create-tc-salt",
			Usage: "Provision the TC number hashing salt",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "value",
					Aliases: []string{"v"},
					Usage:   "Salt value (omit to generate a random salt)",
				},
				operatorFlag(false),
				formatFlag(),
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				container := app.NewContainer(cfg)
				defer func() { _ = container.Shutdown(ctx) }()

				saltUseCase, err := container.SaltUseCase()
				if err != nil {
					return err
				}
				userUseCase, err := container.UserUseCase()
				if err != nil {
					return err
				}

				return commands.RunCreateTCSalt(
					ctx,
					saltUseCase,
					userUseCase,
					container.Logger(),
					commands.DefaultIO().Writer,
					cmd.String("value"),
					cmd.String("operator"),
					cmd.String("format"),
				)
			},
		},
		{
			Name:  "migrate-legacy-tc",
			Usage: "Rewrite plaintext TC numbers to salted hashes",
			Flags: []cli.Flag{
				operatorFlag(true),
				&cli.IntFlag{
					Name:    "batch-size",
					Aliases: []string{"b"},
					Usage:   "Records read per batch (defaults to LEGACY_MIGRATION_BATCH_SIZE)",
				},
				&cli.BoolFlag{
					Name:    "dry-run",
					Aliases: []string{"n"},
					Value:   false,
					Usage:   "Count the records that would be migrated without writing",
				},
				formatFlag(),
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				container := app.NewContainer(cfg)
				defer func() { _ = container.Shutdown(ctx) }()

				migrationUseCase, err := container.MigrationUseCase()
				if err != nil {
					return err
				}

				batchSize := int(cmd.Int("batch-size"))
				if !cmd.IsSet("batch-size") {
					batchSize = cfg.LegacyMigrationBatchSize
				}

				return commands.RunMigrateLegacyTC(
					ctx,
					migrationUseCase,
					container.Logger(),
					commands.DefaultIO().Writer,
					cmd.String("operator"),
					batchSize,
					cmd.Bool("dry-run"),
					cmd.String("format"),
				)
			},
		},
		{
			Name:  "legacy-tc-status",
			Usage: "Show how many plaintext TC numbers remain",
			Flags: []cli.Flag{
				operatorFlag(true),
				formatFlag(),
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				container := app.NewContainer(cfg)
				defer func() { _ = container.Shutdown(ctx) }()

				migrationUseCase, err := container.MigrationUseCase()
				if err != nil {
					return err
				}

				return commands.RunLegacyTCStatus(
					ctx,
					migrationUseCase,
					container.Logger(),
					commands.DefaultIO().Writer,
					cmd.String("operator"),
					cmd.String("format"),
				)
			},
		},
	}
}
