package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ratulalahy/med-debt-collector/internal/database"
	"github.com/ratulalahy/med-debt-collector/internal/fixtures"
	"github.com/ratulalahy/med-debt-collector/internal/repository"
)

func (c *cli) seedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Create the Postgres schema and load the sample records",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			db, err := c.app.db(ctx)
			if err != nil {
				return err
			}
			if err := database.Migrate(ctx, db); err != nil {
				return err
			}

			patients, campaigns, logs := fixtures.Patients(), fixtures.Campaigns(), fixtures.CallLogs()
			if err := repository.NewPostgres(db, c.app.logger).Import(ctx, patients, campaigns, logs); err != nil {
				return err
			}
			c.app.logger.Info("Database seeded",
				zap.Int("patients", len(patients)),
				zap.Int("campaigns", len(campaigns)),
				zap.Int("call_logs", len(logs)),
			)
			return nil
		},
	}
}
