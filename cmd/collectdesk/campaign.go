package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ratulalahy/med-debt-collector/internal/api"
	"github.com/ratulalahy/med-debt-collector/internal/domain"
	"github.com/ratulalahy/med-debt-collector/internal/repository"
)

func (c *cli) campaignCmd() *cobra.Command {
	actions := []string{string(domain.CampaignStart), string(domain.CampaignPause), string(domain.CampaignStop)}
	return &cobra.Command{
		Use:       "campaign <start|pause|stop> <id>",
		Short:     "Start, pause or stop a campaign",
		Args:      cobra.ExactArgs(2),
		ValidArgs: actions,
		RunE: func(cmd *cobra.Command, args []string) error {
			action := domain.CampaignAction(args[0])
			switch action {
			case domain.CampaignStart, domain.CampaignPause, domain.CampaignStop:
			default:
				return fmt.Errorf("unknown campaign action %q", args[0])
			}

			ctx := cmd.Context()
			src, err := c.app.source(ctx)
			if err != nil {
				return err
			}
			updater, ok := src.(repository.CampaignUpdater)
			if !ok {
				return fmt.Errorf("source %s cannot update campaigns", c.app.cfg.Source.Kind)
			}
			campaign, err := updater.ApplyCampaignAction(ctx, args[1], action)
			if err != nil {
				return err
			}
			c.app.logger.Info("Campaign updated",
				zap.String("id", campaign.ID),
				zap.String("action", string(action)),
				zap.String("status", string(campaign.Status)),
			)
			return printJSON(cmd.OutOrStdout(), api.OK(campaign, "Campaign "+string(campaign.Status)))
		},
	}
}
