package main

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/ratulalahy/med-debt-collector/internal/appstate"
	"github.com/ratulalahy/med-debt-collector/internal/metrics"
	"github.com/ratulalahy/med-debt-collector/internal/notify"
	"github.com/ratulalahy/med-debt-collector/internal/service"
)

func (c *cli) watchCmd() *cobra.Command {
	var interval time.Duration
	var metricsAddr string
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Refresh the dashboard periodically and serve metrics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			cfg, log := c.app.cfg, c.app.logger
			if !cmd.Flags().Changed("interval") {
				interval = cfg.WatchInterval()
			}
			if !cmd.Flags().Changed("metrics-addr") {
				metricsAddr = cfg.Watch.MetricsAddr
			}

			src, err := c.app.source(ctx)
			if err != nil {
				return err
			}
			st, err := c.app.store(ctx)
			if err != nil {
				return err
			}
			st.Subscribe(func(_ appstate.State, a appstate.Action) {
				if add, ok := a.(appstate.AddNotification); ok {
					n := add.Notification
					log.Info("Notification",
						zap.String("level", string(n.Level)),
						zap.String("title", n.Title),
						zap.String("message", n.Message),
					)
				}
			})

			if mq := cfg.Notifications.MQTT; mq.Broker != "" {
				client, err := notify.NewClient(&mq, log)
				if err != nil {
					return err
				}
				defer client.Disconnect()
				bridge := notify.NewBridge(mq.ClientID, mq.Topic, mq.QoS, log)
				defer bridge.Attach(st, client)()
				if err := bridge.Listen(ctx, st, client); err != nil {
					return err
				}
			} else {
				log.Info("MQTT broker not configured, notifications stay local")
			}

			collector := metrics.NewCollector()
			svc := service.NewDashboardService(src, st, collector, interval, log)

			g, gctx := errgroup.WithContext(ctx)
			g.Go(func() error { return svc.Start(gctx) })
			if metricsAddr != "" {
				ops := service.NewOpsServer(metricsAddr, st, collector, log)
				g.Go(func() error { return ops.Start(gctx) })
			}
			err = g.Wait()
			log.Info("Watch stopped")
			return err
		},
	}
	cmd.Flags().DurationVar(&interval, "interval", 0, "refresh period (default from config)")
	cmd.Flags().StringVar(&metricsAddr, "metrics-addr", "", "ops listen address, empty disables (default from config)")
	return cmd
}
