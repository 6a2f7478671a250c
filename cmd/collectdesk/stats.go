package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/ratulalahy/med-debt-collector/internal/appstate"
	"github.com/ratulalahy/med-debt-collector/internal/domain"
	"github.com/ratulalahy/med-debt-collector/internal/format"
	"github.com/ratulalahy/med-debt-collector/internal/repository"
	"github.com/ratulalahy/med-debt-collector/internal/stats"
)

// collections is one consistent read of every record kind.
type collections struct {
	patients  []domain.Patient
	campaigns []domain.Campaign
	logs      []domain.CallLog
	queue     []domain.CallQueueEntry
	events    []domain.CalendarEvent
	tasks     []domain.Task
	incoming  []domain.IncomingCall
	dashboard domain.DashboardStats
}

func load[T any](ctx context.Context, g *errgroup.Group, dst *T, fetch func(context.Context) (T, error)) {
	g.Go(func() error {
		v, err := fetch(ctx)
		if err != nil {
			return err
		}
		*dst = v
		return nil
	})
}

func loadAll(ctx context.Context, src repository.Source) (collections, error) {
	var c collections
	g, gctx := errgroup.WithContext(ctx)
	load(gctx, g, &c.patients, src.ListPatients)
	load(gctx, g, &c.campaigns, src.ListCampaigns)
	load(gctx, g, &c.logs, src.ListCallLogs)
	load(gctx, g, &c.queue, src.ListQueue)
	load(gctx, g, &c.events, src.ListEvents)
	load(gctx, g, &c.tasks, src.ListTasks)
	load(gctx, g, &c.incoming, src.ListIncomingCalls)
	load(gctx, g, &c.dashboard, src.DashboardStats)
	if err := g.Wait(); err != nil {
		return c, fmt.Errorf("failed to load records: %w", err)
	}
	return c, nil
}

// Summary is the output of the stats command.
type Summary struct {
	GeneratedAt time.Time             `json:"generatedAt"`
	Dashboard   domain.DashboardStats `json:"dashboard"`
	Patients    stats.PatientStats    `json:"patients"`
	Campaigns   stats.CampaignStats   `json:"campaigns"`
	Queue       stats.QueueStats      `json:"queue"`
	CallsToday  stats.CallStats       `json:"callsToday"`
	Calendar    stats.CalendarStats   `json:"calendar"`
	Incoming    stats.IncomingStats   `json:"incoming"`
}

func summarize(c collections, now time.Time) Summary {
	return Summary{
		GeneratedAt: now,
		Dashboard:   c.dashboard,
		Patients:    stats.Patients(c.patients),
		Campaigns:   stats.Campaigns(c.campaigns),
		Queue:       stats.Queue(c.queue),
		CallsToday:  stats.Calls(c.logs, now),
		Calendar:    stats.Calendar(c.events, c.tasks, now),
		Incoming:    stats.Incoming(c.incoming),
	}
}

func (c *cli) statsCmd() *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Print the dashboard summary",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			src, err := c.app.source(ctx)
			if err != nil {
				return err
			}
			records, err := loadAll(ctx, src)
			if err != nil {
				return err
			}
			sum := summarize(records, time.Now())
			if asJSON {
				return printJSON(cmd.OutOrStdout(), sum)
			}
			st, err := c.app.store(ctx)
			if err != nil {
				return err
			}
			return writeSummary(cmd.OutOrStdout(), sum, st.State().Preferences)
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON instead of text")
	return cmd
}

// writeSummary renders s for a terminal using the operator's currency and
// timezone.
func writeSummary(w io.Writer, s Summary, prefs appstate.Preferences) error {
	loc := format.Location(prefs.Timezone)
	d := s.Dashboard
	lines := []struct{ label, value string }{
		{"Generated", format.DateTime(s.GeneratedAt.In(loc))},
		{"Patients", fmt.Sprintf("%d (%d active)", d.TotalPatients, d.ActivePatients)},
		{"Outstanding", format.Currency(d.TotalOutstandingBalance, prefs.Currency)},
		{"Collected", format.Currency(d.TotalCollected, prefs.Currency)},
		{"Calls today", fmt.Sprintf("%d (%d reached)", d.CallsToday, d.SuccessfulContactsToday)},
		{"Success rate", format.RateOrNA(float64(d.SuccessfulContactsToday), float64(d.CallsToday), 1)},
		{"Avg call", format.Duration(int(d.AverageCallDuration))},
		{"Top campaign", d.TopPerformingCampaign},
		{"Queue", fmt.Sprintf("%d in queue, %d exhausted", s.Queue.InQueue, s.Queue.Exhausted)},
		{"Overdue tasks", fmt.Sprint(s.Calendar.OverdueTasks)},
		{"Urgent alerts", fmt.Sprint(s.Incoming.UrgentAlerts)},
	}
	for _, l := range lines {
		if _, err := fmt.Fprintf(w, "%-14s %s\n", l.label+":", l.value); err != nil {
			return err
		}
	}
	if len(d.RecentActivity) == 0 {
		return nil
	}
	if _, err := fmt.Fprintln(w, "\nRecent activity:"); err != nil {
		return err
	}
	for _, a := range d.RecentActivity {
		if _, err := fmt.Fprintf(w, "  %s  %-20s %s\n",
			format.RelativeDate(a.Timestamp.Time, s.GeneratedAt),
			format.Truncate(a.PatientName, 20),
			format.CapitalizeFirst(a.Description),
		); err != nil {
			return err
		}
	}
	return nil
}
