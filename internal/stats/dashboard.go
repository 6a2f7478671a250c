package stats

import (
	"slices"
	"strings"
	"time"

	"github.com/ratulalahy/med-debt-collector/internal/domain"
)

// PatientStats summarizes the patient book.
type PatientStats struct {
	Total               int                          `json:"total"`
	ByStatus            map[domain.PatientStatus]int `json:"byStatus"`
	ByPriority          map[domain.Priority]int      `json:"byPriority"`
	OutstandingBalance  float64                      `json:"outstandingBalance"`
	AverageBalance      float64                      `json:"averageBalance"`
	TotalCalls          int                          `json:"totalCalls"`
	SuccessfulContacts  int                          `json:"successfulContacts"`
	PaymentArrangements int                          `json:"paymentArrangements"`
	ContactRate         float64                      `json:"contactRate"`
}

func outstanding(p domain.Patient) bool { return p.Status != domain.PatientResolved }

// Patients computes PatientStats. Resolved accounts do not count towards the
// outstanding balance.
func Patients(patients []domain.Patient) PatientStats {
	open := slices.DeleteFunc(slices.Clone(patients), func(p domain.Patient) bool { return !outstanding(p) })
	calls := int(Sum(patients, func(p domain.Patient) float64 { return float64(p.TotalCalls) }))
	contacts := int(Sum(patients, func(p domain.Patient) float64 { return float64(p.SuccessfulContacts) }))
	return PatientStats{
		Total:               len(patients),
		ByStatus:            CountByField(patients, func(p domain.Patient) domain.PatientStatus { return p.Status }),
		ByPriority:          CountByField(patients, func(p domain.Patient) domain.Priority { return p.Priority }),
		OutstandingBalance:  Round(Sum(open, balanceOf), 2),
		AverageBalance:      Round(Average(patients, balanceOf), 2),
		TotalCalls:          calls,
		SuccessfulContacts:  contacts,
		PaymentArrangements: int(Sum(patients, func(p domain.Patient) float64 { return float64(p.PaymentArrangements) })),
		ContactRate:         Round(Percentage(float64(contacts), float64(calls)), 2),
	}
}

func balanceOf(p domain.Patient) float64 { return p.Balance }

// QueueStats summarizes the call queue.
type QueueStats struct {
	Total           int                        `json:"total"`
	ByStatus        map[domain.QueueStatus]int `json:"byStatus"`
	InQueue         int                        `json:"inQueue"`
	AverageAttempts float64                    `json:"averageAttempts"`
	Exhausted       int                        `json:"exhausted"`
}

// AttemptProgress is attempts over max attempts as a display percentage.
func AttemptProgress(e domain.CallQueueEntry) float64 {
	return Progress(e.Attempts, e.MaxAttempts)
}

// Queue computes QueueStats.
func Queue(entries []domain.CallQueueEntry) QueueStats {
	return QueueStats{
		Total:           len(entries),
		ByStatus:        CountByField(entries, func(e domain.CallQueueEntry) domain.QueueStatus { return e.Status }),
		InQueue:         CountBy(entries, func(e domain.CallQueueEntry) bool { return e.Status.Positioned() }),
		AverageAttempts: Round(Average(entries, func(e domain.CallQueueEntry) float64 { return float64(e.Attempts) }), 2),
		Exhausted:       CountBy(entries, func(e domain.CallQueueEntry) bool { return e.Attempts >= e.MaxAttempts }),
	}
}

// CampaignStats summarizes campaigns.
type CampaignStats struct {
	Total          int                           `json:"total"`
	ByStatus       map[domain.CampaignStatus]int `json:"byStatus"`
	TotalPatients  int                           `json:"totalPatients"`
	CallsCompleted int                           `json:"callsCompleted"`
	Progress       float64                       `json:"progress"`
	TotalRecovered float64                       `json:"totalRecovered"`
	TopPerforming  string                        `json:"topPerforming"`
}

// CampaignProgress is calls completed over total patients, rounded for display.
func CampaignProgress(c domain.Campaign) float64 {
	return Round(Progress(c.CallsCompleted, c.TotalPatients), 2)
}

// TopCampaign returns the campaign with the highest success rate. Ties keep
// the earlier campaign. ok is false for an empty slice.
func TopCampaign(campaigns []domain.Campaign) (top domain.Campaign, ok bool) {
	for i, c := range campaigns {
		if i == 0 || c.SuccessRate > top.SuccessRate {
			top = c
		}
	}
	return top, len(campaigns) > 0
}

// Campaigns computes CampaignStats.
func Campaigns(campaigns []domain.Campaign) CampaignStats {
	patients := int(Sum(campaigns, func(c domain.Campaign) float64 { return float64(c.TotalPatients) }))
	completed := int(Sum(campaigns, func(c domain.Campaign) float64 { return float64(c.CallsCompleted) }))
	s := CampaignStats{
		Total:          len(campaigns),
		ByStatus:       CountByField(campaigns, func(c domain.Campaign) domain.CampaignStatus { return c.Status }),
		TotalPatients:  patients,
		CallsCompleted: completed,
		Progress:       Round(Progress(completed, patients), 2),
		TotalRecovered: Round(Sum(campaigns, func(c domain.Campaign) float64 { return c.TotalRecovered }), 2),
	}
	if top, ok := TopCampaign(campaigns); ok {
		s.TopPerforming = top.Name
	}
	return s
}

// CallStats summarizes the calls placed on one day.
type CallStats struct {
	TotalCalls          int     `json:"totalCalls"`
	SuccessfulCalls     int     `json:"successfulCalls"`
	PaymentArrangements int     `json:"paymentArrangements"`
	TotalCost           float64 `json:"totalCost"`
	AverageDuration     float64 `json:"averageDuration"`
	SuccessRate         float64 `json:"successRate"`
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.UTC().Date()
	by, bm, bd := b.UTC().Date()
	return ay == by && am == bm && ad == bd
}

// Calls computes CallStats for the UTC calendar day of day. A day with no
// calls reports zeros, never NaN.
func Calls(logs []domain.CallLog, day time.Time) CallStats {
	today := slices.DeleteFunc(slices.Clone(logs), func(c domain.CallLog) bool { return !sameDay(c.CallDate.Time, day) })
	successful := CountBy(today, func(c domain.CallLog) bool { return c.Outcome != domain.OutcomeNoAnswer })
	return CallStats{
		TotalCalls:          len(today),
		SuccessfulCalls:     successful,
		PaymentArrangements: CountBy(today, func(c domain.CallLog) bool { return c.Outcome.IsPayment() }),
		TotalCost:           Round(Sum(today, func(c domain.CallLog) float64 { return c.Cost }), 2),
		AverageDuration:     Round(Average(today, func(c domain.CallLog) float64 { return float64(c.Duration) }), 2),
		SuccessRate:         Round(Percentage(float64(successful), float64(len(today))), 2),
	}
}

// CalendarStats summarizes the schedule relative to now.
type CalendarStats struct {
	TodaysEvents       int `json:"todaysEvents"`
	OverdueTasks       int `json:"overdueTasks"`
	UpcomingDeadlines  int `json:"upcomingDeadlines"`
	FollowUpsScheduled int `json:"followUpsScheduled"`
}

// Calendar computes CalendarStats. Upcoming deadlines are payment-due and
// legal-review events within the next three days.
func Calendar(events []domain.CalendarEvent, tasks []domain.Task, now time.Time) CalendarStats {
	horizon := now.Add(72 * time.Hour)
	return CalendarStats{
		TodaysEvents: CountBy(events, func(e domain.CalendarEvent) bool { return sameDay(e.Date.Time, now) }),
		OverdueTasks: CountBy(tasks, func(t domain.Task) bool { return t.Overdue(now) }),
		UpcomingDeadlines: CountBy(events, func(e domain.CalendarEvent) bool {
			start := e.Start()
			return (e.Type == "payment_due" || e.Type == "legal_review") && !start.Before(now) && !start.After(horizon)
		}),
		FollowUpsScheduled: CountBy(events, func(e domain.CalendarEvent) bool {
			return e.Type == "follow_up_call" && e.Status == "scheduled"
		}),
	}
}

// IncomingStats summarizes inbound calls.
type IncomingStats struct {
	Total         int `json:"total"`
	UrgentAlerts  int `json:"urgentAlerts"`
	WithCallbacks int `json:"withCallbacks"`
	Payments      int `json:"payments"`
}

// Incoming computes IncomingStats.
func Incoming(calls []domain.IncomingCall) IncomingStats {
	return IncomingStats{
		Total:         len(calls),
		UrgentAlerts:  CountBy(calls, func(c domain.IncomingCall) bool { return c.HasAlert(domain.PriorityUrgent) }),
		WithCallbacks: CountBy(calls, func(c domain.IncomingCall) bool { return len(c.ScheduledCallbacks) > 0 }),
		Payments: CountBy(calls, func(c domain.IncomingCall) bool {
			return c.Outcome == "payment_made" || c.Outcome == "payment_promise"
		}),
	}
}

const recentActivityLimit = 5

// RecentActivity turns the latest call logs into activity feed items,
// newest first.
func RecentActivity(logs []domain.CallLog) []domain.ActivityItem {
	sorted := slices.Clone(logs)
	slices.SortStableFunc(sorted, func(a, b domain.CallLog) int { return b.CallDate.Compare(a.CallDate.Time) })
	if len(sorted) > recentActivityLimit {
		sorted = sorted[:recentActivityLimit]
	}
	items := make([]domain.ActivityItem, 0, len(sorted))
	for _, c := range sorted {
		status := "success"
		if c.Outcome == domain.OutcomeNoAnswer || c.Outcome == domain.OutcomeBusy || c.Outcome == domain.OutcomeDisconnected {
			status = "failed"
		}
		items = append(items, domain.ActivityItem{
			ID:          c.ID,
			Timestamp:   c.CallDate,
			Type:        "call",
			Description: "Call completed: " + strings.ReplaceAll(string(c.Outcome), "_", " "),
			PatientID:   c.PatientID,
			PatientName: c.PatientName,
			Status:      status,
		})
	}
	return items
}

// Dashboard assembles the headline numbers from the current collections.
func Dashboard(patients []domain.Patient, campaigns []domain.Campaign, logs []domain.CallLog, now time.Time) domain.DashboardStats {
	ps := Patients(patients)
	cs := Campaigns(campaigns)
	calls := Calls(logs, now)
	return domain.DashboardStats{
		TotalPatients:           ps.Total,
		ActivePatients:          ps.ByStatus[domain.PatientActive],
		TotalOutstandingBalance: ps.OutstandingBalance,
		TotalCollected:          cs.TotalRecovered,
		CallsToday:              calls.TotalCalls,
		SuccessfulContactsToday: calls.SuccessfulCalls,
		PaymentArrangements:     calls.PaymentArrangements,
		SuccessRate:             calls.SuccessRate,
		AverageCallDuration:     calls.AverageDuration,
		TopPerformingCampaign:   cs.TopPerforming,
		RecentActivity:          RecentActivity(logs),
	}
}
