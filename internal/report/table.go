// Package report turns record collections into spreadsheet and CSV exports.
package report

import (
	"strconv"
	"strings"
	"time"

	"github.com/ratulalahy/med-debt-collector/internal/domain"
	"github.com/ratulalahy/med-debt-collector/internal/format"
	"github.com/ratulalahy/med-debt-collector/internal/stats"
)

// Table is one export sheet. Cells hold string, int or float64 values.
type Table struct {
	Name    string
	Headers []string
	Widths  []float64
	// Money lists the column indexes rendered with a currency number format.
	Money []int
	Rows  [][]any
}

func dateCell(d *domain.Date) string {
	if d == nil || d.IsZero() {
		return ""
	}
	return format.Date(d.Time)
}

func label(s string) string {
	return format.CapitalizeWords(strings.ReplaceAll(s, "_", " "))
}

// PatientTable lists patient accounts.
func PatientTable(patients []domain.Patient) Table {
	t := Table{
		Name: "Patients",
		Headers: []string{
			"Patient ID", "Resident", "Facility", "Payer", "Contact", "Phone",
			"Balance", "Due Date", "Status", "Priority", "Last Contact", "Next Scheduled",
			"Total Calls", "Contact Rate",
		},
		Widths: []float64{12, 22, 24, 14, 22, 16, 12, 12, 10, 10, 14, 14, 11, 12},
		Money:  []int{6},
	}
	for _, p := range patients {
		t.Rows = append(t.Rows, []any{
			p.ID, p.FullName(), p.FacilityName, p.PayerDesc, p.ContactName(), format.Phone(p.ContactNumber),
			p.Balance, dateCell(&p.DueDate), label(string(p.Status)), label(string(p.Priority)),
			dateCell(p.LastContact), dateCell(p.NextScheduled),
			p.TotalCalls, format.RateOrNA(float64(p.SuccessfulContacts), float64(p.TotalCalls), 1),
		})
	}
	return t
}

// CampaignTable lists campaigns with their completion progress.
func CampaignTable(campaigns []domain.Campaign) Table {
	t := Table{
		Name: "Campaigns",
		Headers: []string{
			"Campaign ID", "Name", "Status", "Start", "End", "Patients", "Calls Completed",
			"Progress", "Success Rate", "Collection Rate", "Recovered", "Avg Call",
		},
		Widths: []float64{12, 32, 11, 12, 12, 10, 15, 10, 12, 14, 14, 10},
		Money:  []int{10},
	}
	for _, c := range campaigns {
		t.Rows = append(t.Rows, []any{
			c.ID, c.Name, label(string(c.Status)), dateCell(&c.StartDate), dateCell(&c.EndDate),
			c.TotalPatients, c.CallsCompleted,
			format.Percentage(stats.Round(stats.CampaignProgress(c), 2), 2),
			format.Percentage(stats.Clamp(c.SuccessRate, 0, 100), 1),
			format.Percentage(stats.Clamp(c.CollectionRate, 0, 100), 1),
			c.TotalRecovered, format.Duration(c.AverageCallDuration),
		})
	}
	return t
}

// QueueTable lists the call queue.
func QueueTable(entries []domain.CallQueueEntry) Table {
	t := Table{
		Name: "Call Queue",
		Headers: []string{
			"Queue ID", "Patient", "Phone", "Balance", "Priority", "Status",
			"Position", "Attempts", "Estimated Call", "Agent",
		},
		Widths: []float64{10, 22, 16, 12, 10, 11, 9, 10, 18, 16},
		Money:  []int{3},
	}
	for _, e := range entries {
		position := ""
		if e.QueuePosition != nil {
			position = strconv.Itoa(*e.QueuePosition)
		}
		estimate := ""
		if e.EstimatedCallTime != nil && !e.EstimatedCallTime.IsZero() {
			estimate = format.DateTime(e.EstimatedCallTime.Time)
		}
		t.Rows = append(t.Rows, []any{
			e.ID, e.PatientName, format.Phone(e.PhoneNumber), e.Balance,
			label(string(e.Priority)), label(string(e.Status)), position,
			strconv.Itoa(e.Attempts) + "/" + strconv.Itoa(e.MaxAttempts),
			estimate, e.AssignedAgent,
		})
	}
	return t
}

// CallLogTable lists call outcomes.
func CallLogTable(logs []domain.CallLog) Table {
	t := Table{
		Name: "Call Logs",
		Headers: []string{
			"Call ID", "Patient", "Phone", "Date", "Duration", "Outcome", "Campaign", "Cost", "Satisfaction",
		},
		Widths: []float64{10, 22, 16, 18, 10, 22, 12, 10, 12},
		Money:  []int{7},
	}
	for _, l := range logs {
		satisfaction := ""
		if l.Satisfaction != nil {
			satisfaction = format.Number(*l.Satisfaction, 1)
		}
		t.Rows = append(t.Rows, []any{
			l.ID, l.PatientName, format.Phone(l.ContactNumber), format.DateTime(l.CallDate.Time),
			format.Duration(l.Duration), label(string(l.Outcome)), l.CampaignID, l.Cost, satisfaction,
		})
	}
	return t
}

// SummaryTable renders the dashboard headline numbers as label/value rows.
func SummaryTable(s domain.DashboardStats, generated time.Time) Table {
	return Table{
		Name:    "Summary",
		Headers: []string{"Metric", "Value"},
		Widths:  []float64{30, 28},
		Rows: [][]any{
			{"Generated", format.DateTime(generated)},
			{"Total Patients", s.TotalPatients},
			{"Active Patients", s.ActivePatients},
			{"Outstanding Balance", format.Currency(s.TotalOutstandingBalance, "USD")},
			{"Total Collected", format.Currency(s.TotalCollected, "USD")},
			{"Calls Today", s.CallsToday},
			{"Successful Contacts Today", s.SuccessfulContactsToday},
			{"Payment Arrangements", s.PaymentArrangements},
			{"Success Rate", format.RateOrNA(float64(s.SuccessfulContactsToday), float64(s.CallsToday), 1)},
			{"Average Call Duration", format.Duration(int(s.AverageCallDuration))},
			{"Top Campaign", s.TopPerformingCampaign},
		},
	}
}
