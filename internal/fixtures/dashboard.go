package fixtures

import "github.com/ratulalahy/med-debt-collector/internal/domain"

func amount(v float64) *float64 { return &v }

// Dashboard returns the seed headline numbers for the operations floor.
func Dashboard() domain.DashboardStats {
	return domain.DashboardStats{
		TotalPatients:           1234,
		ActivePatients:          1234,
		TotalOutstandingBalance: 2547890.75,
		TotalCollected:          2450.75,
		CallsToday:              456,
		SuccessfulContactsToday: 312,
		PaymentArrangements:     89,
		SuccessRate:             68.5,
		AverageCallDuration:     185,
		TopPerformingCampaign:   "January 2025 Collection Drive",
		RecentActivity: []domain.ActivityItem{
			{ID: "act-001", Timestamp: domain.MustDate("2025-01-09T10:30:00Z"), Type: "call",
				Description: "Call completed: Payment arranged", PatientName: "John Doe",
				Amount: amount(50), Status: "success"},
			{ID: "act-002", Timestamp: domain.MustDate("2025-01-09T10:15:00Z"), Type: "call",
				Description: "Call attempted: No answer", PatientName: "Jane Smith", Status: "pending"},
			{ID: "act-003", Timestamp: domain.MustDate("2025-01-09T09:45:00Z"), Type: "payment",
				Description: "Payment received: Full payment", PatientName: "Bob Johnson",
				Amount: amount(150), Status: "success"},
			{ID: "act-004", Timestamp: domain.MustDate("2025-01-09T09:30:00Z"), Type: "call",
				Description: "Call completed: Information requested", PatientName: "Mary Wilson", Status: "success"},
			{ID: "act-005", Timestamp: domain.MustDate("2025-01-09T09:15:00Z"), Type: "campaign",
				Description: "Campaign started: 85 patients scheduled", PatientName: "Payment Reminder Campaign",
				Status: "success"},
		},
	}
}
