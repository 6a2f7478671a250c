package fixtures

import "github.com/ratulalahy/med-debt-collector/internal/domain"

// Campaigns returns the three seed campaigns.
func Campaigns() []domain.Campaign {
	return []domain.Campaign{
		{
			ID: "camp-001", Name: "January 2025 Collection Drive",
			Description: "Monthly collection campaign for overdue accounts",
			Status:      domain.CampaignActive,
			StartDate:   domain.MustDate("2025-01-01"), EndDate: domain.MustDate("2025-01-31"),
			TotalPatients: 150, CallsCompleted: 89, CallsScheduled: 61,
			SuccessRate: 68.5, CollectionRate: 42.3, TotalRecovered: 12450.75,
			AverageCallDuration: 185, Priority: domain.PriorityHigh,
			AgentType: "debt_collection", CreatedBy: "admin",
			CreatedAt: domain.MustDate("2025-01-01T08:00:00Z"),
		},
		{
			ID: "camp-002", Name: "Payment Reminder Campaign",
			Description: "Gentle reminders for upcoming due dates",
			Status:      domain.CampaignScheduled,
			StartDate:   domain.MustDate("2025-01-15"), EndDate: domain.MustDate("2025-01-25"),
			TotalPatients: 85, CallsCompleted: 0, CallsScheduled: 85,
			Priority:  domain.PriorityMedium,
			AgentType: "payment_reminder", CreatedBy: "admin",
			CreatedAt: domain.MustDate("2025-01-08T10:00:00Z"),
		},
		{
			ID: "camp-003", Name: "Follow-up Campaign",
			Description: "Follow-up calls for partial payments",
			Status:      domain.CampaignCompleted,
			StartDate:   domain.MustDate("2024-12-01"), EndDate: domain.MustDate("2024-12-31"),
			TotalPatients: 120, CallsCompleted: 120, CallsScheduled: 0,
			SuccessRate: 75.2, CollectionRate: 55.8, TotalRecovered: 18750.25,
			AverageCallDuration: 210, Priority: domain.PriorityMedium,
			AgentType: "follow_up", CreatedBy: "admin",
			CreatedAt: domain.MustDate("2024-12-01T09:00:00Z"),
		},
	}
}

// CampaignByID looks up a seed campaign.
func CampaignByID(id string) (domain.Campaign, bool) {
	for _, c := range Campaigns() {
		if c.ID == id {
			return c, true
		}
	}
	return domain.Campaign{}, false
}

func rating(v float64) *float64 { return &v }

// CallLogs returns the four seed call logs, all for camp-001.
func CallLogs() []domain.CallLog {
	return []domain.CallLog{
		{
			ID: "call-001", PatientID: "600999", PatientName: "John Doe", ContactNumber: "+15554181944",
			CallDate: domain.MustDate("2025-01-09T10:30:00Z"), Duration: 185,
			Outcome: domain.OutcomePaymentArranged, Status: "completed", AgentType: "debt_collection",
			CampaignID: "camp-001", Notes: "Patient agreed to payment plan of $50/month",
			Transcript: "Hello, this is calling regarding your medical debt...",
			Cost:       0.12, Satisfaction: rating(4.2),
		},
		{
			ID: "call-002", PatientID: "601000", PatientName: "Mary Smith", ContactNumber: "+15554181945",
			CallDate: domain.MustDate("2025-01-09T11:15:00Z"), Duration: 95,
			Outcome: domain.OutcomeNoAnswer, Status: "completed", AgentType: "debt_collection",
			CampaignID: "camp-001", Notes: "Voicemail left, will retry tomorrow",
			Transcript: "This call went to voicemail...",
			Cost:       0.08,
		},
		{
			ID: "call-003", PatientID: "601001", PatientName: "James Brown", ContactNumber: "+15554181946",
			CallDate: domain.MustDate("2025-01-09T14:45:00Z"), Duration: 240,
			Outcome: domain.OutcomeInformationRequested, Status: "completed", AgentType: "customer_service",
			CampaignID: "camp-001", Notes: "Patient requested payment options information",
			Transcript: "Patient inquired about available payment methods...",
			Cost:       0.15, Satisfaction: rating(4.5),
		},
		{
			ID: "call-004", PatientID: "601002", PatientName: "Lisa Johnson", ContactNumber: "+15554181947",
			CallDate: domain.MustDate("2025-01-09T16:20:00Z"), Duration: 320,
			Outcome: domain.OutcomePaymentCompleted, Status: "completed", AgentType: "debt_collection",
			CampaignID: "camp-001", Notes: "Full payment received via credit card",
			Transcript: "Payment processed successfully...",
			Cost:       0.18, Satisfaction: rating(4.8),
		},
	}
}

// CallLogsByPatient returns the seed call logs for one patient.
func CallLogsByPatient(patientID string) []domain.CallLog {
	var out []domain.CallLog
	for _, c := range CallLogs() {
		if c.PatientID == patientID {
			out = append(out, c)
		}
	}
	return out
}

// CallLogsByCampaign returns the seed call logs for one campaign.
func CallLogsByCampaign(campaignID string) []domain.CallLog {
	var out []domain.CallLog
	for _, c := range CallLogs() {
		if c.CampaignID == campaignID {
			out = append(out, c)
		}
	}
	return out
}
