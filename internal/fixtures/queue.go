package fixtures

import "github.com/ratulalahy/med-debt-collector/internal/domain"

func position(n int) *int { return &n }

// Queue returns the four seed call queue entries, CQ001 to CQ004.
func Queue() []domain.CallQueueEntry {
	return []domain.CallQueueEntry{
		{
			ID: "CQ001", PatientID: "600999", PatientName: "John Doe", PhoneNumber: "+15554181944",
			Balance: 150.75, Priority: domain.PriorityHigh, Status: domain.QueueCalling,
			QueuePosition:     position(1),
			EstimatedCallTime: domain.DatePtr("2025-01-09T14:30:00Z"),
			LastCallAttempt:   domain.DatePtr("2025-01-09T14:15:00Z"),
			Attempts:          3, MaxAttempts: 5, AssignedAgent: "AI Agent 001",
			CallHistory: []domain.CallAttempt{
				{ID: "CH001", Date: domain.MustDate("2025-01-09T14:15:00Z"), Duration: 180,
					Outcome: domain.OutcomeNoAnswer, Notes: "Phone rang but no answer",
					Agent: "AI Agent 001", Type: "automated"},
				{ID: "CH002", Date: domain.MustDate("2025-01-08T16:20:00Z"), Duration: 240,
					Outcome: domain.OutcomeSuccessful, Notes: "Patient agreed to payment plan",
					Agent: "AI Agent 001", Type: "automated", PaymentCommitment: 50},
			},
		},
		{
			ID: "CQ002", PatientID: "601000", PatientName: "Mary Smith", PhoneNumber: "+15554181945",
			Balance: 320.50, Priority: domain.PriorityMedium, Status: domain.QueueQueued,
			QueuePosition:     position(2),
			EstimatedCallTime: domain.DatePtr("2025-01-09T14:45:00Z"),
			LastCallAttempt:   domain.DatePtr("2025-01-07T10:30:00Z"),
			Attempts:          2, MaxAttempts: 5, AssignedAgent: "AI Agent 002",
			CallHistory: []domain.CallAttempt{
				{ID: "CH003", Date: domain.MustDate("2025-01-07T10:30:00Z"), Duration: 150,
					Outcome: domain.OutcomeBusy, Notes: "Line was busy",
					Agent: "AI Agent 002", Type: "automated"},
			},
		},
		{
			// scheduled entries hold no queue position
			ID: "CQ003", PatientID: "601001", PatientName: "James Brown", PhoneNumber: "+15554181946",
			Balance: 85.25, Priority: domain.PriorityLow, Status: domain.QueueScheduled,
			EstimatedCallTime: domain.DatePtr("2025-01-09T15:00:00Z"),
			LastCallAttempt:   domain.DatePtr("2025-01-05T09:15:00Z"),
			Attempts:          1, MaxAttempts: 5, AssignedAgent: "AI Agent 001",
			CallHistory: []domain.CallAttempt{
				{ID: "CH004", Date: domain.MustDate("2025-01-05T09:15:00Z"), Duration: 300,
					Outcome: domain.OutcomeCallbackRequested, Notes: "Patient requested callback after 2 PM",
					Agent: "AI Agent 001", Type: "automated"},
			},
		},
		{
			ID: "CQ004", PatientID: "601002", PatientName: "Lisa Johnson", PhoneNumber: "+15554181947",
			Balance: 275.00, Priority: domain.PriorityHigh, Status: domain.QueueCompleted,
			LastCallAttempt: domain.DatePtr("2025-01-09T13:45:00Z"),
			Attempts:        4, MaxAttempts: 5, AssignedAgent: "AI Agent 002",
			CallHistory: []domain.CallAttempt{
				{ID: "CH005", Date: domain.MustDate("2025-01-09T13:45:00Z"), Duration: 420,
					Outcome: domain.OutcomeSuccessful, Notes: "Payment arrangement made - $100/month for 3 months",
					Agent: "AI Agent 002", Type: "automated", PaymentCommitment: 100},
			},
		},
	}
}
