package fixtures

import "github.com/ratulalahy/med-debt-collector/internal/domain"

// IncomingCalls returns the four seed inbound calls, IC001 to IC004.
func IncomingCalls() []domain.IncomingCall {
	return []domain.IncomingCall{
		{
			ID: "IC001", PatientID: "600999", PatientName: "John Doe", PhoneNumber: "+15554181944",
			CallTime: domain.MustDate("2025-01-09T14:30:00Z"), Duration: 180, CallType: "incoming",
			Status: "completed", Outcome: "payment_promise", Priority: domain.PriorityHigh, Balance: 150.75,
			CallNote: "Customer promised to pay $50 by Friday. Prefers SMS reminders.",
			Preferences: domain.ContactPreferences{
				PreferredContactMethod: "SMS", CallbackRequested: true,
				CallbackTime: domain.DatePtr("2025-01-12T10:00:00Z"),
				NoCallTimes:  []string{"morning"}, PaymentPlan: true,
			},
			AgentNotes: []domain.AgentNote{
				{ID: "N001", Timestamp: domain.MustDate("2025-01-09T14:35:00Z"), Agent: "AI Agent 001",
					Note: "Customer was cooperative and agreed to payment plan", Category: "positive"},
			},
			Alerts: []domain.CallAlert{
				{ID: "A001", Type: "payment_promise", Message: "Payment promised for 2025-01-12",
					Priority: domain.PriorityMedium, DueDate: domain.DatePtr("2025-01-12T23:59:59Z")},
			},
			ScheduledCallbacks: []domain.ScheduledCallback{
				{ID: "CB001", ScheduledTime: domain.MustDate("2025-01-12T10:00:00Z"),
					Reason: "Follow up on payment promise", Status: "scheduled"},
			},
		},
		{
			ID: "IC002", PatientID: "601000", PatientName: "Mary Smith", PhoneNumber: "+15554181945",
			CallTime: domain.MustDate("2025-01-09T13:15:00Z"), Duration: 90, CallType: "incoming",
			Status: "completed", Outcome: "angry_customer", Priority: domain.PriorityHigh, Balance: 320.50,
			CallNote: "Customer was very upset. Demands to speak to human agent only. Threatened legal action.",
			Preferences: domain.ContactPreferences{
				PreferredContactMethod: "phone", CallbackRequested: true,
				CallbackTime: domain.DatePtr("2025-01-10T14:00:00Z"),
				NoCallTimes:  []string{"evening"}, WantsAgentCall: true,
			},
			AgentNotes: []domain.AgentNote{
				{ID: "N002", Timestamp: domain.MustDate("2025-01-09T13:20:00Z"), Agent: "AI Agent 002",
					Note: "Customer extremely hostile. Escalate to human agent immediately.", Category: "urgent"},
			},
			Alerts: []domain.CallAlert{
				{ID: "A002", Type: "angry_customer", Message: "Customer hostile - HUMAN AGENT ONLY", Priority: domain.PriorityUrgent},
				{ID: "A003", Type: "legal_threat", Message: "Customer mentioned legal action", Priority: domain.PriorityHigh},
			},
			ScheduledCallbacks: []domain.ScheduledCallback{
				{ID: "CB002", ScheduledTime: domain.MustDate("2025-01-10T14:00:00Z"),
					Reason: "Escalation to human agent required", Status: "scheduled"},
			},
		},
		{
			ID: "IC003", PatientID: "601001", PatientName: "James Brown", PhoneNumber: "+15554181946",
			CallTime: domain.MustDate("2025-01-09T11:45:00Z"), Duration: 240, CallType: "incoming",
			Status: "completed", Outcome: "payment_made", Priority: domain.PriorityLow, Balance: 85.25,
			CallNote:    "Customer paid full amount over phone. Very satisfied with service.",
			Preferences: domain.ContactPreferences{PreferredContactMethod: "email", NoCallTimes: []string{}},
			AgentNotes: []domain.AgentNote{
				{ID: "N003", Timestamp: domain.MustDate("2025-01-09T11:50:00Z"), Agent: "AI Agent 001",
					Note: "Payment successful. Customer very pleased with AI service.", Category: "positive"},
			},
			Alerts: []domain.CallAlert{
				{ID: "A004", Type: "payment_received", Message: "Full payment received - case closed", Priority: domain.PriorityLow},
			},
			ScheduledCallbacks: []domain.ScheduledCallback{},
		},
		{
			ID: "IC004", PatientID: "601002", PatientName: "Sarah Wilson", PhoneNumber: "+15554181948",
			CallTime: domain.MustDate("2025-01-09T09:30:00Z"), Duration: 45, CallType: "incoming",
			Status: "completed", Outcome: "no_contact_request", Priority: domain.PriorityMedium, Balance: 200.00,
			CallNote:    "Customer requests NO further calls or SMS. Prefers email only. Disputes the charge.",
			Preferences: domain.ContactPreferences{PreferredContactMethod: "email", NoCallTimes: []string{"all"}},
			AgentNotes: []domain.AgentNote{
				{ID: "N004", Timestamp: domain.MustDate("2025-01-09T09:35:00Z"), Agent: "AI Agent 002",
					Note: "Customer disputes charge. Added to no-contact list for calls/SMS.", Category: "warning"},
			},
			Alerts: []domain.CallAlert{
				{ID: "A005", Type: "no_contact", Message: "NO CALLS/SMS - Email only contact", Priority: domain.PriorityHigh},
				{ID: "A006", Type: "dispute", Message: "Customer disputes the charge", Priority: domain.PriorityMedium},
			},
			ScheduledCallbacks: []domain.ScheduledCallback{},
		},
	}
}
