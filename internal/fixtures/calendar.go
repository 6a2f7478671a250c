package fixtures

import "github.com/ratulalahy/med-debt-collector/internal/domain"

func str(s string) *string { return &s }

// Events returns the six seed calendar events.
func Events() []domain.CalendarEvent {
	return []domain.CalendarEvent{
		{
			ID: "CAL001", Title: "Follow-up Call - John Doe", Type: "follow_up_call",
			Date: domain.MustDate("2025-01-09"), Time: "14:30", Duration: 30,
			Status: "scheduled", Priority: domain.PriorityHigh,
			PatientID: str("600999"), PatientName: str("John Doe"),
			Category: "customer_contact", AssignedTo: "AI Agent 001",
			Description: "Follow up on payment promise made yesterday",
		},
		{
			ID: "CAL002", Title: "Payment Due - Mary Smith", Type: "payment_due",
			Date: domain.MustDate("2025-01-10"), Time: "09:00", Duration: 0,
			Status: "pending", Priority: domain.PriorityUrgent,
			PatientID: str("601000"), PatientName: str("Mary Smith"),
			Category: "payment_deadline", AssignedTo: "Human Agent",
			Description: "Payment due date - escalate if not received",
			Notes:       "Customer was hostile in last call - handle with care",
		},
		{
			ID: "CAL003", Title: "Weekly Team Meeting", Type: "team_meeting",
			Date: domain.MustDate("2025-01-10"), Time: "10:00", Duration: 60,
			Status: "scheduled", Priority: domain.PriorityMedium,
			Category: "internal_meeting", AssignedTo: "All Agents", Recurring: true,
			Description: "Weekly debt collection team standup and strategy review",
			Notes:       "Discuss difficult cases and new strategies",
		},
		{
			ID: "CAL004", Title: "Legal Review - James Brown Case", Type: "legal_review",
			Date: domain.MustDate("2025-01-11"), Time: "15:00", Duration: 45,
			Status: "scheduled", Priority: domain.PriorityHigh,
			PatientID: str("601001"), PatientName: str("James Brown"),
			Category: "legal_action", AssignedTo: "Legal Team",
			Description: "Review case for potential legal action",
			Notes:       "Multiple failed payment attempts - consider legal options",
		},
		{
			ID: "CAL005", Title: "Campaign Review - Q1 Strategy", Type: "campaign_review",
			Date: domain.MustDate("2025-01-12"), Time: "11:00", Duration: 90,
			Status: "scheduled", Priority: domain.PriorityMedium,
			Category: "strategy_planning", AssignedTo: "Campaign Team",
			Description: "Review Q1 campaign performance and plan Q2",
			Notes:       "Analyze conversion rates and optimize messaging",
		},
		{
			ID: "CAL006", Title: "Patient Callback - Sarah Wilson", Type: "callback_appointment",
			Date: domain.MustDate("2025-01-12"), Time: "14:00", Duration: 20,
			Status: "confirmed", Priority: domain.PriorityMedium,
			PatientID: str("601002"), PatientName: str("Sarah Wilson"),
			Category: "customer_contact", AssignedTo: "Human Agent",
			Description: "Patient requested callback to discuss payment options",
			Notes:       "Patient prefers email communication but agreed to this call",
		},
	}
}

// Tasks returns the three seed back-office tasks.
func Tasks() []domain.Task {
	return []domain.Task{
		{
			ID: "TASK001", Title: "Update payment plan templates", Type: "administrative",
			Priority: domain.PriorityMedium, Status: "in_progress", DueDate: domain.MustDate("2025-01-11"),
			AssignedTo: "Admin", CreatedBy: "Manager", Category: "process_improvement",
			Description:    "Update payment plan templates to include new terms",
			EstimatedHours: 2, ActualHours: 1.5, Tags: []string{"templates", "payment_plans"}, Progress: 75,
		},
		{
			ID: "TASK002", Title: "Review escalation procedures", Type: "policy_review",
			Priority: domain.PriorityHigh, Status: "pending", DueDate: domain.MustDate("2025-01-10"),
			AssignedTo: "Supervisor", CreatedBy: "Manager", Category: "policy_update",
			Description:    "Review and update escalation procedures for difficult customers",
			EstimatedHours: 4, Tags: []string{"escalation", "procedures"},
		},
		{
			ID: "TASK003", Title: "AI Agent performance analysis", Type: "analysis",
			Priority: domain.PriorityMedium, Status: "completed", DueDate: domain.MustDate("2025-01-09"),
			AssignedTo: "Analytics Team", CreatedBy: "Manager", Category: "performance_analysis",
			Description:    "Analyze AI agent performance vs human agents",
			EstimatedHours: 6, ActualHours: 5.5, Tags: []string{"ai_agents", "performance", "analytics"}, Progress: 100,
		},
	}
}
