package domain

// ActivityItem is one line of the recent-activity feed.
type ActivityItem struct {
	ID          string   `json:"id"`
	Timestamp   Date     `json:"timestamp"`
	Type        string   `json:"type"`
	Description string   `json:"description"`
	PatientID   string   `json:"patientId,omitempty"`
	PatientName string   `json:"patientName,omitempty"`
	Amount      *float64 `json:"amount,omitempty"`
	Status      string   `json:"status"`
}

// DashboardStats is the headline summary shown on the dashboard.
type DashboardStats struct {
	TotalPatients           int            `json:"totalPatients"`
	ActivePatients          int            `json:"activePatients"`
	TotalOutstandingBalance float64        `json:"totalOutstandingBalance"`
	TotalCollected          float64        `json:"totalCollected"`
	CallsToday              int            `json:"callsToday"`
	SuccessfulContactsToday int            `json:"successfulContactsToday"`
	PaymentArrangements     int            `json:"paymentArrangements"`
	SuccessRate             float64        `json:"successRate"`
	AverageCallDuration     float64        `json:"averageCallDuration"`
	TopPerformingCampaign   string         `json:"topPerformingCampaign"`
	RecentActivity          []ActivityItem `json:"recentActivity"`
}

// Clone returns a deep copy.
func (s DashboardStats) Clone() DashboardStats {
	s.RecentActivity = append([]ActivityItem(nil), s.RecentActivity...)
	return s
}
