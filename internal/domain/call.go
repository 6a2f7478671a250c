package domain

// CallOutcome is the recorded result of an outbound call.
type CallOutcome string

const (
	OutcomePaymentArranged      CallOutcome = "payment_arranged"
	OutcomePaymentCompleted     CallOutcome = "payment_completed"
	OutcomeNoAnswer             CallOutcome = "no_answer"
	OutcomeInformationRequested CallOutcome = "information_requested"
	OutcomeBusy                 CallOutcome = "busy"
	OutcomeCallbackRequested    CallOutcome = "callback_requested"
	OutcomeDisconnected         CallOutcome = "disconnected"
	OutcomeSuccessful           CallOutcome = "successful"
)

// IsPayment reports whether the outcome secured a payment or an arrangement.
func (o CallOutcome) IsPayment() bool {
	return o == OutcomePaymentArranged || o == OutcomePaymentCompleted
}

// CallLog is one completed outbound call.
type CallLog struct {
	ID            string      `json:"id" validate:"required"`
	PatientID     string      `json:"patientId" validate:"required"`
	PatientName   string      `json:"patientName"`
	ContactNumber string      `json:"contactNumber"`
	CallDate      Date        `json:"callDate"`
	Duration      int         `json:"duration" validate:"gte=0"`
	Outcome       CallOutcome `json:"outcome" validate:"required"`
	Status        string      `json:"status"`
	AgentType     string      `json:"agentType"`
	CampaignID    string      `json:"campaignId"`
	Notes         string      `json:"notes"`
	Transcript    string      `json:"transcript,omitempty"`
	Cost          float64     `json:"cost" validate:"gte=0"`
	Satisfaction  *float64    `json:"satisfaction"`
}

// Clone returns a copy that shares no mutable state with c.
func (c CallLog) Clone() CallLog {
	if c.Satisfaction != nil {
		s := *c.Satisfaction
		c.Satisfaction = &s
	}
	return c
}

// ContactPreferences are the caller's stated contact rules.
type ContactPreferences struct {
	PreferredContactMethod string   `json:"preferredContactMethod"`
	CallbackRequested      bool     `json:"callbackRequested"`
	CallbackTime           *Date    `json:"callbackTime"`
	NoCallTimes            []string `json:"noCallTimes"`
	WantsAgentCall         bool     `json:"wantsAgentCall"`
	PaymentPlan            bool     `json:"paymentPlan"`
}

// AgentNote is a timestamped remark attached to an incoming call.
type AgentNote struct {
	ID        string `json:"id"`
	Timestamp Date   `json:"timestamp"`
	Agent     string `json:"agent"`
	Note      string `json:"note"`
	Category  string `json:"category"`
}

// CallAlert flags an incoming call for follow-up.
type CallAlert struct {
	ID       string   `json:"id"`
	Type     string   `json:"type"`
	Message  string   `json:"message"`
	Priority Priority `json:"priority"`
	DueDate  *Date    `json:"dueDate"`
}

// ScheduledCallback is a promised return call.
type ScheduledCallback struct {
	ID            string `json:"id"`
	ScheduledTime Date   `json:"scheduledTime"`
	Reason        string `json:"reason"`
	Status        string `json:"status"`
}

// IncomingCall is a call placed by a patient or their contact.
type IncomingCall struct {
	ID                 string              `json:"id" validate:"required"`
	PatientID          string              `json:"patientId"`
	PatientName        string              `json:"patientName"`
	PhoneNumber        string              `json:"phoneNumber"`
	CallTime           Date                `json:"callTime"`
	Duration           int                 `json:"duration" validate:"gte=0"`
	CallType           string              `json:"callType"`
	Status             string              `json:"status"`
	Outcome            string              `json:"outcome"`
	Priority           Priority            `json:"priority"`
	Balance            float64             `json:"balance" validate:"gte=0"`
	CallNote           string              `json:"callNote"`
	Preferences        ContactPreferences  `json:"customerPreferences"`
	AgentNotes         []AgentNote         `json:"agentNotes"`
	Alerts             []CallAlert         `json:"alerts"`
	ScheduledCallbacks []ScheduledCallback `json:"scheduledCallbacks"`
}

// HasAlert reports whether any alert carries one of the given priorities.
func (c IncomingCall) HasAlert(priorities ...Priority) bool {
	for _, a := range c.Alerts {
		for _, p := range priorities {
			if a.Priority == p {
				return true
			}
		}
	}
	return false
}

// Clone returns a deep copy.
func (c IncomingCall) Clone() IncomingCall {
	c.Preferences.CallbackTime = c.Preferences.CallbackTime.Clone()
	c.Preferences.NoCallTimes = append([]string(nil), c.Preferences.NoCallTimes...)
	c.AgentNotes = append([]AgentNote(nil), c.AgentNotes...)
	alerts := make([]CallAlert, len(c.Alerts))
	for i, a := range c.Alerts {
		a.DueDate = a.DueDate.Clone()
		alerts[i] = a
	}
	c.Alerts = alerts
	c.ScheduledCallbacks = append([]ScheduledCallback(nil), c.ScheduledCallbacks...)
	return c
}
