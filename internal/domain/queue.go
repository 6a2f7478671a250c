package domain

// QueueStatus is the dialing state of a call queue entry.
type QueueStatus string

const (
	QueueQueued    QueueStatus = "queued"
	QueueCalling   QueueStatus = "calling"
	QueueScheduled QueueStatus = "scheduled"
	QueueCompleted QueueStatus = "completed"
	QueueFailed    QueueStatus = "failed"
)

// Positioned reports whether entries in this status hold a queue position.
func (s QueueStatus) Positioned() bool {
	return s == QueueQueued || s == QueueCalling
}

// CallAttempt is one entry of a queue entry's call history.
type CallAttempt struct {
	ID                string      `json:"id"`
	Date              Date        `json:"date"`
	Duration          int         `json:"duration"`
	Outcome           CallOutcome `json:"outcome"`
	Notes             string      `json:"notes"`
	Agent             string      `json:"agent"`
	Type              string      `json:"type"`
	PaymentCommitment float64     `json:"paymentCommitment,omitempty"`
}

// CallQueueEntry is a patient waiting to be dialed.
type CallQueueEntry struct {
	ID                string        `json:"id" validate:"required"`
	PatientID         string        `json:"patientId" validate:"required"`
	PatientName       string        `json:"patientName"`
	PhoneNumber       string        `json:"phoneNumber"`
	Balance           float64       `json:"balance" validate:"gte=0"`
	Priority          Priority      `json:"priority" validate:"oneof=high medium low"`
	Status            QueueStatus   `json:"status" validate:"oneof=queued calling scheduled completed failed"`
	QueuePosition     *int          `json:"queuePosition"`
	EstimatedCallTime *Date         `json:"estimatedCallTime"`
	LastCallAttempt   *Date         `json:"lastCallAttempt"`
	Attempts          int           `json:"attempts" validate:"gte=0,ltefield=MaxAttempts"`
	MaxAttempts       int           `json:"maxAttempts" validate:"gte=1"`
	AssignedAgent     string        `json:"assignedAgent"`
	CallHistory       []CallAttempt `json:"callHistory"`
}

// SetStatus returns the entry moved to status. Leaving queued/calling drops the
// queue position.
func (e CallQueueEntry) SetStatus(status QueueStatus) CallQueueEntry {
	e = e.Clone()
	e.Status = status
	if !status.Positioned() {
		e.QueuePosition = nil
	}
	return e
}

// SetPriority returns the entry with an overridden priority.
func (e CallQueueEntry) SetPriority(p Priority) CallQueueEntry {
	e = e.Clone()
	e.Priority = p
	return e
}

// Clone returns a deep copy.
func (e CallQueueEntry) Clone() CallQueueEntry {
	if e.QueuePosition != nil {
		pos := *e.QueuePosition
		e.QueuePosition = &pos
	}
	e.EstimatedCallTime = e.EstimatedCallTime.Clone()
	e.LastCallAttempt = e.LastCallAttempt.Clone()
	e.CallHistory = append([]CallAttempt(nil), e.CallHistory...)
	return e
}
