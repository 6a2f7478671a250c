package domain

import "time"

// CalendarEvent is a scheduled appointment, deadline or meeting.
type CalendarEvent struct {
	ID          string   `json:"id" validate:"required"`
	Title       string   `json:"title" validate:"required"`
	Type        string   `json:"type"`
	Date        Date     `json:"date"`
	Time        string   `json:"time" validate:"omitempty,datetime=15:04"`
	Duration    int      `json:"duration" validate:"gte=0"`
	Status      string   `json:"status"`
	Priority    Priority `json:"priority" validate:"oneof=urgent high medium low"`
	PatientID   *string  `json:"patientId"`
	PatientName *string  `json:"patientName"`
	Category    string   `json:"category"`
	Description string   `json:"description"`
	AssignedTo  string   `json:"assignedTo"`
	Recurring   bool     `json:"isRecurring"`
	Notes       string   `json:"notes"`
}

// Start combines Date and Time into an instant in UTC.
func (e CalendarEvent) Start() time.Time {
	t, err := time.Parse("15:04", e.Time)
	if err != nil {
		return e.Date.Time
	}
	y, m, d := e.Date.Date()
	return time.Date(y, m, d, t.Hour(), t.Minute(), 0, 0, time.UTC)
}

// Clone returns a deep copy.
func (e CalendarEvent) Clone() CalendarEvent {
	if e.PatientID != nil {
		id := *e.PatientID
		e.PatientID = &id
	}
	if e.PatientName != nil {
		n := *e.PatientName
		e.PatientName = &n
	}
	return e
}

// Task is a back-office work item.
type Task struct {
	ID             string   `json:"id" validate:"required"`
	Title          string   `json:"title" validate:"required"`
	Type           string   `json:"type"`
	Priority       Priority `json:"priority" validate:"oneof=urgent high medium low"`
	Status         string   `json:"status"`
	DueDate        Date     `json:"dueDate"`
	AssignedTo     string   `json:"assignedTo"`
	CreatedBy      string   `json:"createdBy"`
	Category       string   `json:"category"`
	Description    string   `json:"description"`
	EstimatedHours float64  `json:"estimatedHours" validate:"gte=0"`
	ActualHours    float64  `json:"actualHours" validate:"gte=0"`
	Tags           []string `json:"tags"`
	Progress       int      `json:"progress" validate:"gte=0,lte=100"`
}

// Overdue reports whether the task is past due and not completed.
func (t Task) Overdue(now time.Time) bool {
	return t.Status != "completed" && t.DueDate.Before(now)
}

// Clone returns a deep copy.
func (t Task) Clone() Task {
	t.Tags = append([]string(nil), t.Tags...)
	return t
}
