package query

import (
	"time"

	"github.com/ratulalahy/med-debt-collector/internal/domain"
)

func date(d domain.Date) (time.Time, bool) { return d.Time, !d.IsZero() }

func nullableDate(d *domain.Date) (time.Time, bool) {
	if d == nil {
		return time.Time{}, false
	}
	return date(*d)
}

var priorityRank = map[domain.Priority]float64{
	domain.PriorityUrgent: 0,
	domain.PriorityHigh:   1,
	domain.PriorityMedium: 2,
	domain.PriorityLow:    3,
}

func rank(p domain.Priority) (float64, bool) {
	r, ok := priorityRank[p]
	return r, ok
}

// PatientSchema searches resident and contact names, id and facility.
func PatientSchema() *Schema[domain.Patient] {
	return NewSchema[domain.Patient]().
		Searchable("id", func(p domain.Patient) string { return p.ID }).
		Searchable("residentFirstName", func(p domain.Patient) string { return p.ResidentFirstName }).
		Searchable("residentLastName", func(p domain.Patient) string { return p.ResidentLastName }).
		Searchable("contactFirstName", func(p domain.Patient) string { return p.ContactFirstName }).
		Searchable("contactLastName", func(p domain.Patient) string { return p.ContactLastName }).
		Searchable("facilityName", func(p domain.Patient) string { return p.FacilityName }).
		With(
			StringField("id", func(p domain.Patient) string { return p.ID }),
			StringField("name", domain.Patient.FullName),
			StringField("residentFirstName", func(p domain.Patient) string { return p.ResidentFirstName }),
			StringField("residentLastName", func(p domain.Patient) string { return p.ResidentLastName }),
			StringField("status", func(p domain.Patient) string { return string(p.Status) }),
			StringField("priority", func(p domain.Patient) string { return string(p.Priority) }),
			NullableNumberField("priorityRank", func(p domain.Patient) (float64, bool) { return rank(p.Priority) }),
			StringField("facilityName", func(p domain.Patient) string { return p.FacilityName }),
			StringField("payerDesc", func(p domain.Patient) string { return p.PayerDesc }),
			NumberField("balance", func(p domain.Patient) float64 { return p.Balance }),
			NumberField("totalCalls", func(p domain.Patient) float64 { return float64(p.TotalCalls) }),
			NumberField("successfulContacts", func(p domain.Patient) float64 { return float64(p.SuccessfulContacts) }),
			TimeField("dueDate", func(p domain.Patient) (time.Time, bool) { return date(p.DueDate) }),
			TimeField("lastContact", func(p domain.Patient) (time.Time, bool) { return nullableDate(p.LastContact) }),
			TimeField("nextScheduled", func(p domain.Patient) (time.Time, bool) { return nullableDate(p.NextScheduled) }),
		)
}

// CampaignSchema searches name, description and agent type.
func CampaignSchema() *Schema[domain.Campaign] {
	return NewSchema[domain.Campaign]().
		Searchable("name", func(c domain.Campaign) string { return c.Name }).
		Searchable("description", func(c domain.Campaign) string { return c.Description }).
		Searchable("agentType", func(c domain.Campaign) string { return c.AgentType }).
		With(
			StringField("id", func(c domain.Campaign) string { return c.ID }),
			StringField("name", func(c domain.Campaign) string { return c.Name }),
			StringField("status", func(c domain.Campaign) string { return string(c.Status) }),
			StringField("priority", func(c domain.Campaign) string { return string(c.Priority) }),
			StringField("agentType", func(c domain.Campaign) string { return c.AgentType }),
			NumberField("totalPatients", func(c domain.Campaign) float64 { return float64(c.TotalPatients) }),
			NumberField("callsCompleted", func(c domain.Campaign) float64 { return float64(c.CallsCompleted) }),
			NumberField("successRate", func(c domain.Campaign) float64 { return c.SuccessRate }),
			NumberField("collectionRate", func(c domain.Campaign) float64 { return c.CollectionRate }),
			NumberField("totalRecovered", func(c domain.Campaign) float64 { return c.TotalRecovered }),
			TimeField("startDate", func(c domain.Campaign) (time.Time, bool) { return date(c.StartDate) }),
			TimeField("endDate", func(c domain.Campaign) (time.Time, bool) { return date(c.EndDate) }),
		)
}

// CallLogSchema searches patient name, number, notes and outcome.
func CallLogSchema() *Schema[domain.CallLog] {
	return NewSchema[domain.CallLog]().
		Searchable("patientName", func(c domain.CallLog) string { return c.PatientName }).
		Searchable("contactNumber", func(c domain.CallLog) string { return c.ContactNumber }).
		Searchable("notes", func(c domain.CallLog) string { return c.Notes }).
		Searchable("outcome", func(c domain.CallLog) string { return string(c.Outcome) }).
		With(
			StringField("id", func(c domain.CallLog) string { return c.ID }),
			StringField("patientId", func(c domain.CallLog) string { return c.PatientID }),
			StringField("patientName", func(c domain.CallLog) string { return c.PatientName }),
			StringField("campaignId", func(c domain.CallLog) string { return c.CampaignID }),
			StringField("outcome", func(c domain.CallLog) string { return string(c.Outcome) }),
			StringField("status", func(c domain.CallLog) string { return c.Status }),
			StringField("agentType", func(c domain.CallLog) string { return c.AgentType }),
			NumberField("duration", func(c domain.CallLog) float64 { return float64(c.Duration) }),
			NumberField("cost", func(c domain.CallLog) float64 { return c.Cost }),
			NullableNumberField("satisfaction", func(c domain.CallLog) (float64, bool) {
				if c.Satisfaction == nil {
					return 0, false
				}
				return *c.Satisfaction, true
			}),
			TimeField("callDate", func(c domain.CallLog) (time.Time, bool) { return date(c.CallDate) }),
		)
}

// QueueSchema searches patient name and phone number.
func QueueSchema() *Schema[domain.CallQueueEntry] {
	return NewSchema[domain.CallQueueEntry]().
		Searchable("patientName", func(e domain.CallQueueEntry) string { return e.PatientName }).
		Searchable("phoneNumber", func(e domain.CallQueueEntry) string { return e.PhoneNumber }).
		With(
			StringField("id", func(e domain.CallQueueEntry) string { return e.ID }),
			StringField("patientName", func(e domain.CallQueueEntry) string { return e.PatientName }),
			StringField("status", func(e domain.CallQueueEntry) string { return string(e.Status) }),
			StringField("priority", func(e domain.CallQueueEntry) string { return string(e.Priority) }),
			NullableNumberField("priorityRank", func(e domain.CallQueueEntry) (float64, bool) { return rank(e.Priority) }),
			StringField("assignedAgent", func(e domain.CallQueueEntry) string { return e.AssignedAgent }),
			NumberField("balance", func(e domain.CallQueueEntry) float64 { return e.Balance }),
			NumberField("attempts", func(e domain.CallQueueEntry) float64 { return float64(e.Attempts) }),
			NullableNumberField("queuePosition", func(e domain.CallQueueEntry) (float64, bool) {
				if e.QueuePosition == nil {
					return 0, false
				}
				return float64(*e.QueuePosition), true
			}),
			TimeField("estimatedCallTime", func(e domain.CallQueueEntry) (time.Time, bool) { return nullableDate(e.EstimatedCallTime) }),
			TimeField("lastCallAttempt", func(e domain.CallQueueEntry) (time.Time, bool) { return nullableDate(e.LastCallAttempt) }),
		)
}

// EventSchema searches title, patient name and description.
func EventSchema() *Schema[domain.CalendarEvent] {
	patientName := func(e domain.CalendarEvent) string {
		if e.PatientName == nil {
			return ""
		}
		return *e.PatientName
	}
	return NewSchema[domain.CalendarEvent]().
		Searchable("title", func(e domain.CalendarEvent) string { return e.Title }).
		Searchable("patientName", patientName).
		Searchable("description", func(e domain.CalendarEvent) string { return e.Description }).
		With(
			StringField("id", func(e domain.CalendarEvent) string { return e.ID }),
			StringField("title", func(e domain.CalendarEvent) string { return e.Title }),
			StringField("patientName", patientName),
			StringField("type", func(e domain.CalendarEvent) string { return e.Type }),
			StringField("category", func(e domain.CalendarEvent) string { return e.Category }),
			StringField("status", func(e domain.CalendarEvent) string { return e.Status }),
			StringField("priority", func(e domain.CalendarEvent) string { return string(e.Priority) }),
			NullableNumberField("priorityRank", func(e domain.CalendarEvent) (float64, bool) { return rank(e.Priority) }),
			StringField("assignedTo", func(e domain.CalendarEvent) string { return e.AssignedTo }),
			StringField("time", func(e domain.CalendarEvent) string { return e.Time }),
			NumberField("duration", func(e domain.CalendarEvent) float64 { return float64(e.Duration) }),
			TimeField("start", func(e domain.CalendarEvent) (time.Time, bool) { return e.Start(), !e.Date.IsZero() }),
			TimeField("date", func(e domain.CalendarEvent) (time.Time, bool) { return date(e.Date) }),
		)
}

// TaskSchema searches title and description.
func TaskSchema() *Schema[domain.Task] {
	return NewSchema[domain.Task]().
		Searchable("title", func(t domain.Task) string { return t.Title }).
		Searchable("description", func(t domain.Task) string { return t.Description }).
		With(
			StringField("id", func(t domain.Task) string { return t.ID }),
			StringField("title", func(t domain.Task) string { return t.Title }),
			StringField("type", func(t domain.Task) string { return t.Type }),
			StringField("category", func(t domain.Task) string { return t.Category }),
			StringField("status", func(t domain.Task) string { return t.Status }),
			StringField("priority", func(t domain.Task) string { return string(t.Priority) }),
			NullableNumberField("priorityRank", func(t domain.Task) (float64, bool) { return rank(t.Priority) }),
			StringField("assignedTo", func(t domain.Task) string { return t.AssignedTo }),
			NumberField("progress", func(t domain.Task) float64 { return float64(t.Progress) }),
			TimeField("dueDate", func(t domain.Task) (time.Time, bool) { return date(t.DueDate) }),
		)
}

// IncomingCallSchema searches patient name, phone number and call note.
func IncomingCallSchema() *Schema[domain.IncomingCall] {
	return NewSchema[domain.IncomingCall]().
		Searchable("patientName", func(c domain.IncomingCall) string { return c.PatientName }).
		Searchable("phoneNumber", func(c domain.IncomingCall) string { return c.PhoneNumber }).
		Searchable("callNote", func(c domain.IncomingCall) string { return c.CallNote }).
		With(
			StringField("id", func(c domain.IncomingCall) string { return c.ID }),
			StringField("patientName", func(c domain.IncomingCall) string { return c.PatientName }),
			StringField("status", func(c domain.IncomingCall) string { return c.Status }),
			StringField("priority", func(c domain.IncomingCall) string { return string(c.Priority) }),
			StringField("outcome", func(c domain.IncomingCall) string { return c.Outcome }),
			NumberField("duration", func(c domain.IncomingCall) float64 { return float64(c.Duration) }),
			NumberField("balance", func(c domain.IncomingCall) float64 { return c.Balance }),
			TimeField("callTime", func(c domain.IncomingCall) (time.Time, bool) { return date(c.CallTime) }),
		)
}
