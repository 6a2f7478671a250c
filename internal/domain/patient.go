package domain

// PatientStatus is the account lifecycle state of a patient.
type PatientStatus string

const (
	PatientActive   PatientStatus = "active"
	PatientPending  PatientStatus = "pending"
	PatientResolved PatientStatus = "resolved"
	PatientInactive PatientStatus = "inactive"
)

// Priority is shared by patients, campaigns, queue entries and tasks.
type Priority string

const (
	PriorityUrgent Priority = "urgent"
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Patient is a resident account with an outstanding balance.
type Patient struct {
	ID                  string        `json:"id" validate:"required"`
	ResidentFirstName   string        `json:"residentFirstName" validate:"required"`
	ResidentLastName    string        `json:"residentLastName" validate:"required"`
	DateOfBirth         Date          `json:"dateOfBirth"`
	Balance             float64       `json:"balance" validate:"gte=0"`
	DueDate             Date          `json:"dueDate"`
	FacilityName        string        `json:"facilityName"`
	FacilityCode        string        `json:"facilityCode"`
	PayerDesc           string        `json:"payerDesc"`
	ContactFirstName    string        `json:"contactFirstName"`
	ContactLastName     string        `json:"contactLastName"`
	ContactNumber       string        `json:"contactNumber"`
	ContactEmail        string        `json:"contactEmail" validate:"omitempty,email"`
	Status              PatientStatus `json:"status" validate:"oneof=active pending resolved inactive"`
	Priority            Priority      `json:"priority" validate:"oneof=high medium low"`
	LastContact         *Date         `json:"lastContact"`
	NextScheduled       *Date         `json:"nextScheduled"`
	TotalCalls          int           `json:"totalCalls" validate:"gte=0"`
	SuccessfulContacts  int           `json:"successfulContacts" validate:"gte=0,ltefield=TotalCalls"`
	PaymentArrangements int           `json:"paymentArrangements" validate:"gte=0"`
	Notes               string        `json:"notes"`
}

// FullName is the resident's display name.
func (p Patient) FullName() string {
	return p.ResidentFirstName + " " + p.ResidentLastName
}

// ContactName is the responsible party's display name.
func (p Patient) ContactName() string {
	return p.ContactFirstName + " " + p.ContactLastName
}

// Clone returns a copy that shares no mutable state with p.
func (p Patient) Clone() Patient {
	p.LastContact = p.LastContact.Clone()
	p.NextScheduled = p.NextScheduled.Clone()
	return p
}
