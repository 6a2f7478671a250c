// Package fixtures holds the seed records the dashboard runs against when no
// database or remote backend is configured. Every accessor returns a fresh
// copy, so callers may mutate the result freely.
package fixtures

import (
	"github.com/ratulalahy/med-debt-collector/internal/domain"
)

const facility = "Highland Manor of Elko Rehabilitation- SNF"

// Patients returns the five seed patient accounts, ids 600999 to 601003.
func Patients() []domain.Patient {
	return []domain.Patient{
		{
			ID: "600999", ResidentFirstName: "John", ResidentLastName: "Doe",
			DateOfBirth: domain.MustDate("1986-03-25"), Balance: 150.75, DueDate: domain.MustDate("2025-05-31"),
			FacilityName: facility, FacilityCode: "27", PayerDesc: "Medicaid Co-Insurance",
			ContactFirstName: "Jane", ContactLastName: "Doe",
			ContactNumber: "+15554181944", ContactEmail: "jane.doe@email.com",
			Status: domain.PatientActive, Priority: domain.PriorityHigh,
			LastContact: domain.DatePtr("2025-01-08"), NextScheduled: domain.DatePtr("2025-01-10"),
			TotalCalls: 5, SuccessfulContacts: 3, PaymentArrangements: 1,
			Notes: "Responsive to calls, payment plan established",
		},
		{
			ID: "601000", ResidentFirstName: "Mary", ResidentLastName: "Smith",
			DateOfBirth: domain.MustDate("1975-06-15"), Balance: 320.50, DueDate: domain.MustDate("2025-06-30"),
			FacilityName: facility, FacilityCode: "27", PayerDesc: "NEVADA MEDICAID",
			ContactFirstName: "Robert", ContactLastName: "Smith",
			ContactNumber: "+15554181945", ContactEmail: "robert.smith@email.com",
			Status: domain.PatientActive, Priority: domain.PriorityMedium,
			LastContact: domain.DatePtr("2025-01-07"), NextScheduled: domain.DatePtr("2025-01-12"),
			TotalCalls: 3, SuccessfulContacts: 2, PaymentArrangements: 0,
			Notes: "Requested payment plan options",
		},
		{
			ID: "601001", ResidentFirstName: "James", ResidentLastName: "Brown",
			DateOfBirth: domain.MustDate("1990-12-01"), Balance: 85.25, DueDate: domain.MustDate("2025-07-15"),
			FacilityName: facility, FacilityCode: "27", PayerDesc: "Medicaid Co-Insurance",
			ContactFirstName: "Sarah", ContactLastName: "Brown",
			ContactNumber: "+15554181946", ContactEmail: "sarah.brown@email.com",
			Status: domain.PatientPending, Priority: domain.PriorityLow,
			LastContact: domain.DatePtr("2025-01-05"), NextScheduled: domain.DatePtr("2025-01-15"),
			TotalCalls: 2, SuccessfulContacts: 1, PaymentArrangements: 0,
			Notes: "Initial contact made, follow-up scheduled",
		},
		{
			ID: "601002", ResidentFirstName: "Lisa", ResidentLastName: "Johnson",
			DateOfBirth: domain.MustDate("1982-09-20"), Balance: 275.00, DueDate: domain.MustDate("2025-08-01"),
			FacilityName: facility, FacilityCode: "27", PayerDesc: "Private Insurance",
			ContactFirstName: "Michael", ContactLastName: "Johnson",
			ContactNumber: "+15554181947", ContactEmail: "michael.johnson@email.com",
			Status: domain.PatientResolved, Priority: domain.PriorityLow,
			LastContact: domain.DatePtr("2025-01-03"), NextScheduled: nil,
			TotalCalls: 4, SuccessfulContacts: 4, PaymentArrangements: 1,
			Notes: "Payment completed successfully",
		},
		{
			ID: "601003", ResidentFirstName: "David", ResidentLastName: "Wilson",
			DateOfBirth: domain.MustDate("1978-04-12"), Balance: 450.75, DueDate: domain.MustDate("2025-04-30"),
			FacilityName: facility, FacilityCode: "27", PayerDesc: "Medicare",
			ContactFirstName: "Linda", ContactLastName: "Wilson",
			ContactNumber: "+15554181948", ContactEmail: "linda.wilson@email.com",
			Status: domain.PatientActive, Priority: domain.PriorityHigh,
			LastContact: domain.DatePtr("2025-01-09"), NextScheduled: domain.DatePtr("2025-01-11"),
			TotalCalls: 7, SuccessfulContacts: 5, PaymentArrangements: 2,
			Notes: "Multiple payment arrangements, good communication",
		},
	}
}

// PatientByID looks up a seed patient.
func PatientByID(id string) (domain.Patient, bool) {
	for _, p := range Patients() {
		if p.ID == id {
			return p, true
		}
	}
	return domain.Patient{}, false
}
