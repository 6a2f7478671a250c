package fixtures

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ratulalahy/med-debt-collector/internal/domain"
)

func TestFixtures_Valid(t *testing.T) {
	for _, p := range Patients() {
		assert.NoError(t, domain.Validate(p), p.ID)
	}
	for _, c := range Campaigns() {
		assert.NoError(t, domain.Validate(c), c.ID)
	}
	for _, c := range CallLogs() {
		assert.NoError(t, domain.Validate(c), c.ID)
	}
	for _, e := range Queue() {
		assert.NoError(t, domain.Validate(e), e.ID)
		if !e.Status.Positioned() {
			assert.Nil(t, e.QueuePosition, e.ID)
		}
	}
	for _, e := range Events() {
		assert.NoError(t, domain.Validate(e), e.ID)
	}
	for _, task := range Tasks() {
		assert.NoError(t, domain.Validate(task), task.ID)
	}
	for _, c := range IncomingCalls() {
		assert.NoError(t, domain.Validate(c), c.ID)
	}
}

func TestFixtures_FreshCopies(t *testing.T) {
	a := Patients()
	a[0].Balance = 0
	*a[0].LastContact = domain.MustDate("1999-01-01")

	b := Patients()
	assert.Equal(t, 150.75, b[0].Balance)
	assert.Equal(t, "2025-01-08", b[0].LastContact.String())
}

func TestLookups(t *testing.T) {
	p, ok := PatientByID("601002")
	require.True(t, ok)
	assert.Equal(t, "Lisa Johnson", p.FullName())

	_, ok = PatientByID("missing")
	assert.False(t, ok)

	c, ok := CampaignByID("camp-001")
	require.True(t, ok)
	assert.Equal(t, 89, c.CallsCompleted)

	assert.Len(t, CallLogsByPatient("600999"), 1)
	assert.Len(t, CallLogsByCampaign("camp-001"), 4)
	assert.Empty(t, CallLogsByCampaign("camp-002"))
}
