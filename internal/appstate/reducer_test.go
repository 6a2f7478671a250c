package appstate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ratulalahy/med-debt-collector/internal/domain"
	"github.com/ratulalahy/med-debt-collector/internal/fixtures"
	"github.com/ratulalahy/med-debt-collector/internal/query"
)

func TestInitial(t *testing.T) {
	s := Initial()
	assert.Nil(t, s.User)
	assert.False(t, s.Authenticated)
	assert.False(t, s.Loading)
	assert.Empty(t, s.Error)
	assert.Empty(t, s.Notifications)
	assert.Contains(t, s.Filters, ScopePatients)
	assert.Contains(t, s.Filters, ScopeCampaigns)
	assert.Equal(t, DefaultPreferences(), s.Preferences)
}

func TestReduce_DoesNotMutateInput(t *testing.T) {
	before := Reduce(Initial(), AddNotification{Notification: Notification{ID: "a", Title: "first"}})
	snapshot := before

	after := Reduce(before, AddNotification{Notification: Notification{ID: "b", Title: "second"}})
	after = Reduce(after, SetFilters{Scope: ScopePatients, Query: query.Query{
		Filter: query.Predicates{Text: "john"},
	}})
	after = Reduce(after, SetPreferences{Patch: PreferencesPatch{Theme: ptr("dark")}})

	require.Len(t, before.Notifications, 1)
	assert.Equal(t, snapshot.Notifications, before.Notifications)
	assert.Empty(t, before.Filters[ScopePatients].Filter.Text)
	assert.Equal(t, "light", before.Preferences.Theme)

	assert.Len(t, after.Notifications, 2)
	assert.Equal(t, "john", after.Filters[ScopePatients].Filter.Text)
	assert.Equal(t, "dark", after.Preferences.Theme)
}

func TestReduce_RemoveNotificationKeepsOrder(t *testing.T) {
	s := Initial()
	for _, id := range []string{"a", "b", "c"} {
		s = Reduce(s, AddNotification{Notification: Notification{ID: id}})
	}
	before := s
	s = Reduce(s, RemoveNotification{ID: "b"})

	require.Len(t, s.Notifications, 2)
	assert.Equal(t, "a", s.Notifications[0].ID)
	assert.Equal(t, "c", s.Notifications[1].ID)
	require.Len(t, before.Notifications, 3)
	assert.Equal(t, "b", before.Notifications[1].ID)
}

func TestReduce_AddNotificationReplacesSameID(t *testing.T) {
	s := Reduce(Initial(), AddNotification{Notification: Notification{ID: "a", Title: "old"}})
	s = Reduce(s, AddNotification{Notification: Notification{ID: "a", Title: "new"}})

	require.Len(t, s.Notifications, 1)
	assert.Equal(t, "new", s.Notifications[0].Title)
}

func TestReduce_SelectedPatientIsCopied(t *testing.T) {
	p, ok := fixtures.PatientByID("600999")
	require.True(t, ok)

	s := Reduce(Initial(), SelectPatient{Patient: &p})
	p.ResidentFirstName = "Changed"

	require.NotNil(t, s.SelectedPatient)
	assert.Equal(t, "John", s.SelectedPatient.ResidentFirstName)

	s = Reduce(s, SelectPatient{Patient: nil})
	assert.Nil(t, s.SelectedPatient)
}

func TestState_SelectedPatientIn(t *testing.T) {
	patients := fixtures.Patients()
	s := Reduce(Initial(), SelectPatient{Patient: &patients[1]})

	got, ok := s.SelectedPatientIn(patients)
	require.True(t, ok)
	assert.Equal(t, patients[1].ID, got.ID)

	_, ok = s.SelectedPatientIn([]domain.Patient{patients[0]})
	assert.False(t, ok)
}

func TestReduce_Flags(t *testing.T) {
	s := Reduce(Initial(), SetLoading{Loading: true})
	s = Reduce(s, SetError{Message: "boom"})
	s = Reduce(s, SetUser{User: &User{ID: "u1", Name: "Dana"}})
	s = Reduce(s, SetAuthenticated{Authenticated: true})

	assert.True(t, s.Loading)
	assert.Equal(t, "boom", s.Error)
	assert.Equal(t, "u1", s.User.ID)
	assert.True(t, s.Authenticated)

	s = Reduce(s, SetError{})
	assert.Empty(t, s.Error)
}

func TestReduce_DashboardStats(t *testing.T) {
	stats := fixtures.Dashboard()
	s := Reduce(Initial(), SetDashboardStats{Stats: &stats})
	s = Reduce(s, SetRecentActivity{Items: stats.RecentActivity})

	require.NotNil(t, s.DashboardStats)
	assert.Equal(t, stats.TotalPatients, s.DashboardStats.TotalPatients)
	assert.Len(t, s.RecentActivity, len(stats.RecentActivity))
}

func TestReduce_PreferencesPatchIsPartial(t *testing.T) {
	s := Reduce(Initial(), SetPreferences{Patch: PreferencesPatch{
		Currency:      ptr("EUR"),
		Notifications: &NotificationChannels{SMS: true},
	}})

	assert.Equal(t, "EUR", s.Preferences.Currency)
	assert.Equal(t, "light", s.Preferences.Theme)
	assert.Equal(t, NotificationChannels{SMS: true}, s.Preferences.Notifications)
}

func TestReduce_Reset(t *testing.T) {
	s := Reduce(Initial(), SetLoading{Loading: true})
	s = Reduce(s, AddNotification{Notification: Notification{ID: "a"}})
	s = Reduce(s, SetPreferences{Patch: PreferencesPatch{Theme: ptr("dark")}})

	assert.Equal(t, Initial(), Reduce(s, Reset{}))
}

func TestActionNames(t *testing.T) {
	assert.Equal(t, "ADD_NOTIFICATION", Name(AddNotification{}))
	assert.Equal(t, "REMOVE_NOTIFICATION", Name(RemoveNotification{}))
	assert.Equal(t, "RESET_STATE", Name(Reset{}))
}

func ptr[T any](v T) *T { return &v }
