package appstate

import (
	"github.com/ratulalahy/med-debt-collector/internal/domain"
	"github.com/ratulalahy/med-debt-collector/internal/query"
)

// Action is the closed set of state transitions.
type Action interface {
	actionName() string
}

type (
	SetLoading         struct{ Loading bool }
	SetError           struct{ Message string }
	SetUser            struct{ User *User }
	SetAuthenticated   struct{ Authenticated bool }
	SetDashboardStats  struct{ Stats *domain.DashboardStats }
	SetRecentActivity  struct{ Items []domain.ActivityItem }
	SelectPatient      struct{ Patient *domain.Patient }
	SelectCampaign     struct{ Campaign *domain.Campaign }
	AddNotification    struct{ Notification Notification }
	RemoveNotification struct{ ID string }
	SetFilters         struct {
		Scope string
		Query query.Query
	}
	SetPreferences struct{ Patch PreferencesPatch }
	Reset          struct{}
)

func (SetLoading) actionName() string         { return "SET_LOADING" }
func (SetError) actionName() string           { return "SET_ERROR" }
func (SetUser) actionName() string            { return "SET_USER" }
func (SetAuthenticated) actionName() string   { return "SET_AUTHENTICATED" }
func (SetDashboardStats) actionName() string  { return "SET_DASHBOARD_STATS" }
func (SetRecentActivity) actionName() string  { return "SET_RECENT_ACTIVITY" }
func (SelectPatient) actionName() string      { return "SET_SELECTED_PATIENT" }
func (SelectCampaign) actionName() string     { return "SET_SELECTED_CAMPAIGN" }
func (AddNotification) actionName() string    { return "ADD_NOTIFICATION" }
func (RemoveNotification) actionName() string { return "REMOVE_NOTIFICATION" }
func (SetFilters) actionName() string         { return "SET_FILTERS" }
func (SetPreferences) actionName() string     { return "SET_PREFERENCES" }
func (Reset) actionName() string              { return "RESET_STATE" }

// Name returns the wire name of an action, used in logs.
func Name(a Action) string { return a.actionName() }

// PreferencesPatch updates only the non-nil fields.
type PreferencesPatch struct {
	Theme         *string               `json:"theme,omitempty"`
	Language      *string               `json:"language,omitempty"`
	Timezone      *string               `json:"timezone,omitempty"`
	DateFormat    *string               `json:"dateFormat,omitempty"`
	Currency      *string               `json:"currency,omitempty"`
	Notifications *NotificationChannels `json:"notifications,omitempty"`
}

// Apply returns p with the patch merged in.
func (patch PreferencesPatch) Apply(p Preferences) Preferences {
	if patch.Theme != nil {
		p.Theme = *patch.Theme
	}
	if patch.Language != nil {
		p.Language = *patch.Language
	}
	if patch.Timezone != nil {
		p.Timezone = *patch.Timezone
	}
	if patch.DateFormat != nil {
		p.DateFormat = *patch.DateFormat
	}
	if patch.Currency != nil {
		p.Currency = *patch.Currency
	}
	if patch.Notifications != nil {
		p.Notifications = *patch.Notifications
	}
	return p
}

// Replace builds a patch that overwrites every preference field.
func Replace(p Preferences) PreferencesPatch {
	n := p.Notifications
	return PreferencesPatch{
		Theme: &p.Theme, Language: &p.Language, Timezone: &p.Timezone,
		DateFormat: &p.DateFormat, Currency: &p.Currency, Notifications: &n,
	}
}
