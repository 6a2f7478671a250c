// Package appstate holds the process-wide dashboard state: user, loading and
// error flags, selected records, per-scope filters, preferences and transient
// notifications. State changes only through Reduce.
package appstate

import (
	"encoding/json"
	"time"

	"github.com/ratulalahy/med-debt-collector/internal/domain"
	"github.com/ratulalahy/med-debt-collector/internal/query"
)

// DefaultNotificationDuration is how long an auto-closing notification stays
// visible when it does not set its own duration.
const DefaultNotificationDuration = 5000 * time.Millisecond

// Level is the severity of a notification.
type Level string

const (
	LevelSuccess Level = "success"
	LevelError   Level = "error"
	LevelWarning Level = "warning"
	LevelInfo    Level = "info"
)

// Notification is a toast shown to the operator. Unless Sticky, it is removed
// automatically once Duration has elapsed. Duration travels as whole
// milliseconds in JSON.
type Notification struct {
	ID        string        `json:"id"`
	Level     Level         `json:"type"`
	Title     string        `json:"title"`
	Message   string        `json:"message"`
	Timestamp time.Time     `json:"timestamp"`
	Sticky    bool          `json:"sticky,omitempty"`
	Duration  time.Duration `json:"-"`
}

type notificationJSON Notification

func (n Notification) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		notificationJSON
		DurationMs int64 `json:"duration,omitempty"`
	}{notificationJSON(n), n.Duration.Milliseconds()})
}

func (n *Notification) UnmarshalJSON(b []byte) error {
	aux := struct {
		*notificationJSON
		DurationMs int64 `json:"duration,omitempty"`
	}{notificationJSON: (*notificationJSON)(n)}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}
	n.Duration = time.Duration(aux.DurationMs) * time.Millisecond
	return nil
}

// User is the signed-in operator.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// NotificationChannels are the operator's opt-ins per delivery channel.
type NotificationChannels struct {
	Email bool `json:"email"`
	Push  bool `json:"push"`
	SMS   bool `json:"sms"`
}

// Preferences are the persisted display settings.
type Preferences struct {
	Theme         string               `json:"theme"`
	Language      string               `json:"language"`
	Timezone      string               `json:"timezone"`
	DateFormat    string               `json:"dateFormat"`
	Currency      string               `json:"currency"`
	Notifications NotificationChannels `json:"notifications"`
}

// DefaultPreferences are used at first start and whenever the persisted value
// cannot be read.
func DefaultPreferences() Preferences {
	return Preferences{
		Theme:         "light",
		Language:      "en",
		Timezone:      "America/New_York",
		DateFormat:    "MM/DD/YYYY",
		Currency:      "USD",
		Notifications: NotificationChannels{Email: true, Push: true, SMS: false},
	}
}

// State is an immutable snapshot. Unchanged fields are shared between
// successive snapshots, so treat every field as read-only.
type State struct {
	User             *User                  `json:"user"`
	Authenticated    bool                   `json:"isAuthenticated"`
	Loading          bool                   `json:"isLoading"`
	Error            string                 `json:"error,omitempty"`
	DashboardStats   *domain.DashboardStats `json:"dashboardStats"`
	RecentActivity   []domain.ActivityItem  `json:"recentActivity"`
	SelectedPatient  *domain.Patient        `json:"selectedPatient"`
	SelectedCampaign *domain.Campaign       `json:"selectedCampaign"`
	Notifications    []Notification         `json:"notifications"`
	Filters          map[string]query.Query `json:"filters"`
	Preferences      Preferences            `json:"preferences"`
}

// Filter scopes used by the list pages.
const (
	ScopePatients  = "patients"
	ScopeCampaigns = "campaigns"
)

// Initial returns the documented start state.
func Initial() State {
	return State{
		RecentActivity: []domain.ActivityItem{},
		Notifications:  []Notification{},
		Filters: map[string]query.Query{
			ScopePatients:  {},
			ScopeCampaigns: {},
		},
		Preferences: DefaultPreferences(),
	}
}

// Notification looks up a visible notification.
func (s State) Notification(id string) (Notification, bool) {
	for _, n := range s.Notifications {
		if n.ID == id {
			return n, true
		}
	}
	return Notification{}, false
}

// SelectedPatientIn resolves the selected patient against the current
// collection. A selection that no longer exists reports not found.
func (s State) SelectedPatientIn(patients []domain.Patient) (domain.Patient, bool) {
	if s.SelectedPatient == nil {
		return domain.Patient{}, false
	}
	for _, p := range patients {
		if p.ID == s.SelectedPatient.ID {
			return p, true
		}
	}
	return domain.Patient{}, false
}

// SelectedCampaignIn resolves the selected campaign against the current
// collection.
func (s State) SelectedCampaignIn(campaigns []domain.Campaign) (domain.Campaign, bool) {
	if s.SelectedCampaign == nil {
		return domain.Campaign{}, false
	}
	for _, c := range campaigns {
		if c.ID == s.SelectedCampaign.ID {
			return c, true
		}
	}
	return domain.Campaign{}, false
}
