package appstate

import (
	"slices"

	"github.com/ratulalahy/med-debt-collector/internal/domain"
	"github.com/ratulalahy/med-debt-collector/internal/query"
)

// Reduce returns the state after applying action. The input state is never
// modified and every value on the changed path is freshly allocated, so
// snapshots handed out earlier stay valid.
func Reduce(s State, action Action) State {
	switch a := action.(type) {
	case SetLoading:
		s.Loading = a.Loading
	case SetError:
		s.Error = a.Message
	case SetUser:
		if a.User != nil {
			u := *a.User
			s.User = &u
		} else {
			s.User = nil
		}
	case SetAuthenticated:
		s.Authenticated = a.Authenticated
	case SetDashboardStats:
		if a.Stats != nil {
			st := a.Stats.Clone()
			s.DashboardStats = &st
		} else {
			s.DashboardStats = nil
		}
	case SetRecentActivity:
		s.RecentActivity = append([]domain.ActivityItem{}, a.Items...)
	case SelectPatient:
		if a.Patient != nil {
			p := a.Patient.Clone()
			s.SelectedPatient = &p
		} else {
			s.SelectedPatient = nil
		}
	case SelectCampaign:
		if a.Campaign != nil {
			c := *a.Campaign
			s.SelectedCampaign = &c
		} else {
			s.SelectedCampaign = nil
		}
	case AddNotification:
		s.Notifications = addNotification(s.Notifications, a.Notification)
	case RemoveNotification:
		s.Notifications = slices.DeleteFunc(slices.Clone(s.Notifications), func(n Notification) bool {
			return n.ID == a.ID
		})
	case SetFilters:
		filters := make(map[string]query.Query, len(s.Filters)+1)
		for k, v := range s.Filters {
			filters[k] = v
		}
		filters[a.Scope] = a.Query.Clone()
		s.Filters = filters
	case SetPreferences:
		s.Preferences = a.Patch.Apply(s.Preferences)
	case Reset:
		return Initial()
	}
	return s
}

// addNotification appends n, or replaces an entry with the same id in place.
func addNotification(list []Notification, n Notification) []Notification {
	out := make([]Notification, 0, len(list)+1)
	replaced := false
	for _, existing := range list {
		if existing.ID == n.ID {
			out = append(out, n)
			replaced = true
			continue
		}
		out = append(out, existing)
	}
	if !replaced {
		out = append(out, n)
	}
	return out
}
