package format

import (
	"fmt"
	"math"
	"time"
)

// InvalidDate is rendered for zero times.
const InvalidDate = "Invalid Date"

const (
	dateLayout     = "01/02/2006"
	dateTimeLayout = "01/02/2006 15:04"
	timeLayout     = "15:04"
)

// Location resolves an IANA zone name, falling back to UTC.
func Location(name string) *time.Location {
	if name == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return time.UTC
	}
	return loc
}

func layout(t time.Time, l string) string {
	if t.IsZero() {
		return InvalidDate
	}
	return t.Format(l)
}

// Date renders MM/DD/YYYY in t's location.
func Date(t time.Time) string { return layout(t, dateLayout) }

// DateTime renders MM/DD/YYYY HH:mm.
func DateTime(t time.Time) string { return layout(t, dateTimeLayout) }

// Time renders HH:mm.
func Time(t time.Time) string { return layout(t, timeLayout) }

// RelativeDate describes t relative to now in whole days.
func RelativeDate(t, now time.Time) string {
	if t.IsZero() {
		return InvalidDate
	}
	days := int(math.Floor(now.Sub(t).Hours() / 24))
	switch {
	case days == 0:
		return "Today"
	case days == 1:
		return "Yesterday"
	case days == -1:
		return "Tomorrow"
	case days > 0:
		return fmt.Sprintf("%d days ago", days)
	default:
		return fmt.Sprintf("In %d days", -days)
	}
}

// Duration renders seconds as m:ss, or h:mm:ss past an hour.
func Duration(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	h, m, s := seconds/3600, seconds%3600/60, seconds%60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%d:%02d", m, s)
}
