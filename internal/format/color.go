package format

import "strings"

const (
	green  = "#4caf50"
	orange = "#ff9800"
	blue   = "#2196f3"
	grey   = "#9e9e9e"
	red    = "#f44336"
)

// DefaultColor is used for unknown or empty keys.
const DefaultColor = grey

var statusColors = map[string]string{
	"active":     green,
	"pending":    orange,
	"resolved":   blue,
	"inactive":   grey,
	"high":       red,
	"medium":     orange,
	"low":        green,
	"successful": green,
	"failed":     red,
	"completed":  green,
	"processing": orange,
	"draft":      grey,
	"paused":     orange,
}

var priorityColors = map[string]string{
	"urgent": red,
	"high":   red,
	"medium": orange,
	"low":    green,
}

// StatusColor maps a status (or priority) name to its badge colour.
func StatusColor(status string) string {
	return lookup(statusColors, status)
}

func PriorityColor(priority string) string {
	return lookup(priorityColors, priority)
}

func lookup(m map[string]string, key string) string {
	if c, ok := m[strings.ToLower(key)]; ok {
		return c
	}
	return DefaultColor
}
