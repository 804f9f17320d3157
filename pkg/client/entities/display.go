package entities

import "time"

const (
	DisplayTimeLayout = "2006-01-02 15:04:05 -0700"
	EmptyDisplay      = "--"
)

// Backend timestamps come as RFC3339 or as naive "YYYY-MM-DD HH:MM:SS"
// strings already in UTC.
var utcLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05.999999",
}

// UTCDisplayTime renders a backend timestamp in loc (time.Local when nil).
// Empty or unparseable input renders as "--".
func UTCDisplayTime(value string, loc *time.Location) string {
	if value == "" {
		return EmptyDisplay
	}
	if loc == nil {
		loc = time.Local
	}
	for _, layout := range utcLayouts {
		t, err := time.ParseInLocation(layout, value, time.UTC)
		if err == nil {
			return t.In(loc).Format(DisplayTimeLayout)
		}
	}
	return EmptyDisplay
}
