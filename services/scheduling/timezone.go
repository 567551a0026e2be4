package scheduling

import (
	"fmt"
	"time"
)

const (
	dateLayout  = "2006-01-02"
	clockLayout = "15:04"
)

// tzAliases maps legacy IANA identifiers still reported by some browsers to
// their canonical names, so that textual aliases compare equal before any
// conversion is attempted.
var tzAliases = map[string]string{
	"Asia/Calcutta":        "Asia/Kolkata",
	"Asia/Saigon":          "Asia/Ho_Chi_Minh",
	"Asia/Katmandu":        "Asia/Kathmandu",
	"Asia/Rangoon":         "Asia/Yangon",
	"Europe/Kiev":          "Europe/Kyiv",
	"America/Buenos_Aires": "America/Argentina/Buenos_Aires",
}

// NormalizeTimezone resolves a timezone identifier to its canonical form.
func NormalizeTimezone(tz string) string {
	if canonical, ok := tzAliases[tz]; ok {
		return canonical
	}
	return tz
}

// SameTimezone reports whether two identifiers name the same timezone after
// normalization. An empty identifier on either side counts as "same": callers
// without a detected timezone get admin-local behavior.
func SameTimezone(a, b string) bool {
	if a == "" || b == "" {
		return true
	}
	return NormalizeTimezone(a) == NormalizeTimezone(b)
}

// ConvertWallClock converts a wall-clock time on a calendar date from one
// timezone to another, using the timezone rules in effect on that specific
// date. The returned date may differ from the input date when the conversion
// crosses midnight. Identical (normalized) timezones short-circuit so no
// round-trip drift is possible.
func ConvertWallClock(date, clock, fromTz, toTz string) (string, string, error) {
	if SameTimezone(fromTz, toTz) {
		return date, clock, nil
	}

	day, err := time.Parse(dateLayout, date)
	if err != nil {
		return "", "", fmt.Errorf("invalid date %q: %w", date, err)
	}
	tod, err := time.Parse(clockLayout, clock)
	if err != nil {
		return "", "", fmt.Errorf("invalid time %q: %w", clock, err)
	}

	fromLoc, err := time.LoadLocation(NormalizeTimezone(fromTz))
	if err != nil {
		return "", "", fmt.Errorf("unknown timezone %q: %w", fromTz, err)
	}
	toLoc, err := time.LoadLocation(NormalizeTimezone(toTz))
	if err != nil {
		return "", "", fmt.Errorf("unknown timezone %q: %w", toTz, err)
	}

	at := time.Date(day.Year(), day.Month(), day.Day(), tod.Hour(), tod.Minute(), 0, 0, fromLoc)
	converted := at.In(toLoc)
	return converted.Format(dateLayout), converted.Format(clockLayout), nil
}

// ConvertWindow converts both ends of an availability window between
// timezones, anchored to a single reference date since the offset depends on
// the date. Only the times are returned; the window stays attached to the
// day being queried.
func ConvertWindow(startClock, endClock, fromTz, toTz, refDate string) (string, string, error) {
	_, start, err := ConvertWallClock(refDate, startClock, fromTz, toTz)
	if err != nil {
		return "", "", err
	}
	_, end, err := ConvertWallClock(refDate, endClock, fromTz, toTz)
	if err != nil {
		return "", "", err
	}
	return start, end, nil
}

// parseClock converts an "HH:MM" string to minutes since midnight.
func parseClock(clock string) (int, error) {
	tod, err := time.Parse(clockLayout, clock)
	if err != nil {
		return 0, fmt.Errorf("invalid time %q: %w", clock, err)
	}
	return tod.Hour()*60 + tod.Minute(), nil
}

// formatClock renders minutes since midnight as an "HH:MM" string.
func formatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}
