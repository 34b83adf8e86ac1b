package engine

import (
	"math"
	"strings"
	"time"
)

// A day key is a YYYY-MM-DD string in the local calendar. Two keyings exist:
// the stats snapshot uses a day that rolls over at StatsResetHour so
// late-night activity counts toward the previous day, while activity logs
// and all analytics use plain calendar dates.
const DayKeyLayout = "2006-01-02"

// StatsResetHour is the local hour at which the stats "day" rolls over.
const StatsResetHour = 2

// ResolveDayKey returns the day key for t under a resetHour boundary: before
// resetHour local time the key is still yesterday's date.
func ResolveDayKey(t time.Time, resetHour int) string {
	reset := time.Date(t.Year(), t.Month(), t.Day(), resetHour, 0, 0, 0, t.Location())
	target := reset
	if t.Before(reset) {
		target = reset.AddDate(0, 0, -1)
	}
	return target.Format(DayKeyLayout)
}

// MidnightKey returns the plain calendar-date key for t.
func MidnightKey(t time.Time) string {
	return t.Format(DayKeyLayout)
}

// NormalizeDayKey reduces a stored value to a bare day key. Legacy snapshots
// stored full ISO timestamps; those truncate to their local calendar date.
// Unparseable values normalize to "" so streak math treats them as absent.
func NormalizeDayKey(s string) string {
	if !strings.Contains(s, "T") {
		return s
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return ""
	}
	return t.Local().Format(DayKeyLayout)
}

// DiffDays returns the whole-day difference to - from over
// midnight-normalized local dates. ok is false when either key is not a
// valid day key.
func DiffDays(from, to string) (int, bool) {
	a, err := time.ParseInLocation(DayKeyLayout, from, time.Local)
	if err != nil {
		return 0, false
	}
	b, err := time.ParseInLocation(DayKeyLayout, to, time.Local)
	if err != nil {
		return 0, false
	}
	return int(math.Round(b.Sub(a).Hours() / 24)), true
}
