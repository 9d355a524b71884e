package recurrence

import (
	"time"

	"github.com/antoniovita/projeto-gymAI-sub000/internal/constants"
)

// DaySet is a set of calendar days keyed YYYY-MM-DD, used for per-date
// cancellation exceptions.
type DaySet map[string]struct{}

// NewDaySet builds a DaySet from day keys.
func NewDaySet(days ...string) DaySet {
	set := make(DaySet, len(days))
	for _, d := range days {
		set[d] = struct{}{}
	}
	return set
}

// Contains reports whether day is in the set.
func (s DaySet) Contains(day string) bool {
	_, ok := s[day]
	return ok
}

// DayKey normalizes a timestamp to its calendar-day key (YYYY-MM-DD). Callers
// are responsible for resolving time zones before calling; the key is taken
// from the wall clock of the supplied value.
func DayKey(t time.Time) string {
	return t.Format(constants.DateFormat)
}

// ParseDay parses a YYYY-MM-DD day key into a midnight timestamp.
func ParseDay(day string) (time.Time, error) {
	return time.Parse(constants.DateFormat, day)
}

// DueOn decides whether a weekday rule produces an occurrence on the given
// date. A cancelled date always wins, regardless of weekday membership. An
// empty or malformed weekday set is never due.
func DueOn(days WeekdaySet, cancelled DaySet, date time.Time) bool {
	if cancelled.Contains(DayKey(date)) {
		return false
	}
	if len(days) == 0 || !days.Valid() {
		return false
	}
	return days.Contains(date.Weekday())
}

// EachDay calls fn for every calendar day in [start, end] inclusive. Days are
// stepped via AddDate to stay correct across DST transitions.
func EachDay(start, end time.Time, fn func(time.Time)) {
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		fn(d)
	}
}
