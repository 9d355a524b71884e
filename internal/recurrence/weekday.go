package recurrence

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"
)

// WeekdaySet is a canonical, Sunday-first ordered set of weekdays. It is the
// single recurrence-rule representation; name-based and numeric inputs are
// converted at the boundary through the Parse helpers.
type WeekdaySet []time.Weekday

var dayNames = map[string]time.Weekday{
	"sun":       time.Sunday,
	"sunday":    time.Sunday,
	"mon":       time.Monday,
	"monday":    time.Monday,
	"tue":       time.Tuesday,
	"tuesday":   time.Tuesday,
	"wed":       time.Wednesday,
	"wednesday": time.Wednesday,
	"thu":       time.Thursday,
	"thursday":  time.Thursday,
	"fri":       time.Friday,
	"friday":    time.Friday,
	"sat":       time.Saturday,
	"saturday":  time.Saturday,
}

// ParseNames builds a WeekdaySet from day names ("monday", "wed", ...).
// Names are case-insensitive; numeric strings 0-6 (Sunday=0) are also accepted.
func ParseNames(names []string) (WeekdaySet, error) {
	var set WeekdaySet
	for _, name := range names {
		key := strings.TrimSpace(strings.ToLower(name))
		if wd, ok := dayNames[key]; ok {
			set = append(set, wd)
			continue
		}
		num, err := strconv.Atoi(key)
		if err != nil || num < 0 || num > 6 {
			return nil, fmt.Errorf("invalid weekday: %s", name)
		}
		set = append(set, time.Weekday(num))
	}
	return set.Normalize(), nil
}

// ParseList parses a comma-separated weekday list ("mon,wed,fri").
func ParseList(s string) (WeekdaySet, error) {
	return ParseNames(strings.Split(s, ","))
}

// ParseNumbers builds a WeekdaySet from numeric days (0=Sunday ... 6=Saturday).
func ParseNumbers(nums []int) (WeekdaySet, error) {
	var set WeekdaySet
	for _, num := range nums {
		if num < 0 || num > 6 {
			return nil, fmt.Errorf("invalid weekday number: %d", num)
		}
		set = append(set, time.Weekday(num))
	}
	return set.Normalize(), nil
}

// Normalize returns the set deduplicated and sorted Sunday-first.
func (s WeekdaySet) Normalize() WeekdaySet {
	seen := make(map[time.Weekday]bool, len(s))
	var out WeekdaySet
	for _, wd := range s {
		if !seen[wd] {
			seen[wd] = true
			out = append(out, wd)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Contains reports whether wd is a member of the set.
func (s WeekdaySet) Contains(wd time.Weekday) bool {
	for _, d := range s {
		if d == wd {
			return true
		}
	}
	return false
}

// Valid reports whether every member is a real weekday. A malformed set comes
// from handwritten storage payloads and must degrade to "never due" rather
// than panic downstream.
func (s WeekdaySet) Valid() bool {
	for _, d := range s {
		if d < time.Sunday || d > time.Saturday {
			return false
		}
	}
	return true
}

// Names returns lowercase full day names in canonical order.
func (s WeekdaySet) Names() []string {
	names := make([]string, 0, len(s))
	for _, wd := range s.Normalize() {
		names = append(names, strings.ToLower(wd.String()))
	}
	return names
}

// Numbers returns numeric days (0=Sunday ... 6=Saturday) in canonical order.
func (s WeekdaySet) Numbers() []int {
	nums := make([]int, 0, len(s))
	for _, wd := range s.Normalize() {
		nums = append(nums, int(wd))
	}
	return nums
}
