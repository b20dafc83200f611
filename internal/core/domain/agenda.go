package domain

import (
	"errors"
	"fmt"
	"sort"
)

var ErrMalformedClock = errors.New("malformed clock value")

// DayAgenda is one weekday's classes, time-ordered.
type DayAgenda struct {
	Day     string
	Entries []TimetableEntry
}

// GroupByDay converts a flat set of timetable entries into the weekday agenda:
// one group per teaching weekday that has at least one entry, in
// Monday-to-Friday order, with each group's entries sorted by start time.
// Days without classes are omitted entirely rather than emitted empty.
//
// The sort is stable, so entries sharing a start time keep their fetch order;
// no further tie-break is applied. The transform is pure and idempotent.
func GroupByDay(entries []TimetableEntry) []DayAgenda {
	var agenda []DayAgenda
	for _, day := range Weekdays {
		var classes []TimetableEntry
		for _, e := range entries {
			if e.DayOfWeek == day {
				classes = append(classes, e)
			}
		}
		if len(classes) == 0 {
			continue
		}
		// "HH:MM" is fixed-width zero-padded, so lexicographic order is
		// chronological order.
		sort.SliceStable(classes, func(i, j int) bool {
			return classes[i].StartTime < classes[j].StartTime
		})
		agenda = append(agenda, DayAgenda{Day: day, Entries: classes})
	}
	return agenda
}

// FormatClock converts a 24-hour "HH:MM" value to its 12-hour display form,
// e.g. "13:30" → "1:30 PM". Hours 0 and 12 both render as 12. Anything that
// does not match the expected shape fails with ErrMalformedClock.
func FormatClock(hhmm string) (string, error) {
	if len(hhmm) != 5 || hhmm[2] != ':' {
		return "", fmt.Errorf("%w: %q", ErrMalformedClock, hhmm)
	}
	hour, ok := twoDigits(hhmm[0], hhmm[1])
	if !ok || hour > 23 {
		return "", fmt.Errorf("%w: %q", ErrMalformedClock, hhmm)
	}
	minute, ok := twoDigits(hhmm[3], hhmm[4])
	if !ok || minute > 59 {
		return "", fmt.Errorf("%w: %q", ErrMalformedClock, hhmm)
	}

	suffix := "AM"
	if hour >= 12 {
		suffix = "PM"
	}
	display := hour % 12
	if display == 0 {
		display = 12
	}
	return fmt.Sprintf("%d:%s %s", display, hhmm[3:], suffix), nil
}

// FormatTimeRange renders a class's start and end times as a single display
// string, e.g. "9:00 AM - 10:00 AM".
func FormatTimeRange(start, end string) (string, error) {
	s, err := FormatClock(start)
	if err != nil {
		return "", err
	}
	e, err := FormatClock(end)
	if err != nil {
		return "", err
	}
	return s + " - " + e, nil
}

func twoDigits(a, b byte) (int, bool) {
	if a < '0' || a > '9' || b < '0' || b > '9' {
		return 0, false
	}
	return int(a-'0')*10 + int(b-'0'), true
}
