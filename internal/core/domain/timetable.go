package domain

import (
	"errors"
	"time"
)

var ErrEntryNotFound = errors.New("timetable entry not found")
var ErrInvalidWeekday = errors.New("invalid weekday")
var ErrInvalidTimeRange = errors.New("start time must be before end time")
var ErrFetchFailed = errors.New("timetable fetch failed")

// Weekdays is the fixed teaching week, in display order. Weekends are
// excluded by design and the sequence is not configurable.
var Weekdays = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"}

// ValidWeekday reports whether day is one of the five teaching weekdays.
func ValidWeekday(day string) bool {
	for _, d := range Weekdays {
		if d == day {
			return true
		}
	}
	return false
}

// TimetableEntry is one scheduled class. StartTime and EndTime are wall-clock
// values in zero-padded 24-hour "HH:MM" form, so lexicographic order on them
// is chronological order. Level is denormalized from the entry's course at
// write time and is the canonical filter key for student queries.
type TimetableEntry struct {
	ID        string    `json:"id" bson:"_id,omitempty"`
	CourseID  string    `json:"course_id" bson:"course_id"`
	DayOfWeek string    `json:"day_of_week" bson:"day_of_week"`
	StartTime string    `json:"start_time" bson:"start_time"`
	EndTime   string    `json:"end_time" bson:"end_time"`
	Room      string    `json:"room" bson:"room"`
	Level     string    `json:"level" bson:"level"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`

	// Course is populated only on read paths that embed the join. It may in
	// turn embed the lecturer; both may be absent.
	Course *Course `json:"course,omitempty" bson:"course,omitempty"`
}

// LecturerName returns the embedded lecturer's name, or "" when either the
// course or its lecturer is absent.
func (e *TimetableEntry) LecturerName() string {
	if e.Course == nil || e.Course.Lecturer == nil {
		return ""
	}
	return e.Course.Lecturer.FullName
}
