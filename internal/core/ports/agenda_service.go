package ports

import "context"

// Identity is the authenticated caller, passed explicitly into services
// rather than read from ambient state.
type Identity struct {
	ID       string
	Email    string
	FullName string
	Role     string
	Level    string
}

// AgendaClass is one display-ready class in the weekly agenda.
type AgendaClass struct {
	ID           string
	StartTime    string // 24h "HH:MM", as stored
	EndTime      string
	TimeRange    string // formatted, e.g. "9:00 AM - 10:00 AM"
	Room         string
	CourseCode   string
	CourseTitle  string
	LecturerName string // empty when no lecturer is assigned
}

// AgendaDay is one weekday with at least one class.
type AgendaDay struct {
	Day     string
	Classes []AgendaClass
}

// AgendaResult is the grouped, time-ordered weekly agenda for one level.
// Days is empty when the level has no classes; the caller renders an explicit
// empty state in that case.
type AgendaResult struct {
	Level string
	Days  []AgendaDay
}

// AgendaService builds the student weekly agenda.
type AgendaService interface {
	WeeklyAgenda(ctx context.Context, level string) (*AgendaResult, error)
}
