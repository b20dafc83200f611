package handler

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// agendaClassResponse is one display-ready class in the weekly agenda.
type agendaClassResponse struct {
	ID           string `json:"id"`
	StartTime    string `json:"start_time"`
	EndTime      string `json:"end_time"`
	TimeRange    string `json:"time_range"`
	Room         string `json:"room"`
	CourseCode   string `json:"course_code,omitempty"`
	CourseTitle  string `json:"course_title,omitempty"`
	LecturerName string `json:"lecturer_name,omitempty"`
}

type agendaDayResponse struct {
	Day     string                `json:"day"`
	Classes []agendaClassResponse `json:"classes"`
}

// agendaResponse is the weekly agenda payload. Days only contains weekdays
// with at least one class; when it is empty Message carries the explicit
// empty state so clients never have to invent one.
type agendaResponse struct {
	Level   string              `json:"level"`
	Days    []agendaDayResponse `json:"days"`
	Message string              `json:"message,omitempty"`
}

const emptyTimetableMessage = "No classes scheduled for your level yet."
