package handler

import "github.com/campusgrid/timetable-portal/internal/core/ports"

func toAgendaResponse(result *ports.AgendaResult) agendaResponse {
	resp := agendaResponse{
		Level: result.Level,
		Days:  []agendaDayResponse{},
	}
	for _, day := range result.Days {
		dayResp := agendaDayResponse{Day: day.Day}
		for _, class := range day.Classes {
			dayResp.Classes = append(dayResp.Classes, agendaClassResponse{
				ID:           class.ID,
				StartTime:    class.StartTime,
				EndTime:      class.EndTime,
				TimeRange:    class.TimeRange,
				Room:         class.Room,
				CourseCode:   class.CourseCode,
				CourseTitle:  class.CourseTitle,
				LecturerName: class.LecturerName,
			})
		}
		resp.Days = append(resp.Days, dayResp)
	}
	if len(resp.Days) == 0 {
		resp.Message = emptyTimetableMessage
	}
	return resp
}

func emptyAgendaResponse(level string) agendaResponse {
	return agendaResponse{
		Level:   level,
		Days:    []agendaDayResponse{},
		Message: emptyTimetableMessage,
	}
}
