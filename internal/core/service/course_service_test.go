package service

import (
	"context"
	"errors"
	"testing"

	"github.com/campusgrid/timetable-portal/internal/core/domain"
	"github.com/campusgrid/timetable-portal/internal/core/ports"
)

func newCourseFixture() (*CourseService, *stubCourseRepo, *stubUserRepo, *recordPublisher) {
	courses := newStubCourseRepo()
	users := newStubUserRepo()
	pub := &recordPublisher{}
	return NewCourseService(courses, users, pub, discardLogger), courses, users, pub
}

func TestCourseService_CreateUnassigned(t *testing.T) {
	svc, _, _, pub := newCourseFixture()

	course, err := svc.Create(context.Background(), ports.CourseInput{
		CourseCode:  "ICT101",
		CourseTitle: "Intro to Computing",
		Level:       "100 ICT",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if course.CourseCode != "ICT101" {
		t.Errorf("code = %q", course.CourseCode)
	}

	events := pub.published()
	if len(events) != 1 || events[0].Table != ports.TableCourses || events[0].Kind != ports.ChangeInsert {
		t.Errorf("unexpected events: %+v", events)
	}
}

func TestCourseService_CreateChecksLecturerRole(t *testing.T) {
	svc, _, users, _ := newCourseFixture()
	users.byEmail["s@x.edu"] = &domain.User{ID: "u-student", Role: domain.RoleStudent}
	users.byEmail["l@x.edu"] = &domain.User{ID: "u-lect", Role: domain.RoleLecturer}

	input := ports.CourseInput{CourseCode: "ICT101", CourseTitle: "Intro", Level: "100 ICT"}

	input.LecturerID = "u-student"
	if _, err := svc.Create(context.Background(), input); !errors.Is(err, domain.ErrUserNotFound) {
		t.Errorf("non-lecturer accepted: %v", err)
	}

	input.LecturerID = "ghost"
	if _, err := svc.Create(context.Background(), input); !errors.Is(err, domain.ErrUserNotFound) {
		t.Errorf("unknown lecturer accepted: %v", err)
	}

	input.LecturerID = "u-lect"
	if _, err := svc.Create(context.Background(), input); err != nil {
		t.Errorf("lecturer rejected: %v", err)
	}
}

func TestCourseService_UpdateMissingCourse(t *testing.T) {
	svc, _, _, _ := newCourseFixture()

	_, err := svc.Update(context.Background(), "ghost", ports.CourseInput{CourseCode: "ICT101"})
	if !errors.Is(err, domain.ErrCourseNotFound) {
		t.Errorf("expected ErrCourseNotFound, got %v", err)
	}
}

func TestCourseService_DeletePublishes(t *testing.T) {
	svc, courses, _, pub := newCourseFixture()
	courses.byID["c1"] = &domain.Course{ID: "c1"}

	if err := svc.Delete(context.Background(), "c1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	events := pub.published()
	if len(events) != 1 || events[0].Kind != ports.ChangeDelete || events[0].ID != "c1" {
		t.Errorf("unexpected events: %+v", events)
	}
}
