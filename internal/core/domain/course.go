package domain

import (
	"errors"
	"time"
)

var ErrCourseNotFound = errors.New("course not found")

// Course is a unit of teaching offered to one level. LecturerID is optional;
// a course may exist before a lecturer is assigned, and consumers must treat
// the embedded Lecturer as absent in that case.
type Course struct {
	ID          string    `json:"id" bson:"_id,omitempty"`
	CourseCode  string    `json:"course_code" bson:"course_code"`
	CourseTitle string    `json:"course_title" bson:"course_title"`
	Level       string    `json:"level" bson:"level"`
	LecturerID  string    `json:"lecturer_id,omitempty" bson:"lecturer_id,omitempty"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at"`

	// Lecturer is populated only on read paths that embed the join.
	Lecturer *User `json:"lecturer,omitempty" bson:"lecturer,omitempty"`
}
