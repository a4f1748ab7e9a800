package models

import "time"

type Lesson struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	CourseID  int       `json:"courseId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type LessonRef struct {
	ID     int       `json:"id"`
	Name   string    `json:"name"`
	Course CourseRef `json:"course"`
}

type LessonsResponse struct {
	Success bool       `json:"success"`
	Data    []Lesson   `json:"data"`
	Course  *CourseRef `json:"course,omitempty"`
}
