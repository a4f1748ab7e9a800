package models

import "time"

type Course struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// CourseRef is the id/name pair attached to responses as context.
type CourseRef struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type CoursesResponse struct {
	Success bool     `json:"success"`
	Data    []Course `json:"data"`
}
