package handlers

import (
	"net/http"

	"quiz_app_backend/models"
	"quiz_app_backend/store"

	"github.com/gin-gonic/gin"
	"github.com/golang/glog"
)

type CourseHandler struct {
	store *store.Store
}

func NewCourseHandler(s *store.Store) *CourseHandler {
	return &CourseHandler{store: s}
}

func (h *CourseHandler) GetCourses(c *gin.Context) {
	courses, err := h.store.ListCourses(c.Request.Context())
	if err != nil {
		glog.Errorf("Error fetching courses: %v", err)
		respondError(c, http.StatusInternalServerError, "Failed to fetch courses")
		return
	}

	c.JSON(http.StatusOK, models.CoursesResponse{Success: true, Data: courses})
}

func (h *CourseHandler) GetCourseLessons(c *gin.Context) {
	courseID, ok := parseID(c, "courseId")
	if !ok {
		respondError(c, http.StatusBadRequest, "Course ID must be a valid positive integer")
		return
	}

	ctx := c.Request.Context()
	course, err := h.store.GetCourse(ctx, courseID)
	if err != nil {
		respondStoreError(c, err, "Course not found", "Failed to fetch lessons")
		return
	}

	lessons, err := h.store.ListLessons(ctx, courseID)
	if err != nil {
		respondStoreError(c, err, "Course not found", "Failed to fetch lessons")
		return
	}

	c.JSON(http.StatusOK, models.LessonsResponse{
		Success: true,
		Data:    lessons,
		Course:  &models.CourseRef{ID: course.ID, Name: course.Name},
	})
}
