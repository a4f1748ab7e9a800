package handlers

import (
	"net/http"

	"quiz_app_backend/models"
	"quiz_app_backend/quiz"
	"quiz_app_backend/store"

	"github.com/gin-gonic/gin"
)

type LessonHandler struct {
	store *store.Store
}

func NewLessonHandler(s *store.Store) *LessonHandler {
	return &LessonHandler{store: s}
}

// GetLessonQuestions returns the lesson's questions in a fresh random order
// with the correct answers removed.
func (h *LessonHandler) GetLessonQuestions(c *gin.Context) {
	lessonID, ok := parseID(c, "lessonId")
	if !ok {
		respondError(c, http.StatusBadRequest, "Lesson ID must be a valid positive integer")
		return
	}

	ctx := c.Request.Context()
	lesson, err := h.store.GetLesson(ctx, lessonID)
	if err != nil {
		respondStoreError(c, err, "Lesson not found", "Failed to fetch questions")
		return
	}

	questions, err := h.store.ListQuestions(ctx, lessonID)
	if err != nil {
		respondStoreError(c, err, "Lesson not found", "Failed to fetch questions")
		return
	}

	public := quiz.PublicQuestions(questions)
	quiz.Shuffle(public)

	c.JSON(http.StatusOK, models.QuestionsResponse{
		Success: true,
		Data:    public,
		Lesson:  &lesson,
	})
}
