package models

// Question is the stored record. CorrectAnswer is never serialized; use
// Public before handing a question to a learner.
type Question struct {
	ID            int      `json:"id"`
	Prompt        string   `json:"prompt"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"-"`
	LessonID      int      `json:"lessonId"`
}

// PublicQuestion is what the listing endpoint returns.
type PublicQuestion struct {
	ID      int      `json:"id"`
	Prompt  string   `json:"prompt"`
	Options []string `json:"options"`
}

func (q Question) Public() PublicQuestion {
	return PublicQuestion{
		ID:      q.ID,
		Prompt:  q.Prompt,
		Options: q.Options,
	}
}

// QuestionWithContext is a question resolved together with its lesson and course.
type QuestionWithContext struct {
	Question
	Lesson LessonRef
}

type QuestionsResponse struct {
	Success bool             `json:"success"`
	Data    []PublicQuestion `json:"data"`
	Lesson  *LessonRef       `json:"lesson,omitempty"`
}
