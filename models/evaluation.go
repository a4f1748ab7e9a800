package models

type EvaluateRequest struct {
	QuestionID int    `json:"questionId" binding:"required,min=1"`
	Answer     string `json:"answer" binding:"required"`
}

type QuestionSummary struct {
	Prompt  string   `json:"prompt"`
	Options []string `json:"options"`
}

type EvaluationContext struct {
	Lesson LessonRef `json:"lesson"`
}

// Verdict is the evaluation result; it is the only payload that carries
// the correct answer.
type Verdict struct {
	QuestionID      int               `json:"questionId"`
	SubmittedAnswer string            `json:"submittedAnswer"`
	IsCorrect       bool              `json:"isCorrect"`
	CorrectAnswer   string            `json:"correctAnswer"`
	Question        QuestionSummary   `json:"question"`
	Context         EvaluationContext `json:"context"`
}

type EvaluateResponse struct {
	Success bool    `json:"success"`
	Data    Verdict `json:"data"`
}
