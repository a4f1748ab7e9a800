// Package quiz holds the answer evaluation rules and question shuffling.
package quiz

import (
	"slices"
	"strings"

	"quiz_app_backend/models"

	"github.com/pkg/errors"
)

var ErrAnswerNotAnOption = errors.New("answer not among valid options")

// Normalize trims surrounding whitespace and lower-cases s.
func Normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// IsOption reports whether answer matches one of the options under the
// same normalization used for scoring.
func IsOption(options []string, answer string) bool {
	want := Normalize(answer)
	return slices.ContainsFunc(options, func(option string) bool {
		return Normalize(option) == want
	})
}

// IsCorrect compares answer with the correct answer ignoring case and
// surrounding whitespace.
func IsCorrect(correctAnswer, answer string) bool {
	return Normalize(correctAnswer) == Normalize(answer)
}

// Evaluate scores one submitted answer. An answer that matches no option
// produces no verdict. SubmittedAnswer echoes the answer as received.
func Evaluate(q models.QuestionWithContext, answer string) (models.Verdict, error) {
	if !IsOption(q.Options, answer) {
		return models.Verdict{}, ErrAnswerNotAnOption
	}

	return models.Verdict{
		QuestionID:      q.ID,
		SubmittedAnswer: answer,
		IsCorrect:       IsCorrect(q.CorrectAnswer, answer),
		CorrectAnswer:   q.CorrectAnswer,
		Question: models.QuestionSummary{
			Prompt:  q.Prompt,
			Options: q.Options,
		},
		Context: models.EvaluationContext{Lesson: q.Lesson},
	}, nil
}

// PublicQuestions strips the correct answer from every question.
func PublicQuestions(questions []models.Question) []models.PublicQuestion {
	public := make([]models.PublicQuestion, 0, len(questions))
	for _, q := range questions {
		public = append(public, q.Public())
	}
	return public
}
