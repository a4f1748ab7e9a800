package models

import (
	"fmt"
	"slices"
	"strings"

	"github.com/go-playground/validator/v10"
)

// SeedCourse is an authoring document: a course with its lessons and questions.
type SeedCourse struct {
	Name        string       `json:"name" validate:"required,max=255"`
	Description string       `json:"description" validate:"required"`
	Lessons     []SeedLesson `json:"lessons" validate:"dive"`
}

type SeedLesson struct {
	Name      string         `json:"name" validate:"required,max=255"`
	Questions []SeedQuestion `json:"questions" validate:"dive"`
}

type SeedQuestion struct {
	Prompt        string   `json:"prompt" validate:"required"`
	Options       []string `json:"options" validate:"min=2,unique,dive,required"`
	CorrectAnswer string   `json:"correctAnswer" validate:"required"`
}

var seedValidator = newSeedValidator()

func newSeedValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterStructValidation(validateCorrectAnswer, SeedQuestion{})
	return v
}

// The store does not constrain correct_answer, so membership in the options
// set is checked here, before anything is written. Options must also stay
// distinct once case and surrounding whitespace are ignored, since answers
// are matched that way.
func validateCorrectAnswer(sl validator.StructLevel) {
	q := sl.Current().Interface().(SeedQuestion)
	if q.CorrectAnswer != "" && !slices.Contains(q.Options, q.CorrectAnswer) {
		sl.ReportError(q.CorrectAnswer, "CorrectAnswer", "correctAnswer", "oneofoptions", "")
	}

	seen := make(map[string]bool, len(q.Options))
	for _, option := range q.Options {
		key := strings.ToLower(strings.TrimSpace(option))
		if seen[key] {
			sl.ReportError(q.Options, "Options", "options", "uniquenormalized", "")
			return
		}
		seen[key] = true
	}
}

// ValidateCatalog checks every course, lesson and question in the catalogue.
func ValidateCatalog(courses []SeedCourse) error {
	for i, course := range courses {
		if err := seedValidator.Struct(course); err != nil {
			return fmt.Errorf("course %d (%s): %s", i, course.Name, describeValidation(err))
		}
	}
	return nil
}

func describeValidation(err error) string {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return err.Error()
	}
	parts := make([]string, 0, len(validationErrors))
	for _, fe := range validationErrors {
		parts = append(parts, fmt.Sprintf("%s failed %q", fe.Namespace(), fe.Tag()))
	}
	return strings.Join(parts, "; ")
}
