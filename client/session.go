package client

import (
	"math"
	"slices"

	"quiz_app_backend/models"

	"github.com/pkg/errors"
)

// PassThreshold is the minimum percentage of correct answers that passes.
const PassThreshold = 70

type State int

const (
	StateLoading State = iota
	StateReady
	StateAnswerSelected
	StateEvaluated
	StateComplete
	// StateEmpty is reached when the lesson has no questions.
	StateEmpty
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateReady:
		return "ready"
	case StateAnswerSelected:
		return "answer-selected"
	case StateEvaluated:
		return "evaluated"
	case StateComplete:
		return "complete"
	case StateEmpty:
		return "empty"
	default:
		return "unknown"
	}
}

var (
	ErrInvalidTransition = errors.New("invalid transition")
	ErrUnknownOption     = errors.New("option not offered by the current question")
	ErrVerdictMismatch   = errors.New("verdict is for a different question")
)

// Session is the quiz flow for one lesson. Methods are transitions; each
// returns ErrInvalidTransition when called from a state that does not
// allow it, leaving the session unchanged. A Session is not safe for
// concurrent use.
type Session struct {
	lessonID  int
	state     State
	lesson    *models.LessonRef
	questions []models.PublicQuestion
	index     int
	selected  string
	verdict   *models.Verdict
	score     int
	err       error
}

func NewSession(lessonID int) *Session {
	return &Session{lessonID: lessonID, state: StateLoading}
}

func (s *Session) LessonID() int { return s.lessonID }

func (s *Session) State() State { return s.state }

// Err is the last load or evaluation failure, cleared by the next
// successful transition.
func (s *Session) Err() error { return s.err }

func (s *Session) Lesson() (models.LessonRef, bool) {
	if s.lesson == nil {
		return models.LessonRef{}, false
	}
	return *s.lesson, true
}

func (s *Session) Score() int { return s.score }

func (s *Session) Selected() string { return s.selected }

// Position returns the 1-based number of the current question and the total.
func (s *Session) Position() (int, int) {
	return s.index + 1, len(s.questions)
}

func (s *Session) Current() (models.PublicQuestion, bool) {
	switch s.state {
	case StateReady, StateAnswerSelected, StateEvaluated:
		return s.questions[s.index], true
	}
	return models.PublicQuestion{}, false
}

func (s *Session) Verdict() (models.Verdict, bool) {
	if s.state != StateEvaluated || s.verdict == nil {
		return models.Verdict{}, false
	}
	return *s.verdict, true
}

func (s *Session) invalid(action string) error {
	return errors.Wrapf(ErrInvalidTransition, "%s while %s", action, s.state)
}

// Loaded moves loading to ready, or to empty when there is nothing to ask.
func (s *Session) Loaded(resp models.QuestionsResponse) error {
	if s.state != StateLoading {
		return s.invalid("load")
	}
	s.questions = resp.Data
	s.lesson = resp.Lesson
	s.index = 0
	s.err = nil
	if len(s.questions) == 0 {
		s.state = StateEmpty
		return nil
	}
	s.state = StateReady
	return nil
}

// LoadFailed records a fetch failure; the session stays loading so the
// fetch can be retried.
func (s *Session) LoadFailed(err error) error {
	if s.state != StateLoading {
		return s.invalid("fail load")
	}
	s.err = err
	return nil
}

// Select chooses an option of the current question. It may be called again
// to change the choice until the answer is submitted.
func (s *Session) Select(option string) error {
	if s.state != StateReady && s.state != StateAnswerSelected {
		return s.invalid("select")
	}
	if !slices.Contains(s.questions[s.index].Options, option) {
		return ErrUnknownOption
	}
	s.selected = option
	s.state = StateAnswerSelected
	return nil
}

// Submission returns what should be sent for evaluation.
func (s *Session) Submission() (int, string, error) {
	if s.state != StateAnswerSelected {
		return 0, "", s.invalid("submit")
	}
	return s.questions[s.index].ID, s.selected, nil
}

// Evaluated applies the server verdict and locks the answer.
func (s *Session) Evaluated(v models.Verdict) error {
	if s.state != StateAnswerSelected {
		return s.invalid("evaluate")
	}
	if v.QuestionID != s.questions[s.index].ID {
		return ErrVerdictMismatch
	}
	s.verdict = &v
	s.err = nil
	if v.IsCorrect {
		s.score++
	}
	s.state = StateEvaluated
	return nil
}

// EvaluationFailed records a failed submission; the selection is kept so
// it can be resubmitted.
func (s *Session) EvaluationFailed(err error) error {
	if s.state != StateAnswerSelected {
		return s.invalid("fail evaluation")
	}
	s.err = err
	return nil
}

// Next advances past an evaluated question, completing the quiz after the last.
func (s *Session) Next() error {
	if s.state != StateEvaluated {
		return s.invalid("advance")
	}
	s.selected = ""
	s.verdict = nil
	if s.index == len(s.questions)-1 {
		s.state = StateComplete
		return nil
	}
	s.index++
	s.state = StateReady
	return nil
}

// Restart resets the score and returns to loading so questions are
// fetched and shuffled again.
func (s *Session) Restart() error {
	if s.state != StateComplete && s.state != StateEmpty {
		return s.invalid("restart")
	}
	*s = Session{lessonID: s.lessonID, state: StateLoading}
	return nil
}

type Summary struct {
	Correct int
	Total   int
	Percent int
	Passed  bool
}

func (s *Session) Summary() Summary {
	summary := Summary{Correct: s.score, Total: len(s.questions)}
	if summary.Total > 0 {
		summary.Percent = int(math.Round(float64(s.score) * 100 / float64(summary.Total)))
	}
	summary.Passed = summary.Total > 0 && summary.Percent >= PassThreshold
	return summary
}
