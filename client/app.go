package client

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// App is the terminal front end: course list, lesson list and the quiz.
type App struct {
	api *API
	in  *bufio.Reader
	out io.Writer
}

func NewApp(api *API, in io.Reader, out io.Writer) *App {
	return &App{api: api, in: bufio.NewReader(in), out: out}
}

// errQuit ends the program from any prompt, including end of input.
var errQuit = errors.New("quit")

// Run checks the server is reachable, then loops through the menus until
// the user quits or input ends.
func (a *App) Run(ctx context.Context) error {
	if _, err := a.api.Health(ctx); err != nil {
		fmt.Fprintf(a.out, "Server unreachable: %v\n", err)
		return errors.Wrap(err, "health check")
	}

	err := a.courseMenu(ctx)
	if errors.Is(err, errQuit) {
		fmt.Fprintln(a.out, "Bye!")
		return nil
	}
	return err
}

func (a *App) prompt(label string) (string, error) {
	fmt.Fprintf(a.out, "%s> ", label)
	line, err := a.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && strings.TrimSpace(line) != "" {
			return strings.TrimSpace(line), nil
		}
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(a.out)
			return "", errQuit
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// retry shows a failure and asks whether to try again.
func (a *App) retry(what string, err error) (bool, error) {
	fmt.Fprintf(a.out, "Error loading %s: %v\n", what, err)
	for {
		choice, err := a.prompt("[r]etry / [b]ack")
		if err != nil {
			return false, err
		}
		switch strings.ToLower(choice) {
		case "r":
			return true, nil
		case "b":
			return false, nil
		case "q":
			return false, errQuit
		}
	}
}

func (a *App) courseMenu(ctx context.Context) error {
	for {
		courses, err := a.api.Courses(ctx)
		if err != nil {
			again, err := a.retry("courses", err)
			if err != nil {
				return err
			}
			if !again {
				return errQuit
			}
			continue
		}

		fmt.Fprintln(a.out, "\nCourses")
		if len(courses) == 0 {
			fmt.Fprintln(a.out, "  No courses available.")
		}
		for i, course := range courses {
			fmt.Fprintf(a.out, "  %d. %s - %s\n", i+1, course.Name, course.Description)
		}

		choice, err := a.prompt("course number, [q]uit")
		if err != nil {
			return err
		}
		if strings.EqualFold(choice, "q") {
			return errQuit
		}
		n, ok := parseChoice(choice, len(courses))
		if !ok {
			fmt.Fprintln(a.out, "Invalid choice.")
			continue
		}
		if err := a.lessonMenu(ctx, courses[n].ID); err != nil {
			return err
		}
	}
}

func (a *App) lessonMenu(ctx context.Context, courseID int) error {
	for {
		resp, err := a.api.Lessons(ctx, courseID)
		if err != nil {
			again, err := a.retry("lessons", err)
			if err != nil || !again {
				return err
			}
			continue
		}

		title := "Lessons"
		if resp.Course != nil {
			title = resp.Course.Name
		}
		fmt.Fprintf(a.out, "\n%s\n", title)
		if len(resp.Data) == 0 {
			fmt.Fprintln(a.out, "  No lessons available.")
		}
		for i, lesson := range resp.Data {
			fmt.Fprintf(a.out, "  %d. %s\n", i+1, lesson.Name)
		}

		choice, err := a.prompt("lesson number, [b]ack, [q]uit")
		if err != nil {
			return err
		}
		switch strings.ToLower(choice) {
		case "b":
			return nil
		case "q":
			return errQuit
		}
		n, ok := parseChoice(choice, len(resp.Data))
		if !ok {
			fmt.Fprintln(a.out, "Invalid choice.")
			continue
		}
		if err := a.runQuiz(ctx, resp.Data[n].ID); err != nil {
			return err
		}
	}
}

// runQuiz drives a Session until the user leaves the lesson.
func (a *App) runQuiz(ctx context.Context, lessonID int) error {
	s := NewSession(lessonID)
	for {
		switch s.State() {
		case StateLoading:
			resp, err := a.api.Questions(ctx, lessonID)
			if err != nil {
				if err := s.LoadFailed(err); err != nil {
					return errors.Wrap(err, "quiz session")
				}
				again, err := a.retry("questions", s.Err())
				if err != nil || !again {
					return err
				}
				continue
			}
			if err := s.Loaded(resp); err != nil {
				return errors.Wrap(err, "quiz session")
			}

		case StateEmpty:
			fmt.Fprintln(a.out, "\nNo questions available for this lesson yet.")
			return nil

		case StateReady, StateAnswerSelected:
			a.renderQuestion(s)
			choice, err := a.prompt("option number, [s]ubmit, [b]ack")
			if err != nil {
				return err
			}
			switch strings.ToLower(choice) {
			case "b":
				return nil
			case "q":
				return errQuit
			case "s":
				if err := a.submit(ctx, s); err != nil {
					return err
				}
			default:
				q, _ := s.Current()
				idx, ok := parseChoice(choice, len(q.Options))
				if !ok {
					fmt.Fprintln(a.out, "Invalid choice.")
					continue
				}
				if err := s.Select(q.Options[idx]); err != nil {
					return errors.Wrap(err, "quiz session")
				}
			}

		case StateEvaluated:
			a.renderVerdict(s)
			if _, err := a.prompt("press Enter to continue"); err != nil {
				return err
			}
			if err := s.Next(); err != nil {
				return errors.Wrap(err, "quiz session")
			}

		case StateComplete:
			a.renderSummary(s)
			choice, err := a.prompt("[r]estart, [b]ack")
			if err != nil {
				return err
			}
			switch strings.ToLower(choice) {
			case "r":
				if err := s.Restart(); err != nil {
					return errors.Wrap(err, "quiz session")
				}
			case "q":
				return errQuit
			default:
				return nil
			}
		}
	}
}

// submit sends the selected answer. Evaluation failures are shown and leave
// the selection in place; only a broken session transition is returned.
func (a *App) submit(ctx context.Context, s *Session) error {
	questionID, answer, err := s.Submission()
	if errors.Is(err, ErrInvalidTransition) && s.State() == StateReady {
		fmt.Fprintln(a.out, "Select an option first.")
		return nil
	}
	if err != nil {
		return errors.Wrap(err, "quiz session")
	}

	verdict, err := a.api.Evaluate(ctx, questionID, answer)
	if err != nil {
		if err := s.EvaluationFailed(err); err != nil {
			return errors.Wrap(err, "quiz session")
		}
		fmt.Fprintf(a.out, "Could not evaluate the answer: %v. Submit again to retry.\n", err)
		return nil
	}

	err = s.Evaluated(verdict)
	if errors.Is(err, ErrVerdictMismatch) {
		fmt.Fprintf(a.out, "Unexpected evaluation result: %v\n", err)
		return errors.Wrap(s.EvaluationFailed(err), "quiz session")
	}
	return errors.Wrap(err, "quiz session")
}

func (a *App) renderQuestion(s *Session) {
	q, _ := s.Current()
	n, total := s.Position()

	fmt.Fprintln(a.out)
	if lesson, ok := s.Lesson(); ok {
		fmt.Fprintf(a.out, "%s > %s\n", lesson.Course.Name, lesson.Name)
	}
	fmt.Fprintf(a.out, "Question %d of %d | Correct: %d\n", n, total, s.Score())
	fmt.Fprintf(a.out, "%s\n", q.Prompt)
	for i, option := range q.Options {
		marker := " "
		if option == s.Selected() {
			marker = "*"
		}
		fmt.Fprintf(a.out, " %s %d. %s\n", marker, i+1, option)
	}
}

func (a *App) renderVerdict(s *Session) {
	v, _ := s.Verdict()
	if v.IsCorrect {
		fmt.Fprintln(a.out, "Correct!")
		return
	}
	fmt.Fprintf(a.out, "Incorrect. The correct answer was: %s\n", v.CorrectAnswer)
}

func (a *App) renderSummary(s *Session) {
	summary := s.Summary()
	fmt.Fprintln(a.out, "\nEvaluation complete!")
	fmt.Fprintf(a.out, "%d%% correct: %d of %d questions\n", summary.Percent, summary.Correct, summary.Total)
	if summary.Passed {
		fmt.Fprintln(a.out, "Passed. Great work!")
	} else {
		fmt.Fprintf(a.out, "Not passed yet (%d%% needed). Keep practicing.\n", PassThreshold)
	}
	if lesson, ok := s.Lesson(); ok {
		fmt.Fprintf(a.out, "Lesson: %s - %s\n", lesson.Name, lesson.Course.Name)
	}
}

// parseChoice converts a 1-based menu number into an index.
func parseChoice(choice string, count int) (int, bool) {
	n, err := strconv.Atoi(choice)
	if err != nil || n < 1 || n > count {
		return 0, false
	}
	return n - 1, true
}

