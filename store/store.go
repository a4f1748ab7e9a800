package store

import (
	"context"
	"database/sql"
	"encoding/json"

	"quiz_app_backend/models"

	"github.com/pkg/errors"
)

// ErrNotFound is returned when a course, lesson or question does not exist.
var ErrNotFound = errors.New("not found")

// Store is the read-only access layer over courses, lessons and questions.
// It is safe for concurrent use; the underlying *sql.DB is shared.
type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// ListCourses returns all courses ordered by name.
func (s *Store) ListCourses(ctx context.Context) ([]models.Course, error) {
	rows, err := s.db.QueryContext(ctx, `
        SELECT id, name, description, created_at, updated_at
        FROM courses
        ORDER BY name ASC, id ASC
    `)
	if err != nil {
		return nil, errors.Wrap(err, "error fetching courses")
	}
	defer rows.Close()

	courses := make([]models.Course, 0)
	for rows.Next() {
		var course models.Course
		if err := rows.Scan(&course.ID, &course.Name, &course.Description, &course.CreatedAt, &course.UpdatedAt); err != nil {
			return nil, errors.Wrap(err, "error scanning course")
		}
		courses = append(courses, course)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "error iterating courses")
	}
	return courses, nil
}

func (s *Store) GetCourse(ctx context.Context, courseID int) (models.Course, error) {
	var course models.Course
	err := s.db.QueryRowContext(ctx, `
        SELECT id, name, description, created_at, updated_at
        FROM courses
        WHERE id = $1
    `, courseID).Scan(&course.ID, &course.Name, &course.Description, &course.CreatedAt, &course.UpdatedAt)
	if err == sql.ErrNoRows {
		return models.Course{}, ErrNotFound
	}
	if err != nil {
		return models.Course{}, errors.Wrapf(err, "error fetching course %d", courseID)
	}
	return course, nil
}

// ListLessons returns the lessons of one course ordered by name.
func (s *Store) ListLessons(ctx context.Context, courseID int) ([]models.Lesson, error) {
	rows, err := s.db.QueryContext(ctx, `
        SELECT id, name, course_id, created_at, updated_at
        FROM lessons
        WHERE course_id = $1
        ORDER BY name ASC, id ASC
    `, courseID)
	if err != nil {
		return nil, errors.Wrap(err, "error fetching lessons")
	}
	defer rows.Close()

	lessons := make([]models.Lesson, 0)
	for rows.Next() {
		var lesson models.Lesson
		if err := rows.Scan(&lesson.ID, &lesson.Name, &lesson.CourseID, &lesson.CreatedAt, &lesson.UpdatedAt); err != nil {
			return nil, errors.Wrap(err, "error scanning lesson")
		}
		lessons = append(lessons, lesson)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "error iterating lessons")
	}
	return lessons, nil
}

// GetLesson resolves a lesson together with its course.
func (s *Store) GetLesson(ctx context.Context, lessonID int) (models.LessonRef, error) {
	var lesson models.LessonRef
	err := s.db.QueryRowContext(ctx, `
        SELECT l.id, l.name, c.id, c.name
        FROM lessons l
        JOIN courses c ON c.id = l.course_id
        WHERE l.id = $1
    `, lessonID).Scan(&lesson.ID, &lesson.Name, &lesson.Course.ID, &lesson.Course.Name)
	if err == sql.ErrNoRows {
		return models.LessonRef{}, ErrNotFound
	}
	if err != nil {
		return models.LessonRef{}, errors.Wrapf(err, "error fetching lesson %d", lessonID)
	}
	return lesson, nil
}

// ListQuestions returns the questions of one lesson in id order.
func (s *Store) ListQuestions(ctx context.Context, lessonID int) ([]models.Question, error) {
	rows, err := s.db.QueryContext(ctx, `
        SELECT id, prompt, options, correct_answer, lesson_id
        FROM questions
        WHERE lesson_id = $1
        ORDER BY id ASC
    `, lessonID)
	if err != nil {
		return nil, errors.Wrap(err, "error fetching questions")
	}
	defer rows.Close()

	questions := make([]models.Question, 0)
	for rows.Next() {
		var (
			question models.Question
			options  string
		)
		if err := rows.Scan(&question.ID, &question.Prompt, &options, &question.CorrectAnswer, &question.LessonID); err != nil {
			return nil, errors.Wrap(err, "error scanning question")
		}
		if question.Options, err = decodeOptions(options); err != nil {
			return nil, errors.Wrapf(err, "error decoding options of question %d", question.ID)
		}
		questions = append(questions, question)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "error iterating questions")
	}
	return questions, nil
}

// GetQuestion resolves a question with its lesson and that lesson's course.
func (s *Store) GetQuestion(ctx context.Context, questionID int) (models.QuestionWithContext, error) {
	var (
		q       models.QuestionWithContext
		options string
	)
	err := s.db.QueryRowContext(ctx, `
        SELECT q.id, q.prompt, q.options, q.correct_answer, q.lesson_id,
               l.name, c.id, c.name
        FROM questions q
        JOIN lessons l ON l.id = q.lesson_id
        JOIN courses c ON c.id = l.course_id
        WHERE q.id = $1
    `, questionID).Scan(
		&q.ID,
		&q.Prompt,
		&options,
		&q.CorrectAnswer,
		&q.LessonID,
		&q.Lesson.Name,
		&q.Lesson.Course.ID,
		&q.Lesson.Course.Name,
	)
	if err == sql.ErrNoRows {
		return models.QuestionWithContext{}, ErrNotFound
	}
	if err != nil {
		return models.QuestionWithContext{}, errors.Wrapf(err, "error fetching question %d", questionID)
	}
	q.Lesson.ID = q.LessonID

	if q.Options, err = decodeOptions(options); err != nil {
		return models.QuestionWithContext{}, errors.Wrapf(err, "error decoding options of question %d", questionID)
	}
	return q, nil
}

func decodeOptions(raw string) ([]string, error) {
	options := make([]string, 0)
	if err := json.Unmarshal([]byte(raw), &options); err != nil {
		return nil, err
	}
	return options, nil
}
