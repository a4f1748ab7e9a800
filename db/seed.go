package db

import (
	"context"
	"database/sql"
	"encoding/json"

	"quiz_app_backend/models"

	"github.com/golang/glog"
	"github.com/pkg/errors"
)

// SeedData replaces the catalogue with the given courses in one transaction.
// Every document is validated before anything is written.
func SeedData(ctx context.Context, db *sql.DB, courses []models.SeedCourse) error {
	if err := models.ValidateCatalog(courses); err != nil {
		return errors.Wrap(err, "invalid seed data")
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "error starting transaction")
	}
	defer tx.Rollback()

	for _, table := range []string{"questions", "lessons", "courses"} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return errors.Wrapf(err, "error clearing %s", table)
		}
	}

	var lessonCount, questionCount int
	for _, course := range courses {
		var courseID int
		err := tx.QueryRowContext(ctx,
			"INSERT INTO courses (name, description) VALUES ($1, $2) RETURNING id",
			course.Name, course.Description,
		).Scan(&courseID)
		if err != nil {
			return errors.Wrapf(err, "error seeding course %q", course.Name)
		}

		for _, lesson := range course.Lessons {
			var lessonID int
			err := tx.QueryRowContext(ctx,
				"INSERT INTO lessons (name, course_id) VALUES ($1, $2) RETURNING id",
				lesson.Name, courseID,
			).Scan(&lessonID)
			if err != nil {
				return errors.Wrapf(err, "error seeding lesson %q", lesson.Name)
			}
			lessonCount++

			for _, q := range lesson.Questions {
				options, err := json.Marshal(q.Options)
				if err != nil {
					return errors.Wrap(err, "error encoding options")
				}
				if _, err := tx.ExecContext(ctx,
					"INSERT INTO questions (prompt, options, correct_answer, lesson_id) VALUES ($1, $2, $3, $4)",
					q.Prompt, string(options), q.CorrectAnswer, lessonID,
				); err != nil {
					return errors.Wrapf(err, "error seeding question %q", q.Prompt)
				}
				questionCount++
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return errors.Wrap(err, "error committing transaction")
	}

	glog.Infof("Seeded %d courses, %d lessons, %d questions", len(courses), lessonCount, questionCount)
	return nil
}

// DefaultCatalog is the built-in sample catalogue.
func DefaultCatalog() []models.SeedCourse {
	return []models.SeedCourse{
		{
			Name:        "JavaScript Fundamentals",
			Description: "Learn the fundamental concepts of JavaScript from scratch",
			Lessons: []models.SeedLesson{
				{
					Name: "Variables and Data Types",
					Questions: []models.SeedQuestion{
						{
							Prompt:        "Which of the following is the correct way to declare a variable in JavaScript?",
							Options:       []string{`var name = "John";`, `variable name = "John";`, `string name = "John";`, `declare name = "John";`},
							CorrectAnswer: `var name = "John";`,
						},
						{
							Prompt:        "What does typeof null return in JavaScript?",
							Options:       []string{"null", "undefined", "object", "string"},
							CorrectAnswer: "object",
						},
						{
							Prompt:        "What is the main difference between let and var?",
							Options:       []string{"There is no difference", "let is block scoped", "var is faster", "let cannot be reassigned"},
							CorrectAnswer: "let is block scoped",
						},
					},
				},
				{
					Name: "Functions",
					Questions: []models.SeedQuestion{
						{
							Prompt:        "What is the correct syntax for an arrow function?",
							Options:       []string{"const sum = (a, b) => a + b", "const sum = (a, b) -> a + b", "const sum = (a, b) { a + b }", "const sum = function(a, b) => a + b"},
							CorrectAnswer: "const sum = (a, b) => a + b",
						},
						{
							Prompt:        "What is hoisting in JavaScript?",
							Options:       []string{"A syntax error", "Moving declarations to the top of their scope", "A built-in function", "A kind of variable"},
							CorrectAnswer: "Moving declarations to the top of their scope",
						},
					},
				},
			},
		},
		{
			Name:        "React.js",
			Description: "Building modern web applications with React.js",
			Lessons: []models.SeedLesson{
				{
					Name: "Components",
					Questions: []models.SeedQuestion{
						{
							Prompt:        "What is the correct way to create a function component in React?",
							Options:       []string{"function MyComponent() { return <div>Hi</div>; }", "const MyComponent = <div>Hi</div>", "MyComponent = function() { <div>Hi</div> }", "component MyComponent() { return <div>Hi</div>; }"},
							CorrectAnswer: "function MyComponent() { return <div>Hi</div>; }",
						},
						{
							Prompt:        "What are props in React?",
							Options:       []string{"Properties passed to components", "Special functions", "Internal component state", "Component methods"},
							CorrectAnswer: "Properties passed to components",
						},
					},
				},
				{
					Name: "Hooks",
					Questions: []models.SeedQuestion{
						{
							Prompt:        "Which is the most basic hook for managing state in React?",
							Options:       []string{"useState", "useEffect", "useContext", "useReducer"},
							CorrectAnswer: "useState",
						},
						{
							Prompt:        "When does useEffect run without a dependency array?",
							Options:       []string{"Only on mount", "On every render", "Only on unmount", "Never"},
							CorrectAnswer: "On every render",
						},
					},
				},
			},
		},
		{
			Name:        "Node.js Backend",
			Description: "Building APIs and backend services with Node.js",
			Lessons: []models.SeedLesson{
				{
					Name: "Express.js",
					Questions: []models.SeedQuestion{
						{
							Prompt:        "What is the correct way to create a GET route in Express?",
							Options:       []string{`app.get("/path", handler)`, `app.route("/path", "GET", handler)`, `app.fetch("/path", handler)`, `express.get("/path", handler)`},
							CorrectAnswer: `app.get("/path", handler)`,
						},
						{
							Prompt:        "Which middleware is commonly used to parse JSON in Express?",
							Options:       []string{"express.json()", "body-parser.json()", "express.parse()", "json-middleware()"},
							CorrectAnswer: "express.json()",
						},
					},
				},
			},
		},
	}
}
