package quiz

import (
	"slices"
	"testing"

	"quiz_app_backend/models"

	"github.com/pkg/errors"
)

func sampleQuestion() models.QuestionWithContext {
	return models.QuestionWithContext{
		Question: models.Question{
			ID:            7,
			Prompt:        "2+2=?",
			Options:       []string{"3", "4", "5"},
			CorrectAnswer: "4",
			LessonID:      2,
		},
		Lesson: models.LessonRef{ID: 2, Name: "Y", Course: models.CourseRef{ID: 1, Name: "X"}},
	}
}

func TestEvaluateCorrectAnswer(t *testing.T) {
	verdict, err := Evaluate(sampleQuestion(), "4")
	if err != nil {
		t.Fatalf("Evaluate failed: %v", err)
	}
	if !verdict.IsCorrect || verdict.CorrectAnswer != "4" || verdict.QuestionID != 7 {
		t.Fatalf("unexpected verdict: %+v", verdict)
	}
	if verdict.Question.Prompt != "2+2=?" || len(verdict.Question.Options) != 3 {
		t.Fatalf("unexpected question summary: %+v", verdict.Question)
	}
	if verdict.Context.Lesson.Name != "Y" || verdict.Context.Lesson.Course.Name != "X" {
		t.Fatalf("unexpected context: %+v", verdict.Context)
	}
}

func TestEvaluateNormalizesWhitespaceAndCase(t *testing.T) {
	q := sampleQuestion()
	q.Options = []string{"Blue", "Green"}
	q.CorrectAnswer = "Blue"

	for _, answer := range []string{" 4 ", "4\n"} {
		verdict, err := Evaluate(sampleQuestion(), answer)
		if err != nil {
			t.Fatalf("Evaluate(%q) failed: %v", answer, err)
		}
		if !verdict.IsCorrect {
			t.Fatalf("Evaluate(%q) should be correct", answer)
		}
		if verdict.SubmittedAnswer != answer {
			t.Fatalf("SubmittedAnswer = %q, want untrimmed %q", verdict.SubmittedAnswer, answer)
		}
	}

	verdict, err := Evaluate(q, "  bLUE")
	if err != nil {
		t.Fatalf("Evaluate failed: %v", err)
	}
	if !verdict.IsCorrect {
		t.Fatalf("case-insensitive match should be correct")
	}
}

func TestEvaluateWrongOption(t *testing.T) {
	for _, answer := range []string{"3", "5"} {
		verdict, err := Evaluate(sampleQuestion(), answer)
		if err != nil {
			t.Fatalf("Evaluate(%q) failed: %v", answer, err)
		}
		if verdict.IsCorrect {
			t.Fatalf("Evaluate(%q) should be incorrect", answer)
		}
		if verdict.CorrectAnswer != "4" {
			t.Fatalf("CorrectAnswer = %q, want 4", verdict.CorrectAnswer)
		}
	}
}

func TestEvaluateRejectsAnswerOutsideOptions(t *testing.T) {
	for _, answer := range []string{"7", "", "44", "4 4"} {
		if _, err := Evaluate(sampleQuestion(), answer); !errors.Is(err, ErrAnswerNotAnOption) {
			t.Fatalf("Evaluate(%q) error = %v, want ErrAnswerNotAnOption", answer, err)
		}
	}
}

func TestEvaluateIsIdempotent(t *testing.T) {
	first, err := Evaluate(sampleQuestion(), "5")
	if err != nil {
		t.Fatalf("Evaluate failed: %v", err)
	}
	second, err := Evaluate(sampleQuestion(), "5")
	if err != nil {
		t.Fatalf("Evaluate failed: %v", err)
	}
	if first.IsCorrect != second.IsCorrect || first.CorrectAnswer != second.CorrectAnswer ||
		first.SubmittedAnswer != second.SubmittedAnswer || first.QuestionID != second.QuestionID {
		t.Fatalf("verdicts differ: %+v vs %+v", first, second)
	}
}

func TestPublicQuestions(t *testing.T) {
	questions := []models.Question{sampleQuestion().Question, {ID: 8, Prompt: "?", Options: []string{"a", "b"}, CorrectAnswer: "a"}}
	public := PublicQuestions(questions)
	if len(public) != 2 || public[0].ID != 7 || public[1].ID != 8 {
		t.Fatalf("unexpected public questions: %+v", public)
	}
}

func TestShufflePermutesSameSet(t *testing.T) {
	items := []int{1, 2, 3, 4, 5, 6, 7, 8}
	for trial := 0; trial < 50; trial++ {
		shuffled := slices.Clone(items)
		Shuffle(shuffled)
		sorted := slices.Clone(shuffled)
		slices.Sort(sorted)
		if !slices.Equal(sorted, items) {
			t.Fatalf("shuffle changed the element set: %v", shuffled)
		}
	}
}

func TestShuffleUsesFisherYatesIndices(t *testing.T) {
	original := intn
	t.Cleanup(func() { intn = original })

	var bounds []int
	intn = func(n int) int {
		bounds = append(bounds, n)
		return 0
	}

	items := []string{"a", "b", "c", "d"}
	Shuffle(items)

	if !slices.Equal(bounds, []int{4, 3, 2}) {
		t.Fatalf("intn bounds = %v, want [4 3 2]", bounds)
	}
	// j=0 at every step rotates the first element to the end.
	if !slices.Equal(items, []string{"b", "c", "d", "a"}) {
		t.Fatalf("items = %v", items)
	}
}

func TestShuffleRoughlyUniform(t *testing.T) {
	const (
		n      = 4
		trials = 40000
	)
	var counts [n][n]int
	for trial := 0; trial < trials; trial++ {
		items := []int{0, 1, 2, 3}
		Shuffle(items)
		for pos, item := range items {
			counts[item][pos]++
		}
	}

	expected := float64(trials) / n
	for item := 0; item < n; item++ {
		for pos := 0; pos < n; pos++ {
			got := float64(counts[item][pos])
			if got < expected*0.9 || got > expected*1.1 {
				t.Fatalf("item %d at position %d seen %v times, expected about %v", item, pos, got, expected)
			}
		}
	}
}

func TestShuffleHandlesShortSlices(t *testing.T) {
	Shuffle([]int(nil))
	one := []int{1}
	Shuffle(one)
	if one[0] != 1 {
		t.Fatalf("single element changed: %v", one)
	}
}
