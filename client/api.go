package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"quiz_app_backend/models"

	"github.com/pkg/errors"
)

const (
	DefaultServerURL = "http://127.0.0.1:8080"
	DefaultTimeout   = 10 * time.Second
)

// ErrUnreachable wraps transport failures: refused connections, timeouts and
// unreadable responses.
var ErrUnreachable = errors.New("server unreachable")

// APIError is a failure reported by the server in its error envelope.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s (status %d)", e.Message, e.Status)
}

// API is a typed client for the quiz HTTP API.
type API struct {
	baseURL string
	http    *http.Client
}

func NewAPI(baseURL string, httpClient *http.Client) *API {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		baseURL = DefaultServerURL
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: DefaultTimeout}
	}
	return &API{baseURL: baseURL, http: httpClient}
}

func (a *API) Health(ctx context.Context) (models.HealthResponse, error) {
	var payload models.HealthResponse
	err := a.do(ctx, http.MethodGet, "/health", nil, &payload)
	return payload, err
}

func (a *API) Courses(ctx context.Context) ([]models.Course, error) {
	var payload models.CoursesResponse
	if err := a.do(ctx, http.MethodGet, "/api/courses", nil, &payload); err != nil {
		return nil, err
	}
	return payload.Data, nil
}

func (a *API) Lessons(ctx context.Context, courseID int) (models.LessonsResponse, error) {
	var payload models.LessonsResponse
	err := a.do(ctx, http.MethodGet, fmt.Sprintf("/api/courses/%d/lessons", courseID), nil, &payload)
	return payload, err
}

func (a *API) Questions(ctx context.Context, lessonID int) (models.QuestionsResponse, error) {
	var payload models.QuestionsResponse
	err := a.do(ctx, http.MethodGet, fmt.Sprintf("/api/lessons/%d/questions", lessonID), nil, &payload)
	return payload, err
}

func (a *API) Evaluate(ctx context.Context, questionID int, answer string) (models.Verdict, error) {
	var payload models.EvaluateResponse
	req := models.EvaluateRequest{QuestionID: questionID, Answer: answer}
	if err := a.do(ctx, http.MethodPost, "/api/evaluate", req, &payload); err != nil {
		return models.Verdict{}, err
	}
	return payload.Data, nil
}

func (a *API) do(ctx context.Context, method, path string, body any, out any) error {
	var reader *bytes.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return errors.Wrap(err, "encode request")
		}
		reader = bytes.NewReader(encoded)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, a.baseURL+path, reader)
	if err != nil {
		return errors.Wrap(err, "build request")
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := a.http.Do(req)
	if err != nil {
		return errors.WithMessage(ErrUnreachable, err.Error())
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		var payload models.ErrorResponse
		if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil || payload.Error == "" {
			payload.Error = http.StatusText(resp.StatusCode)
		}
		return &APIError{Status: resp.StatusCode, Message: payload.Error}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.WithMessage(ErrUnreachable, "invalid response: "+err.Error())
	}
	return nil
}
