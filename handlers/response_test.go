package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"quiz_app_backend/store"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestParseID(t *testing.T) {
	tests := map[string]struct {
		id int
		ok bool
	}{
		"1":       {1, true},
		"42":      {42, true},
		"0":       {0, false},
		"-1":      {0, false},
		"abc":     {0, false},
		"7x":      {0, false},
		"1e3":     {0, false},
		"+1":      {0, false},
		" 1":      {0, false},
		"":        {0, false},
		"9999999": {9999999, true},
	}

	for raw, want := range tests {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Params = gin.Params{{Key: "courseId", Value: raw}}

		id, ok := parseID(c, "courseId")
		if id != want.id || ok != want.ok {
			t.Fatalf("parseID(%q) = (%d, %t), want (%d, %t)", raw, id, ok, want.id, want.ok)
		}
	}
}

func TestRespondStoreError(t *testing.T) {
	tests := []struct {
		err    error
		status int
		body   string
	}{
		{err: store.ErrNotFound, status: http.StatusNotFound, body: `{"success":false,"error":"Course not found"}`},
		{err: errors.Wrap(store.ErrNotFound, "lookup"), status: http.StatusNotFound, body: `{"success":false,"error":"Course not found"}`},
		{err: errors.New("connection refused"), status: http.StatusInternalServerError, body: `{"success":false,"error":"Failed to fetch lessons"}`},
	}

	for _, tt := range tests {
		rec := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(rec)
		c.Request = httptest.NewRequest(http.MethodGet, "/api/courses/1/lessons", nil)

		respondStoreError(c, tt.err, "Course not found", "Failed to fetch lessons")

		if rec.Code != tt.status {
			t.Fatalf("%v: status = %d, want %d", tt.err, rec.Code, tt.status)
		}
		if rec.Body.String() != tt.body {
			t.Fatalf("%v: body = %s, want %s", tt.err, rec.Body.String(), tt.body)
		}
	}
}
