package response_test

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"todofeed/shared/failure"
	"todofeed/transport/http/response"

	"github.com/stretchr/testify/assert"
)

func TestWithJSON(t *testing.T) {
	rec := httptest.NewRecorder()

	response.WithJSON(rec, http.StatusCreated, map[string]any{"todo": map[string]any{"done": false}})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"todo":{"done":false}}`, rec.Body.String())
}

func TestWithNoContent(t *testing.T) {
	rec := httptest.NewRecorder()

	response.WithNoContent(rec)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestWithError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantBody string
	}{
		{
			name:     "bad request with issues",
			err:      failure.BadRequestWithIssues("content is required", []failure.Issue{{Field: "content", Message: "content is required"}}),
			wantCode: http.StatusBadRequest,
			wantBody: `{"error":{"message":"content is required","description":[{"field":"content","message":"content is required"}]}}`,
		},
		{
			name:     "not found",
			err:      fmt.Errorf("toggle: %w", failure.NotFound(`todo with id "x" not found`)),
			wantCode: http.StatusNotFound,
			wantBody: `{"error":{"message":"todo with id \"x\" not found"}}`,
		},
		{
			name:     "store failure hides detail",
			err:      errors.New("pq: password authentication failed for user \"todo\""),
			wantCode: http.StatusInternalServerError,
			wantBody: `{"error":{"message":"internal server error"}}`,
		},
		{
			name:     "network error hides detail",
			err:      errors.New("dial tcp 10.0.0.1:5432"),
			wantCode: http.StatusInternalServerError,
			wantBody: `{"error":{"message":"internal server error"}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()

			response.WithError(rec, tt.err)

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}

func TestDefaultResponses(t *testing.T) {
	rec := httptest.NewRecorder()
	response.WithRequestLimitExceeded(rec)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)

	rec = httptest.NewRecorder()
	response.WithPreparingShutdown(rec)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	rec = httptest.NewRecorder()
	response.WithUnhealthy(rec)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	rec = httptest.NewRecorder()
	response.WithMessage(rec, http.StatusOK, "OK")
	assert.JSONEq(t, `{"message":"OK"}`, rec.Body.String())
}
