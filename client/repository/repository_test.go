package repository_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"todofeed/client/repository"
	"todofeed/infras/otel/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	todoID    = "70905d7e-c969-45b1-99f0-1aa155477204"
	validTodo = `{"id":"` + todoID + `","content":"Test todo","date":"2023-04-15T19:46:51.109Z","done":false}`
)

func newRepository(t *testing.T, handler http.HandlerFunc) repository.TodoRepository {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return repository.NewWithClient(server.URL+"/", server.Client(), mocks.NewOtel())
}

func reply(status int, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}
}

func TestGet(t *testing.T) {
	repo := newRepository(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/todos", r.URL.Path)
		assert.Equal(t, "2", r.URL.Query().Get("page"))
		assert.Equal(t, "3", r.URL.Query().Get("limit"))

		reply(http.StatusOK, `{"total":4,"pages":2,"todos":[`+validTodo+`]}`)(w, r)
	})

	page, err := repo.Get(context.Background(), 2, 3)
	require.NoError(t, err)
	assert.Equal(t, 4, page.Total)
	assert.Equal(t, 2, page.Pages)
	require.Len(t, page.Todos, 1)
	assert.Equal(t, todoID, page.Todos[0].ID)
	assert.Equal(t, 2023, page.Todos[0].Date.Year())
}

func TestGet_Failures(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
		wantErr error
	}{
		{
			name:    "server error",
			handler: reply(http.StatusInternalServerError, `{"error":{"message":"internal server error"}}`),
			wantErr: repository.ErrServer,
		},
		{
			name:    "bad request",
			handler: reply(http.StatusBadRequest, `{"error":{"message":"invalid page parameter"}}`),
			wantErr: repository.ErrServer,
		},
		{
			name:    "missing pages",
			handler: reply(http.StatusOK, `{"total":1,"todos":[`+validTodo+`]}`),
			wantErr: repository.ErrInvalidResponse,
		},
		{
			name:    "todo with empty content",
			handler: reply(http.StatusOK, `{"total":1,"pages":1,"todos":[{"id":"`+todoID+`","content":"","date":"2023-04-15T19:46:51.109Z","done":false}]}`),
			wantErr: repository.ErrInvalidResponse,
		},
		{
			name:    "not json",
			handler: reply(http.StatusOK, `<html></html>`),
			wantErr: repository.ErrInvalidResponse,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newRepository(t, tt.handler)

			_, err := repo.Get(context.Background(), 1, 3)
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
		})
	}
}

func TestGet_Unreachable(t *testing.T) {
	server := httptest.NewServer(reply(http.StatusOK, "{}"))
	server.Close()

	repo := repository.NewWithClient(server.URL, http.DefaultClient, mocks.NewOtel())

	_, err := repo.Get(context.Background(), 1, 3)
	assert.True(t, errors.Is(err, repository.ErrServer))
}

func TestCreateByContent(t *testing.T) {
	repo := newRepository(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body map[string]string
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "Test todo", body["content"])

		reply(http.StatusCreated, `{"todo":`+validTodo+`}`)(w, r)
	})

	todo, err := repo.CreateByContent(context.Background(), "Test todo")
	require.NoError(t, err)
	assert.Equal(t, "Test todo", todo.Content)
	assert.False(t, todo.Done)
}

func TestCreateByContent_InvalidEnvelope(t *testing.T) {
	repo := newRepository(t, reply(http.StatusCreated, validTodo))

	_, err := repo.CreateByContent(context.Background(), "Test todo")
	assert.True(t, errors.Is(err, repository.ErrInvalidResponse))
}

func TestToggleDone(t *testing.T) {
	repo := newRepository(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/todos/"+todoID+"/toggle-done", r.URL.Path)

		reply(http.StatusOK, `{"todo":{"id":"`+todoID+`","content":"Test todo","date":"2023-04-15T19:46:51.109Z","done":true}}`)(w, r)
	})

	todo, err := repo.ToggleDone(context.Background(), todoID)
	require.NoError(t, err)
	assert.True(t, todo.Done)
}

func TestToggleDone_NotFound(t *testing.T) {
	repo := newRepository(t, reply(http.StatusNotFound, `{"error":{"message":"not found"}}`))

	_, err := repo.ToggleDone(context.Background(), todoID)
	assert.True(t, errors.Is(err, repository.ErrServer))
}

func TestDeleteByID(t *testing.T) {
	repo := newRepository(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/todos/"+todoID, r.URL.Path)

		w.WriteHeader(http.StatusNoContent)
	})

	assert.NoError(t, repo.DeleteByID(context.Background(), todoID))
}

func TestDeleteByID_Failure(t *testing.T) {
	repo := newRepository(t, reply(http.StatusNotFound, `{"error":{"message":"not found"}}`))

	assert.True(t, errors.Is(repo.DeleteByID(context.Background(), todoID), repository.ErrServer))
}
