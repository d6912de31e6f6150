package todo_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	otelMocks "todofeed/infras/otel/mocks"
	"todofeed/internal/domains/todo/model/dto"
	svcMocks "todofeed/internal/domains/todo/service/mocks"
	"todofeed/internal/handlers/todo"
	gDto "todofeed/shared/dto"
	"todofeed/shared/failure"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const todoID = "70905d7e-c969-45b1-99f0-1aa155477204"

var sampleTodo = dto.TodoResponse{
	ID:      todoID,
	Content: "Test todo",
	Date:    "2023-04-15T19:46:51.109Z",
	Done:    false,
}

func newRouter(t *testing.T) (http.Handler, *svcMocks.MockTodo) {
	t.Helper()

	ctrl := gomock.NewController(t)
	mockService := svcMocks.NewMockTodo(ctrl)
	handler := todo.New(mockService, otelMocks.NewOtel())

	router := chi.NewRouter()
	router.Route("/api", handler.Router)

	return router, mockService
}

func serve(router http.Handler, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	return rec
}

type errorBody struct {
	Error struct {
		Message     string          `json:"message"`
		Description []failure.Issue `json:"description"`
	} `json:"error"`
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) errorBody {
	t.Helper()

	var body errorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body
}

func TestHandler_GetTodos(t *testing.T) {
	tests := []struct {
		name       string
		target     string
		wantParams *gDto.QueryParams
		wantCode   int
		wantError  string
	}{
		{
			name:       "defaults",
			target:     "/api/todos",
			wantParams: &gDto.QueryParams{Page: 1, Limit: 10},
			wantCode:   http.StatusOK,
		},
		{
			name:       "explicit page and limit",
			target:     "/api/todos?page=3&limit=3",
			wantParams: &gDto.QueryParams{Page: 3, Limit: 3},
			wantCode:   http.StatusOK,
		},
		{
			name:      "page is not a number",
			target:    "/api/todos?page=abc",
			wantCode:  http.StatusBadRequest,
			wantError: "invalid page parameter",
		},
		{
			name:      "page is zero",
			target:    "/api/todos?page=0",
			wantCode:  http.StatusBadRequest,
			wantError: "invalid page parameter",
		},
		{
			name:      "page too large for its window",
			target:    "/api/todos?page=922337203685477581&limit=100",
			wantCode:  http.StatusBadRequest,
			wantError: "invalid page parameter",
		},
		{
			name:      "limit is negative",
			target:    "/api/todos?limit=-1",
			wantCode:  http.StatusBadRequest,
			wantError: "invalid limit parameter",
		},
		{
			name:      "limit above maximum",
			target:    "/api/todos?limit=101",
			wantCode:  http.StatusBadRequest,
			wantError: "invalid limit parameter",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, mockService := newRouter(t)

			if tt.wantParams != nil {
				mockService.EXPECT().List(gomock.Any(), *tt.wantParams).Return(dto.GetTodosResponse{
					Total: 1,
					Pages: 1,
					Todos: []dto.TodoResponse{sampleTodo},
				}, nil)
			}

			rec := serve(router, http.MethodGet, tt.target, "")

			assert.Equal(t, tt.wantCode, rec.Code)

			if tt.wantError != "" {
				assert.Equal(t, tt.wantError, decodeError(t, rec).Error.Message)

				return
			}

			var body dto.GetTodosResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, 1, body.Total)
			assert.Equal(t, []dto.TodoResponse{sampleTodo}, body.Todos)
		})
	}
}

func TestHandler_GetTodos_StoreFailure(t *testing.T) {
	router, mockService := newRouter(t)

	mockService.EXPECT().List(gomock.Any(), gomock.Any()).
		Return(dto.GetTodosResponse{}, errors.New("pq: relation \"todos\" does not exist"))

	rec := serve(router, http.MethodGet, "/api/todos", "")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "internal server error", decodeError(t, rec).Error.Message)
	assert.NotContains(t, rec.Body.String(), "relation")
}

func TestHandler_CreateTodo(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		callSvc   bool
		svcErr    error
		wantCode  int
		wantError string
		wantField string
	}{
		{
			name:     "created",
			body:     `{"content":"Test todo"}`,
			callSvc:  true,
			wantCode: http.StatusCreated,
		},
		{
			name:      "missing content",
			body:      `{}`,
			wantCode:  http.StatusBadRequest,
			wantError: "content is required",
			wantField: "content",
		},
		{
			name:      "blank content",
			body:      `{"content":"   "}`,
			wantCode:  http.StatusBadRequest,
			wantError: "content must not be blank",
			wantField: "content",
		},
		{
			name:     "malformed json",
			body:     `{"content":`,
			wantCode: http.StatusBadRequest,
		},
		{
			name:      "store failure",
			body:      `{"content":"Test todo"}`,
			callSvc:   true,
			svcErr:    errors.New("connection refused"),
			wantCode:  http.StatusInternalServerError,
			wantError: "internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, mockService := newRouter(t)

			if tt.callSvc {
				mockService.EXPECT().
					CreateByContent(gomock.Any(), dto.CreateTodoRequest{Content: "Test todo"}).
					Return(sampleTodo, tt.svcErr)
			}

			rec := serve(router, http.MethodPost, "/api/todos", tt.body)

			assert.Equal(t, tt.wantCode, rec.Code)

			if tt.wantCode == http.StatusCreated {
				var body dto.TodoEnvelope
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
				assert.Equal(t, sampleTodo, body.Todo)

				return
			}

			errBody := decodeError(t, rec)
			if tt.wantError != "" {
				assert.Equal(t, tt.wantError, errBody.Error.Message)
			}

			if tt.wantField != "" {
				require.Len(t, errBody.Error.Description, 1)
				assert.Equal(t, tt.wantField, errBody.Error.Description[0].Field)
			}
		})
	}
}

func TestHandler_ToggleDone(t *testing.T) {
	tests := []struct {
		name     string
		id       string
		callSvc  bool
		svcRes   dto.TodoResponse
		svcErr   error
		wantCode int
	}{
		{
			name:     "toggled",
			id:       todoID,
			callSvc:  true,
			svcRes:   dto.TodoResponse{ID: todoID, Content: "Test todo", Date: sampleTodo.Date, Done: true},
			wantCode: http.StatusOK,
		},
		{
			name:     "not a uuid",
			id:       "42",
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "not found",
			id:       todoID,
			callSvc:  true,
			svcErr:   failure.NotFound(`todo with id "` + todoID + `" not found`),
			wantCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, mockService := newRouter(t)

			if tt.callSvc {
				mockService.EXPECT().ToggleDone(gomock.Any(), tt.id).Return(tt.svcRes, tt.svcErr)
			}

			rec := serve(router, http.MethodPut, "/api/todos/"+tt.id+"/toggle-done", "")

			assert.Equal(t, tt.wantCode, rec.Code)

			if tt.wantCode == http.StatusOK {
				var body dto.TodoEnvelope
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
				assert.True(t, body.Todo.Done)
			}
		})
	}
}

func TestHandler_DeleteTodo(t *testing.T) {
	tests := []struct {
		name     string
		id       string
		callSvc  bool
		svcErr   error
		wantCode int
	}{
		{name: "deleted", id: todoID, callSvc: true, wantCode: http.StatusNoContent},
		{name: "not a uuid", id: "not-a-uuid", wantCode: http.StatusBadRequest},
		{
			name:     "not found",
			id:       todoID,
			callSvc:  true,
			svcErr:   failure.NotFound(`todo with id "` + todoID + `" not found`),
			wantCode: http.StatusNotFound,
		},
		{name: "store failure", id: todoID, callSvc: true, svcErr: errors.New("timeout"), wantCode: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, mockService := newRouter(t)

			if tt.callSvc {
				mockService.EXPECT().DeleteByID(gomock.Any(), tt.id).Return(tt.svcErr)
			}

			rec := serve(router, http.MethodDelete, "/api/todos/"+tt.id, "")

			assert.Equal(t, tt.wantCode, rec.Code)

			if tt.wantCode == http.StatusNoContent {
				assert.Empty(t, rec.Body.String())
			}
		})
	}
}
