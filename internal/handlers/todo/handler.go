package todo

import (
	"net/http"

	"todofeed/infras/otel"
	"todofeed/internal/domains/todo/model/dto"
	"todofeed/internal/domains/todo/service"
	"todofeed/shared/constant"
	gDto "todofeed/shared/dto"
	"todofeed/shared/validator"
	"todofeed/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

const idValidationTag = "required,uuid"

type Handler struct {
	service service.Todo
	otel    otel.Otel
}

func New(service service.Todo, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/todos", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetTodos)
		routerGroup.Post("/", handler.CreateTodo)
		routerGroup.Put("/{id}/toggle-done", handler.ToggleDone)
		routerGroup.Delete("/{id}", handler.DeleteTodo)
	})
}

// GetTodos lists one page of todos, newest first.
// @Summary List todos
// @Description Retrieve one page of todos ordered by date, newest first, with the total count and page count.
// @Tags Todo
// @Produce json
// @Param page query int false "Page number, starting at 1" default(1)
// @Param limit query int false "Page size, at most 100" default(10)
// @Success 200 {object} dto.GetTodosResponse
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/todos [get]
func (handler *Handler) GetTodos(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetTodos")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	if err := queryParams.FromRequest(request); err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Str("query", request.URL.RawQuery).Msg("invalid pagination parameters")

		response.WithError(writer, err)

		return
	}

	todos, err := handler.service.List(ctx, queryParams)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get todos")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Todos retrieved successfully")

	response.WithJSON(writer, http.StatusOK, todos)
}

// CreateTodo creates a todo from its content.
// @Summary Create a todo
// @Description Create a todo. The id and date are assigned by the store and done starts false.
// @Tags Todo
// @Accept json
// @Produce json
// @Param request body dto.CreateTodoRequest true "Create Todo Request"
// @Success 201 {object} dto.TodoEnvelope
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/todos [post]
func (handler *Handler) CreateTodo(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateTodo")
	defer scope.End()

	req := dto.CreateTodoRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	todo, err := handler.service.CreateByContent(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create todo")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Todo created successfully with id " + todo.ID)

	response.WithJSON(writer, http.StatusCreated, dto.TodoEnvelope{Todo: todo})
}

// ToggleDone flips the done flag of a todo.
// @Summary Toggle a todo
// @Description Flip the done flag of the todo with the given id.
// @Tags Todo
// @Produce json
// @Param id path string true "Todo ID" format(uuid)
// @Success 200 {object} dto.TodoEnvelope
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/todos/{id}/toggle-done [put]
func (handler *Handler) ToggleDone(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ToggleDone")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)

	if err := validator.ValidateParam(constant.RequestParamID, id, idValidationTag); err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Str("id", id).Msg("invalid todo id")

		response.WithError(writer, err)

		return
	}

	todo, err := handler.service.ToggleDone(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("id", id).Msg("failed to toggle todo")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Todo toggled successfully")

	response.WithJSON(writer, http.StatusOK, dto.TodoEnvelope{Todo: todo})
}

// DeleteTodo deletes a todo by its id.
// @Summary Delete a todo
// @Description Delete the todo with the given id.
// @Tags Todo
// @Param id path string true "Todo ID" format(uuid)
// @Success 204
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/todos/{id} [delete]
func (handler *Handler) DeleteTodo(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteTodo")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)

	if err := validator.ValidateParam(constant.RequestParamID, id, idValidationTag); err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Str("id", id).Msg("invalid todo id")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.DeleteByID(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("id", id).Msg("failed to delete todo")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Todo deleted successfully")

	response.WithNoContent(writer)
}
