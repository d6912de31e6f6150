package service

//go:generate mockgen -source=service.go -destination=mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"todofeed/infras/otel"
	"todofeed/internal/domains/todo/model"
	"todofeed/internal/domains/todo/model/dto"
	"todofeed/internal/domains/todo/repository"
	"todofeed/shared/constant"
	gDto "todofeed/shared/dto"
	"todofeed/shared/failure"
	"todofeed/shared/schema"

	"github.com/rs/zerolog/log"
)

type Todo interface {
	List(ctx context.Context, params gDto.QueryParams) (dto.GetTodosResponse, error)
	CreateByContent(ctx context.Context, req dto.CreateTodoRequest) (dto.TodoResponse, error)
	ToggleDone(ctx context.Context, id string) (dto.TodoResponse, error)
	DeleteByID(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo repository.Todo
	otel otel.Otel
}

func New(repo repository.Todo, otel otel.Otel) Todo {
	return &serviceImpl{
		repo: repo,
		otel: otel,
	}
}

func notFound(id string) error {
	return failure.NotFound(fmt.Sprintf("todo with id %q not found", id))
}

// List returns one page of todos, newest first, with the exact total and page count.
// A page past the end is an empty list, not an error.
func (s *serviceImpl) List(ctx context.Context, params gDto.QueryParams) (res dto.GetTodosResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".List")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	params = params.WithDefaults()

	scope.SetAttributes(map[string]any{"page": params.Page, "limit": params.Limit})

	total, err := s.repo.CountAll(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to count todos")

		return res, fmt.Errorf("failed to count todos: %w", err)
	}

	models, err := s.repo.ListNewestFirst(ctx, params)
	if err != nil {
		log.Error().Err(err).Msg("failed to get todos")

		return res, fmt.Errorf("failed to get todos: %w", err)
	}

	res.FromModels(models, total, params.Limit)

	if err = schema.ValidateTodos(res); err != nil {
		log.Error().Err(err).Msg("stored todos do not match the record schema")

		return dto.GetTodosResponse{}, fmt.Errorf("invalid todo list: %w", err)
	}

	return res, nil
}

// CreateByContent inserts a new todo. The store assigns its id and date, and done starts false.
func (s *serviceImpl) CreateByContent(ctx context.Context, req dto.CreateTodoRequest) (res dto.TodoResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateByContent")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	todo, err := s.repo.Create(ctx, req.Content)
	if err != nil {
		log.Error().Err(err).Msg("failed to create todo")

		return res, fmt.Errorf("failed to create todo: %w", err)
	}

	return s.toResponse(todo)
}

// ToggleDone reads the current done flag of the todo and writes its negation.
// Two racing toggles may both read the same value; the last write wins.
func (s *serviceImpl) ToggleDone(ctx context.Context, id string) (res dto.TodoResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ToggleDone")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	current, found, err := s.repo.FindByID(ctx, id)
	if err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to get todo")

		return res, fmt.Errorf("failed to get todo: %w", err)
	}

	if !found {
		return res, notFound(id)
	}

	updated, found, err := s.repo.SetDone(ctx, id, !current.Done)
	if err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to toggle todo")

		return res, fmt.Errorf("failed to toggle todo: %w", err)
	}

	// deleted between the read and the write
	if !found {
		return res, notFound(id)
	}

	return s.toResponse(updated)
}

func (s *serviceImpl) DeleteByID(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".DeleteByID")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	found, err := s.repo.DeleteByID(ctx, id)
	if err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to delete todo")

		return fmt.Errorf("failed to delete todo: %w", err)
	}

	if !found {
		return notFound(id)
	}

	return nil
}

func (s *serviceImpl) toResponse(todo model.Todo) (res dto.TodoResponse, err error) {
	res.FromModel(todo)

	if err = schema.ValidateTodo(res); err != nil {
		log.Error().Err(err).Str("id", todo.ID).Msg("stored todo does not match the record schema")

		return dto.TodoResponse{}, fmt.Errorf("invalid todo: %w", err)
	}

	return res, nil
}
