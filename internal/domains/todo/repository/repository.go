package repository

//go:generate mockgen -source=repository.go -destination=mocks/repository_mock.go -package=mocks

import (
	"context"

	"todofeed/infras/otel"
	"todofeed/infras/postgres"
	"todofeed/internal/domains/todo/model"
	"todofeed/shared"
	gDto "todofeed/shared/dto"
	gRepo "todofeed/shared/repository"
)

// Todo is the todos table. Reads of a missing id report found=false instead of an error.
type Todo interface {
	Create(ctx context.Context, content string) (model.Todo, error)
	FindByID(ctx context.Context, id string) (todo model.Todo, found bool, err error)
	ListNewestFirst(ctx context.Context, params gDto.QueryParams) ([]model.Todo, error)
	CountAll(ctx context.Context) (int, error)
	SetDone(ctx context.Context, id string, done bool) (todo model.Todo, found bool, err error)
	DeleteByID(ctx context.Context, id string) (found bool, err error)
}

type repositoryImpl struct {
	table gRepo.Repository[model.Todo]
}

func New(db *postgres.Connection, otel otel.Otel) Todo {
	return &repositoryImpl{
		table: gRepo.NewRepository[model.Todo](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}

func byID(id string) gDto.FilterGroup {
	return shared.FilterByID(id, model.FieldID, model.TableName)
}

// Create inserts only the content; id, date and done come from column defaults.
func (r *repositoryImpl) Create(ctx context.Context, content string) (model.Todo, error) {
	return r.table.Insert(ctx, map[string]any{model.FieldContent: content})
}

func (r *repositoryImpl) FindByID(ctx context.Context, id string) (model.Todo, bool, error) {
	todo, err := r.table.Get(ctx, byID(id))
	if err != nil {
		return model.Todo{}, false, err
	}

	return todo, todo.ID != "", nil
}

// ListNewestFirst returns the page described by params ordered by date, newest first.
// Any sort set on params is replaced.
func (r *repositoryImpl) ListNewestFirst(ctx context.Context, params gDto.QueryParams) ([]model.Todo, error) {
	params.SortBy = model.FieldDate
	params.SortDir = gDto.SortDirDesc

	return r.table.GetAll(ctx, params, gDto.FilterGroup{})
}

func (r *repositoryImpl) CountAll(ctx context.Context) (int, error) {
	return r.table.Count(ctx, gDto.FilterGroup{})
}

func (r *repositoryImpl) SetDone(ctx context.Context, id string, done bool) (model.Todo, bool, error) {
	return r.table.Update(ctx, map[string]any{model.FieldDone: done}, byID(id))
}

func (r *repositoryImpl) DeleteByID(ctx context.Context, id string) (bool, error) {
	affected, err := r.table.Delete(ctx, byID(id))
	if err != nil {
		return false, err
	}

	return affected > 0, nil
}
