package dto

import (
	"todofeed/internal/domains/todo/model"
	"todofeed/shared"
	"todofeed/shared/timezone"
)

type CreateTodoRequest struct {
	Content string `json:"content" validate:"required,notblank" example:"Buy milk"`
}

type TodoResponse struct {
	ID      string `json:"id"      example:"70905d7e-c969-45b1-99f0-1aa155477204"`
	Content string `json:"content" example:"Buy milk"`
	Date    string `json:"date"    example:"2023-04-15T19:46:51.109Z"`
	Done    bool   `json:"done"    example:"false"`
}

func (r *TodoResponse) FromModel(model model.Todo) {
	r.ID = model.ID
	r.Content = model.Content
	r.Date = timezone.FormatTimestamp(model.Date)
	r.Done = model.Done
}

// TodoEnvelope is the body of create and toggle responses.
type TodoEnvelope struct {
	Todo TodoResponse `json:"todo"`
}

type GetTodosResponse struct {
	Total int            `json:"total" example:"7"`
	Pages int            `json:"pages" example:"1"`
	Todos []TodoResponse `json:"todos"`
}

func (r *GetTodosResponse) FromModels(models []model.Todo, total, limit int) {
	r.Total = total
	r.Pages = shared.CalculateTotalPage(total, limit)

	r.Todos = make([]TodoResponse, len(models))
	for i, mod := range models {
		r.Todos[i].FromModel(mod)
	}
}
