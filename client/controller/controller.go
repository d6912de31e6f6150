// Package controller is the UI-facing side of the client mirror. It fixes the
// page size, rejects blank content before any request is sent, and reports
// create and toggle outcomes asynchronously without failure detail.
package controller

import (
	"context"
	"strings"

	"todofeed/client/repository"
	"todofeed/config"

	"github.com/rs/zerolog/log"
)

const defaultPageSize = 3

// Result is the outcome of an asynchronous operation. Todo is set only when OK is true.
type Result struct {
	Todo repository.Todo
	OK   bool
}

type Todo struct {
	repo     repository.TodoRepository
	pageSize int
}

func New(repo repository.TodoRepository, cfg *config.Config) *Todo {
	pageSize := cfg.Client.PageSize
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}

	return &Todo{
		repo:     repo,
		pageSize: pageSize,
	}
}

func (c *Todo) PageSize() int {
	return c.pageSize
}

// Get fetches one page of todos using the configured page size.
func (c *Todo) Get(ctx context.Context, page int) (repository.Page, error) {
	return c.repo.Get(ctx, page, c.pageSize) //nolint:wrapcheck
}

// Create sends the new todo in the background. Blank content is rejected without a request.
func (c *Todo) Create(ctx context.Context, content string) <-chan Result {
	if strings.TrimSpace(content) == "" {
		return failed()
	}

	return async(func() (repository.Todo, error) {
		return c.repo.CreateByContent(ctx, content) //nolint:wrapcheck
	})
}

// ToggleDone flips the done flag in the background.
func (c *Todo) ToggleDone(ctx context.Context, id string) <-chan Result {
	return async(func() (repository.Todo, error) {
		return c.repo.ToggleDone(ctx, id) //nolint:wrapcheck
	})
}

func (c *Todo) DeleteByID(ctx context.Context, id string) error {
	return c.repo.DeleteByID(ctx, id) //nolint:wrapcheck
}

// FilterTodosByContent keeps, in order, the todos whose content contains search, ignoring case.
func FilterTodosByContent(search string, todos []repository.Todo) []repository.Todo {
	needle := strings.ToLower(search)
	res := make([]repository.Todo, 0, len(todos))

	for _, todo := range todos {
		if strings.Contains(strings.ToLower(todo.Content), needle) {
			res = append(res, todo)
		}
	}

	return res
}

func failed() <-chan Result {
	out := make(chan Result, 1)
	out <- Result{}
	close(out)

	return out
}

func async(call func() (repository.Todo, error)) <-chan Result {
	out := make(chan Result, 1)

	go func() {
		defer close(out)

		todo, err := call()
		if err != nil {
			log.Debug().Err(err).Msg("todo request failed")
			out <- Result{}

			return
		}

		out <- Result{Todo: todo, OK: true}
	}()

	return out
}
