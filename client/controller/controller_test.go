package controller_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"todofeed/client/controller"
	"todofeed/client/repository"
	"todofeed/client/repository/mocks"
	"todofeed/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const todoID = "70905d7e-c969-45b1-99f0-1aa155477204"

func newController(t *testing.T, pageSize int) (*controller.Todo, *mocks.MockTodoRepository) {
	t.Helper()

	repo := mocks.NewMockTodoRepository(gomock.NewController(t))

	cfg := &config.Config{}
	cfg.Client.PageSize = pageSize

	return controller.New(repo, cfg), repo
}

func receive(t *testing.T, results <-chan controller.Result) controller.Result {
	t.Helper()

	select {
	case res, ok := <-results:
		require.True(t, ok, "channel closed without a result")

		return res
	case <-time.After(time.Second):
		t.Fatal("no result delivered")
	}

	return controller.Result{}
}

func TestGet_UsesPageSize(t *testing.T) {
	ctrl, repo := newController(t, 0)
	assert.Equal(t, 3, ctrl.PageSize())

	repo.EXPECT().Get(gomock.Any(), 2, 3).Return(repository.Page{Total: 4, Pages: 2}, nil)

	page, err := ctrl.Get(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, 2, page.Pages)
}

func TestCreate(t *testing.T) {
	ctrl, repo := newController(t, 3)

	repo.EXPECT().CreateByContent(gomock.Any(), "Buy milk").Return(repository.Todo{ID: todoID, Content: "Buy milk"}, nil)

	res := receive(t, ctrl.Create(context.Background(), "Buy milk"))
	assert.True(t, res.OK)
	assert.Equal(t, todoID, res.Todo.ID)
}

func TestCreate_BlankContentSendsNothing(t *testing.T) {
	ctrl, _ := newController(t, 3)

	for _, content := range []string{"", "   ", "\t\n"} {
		res := receive(t, ctrl.Create(context.Background(), content))
		assert.False(t, res.OK)
	}
}

func TestCreate_Failure(t *testing.T) {
	ctrl, repo := newController(t, 3)

	repo.EXPECT().CreateByContent(gomock.Any(), gomock.Any()).Return(repository.Todo{}, repository.ErrServer)

	res := receive(t, ctrl.Create(context.Background(), "Buy milk"))
	assert.False(t, res.OK)
	assert.Equal(t, repository.Todo{}, res.Todo)
}

func TestToggleDone(t *testing.T) {
	ctrl, repo := newController(t, 3)

	gomock.InOrder(
		repo.EXPECT().ToggleDone(gomock.Any(), todoID).Return(repository.Todo{ID: todoID, Done: true}, nil),
		repo.EXPECT().ToggleDone(gomock.Any(), todoID).Return(repository.Todo{}, repository.ErrInvalidResponse),
	)

	res := receive(t, ctrl.ToggleDone(context.Background(), todoID))
	assert.True(t, res.OK)
	assert.True(t, res.Todo.Done)

	res = receive(t, ctrl.ToggleDone(context.Background(), todoID))
	assert.False(t, res.OK)
}

func TestDeleteByID(t *testing.T) {
	ctrl, repo := newController(t, 3)

	repo.EXPECT().DeleteByID(gomock.Any(), todoID).Return(repository.ErrServer)

	assert.True(t, errors.Is(ctrl.DeleteByID(context.Background(), todoID), repository.ErrServer))
}

func TestFilterTodosByContent(t *testing.T) {
	todos := []repository.Todo{
		{ID: "1", Content: "Buy Milk"},
		{ID: "2", Content: "walk the dog"},
		{ID: "3", Content: "milkshake"},
	}

	tests := []struct {
		name    string
		search  string
		wantIDs []string
	}{
		{name: "case insensitive", search: "MILK", wantIDs: []string{"1", "3"}},
		{name: "empty search keeps all", search: "", wantIDs: []string{"1", "2", "3"}},
		{name: "no match", search: "cat", wantIDs: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := controller.FilterTodosByContent(tt.search, todos)

			ids := make([]string, 0, len(got))
			for _, todo := range got {
				ids = append(ids, todo.ID)
			}

			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}
