package schema_test

import (
	"errors"
	"testing"

	"todofeed/shared/schema"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validTodo = `{"id":"70905d7e-c969-45b1-99f0-1aa155477204","content":"Test todo","date":"2023-04-15T19:46:51.109Z","done":false}`

func TestValidate_Todo(t *testing.T) {
	tests := []struct {
		name      string
		raw       string
		wantPaths []string
	}{
		{
			name: "valid todo",
			raw:  validTodo,
		},
		{
			name:      "empty content",
			raw:       `{"id":"70905d7e-c969-45b1-99f0-1aa155477204","content":"","date":"2023-04-15T19:46:51.109Z","done":false}`,
			wantPaths: []string{"content"},
		},
		{
			name:      "malformed id and date",
			raw:       `{"id":"42","content":"x","date":"yesterday","done":false}`,
			wantPaths: []string{"id", "date"},
		},
		{
			name:      "done is not a boolean",
			raw:       `{"id":"70905d7e-c969-45b1-99f0-1aa155477204","content":"x","date":"2023-04-15T19:46:51.109Z","done":"no"}`,
			wantPaths: []string{"done"},
		},
		{
			name:      "missing fields",
			raw:       `{"content":"x"}`,
			wantPaths: []string{""},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := schema.Validate(schema.KindTodo, []byte(tt.raw))

			if len(tt.wantPaths) == 0 {
				assert.NoError(t, err)

				return
			}

			var schemaErr *schema.Error
			require.True(t, errors.As(err, &schemaErr), "expected *schema.Error, got %v", err)

			paths := make([]string, 0, len(schemaErr.Violations))
			for _, v := range schemaErr.Violations {
				paths = append(paths, v.Path)
			}

			for _, want := range tt.wantPaths {
				assert.Contains(t, paths, want)
			}
		})
	}
}

func TestValidate_InvalidJSON(t *testing.T) {
	err := schema.Validate(schema.KindTodo, []byte(`{"id":`))

	var schemaErr *schema.Error
	require.True(t, errors.As(err, &schemaErr))
	assert.Contains(t, schemaErr.Error(), "invalid JSON")
}

func TestDecode_TodoList(t *testing.T) {
	type list struct {
		Total int `json:"total"`
		Pages int `json:"pages"`
		Todos []struct {
			ID      string `json:"id"`
			Content string `json:"content"`
		} `json:"todos"`
	}

	var out list
	err := schema.Decode(schema.KindTodoList, []byte(`{"total":1,"pages":1,"todos":[`+validTodo+`]}`), &out)
	require.NoError(t, err)
	assert.Equal(t, 1, out.Total)
	assert.Equal(t, "Test todo", out.Todos[0].Content)

	err = schema.Decode(schema.KindTodoList, []byte(`{"total":-1,"pages":1,"todos":[{"id":"x"}]}`), &out)

	var schemaErr *schema.Error
	require.True(t, errors.As(err, &schemaErr))
	assert.GreaterOrEqual(t, len(schemaErr.Violations), 2)
}

func TestDecode_TodoEnvelope(t *testing.T) {
	var out struct {
		Todo struct {
			Done bool `json:"done"`
		} `json:"todo"`
	}

	require.NoError(t, schema.Decode(schema.KindTodoEnvelope, []byte(`{"todo":`+validTodo+`}`), &out))
	assert.False(t, out.Todo.Done)

	assert.Error(t, schema.Decode(schema.KindTodoEnvelope, []byte(`{"todos":[]}`), &out))
}

func TestValidateValue(t *testing.T) {
	value := map[string]any{
		"id":      "70905d7e-c969-45b1-99f0-1aa155477204",
		"content": "Buy milk",
		"date":    "2023-04-15T19:46:51Z",
		"done":    true,
	}

	assert.NoError(t, schema.ValidateValue(schema.KindTodo, value))

	value["extra"] = 1
	assert.Error(t, schema.ValidateValue(schema.KindTodo, value))
}
