package model

import "time"

const (
	TableName  = "todos"
	EntityName = "todo"

	FieldID      = "id"
	FieldContent = "content"
	FieldDate    = "date"
	FieldDone    = "done"
)

// Todo is a row of the todos table. ID and Date are assigned by the store.
type Todo struct {
	ID      string    `db:"id"`
	Content string    `db:"content"`
	Date    time.Time `db:"date"`
	Done    bool      `db:"done"`
}
