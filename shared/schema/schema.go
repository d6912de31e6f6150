// Package schema holds the record schema shared by the API and its clients.
//
// Every todo that crosses a boundary, whether read back from the store or
// received over the wire, is checked against the same JSON Schema documents.
// A violation is an integrity failure, never a user input error.
package schema

import (
	"bytes"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

type Kind string

const (
	KindTodo         Kind = "todo.schema.json"
	KindTodoEnvelope Kind = "todo-envelope.schema.json"
	KindTodoList     Kind = "todo-list.schema.json"

	baseURL = "https://todofeed.local/schema/"
)

//go:embed definitions/*.schema.json
var definitions embed.FS

var schemas map[Kind]*jsonschema.Schema

// Violation is a single field of a value that does not match the schema.
type Violation struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

// Error reports every violation found while validating a value against a schema.
type Error struct {
	Kind       Kind
	Violations []Violation
}

func (e *Error) Error() string {
	parts := make([]string, 0, len(e.Violations))

	for _, v := range e.Violations {
		if v.Path == "" {
			parts = append(parts, v.Message)

			continue
		}

		parts = append(parts, v.Path+": "+v.Message)
	}

	return fmt.Sprintf("%s: %s", e.Kind, strings.Join(parts, "; "))
}

func init() {
	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft2020
	compiler.AssertFormat = true

	kinds := []Kind{KindTodo, KindTodoEnvelope, KindTodoList}

	for _, kind := range kinds {
		data, err := definitions.ReadFile("definitions/" + string(kind))
		if err != nil {
			panic(err)
		}

		if err := compiler.AddResource(baseURL+string(kind), bytes.NewReader(data)); err != nil {
			panic(err)
		}
	}

	schemas = make(map[Kind]*jsonschema.Schema, len(kinds))

	for _, kind := range kinds {
		schemas[kind] = compiler.MustCompile(baseURL + string(kind))
	}
}

// Validate checks raw JSON against the schema of the given kind.
func Validate(kind Kind, raw []byte) error {
	var doc any

	decoder := json.NewDecoder(bytes.NewReader(raw))
	decoder.UseNumber()

	if err := decoder.Decode(&doc); err != nil {
		return &Error{Kind: kind, Violations: []Violation{{Message: "invalid JSON: " + err.Error()}}}
	}

	return validateDocument(kind, doc)
}

// ValidateValue checks a Go value, as it would be encoded on the wire, against the schema of the given kind.
func ValidateValue(kind Kind, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return &Error{Kind: kind, Violations: []Violation{{Message: "unencodable value: " + err.Error()}}}
	}

	return Validate(kind, raw)
}

// Decode validates raw JSON against the schema of the given kind and, when it
// conforms, unmarshals it into out.
func Decode[T any](kind Kind, raw []byte, out *T) error {
	if err := Validate(kind, raw); err != nil {
		return err
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return &Error{Kind: kind, Violations: []Violation{{Message: "undecodable value: " + err.Error()}}}
	}

	return nil
}

// ValidateTodo checks a single todo record.
func ValidateTodo(value any) error {
	return ValidateValue(KindTodo, value)
}

// ValidateTodos checks a page of todos as returned by the list operation.
func ValidateTodos(value any) error {
	return ValidateValue(KindTodoList, value)
}

func DecodeTodoEnvelope[T any](raw []byte, out *T) error {
	return Decode(KindTodoEnvelope, raw, out)
}

func DecodeTodoList[T any](raw []byte, out *T) error {
	return Decode(KindTodoList, raw, out)
}

func validateDocument(kind Kind, doc any) error {
	sch, ok := schemas[kind]
	if !ok {
		return &Error{Kind: kind, Violations: []Violation{{Message: "unknown schema"}}}
	}

	err := sch.Validate(doc)
	if err == nil {
		return nil
	}

	var validationErr *jsonschema.ValidationError
	if !errors.As(err, &validationErr) {
		return &Error{Kind: kind, Violations: []Violation{{Message: err.Error()}}}
	}

	res := &Error{Kind: kind}
	collectViolations(res, validationErr)

	return res
}

func collectViolations(res *Error, err *jsonschema.ValidationError) {
	if len(err.Causes) == 0 {
		res.Violations = append(res.Violations, Violation{
			Path:    pointerToPath(err.InstanceLocation),
			Message: err.Message,
		})

		return
	}

	for _, cause := range err.Causes {
		collectViolations(res, cause)
	}
}

// pointerToPath turns "/todos/0/id" into "todos.0.id".
func pointerToPath(ptr string) string {
	ptr = strings.TrimPrefix(ptr, "#")
	ptr = strings.TrimPrefix(ptr, "/")

	return strings.ReplaceAll(ptr, "/", ".")
}
