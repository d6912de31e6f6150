package validator

import (
	"encoding/json"
	"fmt"
	"io"
	"reflect"
	"strings"

	"todofeed/shared/failure"

	val "github.com/go-playground/validator/v10"
)

const (
	valueFieldName = "value"
)

var validate *val.Validate

func registerNotBlankValidation(field val.FieldLevel) bool {
	str, ok := field.Field().Interface().(string)
	if !ok {
		return false
	}

	return strings.TrimSpace(str) != ""
}

func jsonFieldName(field reflect.StructField) string {
	name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
	if name == "-" {
		return ""
	}

	if name == "" {
		return field.Name
	}

	return name
}

func init() {
	validate = val.New(val.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(jsonFieldName)

	err := validate.RegisterValidation("notblank", registerNotBlankValidation)
	if err != nil {
		panic(err)
	}
}

// Validate reads from the given io.Reader into the given struct, and then performs validation
// on the struct using the validator package. If the struct is invalid according to the
// validation rules, an error is returned. Otherwise, nil is returned.
// https://github.com/go-playground/validator
func Validate[T any](r io.Reader, data *T) error {
	decoder := json.NewDecoder(r)
	err := decoder.Decode(data)

	if err != nil {
		return failure.BadRequest(fmt.Errorf("failed to decode request body: %w", err)) //nolint:wrapcheck
	}

	return ValidateStruct(data)
}

func ValidateStruct[T any](data *T) error {
	err := validate.Struct(data)

	if err != nil {
		violations := issues(err, valueFieldName)

		return failure.BadRequestWithIssues(violations[0].Message, violations) //nolint:wrapcheck
	}

	return nil
}

// ValidateParam validates a single named value, such as a path or query parameter.
func ValidateParam(name string, field any, tag string) error {
	err := validate.Var(field, tag)

	if err != nil {
		violations := issues(err, name)

		return failure.BadRequestWithIssues(violations[0].Message, violations) //nolint:wrapcheck
	}

	return nil
}
