package validator

import (
	"errors"
	"strings"

	"todofeed/shared/failure"

	val "github.com/go-playground/validator/v10"
)

var (
	messages = map[string]string{
		"required": "{field} is required",
		"notblank": "{field} must not be blank",
		"gte":      "{field} must be greater than or equal to {param}",
		"lte":      "{field} must be less than or equal to {param}",
		"oneof":    "{field} must be one of {param}",
		"max":      "{field} must be less than or equal to {param}",
		"min":      "{field} must be greater than or equal to {param}",
		"uuid":     "{field} must be a valid UUID",
	}
)

// issues converts validator errors into one failure.Issue per violated field.
// fallbackField names the value for Var validations, where the validator has no field name.
func issues(err error, fallbackField string) []failure.Issue {
	var valErrors val.ValidationErrors

	if !errors.As(err, &valErrors) {
		return []failure.Issue{{Field: fallbackField, Message: err.Error()}}
	}

	res := make([]failure.Issue, 0, len(valErrors))

	for _, valErr := range valErrors {
		field := valErr.Field()
		if field == "" {
			field = fallbackField
		}

		errStr := messages[valErr.Tag()]
		if errStr == "" {
			errStr = valErr.Error()
		} else {
			errStr = strings.ReplaceAll(errStr, "{field}", field)
			errStr = strings.ReplaceAll(errStr, "{param}", valErr.Param())
		}

		res = append(res, failure.Issue{Field: field, Message: errStr})
	}

	return res
}
