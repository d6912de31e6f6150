package failure

import (
	"errors"
	"net/http"
)

// Issue describes a single violated field of a request.
type Issue struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Failure is a wrapper for error messages and codes using standard HTTP response codes.
type Failure struct {
	Code    int     `json:"code"`
	Message string  `json:"message"`
	Issues  []Issue `json:"issues,omitempty"`
}

var InvalidPageParam = &Failure{Code: http.StatusBadRequest, Message: "invalid page parameter"}
var InvalidLimitParam = &Failure{Code: http.StatusBadRequest, Message: "invalid limit parameter"}

// Error returns the error code and message in a formatted string.
func (e *Failure) Error() string {
	return e.Message
}

// BadRequest returns a new Failure with code for bad requests.
func BadRequest(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		}
	}

	return nil
}

// BadRequestWithIssues returns a new Failure for bad requests carrying every violated field.
func BadRequestWithIssues(msg string, issues []Issue) error {
	return &Failure{
		Code:    http.StatusBadRequest,
		Message: msg,
		Issues:  issues,
	}
}

// NotFound returns a new Failure with code for entity not found.
func NotFound(msg string) error {
	return &Failure{
		Code:    http.StatusNotFound,
		Message: msg,
	}
}

// GetCode returns the error code of an error interface.
func GetCode(err error) int {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Code
	}

	return http.StatusInternalServerError
}

// GetIssues returns the violated fields carried by an error, if any.
func GetIssues(err error) []Issue {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Issues
	}

	return nil
}

// IsNotFound reports whether err carries the not found code.
func IsNotFound(err error) bool {
	return GetCode(err) == http.StatusNotFound
}
