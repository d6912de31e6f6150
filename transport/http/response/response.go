package response

import (
	"encoding/json"
	"net/http"

	"todofeed/shared/constant"
	"todofeed/shared/failure"
	"todofeed/shared/logger"
)

type ErrorBody struct {
	Message     string          `json:"message"               example:"invalid page parameter"`
	Description []failure.Issue `json:"description,omitempty"`
}

type Error struct {
	Error ErrorBody `json:"error"`
}

type Message struct {
	Message *string `json:"message,omitempty"`
}

// WithMessage sends a response with a simple text message
func WithMessage(writer http.ResponseWriter, code int, message string) {
	response(writer, code, Message{Message: &message})
}

// WithJSON sends the payload as the response body
func WithJSON(writer http.ResponseWriter, code int, jsonPayload any) {
	response(writer, code, jsonPayload)
}

// WithNoContent sends an empty response
func WithNoContent(writer http.ResponseWriter) {
	writer.WriteHeader(http.StatusNoContent)
}

// WithError sends the error envelope. Server errors are logged and replaced by a generic message.
func WithError(writer http.ResponseWriter, err error) {
	code := failure.GetCode(err)

	if code >= http.StatusInternalServerError {
		logger.ErrorWithStack(err)
		withErrorMessage(writer, code, constant.ResponseErrorInternal, nil)

		return
	}

	withErrorMessage(writer, code, err.Error(), failure.GetIssues(err))
}

// WithRequestLimitExceeded sends a default response for when the request limit is exceeded
func WithRequestLimitExceeded(writer http.ResponseWriter) {
	withErrorMessage(writer, http.StatusTooManyRequests, constant.ResponseErrorRequestLimitExceeded, nil)
}

// WithPreparingShutdown sends a default response for when the server is preparing to shut down
func WithPreparingShutdown(writer http.ResponseWriter) {
	withErrorMessage(writer, http.StatusServiceUnavailable, constant.ResponseErrorPrepareShutdown, nil)
}

// WithUnhealthy sends a default response for when the server is unhealthy
func WithUnhealthy(writer http.ResponseWriter) {
	withErrorMessage(writer, http.StatusServiceUnavailable, constant.ResponseErrorUnhealthy, nil)
}

func withErrorMessage(writer http.ResponseWriter, code int, message string, issues []failure.Issue) {
	response(writer, code, Error{Error: ErrorBody{Message: message, Description: issues}})
}

func response(writer http.ResponseWriter, code int, payload any) {
	response, err := json.Marshal(payload)
	if err != nil {
		logger.ErrorWithStack(err)
		writer.WriteHeader(http.StatusInternalServerError)

		return
	}

	writer.Header().Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)
	writer.WriteHeader(code)
	_, err = writer.Write(response)

	if err != nil {
		logger.ErrorWithStack(err)
	}
}
