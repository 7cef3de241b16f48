package response

import (
	"encoding/json"
	"net/http"
	"paroisse/shared/constant"
	"paroisse/shared/failure"
	"paroisse/shared/logger"
)

// Data wraps a successful payload.
type Data[T any] struct {
	Data T `json:"data"`
}

type Error struct {
	Error string       `json:"error"`
	Kind  failure.Kind `json:"kind,omitempty"`
}

type Message struct {
	Message string `json:"message"`
}

func WithMessage(writer http.ResponseWriter, code int, message string) {
	write(writer, code, Message{Message: message})
}

func WithJSON(writer http.ResponseWriter, code int, payload any) {
	write(writer, code, Data[any]{Data: payload})
}

// WithError maps err to its status code and kind. Errors outside the
// failure package are logged and answered with a generic message.
func WithError(writer http.ResponseWriter, err error) {
	code, kind := failure.GetCode(err), failure.GetKind(err)

	message := err.Error()
	if kind == failure.KindInternal {
		logger.ErrorWithStack(err)

		message = http.StatusText(code)
	}

	write(writer, code, Error{Error: message, Kind: kind})
}

func WithRequestLimitExceeded(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusTooManyRequests, constant.ResponseErrorRequestLimitExceeded)
}

// WithPreparingShutdown answers requests arriving during the shutdown grace period.
func WithPreparingShutdown(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusServiceUnavailable, constant.ResponseErrorPrepareShutdown)
}

func WithUnhealthy(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusServiceUnavailable, constant.ResponseErrorUnhealthy)
}

func write(writer http.ResponseWriter, code int, payload any) {
	body, err := json.Marshal(payload)
	if err != nil {
		logger.ErrorWithStack(err)
		writer.WriteHeader(http.StatusInternalServerError)

		return
	}

	writer.Header().Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)
	writer.WriteHeader(code)

	if _, err = writer.Write(body); err != nil {
		logger.ErrorWithStack(err)
	}
}
