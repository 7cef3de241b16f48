package failure

import (
	"errors"
	"net/http"
)

// Kind classifies a Failure independently of its transport code.
type Kind string

const (
	KindValidation   Kind = "validation"
	KindNotFound     Kind = "not_found"
	KindConflict     Kind = "conflict"
	KindPersistence  Kind = "persistence"
	KindUnauthorized Kind = "unauthorized"
	KindInternal     Kind = "internal"
)

// PersistenceMessage is the only text a caller ever sees for a storage failure.
const PersistenceMessage = "Une erreur est survenue lors de l'enregistrement."

// Failure is an error safe to show to the client, with its HTTP code and kind.
// Cause, when set, stays server side.
type Failure struct {
	Code    int    `json:"code"`
	Kind    Kind   `json:"kind"`
	Message string `json:"message"`
	Cause   error  `json:"-"`
}

func (e *Failure) Error() string {
	return e.Message
}

func (e *Failure) Unwrap() error {
	return e.Cause
}

func newFailure(code int, kind Kind, msg string) *Failure {
	return &Failure{Code: code, Kind: kind, Message: msg}
}

// BadRequest turns err into a validation failure showing err's text. Nil stays nil.
func BadRequest(err error) error {
	if err == nil {
		return nil
	}

	fail := newFailure(http.StatusBadRequest, KindValidation, err.Error())
	fail.Cause = err

	return fail
}

func BadRequestFromString(msg string) error {
	return newFailure(http.StatusBadRequest, KindValidation, msg)
}

// Validation reports a broken business rule.
func Validation(msg string) error {
	return BadRequestFromString(msg)
}

func Unauthorized(msg string) error {
	return newFailure(http.StatusUnauthorized, KindUnauthorized, msg)
}

// Persistence hides the storage cause behind PersistenceMessage. Nil stays nil.
func Persistence(err error) error {
	if err == nil {
		return nil
	}

	fail := newFailure(http.StatusInternalServerError, KindPersistence, PersistenceMessage)
	fail.Cause = err

	return fail
}

// NotFound carries the message to show, e.g. "Paroisse introuvable.".
func NotFound(msg string) error {
	return newFailure(http.StatusNotFound, KindNotFound, msg)
}

func Conflict(msg string) error {
	return newFailure(http.StatusConflict, KindConflict, msg)
}

// GetCode returns the HTTP code of the first Failure in err's chain, 500 otherwise.
func GetCode(err error) int {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Code
	}

	return http.StatusInternalServerError
}

// GetKind returns the kind of the first Failure in err's chain, KindInternal otherwise.
func GetKind(err error) Kind {
	var fail *Failure
	if errors.As(err, &fail) && fail.Kind != "" {
		return fail.Kind
	}

	return KindInternal
}
