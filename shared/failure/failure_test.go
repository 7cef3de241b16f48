package failure_test

import (
	"errors"
	"fmt"
	"net/http"
	"paroisse/shared/failure"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructors(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		code    int
		kind    failure.Kind
		message string
	}{
		{
			name:    "bad request",
			err:     failure.BadRequest(errors.New("date invalide")),
			code:    http.StatusBadRequest,
			kind:    failure.KindValidation,
			message: "date invalide",
		},
		{
			name:    "validation",
			err:     failure.Validation("La première messe doit être dans au moins 2 heures."),
			code:    http.StatusBadRequest,
			kind:    failure.KindValidation,
			message: "La première messe doit être dans au moins 2 heures.",
		},
		{
			name:    "unauthorized",
			err:     failure.Unauthorized("Code paroisse invalide."),
			code:    http.StatusUnauthorized,
			kind:    failure.KindUnauthorized,
			message: "Code paroisse invalide.",
		},
		{
			name:    "not found",
			err:     failure.NotFound("Paroisse introuvable."),
			code:    http.StatusNotFound,
			kind:    failure.KindNotFound,
			message: "Paroisse introuvable.",
		},
		{
			name:    "conflict",
			err:     failure.Conflict("Le code doit être unique."),
			code:    http.StatusConflict,
			kind:    failure.KindConflict,
			message: "Le code doit être unique.",
		},
		{
			name:    "persistence",
			err:     failure.Persistence(errors.New("pq: deadlock detected")),
			code:    http.StatusInternalServerError,
			kind:    failure.KindPersistence,
			message: failure.PersistenceMessage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Error(t, tt.err)

			assert.Equal(t, tt.code, failure.GetCode(tt.err))
			assert.Equal(t, tt.kind, failure.GetKind(tt.err))
			assert.Equal(t, tt.message, tt.err.Error())
		})
	}
}

func TestNilErrorsStayNil(t *testing.T) {
	assert.NoError(t, failure.BadRequest(nil))
	assert.NoError(t, failure.Persistence(nil))
}

func TestPersistenceKeepsCause(t *testing.T) {
	cause := errors.New("pq: could not serialize access")

	err := failure.Persistence(cause)

	assert.ErrorIs(t, err, cause)
	assert.NotContains(t, err.Error(), "serialize")
}

func TestClassifyWrapped(t *testing.T) {
	err := fmt.Errorf("failed to book: %w", failure.NotFound("Paroisse introuvable."))

	assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	assert.Equal(t, failure.KindNotFound, failure.GetKind(err))
}

func TestClassifyForeign(t *testing.T) {
	err := errors.New("connection refused")

	assert.Equal(t, http.StatusInternalServerError, failure.GetCode(err))
	assert.Equal(t, failure.KindInternal, failure.GetKind(err))

	assert.Equal(t, failure.KindInternal, failure.GetKind(&failure.Failure{Code: http.StatusTeapot}))
}
