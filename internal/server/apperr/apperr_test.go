package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/dmitrijs2005/whattowear/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructors_StatusAndMessage(t *testing.T) {
	tests := []struct {
		name   string
		err    *Error
		status int
		msg    string
	}{
		{"bad request", BadRequest("Invalid item ID"), http.StatusBadRequest, "Invalid item ID"},
		{"unauthorized", Unauthorized("Incorrect email or password"), http.StatusUnauthorized, "Incorrect email or password"},
		{"forbidden", Forbidden(""), http.StatusForbidden, "Forbidden"},
		{"not found", NotFound("Item not found"), http.StatusNotFound, "Item not found"},
		{"conflict", Conflict(""), http.StatusConflict, "Conflict"},
		{"internal", Internal(errors.New("pq: boom")), http.StatusInternalServerError, "An error occurred on the server"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.status, tc.err.Status())
			assert.Equal(t, tc.msg, tc.err.Message)
		})
	}
}

func TestNew_UnknownKindIsInternal(t *testing.T) {
	e := New(Kind(99), "")
	assert.Equal(t, KindInternal, e.Kind)
	assert.Equal(t, http.StatusInternalServerError, e.Status())
}

func TestInternal_KeepsCauseOutOfMessage(t *testing.T) {
	cause := errors.New("connection refused 10.0.0.3:5432")
	e := Internal(cause)

	assert.NotContains(t, e.Message, "10.0.0.3")
	assert.ErrorIs(t, e, cause)
}

func TestFrom(t *testing.T) {
	existing := NotFound("User not found")

	tests := []struct {
		name string
		in   error
		kind Kind
		msg  string
	}{
		{"app error passes through", existing, KindNotFound, "User not found"},
		{"wrapped app error", fmt.Errorf("handler: %w", existing), KindNotFound, "User not found"},
		{"invalid id", fmt.Errorf("lookup: %w", common.ErrInvalidID), KindBadRequest, "Invalid ID"},
		{"duplicate", fmt.Errorf("db error: %w", common.ErrAlreadyExists), KindConflict, "Conflict"},
		{"validation", common.ErrValidation, KindBadRequest, "Bad request"},
		{"not found", common.ErrNotFound, KindNotFound, "Requested resource not found"},
		{"unknown", errors.New("something odd"), KindInternal, "An error occurred on the server"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := From(tc.in)
			require.NotNil(t, got)
			assert.Equal(t, tc.kind, got.Kind)
			assert.Equal(t, tc.msg, got.Message)
		})
	}
}

func TestFrom_Nil(t *testing.T) {
	assert.Nil(t, From(nil))
}
