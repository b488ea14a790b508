package errors

import (
	"database/sql"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"validation", NewValidationError("name", "required"), http.StatusBadRequest},
		{"not found", NewNotFoundError("Section", "7"), http.StatusNotFound},
		{"conflict", NewConflictError("form", "name", "Intake"), http.StatusConflict},
		{"persistence", NewPersistenceError("create section", sql.ErrConnDone), http.StatusInternalServerError},
		{"wrapped conflict", fmt.Errorf("create form: %w", NewConflictError("form", "name", "x")), http.StatusConflict},
		{"plain error", fmt.Errorf("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GetHTTPStatus(tt.err))
		})
	}
}

func TestErrorMessages(t *testing.T) {
	assert.Equal(t, "Section with ID '3' not found", NewNotFoundError("Section", "3").Error())
	assert.Equal(t, "form not found", NewNotFoundError("form", "").Error())
	assert.Equal(t, "validation error on field 'order': Section order must be >= 0",
		NewValidationError("order", "Section order must be >= 0").Error())
	assert.Equal(t, "person already exists with email='a@b.c'", NewConflictError("person", "email", "a@b.c").Error())
	assert.Equal(t, "field definition already exists with the same entity_type,key_name",
		NewConflictError("field definition", "entity_type,key_name", "").Error())
}

func TestPersistenceErrorUnwrap(t *testing.T) {
	err := NewPersistenceError("list sections", sql.ErrTxDone)
	assert.ErrorIs(t, err, sql.ErrTxDone)
	assert.True(t, IsPersistence(err))
	assert.Equal(t, "PERSISTENCE_ERROR", GetErrorCode(err))
	assert.Equal(t, "UNKNOWN_ERROR", GetErrorCode(fmt.Errorf("x")))
}

func TestInternalError(t *testing.T) {
	err := NewInternalError("unexpected panic", fmt.Errorf("boom"))
	assert.Equal(t, http.StatusInternalServerError, GetHTTPStatus(err))
	assert.Equal(t, "INTERNAL_ERROR", GetErrorCode(err))
	assert.Equal(t, "internal error: unexpected panic (caused by: boom)", err.Error())
}
