package domain_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/rrhh-console/internal/domain"
)

func TestErrorClassification(t *testing.T) {
	t.Parallel()

	var err error

	err = domain.NewValidationError("campo %q inválido", "email")
	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.Equal(t, `campo "email" inválido`, err.Error())

	err = &domain.DuplicateValueError{Field: "username", Value: "ana"}
	assert.ErrorIs(t, err, domain.ErrDuplicate)
	assert.Equal(t, "valor duplicado en 'username': ana", err.Error())

	err = &domain.NotFoundError{Entity: "empleado"}
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, "empleado no encontrado", err.Error())

	cause := errors.New("connection refused")
	err = &domain.PersistenceError{Op: "insertar empleado", Err: cause}
	assert.ErrorIs(t, err, domain.ErrPersistence)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "insertar empleado: connection refused", err.Error())
}

func TestErrorKindsAreDisjoint(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("envuelto: %w", &domain.NotFoundError{Entity: "proyecto"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.NotErrorIs(t, err, domain.ErrValidation)
	assert.NotErrorIs(t, err, domain.ErrDuplicate)
	assert.NotErrorIs(t, err, domain.ErrPersistence)
}
