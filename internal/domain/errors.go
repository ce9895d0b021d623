package domain

import (
	"errors"
	"fmt"
)

// Errores centinela del dominio. Los tipos concretos de abajo responden a
// errors.Is contra estos valores, de modo que la capa de presentación pueda
// clasificar sin conocer el tipo exacto.
var (
	ErrValidation  = errors.New("error de validación")
	ErrDuplicate   = errors.New("valor duplicado")
	ErrNotFound    = errors.New("recurso no encontrado")
	ErrPersistence = errors.New("error de persistencia")
)

// ValidationError indica que un dato de entrada no cumple una regla de
// formato o rango. Siempre es recuperable: se vuelve a pedir el dato.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

// NewValidationError construye un ValidationError con formato estilo fmt.
func NewValidationError(format string, args ...any) error {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// DuplicateValueError indica una violación de unicidad sobre un campo
// concreto (hoy solo username). Se distingue del fallo genérico para que el
// llamador pueda pedir otro valor en vez de abortar.
type DuplicateValueError struct {
	Field string
	Value string
}

func (e *DuplicateValueError) Error() string {
	return fmt.Sprintf("valor duplicado en '%s': %s", e.Field, e.Value)
}

func (e *DuplicateValueError) Is(target error) bool { return target == ErrDuplicate }

// NotFoundError indica que un identificador referenciado no tiene fila.
// No aplica a listados vacíos, que no son un error.
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string { return e.Entity + " no encontrado" }

func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

// PersistenceError envuelve cualquier otra falla de la capa de base de
// datos. No es recuperable localmente; el gateway ya hizo rollback y liberó
// sus recursos antes de propagarlo.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string { return fmt.Sprintf("%s: %v", e.Op, e.Err) }

func (e *PersistenceError) Unwrap() error { return e.Err }

func (e *PersistenceError) Is(target error) bool { return target == ErrPersistence }
