package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrConflict           = errors.New("conflicto con el estado actual")

	// ErrStoreUnavailable: fallo de transporte o permisos en el almacén de transacciones.
	ErrStoreUnavailable = errors.New("almacén de datos no disponible")
	// ErrInconsistentState: estado detectado en lectura que viola un invariante de aplicación
	// (ej. dos registros de nómina para el mismo personal y fecha). No es fatal.
	ErrInconsistentState = errors.New("estado inconsistente")
)

// StoreError envuelve un fallo del almacén indicando la operación que lo produjo.
// errors.Is(err, ErrStoreUnavailable) es verdadero para cualquier StoreError.
type StoreError struct {
	Op  string
	Err error
}

// NewStoreError construye un StoreError; devuelve nil si err es nil.
func NewStoreError(op string, err error) error {
	if err == nil {
		return nil
	}
	return &StoreError{Op: op, Err: err}
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error { return e.Err }

// Is permite errors.Is(err, ErrStoreUnavailable).
func (e *StoreError) Is(target error) bool { return target == ErrStoreUnavailable }

// ValidationError error de invariante violado por el llamador.
type ValidationError struct {
	Field  string
	Reason string
}

// NewValidationError construye un ValidationError.
func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return "validación: " + e.Reason
	}
	return fmt.Sprintf("validación: %s %s", e.Field, e.Reason)
}

// Is permite errors.Is(err, ErrInvalidInput).
func (e *ValidationError) Is(target error) bool { return target == ErrInvalidInput }
