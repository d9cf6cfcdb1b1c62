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
	ErrEstadoInvalido     = errors.New("transición de estado no permitida")
	ErrMotivoRequerido    = errors.New("se requiere un motivo de cancelación")
	ErrStockInsuficiente  = errors.New("stock insuficiente")
)

// ErrYaAsignado es un conflicto de estado: el pedido ya tiene vendedor.
// Envuelve ErrEstadoInvalido para que errors.Is lo trate como tal.
var ErrYaAsignado = fmt.Errorf("%w: el pedido ya tiene un vendedor asignado", ErrEstadoInvalido)
