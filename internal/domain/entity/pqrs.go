package entity

import "time"

// Tipos de caso PQRS (Peticiones, Quejas, Reclamos y Sugerencias).
const (
	PQRSPeticion   = "peticion"
	PQRSQueja      = "queja"
	PQRSReclamo    = "reclamo"
	PQRSSugerencia = "sugerencia"
)

// Estados de un caso PQRS.
const (
	PQRSAbierto   = "abierto"
	PQRSEnProceso = "en_proceso"
	PQRSResuelto  = "resuelto"
)

// TipoPQRSValido valida el tipo del caso.
func TipoPQRSValido(t string) bool {
	switch t {
	case PQRSPeticion, PQRSQueja, PQRSReclamo, PQRSSugerencia:
		return true
	}
	return false
}

// EstadoPQRSValido valida el estado del caso.
func EstadoPQRSValido(e string) bool {
	return e == PQRSAbierto || e == PQRSEnProceso || e == PQRSResuelto
}

// PQRS es un caso enviado por un cliente y resuelto por el administrador.
type PQRS struct {
	ID              string
	ClienteID       string
	Tipo            string
	Asunto          string
	Descripcion     string
	Estado          string
	Respuesta       string
	ResueltoPor     *string
	FechaCreacion   time.Time
	FechaResolucion *time.Time
}
