package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CrearPQRSRequest caso nuevo enviado por un cliente.
type CrearPQRSRequest struct {
	Tipo        string `json:"tipo"`
	Asunto      string `json:"asunto"`
	Descripcion string `json:"descripcion"`
}

// ResponderPQRSRequest respuesta del administrador.
type ResponderPQRSRequest struct {
	Respuesta string `json:"respuesta"`
	Estado    string `json:"estado"`
}

// PQRSResponse caso PQRS.
type PQRSResponse struct {
	ID              string     `json:"id"`
	ClienteID       string     `json:"cliente_id"`
	Tipo            string     `json:"tipo"`
	Asunto          string     `json:"asunto"`
	Descripcion     string     `json:"descripcion"`
	Estado          string     `json:"estado"`
	Respuesta       string     `json:"respuesta,omitempty"`
	ResueltoPor     *string    `json:"resuelto_por,omitempty"`
	FechaCreacion   time.Time  `json:"fecha_creacion"`
	FechaResolucion *time.Time `json:"fecha_resolucion,omitempty"`
}

// CrearPromocionRequest alta de promoción.
type CrearPromocionRequest struct {
	Nombre       string          `json:"nombre"`
	Descripcion  string          `json:"descripcion"`
	Descuento    decimal.Decimal `json:"descuento"`
	FechaInicio  string          `json:"fecha_inicio"` // YYYY-MM-DD
	FechaFin     string          `json:"fecha_fin"`    // YYYY-MM-DD
	AplicaATodas bool            `json:"aplica_a_todas"`
	BicicletaIDs []string        `json:"bicicleta_ids,omitempty"`
}

// ActualizarPromocionRequest cambios sobre una promoción existente.
type ActualizarPromocionRequest struct {
	Nombre       *string          `json:"nombre,omitempty"`
	Descripcion  *string          `json:"descripcion,omitempty"`
	Descuento    *decimal.Decimal `json:"descuento,omitempty"`
	FechaInicio  *string          `json:"fecha_inicio,omitempty"`
	FechaFin     *string          `json:"fecha_fin,omitempty"`
	Activa       *bool            `json:"activa,omitempty"`
	AplicaATodas *bool            `json:"aplica_a_todas,omitempty"`
	BicicletaIDs []string         `json:"bicicleta_ids,omitempty"`
}

// PromocionResponse promoción con su vigencia calculada.
type PromocionResponse struct {
	ID           string          `json:"id"`
	Nombre       string          `json:"nombre"`
	Descripcion  string          `json:"descripcion"`
	Descuento    decimal.Decimal `json:"descuento"`
	FechaInicio  string          `json:"fecha_inicio"`
	FechaFin     string          `json:"fecha_fin"`
	Activa       bool            `json:"activa"`
	Vigente      bool            `json:"vigente"`
	AplicaATodas bool            `json:"aplica_a_todas"`
	BicicletaIDs []string        `json:"bicicleta_ids,omitempty"`
}

// DashboardResponse métricas para el panel del administrador.
type DashboardResponse struct {
	TotalPedidos       int             `json:"total_pedidos"`
	PedidosEntregados  int             `json:"pedidos_entregados"`
	MargenPromedio     decimal.Decimal `json:"margen_promedio"`
	PQRSAbiertos       int             `json:"pqrs_abiertos"`
	PromocionesActivas int             `json:"promociones_activas"`
	BajoStock          int             `json:"bajo_stock"`
}
