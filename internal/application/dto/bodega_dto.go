package dto

import "time"

// RegistrarIngresoRequest ingreso de unidades a bodega.
type RegistrarIngresoRequest struct {
	BicicletaID string `json:"bicicleta_id"`
	Cantidad    int    `json:"cantidad"`
	Notas       string `json:"notas,omitempty"`
}

// IngresoStockResponse registro de ingreso.
type IngresoStockResponse struct {
	ID            string    `json:"id"`
	BicicletaID   string    `json:"bicicleta_id"`
	Cantidad      int       `json:"cantidad"`
	ConfirmadoPor string    `json:"confirmado_por"`
	Fecha         time.Time `json:"fecha"`
	Notas         string    `json:"notas,omitempty"`
}

// RegistrarDanoRequest reporte de producto dañado.
type RegistrarDanoRequest struct {
	BicicletaID       string `json:"bicicleta_id"`
	MotivoTipo        string `json:"motivo_tipo"`
	MotivoDescripcion string `json:"motivo_descripcion"`
	CantidadAfectada  int    `json:"cantidad_afectada"`
}

// ResolverDanoRequest cierre de un reporte de daño.
type ResolverDanoRequest struct {
	NotasResolucion string `json:"notas_resolucion"`
}

// ProductoDanadoResponse reporte de daño.
type ProductoDanadoResponse struct {
	ID                string    `json:"id"`
	BicicletaID       string    `json:"bicicleta_id"`
	MotivoTipo        string    `json:"motivo_tipo"`
	MotivoDescripcion string    `json:"motivo_descripcion"`
	CantidadAfectada  int       `json:"cantidad_afectada"`
	ReportadoPor      string    `json:"reportado_por"`
	Fecha             time.Time `json:"fecha"`
	Resuelto          bool      `json:"resuelto"`
	NotasResolucion   string    `json:"notas_resolucion,omitempty"`
}

// PanelBodegaResponse resumen para el panel del bodeguero.
type PanelBodegaResponse struct {
	PedidosPendientes []PedidoResponse         `json:"pedidos_pendientes"`
	IngresosRecientes []IngresoStockResponse   `json:"ingresos_recientes"`
	DanosPendientes   []ProductoDanadoResponse `json:"danos_pendientes"`
}
