package entity

import "time"

// IngresoStock registra la recepción de nuevas unidades en bodega.
// El bodeguero confirma el ingreso; el stock se incrementa en la misma transacción.
type IngresoStock struct {
	ID            string
	BicicletaID   string
	Cantidad      int
	ConfirmadoPor string
	Fecha         time.Time
	Notas         string
}

// Motivos de daño de producto.
const (
	MotivoTransporte     = "transporte"
	MotivoAlmacenamiento = "almacenamiento"
	MotivoDefectoFabrica = "defecto_fabrica"
	MotivoExhibicion     = "exhibicion"
	MotivoOtro           = "otro"
)

// MotivoDanoValido valida el tipo de daño reportado.
func MotivoDanoValido(m string) bool {
	switch m {
	case MotivoTransporte, MotivoAlmacenamiento, MotivoDefectoFabrica, MotivoExhibicion, MotivoOtro:
		return true
	}
	return false
}

// ProductoDanado documenta unidades dañadas. Al reportarse, el stock se reduce
// por la cantidad afectada (con verificación de disponibilidad) en la misma transacción.
type ProductoDanado struct {
	ID                 string
	BicicletaID        string
	MotivoTipo         string
	MotivoDescripcion  string
	CantidadAfectada   int
	ReportadoPor       string
	Fecha              time.Time
	Resuelto           bool
	NotasResolucion    string
}

// ConfirmacionDespacho es el registro del bodeguero al despachar un pedido.
// Única por pedido; se crea junto con la transición a despachado.
type ConfirmacionDespacho struct {
	ID                string
	PedidoID          string
	ConfirmadoPor     string
	FechaConfirmacion time.Time
	Notas             string
}
