package entity

import "time"

// Roles válidos para Usuario.
const (
	RolCliente   = "cliente"
	RolVendedor  = "vendedor"
	RolBodeguero = "bodeguero"
	RolAdmin     = "admin"
)

// RolValido indica si el rol es uno de los conocidos.
func RolValido(rol string) bool {
	switch rol {
	case RolCliente, RolVendedor, RolBodeguero, RolAdmin:
		return true
	}
	return false
}

// Usuario representa un usuario del sistema con su rol.
// Cedula, Direccion y Celular son datos de facturación/envío del cliente.
type Usuario struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Nombre       string
	Rol          string // cliente, vendedor, bodeguero, admin
	Cedula       string
	Direccion    string
	Celular      string
	Activo       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
