package dto

import "time"

// RegisterRequest datos de registro. Rol solo lo puede fijar un admin;
// un registro público siempre queda como cliente.
type RegisterRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	Nombre    string `json:"nombre"`
	Rol       string `json:"rol,omitempty"`
	Cedula    string `json:"cedula,omitempty"`
	Direccion string `json:"direccion,omitempty"`
	Celular   string `json:"celular,omitempty"`
}

// LoginRequest credenciales de acceso.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UsuarioResponse representación pública de un usuario (sin hash).
type UsuarioResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Nombre    string    `json:"nombre"`
	Rol       string    `json:"rol"`
	Cedula    string    `json:"cedula,omitempty"`
	Direccion string    `json:"direccion,omitempty"`
	Celular   string    `json:"celular,omitempty"`
	Activo    bool      `json:"activo"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// LoginResponse token + usuario autenticado.
type LoginResponse struct {
	Token   string          `json:"token"`
	Usuario UsuarioResponse `json:"usuario"`
}
