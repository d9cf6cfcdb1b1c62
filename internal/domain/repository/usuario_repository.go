package repository

import "github.com/aurabikers/tienda-api/internal/domain/entity"

// UsuarioRepository define el puerto de persistencia para Usuario (DIP).
type UsuarioRepository interface {
	Create(usuario *entity.Usuario) error
	GetByID(id string) (*entity.Usuario, error)
	FindByEmail(email string) (*entity.Usuario, error)
	Update(usuario *entity.Usuario) error
	List(limit, offset int) ([]*entity.Usuario, error)
}
