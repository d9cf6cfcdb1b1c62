package admin

import (
	"time"

	"github.com/google/uuid"

	"github.com/aurabikers/tienda-api/internal/application/dto"
	"github.com/aurabikers/tienda-api/internal/domain"
	"github.com/aurabikers/tienda-api/internal/domain/entity"
	"github.com/aurabikers/tienda-api/internal/domain/repository"
)

// PQRSUseCase gestiona los casos PQRS: el cliente los crea y consulta los
// suyos; el administrador los lista, filtra y responde.
type PQRSUseCase struct {
	pqrsRepo repository.PQRSRepository
	ahora    func() time.Time
}

// NewPQRSUseCase construye el caso de uso de PQRS.
func NewPQRSUseCase(pqrsRepo repository.PQRSRepository, ahora func() time.Time) *PQRSUseCase {
	if ahora == nil {
		ahora = time.Now
	}
	return &PQRSUseCase{pqrsRepo: pqrsRepo, ahora: ahora}
}

// Crear registra un caso nuevo en estado abierto.
func (uc *PQRSUseCase) Crear(clienteID string, in dto.CrearPQRSRequest) (*dto.PQRSResponse, error) {
	if !entity.TipoPQRSValido(in.Tipo) {
		return nil, domain.ErrInvalidInput
	}
	if in.Asunto == "" || in.Descripcion == "" {
		return nil, domain.ErrInvalidInput
	}
	p := &entity.PQRS{
		ID:            uuid.New().String(),
		ClienteID:     clienteID,
		Tipo:          in.Tipo,
		Asunto:        in.Asunto,
		Descripcion:   in.Descripcion,
		Estado:        entity.PQRSAbierto,
		FechaCreacion: uc.ahora(),
	}
	if err := uc.pqrsRepo.Create(p); err != nil {
		return nil, err
	}
	return toPQRSResponse(p), nil
}

// ListarPropios devuelve los casos del cliente autenticado.
func (uc *PQRSUseCase) ListarPropios(clienteID string, page dto.PageRequest) ([]dto.PQRSResponse, error) {
	page.DefaultPage()
	casos, err := uc.pqrsRepo.ListByCliente(clienteID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	return toPQRSResponses(casos), nil
}

// Listar devuelve todos los casos, opcionalmente filtrados por estado.
// Solo para el administrador; el handler aplica el control de rol.
func (uc *PQRSUseCase) Listar(estado string, page dto.PageRequest) ([]dto.PQRSResponse, error) {
	if estado != "" && !entity.EstadoPQRSValido(estado) {
		return nil, domain.ErrInvalidInput
	}
	page.DefaultPage()
	casos, err := uc.pqrsRepo.List(estado, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	return toPQRSResponses(casos), nil
}

// GetByID devuelve un caso. El cliente solo puede ver los suyos.
func (uc *PQRSUseCase) GetByID(id, solicitanteID, rol string) (*dto.PQRSResponse, error) {
	p, err := uc.pqrsRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	if rol != entity.RolAdmin && p.ClienteID != solicitanteID {
		return nil, domain.ErrForbidden
	}
	return toPQRSResponse(p), nil
}

// Responder registra la respuesta del administrador y mueve el estado.
// Al pasar a resuelto se fija la fecha de resolución y quién resolvió.
func (uc *PQRSUseCase) Responder(id, adminID string, in dto.ResponderPQRSRequest) (*dto.PQRSResponse, error) {
	if !entity.EstadoPQRSValido(in.Estado) || in.Respuesta == "" {
		return nil, domain.ErrInvalidInput
	}
	p, err := uc.pqrsRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	if p.Estado == entity.PQRSResuelto {
		return nil, domain.ErrEstadoInvalido
	}
	p.Respuesta = in.Respuesta
	p.Estado = in.Estado
	if in.Estado == entity.PQRSResuelto {
		ahora := uc.ahora()
		p.FechaResolucion = &ahora
		p.ResueltoPor = &adminID
	}
	if err := uc.pqrsRepo.Update(p); err != nil {
		return nil, err
	}
	return toPQRSResponse(p), nil
}

func toPQRSResponse(p *entity.PQRS) *dto.PQRSResponse {
	return &dto.PQRSResponse{
		ID:              p.ID,
		ClienteID:       p.ClienteID,
		Tipo:            p.Tipo,
		Asunto:          p.Asunto,
		Descripcion:     p.Descripcion,
		Estado:          p.Estado,
		Respuesta:       p.Respuesta,
		ResueltoPor:     p.ResueltoPor,
		FechaCreacion:   p.FechaCreacion,
		FechaResolucion: p.FechaResolucion,
	}
}

func toPQRSResponses(casos []*entity.PQRS) []dto.PQRSResponse {
	out := make([]dto.PQRSResponse, 0, len(casos))
	for _, p := range casos {
		out = append(out, *toPQRSResponse(p))
	}
	return out
}
