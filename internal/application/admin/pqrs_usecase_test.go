package admin_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aurabikers/tienda-api/internal/application/admin"
	"github.com/aurabikers/tienda-api/internal/application/dto"
	"github.com/aurabikers/tienda-api/internal/domain"
	"github.com/aurabikers/tienda-api/internal/domain/entity"
	"github.com/aurabikers/tienda-api/internal/domain/repository"
)

const clientePQRS = "cliente-1"

// ──────────────────────────────────────────────────────────────────────────────
// Fake en memoria
// ──────────────────────────────────────────────────────────────────────────────

type pqrsRepoFake struct {
	casos map[string]*entity.PQRS
	orden []string
}

var _ repository.PQRSRepository = (*pqrsRepoFake)(nil)

func newPQRSRepoFake() *pqrsRepoFake {
	return &pqrsRepoFake{casos: make(map[string]*entity.PQRS)}
}

func (r *pqrsRepoFake) Create(p *entity.PQRS) error {
	cp := *p
	r.casos[p.ID] = &cp
	r.orden = append(r.orden, p.ID)
	return nil
}

func (r *pqrsRepoFake) GetByID(id string) (*entity.PQRS, error) {
	p, ok := r.casos[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *pqrsRepoFake) Update(p *entity.PQRS) error {
	if _, ok := r.casos[p.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *p
	r.casos[p.ID] = &cp
	return nil
}

func (r *pqrsRepoFake) ListByCliente(clienteID string, limit, offset int) ([]*entity.PQRS, error) {
	out := make([]*entity.PQRS, 0)
	for _, id := range r.orden {
		if p := r.casos[id]; p.ClienteID == clienteID {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *pqrsRepoFake) List(estado string, limit, offset int) ([]*entity.PQRS, error) {
	out := make([]*entity.PQRS, 0)
	for _, id := range r.orden {
		p := r.casos[id]
		if estado != "" && p.Estado != estado {
			continue
		}
		cp := *p
		out = append(out, &cp)
	}
	return out, nil
}

func nuevoPQRS(t *testing.T) (*admin.PQRSUseCase, *pqrsRepoFake) {
	t.Helper()
	repo := newPQRSRepoFake()
	return admin.NewPQRSUseCase(repo, func() time.Time { return relojFijo }), repo
}

func casoValido() dto.CrearPQRSRequest {
	return dto.CrearPQRSRequest{
		Tipo:        entity.PQRSReclamo,
		Asunto:      "Pedido con rayones",
		Descripcion: "La bicicleta llegó con el marco rayado",
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Crear y consultar
// ──────────────────────────────────────────────────────────────────────────────

func TestPQRSCrear_AbreElCaso(t *testing.T) {
	uc, _ := nuevoPQRS(t)

	out, err := uc.Crear(clientePQRS, casoValido())
	require.NoError(t, err)
	assert.Equal(t, entity.PQRSAbierto, out.Estado)
	assert.Equal(t, clientePQRS, out.ClienteID)
	assert.Equal(t, relojFijo, out.FechaCreacion)
	assert.Nil(t, out.FechaResolucion)
}

func TestPQRSCrear_Validaciones(t *testing.T) {
	uc, _ := nuevoPQRS(t)

	in := casoValido()
	in.Tipo = "demanda"
	_, err := uc.Crear(clientePQRS, in)
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))

	in = casoValido()
	in.Asunto = ""
	_, err = uc.Crear(clientePQRS, in)
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))

	in = casoValido()
	in.Descripcion = ""
	_, err = uc.Crear(clientePQRS, in)
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
}

func TestPQRSGetByID_ClienteSoloVeLosSuyos(t *testing.T) {
	uc, _ := nuevoPQRS(t)
	creado, err := uc.Crear(clientePQRS, casoValido())
	require.NoError(t, err)

	_, err = uc.GetByID(creado.ID, clientePQRS, entity.RolCliente)
	assert.NoError(t, err)

	_, err = uc.GetByID(creado.ID, "cliente-2", entity.RolCliente)
	assert.True(t, errors.Is(err, domain.ErrForbidden))

	// El admin ve cualquier caso.
	_, err = uc.GetByID(creado.ID, adminID, entity.RolAdmin)
	assert.NoError(t, err)
}

func TestPQRSListar_FiltraPorEstado(t *testing.T) {
	uc, _ := nuevoPQRS(t)
	abierto, err := uc.Crear(clientePQRS, casoValido())
	require.NoError(t, err)
	otro, err := uc.Crear("cliente-2", casoValido())
	require.NoError(t, err)

	_, err = uc.Responder(otro.ID, adminID, dto.ResponderPQRSRequest{
		Respuesta: "resuelto con cambio de marco",
		Estado:    entity.PQRSResuelto,
	})
	require.NoError(t, err)

	abiertos, err := uc.Listar(entity.PQRSAbierto, dto.PageRequest{})
	require.NoError(t, err)
	require.Len(t, abiertos, 1)
	assert.Equal(t, abierto.ID, abiertos[0].ID)

	todos, err := uc.Listar("", dto.PageRequest{})
	require.NoError(t, err)
	assert.Len(t, todos, 2)

	_, err = uc.Listar("archivado", dto.PageRequest{})
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
}

// ──────────────────────────────────────────────────────────────────────────────
// Responder
// ──────────────────────────────────────────────────────────────────────────────

func TestPQRSResponder_ResueltoFijaFechaYResponsable(t *testing.T) {
	uc, _ := nuevoPQRS(t)
	creado, err := uc.Crear(clientePQRS, casoValido())
	require.NoError(t, err)

	out, err := uc.Responder(creado.ID, adminID, dto.ResponderPQRSRequest{
		Respuesta: "se reemplaza el marco bajo garantía",
		Estado:    entity.PQRSResuelto,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.PQRSResuelto, out.Estado)
	require.NotNil(t, out.FechaResolucion)
	assert.Equal(t, relojFijo, *out.FechaResolucion)
	require.NotNil(t, out.ResueltoPor)
	assert.Equal(t, adminID, *out.ResueltoPor)
}

func TestPQRSResponder_EnProcesoNoResuelve(t *testing.T) {
	uc, _ := nuevoPQRS(t)
	creado, err := uc.Crear(clientePQRS, casoValido())
	require.NoError(t, err)

	out, err := uc.Responder(creado.ID, adminID, dto.ResponderPQRSRequest{
		Respuesta: "en revisión con el transportador",
		Estado:    entity.PQRSEnProceso,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.PQRSEnProceso, out.Estado)
	assert.Nil(t, out.FechaResolucion)
}

func TestPQRSResponder_CasoResueltoEsFinal(t *testing.T) {
	uc, _ := nuevoPQRS(t)
	creado, err := uc.Crear(clientePQRS, casoValido())
	require.NoError(t, err)

	_, err = uc.Responder(creado.ID, adminID, dto.ResponderPQRSRequest{
		Respuesta: "listo",
		Estado:    entity.PQRSResuelto,
	})
	require.NoError(t, err)

	_, err = uc.Responder(creado.ID, adminID, dto.ResponderPQRSRequest{
		Respuesta: "otra vez",
		Estado:    entity.PQRSEnProceso,
	})
	assert.True(t, errors.Is(err, domain.ErrEstadoInvalido))
}

func TestPQRSResponder_RespuestaObligatoria(t *testing.T) {
	uc, _ := nuevoPQRS(t)
	creado, err := uc.Crear(clientePQRS, casoValido())
	require.NoError(t, err)

	_, err = uc.Responder(creado.ID, adminID, dto.ResponderPQRSRequest{
		Estado: entity.PQRSResuelto,
	})
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
}
