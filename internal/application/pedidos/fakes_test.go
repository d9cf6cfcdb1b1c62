package pedidos_test

import (
	"context"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/aurabikers/tienda-api/internal/domain"
	"github.com/aurabikers/tienda-api/internal/domain/entity"
	"github.com/aurabikers/tienda-api/internal/domain/repository"
)

// Repositorios en memoria para probar los casos de uso sin base de datos.
// El TxRunner falso toma una instantánea del estado antes de ejecutar la
// función y lo restaura si esta falla, imitando el rollback transaccional.

// ──────────────────────────────────────────────────────────────────────────────
// PedidoRepository en memoria
// ──────────────────────────────────────────────────────────────────────────────

type pedidoRepoFake struct {
	pedidos   map[string]*entity.Pedido
	detalles  map[string][]*entity.DetallePedido
	historial map[string][]*entity.HistorialEstadoPedido
}

var _ repository.PedidoRepository = (*pedidoRepoFake)(nil)

func newPedidoRepoFake() *pedidoRepoFake {
	return &pedidoRepoFake{
		pedidos:   make(map[string]*entity.Pedido),
		detalles:  make(map[string][]*entity.DetallePedido),
		historial: make(map[string][]*entity.HistorialEstadoPedido),
	}
}

func (r *pedidoRepoFake) clone() *pedidoRepoFake {
	c := newPedidoRepoFake()
	for id, p := range r.pedidos {
		cp := *p
		if p.VendedorID != nil {
			v := *p.VendedorID
			cp.VendedorID = &v
		}
		c.pedidos[id] = &cp
	}
	for id, ds := range r.detalles {
		for _, d := range ds {
			cd := *d
			c.detalles[id] = append(c.detalles[id], &cd)
		}
	}
	for id, hs := range r.historial {
		for _, h := range hs {
			ch := *h
			c.historial[id] = append(c.historial[id], &ch)
		}
	}
	return c
}

func (r *pedidoRepoFake) restore(snap *pedidoRepoFake) {
	r.pedidos, r.detalles, r.historial = snap.pedidos, snap.detalles, snap.historial
}

func (r *pedidoRepoFake) Create(p *entity.Pedido) error {
	cp := *p
	r.pedidos[p.ID] = &cp
	return nil
}

func (r *pedidoRepoFake) CreateDetalle(d *entity.DetallePedido) error {
	cd := *d
	r.detalles[d.PedidoID] = append(r.detalles[d.PedidoID], &cd)
	return nil
}

func (r *pedidoRepoFake) GetByID(id string) (*entity.Pedido, error) {
	p, ok := r.pedidos[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *pedidoRepoFake) GetForUpdate(id string) (*entity.Pedido, error) {
	return r.GetByID(id)
}

func (r *pedidoRepoFake) GetDetalles(pedidoID string) ([]*entity.DetallePedido, error) {
	out := make([]*entity.DetallePedido, 0, len(r.detalles[pedidoID]))
	for _, d := range r.detalles[pedidoID] {
		cd := *d
		out = append(out, &cd)
	}
	return out, nil
}

func (r *pedidoRepoFake) UpdateEstado(id string, estado entity.EstadoPedido) error {
	p, ok := r.pedidos[id]
	if !ok {
		return domain.ErrNotFound
	}
	p.Estado = estado
	return nil
}

func (r *pedidoRepoFake) UpdateVendedor(id, vendedorID string) error {
	p, ok := r.pedidos[id]
	if !ok {
		return domain.ErrNotFound
	}
	v := vendedorID
	p.VendedorID = &v
	return nil
}

func (r *pedidoRepoFake) UpdateTotal(id string, total decimal.Decimal) error {
	p, ok := r.pedidos[id]
	if !ok {
		return domain.ErrNotFound
	}
	p.Total = total
	return nil
}

func (r *pedidoRepoFake) ListByCliente(clienteID string, limit, offset int) ([]*entity.Pedido, error) {
	return r.listar(func(p *entity.Pedido) bool { return p.ClienteID == clienteID }), nil
}

func (r *pedidoRepoFake) ListByVendedor(vendedorID string, limit, offset int) ([]*entity.Pedido, error) {
	return r.listar(func(p *entity.Pedido) bool {
		return p.VendedorID != nil && *p.VendedorID == vendedorID
	}), nil
}

func (r *pedidoRepoFake) ListByEstados(estados []entity.EstadoPedido, limit, offset int) ([]*entity.Pedido, error) {
	return r.listar(func(p *entity.Pedido) bool {
		for _, e := range estados {
			if p.Estado == e {
				return true
			}
		}
		return false
	}), nil
}

func (r *pedidoRepoFake) List(limit, offset int) ([]*entity.Pedido, error) {
	return r.listar(func(*entity.Pedido) bool { return true }), nil
}

func (r *pedidoRepoFake) listar(keep func(*entity.Pedido) bool) []*entity.Pedido {
	out := make([]*entity.Pedido, 0)
	for _, p := range r.pedidos {
		if keep(p) {
			cp := *p
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (r *pedidoRepoFake) CreateHistorial(h *entity.HistorialEstadoPedido) error {
	ch := *h
	r.historial[h.PedidoID] = append(r.historial[h.PedidoID], &ch)
	return nil
}

func (r *pedidoRepoFake) GetHistorial(pedidoID string) ([]*entity.HistorialEstadoPedido, error) {
	out := make([]*entity.HistorialEstadoPedido, 0, len(r.historial[pedidoID]))
	for _, h := range r.historial[pedidoID] {
		ch := *h
		out = append(out, &ch)
	}
	return out, nil
}

// ──────────────────────────────────────────────────────────────────────────────
// BicicletaRepository en memoria
// ──────────────────────────────────────────────────────────────────────────────

type bicicletaRepoFake struct {
	bicicletas map[string]*entity.Bicicleta
}

var _ repository.BicicletaRepository = (*bicicletaRepoFake)(nil)

func newBicicletaRepoFake() *bicicletaRepoFake {
	return &bicicletaRepoFake{bicicletas: make(map[string]*entity.Bicicleta)}
}

func (r *bicicletaRepoFake) clone() *bicicletaRepoFake {
	c := newBicicletaRepoFake()
	for id, b := range r.bicicletas {
		cb := *b
		c.bicicletas[id] = &cb
	}
	return c
}

func (r *bicicletaRepoFake) restore(snap *bicicletaRepoFake) {
	r.bicicletas = snap.bicicletas
}

func (r *bicicletaRepoFake) Create(b *entity.Bicicleta) error {
	cb := *b
	r.bicicletas[b.ID] = &cb
	return nil
}

func (r *bicicletaRepoFake) GetByID(id string) (*entity.Bicicleta, error) {
	b, ok := r.bicicletas[id]
	if !ok {
		return nil, nil
	}
	cb := *b
	return &cb, nil
}

func (r *bicicletaRepoFake) GetForUpdate(id string) (*entity.Bicicleta, error) {
	return r.GetByID(id)
}

func (r *bicicletaRepoFake) Update(b *entity.Bicicleta) error {
	actual, ok := r.bicicletas[b.ID]
	if !ok {
		return domain.ErrNotFound
	}
	stock := actual.Stock
	cb := *b
	cb.Stock = stock
	r.bicicletas[b.ID] = &cb
	return nil
}

func (r *bicicletaRepoFake) UpdateStock(id string, stock int) error {
	b, ok := r.bicicletas[id]
	if !ok {
		return domain.ErrNotFound
	}
	b.Stock = stock
	return nil
}

func (r *bicicletaRepoFake) List(filtro repository.FiltroCatalogo, limit, offset int) ([]*entity.Bicicleta, error) {
	out := make([]*entity.Bicicleta, 0, len(r.bicicletas))
	for _, b := range r.bicicletas {
		if filtro.SoloActivas && !b.Activo {
			continue
		}
		cb := *b
		out = append(out, &cb)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *bicicletaRepoFake) CountBajoStock(umbral int) (int, error) {
	n := 0
	for _, b := range r.bicicletas {
		if b.Activo && b.Stock < umbral {
			n++
		}
	}
	return n, nil
}

// ──────────────────────────────────────────────────────────────────────────────
// BodegaRepository en memoria
// ──────────────────────────────────────────────────────────────────────────────

type bodegaRepoFake struct {
	ingresos       []*entity.IngresoStock
	danos          map[string]*entity.ProductoDanado
	confirmaciones map[string]*entity.ConfirmacionDespacho // por pedido
}

var _ repository.BodegaRepository = (*bodegaRepoFake)(nil)

func newBodegaRepoFake() *bodegaRepoFake {
	return &bodegaRepoFake{
		danos:          make(map[string]*entity.ProductoDanado),
		confirmaciones: make(map[string]*entity.ConfirmacionDespacho),
	}
}

func (r *bodegaRepoFake) clone() *bodegaRepoFake {
	c := newBodegaRepoFake()
	for _, i := range r.ingresos {
		ci := *i
		c.ingresos = append(c.ingresos, &ci)
	}
	for id, d := range r.danos {
		cd := *d
		c.danos[id] = &cd
	}
	for id, conf := range r.confirmaciones {
		cc := *conf
		c.confirmaciones[id] = &cc
	}
	return c
}

func (r *bodegaRepoFake) restore(snap *bodegaRepoFake) {
	r.ingresos, r.danos, r.confirmaciones = snap.ingresos, snap.danos, snap.confirmaciones
}

func (r *bodegaRepoFake) CreateIngreso(i *entity.IngresoStock) error {
	ci := *i
	r.ingresos = append(r.ingresos, &ci)
	return nil
}

func (r *bodegaRepoFake) ListIngresos(limit, offset int) ([]*entity.IngresoStock, error) {
	out := make([]*entity.IngresoStock, 0, len(r.ingresos))
	for _, i := range r.ingresos {
		ci := *i
		out = append(out, &ci)
	}
	return out, nil
}

func (r *bodegaRepoFake) CreateDano(d *entity.ProductoDanado) error {
	cd := *d
	r.danos[d.ID] = &cd
	return nil
}

func (r *bodegaRepoFake) GetDano(id string) (*entity.ProductoDanado, error) {
	d, ok := r.danos[id]
	if !ok {
		return nil, nil
	}
	cd := *d
	return &cd, nil
}

func (r *bodegaRepoFake) UpdateDano(d *entity.ProductoDanado) error {
	if _, ok := r.danos[d.ID]; !ok {
		return domain.ErrNotFound
	}
	cd := *d
	r.danos[d.ID] = &cd
	return nil
}

func (r *bodegaRepoFake) ListDanos(soloPendientes bool, limit, offset int) ([]*entity.ProductoDanado, error) {
	out := make([]*entity.ProductoDanado, 0, len(r.danos))
	for _, d := range r.danos {
		if soloPendientes && d.Resuelto {
			continue
		}
		cd := *d
		out = append(out, &cd)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *bodegaRepoFake) CreateConfirmacionDespacho(c *entity.ConfirmacionDespacho) error {
	if _, ok := r.confirmaciones[c.PedidoID]; ok {
		return domain.ErrDuplicate
	}
	cc := *c
	r.confirmaciones[c.PedidoID] = &cc
	return nil
}

func (r *bodegaRepoFake) GetConfirmacionByPedido(pedidoID string) (*entity.ConfirmacionDespacho, error) {
	c, ok := r.confirmaciones[pedidoID]
	if !ok {
		return nil, nil
	}
	cc := *c
	return &cc, nil
}

// ──────────────────────────────────────────────────────────────────────────────
// UsuarioRepository en memoria
// ──────────────────────────────────────────────────────────────────────────────

type usuarioRepoFake struct {
	usuarios map[string]*entity.Usuario
}

var _ repository.UsuarioRepository = (*usuarioRepoFake)(nil)

func newUsuarioRepoFake() *usuarioRepoFake {
	return &usuarioRepoFake{usuarios: make(map[string]*entity.Usuario)}
}

func (r *usuarioRepoFake) Create(u *entity.Usuario) error {
	for _, existente := range r.usuarios {
		if existente.Email == u.Email {
			return domain.ErrEmailAlreadyExists
		}
	}
	cu := *u
	r.usuarios[u.ID] = &cu
	return nil
}

func (r *usuarioRepoFake) GetByID(id string) (*entity.Usuario, error) {
	u, ok := r.usuarios[id]
	if !ok {
		return nil, nil
	}
	cu := *u
	return &cu, nil
}

func (r *usuarioRepoFake) FindByEmail(email string) (*entity.Usuario, error) {
	for _, u := range r.usuarios {
		if u.Email == email {
			cu := *u
			return &cu, nil
		}
	}
	return nil, nil
}

func (r *usuarioRepoFake) Update(u *entity.Usuario) error {
	if _, ok := r.usuarios[u.ID]; !ok {
		return domain.ErrNotFound
	}
	cu := *u
	r.usuarios[u.ID] = &cu
	return nil
}

func (r *usuarioRepoFake) List(limit, offset int) ([]*entity.Usuario, error) {
	out := make([]*entity.Usuario, 0, len(r.usuarios))
	for _, u := range r.usuarios {
		cu := *u
		out = append(out, &cu)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// ──────────────────────────────────────────────────────────────────────────────
// PromocionRepository en memoria
// ──────────────────────────────────────────────────────────────────────────────

type promocionRepoFake struct {
	promociones map[string]*entity.Promocion
}

var _ repository.PromocionRepository = (*promocionRepoFake)(nil)

func newPromocionRepoFake() *promocionRepoFake {
	return &promocionRepoFake{promociones: make(map[string]*entity.Promocion)}
}

func (r *promocionRepoFake) Create(p *entity.Promocion) error {
	cp := *p
	r.promociones[p.ID] = &cp
	return nil
}

func (r *promocionRepoFake) GetByID(id string) (*entity.Promocion, error) {
	p, ok := r.promociones[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *promocionRepoFake) Update(p *entity.Promocion) error {
	if _, ok := r.promociones[p.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *p
	r.promociones[p.ID] = &cp
	return nil
}

func (r *promocionRepoFake) List(limit, offset int) ([]*entity.Promocion, error) {
	out := make([]*entity.Promocion, 0, len(r.promociones))
	for _, p := range r.promociones {
		cp := *p
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *promocionRepoFake) ListActivas() ([]*entity.Promocion, error) {
	out := make([]*entity.Promocion, 0)
	for _, p := range r.promociones {
		if !p.Activa {
			continue
		}
		cp := *p
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// ──────────────────────────────────────────────────────────────────────────────
// TxRunner falso con rollback por instantánea
// ──────────────────────────────────────────────────────────────────────────────

type txRunnerFake struct {
	pedidoRepo    *pedidoRepoFake
	bicicletaRepo *bicicletaRepoFake
	bodegaRepo    *bodegaRepoFake
}

func (tx *txRunnerFake) Run(_ context.Context, fn func(
	repository.PedidoRepository,
	repository.BicicletaRepository,
	repository.BodegaRepository,
) error) error {
	snapPedidos := tx.pedidoRepo.clone()
	snapBicis := tx.bicicletaRepo.clone()
	snapBodega := tx.bodegaRepo.clone()
	if err := fn(tx.pedidoRepo, tx.bicicletaRepo, tx.bodegaRepo); err != nil {
		tx.pedidoRepo.restore(snapPedidos)
		tx.bicicletaRepo.restore(snapBicis)
		tx.bodegaRepo.restore(snapBodega)
		return err
	}
	return nil
}
