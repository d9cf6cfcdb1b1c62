package memoria

import (
	"sync"

	"github.com/aurabikers/tienda-api/internal/application/carrito"
)

var _ carrito.Store = (*CarritoStore)(nil)

// CarritoStore guarda los carritos en memoria, un mapa por usuario. El carrito
// es estado de sesión: se pierde al reiniciar y eso está bien, el pedido es lo
// que persiste.
type CarritoStore struct {
	mu       sync.RWMutex
	carritos map[string]map[string]carrito.Item // usuarioID -> bicicletaID -> item
}

// NewCarritoStore construye el almacén en memoria.
func NewCarritoStore() *CarritoStore {
	return &CarritoStore{carritos: make(map[string]map[string]carrito.Item)}
}

// Get devuelve una copia del carrito del usuario.
func (s *CarritoStore) Get(usuarioID string) map[string]carrito.Item {
	s.mu.RLock()
	defer s.mu.RUnlock()
	items := make(map[string]carrito.Item, len(s.carritos[usuarioID]))
	for id, item := range s.carritos[usuarioID] {
		items[id] = item
	}
	return items
}

// Set guarda o reemplaza un item del carrito.
func (s *CarritoStore) Set(usuarioID, bicicletaID string, item carrito.Item) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.carritos[usuarioID] == nil {
		s.carritos[usuarioID] = make(map[string]carrito.Item)
	}
	s.carritos[usuarioID][bicicletaID] = item
}

// Remove elimina un item del carrito.
func (s *CarritoStore) Remove(usuarioID, bicicletaID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carritos[usuarioID], bicicletaID)
}

// Clear vacía el carrito del usuario.
func (s *CarritoStore) Clear(usuarioID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carritos, usuarioID)
}
