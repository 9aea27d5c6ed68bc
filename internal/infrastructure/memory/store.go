package memory

import (
	"sync"

	"github.com/tu-usuario/cafestock-api/internal/domain/entity"
)

// Store almacén en memoria con la misma semántica que el adaptador de
// PostgreSQL: mismos contratos (nil, nil) cuando no existe la fila, mismo
// orden en los listados y el mismo aislamiento transaccional (un lock global
// que emula el SELECT FOR UPDATE). Se usa en pruebas y demos sin base de datos.
type Store struct {
	mu    sync.Mutex
	items map[string]*entity.StockItem
	movs  []*entity.StockMovement
	users map[string]*entity.User
}

// NewStore crea un almacén vacío.
func NewStore() *Store {
	return &Store{
		items: make(map[string]*entity.StockItem),
		users: make(map[string]*entity.User),
	}
}

// SeedUsers carga usuarios de identidad (el puerto de usuarios es solo lectura).
func (s *Store) SeedUsers(users ...*entity.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range users {
		s.users[u.ID] = cloneUser(u)
	}
}

// Los repos guardan y devuelven copias para que las mutaciones del caller
// no toquen el almacén fuera de una transacción.
func cloneItem(i *entity.StockItem) *entity.StockItem {
	c := *i
	return &c
}

func cloneMovement(m *entity.StockMovement) *entity.StockMovement {
	c := *m
	return &c
}

func cloneUser(u *entity.User) *entity.User {
	c := *u
	return &c
}
