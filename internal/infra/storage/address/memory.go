package address

import (
	"context"
	"fmt"
	"sync"

	"github.com/m04kA/AC-BookingService/internal/domain"
)

// Memory адресная книга в памяти процесса
type Memory struct {
	mu        sync.RWMutex
	addresses []domain.Address
	ids       map[string]struct{}
}

func NewMemory() *Memory {
	return &Memory{ids: make(map[string]struct{})}
}

// Add сохраняет копию адреса
func (m *Memory) Add(_ context.Context, addr *domain.Address) (*domain.Address, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.ids[addr.ID]; exists {
		return nil, fmt.Errorf("%w: id=%s", ErrDuplicateID, addr.ID)
	}

	m.addresses = append(m.addresses, cloneAddress(*addr))
	m.ids[addr.ID] = struct{}{}
	return addr, nil
}

// List возвращает адреса в порядке добавления, с телефоном - только адреса клиента
func (m *Memory) List(_ context.Context, phone *string) ([]*domain.Address, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make([]*domain.Address, 0, len(m.addresses))
	for _, a := range m.addresses {
		if phone != nil && a.Phone != *phone {
			continue
		}
		c := cloneAddress(a)
		result = append(result, &c)
	}
	return result, nil
}

func cloneAddress(a domain.Address) domain.Address {
	if a.Landmark != nil {
		landmark := *a.Landmark
		a.Landmark = &landmark
	}
	return a
}
