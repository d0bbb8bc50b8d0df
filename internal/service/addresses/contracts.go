package addresses

import (
	"context"

	"github.com/m04kA/AC-BookingService/internal/domain"
)

// AddressRepository интерфейс хранилища адресов
type AddressRepository interface {
	Add(ctx context.Context, addr *domain.Address) (*domain.Address, error)
	List(ctx context.Context, phone *string) ([]*domain.Address, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
