package list_addresses

import (
	"context"

	"github.com/m04kA/AC-BookingService/internal/service/addresses/models"
)

type AddressService interface {
	List(ctx context.Context, phone *string) ([]models.AddressResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}
