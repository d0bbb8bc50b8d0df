package create_address

import (
	"context"

	"github.com/m04kA/AC-BookingService/internal/service/addresses/models"
)

type AddressService interface {
	Create(ctx context.Context, req *models.CreateAddressRequest) (*models.AddressResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
