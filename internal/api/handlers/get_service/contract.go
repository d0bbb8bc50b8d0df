package get_service

import "github.com/m04kA/AC-BookingService/internal/domain"

type Catalog interface {
	GetByID(id string) (*domain.Service, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
