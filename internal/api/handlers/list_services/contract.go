package list_services

import "github.com/m04kA/AC-BookingService/internal/domain"

type Catalog interface {
	List() []domain.Service
}

type Logger interface {
	Info(format string, v ...interface{})
}
