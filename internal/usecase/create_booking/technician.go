package create_booking

import (
	"math/rand"

	"github.com/m04kA/AC-BookingService/internal/domain"
)

// RandomTechnicianPicker назначает случайного мастера с ETA 15-59 минут
type RandomTechnicianPicker struct{}

// Pick вызывается только с непустым списком
func (RandomTechnicianPicker) Pick(technicians []domain.Technician) (domain.Technician, int) {
	tech := technicians[rand.Intn(len(technicians))]
	eta := domain.MinTechnicianETAMinutes + rand.Intn(domain.MaxTechnicianETAMinutes-domain.MinTechnicianETAMinutes+1)
	return tech, eta
}
