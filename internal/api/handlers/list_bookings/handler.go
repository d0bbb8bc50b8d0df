package list_bookings

import (
	"errors"
	"net/http"

	"github.com/m04kA/AC-BookingService/internal/api/handlers"
	"github.com/m04kA/AC-BookingService/internal/service/bookings"
	"github.com/m04kA/AC-BookingService/internal/service/bookings/models"
	"github.com/m04kA/AC-BookingService/pkg/ptr"
)

const (
	msgInvalidFilter = "invalid filter: date must be YYYY-MM-DD, status one of confirmed, cancelled, completed"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/bookings
// Query params: phone, date, status (все опциональны)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	serviceReq := &models.ListBookingsRequest{
		Phone:  ptr.NilIfEmpty(query.Get("phone")),
		Date:   ptr.NilIfEmpty(query.Get("date")),
		Status: ptr.NilIfEmpty(query.Get("status")),
	}

	result, err := h.service.List(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /bookings - Invalid filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidFilter)

		default:
			h.logger.Error("GET /bookings - Failed to list bookings: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /bookings - Bookings retrieved successfully: count=%d", len(result.Bookings))
	handlers.RespondJSON(w, http.StatusOK, result.Bookings)
}
