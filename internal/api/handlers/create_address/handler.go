package create_address

import (
	"errors"
	"net/http"

	"github.com/m04kA/AC-BookingService/internal/api/handlers"
	"github.com/m04kA/AC-BookingService/internal/service/addresses"
	"github.com/m04kA/AC-BookingService/internal/service/addresses/models"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgMissingFields      = "name, phone, line1 and pincode are required"
)

type Handler struct {
	service AddressService
	logger  Logger
}

func NewHandler(service AddressService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/addresses
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.CreateAddressRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /addresses - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, addresses.ErrInvalidInput):
			h.logger.Warn("POST /addresses - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgMissingFields)

		default:
			h.logger.Error("POST /addresses - Failed to save address: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /addresses - Address saved successfully: address_id=%s", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
