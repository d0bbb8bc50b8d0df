package list_addresses

import (
	"net/http"

	"github.com/m04kA/AC-BookingService/internal/api/handlers"
	"github.com/m04kA/AC-BookingService/pkg/ptr"
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

// Handle GET /api/v1/addresses?phone=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.List(r.Context(), ptr.NilIfEmpty(r.URL.Query().Get("phone")))
	if err != nil {
		h.logger.Error("GET /addresses - Failed to list addresses: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /addresses - Addresses retrieved successfully: count=%d", len(result))
	handlers.RespondJSON(w, http.StatusOK, result)
}
