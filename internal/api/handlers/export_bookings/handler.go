package export_bookings

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/m04kA/AC-BookingService/internal/api/handlers"
	"github.com/m04kA/AC-BookingService/internal/service/bookings"
)

const (
	contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

	msgInvalidDate = "date is required in YYYY-MM-DD format"
)

type Handler struct {
	exporter BookingExporter
	logger   Logger
}

func NewHandler(exporter BookingExporter, logger Logger) *Handler {
	return &Handler{
		exporter: exporter,
		logger:   logger,
	}
}

// Handle GET /api/v1/bookings/export?date=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")

	data, err := h.exporter.ExportXLSX(r.Context(), date)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /bookings/export - Invalid date: date=%q", date)
			handlers.RespondBadRequest(w, msgInvalidDate)

		default:
			h.logger.Error("GET /bookings/export - Failed to export: date=%s, error=%v", date, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	w.Header().Set("Content-Type", contentTypeXLSX)
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="bookings_%s.xlsx"`, date))
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		h.logger.Warn("GET /bookings/export - Failed to write response: %v", err)
		return
	}

	h.logger.Info("GET /bookings/export - Export sent: date=%s, bytes=%d", date, len(data))
}
