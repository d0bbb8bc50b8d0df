package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/AC-BookingService/internal/api/handlers"
	createBooking "github.com/m04kA/AC-BookingService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidAppointment = "invalid appointment: phone, date and a scheduled slot are required"
	msgSlotFull           = "selected slot is fully booked"
	msgDuplicateBooking   = "phone already has a booking in this slot"
	msgUnknownService     = "unknown service or variant in items"
	msgStorageUnavailable = "booking storage is temporarily unavailable, please retry"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq := req.ToUseCaseRequest()

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		var dup *createBooking.DuplicateBookingError

		switch {
		case errors.Is(err, createBooking.ErrInvalidAppointment):
			h.logger.Warn("POST /bookings - Invalid appointment: date=%q, slot=%q, error=%v",
				useCaseReq.Date, useCaseReq.SlotLabel, err)
			handlers.RespondBadRequest(w, msgInvalidAppointment)

		case errors.Is(err, createBooking.ErrSlotFull):
			h.logger.Warn("POST /bookings - Slot full: date=%s, slot=%q", useCaseReq.Date, useCaseReq.SlotLabel)
			handlers.RespondError(w, http.StatusConflict, msgSlotFull)

		case errors.As(err, &dup):
			h.logger.Warn("POST /bookings - Duplicate booking: phone=%s, existing_id=%s",
				useCaseReq.CustomerPhone, dup.ExistingBookingID)
			handlers.RespondJSON(w, http.StatusConflict, DuplicateBookingResponse{
				Message:           msgDuplicateBooking,
				ExistingBookingID: dup.ExistingBookingID,
			})

		case errors.Is(err, createBooking.ErrUnknownService):
			h.logger.Warn("POST /bookings - Unknown service: %v", err)
			handlers.RespondBadRequest(w, msgUnknownService)

		case errors.Is(err, createBooking.ErrStorageFailure):
			h.logger.Error("POST /bookings - Storage failure: %v", err)
			handlers.RespondError(w, http.StatusServiceUnavailable, msgStorageUnavailable)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: phone=%s, error=%v", useCaseReq.CustomerPhone, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%s, date=%s, slot=%q",
		result.ID, result.Date, result.SlotLabel)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
