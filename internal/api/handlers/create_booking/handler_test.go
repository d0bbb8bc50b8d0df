package create_booking

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/AC-BookingService/internal/domain"
	createBooking "github.com/m04kA/AC-BookingService/internal/usecase/create_booking"
	"github.com/m04kA/AC-BookingService/pkg/logger"
)

type fakeUseCase struct {
	got  *createBooking.Request
	resp *createBooking.Response
	err  error
}

func (f *fakeUseCase) Execute(_ context.Context, req *createBooking.Request) (*createBooking.Response, error) {
	f.got = req
	return f.resp, f.err
}

func post(h *Handler, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodPost, "/api/v1/bookings", bytes.NewBufferString(body)))
	return rec
}

func TestHandler_ErrorMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{"InvalidAppointment", fmt.Errorf("%w: bad slot", createBooking.ErrInvalidAppointment), http.StatusBadRequest},
		{"SlotFull", createBooking.ErrSlotFull, http.StatusConflict},
		{"UnknownService", createBooking.ErrUnknownService, http.StatusBadRequest},
		{"StorageFailure", fmt.Errorf("%w: timeout", createBooking.ErrStorageFailure), http.StatusServiceUnavailable},
		{"Unexpected", fmt.Errorf("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(&fakeUseCase{err: tt.err}, logger.Nop())
			rec := post(h, `{"customerPhone":"9876500000","date":"2025-11-20","slot":"10:00 - 11:00"}`)
			assert.Equal(t, tt.code, rec.Code)
		})
	}
}

func TestHandler_Duplicate(t *testing.T) {
	h := NewHandler(&fakeUseCase{err: &createBooking.DuplicateBookingError{ExistingBookingID: "BK-1"}}, logger.Nop())
	rec := post(h, `{"customerPhone":"9876500000","date":"2025-11-20","slot":"10:00 - 11:00"}`)

	require.Equal(t, http.StatusConflict, rec.Code)
	var body DuplicateBookingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "BK-1", body.ExistingBookingID)
	assert.Equal(t, msgDuplicateBooking, body.Message)
}

func TestHandler_InvalidBody(t *testing.T) {
	uc := &fakeUseCase{}
	h := NewHandler(uc, logger.Nop())

	assert.Equal(t, http.StatusBadRequest, post(h, "").Code)
	assert.Equal(t, http.StatusBadRequest, post(h, "{not json").Code)
	assert.Nil(t, uc.got)
}

func TestHandler_LegacyFields(t *testing.T) {
	uc := &fakeUseCase{resp: &createBooking.Response{
		ID:         "BK-1",
		Date:       "2025-11-20",
		SlotLabel:  "10:00 - 11:00",
		Status:     string(domain.StatusConfirmed),
		SlotStatus: domain.SlotAvailable,
		Remaining:  3,
	}}
	h := NewHandler(uc, logger.Nop())

	rec := post(h, `{"userPhone":"9876500000","appointment":{"date":"2025-11-20","slot":"10:00 - 11:00"},
		"items":[{"serviceId":"svc1","variant":"Split","quantity":2}]}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	require.NotNil(t, uc.got)
	assert.Equal(t, "9876500000", uc.got.CustomerPhone)
	assert.Equal(t, "2025-11-20", uc.got.Date)
	assert.Equal(t, "10:00 - 11:00", uc.got.SlotLabel)
	require.Len(t, uc.got.Items, 1)
	assert.Equal(t, 2, uc.got.Items[0].Quantity)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "BK-1", body["id"])
	assert.Equal(t, "available", body["slotStatus"])
	assert.EqualValues(t, 3, body["remaining"])
}
