package api

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/AC-BookingService/internal/api/middleware"
)

// Handlers обработчики всех маршрутов сервиса
type Handlers struct {
	GetAvailableSlots http.HandlerFunc
	CreateBooking     http.HandlerFunc
	GetBooking        http.HandlerFunc
	ListBookings      http.HandlerFunc
	ExportBookings    http.HandlerFunc
	ListServices      http.HandlerFunc
	GetService        http.HandlerFunc
	CreateAddress     http.HandlerFunc
	ListAddresses     http.HandlerFunc
}

// RouterOptions необязательные части роутера, nil отключает соответствующую функциональность
type RouterOptions struct {
	Metrics        middleware.HTTPMetrics
	MetricsPath    string
	MetricsHandler http.Handler
	RateLimiter    *middleware.RateLimiter
}

// NewRouter настраивает маршруты HTTP API
func NewRouter(h Handlers, opts RouterOptions) *mux.Router {
	r := mux.NewRouter()

	if opts.Metrics != nil {
		r.Use(middleware.MetricsMiddleware(opts.Metrics))
	}
	if opts.MetricsHandler != nil && opts.MetricsPath != "" {
		r.Handle(opts.MetricsPath, opts.MetricsHandler).Methods(http.MethodGet)
	}

	r.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	}).Methods(http.MethodGet)

	api := r.PathPrefix("/api/v1").Subrouter()
	if opts.RateLimiter != nil {
		api.Use(opts.RateLimiter.Middleware())
	}

	// --- Слоты ---
	api.HandleFunc("/slots", h.GetAvailableSlots).Methods(http.MethodGet)

	// --- Бронирования ---
	api.HandleFunc("/bookings", h.CreateBooking).Methods(http.MethodPost)
	api.HandleFunc("/bookings", h.ListBookings).Methods(http.MethodGet)
	// export регистрируется раньше {bookingId}, иначе совпадет как id
	api.HandleFunc("/bookings/export", h.ExportBookings).Methods(http.MethodGet)
	api.HandleFunc("/bookings/{bookingId}", h.GetBooking).Methods(http.MethodGet)

	// --- Каталог ---
	api.HandleFunc("/services", h.ListServices).Methods(http.MethodGet)
	api.HandleFunc("/services/{serviceId}", h.GetService).Methods(http.MethodGet)

	// --- Адреса ---
	api.HandleFunc("/addresses", h.CreateAddress).Methods(http.MethodPost)
	api.HandleFunc("/addresses", h.ListAddresses).Methods(http.MethodGet)

	return r
}
