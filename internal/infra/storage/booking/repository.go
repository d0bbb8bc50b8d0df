package booking

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/AC-BookingService/internal/domain"
	"github.com/m04kA/AC-BookingService/pkg/psqlbuilder"
)

var bookingColumns = []string{
	"id",
	"customer_phone",
	"customer_name",
	"email",
	"booking_date",
	"slot_label",
	"status",
	"details",
	"created_at",
}

// details полезная нагрузка бронирования, хранится одной JSON колонкой
type details struct {
	Items      []domain.BookingItem         `json:"items,omitempty"`
	Address    *domain.Address              `json:"address,omitempty"`
	Payment    *domain.Payment              `json:"payment,omitempty"`
	Technician *domain.TechnicianAssignment `json:"technician,omitempty"`
	Notes      *string                      `json:"notes,omitempty"`
}

// Repository журнал бронирований в SQL базе (PostgreSQL или SQLite)
// Журнал только дописывается: UPDATE и DELETE не предусмотрены
type Repository struct {
	db DBExecutor
	sb squirrel.StatementBuilderType
}

// NewRepository создает репозиторий для указанного драйвера
func NewRepository(db DBExecutor, driver string) *Repository {
	return &Repository{
		db: db,
		sb: psqlbuilder.For(driver),
	}
}

// Add добавляет бронирование в журнал
func (r *Repository) Add(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	payload, err := json.Marshal(details{
		Items:      booking.Items,
		Address:    booking.Address,
		Payment:    booking.Payment,
		Technician: booking.Technician,
		Notes:      booking.Notes,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: Add - %v", ErrEncodeDetails, err)
	}

	query, args, err := r.sb.Insert(tableBookings).
		Columns(bookingColumns...).
		Values(
			booking.ID,
			booking.CustomerPhone,
			booking.CustomerName,
			booking.Email,
			booking.Date,
			booking.SlotLabel,
			string(booking.Status),
			string(payload),
			booking.CreatedAt.UTC().Format(time.RFC3339Nano),
		).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Add - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return nil, fmt.Errorf("%w: Add - execute insert: %v", ErrExecQuery, err)
	}

	return booking, nil
}

// ListByDate возвращает все бронирования даты одним запросом в порядке добавления
func (r *Repository) ListByDate(ctx context.Context, date string) ([]*domain.Booking, error) {
	return r.list(ctx, "ListByDate", squirrel.Eq{"booking_date": date})
}

// ListByDateSlot возвращает бронирования слота в порядке добавления
func (r *Repository) ListByDateSlot(ctx context.Context, date, slotLabel string) ([]*domain.Booking, error) {
	return r.list(ctx, "ListByDateSlot", squirrel.Eq{"booking_date": date, "slot_label": slotLabel})
}

// ListByCustomer возвращает бронирования клиента в порядке добавления
func (r *Repository) ListByCustomer(ctx context.Context, customerPhone string) ([]*domain.Booking, error) {
	return r.list(ctx, "ListByCustomer", squirrel.Eq{"customer_phone": customerPhone})
}

// List возвращает весь журнал в порядке добавления
func (r *Repository) List(ctx context.Context) ([]*domain.Booking, error) {
	return r.list(ctx, "List", nil)
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	query, args, err := r.sb.Select(bookingColumns...).
		From(tableBookings).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	booking, err := scanBooking(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - %v", ErrScanRow, err)
	}

	return booking, nil
}

func (r *Repository) list(ctx context.Context, op string, where squirrel.Sqlizer) ([]*domain.Booking, error) {
	builder := r.sb.Select(bookingColumns...).
		From(tableBookings).
		OrderBy("seq ASC")
	if where != nil {
		builder = builder.Where(where)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - execute query: %v", ErrExecQuery, op, err)
	}
	defer rows.Close()

	bookings := make([]*domain.Booking, 0)
	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %s - %v", ErrScanRow, op, err)
		}
		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - rows error: %v", ErrScanRow, op, err)
	}

	return bookings, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanBooking(row rowScanner) (*domain.Booking, error) {
	var (
		booking   domain.Booking
		status    string
		payload   string
		createdAt string
	)

	err := row.Scan(
		&booking.ID,
		&booking.CustomerPhone,
		&booking.CustomerName,
		&booking.Email,
		&booking.Date,
		&booking.SlotLabel,
		&status,
		&payload,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	var d details
	if err := json.Unmarshal([]byte(payload), &d); err != nil {
		return nil, fmt.Errorf("decode details: %w", err)
	}

	created, err := time.Parse(time.RFC3339Nano, createdAt)
	if err != nil {
		return nil, fmt.Errorf("parse created_at: %w", err)
	}

	booking.Status = domain.BookingStatus(status)
	booking.Items = d.Items
	booking.Address = d.Address
	booking.Payment = d.Payment
	booking.Technician = d.Technician
	booking.Notes = d.Notes
	booking.CreatedAt = created

	return &booking, nil
}
