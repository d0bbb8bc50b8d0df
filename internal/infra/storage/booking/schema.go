package booking

import (
	"context"
	"fmt"

	"github.com/m04kA/AC-BookingService/pkg/psqlbuilder"
)

const tableBookings = "bookings"

// seq задает порядок добавления, id - внешний идентификатор бронирования
var schemaStatements = map[string][]string{
	psqlbuilder.DriverPostgres: {
		`CREATE TABLE IF NOT EXISTS bookings (
			seq            BIGSERIAL PRIMARY KEY,
			id             TEXT NOT NULL UNIQUE,
			customer_phone TEXT NOT NULL,
			customer_name  TEXT NOT NULL DEFAULT '',
			email          TEXT NULL,
			booking_date   TEXT NOT NULL,
			slot_label     TEXT NOT NULL,
			status         TEXT NOT NULL,
			details        TEXT NOT NULL,
			created_at     TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_bookings_slot ON bookings (booking_date, slot_label)`,
		`CREATE INDEX IF NOT EXISTS idx_bookings_customer ON bookings (customer_phone)`,
	},
	psqlbuilder.DriverSQLite: {
		`CREATE TABLE IF NOT EXISTS bookings (
			seq            INTEGER PRIMARY KEY AUTOINCREMENT,
			id             TEXT NOT NULL UNIQUE,
			customer_phone TEXT NOT NULL,
			customer_name  TEXT NOT NULL DEFAULT '',
			email          TEXT NULL,
			booking_date   TEXT NOT NULL,
			slot_label     TEXT NOT NULL,
			status         TEXT NOT NULL,
			details        TEXT NOT NULL,
			created_at     TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_bookings_slot ON bookings (booking_date, slot_label)`,
		`CREATE INDEX IF NOT EXISTS idx_bookings_customer ON bookings (customer_phone)`,
	},
}

// Migrate создает таблицу журнала, если её нет
func Migrate(ctx context.Context, db DBExecutor, driver string) error {
	statements, ok := schemaStatements[driver]
	if !ok {
		return fmt.Errorf("%w: unsupported driver %q", ErrMigrate, driver)
	}

	for _, stmt := range statements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("%w: %v", ErrMigrate, err)
		}
	}
	return nil
}
