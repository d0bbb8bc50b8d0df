package psqlbuilder

import "github.com/Masterminds/squirrel"

// Поддерживаемые SQL драйверы
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite3"
)

// psql построитель запросов с плейсхолдерами PostgreSQL ($1, $2, ...)
var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// For возвращает построитель запросов с плейсхолдерами для указанного драйвера
func For(driver string) squirrel.StatementBuilderType {
	if driver == DriverSQLite {
		return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question)
	}
	return psql
}
