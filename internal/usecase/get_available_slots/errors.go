package get_available_slots

import "errors"

var (
	// ErrInvalidDate возвращается при пустой или некорректной дате
	ErrInvalidDate = errors.New("usecase.get_available_slots: invalid date")

	// ErrStorageFailure возвращается, когда журнал недоступен после всех повторов
	ErrStorageFailure = errors.New("usecase.get_available_slots: storage failure")
)
