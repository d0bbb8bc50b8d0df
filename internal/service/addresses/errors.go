package addresses

import "errors"

var (
	// ErrInvalidInput возвращается, когда не заполнены обязательные поля адреса
	ErrInvalidInput = errors.New("service.addresses: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service.addresses: internal error")
)
