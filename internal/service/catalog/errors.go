package catalog

import "errors"

var (
	ErrServiceNotFound = errors.New("service.catalog: service not found")
	ErrInvalidCatalog  = errors.New("service.catalog: invalid catalog")
)
