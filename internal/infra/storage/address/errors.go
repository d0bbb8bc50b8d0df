package address

import "errors"

var ErrDuplicateID = errors.New("address.repository: duplicate address id")
