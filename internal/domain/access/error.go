package access

import "errors"

var ErrUnauthorized = errors.New("unauthorized")
