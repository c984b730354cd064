package token

import "errors"

var (
	ErrExpiredToken   = errors.New("token expired")
	ErrBadSignature   = errors.New("token signature is invalid")
	ErrMalformedToken = errors.New("token is malformed")
	ErrMissingSubject = errors.New("token has no subject")
	ErrEmptySubject   = errors.New("subject is required")
	ErrEmptySecret    = errors.New("signing secret is required")
)
