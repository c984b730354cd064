package user

import (
	"blogkeeper/internal/domain/token"
	"blogkeeper/internal/domain/user"
)

type registerInput struct {
	Body user.BaseRequest
}

type messageOutput struct {
	Body MessageResponse
}

type MessageResponse struct {
	Msg string `json:"msg" example:"User created successfully"`
}

// tokenInput accepts application/x-www-form-urlencoded (username, password)
// or the same fields as JSON.
type tokenInput struct {
	ContentType string `header:"Content-Type"`
	RawBody     []byte
}

type tokenOutput struct {
	Body token.Token
}

type listUsersOutput struct {
	Body []string
}

type passwordForm struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
