package user

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"password"` // bcrypt verifier
	CreatedAt    time.Time `json:"created_at"`
}

type BaseRequest struct {
	Email    string `json:"email" format:"email" doc:"Email пользователя"`
	Password string `json:"password" minLength:"1" maxLength:"72" doc:"Пароль"`
}
