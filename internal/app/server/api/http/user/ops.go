package user

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) registerOp() huma.Operation {
	return huma.Operation{
		OperationID:   "user-register",
		Method:        http.MethodPost,
		Path:          "/user",
		Summary:       "Регистрация пользователя",
		Description:   "Повторная регистрация с тем же email создает вторую запись.",
		Tags:          []string{"users"},
		DefaultStatus: http.StatusOK,
		Middlewares:   h.middleware,
	}
}

func (h *Handler) tokenOp() huma.Operation {
	return huma.Operation{
		OperationID: "user-token",
		Method:      http.MethodPost,
		Path:        "/token",
		Summary:     "Выдача bearer-токена",
		Description: "Принимает username (email) и password в form-urlencoded или JSON.",
		Tags:        []string{"users"},
		Errors:      []int{http.StatusUnauthorized, http.StatusUnprocessableEntity},
		Middlewares: h.middleware,
	}
}

func (h *Handler) listOp() huma.Operation {
	return huma.Operation{
		OperationID: "users-list",
		Method:      http.MethodGet,
		Path:        "/users",
		Summary:     "Список email пользователей",
		Tags:        []string{"users"},
		Middlewares: h.middleware,
	}
}
