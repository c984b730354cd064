package debug

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) rawUsersOp() huma.Operation {
	return huma.Operation{
		OperationID: "raw-users",
		Method:      http.MethodGet,
		Path:        "/raw_users",
		Summary:     "Пользователи как они хранятся",
		Description: "Включая хеши паролей. Только для отладки.",
		Tags:        []string{"debug"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) rawBlogsOp() huma.Operation {
	return huma.Operation{
		OperationID: "raw-blogs",
		Method:      http.MethodGet,
		Path:        "/raw_blogs",
		Summary:     "Записи как они хранятся",
		Description: "Содержимое не расшифровывается. Только для отладки.",
		Tags:        []string{"debug"},
		Middlewares: h.middleware,
	}
}
