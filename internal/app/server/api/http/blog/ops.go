package blog

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) createOp() huma.Operation {
	return huma.Operation{
		OperationID: "blog-create",
		Method:      http.MethodPost,
		Path:        "/blog",
		Summary:     "Создать запись",
		Tags:        []string{"blogs"},
		Security:    h.security,
		Errors:      []int{http.StatusUnauthorized, http.StatusUnprocessableEntity},
		Middlewares: h.middleware,
	}
}

func (h *Handler) listOp() huma.Operation {
	return huma.Operation{
		OperationID: "blogs-list",
		Method:      http.MethodGet,
		Path:        "/blogs",
		Summary:     "Список записей",
		Description: "Содержимое возвращается расшифрованным.",
		Tags:        []string{"blogs"},
		Security:    h.security,
		Errors:      []int{http.StatusUnauthorized},
		Middlewares: h.middleware,
	}
}
