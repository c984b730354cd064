package blog

import "blogkeeper/internal/domain/blog"

type createInput struct {
	Body struct {
		Title   string `json:"title" doc:"Заголовок"`
		Content string `json:"content" doc:"Текст записи"`
	}
}

type createOutput struct {
	Body CreatedResponse
}

type CreatedResponse struct {
	Msg string `json:"msg" example:"Blog created successfully"`
}

type listOutput struct {
	Body []blog.Entry
}
