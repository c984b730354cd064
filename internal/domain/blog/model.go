package blog

import (
	"time"

	"github.com/google/uuid"
)

// Blog is a stored entry. Content holds a cipher token when the service
// encrypts at rest and the plain text otherwise.
type Blog struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Author    string    `json:"author,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type Entry struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}
