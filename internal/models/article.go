package models

import (
	"time"

	"github.com/google/uuid"
)

type Article struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	PostTime  time.Time `json:"posttime"`
	CreatedAt time.Time `json:"created_at"`
	EditedAt  time.Time `json:"edited_at"`
}

// swagger:model CreateArticleRequest
type CreateArticleRequest struct {
	Title    string `json:"title"    validate:"required" example:"Как писать middleware в Go"`
	Content  string `json:"content"  validate:"required" example:"Текст статьи"`
	PostTime string `json:"posttime" validate:"required" example:"2024-01-01T00:00:00"`
}

// UpdateArticleRequest — поля-указатели, чтобы отличать «не передано» от пустой строки.
// posttime не входит в набор изменяемых полей ни для POST, ни для PATCH.
// swagger:model UpdateArticleRequest
type UpdateArticleRequest struct {
	Title   *string `json:"title,omitempty"   example:"Новый заголовок"`
	Content *string `json:"content,omitempty" example:"Новый текст"`
}
