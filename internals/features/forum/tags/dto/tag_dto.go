// file: internals/features/forum/tags/dto/tag_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
)

type TagResponse struct {
	TagID   uuid.UUID `json:"tag_id"`
	TagName string    `json:"tag_name"`
}

type TagWithCountResponse struct {
	TagID         uuid.UUID `json:"tag_id"`
	TagName       string    `json:"tag_name"`
	QuestionCount int64     `json:"question_count"`
	TagCreatedAt  time.Time `json:"tag_created_at"`
}
