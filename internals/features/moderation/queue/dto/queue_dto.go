// file: internals/features/moderation/queue/dto/queue_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
)

const (
	PostTypeQuestion = "question"
	PostTypeAnswer   = "answer"
)

// PendingPost is one row of the moderation queue, question or answer.
type PendingPost struct {
	PostType        string     `json:"post_type"`
	PostID          uuid.UUID  `json:"post_id"`
	Title           string     `json:"title,omitempty"`
	Content         string     `json:"content"`
	AuthorPseudonym *string    `json:"author_pseudonym"`
	QuestionID      *uuid.UUID `json:"question_id,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	IsStale         bool       `json:"is_stale"`
}
