// file: internals/features/forum/tags/model/tag_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// Tags are created lazily on first use (lowercase, deduplicated) and
// never deleted.
type TagModel struct {
	TagID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:tag_id" json:"tag_id"`
	TagName      string    `gorm:"type:varchar(64);not null;uniqueIndex;column:tag_name" json:"tag_name"`
	TagCreatedAt time.Time `gorm:"type:timestamptz;not null;default:now();autoCreateTime;column:tag_created_at" json:"tag_created_at"`
}

func (TagModel) TableName() string { return "tags" }
