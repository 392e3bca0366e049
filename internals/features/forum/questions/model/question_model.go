// file: internals/features/forum/questions/model/question_model.go
package model

import (
	"time"

	"github.com/google/uuid"

	tagModel "studyoverflow_backend/internals/features/forum/tags/model"
	profileModel "studyoverflow_backend/internals/features/users/profile/model"
)

/* =========================================================
   MODEL: questions
   Status lifecycle: PENDING → APPROVED | REJECTED (terminal).
   Views only ever increment.
   ========================================================= */

type QuestionModel struct {
	QuestionID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:question_id" json:"question_id"`
	QuestionAuthorID uuid.UUID `gorm:"type:uuid;not null;index;column:question_author_id" json:"question_author_id"`

	QuestionTitle   string `gorm:"type:varchar(300);not null;column:question_title" json:"question_title"`
	QuestionContent string `gorm:"type:text;not null;column:question_content" json:"question_content"`

	QuestionViews  int    `gorm:"not null;default:0;column:question_views" json:"question_views"`
	QuestionStatus string `gorm:"type:varchar(16);not null;default:'PENDING';index;column:question_status" json:"question_status"`

	QuestionCreatedAt time.Time `gorm:"type:timestamptz;not null;default:now();autoCreateTime;index;column:question_created_at" json:"question_created_at"`
	QuestionUpdatedAt time.Time `gorm:"type:timestamptz;not null;default:now();autoUpdateTime;column:question_updated_at" json:"question_updated_at"`

	// Relations
	Author *profileModel.ProfileModel `gorm:"foreignKey:QuestionAuthorID;references:ProfileID" json:"author,omitempty"`
	Tags   []tagModel.TagModel        `gorm:"many2many:question_tags;joinForeignKey:question_id;joinReferences:tag_id" json:"tags,omitempty"`
}

func (QuestionModel) TableName() string { return "questions" }
