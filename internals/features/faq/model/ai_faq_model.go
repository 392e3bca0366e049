// file: internals/features/faq/model/ai_faq_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

/* =========================================================
   MODEL: ai_faqs
   Write-only from the generation job, read-only elsewhere.
   The unique index on the source question id is what makes
   the job idempotent per question.
   ========================================================= */

type AIFaqModel struct {
	AIFaqID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:ai_faq_id" json:"ai_faq_id"`

	AIFaqTopic    string         `gorm:"type:varchar(255);not null;column:ai_faq_topic" json:"ai_faq_topic"`
	AIFaqQuestion string         `gorm:"type:text;not null;column:ai_faq_question" json:"ai_faq_question"`
	AIFaqAnswer   string         `gorm:"type:text;not null;column:ai_faq_answer" json:"ai_faq_answer"`
	AIFaqTags     datatypes.JSON `gorm:"type:jsonb;column:ai_faq_tags" json:"ai_faq_tags,omitempty"`

	AIFaqSourceQuestionID *uuid.UUID `gorm:"type:uuid;uniqueIndex;column:ai_faq_source_question_id" json:"ai_faq_source_question_id,omitempty"`

	AIFaqGeneratedAt time.Time `gorm:"type:timestamptz;not null;default:now();autoCreateTime;column:ai_faq_generated_at" json:"ai_faq_generated_at"`
}

func (AIFaqModel) TableName() string { return "ai_faqs" }
