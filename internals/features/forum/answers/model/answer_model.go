// file: internals/features/forum/answers/model/answer_model.go
package model

import (
	"time"

	"github.com/google/uuid"

	questionModel "studyoverflow_backend/internals/features/forum/questions/model"
	profileModel "studyoverflow_backend/internals/features/users/profile/model"
)

/* =========================================================
   MODEL: answers
   Same lifecycle as questions. At most one answer per
   question carries answer_is_accepted = true; the accept
   transaction keeps that invariant.
   ========================================================= */

type AnswerModel struct {
	AnswerID         uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:answer_id" json:"answer_id"`
	// Partial unique index backs the one-accepted-answer invariant the
	// accept transaction maintains.
	AnswerQuestionID uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:uq_answers_one_accepted,where:answer_is_accepted;column:answer_question_id" json:"answer_question_id"`
	AnswerAuthorID   uuid.UUID `gorm:"type:uuid;not null;index;column:answer_author_id" json:"answer_author_id"`

	AnswerContent    string `gorm:"type:text;not null;column:answer_content" json:"answer_content"`
	AnswerStatus     string `gorm:"type:varchar(16);not null;default:'PENDING';index;column:answer_status" json:"answer_status"`
	AnswerIsAccepted bool   `gorm:"not null;default:false;column:answer_is_accepted" json:"answer_is_accepted"`

	AnswerCreatedAt time.Time `gorm:"type:timestamptz;not null;default:now();autoCreateTime;column:answer_created_at" json:"answer_created_at"`
	AnswerUpdatedAt time.Time `gorm:"type:timestamptz;not null;default:now();autoUpdateTime;column:answer_updated_at" json:"answer_updated_at"`

	// Relations
	Question *questionModel.QuestionModel `gorm:"foreignKey:AnswerQuestionID;references:QuestionID" json:"question,omitempty"`
	Author   *profileModel.ProfileModel   `gorm:"foreignKey:AnswerAuthorID;references:ProfileID" json:"author,omitempty"`
}

func (AnswerModel) TableName() string { return "answers" }
