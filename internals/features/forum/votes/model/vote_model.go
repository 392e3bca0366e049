// file: internals/features/forum/votes/model/vote_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

/* =========================================================
   MODEL: votes
   One signed vote per (voter, target). Exactly one of
   vote_question_id / vote_answer_id is set. Postgres treats
   NULLs as distinct, so the two unique indexes enforce the
   pair constraint per target kind.
   ========================================================= */

type VoteModel struct {
	VoteID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:vote_id" json:"vote_id"`
	VoteProfileID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_votes_profile_question;uniqueIndex:uq_votes_profile_answer;column:vote_profile_id" json:"vote_profile_id"`

	VoteQuestionID *uuid.UUID `gorm:"type:uuid;uniqueIndex:uq_votes_profile_question;index;column:vote_question_id" json:"vote_question_id,omitempty"`
	VoteAnswerID   *uuid.UUID `gorm:"type:uuid;uniqueIndex:uq_votes_profile_answer;index;column:vote_answer_id" json:"vote_answer_id,omitempty"`

	// +1 or -1
	VoteValue int `gorm:"not null;column:vote_value" json:"vote_value"`

	VoteCreatedAt time.Time `gorm:"type:timestamptz;not null;default:now();autoCreateTime;column:vote_created_at" json:"vote_created_at"`
	VoteUpdatedAt time.Time `gorm:"type:timestamptz;not null;default:now();autoUpdateTime;column:vote_updated_at" json:"vote_updated_at"`
}

func (VoteModel) TableName() string { return "votes" }
