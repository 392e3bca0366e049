// file: internals/features/users/profile/dto/profile_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	model "studyoverflow_backend/internals/features/users/profile/model"
)

type ClaimPseudonymRequest struct {
	Pseudonym string `json:"pseudonym" validate:"required,min=3,max=20"`
}

type ProfileResponse struct {
	ProfileID  uuid.UUID `json:"profile_id"`
	Pseudonym  *string   `json:"pseudonym"`
	Reputation int       `json:"reputation"`
	Role       string    `json:"role"`
	CreatedAt  time.Time `json:"created_at"`
}

type LeaderboardEntryResponse struct {
	ProfileResponse
	QuestionCount int64 `json:"question_count"`
	AnswerCount   int64 `json:"answer_count"`
}

func FromProfileModel(p *model.ProfileModel) ProfileResponse {
	return ProfileResponse{
		ProfileID:  p.ProfileID,
		Pseudonym:  p.ProfilePseudonym,
		Reputation: p.ProfileReputation,
		Role:       p.ProfileRole,
		CreatedAt:  p.ProfileCreatedAt,
	}
}
