// file: internals/features/forum/answers/dto/answer_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	model "studyoverflow_backend/internals/features/forum/answers/model"
)

type CreateAnswerRequest struct {
	Content string `json:"content" validate:"required,max=30000"`
}

type AnswerAuthorResponse struct {
	ProfileID  uuid.UUID `json:"profile_id"`
	Pseudonym  *string   `json:"pseudonym"`
	Reputation int       `json:"reputation"`
}

type AnswerResponse struct {
	AnswerID   uuid.UUID             `json:"answer_id"`
	QuestionID uuid.UUID             `json:"question_id"`
	Content    string                `json:"content"`
	Status     string                `json:"status"`
	IsAccepted bool                  `json:"is_accepted"`
	VoteScore  int                   `json:"vote_score"`
	CreatedAt  time.Time             `json:"created_at"`
	Author     *AnswerAuthorResponse `json:"author,omitempty"`
}

func FromAnswerModel(a *model.AnswerModel, voteScore int) AnswerResponse {
	resp := AnswerResponse{
		AnswerID:   a.AnswerID,
		QuestionID: a.AnswerQuestionID,
		Content:    a.AnswerContent,
		Status:     a.AnswerStatus,
		IsAccepted: a.AnswerIsAccepted,
		VoteScore:  voteScore,
		CreatedAt:  a.AnswerCreatedAt,
	}
	if a.Author != nil {
		resp.Author = &AnswerAuthorResponse{
			ProfileID:  a.Author.ProfileID,
			Pseudonym:  a.Author.ProfilePseudonym,
			Reputation: a.Author.ProfileReputation,
		}
	}
	return resp
}
