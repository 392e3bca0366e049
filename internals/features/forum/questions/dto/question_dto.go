// file: internals/features/forum/questions/dto/question_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	answerDto "studyoverflow_backend/internals/features/forum/answers/dto"
	model "studyoverflow_backend/internals/features/forum/questions/model"
	tagDto "studyoverflow_backend/internals/features/forum/tags/dto"
)

/* =========================================================
   CREATE
========================================================= */

type CreateQuestionRequest struct {
	Title   string   `json:"title" validate:"required,max=300"`
	Content string   `json:"content" validate:"required,max=30000"`
	Tags    []string `json:"tags" validate:"omitempty,dive,max=64"`
}

/* =========================================================
   RESPONSES
========================================================= */

type QuestionAuthorResponse struct {
	ProfileID  uuid.UUID `json:"profile_id"`
	Pseudonym  *string   `json:"pseudonym"`
	Reputation int       `json:"reputation"`
}

type QuestionSummaryResponse struct {
	QuestionID  uuid.UUID               `json:"question_id"`
	Title       string                  `json:"title"`
	Content     string                  `json:"content"`
	Views       int                     `json:"views"`
	Status      string                  `json:"status"`
	VoteScore   int                     `json:"vote_score"`
	AnswerCount int64                   `json:"answer_count"`
	CreatedAt   time.Time               `json:"created_at"`
	Author      *QuestionAuthorResponse `json:"author,omitempty"`
	Tags        []tagDto.TagResponse    `json:"tags"`
}

type QuestionDetailResponse struct {
	QuestionSummaryResponse
	Answers []answerDto.AnswerResponse `json:"answers"`
}

func FromQuestionModel(q *model.QuestionModel, voteScore int, answerCount int64) QuestionSummaryResponse {
	resp := QuestionSummaryResponse{
		QuestionID:  q.QuestionID,
		Title:       q.QuestionTitle,
		Content:     q.QuestionContent,
		Views:       q.QuestionViews,
		Status:      q.QuestionStatus,
		VoteScore:   voteScore,
		AnswerCount: answerCount,
		CreatedAt:   q.QuestionCreatedAt,
		Tags:        make([]tagDto.TagResponse, 0, len(q.Tags)),
	}
	for _, t := range q.Tags {
		resp.Tags = append(resp.Tags, tagDto.TagResponse{TagID: t.TagID, TagName: t.TagName})
	}
	if q.Author != nil {
		resp.Author = &QuestionAuthorResponse{
			ProfileID:  q.Author.ProfileID,
			Pseudonym:  q.Author.ProfilePseudonym,
			Reputation: q.Author.ProfileReputation,
		}
	}
	return resp
}
