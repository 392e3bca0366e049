// file: internals/features/forum/ranking/dto/ranking_dto.go
package dto

import (
	questionDto "studyoverflow_backend/internals/features/forum/questions/dto"
	tagDto "studyoverflow_backend/internals/features/forum/tags/dto"
)

type HotQuestionResponse struct {
	questionDto.QuestionSummaryResponse
	HotScore float64 `json:"hot_score"`
}

type SearchResultResponse struct {
	questionDto.QuestionSummaryResponse
	Relevance int `json:"relevance"`
}

type StatsResponse struct {
	TotalQuestions int64                         `json:"total_questions"`
	TotalAnswers   int64                         `json:"total_answers"`
	TotalUsers     int64                         `json:"total_users"`
	TotalTags      int64                         `json:"total_tags"`
	FeaturedTags   []tagDto.TagWithCountResponse `json:"featured_tags"`
}
