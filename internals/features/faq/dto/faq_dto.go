// file: internals/features/faq/dto/faq_dto.go
package dto

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	model "studyoverflow_backend/internals/features/faq/model"
)

type FAQResponse struct {
	FAQID       uuid.UUID `json:"faq_id"`
	Topic       string    `json:"topic"`
	Question    string    `json:"question"`
	Answer      string    `json:"answer"`
	Tags        []string  `json:"tags"`
	GeneratedAt time.Time `json:"generated_at"`
}

func FromFAQModel(f *model.AIFaqModel) FAQResponse {
	resp := FAQResponse{
		FAQID:       f.AIFaqID,
		Topic:       f.AIFaqTopic,
		Question:    f.AIFaqQuestion,
		Answer:      f.AIFaqAnswer,
		Tags:        []string{},
		GeneratedAt: f.AIFaqGeneratedAt,
	}
	if len(f.AIFaqTags) > 0 {
		_ = json.Unmarshal(f.AIFaqTags, &resp.Tags)
	}
	return resp
}
