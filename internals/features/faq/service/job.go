// file: internals/features/faq/service/job.go
package service

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"studyoverflow_backend/internals/constants"
	model "studyoverflow_backend/internals/features/faq/model"
	answerModel "studyoverflow_backend/internals/features/forum/answers/model"
	questionModel "studyoverflow_backend/internals/features/forum/questions/model"
	voteService "studyoverflow_backend/internals/features/forum/votes/service"
	helper "studyoverflow_backend/internals/helpers"
)

const (
	eligibilityWindow = 24 * time.Hour
	maxFAQsPerRun     = 10
)

// GenerationResult summarizes one job run.
type GenerationResult struct {
	Scanned   int `json:"scanned"`
	Generated int `json:"generated"`
	Skipped   int `json:"skipped"`
	Failed    int `json:"failed"`
}

// RunGeneration walks recently approved questions and turns the ones
// with a well-received approved answer into FAQ entries. One FAQ per
// source question, at most maxFAQsPerRun per invocation.
func RunGeneration(ctx context.Context, db *gorm.DB, gen *Generator) (GenerationResult, error) {
	var result GenerationResult
	if !gen.Enabled() {
		log.Println("⚠️ FAQ generation skipped: no API key configured")
		return result, nil
	}

	since := time.Now().Add(-eligibilityWindow)

	var questions []questionModel.QuestionModel
	err := db.
		Preload("Tags").
		Where("question_status = ? AND question_created_at >= ?", constants.StatusApproved, since).
		Where("EXISTS (SELECT 1 FROM answers WHERE answers.answer_question_id = questions.question_id AND answers.answer_status = ?)", constants.StatusApproved).
		Order("question_created_at ASC").
		Find(&questions).Error
	if err != nil {
		return result, err
	}
	result.Scanned = len(questions)

	for i := range questions {
		if result.Generated >= maxFAQsPerRun {
			break
		}
		if err := ctx.Err(); err != nil {
			return result, err
		}

		q := &questions[i]

		var existing int64
		err := db.Model(&model.AIFaqModel{}).
			Where("ai_faq_source_question_id = ?", q.QuestionID).
			Count(&existing).Error
		if err != nil {
			return result, err
		}
		if existing > 0 {
			result.Skipped++
			continue
		}

		best, bestScore, err := bestAnswer(db, q.QuestionID)
		if err != nil {
			return result, err
		}
		if best == nil || bestScore <= 0 {
			result.Skipped++
			continue
		}

		tags := make([]string, 0, len(q.Tags))
		for _, t := range q.Tags {
			tags = append(tags, t.TagName)
		}

		output, err := gen.Generate(ctx, FAQInput{
			Title:      q.QuestionTitle,
			Content:    q.QuestionContent,
			BestAnswer: best.AnswerContent,
			Tags:       tags,
		})
		if err != nil {
			log.Printf("❌ FAQ generation failed for question %s: %v", q.QuestionID, err)
			result.Failed++
			continue
		}

		tagsJSON, err := json.Marshal(tags)
		if err != nil {
			return result, err
		}

		sourceID := q.QuestionID
		faq := model.AIFaqModel{
			AIFaqTopic:            JoinTopic(tags),
			AIFaqQuestion:         output.Question,
			AIFaqAnswer:           output.Answer,
			AIFaqTags:             datatypes.JSON(tagsJSON),
			AIFaqSourceQuestionID: &sourceID,
		}
		if err := db.Create(&faq).Error; err != nil {
			// concurrent run already stored this one
			if helper.IsUniqueViolation(err) {
				result.Skipped++
				continue
			}
			return result, err
		}
		result.Generated++
	}

	log.Printf("✅ FAQ generation: scanned=%d generated=%d skipped=%d failed=%d",
		result.Scanned, result.Generated, result.Skipped, result.Failed)
	return result, nil
}

// bestAnswer picks the approved answer with the highest vote score,
// earliest submission winning ties.
func bestAnswer(db *gorm.DB, questionID uuid.UUID) (*answerModel.AnswerModel, int, error) {
	var answers []answerModel.AnswerModel
	err := db.
		Where("answer_question_id = ? AND answer_status = ?", questionID, constants.StatusApproved).
		Order("answer_created_at ASC").
		Find(&answers).Error
	if err != nil {
		return nil, 0, err
	}
	if len(answers) == 0 {
		return nil, 0, nil
	}

	ids := make([]uuid.UUID, 0, len(answers))
	for i := range answers {
		ids = append(ids, answers[i].AnswerID)
	}
	scores, err := voteService.ScoresForAnswers(db, ids)
	if err != nil {
		return nil, 0, err
	}

	best := &answers[0]
	bestScore := scores[best.AnswerID]
	for i := 1; i < len(answers); i++ {
		if s := scores[answers[i].AnswerID]; s > bestScore {
			best = &answers[i]
			bestScore = s
		}
	}
	return best, bestScore, nil
}
