// file: internals/features/moderation/queue/controller/queue_controller.go
package controller

import (
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"studyoverflow_backend/internals/constants"
	answerModel "studyoverflow_backend/internals/features/forum/answers/model"
	questionModel "studyoverflow_backend/internals/features/forum/questions/model"
	dto "studyoverflow_backend/internals/features/moderation/queue/dto"
	queueService "studyoverflow_backend/internals/features/moderation/queue/service"
	helper "studyoverflow_backend/internals/helpers"
)

type QueueController struct {
	DB *gorm.DB
}

func NewQueueController(db *gorm.DB) *QueueController {
	return &QueueController{DB: db}
}

/* ==============================
   Loading
============================== */

func (ctl *QueueController) pendingQuestions() ([]dto.PendingPost, error) {
	var questions []questionModel.QuestionModel
	err := ctl.DB.
		Preload("Author").
		Where("question_status = ?", constants.StatusPending).
		Order("question_created_at ASC").
		Find(&questions).Error
	if err != nil {
		return nil, err
	}

	out := make([]dto.PendingPost, 0, len(questions))
	for i := range questions {
		q := &questions[i]
		post := dto.PendingPost{
			PostType:  dto.PostTypeQuestion,
			PostID:    q.QuestionID,
			Title:     q.QuestionTitle,
			Content:   q.QuestionContent,
			CreatedAt: q.QuestionCreatedAt,
		}
		if q.Author != nil {
			post.AuthorPseudonym = q.Author.ProfilePseudonym
		}
		out = append(out, post)
	}
	return out, nil
}

func (ctl *QueueController) pendingAnswers() ([]dto.PendingPost, error) {
	var answers []answerModel.AnswerModel
	err := ctl.DB.
		Preload("Author").
		Where("answer_status = ?", constants.StatusPending).
		Order("answer_created_at ASC").
		Find(&answers).Error
	if err != nil {
		return nil, err
	}

	out := make([]dto.PendingPost, 0, len(answers))
	for i := range answers {
		a := &answers[i]
		questionID := a.AnswerQuestionID
		post := dto.PendingPost{
			PostType:   dto.PostTypeAnswer,
			PostID:     a.AnswerID,
			Content:    a.AnswerContent,
			QuestionID: &questionID,
			CreatedAt:  a.AnswerCreatedAt,
		}
		if a.Author != nil {
			post.AuthorPseudonym = a.Author.ProfilePseudonym
		}
		out = append(out, post)
	}
	return out, nil
}

/* ==============================
   Handlers
============================== */

// GET /queue
func (ctl *QueueController) Queue(c *fiber.Ctx) error {
	questions, err := ctl.pendingQuestions()
	if err != nil {
		log.Printf("[ERROR] load pending questions: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch moderation queue")
	}
	answers, err := ctl.pendingAnswers()
	if err != nil {
		log.Printf("[ERROR] load pending answers: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch moderation queue")
	}

	merged := queueService.MergeOldestFirst(questions, answers, time.Now(), queueService.StaleThreshold())
	return helper.Success(c, "OK", fiber.Map{
		"items": merged,
		"total": len(merged),
	})
}

// GET /queue/count. Any signed-in user may poll this; only moderators
// see the real number.
func (ctl *QueueController) Count(c *fiber.Ctx) error {
	if !helper.IsModerator(c) {
		return helper.Success(c, "OK", fiber.Map{"count": 0})
	}

	var questionCount, answerCount int64
	err := ctl.DB.Model(&questionModel.QuestionModel{}).
		Where("question_status = ?", constants.StatusPending).
		Count(&questionCount).Error
	if err == nil {
		err = ctl.DB.Model(&answerModel.AnswerModel{}).
			Where("answer_status = ?", constants.StatusPending).
			Count(&answerCount).Error
	}
	if err != nil {
		log.Printf("[ERROR] count pending posts: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to count moderation queue")
	}

	return helper.Success(c, "OK", fiber.Map{"count": questionCount + answerCount})
}

// POST /posts/:type/:id/approve and /posts/:type/:id/reject
func (ctl *QueueController) Approve(c *fiber.Ctx) error {
	return ctl.review(c, constants.StatusApproved)
}

func (ctl *QueueController) Reject(c *fiber.Ctx) error {
	return ctl.review(c, constants.StatusRejected)
}

func (ctl *QueueController) review(c *fiber.Ctx, newStatus string) error {
	switch c.Params("type") {
	case "questions":
		return ctl.reviewQuestion(c, newStatus, reviewMessage("Question", newStatus))
	case "answers":
		return ctl.reviewAnswer(c, newStatus, reviewMessage("Answer", newStatus))
	default:
		return fiber.NewError(fiber.StatusBadRequest, "Post type must be questions or answers")
	}
}

func reviewMessage(kind, newStatus string) string {
	if newStatus == constants.StatusApproved {
		return kind + " approved"
	}
	return kind + " rejected"
}

func (ctl *QueueController) reviewQuestion(c *fiber.Ctx, newStatus, okMessage string) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid id")
	}

	var question questionModel.QuestionModel
	err = ctl.DB.First(&question, "question_id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Question not found")
		}
		log.Printf("[ERROR] load question for review: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to review question")
	}
	if question.QuestionStatus != constants.StatusPending {
		return fiber.NewError(fiber.StatusConflict, "Post is not pending approval")
	}

	err = ctl.DB.Model(&question).Update("question_status", newStatus).Error
	if err != nil {
		log.Printf("[ERROR] update question status: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to review question")
	}

	return helper.Success(c, okMessage, fiber.Map{
		"question_id": question.QuestionID,
		"status":      newStatus,
	})
}

func (ctl *QueueController) reviewAnswer(c *fiber.Ctx, newStatus, okMessage string) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid id")
	}

	var answer answerModel.AnswerModel
	err = ctl.DB.First(&answer, "answer_id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Answer not found")
		}
		log.Printf("[ERROR] load answer for review: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to review answer")
	}
	if answer.AnswerStatus != constants.StatusPending {
		return fiber.NewError(fiber.StatusConflict, "Post is not pending approval")
	}

	err = ctl.DB.Model(&answer).Update("answer_status", newStatus).Error
	if err != nil {
		log.Printf("[ERROR] update answer status: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to review answer")
	}

	return helper.Success(c, okMessage, fiber.Map{
		"answer_id": answer.AnswerID,
		"status":    newStatus,
	})
}
