// file: internals/features/forum/answers/controller/answer_controller.go
package controller

import (
	"errors"
	"log"

	validator "github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"studyoverflow_backend/internals/constants"
	dto "studyoverflow_backend/internals/features/forum/answers/dto"
	model "studyoverflow_backend/internals/features/forum/answers/model"
	questionModel "studyoverflow_backend/internals/features/forum/questions/model"
	voteService "studyoverflow_backend/internals/features/forum/votes/service"
	contentfilter "studyoverflow_backend/internals/features/moderation/contentfilter/service"
	settingsService "studyoverflow_backend/internals/features/moderation/settings/service"
	helper "studyoverflow_backend/internals/helpers"
)

type AnswerController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewAnswerController(db *gorm.DB) *AnswerController {
	return &AnswerController{
		DB:        db,
		Validator: validator.New(),
	}
}

// POST /questions/:id/answers
func (ctl *AnswerController) Create(c *fiber.Ctx) error {
	authorID, err := helper.GetProfileID(c)
	if err != nil {
		return err
	}
	if helper.GetPseudonym(c) == "" {
		return fiber.NewError(fiber.StatusForbidden, "You must set a pseudonym before posting answers")
	}

	questionID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid id")
	}

	var req dto.CreateAnswerRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid body")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	if res := contentfilter.ValidateAnswerContent(req.Content); !res.IsValid {
		return helper.ErrorWithDetails(c, fiber.StatusUnprocessableEntity, res.Reason, res.Suggestions)
	}

	// answers only attach to questions the public can already see
	var question questionModel.QuestionModel
	err = ctl.DB.
		Select("question_id, question_status").
		First(&question, "question_id = ?", questionID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Question not found")
		}
		log.Printf("[ERROR] load question for answer: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to create answer")
	}
	if question.QuestionStatus != constants.StatusApproved {
		return fiber.NewError(fiber.StatusNotFound, "Question not found")
	}

	autoApprove, err := settingsService.AutoApproveEnabled(ctl.DB)
	if err != nil {
		log.Printf("[ERROR] read auto-approve: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to create answer")
	}

	answer := model.AnswerModel{
		AnswerQuestionID: questionID,
		AnswerAuthorID:   authorID,
		AnswerContent:    req.Content,
		AnswerStatus:     settingsService.InitialStatus(autoApprove),
	}
	if err := ctl.DB.Create(&answer).Error; err != nil {
		log.Printf("[ERROR] create answer: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to create answer")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Answer created", fiber.Map{
		"answer_id": answer.AnswerID,
		"status":    answer.AnswerStatus,
	})
}

// POST /questions/:id/answers/:answerId/accept
// Only the question author can accept, only one answer per question stays
// accepted, and the +15 reputation grant fires once per answer.
func (ctl *AnswerController) Accept(c *fiber.Ctx) error {
	callerID, err := helper.GetProfileID(c)
	if err != nil {
		return err
	}

	questionID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid id")
	}
	answerID, err := uuid.Parse(c.Params("answerId"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid id")
	}

	var answer model.AnswerModel
	err = ctl.DB.First(&answer, "answer_id = ?", answerID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Answer not found")
		}
		log.Printf("[ERROR] load answer: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to accept answer")
	}
	if answer.AnswerQuestionID != questionID {
		return fiber.NewError(fiber.StatusNotFound, "Answer not found")
	}

	var question questionModel.QuestionModel
	err = ctl.DB.
		Select("question_id, question_author_id").
		First(&question, "question_id = ?", answer.AnswerQuestionID).Error
	if err != nil {
		log.Printf("[ERROR] load question: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to accept answer")
	}
	if question.QuestionAuthorID != callerID {
		return fiber.NewError(fiber.StatusForbidden, "Only the question author can accept answers")
	}
	if answer.AnswerStatus != constants.StatusApproved {
		return fiber.NewError(fiber.StatusConflict, "Only approved answers can be accepted")
	}

	// re-accepting the same answer is a no-op, the grant never doubles
	if answer.AnswerIsAccepted {
		return helper.Success(c, "Answer already accepted", fiber.Map{
			"answer_id": answer.AnswerID,
		})
	}

	err = ctl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.AnswerModel{}).
			Where("answer_question_id = ? AND answer_is_accepted = TRUE", answer.AnswerQuestionID).
			Update("answer_is_accepted", false).Error; err != nil {
			return err
		}
		if err := tx.Model(&model.AnswerModel{}).
			Where("answer_id = ?", answer.AnswerID).
			Update("answer_is_accepted", true).Error; err != nil {
			return err
		}
		return voteService.ApplyReputation(tx, answer.AnswerAuthorID, constants.RepAnswerAccepted)
	})
	if err != nil {
		log.Printf("[ERROR] accept answer: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to accept answer")
	}

	return helper.Success(c, "Answer accepted", fiber.Map{
		"answer_id": answer.AnswerID,
	})
}
