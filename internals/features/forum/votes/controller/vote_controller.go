// file: internals/features/forum/votes/controller/vote_controller.go
package controller

import (
	"log"

	validator "github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "studyoverflow_backend/internals/features/forum/votes/dto"
	service "studyoverflow_backend/internals/features/forum/votes/service"
	helper "studyoverflow_backend/internals/helpers"
)

/* ==============================
   Controller
============================== */

type VoteController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewVoteController(db *gorm.DB) *VoteController {
	return &VoteController{
		DB:        db,
		Validator: validator.New(),
	}
}

func (ctl *VoteController) parseCast(c *fiber.Ctx) (uuid.UUID, int, error) {
	targetID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return uuid.Nil, 0, fiber.NewError(fiber.StatusBadRequest, "Invalid id")
	}

	var req dto.CastVoteRequest
	if err := c.BodyParser(&req); err != nil {
		return uuid.Nil, 0, fiber.NewError(fiber.StatusBadRequest, "Invalid body")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return uuid.Nil, 0, err
	}
	return targetID, req.Value, nil
}

// POST /questions/:id/vote
func (ctl *VoteController) VoteQuestion(c *fiber.Ctx) error {
	voterID, err := helper.GetProfileID(c)
	if err != nil {
		return err
	}
	if helper.GetPseudonym(c) == "" {
		return fiber.NewError(fiber.StatusForbidden, "You must set a pseudonym before voting")
	}

	questionID, value, err := ctl.parseCast(c)
	if err != nil {
		if _, ok := err.(validator.ValidationErrors); ok {
			return helper.ValidationError(c, err)
		}
		return err
	}

	newScore, err := service.CastQuestionVote(ctl.DB, voterID, questionID, value)
	if err != nil {
		if fe, ok := err.(*fiber.Error); ok {
			return fe
		}
		log.Printf("[ERROR] vote question: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to vote on question")
	}

	myVote, _ := service.MyVote(ctl.DB, voterID, service.TargetQuestion, questionID)
	return helper.Success(c, "Vote recorded", dto.VoteResponse{NewScore: newScore, MyVote: myVote})
}

// POST /answers/:id/vote
func (ctl *VoteController) VoteAnswer(c *fiber.Ctx) error {
	voterID, err := helper.GetProfileID(c)
	if err != nil {
		return err
	}
	if helper.GetPseudonym(c) == "" {
		return fiber.NewError(fiber.StatusForbidden, "You must set a pseudonym before voting")
	}

	answerID, value, err := ctl.parseCast(c)
	if err != nil {
		if _, ok := err.(validator.ValidationErrors); ok {
			return helper.ValidationError(c, err)
		}
		return err
	}

	newScore, err := service.CastAnswerVote(ctl.DB, voterID, answerID, value)
	if err != nil {
		if fe, ok := err.(*fiber.Error); ok {
			return fe
		}
		log.Printf("[ERROR] vote answer: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to vote on answer")
	}

	myVote, _ := service.MyVote(ctl.DB, voterID, service.TargetAnswer, answerID)
	return helper.Success(c, "Vote recorded", dto.VoteResponse{NewScore: newScore, MyVote: myVote})
}

// GET /votes?target_type=question|answer&target_id=
func (ctl *VoteController) GetMyVote(c *fiber.Ctx) error {
	voterID, err := helper.GetProfileID(c)
	if err != nil {
		return err
	}

	targetID, err := uuid.Parse(c.Query("target_id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid target_id")
	}

	var kind service.TargetKind
	switch c.Query("target_type") {
	case "question":
		kind = service.TargetQuestion
	case "answer":
		kind = service.TargetAnswer
	default:
		return fiber.NewError(fiber.StatusBadRequest, "target_type must be question or answer")
	}

	myVote, err := service.MyVote(ctl.DB, voterID, kind, targetID)
	if err != nil {
		log.Printf("[ERROR] get my vote: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to read vote")
	}
	return helper.Success(c, "OK", fiber.Map{"my_vote": myVote})
}
