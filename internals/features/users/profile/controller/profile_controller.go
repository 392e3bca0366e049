// file: internals/features/users/profile/controller/profile_controller.go
package controller

import (
	"errors"
	"log"
	"strings"

	validator "github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"studyoverflow_backend/internals/constants"
	answerDto "studyoverflow_backend/internals/features/forum/answers/dto"
	answerModel "studyoverflow_backend/internals/features/forum/answers/model"
	questionDto "studyoverflow_backend/internals/features/forum/questions/dto"
	questionModel "studyoverflow_backend/internals/features/forum/questions/model"
	voteService "studyoverflow_backend/internals/features/forum/votes/service"
	dto "studyoverflow_backend/internals/features/users/profile/dto"
	model "studyoverflow_backend/internals/features/users/profile/model"
	profileService "studyoverflow_backend/internals/features/users/profile/service"
	helper "studyoverflow_backend/internals/helpers"
)

const recentContentLimit = 10

type ProfileController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewProfileController(db *gorm.DB) *ProfileController {
	return &ProfileController{
		DB:        db,
		Validator: validator.New(),
	}
}

// GET /profile/me
func (ctl *ProfileController) Me(c *fiber.Ctx) error {
	profileID, err := helper.GetProfileID(c)
	if err != nil {
		return err
	}

	var profile model.ProfileModel
	err = ctl.DB.First(&profile, "profile_id = ?", profileID).Error
	if err != nil {
		log.Printf("[ERROR] load own profile: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch profile")
	}
	return helper.Success(c, "OK", dto.FromProfileModel(&profile))
}

// POST /profile/pseudonym. One shot, the handle never changes afterwards.
func (ctl *ProfileController) ClaimPseudonym(c *fiber.Ctx) error {
	profileID, err := helper.GetProfileID(c)
	if err != nil {
		return err
	}

	var req dto.ClaimPseudonymRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid body")
	}
	req.Pseudonym = strings.TrimSpace(req.Pseudonym)
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}
	if !profileService.ValidatePseudonym(req.Pseudonym) {
		return fiber.NewError(fiber.StatusBadRequest, "Pseudonym must be 3-20 characters of letters, numbers and underscores")
	}

	var profile model.ProfileModel
	if err := ctl.DB.First(&profile, "profile_id = ?", profileID).Error; err != nil {
		log.Printf("[ERROR] load profile for claim: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to set pseudonym")
	}
	if profile.HasPseudonym() {
		return fiber.NewError(fiber.StatusConflict, "Pseudonym is already set and cannot be changed")
	}

	err = ctl.DB.Model(&profile).Update("profile_pseudonym", req.Pseudonym).Error
	if err != nil {
		if helper.IsUniqueViolation(err) {
			return fiber.NewError(fiber.StatusConflict, "Pseudonym is already taken")
		}
		log.Printf("[ERROR] claim pseudonym: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to set pseudonym")
	}

	return helper.Success(c, "Pseudonym set", fiber.Map{
		"pseudonym": req.Pseudonym,
	})
}

// GET /users: reputation leaderboard, onboarded profiles only.
func (ctl *ProfileController) ListUsers(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	base := ctl.DB.Model(&model.ProfileModel{}).
		Where("profile_pseudonym IS NOT NULL")

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		log.Printf("[ERROR] count users: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch users")
	}

	var profiles []model.ProfileModel
	err := base.
		Order("profile_reputation DESC").
		Order("profile_created_at ASC").
		Offset(paging.Offset).
		Limit(paging.Limit).
		Find(&profiles).Error
	if err != nil {
		log.Printf("[ERROR] list users: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch users")
	}

	authorIDs := make([]uuid.UUID, 0, len(profiles))
	for i := range profiles {
		authorIDs = append(authorIDs, profiles[i].ProfileID)
	}
	questionCounts, err := ctl.approvedCounts(&questionModel.QuestionModel{}, "question_author_id", "question_status", authorIDs)
	if err != nil {
		log.Printf("[ERROR] user question counts: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch users")
	}
	answerCounts, err := ctl.approvedCounts(&answerModel.AnswerModel{}, "answer_author_id", "answer_status", authorIDs)
	if err != nil {
		log.Printf("[ERROR] user answer counts: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch users")
	}

	items := make([]dto.LeaderboardEntryResponse, 0, len(profiles))
	for i := range profiles {
		p := &profiles[i]
		items = append(items, dto.LeaderboardEntryResponse{
			ProfileResponse: dto.FromProfileModel(p),
			QuestionCount:   questionCounts[p.ProfileID],
			AnswerCount:     answerCounts[p.ProfileID],
		})
	}

	return helper.Success(c, "OK", fiber.Map{
		"items":      items,
		"pagination": helper.BuildPagination(paging, total, len(items)),
	})
}

// approvedCounts groups approved content per author in one query.
func (ctl *ProfileController) approvedCounts(m interface{}, authorCol, statusCol string, authorIDs []uuid.UUID) (map[uuid.UUID]int64, error) {
	out := make(map[uuid.UUID]int64, len(authorIDs))
	if len(authorIDs) == 0 {
		return out, nil
	}
	var rows []struct {
		AuthorID uuid.UUID `gorm:"column:author_id"`
		Count    int64     `gorm:"column:count"`
	}
	err := ctl.DB.Model(m).
		Select(authorCol+" AS author_id, COUNT(*) AS count").
		Where(authorCol+" IN ? AND "+statusCol+" = ?", authorIDs, constants.StatusApproved).
		Group(authorCol).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, r := range rows {
		out[r.AuthorID] = r.Count
	}
	return out, nil
}

// GET /users/:pseudonym: public profile with recent approved activity.
func (ctl *ProfileController) GetByPseudonym(c *fiber.Ctx) error {
	pseudonym := strings.TrimSpace(c.Params("pseudonym"))
	if pseudonym == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Pseudonym is required")
	}

	var profile model.ProfileModel
	err := ctl.DB.First(&profile, "profile_pseudonym = ?", pseudonym).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "User not found")
		}
		log.Printf("[ERROR] load profile: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch user")
	}

	var questions []questionModel.QuestionModel
	err = ctl.DB.
		Preload("Tags").
		Where("question_author_id = ? AND question_status = ?", profile.ProfileID, constants.StatusApproved).
		Order("question_created_at DESC").
		Limit(recentContentLimit).
		Find(&questions).Error
	if err != nil {
		log.Printf("[ERROR] load user questions: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch user")
	}

	questionIDs := make([]uuid.UUID, 0, len(questions))
	for i := range questions {
		questionIDs = append(questionIDs, questions[i].QuestionID)
	}
	scores, err := voteService.ScoresForQuestions(ctl.DB, questionIDs)
	if err != nil {
		log.Printf("[ERROR] user question scores: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch user")
	}

	recentQuestions := make([]questionDto.QuestionSummaryResponse, 0, len(questions))
	for i := range questions {
		q := &questions[i]
		recentQuestions = append(recentQuestions, questionDto.FromQuestionModel(q, scores[q.QuestionID], 0))
	}

	var answers []answerModel.AnswerModel
	err = ctl.DB.
		Where("answer_author_id = ? AND answer_status = ?", profile.ProfileID, constants.StatusApproved).
		Order("answer_created_at DESC").
		Limit(recentContentLimit).
		Find(&answers).Error
	if err != nil {
		log.Printf("[ERROR] load user answers: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch user")
	}

	answerIDs := make([]uuid.UUID, 0, len(answers))
	for i := range answers {
		answerIDs = append(answerIDs, answers[i].AnswerID)
	}
	answerScores, err := voteService.ScoresForAnswers(ctl.DB, answerIDs)
	if err != nil {
		log.Printf("[ERROR] user answer scores: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch user")
	}

	recentAnswers := make([]answerDto.AnswerResponse, 0, len(answers))
	for i := range answers {
		a := &answers[i]
		recentAnswers = append(recentAnswers, answerDto.FromAnswerModel(a, answerScores[a.AnswerID]))
	}

	return helper.Success(c, "OK", fiber.Map{
		"profile":          dto.FromProfileModel(&profile),
		"recent_questions": recentQuestions,
		"recent_answers":   recentAnswers,
	})
}
