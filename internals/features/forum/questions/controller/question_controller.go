// file: internals/features/forum/questions/controller/question_controller.go
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
	dto "studyoverflow_backend/internals/features/forum/questions/dto"
	model "studyoverflow_backend/internals/features/forum/questions/model"
	tagService "studyoverflow_backend/internals/features/forum/tags/service"
	voteService "studyoverflow_backend/internals/features/forum/votes/service"
	contentfilter "studyoverflow_backend/internals/features/moderation/contentfilter/service"
	settingsService "studyoverflow_backend/internals/features/moderation/settings/service"
	helper "studyoverflow_backend/internals/helpers"
)

/* ==============================
   Controller
============================== */

type QuestionController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewQuestionController(db *gorm.DB) *QuestionController {
	return &QuestionController{
		DB:        db,
		Validator: validator.New(),
	}
}

/* ==============================
   Small helpers
============================== */

func answerCounts(db *gorm.DB, questionIDs []uuid.UUID) (map[uuid.UUID]int64, error) {
	out := make(map[uuid.UUID]int64, len(questionIDs))
	if len(questionIDs) == 0 {
		return out, nil
	}
	var rows []struct {
		QuestionID uuid.UUID `gorm:"column:question_id"`
		Count      int64     `gorm:"column:count"`
	}
	err := db.Model(&answerModel.AnswerModel{}).
		Select("answer_question_id AS question_id, COUNT(*) AS count").
		Where("answer_question_id IN ?", questionIDs).
		Group("answer_question_id").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, r := range rows {
		out[r.QuestionID] = r.Count
	}
	return out, nil
}

func (ctl *QuestionController) summarize(questions []model.QuestionModel) ([]dto.QuestionSummaryResponse, error) {
	ids := make([]uuid.UUID, 0, len(questions))
	for i := range questions {
		ids = append(ids, questions[i].QuestionID)
	}

	scores, err := voteService.ScoresForQuestions(ctl.DB, ids)
	if err != nil {
		return nil, err
	}
	counts, err := answerCounts(ctl.DB, ids)
	if err != nil {
		return nil, err
	}

	out := make([]dto.QuestionSummaryResponse, 0, len(questions))
	for i := range questions {
		q := &questions[i]
		out = append(out, dto.FromQuestionModel(q, scores[q.QuestionID], counts[q.QuestionID]))
	}
	return out, nil
}

/* ==============================
   Handlers
============================== */

// POST /questions
func (ctl *QuestionController) Create(c *fiber.Ctx) error {
	authorID, err := helper.GetProfileID(c)
	if err != nil {
		return err
	}
	if helper.GetPseudonym(c) == "" {
		return fiber.NewError(fiber.StatusForbidden, "You must set a pseudonym before posting questions")
	}

	var req dto.CreateQuestionRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid body")
	}
	req.Title = strings.TrimSpace(req.Title)
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	// content filter runs before anything touches the database
	if res := contentfilter.ValidateQuestionContent(req.Title, req.Content); !res.IsValid {
		return helper.ErrorWithDetails(c, fiber.StatusUnprocessableEntity, res.Reason, res.Suggestions)
	}

	autoApprove, err := settingsService.AutoApproveEnabled(ctl.DB)
	if err != nil {
		log.Printf("[ERROR] read auto-approve: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to create question")
	}

	question := model.QuestionModel{
		QuestionAuthorID: authorID,
		QuestionTitle:    req.Title,
		QuestionContent:  req.Content,
		QuestionStatus:   settingsService.InitialStatus(autoApprove),
	}

	err = ctl.DB.Transaction(func(tx *gorm.DB) error {
		tags, err := tagService.UpsertTags(tx, req.Tags)
		if err != nil {
			return err
		}
		if err := tx.Create(&question).Error; err != nil {
			return err
		}
		if len(tags) > 0 {
			if err := tx.Model(&question).Association("Tags").Append(&tags); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		log.Printf("[ERROR] create question: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to create question")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Question created", fiber.Map{
		"question_id": question.QuestionID,
		"status":      question.QuestionStatus,
	})
}

// GET /questions?filter=all|unanswered|hot&page=&per_page=
func (ctl *QuestionController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)
	filter := strings.ToLower(strings.TrimSpace(c.Query("filter", "all")))

	base := ctl.DB.Model(&model.QuestionModel{}).
		Where("question_status = ?", constants.StatusApproved)

	if filter == "unanswered" {
		base = base.Where("NOT EXISTS (SELECT 1 FROM answers WHERE answers.answer_question_id = questions.question_id)")
	}

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		log.Printf("[ERROR] count questions: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch questions")
	}

	// "hot" here is the feed variant (most viewed first); the ranked hot
	// list lives under /questions/hot.
	if filter == "hot" {
		base = base.Order("question_views DESC").Order("question_created_at DESC")
	} else {
		base = base.Order("question_created_at DESC")
	}

	var questions []model.QuestionModel
	err := base.
		Preload("Author").
		Preload("Tags").
		Offset(paging.Offset).
		Limit(paging.Limit).
		Find(&questions).Error
	if err != nil {
		log.Printf("[ERROR] list questions: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch questions")
	}

	items, err := ctl.summarize(questions)
	if err != nil {
		log.Printf("[ERROR] summarize questions: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch questions")
	}

	return helper.Success(c, "OK", fiber.Map{
		"items":      items,
		"pagination": helper.BuildPagination(paging, total, len(items)),
	})
}

// GET /questions/tagged/:tag
func (ctl *QuestionController) ListByTag(c *fiber.Ctx) error {
	tagName := strings.ToLower(strings.TrimSpace(c.Params("tag")))
	if tagName == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Tag name is required")
	}
	paging := helper.ResolvePaging(c, 20, 100)

	base := ctl.DB.Model(&model.QuestionModel{}).
		Joins("JOIN question_tags ON question_tags.question_id = questions.question_id").
		Joins("JOIN tags ON tags.tag_id = question_tags.tag_id").
		Where("questions.question_status = ? AND tags.tag_name = ?", constants.StatusApproved, tagName)

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		log.Printf("[ERROR] count tagged questions: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch questions")
	}

	var questions []model.QuestionModel
	err := base.
		Preload("Author").
		Preload("Tags").
		Order("questions.question_created_at DESC").
		Offset(paging.Offset).
		Limit(paging.Limit).
		Find(&questions).Error
	if err != nil {
		log.Printf("[ERROR] list tagged questions: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch questions")
	}

	items, err := ctl.summarize(questions)
	if err != nil {
		log.Printf("[ERROR] summarize tagged questions: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch questions")
	}

	return helper.Success(c, "OK", fiber.Map{
		"items":      items,
		"pagination": helper.BuildPagination(paging, total, len(items)),
	})
}

// GET /questions/:id
// Anonymous readers only ever see APPROVED content; the author sees their
// own pending/rejected question and answers; moderators see everything.
func (ctl *QuestionController) GetByID(c *fiber.Ctx) error {
	questionID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid id")
	}

	var question model.QuestionModel
	err = ctl.DB.
		Preload("Author").
		Preload("Tags").
		First(&question, "question_id = ?", questionID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Question not found")
		}
		log.Printf("[ERROR] get question: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch question")
	}

	viewerID, _ := c.Locals("profileID").(uuid.UUID)
	isModerator := helper.IsModerator(c)

	if question.QuestionStatus != constants.StatusApproved {
		if !isModerator && viewerID != question.QuestionAuthorID {
			// hidden content looks like a miss to everyone else
			return fiber.NewError(fiber.StatusNotFound, "Question not found")
		}
	}

	answersQuery := ctl.DB.
		Preload("Author").
		Where("answer_question_id = ?", questionID)
	if !isModerator {
		if viewerID != uuid.Nil {
			answersQuery = answersQuery.Where("answer_status = ? OR answer_author_id = ?", constants.StatusApproved, viewerID)
		} else {
			answersQuery = answersQuery.Where("answer_status = ?", constants.StatusApproved)
		}
	}

	var answers []answerModel.AnswerModel
	err = answersQuery.
		Order("answer_is_accepted DESC").
		Order("answer_created_at ASC").
		Find(&answers).Error
	if err != nil {
		log.Printf("[ERROR] get answers: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch question")
	}

	questionScore, err := voteService.ScoreForQuestion(ctl.DB, questionID)
	if err != nil {
		log.Printf("[ERROR] question score: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch question")
	}

	answerIDs := make([]uuid.UUID, 0, len(answers))
	for i := range answers {
		answerIDs = append(answerIDs, answers[i].AnswerID)
	}
	answerScores, err := voteService.ScoresForAnswers(ctl.DB, answerIDs)
	if err != nil {
		log.Printf("[ERROR] answer scores: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch question")
	}

	counts, err := answerCounts(ctl.DB, []uuid.UUID{questionID})
	if err != nil {
		log.Printf("[ERROR] answer count: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch question")
	}

	detail := dto.QuestionDetailResponse{
		QuestionSummaryResponse: dto.FromQuestionModel(&question, questionScore, counts[questionID]),
		Answers:                 make([]answerDto.AnswerResponse, 0, len(answers)),
	}
	for i := range answers {
		a := &answers[i]
		detail.Answers = append(detail.Answers, answerDto.FromAnswerModel(a, answerScores[a.AnswerID]))
	}

	return helper.Success(c, "OK", detail)
}

// POST /questions/:id/view. View counters only ever go up.
func (ctl *QuestionController) IncrementView(c *fiber.Ctx) error {
	questionID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid id")
	}

	err = ctl.DB.Model(&model.QuestionModel{}).
		Where("question_id = ?", questionID).
		UpdateColumn("question_views", gorm.Expr("question_views + 1")).Error
	if err != nil {
		log.Printf("[ERROR] increment views: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to record view")
	}
	return helper.Success(c, "View recorded", nil)
}
