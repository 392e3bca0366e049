// file: internals/features/forum/tags/controller/tag_controller.go
package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"studyoverflow_backend/internals/constants"
	dto "studyoverflow_backend/internals/features/forum/tags/dto"
	model "studyoverflow_backend/internals/features/forum/tags/model"
	helper "studyoverflow_backend/internals/helpers"
)

type TagController struct {
	DB *gorm.DB
}

func NewTagController(db *gorm.DB) *TagController {
	return &TagController{DB: db}
}

// tagCountRow feeds the joined count queries below.
type tagCountRow struct {
	model.TagModel
	QuestionCount int64 `gorm:"column:question_count"`
}

func (ctl *TagController) countedTags(base *gorm.DB) ([]dto.TagWithCountResponse, error) {
	var rows []tagCountRow
	err := base.
		Model(&model.TagModel{}).
		Select("tags.*, COUNT(questions.question_id) AS question_count").
		Joins("LEFT JOIN question_tags ON question_tags.tag_id = tags.tag_id").
		Joins("LEFT JOIN questions ON questions.question_id = question_tags.question_id AND questions.question_status = ?", constants.StatusApproved).
		Group("tags.tag_id").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make([]dto.TagWithCountResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.TagWithCountResponse{
			TagID:         r.TagID,
			TagName:       r.TagName,
			QuestionCount: r.QuestionCount,
			TagCreatedAt:  r.TagCreatedAt,
		})
	}
	return out, nil
}

// GET /tags lists all tags, name asc, with approved-question counts.
func (ctl *TagController) List(c *fiber.Ctx) error {
	tags, err := ctl.countedTags(ctl.DB.Order("tags.tag_name ASC"))
	if err != nil {
		log.Printf("[ERROR] list tags: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch tags")
	}
	return helper.Success(c, "OK", tags)
}

// GET /tags/:name
func (ctl *TagController) GetByName(c *fiber.Ctx) error {
	name := strings.ToLower(strings.TrimSpace(c.Params("name")))
	if name == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Tag name is required")
	}

	tags, err := ctl.countedTags(ctl.DB.Where("tags.tag_name = ?", name))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Tag not found")
		}
		log.Printf("[ERROR] get tag: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch tag")
	}
	if len(tags) == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Tag not found")
	}
	return helper.Success(c, "OK", tags[0])
}
