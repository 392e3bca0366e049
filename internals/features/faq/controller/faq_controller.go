// file: internals/features/faq/controller/faq_controller.go
package controller

import (
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"studyoverflow_backend/internals/configs"
	dto "studyoverflow_backend/internals/features/faq/dto"
	model "studyoverflow_backend/internals/features/faq/model"
	faqService "studyoverflow_backend/internals/features/faq/service"
	helper "studyoverflow_backend/internals/helpers"
)

type FAQController struct {
	DB *gorm.DB
}

func NewFAQController(db *gorm.DB) *FAQController {
	return &FAQController{DB: db}
}

// GET /faqs?limit=
func (ctl *FAQController) ListRecent(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 20)
	if limit < 1 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}

	var faqs []model.AIFaqModel
	err := ctl.DB.
		Order("ai_faq_generated_at DESC").
		Limit(limit).
		Find(&faqs).Error
	if err != nil {
		log.Printf("[ERROR] list faqs: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch FAQs")
	}

	var total int64
	if err := ctl.DB.Model(&model.AIFaqModel{}).Count(&total).Error; err != nil {
		log.Printf("[ERROR] count faqs: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch FAQs")
	}

	items := make([]dto.FAQResponse, 0, len(faqs))
	for i := range faqs {
		items = append(items, dto.FromFAQModel(&faqs[i]))
	}

	return helper.Success(c, "OK", fiber.Map{
		"items": items,
		"total": total,
	})
}

// GET /cron/generate-faq is invoked by the external cron runner with the
// shared secret; also usable manually for a forced run.
func (ctl *FAQController) CronGenerate(c *fiber.Ctx) error {
	if configs.CronSecret == "" {
		return fiber.NewError(fiber.StatusServiceUnavailable, "Cron endpoint is not configured")
	}

	auth := c.Get("Authorization")
	token := strings.TrimPrefix(auth, "Bearer ")
	if token == auth || token != configs.CronSecret {
		return fiber.NewError(fiber.StatusUnauthorized, "Invalid cron secret")
	}

	gen := faqService.NewGenerator(configs.OpenAIAPIKey, configs.OpenAIModel)
	result, err := faqService.RunGeneration(c.Context(), ctl.DB, gen)
	if err != nil {
		log.Printf("[ERROR] cron faq generation: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "FAQ generation failed")
	}

	return helper.Success(c, "FAQ generation finished", result)
}
