// file: internals/features/moderation/settings/controller/settings_controller.go
package controller

import (
	"log"

	validator "github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dto "studyoverflow_backend/internals/features/moderation/settings/dto"
	service "studyoverflow_backend/internals/features/moderation/settings/service"
	helper "studyoverflow_backend/internals/helpers"
)

type SettingsController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewSettingsController(db *gorm.DB) *SettingsController {
	return &SettingsController{
		DB:        db,
		Validator: validator.New(),
	}
}

// GET /settings/auto-approve
func (ctl *SettingsController) GetAutoApprove(c *fiber.Ctx) error {
	enabled, err := service.AutoApproveEnabled(ctl.DB)
	if err != nil {
		log.Printf("[ERROR] read settings: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to read settings")
	}
	return helper.Success(c, "OK", dto.AutoApproveResponse{Enabled: enabled})
}

// PUT /settings/auto-approve. The route group already gates to MODERATOR.
func (ctl *SettingsController) SetAutoApprove(c *fiber.Ctx) error {
	var req dto.SetAutoApproveRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid body")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	if err := service.SetAutoApprove(ctl.DB, *req.Enabled); err != nil {
		log.Printf("[ERROR] update settings: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to update settings")
	}
	return helper.Success(c, "Settings updated", dto.AutoApproveResponse{Enabled: *req.Enabled})
}
