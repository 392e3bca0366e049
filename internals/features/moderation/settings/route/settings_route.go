package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	settingsCtl "studyoverflow_backend/internals/features/moderation/settings/controller"
)

// SettingsRoutes: r is the moderator group (/api/m).
func SettingsRoutes(r fiber.Router, db *gorm.DB) {
	ctl := settingsCtl.NewSettingsController(db)

	r.Get("/settings/auto-approve", ctl.GetAutoApprove)
	r.Put("/settings/auto-approve", ctl.SetAutoApprove)
}
