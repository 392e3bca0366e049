package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	tagCtl "studyoverflow_backend/internals/features/forum/tags/controller"
)

// TagRoutes: r is the public group.
func TagRoutes(r fiber.Router, db *gorm.DB) {
	ctl := tagCtl.NewTagController(db)

	r.Get("/tags", ctl.List)
	r.Get("/tags/:name", ctl.GetByName)
}
