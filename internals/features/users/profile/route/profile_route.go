package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	profileCtl "studyoverflow_backend/internals/features/users/profile/controller"
)

// ProfileUserRoutes: r is the authenticated group.
func ProfileUserRoutes(r fiber.Router, db *gorm.DB) {
	ctl := profileCtl.NewProfileController(db)

	r.Get("/profile/me", ctl.Me)
	r.Post("/profile/pseudonym", ctl.ClaimPseudonym)
}

// ProfilePublicRoutes: r is the public group.
func ProfilePublicRoutes(r fiber.Router, db *gorm.DB) {
	ctl := profileCtl.NewProfileController(db)

	r.Get("/users", ctl.ListUsers)
	r.Get("/users/:pseudonym", ctl.GetByPseudonym)
}
