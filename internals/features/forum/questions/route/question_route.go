package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	questionCtl "studyoverflow_backend/internals/features/forum/questions/controller"
	"studyoverflow_backend/internals/middlewares"
)

// QuestionPublicRoutes: read paths. The caller must register the static
// /questions/* paths (hot, tagged) before this runs so :id does not
// swallow them.
func QuestionPublicRoutes(r fiber.Router, db *gorm.DB) {
	ctl := questionCtl.NewQuestionController(db)

	r.Get("/questions", ctl.List)
	r.Get("/questions/tagged/:tag", ctl.ListByTag)
	r.Get("/questions/:id", ctl.GetByID)
	r.Post("/questions/:id/view", ctl.IncrementView)
}

// QuestionUserRoutes: write paths, behind auth.
func QuestionUserRoutes(r fiber.Router, db *gorm.DB) {
	ctl := questionCtl.NewQuestionController(db)

	r.Post("/questions", middlewares.WriteRateLimiter(), ctl.Create)
}
