package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	answerCtl "studyoverflow_backend/internals/features/forum/answers/controller"
	"studyoverflow_backend/internals/middlewares"
)

// AnswerUserRoutes: r is the authenticated group.
func AnswerUserRoutes(r fiber.Router, db *gorm.DB) {
	ctl := answerCtl.NewAnswerController(db)

	r.Post("/questions/:id/answers", middlewares.WriteRateLimiter(), ctl.Create)
	r.Post("/questions/:id/answers/:answerId/accept", ctl.Accept)
}
