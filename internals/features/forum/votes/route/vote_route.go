package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	voteCtl "studyoverflow_backend/internals/features/forum/votes/controller"
	"studyoverflow_backend/internals/middlewares"
)

// VoteRoutes: authenticated only (r is the /api/u group).
func VoteRoutes(r fiber.Router, db *gorm.DB) {
	ctl := voteCtl.NewVoteController(db)

	r.Post("/questions/:id/vote", middlewares.WriteRateLimiter(), ctl.VoteQuestion)
	r.Post("/answers/:id/vote", middlewares.WriteRateLimiter(), ctl.VoteAnswer)
	r.Get("/votes", ctl.GetMyVote)
}
