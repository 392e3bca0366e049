package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	rankingCtl "studyoverflow_backend/internals/features/forum/ranking/controller"
)

// RankingRoutes must run before the question routes so the static
// /questions/hot path wins over /questions/:id.
func RankingRoutes(r fiber.Router, db *gorm.DB) {
	ctl := rankingCtl.NewRankingController(db)

	r.Get("/questions/hot", ctl.HotQuestions)
	r.Get("/search", ctl.Search)
	r.Get("/stats", ctl.Stats)
}
