package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	queueCtl "studyoverflow_backend/internals/features/moderation/queue/controller"
)

// QueueModeratorRoutes: r is the moderator-only group.
func QueueModeratorRoutes(r fiber.Router, db *gorm.DB) {
	ctl := queueCtl.NewQueueController(db)

	r.Get("/queue", ctl.Queue)
	r.Post("/posts/:type/:id/approve", ctl.Approve)
	r.Post("/posts/:type/:id/reject", ctl.Reject)
}

// QueueUserRoutes: the badge count endpoint any signed-in user may poll.
// It lives outside the moderator group so non-moderators get a zero
// instead of a 403.
func QueueUserRoutes(r fiber.Router, db *gorm.DB) {
	ctl := queueCtl.NewQueueController(db)

	r.Get("/queue/count", ctl.Count)
}
