package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	faqCtl "studyoverflow_backend/internals/features/faq/controller"
)

// FAQPublicRoutes: r is the public group.
func FAQPublicRoutes(r fiber.Router, db *gorm.DB) {
	ctl := faqCtl.NewFAQController(db)

	r.Get("/faqs", ctl.ListRecent)
}

// FAQCronRoutes: r is the /api/cron group, protected by the shared
// secret inside the handler.
func FAQCronRoutes(r fiber.Router, db *gorm.DB) {
	ctl := faqCtl.NewFAQController(db)

	r.Get("/generate-faq", ctl.CronGenerate)
}
