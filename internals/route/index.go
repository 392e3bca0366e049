// file: internals/route/index.go
package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"studyoverflow_backend/internals/constants"
	faqRoute "studyoverflow_backend/internals/features/faq/route"
	answerRoute "studyoverflow_backend/internals/features/forum/answers/route"
	questionRoute "studyoverflow_backend/internals/features/forum/questions/route"
	rankingRoute "studyoverflow_backend/internals/features/forum/ranking/route"
	tagRoute "studyoverflow_backend/internals/features/forum/tags/route"
	voteRoute "studyoverflow_backend/internals/features/forum/votes/route"
	queueRoute "studyoverflow_backend/internals/features/moderation/queue/route"
	settingsRoute "studyoverflow_backend/internals/features/moderation/settings/route"
	profileRoute "studyoverflow_backend/internals/features/users/profile/route"
	authMiddleware "studyoverflow_backend/internals/middlewares/auth"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	// ===================== GROUPS =====================

	// PUBLIC → JWT optional, so authors still see their own pending posts
	log.Println("[INFO] Setting up PUBLIC group...")
	public := app.Group("/api/public",
		authMiddleware.OptionalAuthMiddleware(db),
	)

	log.Println("[INFO] Setting up USER group...")
	user := app.Group("/api/u",
		authMiddleware.AuthMiddleware(db),
	)

	log.Println("[INFO] Setting up MODERATOR group...")
	moderator := app.Group("/api/m",
		authMiddleware.AuthMiddleware(db),
		authMiddleware.OnlyRoles(constants.RoleErrorModerator("manage the moderation queue"), constants.ModeratorOnly...),
	)

	log.Println("[INFO] Setting up CRON group...")
	cron := app.Group("/api/cron")

	// ===================== MOUNT ROUTES =====================

	// ranking first: /questions/hot must beat /questions/:id
	log.Println("[INFO] Mounting Ranking routes...")
	rankingRoute.RankingRoutes(public, db)

	log.Println("[INFO] Mounting Question routes...")
	questionRoute.QuestionPublicRoutes(public, db)
	questionRoute.QuestionUserRoutes(user, db)

	log.Println("[INFO] Mounting Answer routes...")
	answerRoute.AnswerUserRoutes(user, db)

	log.Println("[INFO] Mounting Vote routes...")
	voteRoute.VoteRoutes(user, db)

	log.Println("[INFO] Mounting Tag routes...")
	tagRoute.TagRoutes(public, db)

	log.Println("[INFO] Mounting Profile routes...")
	profileRoute.ProfilePublicRoutes(public, db)
	profileRoute.ProfileUserRoutes(user, db)

	log.Println("[INFO] Mounting Moderation routes...")
	queueRoute.QueueModeratorRoutes(moderator, db)
	queueRoute.QueueUserRoutes(user, db)
	settingsRoute.SettingsRoutes(moderator, db)

	log.Println("[INFO] Mounting FAQ routes...")
	faqRoute.FAQPublicRoutes(public, db)
	faqRoute.FAQCronRoutes(cron, db)
}
