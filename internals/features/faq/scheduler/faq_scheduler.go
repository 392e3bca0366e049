package scheduler

import (
	"context"
	"log"
	"time"

	"gorm.io/gorm"

	"studyoverflow_backend/internals/configs"
	faqService "studyoverflow_backend/internals/features/faq/service"
)

// StartFAQGenerationScheduler runs the FAQ job once a day in the
// background. FAQ_INTERVAL_HOURS overrides the cadence for testing.
func StartFAQGenerationScheduler(db *gorm.DB) {
	go func() {
		intervalHours := configs.GetEnvInt("FAQ_INTERVAL_HOURS", 24)
		if intervalHours <= 0 {
			intervalHours = 24
		}
		interval := time.Duration(intervalHours) * time.Hour

		gen := faqService.NewGenerator(configs.OpenAIAPIKey, configs.OpenAIModel)

		for {
			log.Println("[FAQ] Running scheduled generation...")

			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
			if _, err := faqService.RunGeneration(ctx, db, gen); err != nil {
				log.Printf("[FAQ ERROR] Scheduled generation failed: %v", err)
			}
			cancel()

			time.Sleep(interval)
		}
	}()
}
