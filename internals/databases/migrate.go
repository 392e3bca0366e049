package database

import (
	"log"

	faqModel "studyoverflow_backend/internals/features/faq/model"
	answerModel "studyoverflow_backend/internals/features/forum/answers/model"
	questionModel "studyoverflow_backend/internals/features/forum/questions/model"
	tagModel "studyoverflow_backend/internals/features/forum/tags/model"
	voteModel "studyoverflow_backend/internals/features/forum/votes/model"
	settingsModel "studyoverflow_backend/internals/features/moderation/settings/model"
	profileModel "studyoverflow_backend/internals/features/users/profile/model"
)

// Migrate keeps the schema in step with the models. Order follows the
// FK direction: profiles before content, content before votes.
func Migrate() {
	err := DB.AutoMigrate(
		&profileModel.ProfileModel{},
		&tagModel.TagModel{},
		&questionModel.QuestionModel{},
		&answerModel.AnswerModel{},
		&voteModel.VoteModel{},
		&settingsModel.GlobalSettingsModel{},
		&faqModel.AIFaqModel{},
	)
	if err != nil {
		log.Fatalf("❌ Migration failed: %v", err)
	}
	log.Println("✅ Migration done.")
}
