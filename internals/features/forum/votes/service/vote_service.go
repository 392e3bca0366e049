// file: internals/features/forum/votes/service/vote_service.go
package service

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	answerModel "studyoverflow_backend/internals/features/forum/answers/model"
	questionModel "studyoverflow_backend/internals/features/forum/questions/model"
	voteModel "studyoverflow_backend/internals/features/forum/votes/model"
	profileModel "studyoverflow_backend/internals/features/users/profile/model"
)

/* ==============================
   Casting
   ============================== */

// CastQuestionVote runs the toggle transition for a question target and
// applies the ledger mutation together with the author's reputation delta
// in one transaction. Returns the new aggregate score.
func CastQuestionVote(db *gorm.DB, voterID, questionID uuid.UUID, value int) (int, error) {
	var q questionModel.QuestionModel
	if err := db.Select("question_id", "question_author_id").
		First(&q, "question_id = ?", questionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, fiber.NewError(fiber.StatusNotFound, "Question not found")
		}
		return 0, err
	}
	if q.QuestionAuthorID == voterID {
		return 0, fiber.NewError(fiber.StatusForbidden, "You cannot vote on your own posts")
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		var existing voteModel.VoteModel
		var existingVal *int
		err := tx.Where("vote_profile_id = ? AND vote_question_id = ?", voterID, questionID).
			First(&existing).Error
		switch {
		case err == nil:
			existingVal = &existing.VoteValue
		case errors.Is(err, gorm.ErrRecordNotFound):
			// first vote on this target
		default:
			return err
		}

		action, delta := Transition(TargetQuestion, existingVal, value)
		switch action {
		case VoteCreated:
			row := voteModel.VoteModel{
				VoteProfileID:  voterID,
				VoteQuestionID: &questionID,
				VoteValue:      value,
			}
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
		case VoteRemoved:
			if err := tx.Delete(&voteModel.VoteModel{}, "vote_id = ?", existing.VoteID).Error; err != nil {
				return err
			}
		case VoteFlipped:
			if err := tx.Model(&voteModel.VoteModel{}).
				Where("vote_id = ?", existing.VoteID).
				Update("vote_value", value).Error; err != nil {
				return err
			}
		}

		return applyReputation(tx, q.QuestionAuthorID, delta)
	})
	if err != nil {
		return 0, err
	}

	return ScoreForQuestion(db, questionID)
}

// CastAnswerVote is the answer-target twin of CastQuestionVote.
func CastAnswerVote(db *gorm.DB, voterID, answerID uuid.UUID, value int) (int, error) {
	var a answerModel.AnswerModel
	if err := db.Select("answer_id", "answer_author_id").
		First(&a, "answer_id = ?", answerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, fiber.NewError(fiber.StatusNotFound, "Answer not found")
		}
		return 0, err
	}
	if a.AnswerAuthorID == voterID {
		return 0, fiber.NewError(fiber.StatusForbidden, "You cannot vote on your own posts")
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		var existing voteModel.VoteModel
		var existingVal *int
		err := tx.Where("vote_profile_id = ? AND vote_answer_id = ?", voterID, answerID).
			First(&existing).Error
		switch {
		case err == nil:
			existingVal = &existing.VoteValue
		case errors.Is(err, gorm.ErrRecordNotFound):
		default:
			return err
		}

		action, delta := Transition(TargetAnswer, existingVal, value)
		switch action {
		case VoteCreated:
			row := voteModel.VoteModel{
				VoteProfileID: voterID,
				VoteAnswerID:  &answerID,
				VoteValue:     value,
			}
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
		case VoteRemoved:
			if err := tx.Delete(&voteModel.VoteModel{}, "vote_id = ?", existing.VoteID).Error; err != nil {
				return err
			}
		case VoteFlipped:
			if err := tx.Model(&voteModel.VoteModel{}).
				Where("vote_id = ?", existing.VoteID).
				Update("vote_value", value).Error; err != nil {
				return err
			}
		}

		return applyReputation(tx, a.AnswerAuthorID, delta)
	})
	if err != nil {
		return 0, err
	}

	return ScoreForAnswer(db, answerID)
}

/* ==============================
   Reputation accumulator
   ============================== */

// applyReputation adds a signed delta to a profile, no floor or ceiling.
func applyReputation(tx *gorm.DB, profileID uuid.UUID, delta int) error {
	if delta == 0 {
		return nil
	}
	return tx.Model(&profileModel.ProfileModel{}).
		Where("profile_id = ?", profileID).
		UpdateColumn("profile_reputation", gorm.Expr("profile_reputation + ?", delta)).Error
}

// ApplyReputation is the exported form used by the accept-answer path.
func ApplyReputation(tx *gorm.DB, profileID uuid.UUID, delta int) error {
	return applyReputation(tx, profileID, delta)
}

/* ==============================
   Aggregate scores
   Recomputed from the ledger on every read, never cached.
   ============================== */

func ScoreForQuestion(db *gorm.DB, questionID uuid.UUID) (int, error) {
	var score int
	err := db.Model(&voteModel.VoteModel{}).
		Where("vote_question_id = ?", questionID).
		Select("COALESCE(SUM(vote_value), 0)").
		Scan(&score).Error
	return score, err
}

func ScoreForAnswer(db *gorm.DB, answerID uuid.UUID) (int, error) {
	var score int
	err := db.Model(&voteModel.VoteModel{}).
		Where("vote_answer_id = ?", answerID).
		Select("COALESCE(SUM(vote_value), 0)").
		Scan(&score).Error
	return score, err
}

// MyVote returns the caller's stored vote value on a target, nil if none.
func MyVote(db *gorm.DB, voterID uuid.UUID, kind TargetKind, targetID uuid.UUID) (*int, error) {
	q := db.Model(&voteModel.VoteModel{}).Where("vote_profile_id = ?", voterID)
	if kind == TargetQuestion {
		q = q.Where("vote_question_id = ?", targetID)
	} else {
		q = q.Where("vote_answer_id = ?", targetID)
	}

	var row voteModel.VoteModel
	if err := q.First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &row.VoteValue, nil
}
