// file: internals/features/forum/votes/service/vote_batch.go
package service

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	voteModel "studyoverflow_backend/internals/features/forum/votes/model"
)

type scoreRow struct {
	TargetID uuid.UUID `gorm:"column:target_id"`
	Score    int       `gorm:"column:score"`
}

// ScoresForQuestions sums the ledger per question in one grouped query.
// Targets with no votes are simply absent from the map (score 0).
func ScoresForQuestions(db *gorm.DB, ids []uuid.UUID) (map[uuid.UUID]int, error) {
	out := make(map[uuid.UUID]int, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	var rows []scoreRow
	err := db.Model(&voteModel.VoteModel{}).
		Select("vote_question_id AS target_id, COALESCE(SUM(vote_value), 0) AS score").
		Where("vote_question_id IN ?", ids).
		Group("vote_question_id").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, r := range rows {
		out[r.TargetID] = r.Score
	}
	return out, nil
}

// ScoresForAnswers is the answer-side twin.
func ScoresForAnswers(db *gorm.DB, ids []uuid.UUID) (map[uuid.UUID]int, error) {
	out := make(map[uuid.UUID]int, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	var rows []scoreRow
	err := db.Model(&voteModel.VoteModel{}).
		Select("vote_answer_id AS target_id, COALESCE(SUM(vote_value), 0) AS score").
		Where("vote_answer_id IN ?", ids).
		Group("vote_answer_id").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, r := range rows {
		out[r.TargetID] = r.Score
	}
	return out, nil
}
