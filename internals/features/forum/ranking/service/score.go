// file: internals/features/forum/ranking/service/score.go
package service

import (
	"sort"
	"strings"
	"time"
)

/* ==============================
   Hot score
============================== */

// ScoredQuestion carries the raw signals the ranker needs, detached from
// any storage concern so the math stays unit-testable.
type ScoredQuestion struct {
	QuestionID  string
	Views       int
	VoteScore   int
	AnswerCount int
	CreatedAt   time.Time
	Score       float64
}

// HotScore weighs engagement signals with a small freshness bonus. A post
// younger than a day gets +10, younger than two days +5, older nothing.
func HotScore(views, voteScore, answerCount int, createdAt, now time.Time) float64 {
	score := float64(views)*0.1 +
		float64(voteScore)*2 +
		float64(answerCount)*5

	age := now.Sub(createdAt)
	switch {
	case age <= 24*time.Hour:
		score += 10
	case age <= 48*time.Hour:
		score += 5
	}
	return score
}

// RankByHotScore fills in Score and sorts highest first. Ties keep their
// input order.
func RankByHotScore(questions []ScoredQuestion, now time.Time) []ScoredQuestion {
	for i := range questions {
		q := &questions[i]
		q.Score = HotScore(q.Views, q.VoteScore, q.AnswerCount, q.CreatedAt, now)
	}
	sort.SliceStable(questions, func(i, j int) bool {
		return questions[i].Score > questions[j].Score
	})
	return questions
}

/* ==============================
   Relevance score
============================== */

// RelevanceScore rates a question against a search term. Title matches
// dominate, with exact > substring > prefix, then content and tag hits
// add on top.
func RelevanceScore(title, content string, tags []string, query string) int {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return 0
	}
	t := strings.ToLower(title)
	score := 0

	if t == q {
		score += 100
	} else if strings.Contains(t, q) {
		score += 50
	} else if strings.HasPrefix(t, q) {
		score += 30
	}

	if strings.Contains(strings.ToLower(content), q) {
		score += 10
	}
	for _, tag := range tags {
		if strings.Contains(strings.ToLower(tag), q) {
			score += 20
		}
	}
	return score
}
