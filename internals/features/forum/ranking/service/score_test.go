package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHotScoreWeights(t *testing.T) {
	now := time.Now()

	// 100 views, score 10, 5 answers, posted 12h ago:
	// 10 + 20 + 25 + 10 = 65
	fresh := HotScore(100, 10, 5, now.Add(-12*time.Hour), now)
	assert.InDelta(t, 65.0, fresh, 0.001)

	// same signals but 36h old only gets the +5 bonus
	older := HotScore(100, 10, 5, now.Add(-36*time.Hour), now)
	assert.InDelta(t, 60.0, older, 0.001)

	// past 48h the freshness bonus disappears entirely
	stale := HotScore(100, 10, 5, now.Add(-72*time.Hour), now)
	assert.InDelta(t, 55.0, stale, 0.001)
}

func TestHotScoreZeroSignals(t *testing.T) {
	now := time.Now()
	assert.InDelta(t, 10.0, HotScore(0, 0, 0, now, now), 0.001)
}

func TestRankByHotScoreOrdersDescending(t *testing.T) {
	now := time.Now()
	questions := []ScoredQuestion{
		{QuestionID: "low", Views: 10, CreatedAt: now.Add(-100 * time.Hour)},
		{QuestionID: "high", Views: 10, VoteScore: 20, AnswerCount: 3, CreatedAt: now.Add(-1 * time.Hour)},
		{QuestionID: "mid", Views: 200, CreatedAt: now.Add(-100 * time.Hour)},
	}

	ranked := RankByHotScore(questions, now)
	require.Len(t, ranked, 3)
	assert.Equal(t, "high", ranked[0].QuestionID)
	assert.Equal(t, "mid", ranked[1].QuestionID)
	assert.Equal(t, "low", ranked[2].QuestionID)
}

func TestRankByHotScoreStableOnTies(t *testing.T) {
	now := time.Now()
	created := now.Add(-100 * time.Hour)
	questions := []ScoredQuestion{
		{QuestionID: "first", Views: 50, CreatedAt: created},
		{QuestionID: "second", Views: 50, CreatedAt: created},
	}

	ranked := RankByHotScore(questions, now)
	assert.Equal(t, "first", ranked[0].QuestionID)
	assert.Equal(t, "second", ranked[1].QuestionID)
}

func TestRelevanceScoreTitleTiers(t *testing.T) {
	assert.Equal(t, 100, RelevanceScore("binary search", "", nil, "binary search"))
	assert.Equal(t, 50, RelevanceScore("how does binary search work", "", nil, "binary search"))
	assert.Equal(t, 0, RelevanceScore("sorting algorithms", "", nil, "binary search"))
}

func TestRelevanceScoreContentAndTags(t *testing.T) {
	score := RelevanceScore(
		"help with my homework",
		"I cannot get recursion to terminate",
		[]string{"recursion", "java"},
		"recursion",
	)
	// content hit +10, one tag hit +20
	assert.Equal(t, 30, score)
}

func TestRelevanceScoreCaseInsensitive(t *testing.T) {
	assert.Equal(t, 100, RelevanceScore("Binary Search", "", nil, "BINARY search"))
}

func TestRelevanceScoreEmptyQuery(t *testing.T) {
	assert.Equal(t, 0, RelevanceScore("anything", "anything", []string{"tag"}, "   "))
}
