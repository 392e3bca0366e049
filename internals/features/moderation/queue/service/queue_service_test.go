package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dto "studyoverflow_backend/internals/features/moderation/queue/dto"
)

func TestIsStale(t *testing.T) {
	now := time.Now()
	threshold := 2 * time.Hour

	assert.False(t, IsStale(now.Add(-1*time.Hour), now, threshold))
	assert.False(t, IsStale(now.Add(-2*time.Hour), now, threshold))
	assert.True(t, IsStale(now.Add(-2*time.Hour-time.Minute), now, threshold))
}

func TestMergeOldestFirst(t *testing.T) {
	now := time.Now()
	questions := []dto.PendingPost{
		{PostType: dto.PostTypeQuestion, Title: "newest", CreatedAt: now.Add(-30 * time.Minute)},
		{PostType: dto.PostTypeQuestion, Title: "oldest", CreatedAt: now.Add(-5 * time.Hour)},
	}
	answers := []dto.PendingPost{
		{PostType: dto.PostTypeAnswer, Content: "middle", CreatedAt: now.Add(-3 * time.Hour)},
	}

	merged := MergeOldestFirst(questions, answers, now, 2*time.Hour)
	require.Len(t, merged, 3)

	assert.Equal(t, "oldest", merged[0].Title)
	assert.Equal(t, "middle", merged[1].Content)
	assert.Equal(t, "newest", merged[2].Title)

	// the two that waited past the threshold get flagged
	assert.True(t, merged[0].IsStale)
	assert.True(t, merged[1].IsStale)
	assert.False(t, merged[2].IsStale)
}

func TestMergeOldestFirstEmpty(t *testing.T) {
	merged := MergeOldestFirst(nil, nil, time.Now(), 2*time.Hour)
	assert.Empty(t, merged)
}
