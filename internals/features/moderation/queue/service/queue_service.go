// file: internals/features/moderation/queue/service/queue_service.go
package service

import (
	"sort"
	"time"

	"studyoverflow_backend/internals/configs"
	dto "studyoverflow_backend/internals/features/moderation/queue/dto"
)

const defaultStaleHours = 2

// StaleThreshold reads MOD_QUEUE_STALE_HOURS so operators can tune how
// long a post may sit unreviewed before the queue flags it.
func StaleThreshold() time.Duration {
	hours := configs.GetEnvInt("MOD_QUEUE_STALE_HOURS", defaultStaleHours)
	if hours <= 0 {
		hours = defaultStaleHours
	}
	return time.Duration(hours) * time.Hour
}

// IsStale reports whether a post has been waiting longer than the
// threshold.
func IsStale(createdAt, now time.Time, threshold time.Duration) bool {
	return now.Sub(createdAt) > threshold
}

// MergeOldestFirst interleaves questions and answers into one queue,
// oldest submission first, and stamps the stale flag on each entry.
func MergeOldestFirst(questions, answers []dto.PendingPost, now time.Time, threshold time.Duration) []dto.PendingPost {
	merged := make([]dto.PendingPost, 0, len(questions)+len(answers))
	merged = append(merged, questions...)
	merged = append(merged, answers...)

	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].CreatedAt.Before(merged[j].CreatedAt)
	})
	for i := range merged {
		merged[i].IsStale = IsStale(merged[i].CreatedAt, now, threshold)
	}
	return merged
}
