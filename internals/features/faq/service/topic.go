// file: internals/features/faq/service/topic.go
package service

import "strings"

const fallbackTopic = "general"

// JoinTopic collapses a tag list into the FAQ topic label.
func JoinTopic(tags []string) string {
	parts := make([]string, 0, len(tags))
	for _, t := range tags {
		t = strings.TrimSpace(t)
		if t != "" {
			parts = append(parts, t)
		}
	}
	if len(parts) == 0 {
		return fallbackTopic
	}
	return strings.Join(parts, ", ")
}
