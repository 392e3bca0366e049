// file: internals/features/forum/tags/service/tag_service.go
package service

import (
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	model "studyoverflow_backend/internals/features/forum/tags/model"
)

// NormalizeTagNames lowercases, trims and deduplicates, preserving the
// first-seen order. Empty entries drop out.
func NormalizeTagNames(names []string) []string {
	seen := make(map[string]struct{}, len(names))
	out := make([]string, 0, len(names))
	for _, name := range names {
		n := strings.ToLower(strings.TrimSpace(name))
		if n == "" {
			continue
		}
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	return out
}

// UpsertTags resolves tag names to rows, creating missing ones
// (ON CONFLICT DO NOTHING on the unique name). Tags are never deleted.
func UpsertTags(db *gorm.DB, names []string) ([]model.TagModel, error) {
	normalized := NormalizeTagNames(names)
	if len(normalized) == 0 {
		return nil, nil
	}

	rows := make([]model.TagModel, 0, len(normalized))
	for _, n := range normalized {
		rows = append(rows, model.TagModel{TagName: n})
	}
	if err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "tag_name"}},
		DoNothing: true,
	}).Create(&rows).Error; err != nil {
		return nil, err
	}

	// re-read so rows that already existed carry their real ids
	var tags []model.TagModel
	if err := db.Where("tag_name IN ?", normalized).Find(&tags).Error; err != nil {
		return nil, err
	}
	return tags, nil
}
