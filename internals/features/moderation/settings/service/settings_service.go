// file: internals/features/moderation/settings/service/settings_service.go
package service

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"studyoverflow_backend/internals/constants"
	model "studyoverflow_backend/internals/features/moderation/settings/model"
)

// AutoApproveEnabled reads the singleton flag; a missing row means off.
func AutoApproveEnabled(db *gorm.DB) (bool, error) {
	var settings model.GlobalSettingsModel
	err := db.First(&settings, "global_setting_id = ?", model.GlobalSettingSingletonID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return settings.GlobalSettingAutoApproveEnabled, nil
}

// SetAutoApprove upserts the singleton row (id = 1).
func SetAutoApprove(db *gorm.DB, enabled bool) error {
	row := model.GlobalSettingsModel{
		GlobalSettingID:                 model.GlobalSettingSingletonID,
		GlobalSettingAutoApproveEnabled: enabled,
	}
	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "global_setting_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"global_setting_auto_approve_enabled", "global_setting_updated_at"}),
	}).Create(&row).Error
}

// InitialStatus resolves the lifecycle state for freshly created content.
func InitialStatus(autoApprove bool) string {
	if autoApprove {
		return constants.StatusApproved
	}
	return constants.StatusPending
}
