// file: internals/features/moderation/settings/model/global_settings_model.go
package model

import "time"

// Singleton row, id fixed at 1. Read on every create path, written only
// through the moderator settings endpoint (upsert).
type GlobalSettingsModel struct {
	GlobalSettingID                 int       `gorm:"primaryKey;column:global_setting_id" json:"global_setting_id"`
	GlobalSettingAutoApproveEnabled bool      `gorm:"not null;default:false;column:global_setting_auto_approve_enabled" json:"global_setting_auto_approve_enabled"`
	GlobalSettingCreatedAt          time.Time `gorm:"type:timestamptz;not null;default:now();autoCreateTime;column:global_setting_created_at" json:"global_setting_created_at"`
	GlobalSettingUpdatedAt          time.Time `gorm:"type:timestamptz;not null;default:now();autoUpdateTime;column:global_setting_updated_at" json:"global_setting_updated_at"`
}

func (GlobalSettingsModel) TableName() string { return "global_settings" }

const GlobalSettingSingletonID = 1
