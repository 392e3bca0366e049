// file: internals/features/users/profile/model/profile_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

/* =========================================================
   MODEL: profiles
   One row per identity-provider subject, auto-created on
   first authenticated request. Pseudonym stays NULL until
   onboarding and is globally unique once set. Reputation is
   unbounded in both directions.
   ========================================================= */

type ProfileModel struct {
	ProfileID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:profile_id" json:"profile_id"`

	// Subject id from the identity provider. Never exposed.
	ProfileUserID string `gorm:"type:varchar(64);not null;uniqueIndex;column:profile_user_id" json:"-"`

	ProfilePseudonym  *string `gorm:"type:varchar(20);uniqueIndex;column:profile_pseudonym" json:"profile_pseudonym"`
	ProfileReputation int     `gorm:"not null;default:0;column:profile_reputation" json:"profile_reputation"`
	ProfileRole       string  `gorm:"type:varchar(16);not null;default:'STUDENT';column:profile_role" json:"profile_role"`

	ProfileCreatedAt time.Time `gorm:"type:timestamptz;not null;default:now();autoCreateTime;column:profile_created_at" json:"profile_created_at"`
	ProfileUpdatedAt time.Time `gorm:"type:timestamptz;not null;default:now();autoUpdateTime;column:profile_updated_at" json:"profile_updated_at"`
}

func (ProfileModel) TableName() string { return "profiles" }

// HasPseudonym reports whether onboarding finished.
func (p *ProfileModel) HasPseudonym() bool {
	return p.ProfilePseudonym != nil && *p.ProfilePseudonym != ""
}
