package constants

import "fmt"

// Role names match the values stored on profiles.profile_role.
const (
	RoleStudent   = "STUDENT"
	RoleModerator = "MODERATOR"
)

// Template pesan error role
const (
	ErrOnlyModeratorsCanAccess = "❌ Only moderators can access %s."
)

func RoleErrorModerator(feature string) string {
	return fmt.Sprintf(ErrOnlyModeratorsCanAccess, feature)
}

// ==========================
// ✅ Grouped Role Slices
// ==========================
var (
	AllRoles = []string{
		RoleStudent,
		RoleModerator,
	}

	ModeratorOnly = []string{
		RoleModerator,
	}
)
