package helper

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"studyoverflow_backend/internals/constants"
)

/* ======== Locals set by the auth middleware ======== */

// GetProfileID returns the caller's profile id, or an error when the
// request carries no authenticated profile.
func GetProfileID(c *fiber.Ctx) (uuid.UUID, error) {
	id, ok := c.Locals("profileID").(uuid.UUID)
	if !ok || id == uuid.Nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Unauthorized: You must be logged in")
	}
	return id, nil
}

func GetUserRole(c *fiber.Ctx) string {
	role, _ := c.Locals("userRole").(string)
	return role
}

// GetPseudonym returns the caller's pseudonym ("" until onboarding).
func GetPseudonym(c *fiber.Ctx) string {
	p, _ := c.Locals("pseudonym").(string)
	return p
}

func IsModerator(c *fiber.Ctx) bool {
	return GetUserRole(c) == constants.RoleModerator
}
