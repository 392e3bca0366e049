// internals/middlewares/auth/auth_middleware.go
package auth

import (
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"gorm.io/gorm"

	"studyoverflow_backend/internals/configs"
	profileModel "studyoverflow_backend/internals/features/users/profile/model"
)

// AuthMiddleware verifies the identity-provider bearer token and resolves
// it to a Profile row, creating one on first sight (pseudonym NULL).
// Locals set: profileID (uuid.UUID), userRole (string), pseudonym (string).
func AuthMiddleware(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString, err := extractBearerToken(c)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, err.Error())
		}

		claims, err := parseAndVerify(tokenString)
		if err != nil {
			return err
		}

		subject, err := extractSubject(claims)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Invalid or missing subject")
		}

		profile, err := ensureProfile(db, subject)
		if err != nil {
			log.Printf("[ERROR] profile resolve: %v", err)
			return fiber.NewError(fiber.StatusInternalServerError, "Internal Server Error")
		}

		c.Locals("profileID", profile.ProfileID)
		c.Locals("userRole", profile.ProfileRole)
		if profile.ProfilePseudonym != nil {
			c.Locals("pseudonym", *profile.ProfilePseudonym)
		} else {
			c.Locals("pseudonym", "")
		}
		return c.Next()
	}
}

// OptionalAuthMiddleware resolves the caller when a token is present and
// silently continues anonymous otherwise. Read paths use it so an author
// can see their own PENDING posts while anonymous readers cannot.
func OptionalAuthMiddleware(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString, err := extractBearerToken(c)
		if err != nil {
			return c.Next()
		}

		claims, err := parseAndVerify(tokenString)
		if err != nil {
			return c.Next()
		}

		subject, err := extractSubject(claims)
		if err != nil {
			return c.Next()
		}

		profile, err := ensureProfile(db, subject)
		if err != nil {
			log.Printf("[WARN] optional auth profile resolve: %v", err)
			return c.Next()
		}

		c.Locals("profileID", profile.ProfileID)
		c.Locals("userRole", profile.ProfileRole)
		if profile.ProfilePseudonym != nil {
			c.Locals("pseudonym", *profile.ProfilePseudonym)
		} else {
			c.Locals("pseudonym", "")
		}
		return c.Next()
	}
}

func parseAndVerify(tokenString string) (jwt.MapClaims, error) {
	secretKey := configs.JWTSecret
	if secretKey == "" {
		log.Println("[ERROR] JWT_SECRET is empty")
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Missing JWT Secret")
	}

	claims := jwt.MapClaims{}
	parser := jwt.Parser{SkipClaimsValidation: true}
	if _, err := parser.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secretKey), nil
	}); err != nil {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Token parse error")
	}

	if err := validateTokenExpiry(claims, 30*time.Second); err != nil {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Token expired")
	}
	return claims, nil
}

// ensureProfile maps an identity subject to its profile, inserting the row
// on first sight. The unique index on profile_user_id resolves the race
// when two first requests land at once.
func ensureProfile(db *gorm.DB, subject string) (*profileModel.ProfileModel, error) {
	var profile profileModel.ProfileModel
	err := db.Where("profile_user_id = ?", subject).First(&profile).Error
	if err == nil {
		return &profile, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	profile = profileModel.ProfileModel{ProfileUserID: subject}
	if err := db.Create(&profile).Error; err != nil {
		// lost the insert race: someone else created it, re-read
		var again profileModel.ProfileModel
		if err2 := db.Where("profile_user_id = ?", subject).First(&again).Error; err2 == nil {
			return &again, nil
		}
		return nil, err
	}
	return &profile, nil
}
