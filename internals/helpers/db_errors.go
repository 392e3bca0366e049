package helper

import "strings"

// IsUniqueViolation sniffs a Postgres unique-constraint failure out of a
// GORM error without depending on driver error types.
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "sqlstate 23505") ||
		strings.Contains(s, "duplicate key") ||
		strings.Contains(s, "unique constraint")
}
