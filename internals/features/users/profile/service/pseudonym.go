// file: internals/features/users/profile/service/pseudonym.go
package service

import "regexp"

var pseudonymPattern = regexp.MustCompile(`^[a-zA-Z0-9_]{3,20}$`)

// ValidatePseudonym enforces the handle format: letters, digits and
// underscores, 3 to 20 characters. The handle is permanent once claimed
// so the rules stay strict.
func ValidatePseudonym(pseudonym string) bool {
	return pseudonymPattern.MatchString(pseudonym)
}
