package validation

import "regexp"

var (
	upperPattern   = regexp.MustCompile(`[A-Z]`)
	lowerPattern   = regexp.MustCompile(`[a-z]`)
	digitPattern   = regexp.MustCompile(`\d`)
	specialPattern = regexp.MustCompile(`[!@#$%^&*(),.?":{}|<>]`)
)

// HasSpecialChar checks if a string contains at least one special character
func HasSpecialChar(s string) bool {
	return specialPattern.MatchString(s)
}

// IsStrongPassword requires an upper case letter, a lower case letter, a digit and a special character.
func IsStrongPassword(s string) bool {
	return upperPattern.MatchString(s) &&
		lowerPattern.MatchString(s) &&
		digitPattern.MatchString(s) &&
		HasSpecialChar(s)
}
