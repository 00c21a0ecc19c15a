// Package validators holds the pure input checks shared by registration,
// login and password reset. No state, no I/O.
package validators

import "regexp"

var (
	emailPattern    = regexp.MustCompile(`^(([^<>()\[\]\.,;:\s@"]+(\.[^<>()\[\]\.,;:\s@"]+)*)|(".+"))@(([^<>()\[\]\.,;:\s@"]+\.)+[^<>()\[\]\.,;:\s@"]{2,})$`)
	digitPattern    = regexp.MustCompile(`\d`)
	lowerPattern    = regexp.MustCompile(`[a-z]`)
	upperPattern    = regexp.MustCompile(`[A-Z]`)
	alphanumPattern = regexp.MustCompile(`^[A-Za-z0-9]+$`)
)

// IsEmailValid reports whether s looks like local@domain with a dotted
// domain and a TLD of at least two characters. No network lookup.
func IsEmailValid(s string) bool {
	return emailPattern.MatchString(s)
}

// IsPasswordValid requires at least 8 characters with at least one digit,
// one lowercase and one uppercase letter.
func IsPasswordValid(s string) bool {
	if len(s) < 8 {
		return false
	}
	return digitPattern.MatchString(s) && lowerPattern.MatchString(s) && upperPattern.MatchString(s)
}

// CheckTaxID validates a tax identifier: 8 to 15 alphanumeric characters.
// On failure the second return value holds a human-readable reason.
func CheckTaxID(taxID string) (bool, string) {
	if len(taxID) > 15 {
		return false, "Tax ID cannot be longer than 15 characters"
	}
	if len(taxID) < 8 {
		return false, "Tax ID must be at least 8 characters long"
	}
	if !alphanumPattern.MatchString(taxID) {
		return false, "Tax ID can only contain letters and numbers"
	}
	return true, "Valid Tax ID"
}
