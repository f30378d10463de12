package validate

import (
	"strings"
	"unicode"
)

// StrengthLevel is the live-meter tier shown while a user types a password.
type StrengthLevel int

const (
	// StrengthWeak covers passwords passing at most two meter checks.
	StrengthWeak StrengthLevel = iota
	// StrengthFair covers passwords passing three or four checks.
	StrengthFair
	// StrengthStrong covers passwords passing all five checks.
	StrengthStrong
)

// String returns the display label for the tier.
func (l StrengthLevel) String() string {
	switch l {
	case StrengthFair:
		return "Fair"
	case StrengthStrong:
		return "Strong"
	default:
		return "Weak"
	}
}

// Strength scores password against the five meter checks (length 8+, upper,
// lower, number, special) and returns the tier plus the number of checks
// passed. Presentational only: registration acceptance is decided solely by
// [CheckPassword].
func Strength(password string) (StrengthLevel, int) {
	passed := 0
	if len(password) >= 8 {
		passed++
	}
	if containsClass(password, unicode.IsUpper) {
		passed++
	}
	if containsClass(password, unicode.IsLower) {
		passed++
	}
	if containsClass(password, unicode.IsDigit) {
		passed++
	}
	if strings.ContainsAny(password, specialSet) {
		passed++
	}

	switch {
	case passed <= 2:
		return StrengthWeak, passed
	case passed <= 4:
		return StrengthFair, passed
	default:
		return StrengthStrong, passed
	}
}
