// Package validate implements input cleansing and the registration password
// policy: HTML-metacharacter sanitization, a structural email check, the
// rule-by-rule password strength policy, and the presentational strength
// meter. Only [CheckPassword] gates registration; the meter is feedback for
// the UI and carries no authority.
package validate

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
)

// One non-whitespace run, an @, another run, a dot, a suffix. A syntactic
// gate only, not RFC validation.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#039;",
)

// Sanitize escapes HTML metacharacters and trims surrounding whitespace.
// Applied to every free-text field before storage or rendering.
func Sanitize(input string) string {
	return strings.TrimSpace(htmlEscaper.Replace(input))
}

// IsValidEmail reports whether s looks like an email address.
func IsValidEmail(s string) bool {
	return emailPattern.MatchString(strings.TrimSpace(s))
}

// Policy parameterizes the password strength rules.
type Policy struct {
	MinLength        int
	RequireUppercase bool
	RequireLowercase bool
	RequireNumber    bool
	RequireSpecial   bool
}

// DefaultPolicy returns the storefront registration policy: 8+ characters
// with all four character classes required.
func DefaultPolicy() Policy {
	return Policy{
		MinLength:        8,
		RequireUppercase: true,
		RequireLowercase: true,
		RequireNumber:    true,
		RequireSpecial:   true,
	}
}

// PasswordCheck is the outcome of [CheckPassword]: Valid is true iff every
// configured rule passed; Errors holds one human-readable message per unmet
// rule.
type PasswordCheck struct {
	Valid  bool
	Errors []string
}

// CheckPassword evaluates password against the policy.
func CheckPassword(policy Policy, password string) PasswordCheck {
	var errs []string
	if len(password) < policy.MinLength {
		errs = append(errs, fmt.Sprintf("At least %d characters", policy.MinLength))
	}
	if policy.RequireUppercase && !containsClass(password, unicode.IsUpper) {
		errs = append(errs, "At least one uppercase letter")
	}
	if policy.RequireLowercase && !containsClass(password, unicode.IsLower) {
		errs = append(errs, "At least one lowercase letter")
	}
	if policy.RequireNumber && !containsClass(password, unicode.IsDigit) {
		errs = append(errs, "At least one number")
	}
	if policy.RequireSpecial && !strings.ContainsAny(password, specialSet) {
		errs = append(errs, "At least one special character (!@#$%^&*...)")
	}
	return PasswordCheck{Valid: len(errs) == 0, Errors: errs}
}

const specialSet = `!@#$%^&*(),.?":{}|<>`

func containsClass(s string, class func(rune) bool) bool {
	for _, r := range s {
		if class(r) {
			return true
		}
	}
	return false
}
