package tickauth

import "github.com/tickhub/tickauth/validate"

// StrengthLevel is the coarse password-strength tier shown by the
// registration form's meter.
type StrengthLevel = validate.StrengthLevel

const (
	StrengthWeak   = validate.StrengthWeak
	StrengthFair   = validate.StrengthFair
	StrengthStrong = validate.StrengthStrong
)

// PasswordStrength grades a candidate password for live meter feedback.
// Purely presentational: only [Engine.Register]'s policy check gates
// registration.
func PasswordStrength(password string) (StrengthLevel, int) {
	return validate.Strength(password)
}

// CheckPassword evaluates a candidate password against the engine's
// configured policy without touching any stored state. Lets the UI show
// policy errors before the form is submitted. An engine that was not
// built through [Builder.Build] falls back to the default policy
// rather than accepting everything through a zero policy.
func (e *Engine) CheckPassword(password string) validate.PasswordCheck {
	if !e.ready() {
		return validate.CheckPassword(validate.DefaultPolicy(), password)
	}
	return validate.CheckPassword(e.policy, password)
}
