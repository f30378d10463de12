package tickauth

import "time"

// SecurityReport is a static snapshot of the engine's security posture,
// derived from configuration. Useful for startup logging and operational
// review; contains no secrets.
type SecurityReport struct {
	PasswordScheme     string
	PasswordMinLength  int
	UpgradeOnLogin     bool
	SessionLifetime    time.Duration
	LockoutMaxAttempts int
	LockoutDuration    time.Duration
	AuditActive        bool
	MetricsActive      bool
}

// SecurityReport returns the engine's configured posture. A nil engine
// returns the zero report.
func (e *Engine) SecurityReport() SecurityReport {
	if e == nil {
		return SecurityReport{}
	}

	return SecurityReport{
		PasswordScheme:     e.config.Password.Scheme,
		PasswordMinLength:  e.config.Password.MinLength,
		UpgradeOnLogin:     e.config.Password.UpgradeOnLogin,
		SessionLifetime:    e.config.Session.Lifetime,
		LockoutMaxAttempts: e.config.Lockout.MaxAttempts,
		LockoutDuration:    e.config.Lockout.Duration,
		AuditActive:        e.config.Audit.Enabled,
		MetricsActive:      e.config.Metrics.Enabled,
	}
}
