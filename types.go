package tickauth

import (
	"io"
	"time"

	internalaudit "github.com/tickhub/tickauth/internal/audit"
	internalmetrics "github.com/tickhub/tickauth/internal/metrics"
	"github.com/tickhub/tickauth/internal/stores"
	"github.com/tickhub/tickauth/session"
)

// Account is the stored identity record for a registered user.
type Account = stores.Account

// Order is a completed purchase attached to an account's history.
type Order = stores.Order

// OrderItem is a checkout line-item snapshot.
type OrderItem = stores.OrderItem

// Session is the time-bounded projection of an account issued at login.
type Session = session.Session

// RegisterInput carries the registration form fields. Free-text fields are
// sanitized by the engine before validation or storage.
type RegisterInput struct {
	FirstName       string
	LastName        string
	Email           string
	Password        string
	ConfirmPassword string
}

// LoginInput carries the login form fields.
type LoginInput struct {
	Email    string
	Password string
}

// FailureCode classifies recoverable failures returned in results. Every
// code is recoverable; none unwinds past the service boundary as an error.
type FailureCode int

const (
	// FailureNone marks a successful outcome.
	FailureNone FailureCode = iota
	// FailureValidation marks bad input shape or a policy violation.
	FailureValidation
	// FailureInvalidCredentials marks a wrong password or unknown account.
	// Deliberately indistinguishable between the two.
	FailureInvalidCredentials
	// FailureLockedOut marks an attempt refused by the lockout window.
	FailureLockedOut
	// FailureDuplicateAccount marks a registration conflict.
	FailureDuplicateAccount
)

// RegisterResult is the structured outcome of [Engine.Register].
type RegisterResult struct {
	Success bool
	Code    FailureCode
	Message string
}

// LoginResult is the structured outcome of [Engine.Login]. On success,
// Session carries the issued session. On lockout, RetryAfter carries the
// remaining wait as a plain duration (the message renders it in whole
// minutes). On a credential failure, RemainingAttempts reports how many
// tries are left before lockout.
type LoginResult struct {
	Success           bool
	Code              FailureCode
	Message           string
	Session           *Session
	RemainingAttempts int
	RetryAfter        time.Duration
}

// AuditEvent is a structured audit record emitted by the engine.
type AuditEvent = internalaudit.Event

// AuditSink receives [AuditEvent] values from the engine's audit
// dispatcher.
type AuditSink = internalaudit.Sink

// NoOpSink is an [AuditSink] that silently discards all events.
type NoOpSink = internalaudit.NoOpSink

// ChannelSink is a buffered channel-based [AuditSink].
type ChannelSink = internalaudit.ChannelSink

// JSONWriterSink is an [AuditSink] that writes JSON-encoded events to an
// [io.Writer].
type JSONWriterSink = internalaudit.JSONWriterSink

// NewChannelSink creates a [ChannelSink] with the given buffer capacity.
func NewChannelSink(buffer int) *ChannelSink {
	return internalaudit.NewChannelSink(buffer)
}

// NewJSONWriterSink creates a [JSONWriterSink] that writes to w.
func NewJSONWriterSink(w io.Writer) *JSONWriterSink {
	return internalaudit.NewJSONWriterSink(w)
}

// MetricID identifies a specific counter in the in-process metrics system.
type MetricID = internalmetrics.MetricID

const (
	// MetricRegisterSuccess counts completed registrations.
	MetricRegisterSuccess = internalmetrics.MetricRegisterSuccess
	// MetricRegisterRejected counts registrations refused by validation.
	MetricRegisterRejected = internalmetrics.MetricRegisterRejected
	// MetricRegisterDuplicate counts registrations refused for an existing email.
	MetricRegisterDuplicate = internalmetrics.MetricRegisterDuplicate
	// MetricLoginSuccess counts successful logins.
	MetricLoginSuccess = internalmetrics.MetricLoginSuccess
	// MetricLoginFailure counts credential failures.
	MetricLoginFailure = internalmetrics.MetricLoginFailure
	// MetricLoginLockout counts attempts refused by an active lockout window.
	MetricLoginLockout = internalmetrics.MetricLoginLockout
	// MetricLockoutTripped counts failures that started a lockout window.
	MetricLockoutTripped = internalmetrics.MetricLockoutTripped
	// MetricSessionIssued counts sessions created at login.
	MetricSessionIssued = internalmetrics.MetricSessionIssued
	// MetricSessionExpired counts sessions destroyed by lazy expiry.
	MetricSessionExpired = internalmetrics.MetricSessionExpired
	// MetricLogout counts explicit logouts.
	MetricLogout = internalmetrics.MetricLogout
	// MetricOrderAttached counts orders appended to account history.
	MetricOrderAttached = internalmetrics.MetricOrderAttached
)

// Metrics holds the engine's atomic counters.
type Metrics = internalmetrics.Metrics

// MetricsSnapshot is a point-in-time deep copy of all metrics.
type MetricsSnapshot = internalmetrics.Snapshot

// NewMetrics creates a new [Metrics] instance configured by the given
// [MetricsConfig]. When Enabled is false, all operations are no-ops.
func NewMetrics(cfg MetricsConfig) *Metrics {
	return internalmetrics.New(internalmetrics.Config{Enabled: cfg.Enabled})
}
