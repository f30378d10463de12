package tickauth

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/tickhub/tickauth/internal/audit"
	"github.com/tickhub/tickauth/internal/limiters"
	internalmetrics "github.com/tickhub/tickauth/internal/metrics"
	"github.com/tickhub/tickauth/internal/stores"
	"github.com/tickhub/tickauth/password"
	"github.com/tickhub/tickauth/session"
	"github.com/tickhub/tickauth/validate"
)

// Audit event type names emitted by the engine.
const (
	AuditRegister      = "register"
	AuditLogin         = "login"
	AuditLogout        = "logout"
	AuditLockout       = "lockout"
	AuditSessionExpiry = "session_expiry"
	AuditOrderAttached = "order_attached"
)

// Engine is the authentication and session core. All state lives in the
// injected Redis client; the Engine itself is immutable after Build and
// safe for concurrent use.
//
// Construct an Engine through [New] and [Builder.Build]; the zero value
// rejects every operation with [ErrEngineNotReady].
type Engine struct {
	config Config
	now    func() time.Time

	hasher password.Hasher
	policy validate.Policy

	accounts *stores.AccountStore
	sessions *session.Store
	limiter  *limiters.LockoutLimiter

	audit   *audit.Dispatcher
	metrics *internalmetrics.Metrics
}

// ready reports whether the engine was assembled by a Builder.
func (e *Engine) ready() bool {
	return e != nil && e.accounts != nil && e.sessions != nil && e.limiter != nil
}

// Close flushes and stops the audit dispatcher. The engine must not be
// used after Close.
func (e *Engine) Close() {
	e.audit.Close()
}

// MetricsSnapshot returns a point-in-time copy of all counters. Returns a
// zero snapshot when metrics are disabled.
func (e *Engine) MetricsSnapshot() MetricsSnapshot {
	return e.metrics.Snapshot()
}

// AuditDropped reports how many audit events were discarded because the
// dispatcher buffer was full.
func (e *Engine) AuditDropped() uint64 {
	return e.audit.Dropped()
}

func (e *Engine) metricInc(id MetricID) {
	e.metrics.Inc(id)
}

// emitAudit builds and dispatches an audit event. Never blocks the caller
// when the dispatcher is configured to drop.
func (e *Engine) emitAudit(ctx context.Context, eventType, userID, email string, success bool, errMsg string, meta map[string]string) {
	e.audit.Emit(ctx, audit.Event{
		ID:        uuid.NewString(),
		Timestamp: e.now(),
		EventType: eventType,
		UserID:    userID,
		Email:     email,
		Success:   success,
		Error:     errMsg,
		Metadata:  meta,
	})
}
