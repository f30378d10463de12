package tickauth

import (
	"context"
	"errors"
	"fmt"

	"github.com/tickhub/tickauth/session"
)

// CurrentUser returns the active session, or nil when no session exists.
// Expiry is enforced lazily here: a session found past its deadline is
// destroyed and reported as absent.
func (e *Engine) CurrentUser(ctx context.Context) (*Session, error) {
	if !e.ready() {
		return nil, ErrEngineNotReady
	}

	sess, err := e.sessions.Current(ctx)
	if err != nil {
		if errors.Is(err, session.ErrExpired) {
			e.metricInc(MetricSessionExpired)
			e.emitAudit(ctx, AuditSessionExpiry, "", "", false, "session expired", nil)
			return nil, nil
		}
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return sess, nil
}

// IsLoggedIn reports whether a live session exists. Shares CurrentUser's
// lazy expiry side effect.
func (e *Engine) IsLoggedIn(ctx context.Context) (bool, error) {
	sess, err := e.CurrentUser(ctx)
	if err != nil {
		return false, err
	}
	return sess != nil, nil
}

// Logout destroys the active session. Logging out with no session is a
// no-op, not an error.
func (e *Engine) Logout(ctx context.Context) error {
	if !e.ready() {
		return ErrEngineNotReady
	}

	if err := e.sessions.Destroy(ctx); err != nil {
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	e.metricInc(MetricLogout)
	e.emitAudit(ctx, AuditLogout, "", "", true, "", nil)
	return nil
}
