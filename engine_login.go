package tickauth

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/tickhub/tickauth/internal"
	"github.com/tickhub/tickauth/password"
	"github.com/tickhub/tickauth/validate"
)

// Login authenticates the submitted credentials and, on success, issues a
// fresh session that replaces any existing one.
//
// The lockout window is checked before any credential work. A failure for
// an unknown email and a failure for a wrong password return the same
// code and message and cost one hash verification each, so the response
// does not reveal whether the account exists. Every failure counts
// against the email's lockout budget, known account or not.
func (e *Engine) Login(ctx context.Context, input LoginInput) (LoginResult, error) {
	if !e.ready() {
		return LoginResult{}, ErrEngineNotReady
	}

	email := strings.ToLower(validate.Sanitize(input.Email))

	status, err := e.limiter.Check(ctx, email)
	if err != nil {
		return LoginResult{}, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	if !status.Allowed {
		e.metricInc(MetricLoginLockout)
		e.emitAudit(ctx, AuditLogin, "", email, false, "locked out", nil)
		mins := int((status.RetryAfter + time.Minute - 1) / time.Minute)
		return LoginResult{
			Success:    false,
			Code:       FailureLockedOut,
			Message:    fmt.Sprintf("Account locked. Try again in %d %s.", mins, pluralMinutes(mins)),
			RetryAfter: status.RetryAfter,
		}, nil
	}

	account, err := e.accounts.Get(ctx, email)
	if err != nil {
		return LoginResult{}, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	// Verification runs for unknown emails too, against the active
	// scheme's decoy credential, to keep the work per attempt uniform.
	stored := e.hasher.Dummy()
	if account != nil {
		stored = account.PasswordHash
	}
	match := e.hasher.Verify(input.Password, stored)

	if account == nil || !match {
		return e.recordLoginFailure(ctx, email)
	}

	if err := e.limiter.RecordSuccess(ctx, email); err != nil {
		return LoginResult{}, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	e.maybeUpgradeHash(ctx, account, input.Password)

	token, err := internal.NewSessionToken()
	if err != nil {
		return LoginResult{}, err
	}
	now := e.now()
	sess := &Session{
		Token:     token,
		UserID:    account.ID,
		Email:     account.Email,
		FirstName: account.FirstName,
		LastName:  account.LastName,
		CreatedAt: now.Unix(),
		ExpiresAt: now.Add(e.config.Session.Lifetime).Unix(),
	}
	if err := e.sessions.Save(ctx, sess); err != nil {
		return LoginResult{}, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	e.metricInc(MetricLoginSuccess)
	e.metricInc(MetricSessionIssued)
	e.emitAudit(ctx, AuditLogin, account.ID, email, true, "", nil)

	return LoginResult{
		Success: true,
		Code:    FailureNone,
		Session: sess,
	}, nil
}

func (e *Engine) recordLoginFailure(ctx context.Context, email string) (LoginResult, error) {
	result, err := e.limiter.RecordFailure(ctx, email)
	if err != nil {
		return LoginResult{}, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	e.metricInc(MetricLoginFailure)

	if result.Locked {
		e.metricInc(MetricLockoutTripped)
		e.emitAudit(ctx, AuditLockout, "", email, false, "lockout tripped", map[string]string{
			"attempts": fmt.Sprintf("%d", result.Count),
		})
		return LoginResult{
			Success: false,
			Code:    FailureLockedOut,
			Message: fmt.Sprintf("Too many failed attempts. Account locked for %d minutes.", int(e.config.Lockout.Duration/time.Minute)),
		}, nil
	}

	e.emitAudit(ctx, AuditLogin, "", email, false, "invalid credentials", nil)
	return LoginResult{
		Success:           false,
		Code:              FailureInvalidCredentials,
		Message:           fmt.Sprintf("Invalid email or password. %d %s remaining.", result.Remaining, pluralAttempts(result.Remaining)),
		RemainingAttempts: result.Remaining,
	}, nil
}

// maybeUpgradeHash rehashes a credential stored under an older scheme
// right after the plaintext has been verified. Failures are swallowed:
// the login already succeeded, and the old credential still works.
func (e *Engine) maybeUpgradeHash(ctx context.Context, account *Account, plaintext string) {
	if !e.config.Password.UpgradeOnLogin {
		return
	}
	upgrader, ok := e.hasher.(password.Upgrader)
	if !ok || !upgrader.NeedsUpgrade(account.PasswordHash) {
		return
	}
	hash, err := e.hasher.Hash(plaintext)
	if err != nil {
		return
	}
	account.PasswordHash = hash
	_ = e.accounts.Put(ctx, account)
}

func pluralMinutes(n int) string {
	if n == 1 {
		return "minute"
	}
	return "minutes"
}

func pluralAttempts(n int) string {
	if n == 1 {
		return "attempt"
	}
	return "attempts"
}
