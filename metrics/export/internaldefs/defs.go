package internaldefs

import (
	tickauth "github.com/tickhub/tickauth"
)

// CounterDef maps an engine counter to its exported metric name.
//
// CounterDef instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type CounterDef struct {
	ID   tickauth.MetricID
	Name string
	Help string
}

// CounterDefs lists every engine counter in export order. Both exporters
// iterate this slice so the two surfaces always agree.
var CounterDefs = []CounterDef{
	{ID: tickauth.MetricRegisterSuccess, Name: "tickauth_register_success_total", Help: "Completed registrations."},
	{ID: tickauth.MetricRegisterRejected, Name: "tickauth_register_rejected_total", Help: "Registrations refused by validation."},
	{ID: tickauth.MetricRegisterDuplicate, Name: "tickauth_register_duplicate_total", Help: "Registrations refused for an existing email."},
	{ID: tickauth.MetricLoginSuccess, Name: "tickauth_login_success_total", Help: "Successful login attempts."},
	{ID: tickauth.MetricLoginFailure, Name: "tickauth_login_failure_total", Help: "Failed login attempts."},
	{ID: tickauth.MetricLoginLockout, Name: "tickauth_login_lockout_total", Help: "Login attempts refused by an active lockout window."},
	{ID: tickauth.MetricLockoutTripped, Name: "tickauth_lockout_tripped_total", Help: "Failures that started a lockout window."},
	{ID: tickauth.MetricSessionIssued, Name: "tickauth_session_issued_total", Help: "Sessions created at login."},
	{ID: tickauth.MetricSessionExpired, Name: "tickauth_session_expired_total", Help: "Sessions destroyed by lazy expiry."},
	{ID: tickauth.MetricLogout, Name: "tickauth_logout_total", Help: "Explicit logout operations."},
	{ID: tickauth.MetricOrderAttached, Name: "tickauth_order_attached_total", Help: "Orders appended to account history."},
}
