// Package limiters implements per-email failed-login accounting and lockout
// enforcement.
//
// Lockout is keyed by normalized email, not source address: this engine has
// no network boundary, so the identifier is the only stable key available.
// The limiter is consulted before account existence is known, which is what
// keeps lockout responses indistinguishable between registered and
// unregistered emails.
package limiters
