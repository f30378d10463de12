// Package tickauth provides the authentication and session engine for a
// ticket-purchase storefront: salted password hashing, login rate limiting
// with account lockout, Redis-backed credential and session storage, and
// order-history bookkeeping for authenticated accounts.
//
// The package is designed to be embedded by a presentation layer: Engine
// methods are safe to call from multiple goroutines after initialization
// through [Builder.Build], with one documented exception — read-modify-write
// cycles for the same email (registration, failed-login counting) are not
// atomic, so callers must not drive registration or login for one email from
// multiple execution contexts concurrently.
//
// # Architecture boundaries
//
// tickauth is the public surface. It exposes [Engine], [Builder], [Config],
// and value types (Account, Order, LoginResult, etc.). The leaf concerns —
// password hashing, input validation, session storage — live in the
// password, validate, and session subpackages; store plumbing, lockout
// accounting, audit dispatch, and metric storage live under internal/ and
// are never exported.
//
// # What this package must NOT do
//
//   - Expose Redis clients, internal stores, or encoding details in its
//     public API.
//   - Surface recoverable authentication failures as Go errors; they are
//     returned as structured results (see [RegisterResult], [LoginResult]).
//     Only backend unavailability and engine misuse produce errors.
//   - Render anything. Lockout wait times, strength tiers, and order history
//     are returned as plain values for the caller's UI to present.
package tickauth
