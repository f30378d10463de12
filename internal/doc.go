// Package internal holds shared helpers that must not leak into the public
// API: CSPRNG identifier generation and the fixed identifier lengths used by
// accounts, orders, and session tokens.
package internal
