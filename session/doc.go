// Package session persists the single active storefront session.
//
// A session is a time-bounded projection of an account made at login: an
// opaque high-entropy token plus the identity fields the UI renders. At most
// one session is tracked at a time; saving a new one overwrites any prior
// session. Expiry is enforced lazily — every read checks the deadline and
// destroys an expired session as a side effect, so no zombie session can be
// observed. There is no renewal transition; after expiry the user logs in
// again.
package session
