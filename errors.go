package tickauth

import "errors"

var (
	// ErrEngineNotReady is returned when an Engine method is called on an
	// engine that was not produced by [Builder.Build].
	ErrEngineNotReady = errors.New("engine not initialized")
	// ErrStoreUnavailable is returned when the credential, session, or
	// attempt backend cannot be reached.
	ErrStoreUnavailable = errors.New("storage backend unavailable")
	// ErrNoActiveSession is returned by operations that require an
	// authenticated session when none is active.
	ErrNoActiveSession = errors.New("no active session")
)
