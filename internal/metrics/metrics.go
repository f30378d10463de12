package metrics

import "sync/atomic"

// MetricID identifies one counter slot.
type MetricID int

const (
	// MetricRegisterSuccess counts completed registrations.
	MetricRegisterSuccess MetricID = iota
	// MetricRegisterRejected counts registrations refused by validation.
	MetricRegisterRejected
	// MetricRegisterDuplicate counts registrations refused for an existing email.
	MetricRegisterDuplicate
	// MetricLoginSuccess counts successful logins.
	MetricLoginSuccess
	// MetricLoginFailure counts credential failures.
	MetricLoginFailure
	// MetricLoginLockout counts attempts refused by an active lockout window.
	MetricLoginLockout
	// MetricLockoutTripped counts failures that started a lockout window.
	MetricLockoutTripped
	// MetricSessionIssued counts sessions created at login.
	MetricSessionIssued
	// MetricSessionExpired counts sessions destroyed by lazy expiry.
	MetricSessionExpired
	// MetricLogout counts explicit logouts.
	MetricLogout
	// MetricOrderAttached counts orders appended to account history.
	MetricOrderAttached

	// MetricIDCount is the number of defined metric IDs.
	MetricIDCount
)

// Config controls metric collection.
type Config struct {
	Enabled bool
}

// Snapshot is a point-in-time deep copy of all counters.
type Snapshot struct {
	Counters map[MetricID]uint64
}

// slot pads each counter to its own cache line to avoid false sharing
// between concurrently incremented counters.
type slot struct {
	value uint64
	_     [56]byte
}

// Metrics holds the counter slots. A nil or disabled Metrics is a no-op.
type Metrics struct {
	enabled bool
	slots   [MetricIDCount]slot
}

// New creates a Metrics instance. When cfg.Enabled is false all operations
// are no-ops.
func New(cfg Config) *Metrics {
	return &Metrics{enabled: cfg.Enabled}
}

// Inc atomically increments the counter for id.
func (m *Metrics) Inc(id MetricID) {
	if m == nil || !m.enabled || id < 0 || id >= MetricIDCount {
		return
	}
	atomic.AddUint64(&m.slots[id].value, 1)
}

// Get returns the current value of the counter for id.
func (m *Metrics) Get(id MetricID) uint64 {
	if m == nil || !m.enabled || id < 0 || id >= MetricIDCount {
		return 0
	}
	return atomic.LoadUint64(&m.slots[id].value)
}

// Snapshot copies every counter into a fresh map.
func (m *Metrics) Snapshot() Snapshot {
	snap := Snapshot{Counters: make(map[MetricID]uint64, MetricIDCount)}
	if m == nil || !m.enabled {
		return snap
	}
	for id := MetricID(0); id < MetricIDCount; id++ {
		snap.Counters[id] = atomic.LoadUint64(&m.slots[id].value)
	}
	return snap
}
