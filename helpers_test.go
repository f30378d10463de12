package tickauth

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"github.com/tickhub/tickauth/password"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Unix(1_700_000_000, 0)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// countingHasher wraps the production hasher and counts Verify calls, so
// tests can assert that unknown-email and wrong-password attempts cost the
// same verification work.
type countingHasher struct {
	inner   password.Hasher
	verifys atomic.Int64
}

func (h *countingHasher) Hash(pw string) (string, error) {
	return h.inner.Hash(pw)
}

func (h *countingHasher) Verify(pw, stored string) bool {
	h.verifys.Add(1)
	return h.inner.Verify(pw, stored)
}

func (h *countingHasher) Dummy() string {
	return h.inner.Dummy()
}

// recordingHasher wraps the production hasher and captures every stored
// credential passed to Verify.
type recordingHasher struct {
	inner password.Hasher

	mu       sync.Mutex
	verified []string
}

func (h *recordingHasher) Hash(pw string) (string, error) {
	return h.inner.Hash(pw)
}

func (h *recordingHasher) Verify(pw, stored string) bool {
	h.mu.Lock()
	h.verified = append(h.verified, stored)
	h.mu.Unlock()
	return h.inner.Verify(pw, stored)
}

func (h *recordingHasher) Dummy() string {
	return h.inner.Dummy()
}

func (h *recordingHasher) lastVerified(t *testing.T) string {
	t.Helper()
	h.mu.Lock()
	defer h.mu.Unlock()
	if len(h.verified) == 0 {
		t.Fatal("no Verify calls recorded")
	}
	return h.verified[len(h.verified)-1]
}

type engineOption func(*Builder)

func withClock(clock *fakeClock) engineOption {
	return func(b *Builder) { b.WithClock(clock.Now) }
}

func withHasher(h password.Hasher) engineOption {
	return func(b *Builder) { b.WithHasher(h) }
}

func withConfig(cfg Config) engineOption {
	return func(b *Builder) { b.WithConfig(cfg) }
}

func withAuditSink(sink AuditSink) engineOption {
	return func(b *Builder) { b.WithAuditSink(sink) }
}

// newTestEngine builds an engine over miniredis with a fake clock. The
// returned cleanup stops everything.
func newTestEngine(t *testing.T, opts ...engineOption) (*Engine, *fakeClock, func()) {
	t.Helper()

	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("miniredis run failed: %v", err)
	}

	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	clock := newFakeClock()

	builder := New().WithRedis(rdb).WithClock(clock.Now)
	for _, opt := range opts {
		opt(builder)
	}

	engine, err := builder.Build()
	if err != nil {
		mr.Close()
		t.Fatalf("build failed: %v", err)
	}

	return engine, clock, func() {
		engine.Close()
		_ = rdb.Close()
		mr.Close()
	}
}

func validRegistration() RegisterInput {
	return RegisterInput{
		FirstName:       "Alice",
		LastName:        "Reed",
		Email:           "alice@example.com",
		Password:        "Abc12345!",
		ConfirmPassword: "Abc12345!",
	}
}

func mustRegister(t *testing.T, engine *Engine, input RegisterInput) {
	t.Helper()
	result, err := engine.Register(context.Background(), input)
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if !result.Success {
		t.Fatalf("register rejected: %s", result.Message)
	}
}

func mustLogin(t *testing.T, engine *Engine, email, pw string) *Session {
	t.Helper()
	result, err := engine.Login(context.Background(), LoginInput{Email: email, Password: pw})
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if !result.Success {
		t.Fatalf("login rejected: %s", result.Message)
	}
	return result.Session
}
