package tickauth

import (
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func TestDefaultConfigIsValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestDefaultConfigValues(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Session.Lifetime != 24*time.Hour {
		t.Errorf("session lifetime = %v, want 24h", cfg.Session.Lifetime)
	}
	if cfg.Lockout.MaxAttempts != 5 {
		t.Errorf("max attempts = %d, want 5", cfg.Lockout.MaxAttempts)
	}
	if cfg.Lockout.Duration != 15*time.Minute {
		t.Errorf("lockout duration = %v, want 15m", cfg.Lockout.Duration)
	}
	if cfg.Password.MinLength != 8 {
		t.Errorf("min length = %d, want 8", cfg.Password.MinLength)
	}
	if cfg.Password.Scheme != "sha256" {
		t.Errorf("scheme = %q, want sha256", cfg.Password.Scheme)
	}
}

func TestConfigValidateRejections(t *testing.T) {
	mutations := map[string]func(*Config){
		"empty prefix":     func(c *Config) { c.KeyPrefix = "" },
		"unknown scheme":   func(c *Config) { c.Password.Scheme = "md5" },
		"zero min length":  func(c *Config) { c.Password.MinLength = 0 },
		"zero lifetime":    func(c *Config) { c.Session.Lifetime = 0 },
		"zero attempts":    func(c *Config) { c.Lockout.MaxAttempts = 0 },
		"zero lockout":     func(c *Config) { c.Lockout.Duration = 0 },
		"bad audit buffer": func(c *Config) { c.Audit.Enabled = true; c.Audit.BufferSize = 0 },
	}

	for name, mutate := range mutations {
		cfg := DefaultConfig()
		mutate(&cfg)
		if err := cfg.Validate(); err == nil {
			t.Errorf("%s: expected validation error", name)
		}
	}
}

func TestBuilderRequiresRedis(t *testing.T) {
	if _, err := New().Build(); err == nil {
		t.Fatal("expected error without redis client")
	}
}

func TestBuilderSingleUse(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("miniredis run failed: %v", err)
	}
	defer mr.Close()
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer rdb.Close()

	b := New().WithRedis(rdb)
	engine, err := b.Build()
	if err != nil {
		t.Fatalf("first build failed: %v", err)
	}
	defer engine.Close()

	if _, err := b.Build(); err == nil {
		t.Fatal("expected error from reused builder")
	}
}

func TestBuilderRejectsInvalidConfig(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("miniredis run failed: %v", err)
	}
	defer mr.Close()
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer rdb.Close()

	cfg := DefaultConfig()
	cfg.Lockout.MaxAttempts = 0

	if _, err := New().WithConfig(cfg).WithRedis(rdb).Build(); err == nil {
		t.Fatal("expected build to reject invalid config")
	}
}

func TestSecurityReport(t *testing.T) {
	engine, _, done := newTestEngine(t)
	defer done()

	report := engine.SecurityReport()
	if report.PasswordScheme != "sha256" {
		t.Errorf("scheme = %q, want sha256", report.PasswordScheme)
	}
	if report.SessionLifetime != 24*time.Hour {
		t.Errorf("lifetime = %v, want 24h", report.SessionLifetime)
	}
	if report.LockoutMaxAttempts != 5 || report.LockoutDuration != 15*time.Minute {
		t.Errorf("lockout report mismatch: %+v", report)
	}
	if !report.MetricsActive {
		t.Error("metrics should be active by default")
	}
	if report.AuditActive {
		t.Error("audit should be inactive by default")
	}

	var nilEngine *Engine
	if got := nilEngine.SecurityReport(); got != (SecurityReport{}) {
		t.Errorf("nil engine report = %+v, want zero", got)
	}
}

func TestWithConfigCopies(t *testing.T) {
	cfg := DefaultConfig()
	b := New().WithConfig(cfg)

	cfg.Lockout.MaxAttempts = 99
	if b.config.Lockout.MaxAttempts == 99 {
		t.Fatal("builder shares the caller's config value")
	}
}
