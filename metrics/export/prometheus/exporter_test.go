package prometheus

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	tickauth "github.com/tickhub/tickauth"
)

type fakeSource struct {
	snapshot tickauth.MetricsSnapshot
	dropped  uint64
}

func (f fakeSource) MetricsSnapshot() tickauth.MetricsSnapshot { return f.snapshot }
func (f fakeSource) AuditDropped() uint64                      { return f.dropped }

func TestRenderEmptyWhenMetricsDisabled(t *testing.T) {
	exp := NewPrometheusExporterFromSource(fakeSource{
		snapshot: tickauth.MetricsSnapshot{
			Counters: map[tickauth.MetricID]uint64{},
		},
	})

	if got := exp.Render(); got != "" {
		t.Fatalf("expected empty output for disabled metrics, got:\n%s", got)
	}
}

func TestRenderIncludesCounters(t *testing.T) {
	exp := NewPrometheusExporterFromSource(fakeSource{
		snapshot: tickauth.MetricsSnapshot{
			Counters: map[tickauth.MetricID]uint64{
				tickauth.MetricLoginSuccess:   7,
				tickauth.MetricLockoutTripped: 2,
			},
		},
		dropped: 3,
	})

	out := exp.Render()
	if !strings.Contains(out, "tickauth_login_success_total 7") {
		t.Fatalf("missing login success counter:\n%s", out)
	}
	if !strings.Contains(out, "tickauth_lockout_tripped_total 2") {
		t.Fatalf("missing lockout counter:\n%s", out)
	}
	if !strings.Contains(out, "tickauth_audit_dropped_total 3") {
		t.Fatalf("missing audit dropped counter:\n%s", out)
	}
	if !strings.Contains(out, "# TYPE tickauth_login_success_total counter") {
		t.Fatalf("missing TYPE line:\n%s", out)
	}
	// Untouched counters still render, at zero.
	if !strings.Contains(out, "tickauth_order_attached_total 0") {
		t.Fatalf("missing zero-valued counter:\n%s", out)
	}
}

func TestHandlerServesTextExposition(t *testing.T) {
	exp := NewPrometheusExporterFromSource(fakeSource{
		snapshot: tickauth.MetricsSnapshot{
			Counters: map[tickauth.MetricID]uint64{
				tickauth.MetricRegisterSuccess: 1,
			},
		},
	})

	server := httptest.NewServer(exp.Handler())
	defer server.Close()

	resp, err := server.Client().Get(server.URL)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if ct := resp.Header.Get("Content-Type"); !strings.HasPrefix(ct, "text/plain") {
		t.Fatalf("content type = %q", ct)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if !strings.Contains(string(body), "tickauth_register_success_total 1") {
		t.Fatalf("unexpected body:\n%s", body)
	}
}

func TestNilExporterRendersEmpty(t *testing.T) {
	var exp *PrometheusExporter
	if got := exp.Render(); got != "" {
		t.Fatalf("nil exporter rendered %q", got)
	}
}
