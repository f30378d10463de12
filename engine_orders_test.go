package tickauth

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func demoItems() []OrderItem {
	return []OrderItem{
		{EventTitle: "Jazz Night", TicketTypeName: "GA", UnitPrice: decimal.NewFromFloat(45.00), Quantity: 2},
		{EventTitle: "Jazz Night", TicketTypeName: "VIP", UnitPrice: decimal.NewFromFloat(79.50), Quantity: 1},
	}
}

func TestAttachOrder_NoSessionIsNoOp(t *testing.T) {
	engine, _, done := newTestEngine(t)
	defer done()

	id, err := engine.AttachOrder(context.Background(), demoItems())
	if err != nil {
		t.Fatalf("attach order failed: %v", err)
	}
	if id != "" {
		t.Fatalf("guest checkout produced order id %q", id)
	}

	snap := engine.MetricsSnapshot()
	if snap.Counters[MetricOrderAttached] != 0 {
		t.Fatal("guest checkout counted as attached order")
	}
}

func TestAttachOrder_RecordsOnAccount(t *testing.T) {
	engine, _, done := newTestEngine(t)
	defer done()

	mustRegister(t, engine, validRegistration())
	mustLogin(t, engine, "alice@example.com", "Abc12345!")

	ctx := context.Background()
	id, err := engine.AttachOrder(ctx, demoItems())
	if err != nil {
		t.Fatalf("attach order failed: %v", err)
	}
	if !regexp.MustCompile(`^[0-9A-F]{12}$`).MatchString(id) {
		t.Fatalf("order id %q not 12 uppercase hex chars", id)
	}

	orders, err := engine.OrderHistory(ctx)
	if err != nil {
		t.Fatalf("order history failed: %v", err)
	}
	if len(orders) != 1 {
		t.Fatalf("expected 1 order, got %d", len(orders))
	}

	order := orders[0]
	if order.ID != id {
		t.Fatalf("history order id %q, want %q", order.ID, id)
	}
	if want := decimal.NewFromFloat(169.50); !order.Total.Equal(want) {
		t.Fatalf("total = %s, want %s", order.Total, want)
	}
	if len(order.Items) != 2 {
		t.Fatalf("expected 2 line items, got %d", len(order.Items))
	}
}

func TestAttachOrder_MostRecentFirst(t *testing.T) {
	engine, clock, done := newTestEngine(t)
	defer done()

	mustRegister(t, engine, validRegistration())
	mustLogin(t, engine, "alice@example.com", "Abc12345!")

	ctx := context.Background()
	first, err := engine.AttachOrder(ctx, demoItems())
	if err != nil {
		t.Fatalf("attach order failed: %v", err)
	}

	clock.Advance(time.Hour)

	second, err := engine.AttachOrder(ctx, demoItems())
	if err != nil {
		t.Fatalf("attach order failed: %v", err)
	}

	orders, err := engine.OrderHistory(ctx)
	if err != nil {
		t.Fatalf("order history failed: %v", err)
	}
	if len(orders) != 2 {
		t.Fatalf("expected 2 orders, got %d", len(orders))
	}
	if orders[0].ID != second || orders[1].ID != first {
		t.Fatalf("orders not most-recent-first: %q then %q", orders[0].ID, orders[1].ID)
	}
	if orders[0].Date <= orders[1].Date {
		t.Fatalf("dates not descending: %d then %d", orders[0].Date, orders[1].Date)
	}
}

func TestAttachOrder_HistorySurvivesLogout(t *testing.T) {
	engine, _, done := newTestEngine(t)
	defer done()

	mustRegister(t, engine, validRegistration())
	mustLogin(t, engine, "alice@example.com", "Abc12345!")

	ctx := context.Background()
	if _, err := engine.AttachOrder(ctx, demoItems()); err != nil {
		t.Fatalf("attach order failed: %v", err)
	}
	if err := engine.Logout(ctx); err != nil {
		t.Fatalf("logout failed: %v", err)
	}

	mustLogin(t, engine, "alice@example.com", "Abc12345!")

	orders, err := engine.OrderHistory(ctx)
	if err != nil {
		t.Fatalf("order history failed: %v", err)
	}
	if len(orders) != 1 {
		t.Fatalf("expected the order to persist, got %d orders", len(orders))
	}
}

func TestOrderHistory_RequiresSession(t *testing.T) {
	engine, _, done := newTestEngine(t)
	defer done()

	_, err := engine.OrderHistory(context.Background())
	if !errors.Is(err, ErrNoActiveSession) {
		t.Fatalf("expected ErrNoActiveSession, got %v", err)
	}
}

func TestAttachOrder_ExpiredSessionActsAsGuest(t *testing.T) {
	engine, clock, done := newTestEngine(t)
	defer done()

	mustRegister(t, engine, validRegistration())
	mustLogin(t, engine, "alice@example.com", "Abc12345!")

	clock.Advance(25 * time.Hour)

	id, err := engine.AttachOrder(context.Background(), demoItems())
	if err != nil {
		t.Fatalf("attach order failed: %v", err)
	}
	if id != "" {
		t.Fatalf("expired session produced order id %q", id)
	}
}
