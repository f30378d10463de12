package tickauth

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/tickhub/tickauth/internal"
)

// AttachOrder records a completed purchase on the logged-in account's
// history and returns the generated order ID. The order total is computed
// from the line items, not trusted from the caller.
//
// Without a live session AttachOrder is a silent no-op: checkout is
// allowed for guests, and guest purchases simply leave no history.
func (e *Engine) AttachOrder(ctx context.Context, items []OrderItem) (string, error) {
	if !e.ready() {
		return "", ErrEngineNotReady
	}

	sess, err := e.CurrentUser(ctx)
	if err != nil {
		return "", err
	}
	if sess == nil {
		return "", nil
	}

	account, err := e.accounts.Get(ctx, sess.Email)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	if account == nil {
		// Session references an account that no longer resolves.
		// Treat like the guest case rather than failing checkout.
		return "", nil
	}

	id, err := internal.NewOrderID()
	if err != nil {
		return "", err
	}

	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.Subtotal())
	}

	order := Order{
		ID:    id,
		Date:  e.now().Unix(),
		Items: items,
		Total: total,
	}

	// Most recent first.
	account.OrderHistory = append([]Order{order}, account.OrderHistory...)
	if err := e.accounts.Put(ctx, account); err != nil {
		return "", fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	e.metricInc(MetricOrderAttached)
	e.emitAudit(ctx, AuditOrderAttached, account.ID, account.Email, true, "", map[string]string{
		"order_id": id,
		"total":    total.StringFixed(2),
	})

	return id, nil
}

// OrderHistory returns the logged-in account's orders, most recent first.
// Requires a live session; returns [ErrNoActiveSession] without one.
func (e *Engine) OrderHistory(ctx context.Context) ([]Order, error) {
	if !e.ready() {
		return nil, ErrEngineNotReady
	}

	sess, err := e.CurrentUser(ctx)
	if err != nil {
		return nil, err
	}
	if sess == nil {
		return nil, ErrNoActiveSession
	}

	account, err := e.accounts.Get(ctx, sess.Email)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	if account == nil {
		return nil, ErrNoActiveSession
	}

	return account.OrderHistory, nil
}
