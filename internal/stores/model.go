package stores

import "github.com/shopspring/decimal"

// Account is the identity record. Email is the unique key, case-folded
// before storage. Accounts are created at registration, mutated only to
// prepend orders, and never deleted.
type Account struct {
	ID           string  `json:"id"`
	Email        string  `json:"email"`
	FirstName    string  `json:"first_name"`
	LastName     string  `json:"last_name"`
	PasswordHash string  `json:"password_hash"`
	CreatedAt    int64   `json:"created_at"`
	OrderHistory []Order `json:"order_history"`
}

// Order is a completed purchase owned by an Account. Immutable once
// created; order history is kept most-recent-first.
type Order struct {
	ID    string          `json:"id"`
	Date  int64           `json:"date"`
	Items []OrderItem     `json:"items"`
	Total decimal.Decimal `json:"total"`
}

// OrderItem is a line-item snapshot taken at checkout.
type OrderItem struct {
	EventTitle     string          `json:"event_title"`
	TicketTypeName string          `json:"ticket_type_name"`
	UnitPrice      decimal.Decimal `json:"unit_price"`
	Quantity       int             `json:"quantity"`
}

// Subtotal returns unit price times quantity.
func (i OrderItem) Subtotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}
