package session

import "time"

// Session is the persisted proof of a successful login.
type Session struct {
	Token     string `json:"token"`
	UserID    string `json:"user_id"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	CreatedAt int64  `json:"created_at"`
	ExpiresAt int64  `json:"expires_at"`
}

// Valid reports whether the session is live at now: valid iff now is
// strictly before the expiry deadline.
func (s *Session) Valid(now time.Time) bool {
	return s != nil && now.Unix() < s.ExpiresAt
}
