package session

import "time"

// Session maps an opaque bearer token to a user. Sessions are created at
// login and read-only afterwards; expiry is checked on every lookup, expired
// rows are never removed in-band.
type Session struct {
	ID        string    `db:"id" json:"id"`
	Token     string    `db:"token" json:"-"`
	UserID    string    `db:"user_id" json:"userId"`
	ExpiresAt time.Time `db:"expires_at" json:"expiresAt"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`
	IPAddress *string   `db:"ip_address" json:"-"`
	UserAgent *string   `db:"user_agent" json:"-"`
}

func (s *Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.After(now)
}
