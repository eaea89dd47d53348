package domain

import "time"

// Session is the bearer credential handed to a client after registration or login.
type Session struct {
	Token     string
	ExpiresAt time.Time
}
