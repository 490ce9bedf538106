package domain

import "time"

// User is a registered account. The username doubles as the namespace key
// for all persisted state; the core never interprets it.
type User struct {
	Username     string
	PasswordHash string
	CreatedAt    time.Time
}
