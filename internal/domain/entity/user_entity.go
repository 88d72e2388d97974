package entity

import (
	"time"
)

// User is the aggregate root for the account domain
// Passwords are stored as bcrypt hashes in Password field
type User struct {
	ID        int64
	Username  string
	Email     string
	Password  string
	CreatedAt time.Time
}
