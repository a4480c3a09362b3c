// Package models holds the server's persistent records.
package models

import "time"

// User is a registered account. Interests records, per supported sport,
// whether the user said they play it.
type User struct {
	ID           string
	EmailAddress string
	FirstName    string
	LastName     string
	University   string
	PasswordHash []byte
	Interests    map[string]bool
	CreatedAt    time.Time
}
