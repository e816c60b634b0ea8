// Package users exposes read-only profile information for the
// authenticated account. Accounts are immutable after registration, so
// there is no update surface.
package users

import "time"

// ProfileResponse represents the data returned for the current account.
type ProfileResponse struct {
	// The id of the user
	// example: 1
	ID int `json:"id"`
	// The username of the user
	// example: "alice"
	Username string `json:"username"`
	// The time the account was created
	// example: "2026-01-15T10:30:00Z"
	CreatedAt time.Time `json:"created_at"`
}
