// Package models holds the client-side representations of the API entities.
// The server owns the data; these structs only mirror what the endpoints
// return. documentId is the canonical identifier everywhere — the numeric id
// is a display-only secondary field.
package models

// UserSummary is the identity snapshot issued at login and cached alongside
// the session for display. It can go stale and is never used for
// authorization decisions; the token is.
type UserSummary struct {
	ID        int    `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	Confirmed bool   `json:"confirmed"`
	Blocked   bool   `json:"blocked"`
}

// Session is the in-memory view of the persisted authentication state.
// Owned exclusively by the session store; callers get a copy.
type Session struct {
	Token        string
	RefreshToken string
	User         *UserSummary
	RememberMe   bool
}
