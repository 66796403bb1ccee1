package model

import "time"

// User represents a row in the `users` table. The password hash is never
// serialized; auth responses expose a trimmed view instead.
//
// Fields:
//  ID           – uuid primary key.
//  Email        – unique email address, stored lower-cased.
//  PasswordHash – bcrypt hash of the password.
//  CreatedAt    – timestamp of creation.
//  UpdatedAt    – timestamp of last update.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// Session models an entry in the `sessions` table. The token column holds
// the opaque session credential sent back to the client; it is distinct
// from the signed JWT and is what makes server-side revocation possible.
//
// Fields:
//  ID        – uuid primary key.
//  UserID    – owner of the session.
//  Token     – opaque unique token string (the X-Session-Token value).
//  ExpiresAt – expiration timestamp (creation + 7 days).
//  CreatedAt – timestamp of creation.
//  UpdatedAt – timestamp of last update.
type Session struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
