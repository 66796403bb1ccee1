// Package service holds the orchestration layer between HTTP handlers and
// repositories: the auth flows, the metrics analyzer and the journal
// operations. Services return typed apperr errors; handlers only translate
// them to responses.
package service

import (
	"context"
	"net/mail"
	"strings"
	"time"

	"github.com/journalup/journal-up/internal/apperr"
	"github.com/journalup/journal-up/internal/model"
	"github.com/journalup/journal-up/internal/repository"
	"github.com/journalup/journal-up/internal/utils"
)

// AuthService combines credential verification, session management and
// token issuance. The signed token proves identity without a lookup; the
// session row makes revocation immediate. A request needs both.
type AuthService struct {
	Users          *repository.UserRepo
	Sessions       *repository.SessionRepo
	JWTSecret      string
	TokenTTLDays   int
	BcryptCost     int
	PasswordMinLen int
}

// AuthResult is returned by signup and login: the signed bearer token, the
// opaque session token and the authenticated user.
type AuthResult struct {
	Token        string
	SessionToken string
	User         model.User
}

// Signup registers a new account. Duplicate emails surface as Conflict,
// malformed input as Validation. On success the user is immediately
// authenticated: a token is issued and a session created.
func (s *AuthService) Signup(ctx context.Context, email, password string) (AuthResult, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if _, err := mail.ParseAddress(email); err != nil {
		return AuthResult{}, apperr.Validation("invalid email address")
	}
	if len(password) < s.PasswordMinLen {
		return AuthResult{}, apperr.Validation("password is too short")
	}

	hash, err := utils.HashPassword(password, s.BcryptCost)
	if err != nil {
		return AuthResult{}, err
	}
	user, err := s.Users.Create(ctx, email, hash)
	if err != nil {
		return AuthResult{}, err
	}
	return s.establish(ctx, user, false)
}

// Login verifies credentials and rotates the user's session. An unknown
// email is NotFound; a wrong password is Authentication. Any sessions from
// earlier logins are replaced so at most one stays active.
func (s *AuthService) Login(ctx context.Context, email, password string) (AuthResult, error) {
	user, err := s.Users.GetByEmail(ctx, email)
	if err != nil {
		return AuthResult{}, err
	}
	if !utils.VerifyPassword(user.PasswordHash, password) {
		return AuthResult{}, apperr.Authentication("invalid credentials")
	}
	return s.establish(ctx, user, true)
}

// establish issues the signed token and creates (or replaces) the session.
func (s *AuthService) establish(ctx context.Context, user model.User, replace bool) (AuthResult, error) {
	signed, err := utils.IssueToken(s.JWTSecret, user.ID, user.Email, s.TokenTTLDays)
	if err != nil {
		return AuthResult{}, err
	}
	var session model.Session
	if replace {
		session, err = s.Sessions.Replace(ctx, user.ID)
	} else {
		session, err = s.Sessions.Create(ctx, user.ID)
	}
	if err != nil {
		return AuthResult{}, err
	}
	return AuthResult{Token: signed.Token, SessionToken: session.Token, User: user}, nil
}

// Logout deletes the session behind the token. Deleting an unknown or
// already-deleted token is a no-op, not an error.
func (s *AuthService) Logout(ctx context.Context, sessionToken string) error {
	return s.Sessions.DeleteByToken(ctx, sessionToken)
}

// ValidateSession reports whether the session exists and has not expired.
// Lookup failures of any kind are treated as false, never returned.
func (s *AuthService) ValidateSession(ctx context.Context, sessionToken string) bool {
	session, err := s.Sessions.FindByToken(ctx, sessionToken)
	if err != nil {
		return false
	}
	return time.Now().UTC().Before(session.ExpiresAt)
}
