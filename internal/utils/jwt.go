package utils // package utils provides helper functions for token creation and hashing

import (
	"errors" // sentinel error values for verification failures
	"time"   // time utilities for generating expirations

	"github.com/golang-jwt/jwt/v5" // JWT library for creating signed tokens
)

// ErrInvalidToken is returned by VerifyToken for any token that fails
// signature, expiry or payload checks. Callers never learn which check
// failed; the distinction has no security value for clients.
var ErrInvalidToken = errors.New("invalid token")

// SignedToken represents a signed JWT along with its expiry. The Token
// field contains the serialized JWT string; Exp stores the UTC expiration
// time. Signed tokens are sent in the Authorization header and prove
// identity claims without a server-side lookup; revocation is handled by
// the session token tracked separately in the database.
type SignedToken struct {
	Token string    // the serialized JWT string
	Exp   time.Time // the UTC expiration time
}

// TokenClaims are the identity claims carried by a verified token.
type TokenClaims struct {
	UserID string // subject (sub) claim
	Email  string // email claim
}

// IssueToken builds and signs an HS256 JWT for a user. The JWT encodes
// the user id as the subject and the email as a custom claim, with the
// standard exp/iat timestamps. ttlDays controls the token lifetime.
// Deterministic given secret and clock; no side effects.
func IssueToken(secret, userID, email string, ttlDays int) (SignedToken, error) {
	now := time.Now().UTC()
	exp := now.Add(time.Duration(ttlDays) * 24 * time.Hour)
	claims := jwt.MapClaims{
		"sub":   userID,
		"email": email,
		"exp":   exp.Unix(),
		"iat":   now.Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString([]byte(secret))
	if err != nil {
		return SignedToken{}, err
	}
	return SignedToken{Token: signed, Exp: exp}, nil
}

// VerifyToken parses and validates a signed token. It returns
// ErrInvalidToken when the signature does not verify, the token has
// expired, or the payload is missing a non-empty subject or email.
// Side-effect-free.
func VerifyToken(secret, raw string) (TokenClaims, error) {
	tok, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		// Reject any token not signed with HMAC; accepting a different
		// method here would let clients pick their own verification key.
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(secret), nil
	})
	if err != nil || !tok.Valid {
		return TokenClaims{}, ErrInvalidToken
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return TokenClaims{}, ErrInvalidToken
	}
	sub, _ := claims["sub"].(string)
	email, _ := claims["email"].(string)
	if sub == "" || email == "" {
		return TokenClaims{}, ErrInvalidToken
	}
	return TokenClaims{UserID: sub, Email: email}, nil
}
