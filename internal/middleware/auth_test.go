package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/journalup/journal-up/internal/apperr"
	"github.com/journalup/journal-up/internal/utils"
)

const authTestSecret = "test-secret"

type stubValidator struct {
	valid  bool
	called bool
}

func (s *stubValidator) ValidateSession(ctx context.Context, token string) bool {
	s.called = true
	return s.valid
}

func doRequest(t *testing.T, sessions SessionValidator, path, bearer, session string) (error, echo.Context) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	if session != "" {
		req.Header.Set("X-Session-Token", session)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	next := func(c echo.Context) error { return c.NoContent(http.StatusOK) }
	return Auth(authTestSecret, sessions)(next)(c), c
}

func TestAuthAllowsPublicPaths(t *testing.T) {
	sessions := &stubValidator{valid: false}
	for _, path := range []string{"/auth/login", "/auth/signup", "/healthz", "/metricsz"} {
		err, _ := doRequest(t, sessions, path, "", "")
		assert.NoError(t, err, path)
	}
	assert.False(t, sessions.called)
}

func TestAuthRejectsMissingCredentials(t *testing.T) {
	signed, err := utils.IssueToken(authTestSecret, "u1", "a@b.com", 7)
	require.NoError(t, err)

	cases := []struct {
		name    string
		bearer  string
		session string
	}{
		{"no headers", "", ""},
		{"bearer only", signed.Token, ""},
		{"session only", "", "sess"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			reqErr, _ := doRequest(t, &stubValidator{valid: true}, "/journals", tc.bearer, tc.session)
			e := apperr.From(reqErr)
			require.NotNil(t, e)
			assert.Equal(t, http.StatusUnauthorized, e.Status)
		})
	}
}

func TestAuthRejectsDeadSessionBeforeTokenCheck(t *testing.T) {
	// token is garbage on purpose; with a dead session the request must
	// fail on the session check, never reaching signature verification
	sessions := &stubValidator{valid: false}
	reqErr, _ := doRequest(t, sessions, "/journals", "garbage-token", "sess")
	e := apperr.From(reqErr)
	require.NotNil(t, e)
	assert.Equal(t, http.StatusUnauthorized, e.Status)
	assert.Contains(t, e.Message, "session")
	assert.True(t, sessions.called)
}

func TestAuthRejectsInvalidToken(t *testing.T) {
	reqErr, _ := doRequest(t, &stubValidator{valid: true}, "/journals", "garbage-token", "sess")
	e := apperr.From(reqErr)
	require.NotNil(t, e)
	assert.Equal(t, http.StatusUnauthorized, e.Status)
	assert.Equal(t, "invalid token", e.Message)
}

func TestAuthSetsIdentity(t *testing.T) {
	signed, err := utils.IssueToken(authTestSecret, "u1", "a@b.com", 7)
	require.NoError(t, err)

	reqErr, c := doRequest(t, &stubValidator{valid: true}, "/journals", signed.Token, "sess")
	require.NoError(t, reqErr)
	assert.Equal(t, "u1", UserID(c))
	assert.Equal(t, "a@b.com", c.Get("email"))
}
