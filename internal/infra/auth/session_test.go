package auth

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func issueRequest(t *testing.T, m *SessionManager, userID string) *http.Request {
	t.Helper()
	rec := httptest.NewRecorder()
	m.Issue(rec, userID)
	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)

	r := httptest.NewRequest(http.MethodGet, "/api/projects", nil)
	r.AddCookie(cookies[0])
	return r
}

func TestSessionRoundtrip(t *testing.T) {
	m := NewSessionManager("test-secret", time.Hour)
	r := issueRequest(t, m, "user-123")

	userID, ok := m.UserID(r)
	assert.True(t, ok)
	assert.Equal(t, "user-123", userID)
}

func TestSessionRejectsTamperedSignature(t *testing.T) {
	m := NewSessionManager("test-secret", time.Hour)
	r := issueRequest(t, m, "user-123")

	c, err := r.Cookie(sessionCookie)
	require.NoError(t, err)
	parts := strings.Split(c.Value, ".")
	require.Len(t, parts, 3)

	forged := httptest.NewRequest(http.MethodGet, "/api/projects", nil)
	forged.AddCookie(&http.Cookie{
		Name:  sessionCookie,
		Value: "user-456." + parts[1] + "." + parts[2],
	})
	_, ok := m.UserID(forged)
	assert.False(t, ok)
}

func TestSessionRejectsWrongSecret(t *testing.T) {
	issuer := NewSessionManager("secret-a", time.Hour)
	verifier := NewSessionManager("secret-b", time.Hour)

	r := issueRequest(t, issuer, "user-123")
	_, ok := verifier.UserID(r)
	assert.False(t, ok)
}

func TestSessionRejectsExpired(t *testing.T) {
	m := NewSessionManager("test-secret", -time.Minute)
	// negative ttl falls back to the default, so build an expired cookie by hand
	m.ttl = 24 * time.Hour
	payload := "user-123." + "1000000000" // year 2001
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.AddCookie(&http.Cookie{Name: sessionCookie, Value: payload + "." + m.sign(payload)})

	_, ok := m.UserID(r)
	assert.False(t, ok)
}

func TestSessionMissingCookie(t *testing.T) {
	m := NewSessionManager("test-secret", time.Hour)
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	_, ok := m.UserID(r)
	assert.False(t, ok)
}

func TestRequireMiddleware(t *testing.T) {
	m := NewSessionManager("test-secret", time.Hour)

	var seenUserID string
	h := m.Require(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seenUserID = UserIDFromContext(r.Context())
		w.WriteHeader(http.StatusNoContent)
	}))

	// no cookie: rejected before the handler runs
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/projects", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Empty(t, seenUserID)

	// valid session: user id lands in the request context
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, issueRequest(t, m, "user-123"))
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "user-123", seenUserID)
}

func TestOAuthState(t *testing.T) {
	rec := httptest.NewRecorder()
	state, err := NewState(rec)
	require.NoError(t, err)
	require.NotEmpty(t, state)

	r := httptest.NewRequest(http.MethodGet, "/auth/google/callback", nil)
	for _, c := range rec.Result().Cookies() {
		r.AddCookie(c)
	}
	assert.True(t, VerifyState(r, state))
	assert.False(t, VerifyState(r, "someone-elses-state"))
	assert.False(t, VerifyState(httptest.NewRequest(http.MethodGet, "/", nil), state))
}
