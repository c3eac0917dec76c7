package auth

import (
	"context"
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"
)

const (
	sessionCookie = "ai_readiness_session"
	stateCookie   = "oauth_state"
)

type contextKey string

const userIDKey contextKey = "user_id"

// SessionManager issues and verifies HMAC-signed session cookies of the
// form userID.expiresUnix.signature.
type SessionManager struct {
	secret []byte
	ttl    time.Duration
}

func NewSessionManager(secret string, ttl time.Duration) *SessionManager {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &SessionManager{secret: []byte(secret), ttl: ttl}
}

func (m *SessionManager) sign(payload string) string {
	mac := hmac.New(sha256.New, m.secret)
	mac.Write([]byte(payload))
	return hex.EncodeToString(mac.Sum(nil))
}

// Issue sets the session cookie for a logged-in user.
func (m *SessionManager) Issue(w http.ResponseWriter, userID string) {
	expires := time.Now().Add(m.ttl)
	payload := fmt.Sprintf("%s.%d", userID, expires.Unix())
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    payload + "." + m.sign(payload),
		Path:     "/",
		Expires:  expires,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// Clear expires the session cookie.
func (m *SessionManager) Clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// UserID verifies the session cookie and returns the logged-in user id.
func (m *SessionManager) UserID(r *http.Request) (string, bool) {
	c, err := r.Cookie(sessionCookie)
	if err != nil {
		return "", false
	}
	parts := strings.Split(c.Value, ".")
	if len(parts) != 3 {
		return "", false
	}
	payload := parts[0] + "." + parts[1]
	// constant-time compare so signatures cannot be probed
	if !hmac.Equal([]byte(m.sign(payload)), []byte(parts[2])) {
		return "", false
	}
	expires, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil || time.Now().Unix() > expires {
		return "", false
	}
	return parts[0], true
}

// Require rejects requests without a valid session and stores the user id
// in the request context.
func (m *SessionManager) Require(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, ok := m.UserID(r)
		if !ok {
			http.Error(w, "not authenticated", http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), userIDKey, userID)))
	})
}

// UserIDFromContext returns the session user id set by Require.
func UserIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(userIDKey).(string); ok {
		return id
	}
	return ""
}

// NewState generates a random CSRF state and stores it in a short-lived
// cookie for the callback to verify.
func NewState(w http.ResponseWriter) (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	state := hex.EncodeToString(buf)
	http.SetCookie(w, &http.Cookie{
		Name:     stateCookie,
		Value:    state,
		Path:     "/",
		MaxAge:   300,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return state, nil
}

// VerifyState checks the callback state against the stored cookie.
func VerifyState(r *http.Request, state string) bool {
	c, err := r.Cookie(stateCookie)
	if err != nil || state == "" {
		return false
	}
	return hmac.Equal([]byte(c.Value), []byte(state))
}
