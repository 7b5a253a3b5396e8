// internal/admin/tokens.go
package admin

import (
	"crypto/rand"
	"encoding/base64"
	"net/http"
	"sync"
	"time"

	"safaribackend/internal/config"
	"safaribackend/internal/logger"
	"safaribackend/internal/middleware"
)

// The admin "session" is an opaque random token held in memory. This is a
// gate, not real authentication: tokens die with the process and there are
// no users or roles behind them.
var (
	sessions   = make(map[string]time.Time)
	sessionsMu sync.Mutex
)

// IssueToken creates a new admin session token.
func IssueToken() string {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		// Can't securely continue if randomness fails
		panic("Failed to generate admin token: " + err.Error())
	}
	token := base64.URLEncoding.EncodeToString(b)

	sessionsMu.Lock()
	sessions[token] = time.Now().Add(config.AdminSessionTTL)
	sessionsMu.Unlock()

	return token
}

// ValidateToken reports whether a token is known and unexpired. Unlike a
// CSRF token it is not consumed on use.
func ValidateToken(token string) bool {
	sessionsMu.Lock()
	defer sessionsMu.Unlock()

	expiry, ok := sessions[token]
	return ok && time.Now().Before(expiry)
}

// RevokeToken drops a session (logout).
func RevokeToken(token string) {
	sessionsMu.Lock()
	delete(sessions, token)
	sessionsMu.Unlock()
}

// CleanExpiredTokens periodically cleans up expired admin sessions.
func CleanExpiredTokens() {
	ticker := time.NewTicker(time.Minute * 5)
	defer ticker.Stop()

	for range ticker.C {
		sessionsMu.Lock()
		for token, expiry := range sessions {
			if time.Now().After(expiry) {
				delete(sessions, token)
			}
		}
		sessionsMu.Unlock()
		logger.LogInfo("Admin session cleanup completed")
	}
}

// RequireToken guards the admin endpoints. The token travels in the
// X-Admin-Token header.
func RequireToken(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := r.Header.Get("X-Admin-Token")
		if token == "" {
			middleware.WriteAPIError(w, r, http.StatusUnauthorized, "missing_token", "Admin token required", "")
			return
		}
		if !ValidateToken(token) {
			middleware.WriteAPIError(w, r, http.StatusUnauthorized, "invalid_token", "Admin token is invalid or expired", "")
			return
		}
		next.ServeHTTP(w, r)
	})
}
