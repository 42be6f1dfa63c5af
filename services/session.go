package services

import "sync"

// The background notifier polls the backend outside any browser request, so
// it reuses the most recent operator token. The token is never persisted.
var (
	sessionMu    sync.RWMutex
	sessionToken string
)

// SetSessionToken stores the token of the last successful login
func SetSessionToken(token string) {
	sessionMu.Lock()
	sessionToken = token
	sessionMu.Unlock()
}

// GetSessionToken returns the stored token, or empty before any login
func GetSessionToken() string {
	sessionMu.RLock()
	defer sessionMu.RUnlock()
	return sessionToken
}
