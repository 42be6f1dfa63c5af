// Package testutil provides shared helpers for integration and acceptance
// tests: a fake backend swap for the client singleton and authenticated
// request builders.
package testutil

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/moto-workshop/mws-dashboard-api/services"
)

// TestToken is the opaque bearer token used by test requests. It is not a
// JWT, so the expiry precheck passes it through untouched.
const TestToken = "test-operator-token"

// RequireTestEnvironment ensures that tests are running in the test environment.
// This prevents accidental execution of tests against a live workshop backend.
// It will fail the test immediately if GO_ENV is not set to "test".
func RequireTestEnvironment(t *testing.T) {
	t.Helper()

	env := os.Getenv("GO_ENV")
	if env != "test" {
		t.Fatalf("SAFETY CHECK FAILED: Tests must run with GO_ENV=test to avoid reaching a live backend. Current GO_ENV=%q. Set GO_ENV=test before running tests.", env)
	}
}

// RequireTestEnvironmentOrSkip is similar to RequireTestEnvironment but skips
// the test instead of failing it.
func RequireTestEnvironmentOrSkip(t *testing.T) {
	t.Helper()

	env := os.Getenv("GO_ENV")
	if env != "test" {
		t.Skipf("Skipping test: GO_ENV must be 'test' (current: %q)", env)
	}
}

// WithFakeBackend starts an httptest server for the given handler and points
// the backend client singleton at it. The previous client is restored when
// the test finishes.
func WithFakeBackend(t *testing.T, handler http.Handler) *httptest.Server {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	previous := services.GetBackendClient()
	services.SetBackendClient(&services.BackendClient{BaseURL: server.URL, HTTPClient: server.Client()})
	t.Cleanup(func() { services.SetBackendClient(previous) })

	return server
}

// AuthedRequest builds a JSON request carrying the test bearer token
func AuthedRequest(t *testing.T, method, path string, body interface{}) *http.Request {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("Failed to encode request body: %v", err)
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, path, reader)
	if err != nil {
		t.Fatalf("Failed to build request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+TestToken)
	return req
}

// DecodeData unwraps the {"success": true, "data": ...} response envelope
func DecodeData(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var response struct {
		Success bool                   `json:"success"`
		Data    map[string]interface{} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("Response is not valid JSON: %v", err)
	}
	if !response.Success {
		t.Fatalf("Expected a successful response, got: %s", w.Body.String())
	}
	return response.Data
}
