package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/moto-workshop/mws-dashboard-api/config"
)

// HTTPError represents a rejected request: the backend answered with a
// non-2xx status. Message carries the server-supplied message when the body
// contains one, else a generic fallback.
type HTTPError struct {
	Status  int
	Message string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("backend returned %d: %s", e.Status, e.Message)
}

// NetworkError represents a request that could not complete at all
// (connection refused, DNS failure, cancelled context).
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("backend unreachable: %v", e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// IsNotFound reports whether err is an HTTPError with status 404. Callers
// render an empty state for it instead of an error notification.
func IsNotFound(err error) bool {
	var httpErr *HTTPError
	return errors.As(err, &httpErr) && httpErr.Status == http.StatusNotFound
}

// ListQuery is the query state driving a paged list fetch
type ListQuery struct {
	Query string
	Page  int
	Limit int
}

// BackendClient issues authenticated requests against the remote workshop
// API. It holds no credential itself; the bearer token travels as an explicit
// parameter on every call.
type BackendClient struct {
	BaseURL    string
	HTTPClient *http.Client
}

var backendClientInstance *BackendClient

// InitBackendClient initializes the backend client from configuration
func InitBackendClient(cfg *config.Config) *BackendClient {
	backendClientInstance = &BackendClient{
		BaseURL:    strings.TrimRight(cfg.BackendAPIURL, "/"),
		HTTPClient: http.DefaultClient,
	}
	return backendClientInstance
}

// GetBackendClient returns the initialized backend client instance
func GetBackendClient() *BackendClient {
	return backendClientInstance
}

// SetBackendClient sets the backend client instance (primarily for testing)
func SetBackendClient(c *BackendClient) {
	backendClientInstance = c
}

// genericErrorMessage is used when the backend error body has no message field
const genericErrorMessage = "La solicitud no pudo ser procesada"

// do issues one request and returns the raw response body. Non-2xx responses
// become HTTPError, transport failures become NetworkError.
func (c *BackendClient) do(ctx context.Context, token, method, path string, query url.Values, body interface{}) ([]byte, error) {
	endpoint := c.BaseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, &NetworkError{Err: err}
	}
	defer resp.Body.Close()

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(resp.Body); err != nil {
		return nil, &NetworkError{Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		// Error contract: the body is {"message": "..."} when the backend
		// has something to say, anything else falls back to a generic text.
		var serverErr struct {
			Message string `json:"message"`
		}
		message := genericErrorMessage
		if err := json.Unmarshal(buf.Bytes(), &serverErr); err == nil && serverErr.Message != "" {
			message = serverErr.Message
		}
		return nil, &HTTPError{Status: resp.StatusCode, Message: message}
	}

	return buf.Bytes(), nil
}

// decodeCollection unwraps a list response. List endpoints envelope their
// collection under a resource-specific key ({"clientes": [...]}); a bare
// array is accepted as well.
func decodeCollection[T any](body []byte, envelopeKey string) ([]T, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var items []T
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return nil, fmt.Errorf("failed to decode collection: %w", err)
		}
		return items, nil
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &envelope); err != nil {
		return nil, fmt.Errorf("failed to decode collection envelope: %w", err)
	}
	raw, ok := envelope[envelopeKey]
	if !ok {
		return nil, fmt.Errorf("collection envelope missing %q", envelopeKey)
	}
	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("failed to decode collection: %w", err)
	}
	return items, nil
}

// FetchList retrieves one filtered page of a resource collection
func FetchList[T any](ctx context.Context, c *BackendClient, token, resource, envelopeKey string, q ListQuery) ([]T, error) {
	query := url.Values{}
	if q.Query != "" {
		query.Set("query", q.Query)
	}
	query.Set("page", strconv.Itoa(q.Page))
	query.Set("limit", strconv.Itoa(q.Limit))

	body, err := c.do(ctx, token, http.MethodGet, "/"+resource, query, nil)
	if err != nil {
		return nil, err
	}
	return decodeCollection[T](body, envelopeKey)
}

// FetchAll retrieves the complete, unpaged resource collection
func FetchAll[T any](ctx context.Context, c *BackendClient, token, resource, envelopeKey string) ([]T, error) {
	body, err := c.do(ctx, token, http.MethodGet, "/"+resource+"/all", nil, nil)
	if err != nil {
		return nil, err
	}
	return decodeCollection[T](body, envelopeKey)
}

// FetchPages retrieves the total page count for a filter and page size.
// The count depends on {filter, limit} only, never on the current page.
func FetchPages(ctx context.Context, c *BackendClient, token, resource, filter string, limit int) (int, error) {
	query := url.Values{}
	if filter != "" {
		query.Set("query", filter)
	}
	query.Set("limit", strconv.Itoa(limit))

	body, err := c.do(ctx, token, http.MethodGet, "/"+resource+"/pages", query, nil)
	if err != nil {
		return 0, err
	}

	// Zero is a legitimate answer for a filter matching nothing, so the
	// envelope is detected by key presence, not by value.
	var envelope struct {
		TotalPages *int `json:"total_pages"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.TotalPages != nil {
		return *envelope.TotalPages, nil
	}
	// Some deployments answer with a bare number
	var pages int
	if err := json.Unmarshal(bytes.TrimSpace(body), &pages); err != nil {
		return 0, fmt.Errorf("failed to decode page count: %w", err)
	}
	return pages, nil
}

// FetchOne retrieves a single entity by identifier
func FetchOne[T any](ctx context.Context, c *BackendClient, token, resource string, id int) (T, error) {
	var entity T
	body, err := c.do(ctx, token, http.MethodGet, "/"+resource+"/"+strconv.Itoa(id), nil, nil)
	if err != nil {
		return entity, err
	}
	if err := json.Unmarshal(body, &entity); err != nil {
		return entity, fmt.Errorf("failed to decode entity: %w", err)
	}
	return entity, nil
}

// CreateEntity creates a new entity and returns the backend's copy of it
func CreateEntity[T any](ctx context.Context, c *BackendClient, token, resource string, payload interface{}) (T, error) {
	var entity T
	body, err := c.do(ctx, token, http.MethodPost, "/"+resource, nil, payload)
	if err != nil {
		return entity, err
	}
	if err := json.Unmarshal(body, &entity); err != nil {
		return entity, fmt.Errorf("failed to decode created entity: %w", err)
	}
	return entity, nil
}

// UpdateEntity replaces an entity by identifier and returns the updated copy.
// Updates are full-record replacements; there is no partial patch.
func UpdateEntity[T any](ctx context.Context, c *BackendClient, token, resource string, id int, payload interface{}) (T, error) {
	var entity T
	body, err := c.do(ctx, token, http.MethodPut, "/"+resource+"/"+strconv.Itoa(id), nil, payload)
	if err != nil {
		return entity, err
	}
	if err := json.Unmarshal(body, &entity); err != nil {
		return entity, fmt.Errorf("failed to decode updated entity: %w", err)
	}
	return entity, nil
}

// DeleteEntity deletes an entity by identifier
func DeleteEntity(ctx context.Context, c *BackendClient, token, resource string, id int) error {
	_, err := c.do(ctx, token, http.MethodDelete, "/"+resource+"/"+strconv.Itoa(id), nil, nil)
	return err
}

// PostRaw issues a POST to an arbitrary backend path and returns the raw
// response body. Used for endpoints outside the CRUD contract (login).
func PostRaw(ctx context.Context, c *BackendClient, token, path string, payload interface{}) ([]byte, error) {
	return c.do(ctx, token, http.MethodPost, path, nil, payload)
}
