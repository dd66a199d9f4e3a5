package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dromero87/superheroes-cli/internal/client/models"
	"github.com/dromero87/superheroes-cli/internal/logging"
)

// HTTPClient talks JSON over HTTP to the superheroes backend. A cookie jar
// carries the server-issued session cookie across requests; the client never
// reads or parses the cookie itself.
type HTTPClient struct {
	baseURL string
	http    *http.Client
	log     logging.Logger
}

// NewHTTPClient builds a client for the given base URL. The timeout bounds
// every request end to end.
func NewHTTPClient(baseURL string, timeout time.Duration, log logging.Logger) (*HTTPClient, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("creating cookie jar: %w", err)
	}
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Jar: jar, Timeout: timeout},
		log:     log.With("component", "api"),
	}, nil
}

// do issues a single credentialed request and returns the response body for
// 2xx statuses. Non-2xx statuses and transport failures are mapped to the
// package sentinel errors; full detail goes to the diagnostic log.
func (c *HTTPClient) do(ctx context.Context, method, path string, body any) ([]byte, error) {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encoding %s body: %w", path, err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("building %s request: %w", path, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	reqID := uuid.NewString()
	req.Header.Set("X-Request-Id", reqID)

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Error(ctx, "request failed", "request_id", reqID, "method", method, "path", path, "error", err)
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		c.log.Error(ctx, "reading response failed", "request_id", reqID, "method", method, "path", path, "error", err)
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	c.log.Debug(ctx, "request", "request_id", reqID, "method", method, "path", path, "status", resp.StatusCode)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, c.statusError(ctx, reqID, path, resp.StatusCode)
	}
	return data, nil
}

func (c *HTTPClient) statusError(ctx context.Context, reqID, path string, status int) error {
	switch status {
	case http.StatusUnauthorized, http.StatusForbidden:
		c.log.Warn(ctx, "request rejected", "request_id", reqID, "path", path, "status", status)
		return ErrUnauthorized
	default:
		c.log.Error(ctx, "unexpected status", "request_id", reqID, "path", path, "status", status)
		return fmt.Errorf("%w: status %d on %s", ErrServer, status, path)
	}
}

// Register creates an account. A successful registration establishes no
// session; the user still has to log in.
func (c *HTTPClient) Register(ctx context.Context, form models.RegistrationForm) error {
	_, err := c.do(ctx, http.MethodPost, "/api/register", form)
	return err
}

// Login authenticates the user. On 2xx the server sets the session cookie,
// which the jar keeps for subsequent requests.
func (c *HTTPClient) Login(ctx context.Context, creds models.Credentials) error {
	_, err := c.do(ctx, http.MethodPost, "/api/login", creds)
	return err
}

// Logout invalidates the server-side session. The cookie jar is left alone;
// the server response governs whether local state may be cleared.
func (c *HTTPClient) Logout(ctx context.Context) error {
	_, err := c.do(ctx, http.MethodPost, "/api/logout", nil)
	return err
}

// Profile returns the account behind the current session.
func (c *HTTPClient) Profile(ctx context.Context) (models.Profile, error) {
	data, err := c.do(ctx, http.MethodGet, "/api/profile", nil)
	if err != nil {
		return models.Profile{}, err
	}
	var p models.Profile
	if err := json.Unmarshal(data, &p); err != nil {
		c.log.Error(ctx, "decoding profile failed", "error", err)
		return models.Profile{}, fmt.Errorf("%w: decoding profile: %v", ErrUnavailable, err)
	}
	return p, nil
}

// Superheroes lists the protected gallery in server order. A 2xx response
// whose body is valid JSON but not a list yields an empty slice, not an
// error; a garbled body is a transport failure.
func (c *HTTPClient) Superheroes(ctx context.Context) ([]models.Superhero, error) {
	data, err := c.do(ctx, http.MethodGet, "/api/superheroes", nil)
	if err != nil {
		return nil, err
	}

	var heroes []models.Superhero
	if err := json.Unmarshal(data, &heroes); err != nil {
		if json.Valid(data) {
			c.log.Warn(ctx, "superheroes payload is not a list", "error", err)
			return []models.Superhero{}, nil
		}
		c.log.Error(ctx, "decoding superheroes failed", "error", err)
		return nil, fmt.Errorf("%w: decoding superheroes: %v", ErrUnavailable, err)
	}
	if heroes == nil {
		heroes = []models.Superhero{}
	}
	return heroes, nil
}

// Close releases idle connections held by the underlying transport.
func (c *HTTPClient) Close() error {
	c.http.CloseIdleConnections()
	return nil
}
