package authapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"authsession/internal/domain"
	"authsession/internal/util/memzero"
)

const (
	// DefaultBaseURL is the fixed authority the page talks to.
	DefaultBaseURL = "http://localhost:8080"
	// DefaultLoginPath is where credentials are posted.
	DefaultLoginPath = "/session"

	sessionPath = "/session"
	whoamiPath  = "/whoami"

	// RequestIDHeader is set on every outbound request.
	RequestIDHeader = "X-Request-ID"

	maxBodyBytes = 64 << 10
)

// HTTP talks to the authentication server over HTTP.
type HTTP struct {
	Base      string
	LoginPath string
	HTTP      *http.Client
	Log       *zap.Logger
}

// NewHTTP returns a client for base. A nil httpClient falls back to
// http.DefaultClient, which carries no cookie jar.
func NewHTTP(base string, httpClient *http.Client, log *zap.Logger) *HTTP {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &HTTP{
		Base:      strings.TrimRight(base, "/"),
		LoginPath: DefaultLoginPath,
		HTTP:      httpClient,
		Log:       log,
	}
}

// SessionInfo reads the identity bound to the current session cookie.
func (c *HTTP) SessionInfo(ctx context.Context) (domain.Username, error) {
	return c.identity(ctx, sessionPath)
}

// WhoAmI returns the identity reported by /whoami.
func (c *HTTP) WhoAmI(ctx context.Context) (domain.Username, error) {
	return c.identity(ctx, whoamiPath)
}

// Login posts creds as JSON. The encoded body is zeroed once the request has
// completed so the password does not linger in the buffer.
func (c *HTTP) Login(ctx context.Context, creds domain.Credentials) error {
	body, err := json.Marshal(creds)
	if err != nil {
		return err
	}
	defer memzero.Zero(body)

	path := c.LoginPath
	if path == "" {
		path = DefaultLoginPath
	}
	resp, err := c.do(ctx, http.MethodPost, path, bytes.NewReader(body))
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		return statusError(http.MethodPost, path, resp)
	}
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodyBytes))
	return nil
}

// Logout sends DELETE /session and reports the status code without judging it.
func (c *HTTP) Logout(ctx context.Context) (int, error) {
	resp, err := c.do(ctx, http.MethodDelete, sessionPath, nil)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodyBytes))
	return resp.StatusCode, nil
}

func (c *HTTP) identity(ctx context.Context, path string) (domain.Username, error) {
	resp, err := c.do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", statusError(http.MethodGet, path, resp)
	}
	b, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return "", fmt.Errorf("auth get %s: read body: %w", path, err)
	}
	return parseIdentity(resp.Header.Get("Content-Type"), b)
}

func (c *HTTP) do(ctx context.Context, method, path string, body io.Reader) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.Base+path, body)
	if err != nil {
		return nil, err
	}
	reqID := uuid.NewString()
	req.Header.Set(RequestIDHeader, reqID)
	req.Header.Set("Accept", "application/json, text/plain")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		c.Log.Debug("auth request failed",
			zap.String("method", method),
			zap.String("path", path),
			zap.String("request_id", reqID),
			zap.Error(err),
		)
		return nil, fmt.Errorf("auth %s %s: %w", strings.ToLower(method), path, err)
	}
	c.Log.Debug("auth request",
		zap.String("method", method),
		zap.String("path", path),
		zap.String("request_id", reqID),
		zap.Int("status", resp.StatusCode),
	)
	return resp, nil
}

// parseIdentity accepts either a JSON object with a username field or a
// plain-text body holding the username.
func parseIdentity(contentType string, b []byte) (domain.Username, error) {
	mt, _, _ := mime.ParseMediaType(contentType)
	if mt == "application/json" {
		var out struct {
			Username string `json:"username"`
		}
		if err := json.Unmarshal(b, &out); err != nil {
			return "", fmt.Errorf("decode identity: %w", err)
		}
		return domain.Username(out.Username), nil
	}
	return domain.Username(strings.TrimSpace(string(b))), nil
}

func statusError(method, path string, resp *http.Response) error {
	b, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
	return &domain.StatusError{
		Method: method,
		Path:   path,
		Code:   resp.StatusCode,
		Body:   strings.TrimSpace(string(b)),
	}
}

var _ domain.SessionAPI = (*HTTP)(nil)
