// Package gateway is the HTTP client for the directory and chat backends.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Config holds the backend endpoints.
type Config struct {
	DirectoryURL string
	ChatURL      string
	Timeout      time.Duration
}

// DefaultConfig points both backends at a local gateway.
func DefaultConfig() Config {
	return Config{
		DirectoryURL: "http://localhost:8000/api",
		ChatURL:      "http://localhost:8001/api",
		Timeout:      60 * time.Second,
	}
}

// APIError is returned for non-2xx responses.
type APIError struct {
	Method string
	Path   string
	Status int
	Body   string
}

func (e *APIError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("%s %s: %d %s", e.Method, e.Path, e.Status, http.StatusText(e.Status))
	}
	return fmt.Sprintf("%s %s: %d %s: %s", e.Method, e.Path, e.Status, http.StatusText(e.Status), e.Body)
}

// Client talks to the directory and chat backends.
type Client struct {
	http      *http.Client
	directory *url.URL
	chat      *url.URL
	timeout   time.Duration
	ctx       context.Context
	logger    *zap.Logger
}

// NewClient validates cfg and returns a client.
func NewClient(cfg Config, logger *zap.Logger) (*Client, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	dir, err := parseBase(cfg.DirectoryURL)
	if err != nil {
		return nil, fmt.Errorf("directory url: %w", err)
	}
	chat, err := parseBase(cfg.ChatURL)
	if err != nil {
		return nil, fmt.Errorf("chat url: %w", err)
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultConfig().Timeout
	}

	return &Client{
		http:      &http.Client{Transport: http.DefaultTransport.(*http.Transport).Clone()},
		directory: dir,
		chat:      chat,
		timeout:   timeout,
		ctx:       context.Background(),
		logger:    logger,
	}, nil
}

func parseBase(raw string) (*url.URL, error) {
	if raw == "" {
		return nil, fmt.Errorf("empty")
	}
	u, err := url.Parse(raw)
	if err != nil {
		return nil, err
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("unsupported scheme %q", u.Scheme)
	}
	u.Path = strings.TrimSuffix(u.Path, "/")
	return u, nil
}

// Close releases idle connections.
func (c *Client) Close() error {
	c.http.CloseIdleConnections()
	return nil
}

// get decodes the JSON response of GET base+path into out.
func (c *Client) get(base *url.URL, path string, out any) error {
	return c.do(http.MethodGet, base, path, nil, out)
}

// post sends in as JSON and decodes the response into out.
func (c *Client) post(base *url.URL, path string, in, out any) error {
	body, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("encode request: %w", err)
	}
	return c.do(http.MethodPost, base, path, body, out)
}

func (c *Client) do(method string, base *url.URL, path string, body []byte, out any) error {
	ctx, cancel := context.WithTimeout(c.ctx, c.timeout)
	defer cancel()

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	endpoint := base.String() + path
	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Warn("gateway request failed",
			zap.String("method", method), zap.String("path", path), zap.Error(err))
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	c.logger.Debug("gateway request",
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", resp.StatusCode),
		zap.Duration("elapsed", time.Since(start)))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		return &APIError{
			Method: method,
			Path:   path,
			Status: resp.StatusCode,
			Body:   strings.TrimSpace(string(msg)),
		}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}
