// Copyright (c) 2024-2025 Web Plus Academy
// SPDX-License-Identifier: AGPL-3.0-or-later

package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"
)

// =============================================================================
// CLIENT
// =============================================================================

const (
	// maxResponseSize bounds response bodies read into memory.
	maxResponseSize = 4 * 1024 * 1024

	// defaultTimeout applies when the caller does not configure one.
	defaultTimeout = 30 * time.Second
)

// sharedTransport pools connections across every request the console makes.
var sharedTransport = &http.Transport{
	MaxIdleConns:        20,
	MaxIdleConnsPerHost: 10,
	IdleConnTimeout:     90 * time.Second,
	TLSHandshakeTimeout: 10 * time.Second,
}

// Client talks to the LMS backend. One instance is shared by all screens.
type Client struct {
	baseURL string
	http    *http.Client
	limiter *rate.Limiter

	// token is written by the login command goroutine and read by every
	// request goroutine, so it takes its own lock.
	mu    sync.RWMutex
	token string
}

// Options configures a Client.
type Options struct {
	// BaseURL is the backend root, e.g. "http://localhost:8000".
	BaseURL string
	// Timeout bounds each request (0 = 30s default).
	Timeout time.Duration
	// RequestsPerSec caps the client-side rate (0 = 10/s).
	RequestsPerSec float64
}

// NewClient builds a Client with pooled transport and rate limiting.
func NewClient(opts Options) *Client {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	rps := opts.RequestsPerSec
	if rps <= 0 {
		rps = 10
	}
	return &Client{
		baseURL: strings.TrimRight(opts.BaseURL, "/"),
		http: &http.Client{
			Transport: sharedTransport,
			Timeout:   timeout,
		},
		limiter: rate.NewLimiter(rate.Limit(rps), int(rps)+1),
	}
}

// SetToken installs the bearer token issued at login. An empty token
// clears it.
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
}

// bearer returns the current token under the read lock.
func (c *Client) bearer() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// BaseURL reports the configured backend root.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// =============================================================================
// ERRORS
// =============================================================================

// APIError is a backend response with success=false or a non-2xx status.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("backend returned status %d", e.Status)
}

// ErrUnauthorized is returned for 401 responses; the shell treats it as
// a dead session.
var ErrUnauthorized = errors.New("backend rejected the session token")

// envelope is the backend's uniform response shape.
type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Token   string          `json:"token"`
}

// =============================================================================
// REQUEST PLUMBING
// =============================================================================

// do issues one JSON request and decodes the envelope's data payload.
// out may be nil when the caller only cares about success.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	env, raw, err := c.doEnvelope(ctx, method, path, body)
	if err != nil {
		return err
	}
	if out != nil {
		target := env.Data
		if len(target) == 0 {
			// Some endpoints put the payload at the top level.
			target = raw
		}
		if err := json.Unmarshal(target, out); err != nil {
			return fmt.Errorf("failed to decode payload: %w", err)
		}
	}
	return nil
}

// doEnvelope issues one JSON request and returns the decoded envelope plus
// the raw body. There is deliberately no retry here: registration must hit
// the backend at most once per call.
func (c *Client) doEnvelope(ctx context.Context, method, path string, body any) (envelope, []byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return envelope{}, nil, fmt.Errorf("rate limit wait: %w", err)
	}

	var reqBody io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return envelope{}, nil, fmt.Errorf("failed to encode request: %w", err)
		}
		reqBody = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return envelope{}, nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if tok := c.bearer(); tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return envelope{}, nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return envelope{}, nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode == http.StatusUnauthorized {
		return envelope{}, nil, ErrUnauthorized
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			return envelope{}, nil, &APIError{Status: resp.StatusCode}
		}
		return envelope{}, nil, fmt.Errorf("failed to decode response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 || !env.Success {
		return envelope{}, nil, &APIError{Status: resp.StatusCode, Message: env.Message}
	}

	return env, raw, nil
}
