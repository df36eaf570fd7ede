// Package api implements the remote-backend adapters. A single Client owns
// the HTTP plumbing shared by every adapter: base URL, timeouts, JSON codec,
// bearer-token injection, and the mapping from transport failures and
// HTTP statuses to domain errors.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"sync"

	"github.com/pkg/errors"
	"go.uber.org/fx"

	"clinica/config"
	domainerrors "clinica/internal/domain/errors"
)

// TokenSource yields the current bearer token, or "" when unauthenticated.
// It is consulted immediately before every outbound call, so the dispatcher
// always sees the token the session manager installed last.
type TokenSource func() string

// StatusError is a non-2xx backend answer that the dispatcher does not map
// itself. Adapters translate it into the matching domain error.
type StatusError struct {
	StatusCode int
	Body       string
}

// Error implements the error interface.
func (e *StatusError) Error() string {
	return "backend answered " + strconv.Itoa(e.StatusCode) + ": " + e.Body
}

// ClientParams holds dependencies for the Client, injected by Fx.
type ClientParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// Client is the shared request dispatcher. All adapters go through it; no
// call site threads the token manually.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger

	mu             sync.RWMutex
	tokenSource    TokenSource
	onUnauthorized func()
}

// NewClient is the constructor for Client.
func NewClient(params ClientParams) *Client {
	return &Client{
		baseURL:    strings.TrimRight(params.Config.API.BaseURL, "/"),
		httpClient: &http.Client{Timeout: params.Config.API.Timeout},
		logger:     params.Logger,
	}
}

// BindSession attaches the session manager to the dispatcher: source is read
// before each call, onUnauthorized fires when the backend rejects a token the
// dispatcher attached. Called once during startup wiring.
func (c *Client) BindSession(source TokenSource, onUnauthorized func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.tokenSource = source
	c.onUnauthorized = onUnauthorized
}

func (c *Client) session() (TokenSource, func()) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.tokenSource, c.onUnauthorized
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, body, out)
}

func (c *Client) put(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPut, path, body, out)
}

// do performs one request/response cycle against the backend.
//
// Error mapping: transport failure -> RemoteCallError; 401 on a call that
// carried a token -> forced logout plus ErrSessionExpired; any other non-2xx
// -> *StatusError for the adapter to interpret.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return errors.Wrap(err, "failed to encode request body")
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return errors.Wrap(err, "failed to build request")
	}
	req.Header.Set("Content-Type", "application/json")

	tokenSource, onUnauthorized := c.session()
	tokenAttached := false
	if tokenSource != nil {
		if token := tokenSource(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
			tokenAttached = true
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("Backend unreachable", slog.String("method", method), slog.String("path", path), slog.Any("error", err))

		return domainerrors.NewRemoteCallError(err, method+" "+path)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized && tokenAttached {
		// The backend is the authority on token validity. A rejected token
		// means the session is over, regardless of which call noticed first.
		c.logger.Info("Token rejected by backend, forcing logout", slog.String("path", path))
		if onUnauthorized != nil {
			onUnauthorized()
		}

		return domainerrors.ErrSessionExpired.WrapMessage(method + " " + path)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))

		return &StatusError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(raw))}
	}

	if out == nil {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.Wrapf(err, "failed to decode %s %s response", method, path)
	}

	return nil
}
