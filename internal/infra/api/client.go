// Package api implements the outbound REST client for the ticketing backend.
// It is the only place that knows the backend's paths, wire field names and
// their inconsistencies; everything it returns is normalized into entities.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"time"

	"ulaz/config"
	domainerrors "ulaz/internal/domain/errors"
	"ulaz/internal/domain/repository"
	"ulaz/internal/domain/service"
	"ulaz/internal/errors"
)

// Client talks to the ticketing backend. One instance implements every
// gateway interface; it is safe for concurrent use.
type Client struct {
	baseURL    string
	httpClient *http.Client
	sessions   repository.SessionRepository
	decoder    service.TokenDecoder
	logger     *slog.Logger
}

// NewClient is the constructor for Client.
func NewClient(cfg *config.Config, sessions repository.SessionRepository, decoder service.TokenDecoder, logger *slog.Logger) *Client {
	return &Client{
		baseURL: cfg.Backend.BaseURL,
		httpClient: &http.Client{
			Timeout: cfg.Backend.Timeout,
		},
		sessions: sessions,
		decoder:  decoder,
		logger:   logger,
	}
}

// rejection is the structured error body some backend responses carry.
type rejection struct {
	Message string `json:"message"`
}

// call describes one request to the backend. endpoint is the path template
// used for metrics; path is the concrete path.
type call struct {
	method   string
	endpoint string
	path     string
	body     any
	authed   bool
}

// do issues the request and decodes a 2xx JSON response into out (which may
// be nil). Transport and decode failures map to ErrBackendUnavailable; a
// non-2xx response with a parseable message becomes a RejectedError whose
// message is surfaced verbatim.
func (c *Client) do(ctx context.Context, req call, out any) error {
	var bodyReader io.Reader
	if req.body != nil {
		payload, err := json.Marshal(req.body)
		if err != nil {
			return errors.Wrap(err, "failed to marshal request body")
		}
		bodyReader = bytes.NewReader(payload)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.method, c.baseURL+req.path, bodyReader)
	if err != nil {
		return errors.Wrap(err, "failed to create request")
	}
	if req.body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	if req.authed {
		if token, ok := c.bearerToken(ctx); ok {
			httpReq.Header.Set("Authorization", "Bearer "+token)
		}
	}

	start := time.Now()
	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		observeRequest(req.endpoint, req.method, 0, time.Since(start).Seconds())
		c.logger.Warn("backend request failed",
			slog.String("endpoint", req.endpoint),
			slog.String("method", req.method),
			slog.Any("error", err))

		return errors.Wrap(domainerrors.ErrBackendUnavailable, err.Error())
	}
	defer resp.Body.Close()
	observeRequest(req.endpoint, req.method, resp.StatusCode, time.Since(start).Seconds())

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return c.rejectionError(resp)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.Wrap(domainerrors.ErrBackendUnavailable, "failed to decode response: "+err.Error())
	}

	return nil
}

// bearerToken returns the stored token if one exists and has not expired.
// An expired token makes the request go out unauthenticated, which the
// backend answers accordingly; the client never sends a stale credential.
func (c *Client) bearerToken(ctx context.Context) (string, bool) {
	stored, err := c.sessions.Load(ctx)
	if err != nil {
		return "", false
	}

	decoded, err := c.decoder.Decode(stored.Token)
	if err != nil || decoded.Expired(time.Now()) {
		return "", false
	}

	return stored.Token, true
}

// rejectionError maps a non-2xx response: a parseable message body becomes a
// rejection shown as-is, anything else is a transport-level failure.
func (c *Client) rejectionError(resp *http.Response) error {
	payload, err := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
	if err == nil && len(payload) > 0 {
		var rej rejection
		if jsonErr := json.Unmarshal(payload, &rej); jsonErr == nil && rej.Message != "" {
			return domainerrors.NewRejected(resp.StatusCode, rej.Message)
		}
	}

	return errors.Wrapf(domainerrors.ErrBackendUnavailable, "backend returned status %d", resp.StatusCode)
}
