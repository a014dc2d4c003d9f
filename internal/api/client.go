package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Shivenrastogi59/hackathon-evaluation/internal/evaluation"
	"github.com/Shivenrastogi59/hackathon-evaluation/internal/team"
)

// Client is the judging backend as seen by the TUI. Implementations must be
// safe for use from Bubble Tea commands running concurrently.
type Client interface {
	// Teams lists the teams visible to the current judge.
	Teams(ctx context.Context) ([]*team.Team, error)

	// Evaluation fetches a previously saved evaluation for a team.
	// Returns ErrNoEvaluation when none exists; callers treat any error
	// as "no existing evaluation" and keep form defaults.
	Evaluation(ctx context.Context, teamID string) (*evaluation.Saved, error)

	// Report fetches the slide-deck analysis stored under a team name.
	Report(ctx context.Context, teamName string) (*Report, error)

	// Submit posts a final evaluation.
	Submit(ctx context.Context, sub evaluation.Submission) (*evaluation.Result, error)

	// SaveDraft posts an evaluation to the draft endpoint.
	SaveDraft(ctx context.Context, sub evaluation.Submission) (*evaluation.Result, error)
}

// ErrNoEvaluation indicates the backend holds no saved evaluation for the
// requested team. It is a best-effort pre-fill miss, never a fatal error.
var ErrNoEvaluation = errors.New("no saved evaluation for team")

const defaultTimeout = 30 * time.Second

// RequestTimeout bounds requests issued from TUI commands, which run with
// background contexts rather than a request-scoped one.
const RequestTimeout = 45 * time.Second

// Config holds the settings needed to construct an HTTPClient.
type Config struct {
	// BaseURL is the backend root, e.g. "https://judging.example.com".
	BaseURL string

	// Token is the judge's bearer credential. Required: the client fails
	// closed rather than substituting a placeholder.
	Token string

	// Timeout bounds each request. Zero means defaultTimeout.
	Timeout time.Duration
}

// HTTPClient talks to the judging backend over HTTP with bearer
// authentication. Submission failures surface the backend's detail message;
// there is no retry or backoff, a failed action is retried by the judge.
type HTTPClient struct {
	baseURL string
	token   string
	client  *http.Client
	logger  *slog.Logger
}

// Option configures an HTTPClient.
type Option func(*HTTPClient)

// WithLogger attaches a structured logger for request-level debug logging.
func WithLogger(logger *slog.Logger) Option {
	return func(c *HTTPClient) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithHTTPClient overrides the underlying http.Client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *HTTPClient) {
		if client != nil {
			c.client = client
		}
	}
}

// NewHTTPClient creates a client for the judging backend. It returns an
// error when the base URL or credential is missing: requests must never go
// out unauthenticated.
func NewHTTPClient(cfg Config, opts ...Option) (*HTTPClient, error) {
	if strings.TrimSpace(cfg.BaseURL) == "" {
		return nil, errors.New("api: base URL is required")
	}
	if strings.TrimSpace(cfg.Token) == "" {
		return nil, errors.New("api: bearer credential is required, refusing to run without one")
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	c := &HTTPClient{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		token:   cfg.Token,
		client:  &http.Client{Timeout: timeout},
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Teams implements Client.
func (c *HTTPClient) Teams(ctx context.Context) ([]*team.Team, error) {
	var teams []*team.Team
	if err := c.get(ctx, "/api/teams", &teams); err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}
	return teams, nil
}

// Evaluation implements Client. Any non-2xx response collapses into
// ErrNoEvaluation: the form proceeds with defaults.
func (c *HTTPClient) Evaluation(ctx context.Context, teamID string) (*evaluation.Saved, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/api/evaluations/"+url.PathEscape(teamID), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("evaluation lookup: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logger.Debug("no saved evaluation", "team_id", teamID, "status", resp.StatusCode)
		return nil, ErrNoEvaluation
	}

	var saved evaluation.Saved
	if err := json.NewDecoder(resp.Body).Decode(&saved); err != nil {
		return nil, fmt.Errorf("decode saved evaluation: %w", err)
	}
	return &saved, nil
}

// Report implements Client.
func (c *HTTPClient) Report(ctx context.Context, teamName string) (*Report, error) {
	var report Report
	if err := c.get(ctx, "/api/ppt-report/"+url.PathEscape(teamName), &report); err != nil {
		return nil, fmt.Errorf("report lookup: %w", err)
	}
	return &report, nil
}

// Submit implements Client.
func (c *HTTPClient) Submit(ctx context.Context, sub evaluation.Submission) (*evaluation.Result, error) {
	return c.postSubmission(ctx, "/api/evaluations/submit", sub)
}

// SaveDraft implements Client.
func (c *HTTPClient) SaveDraft(ctx context.Context, sub evaluation.Submission) (*evaluation.Result, error) {
	return c.postSubmission(ctx, "/api/evaluations/draft", sub)
}

func (c *HTTPClient) postSubmission(ctx context.Context, path string, sub evaluation.Submission) (*evaluation.Result, error) {
	req, err := c.newRequest(ctx, http.MethodPost, path, sub)
	if err != nil {
		return nil, err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("post evaluation: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, c.decodeError(resp)
	}

	var result evaluation.Result
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decode submission result: %w", err)
	}
	c.logger.Debug("evaluation posted",
		"path", path,
		"team_id", sub.TeamID,
		"total_score", result.TotalScore,
	)
	return &result, nil
}

// get issues an authenticated GET and decodes a 2xx body into out.
func (c *HTTPClient) get(ctx context.Context, path string, out any) error {
	req, err := c.newRequest(ctx, http.MethodGet, path, nil)
	if err != nil {
		return err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.decodeError(resp)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// newRequest builds an authenticated request with a correlation ID.
func (c *HTTPClient) newRequest(ctx context.Context, method, path string, body any) (*http.Request, error) {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("X-Request-ID", uuid.NewString())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req, nil
}

// apiError mirrors the backend's error body.
type apiError struct {
	Detail string `json:"detail"`
}

// decodeError extracts the server's detail message from a non-2xx response,
// falling back to the HTTP status when the body carries none.
func (c *HTTPClient) decodeError(resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<16))

	var apiErr apiError
	if err := json.Unmarshal(body, &apiErr); err == nil && apiErr.Detail != "" {
		return errors.New(apiErr.Detail)
	}
	return fmt.Errorf("server returned %s", resp.Status)
}
