// Package waitlist validates and submits waitlist signups.
package waitlist

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"

	"go.uber.org/zap"
)

var (
	ErrInvalidEmail = errors.New("invalid email address")
	ErrSubmitFailed = errors.New("waitlist submission failed")
)

const (
	SuccessMessage = "✓ You're on the list!"
	SuccessNote    = "🎉 We'll notify you when FeedCast launches!"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidateEmail trims s and checks it has a local part, an @, and a dotted
// domain.
func ValidateEmail(s string) (string, error) {
	email := strings.TrimSpace(s)
	if email == "" || !emailPattern.MatchString(email) {
		return "", fmt.Errorf("%w: %q", ErrInvalidEmail, email)
	}
	return email, nil
}

// Result is what the signup form shows after a submission.
type Result struct {
	Email     string `json:"email"`
	Message   string `json:"message"`
	Note      string `json:"note"`
	Delivered bool   `json:"delivered"`
}

// Client posts signups to a form endpoint.
type Client struct {
	httpClient *http.Client
	endpoint   string
	subject    string
	logger     *zap.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithLogger sets the logger.
func WithLogger(l *zap.Logger) Option {
	return func(c *Client) {
		c.logger = l
	}
}

// New creates a client for endpoint. subject is sent as the form's
// "_subject" field.
func New(endpoint, subject string, timeout time.Duration, opts ...Option) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	c := &Client{
		httpClient: &http.Client{Timeout: timeout},
		endpoint:   endpoint,
		subject:    subject,
		logger:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type signup struct {
	Email   string `json:"email"`
	Subject string `json:"_subject"`
}

// Submit sends one signup request. There is no retry.
func (c *Client) Submit(ctx context.Context, email string) error {
	body, err := json.Marshal(signup{Email: email, Subject: c.subject})
	if err != nil {
		return fmt.Errorf("failed to marshal request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")

	c.logger.Debug("submitting waitlist signup", zap.String("endpoint", c.endpoint))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSubmitFailed, err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("%w: endpoint returned %s", ErrSubmitFailed, resp.Status)
	}
	return nil
}

// Join validates raw and submits it. An invalid address never reaches the
// network. A failed submission is logged and still reported as a success
// to the user; Result.Delivered tells the two apart.
func (c *Client) Join(ctx context.Context, raw string) (*Result, error) {
	email, err := ValidateEmail(raw)
	if err != nil {
		return nil, err
	}

	res := &Result{
		Email:     email,
		Message:   SuccessMessage,
		Note:      SuccessNote,
		Delivered: true,
	}

	if err := c.Submit(ctx, email); err != nil {
		c.logger.Warn("waitlist submission failed", zap.Error(err))
		res.Delivered = false
		return res, nil
	}

	c.logger.Info("joined waitlist")
	return res, nil
}
