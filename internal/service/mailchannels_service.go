package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/everydayventures/website/internal/logging"
	"github.com/everydayventures/website/internal/models"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// DefaultMailChannelsURL is the MailChannels transactional send endpoint
const DefaultMailChannelsURL = "https://api.mailchannels.net/tx/v1/send"

// maxUpstreamBody caps how much of an error body is kept for logging
const maxUpstreamBody = 4096

// Mailer delivers a prepared email message
type Mailer interface {
	Send(ctx context.Context, msg *models.EmailMessage) error
}

// MailChannelsConfig configures the MailChannels client
type MailChannelsConfig struct {
	URL     string
	APIKey  string
	Timeout time.Duration
}

// MailChannelsService sends messages through the MailChannels API
type MailChannelsService struct {
	url    string
	apiKey string
	client *http.Client
	logger *logging.Logger
}

// NewMailChannelsService creates a new MailChannels service
func NewMailChannelsService(cfg MailChannelsConfig, logger *logging.Logger) *MailChannelsService {
	url := cfg.URL
	if url == "" {
		url = DefaultMailChannelsURL
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &MailChannelsService{
		url:    url,
		apiKey: cfg.APIKey,
		client: &http.Client{
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		logger: logger,
	}
}

// Send posts the message once. Any non-2xx answer is returned as *UpstreamError.
func (s *MailChannelsService) Send(ctx context.Context, msg *models.EmailMessage) error {
	if msg == nil {
		return fmt.Errorf("email message is nil: %w", ErrNotConfigured)
	}

	jsonData, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal email message: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.url, bytes.NewReader(jsonData))
	if err != nil {
		return fmt.Errorf("failed to create mailchannels request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json; charset=utf-8")
	if s.apiKey != "" {
		req.Header.Set("X-Api-Key", s.apiKey)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxUpstreamBody))
		upstreamErr := &UpstreamError{StatusCode: resp.StatusCode, Body: string(body)}
		s.logger.Error("MailChannels error: %d %s", upstreamErr.StatusCode, upstreamErr.Body)
		return upstreamErr
	}

	// Drain so the connection can be reused
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxUpstreamBody))

	s.logger.Debug("MailChannels accepted message %q with status %d", msg.Subject, resp.StatusCode)
	return nil
}
