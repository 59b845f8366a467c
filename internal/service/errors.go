package service

import (
	"errors"
	"fmt"
)

// Sentinel errors for service layer
var (
	ErrUpstream      = errors.New("upstream error")
	ErrNotConfigured = errors.New("not configured")
)

// UpstreamError describes a non-success answer from the email API
type UpstreamError struct {
	StatusCode int
	Body       string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("mailchannels returned status %d: %s", e.StatusCode, e.Body)
}

func (e *UpstreamError) Unwrap() error {
	return ErrUpstream
}
