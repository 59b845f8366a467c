package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/everydayventures/website/internal/api/validation"
)

// Status texts shown while and after a submission runs
const (
	StatusSending  = "Sending…"
	DefaultSuccess = "Thanks! We'll be in touch soon."
	DefaultFailure = "Something went wrong. Please try again."
)

const maxResponseBody = 64 * 1024

// ErrInvalidInquiry is returned when local checks fail and nothing was sent
var ErrInvalidInquiry = errors.New("inquiry failed local validation")

// Inquiry holds the fields of the contact form
type Inquiry struct {
	Name    string
	Email   string
	Project string
	Company string
}

// LocalErrors runs the checks a browser would apply before submitting.
// It returns nil when the inquiry may be sent.
func (i Inquiry) LocalErrors() map[string]string {
	errs := make(map[string]string)
	if strings.TrimSpace(i.Name) == "" {
		errs["name"] = "Please fill out this field."
	}
	if strings.TrimSpace(i.Email) == "" {
		errs["email"] = "Please fill out this field."
	} else if !validation.IsValidEmail(i.Email) {
		errs["email"] = "Please enter an email address."
	}
	if strings.TrimSpace(i.Project) == "" {
		errs["project"] = "Please fill out this field."
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

func (i Inquiry) values() url.Values {
	return url.Values{
		"name":    {i.Name},
		"email":   {i.Email},
		"project": {i.Project},
		"company": {i.Company},
	}
}

// Result is the outcome of one submission
type Result struct {
	Success     bool
	StatusCode  int
	Message     string
	FieldErrors map[string]string
}

// InvalidFields lists the fields the server or local checks flagged
func (r *Result) InvalidFields() []string {
	fields := make([]string, 0, len(r.FieldErrors))
	for k := range r.FieldErrors {
		fields = append(fields, k)
	}
	return fields
}

type responseBody struct {
	Success bool              `json:"success"`
	Message string            `json:"message"`
	Errors  map[string]string `json:"errors"`
}

// Submitter posts inquiries to a contact endpoint
type Submitter struct {
	endpoint string
	client   *http.Client
}

// NewSubmitter creates a submitter for endpoint. A nil client gets a 30s timeout.
func NewSubmitter(endpoint string, client *http.Client) *Submitter {
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}
	return &Submitter{endpoint: endpoint, client: client}
}

// Submit validates the inquiry locally and, when it passes, sends it once.
// Server rejections are reported in the Result, not as an error; errors are
// reserved for local validation failures and transport problems.
func (s *Submitter) Submit(ctx context.Context, inquiry Inquiry) (*Result, error) {
	if errs := inquiry.LocalErrors(); errs != nil {
		return &Result{Message: DefaultFailure, FieldErrors: errs}, ErrInvalidInquiry
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint,
		strings.NewReader(inquiry.values().Encode()))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to submit inquiry: %w", err)
	}
	defer resp.Body.Close()

	body := decodeBody(resp.Body)
	result := &Result{
		StatusCode:  resp.StatusCode,
		Message:     body.Message,
		FieldErrors: body.Errors,
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		if result.Message == "" {
			result.Message = DefaultFailure
		}
		return result, nil
	}

	result.Success = true
	result.FieldErrors = nil
	if result.Message == "" {
		result.Message = DefaultSuccess
	}
	return result, nil
}

// decodeBody reads a JSON answer, treating anything unreadable as empty
func decodeBody(r io.Reader) responseBody {
	var body responseBody
	data, err := io.ReadAll(io.LimitReader(r, maxResponseBody))
	if err != nil {
		return responseBody{}
	}
	if err := json.Unmarshal(data, &body); err != nil {
		return responseBody{}
	}
	return body
}
