package models

import (
	"fmt"
	"strings"

	"github.com/everydayventures/website/internal/api/sanitization"
)

// Fallbacks used when the corresponding setting is not configured
const (
	DefaultRecipientEmail = "hello@everydayventures.com"
	DefaultRecipientName  = "Everyday Ventures"
	DefaultFromName       = "Everyday Ventures Website"
	DefaultDomain         = "everydayventures.com"
)

// Subject lines cut names longer than subjectNameLimit down to
// subjectNameKeep characters followed by an ellipsis.
const (
	subjectNameLimit = 60
	subjectNameKeep  = 57
)

// Inquiry is a sanitized and validated contact form submission.
// It lives for a single request and is never stored.
type Inquiry struct {
	Name    string
	Email   string
	Project string
}

// MailSettings carries the configurable parts of the outbound email
type MailSettings struct {
	RecipientEmail string
	RecipientName  string
	FromEmail      string
	FromName       string
	Domain         string
	BCCEmail       string
}

// Recipient returns the configured destination address or the fallback
func (s MailSettings) Recipient() EmailAddress {
	addr := EmailAddress{Email: s.RecipientEmail, Name: s.RecipientName}
	if addr.Email == "" {
		addr.Email = DefaultRecipientEmail
	}
	if addr.Name == "" {
		addr.Name = DefaultRecipientName
	}
	return addr
}

// Sender returns the configured from address, deriving it from the domain when unset
func (s MailSettings) Sender() EmailAddress {
	addr := EmailAddress{Email: s.FromEmail, Name: s.FromName}
	if addr.Email == "" {
		domain := s.Domain
		if domain == "" {
			domain = DefaultDomain
		}
		addr.Email = "no-reply@" + domain
	}
	if addr.Name == "" {
		addr.Name = DefaultFromName
	}
	return addr
}

// SubjectName shortens long names for use in a subject line
func SubjectName(name string) string {
	runes := []rune(name)
	if len(runes) <= subjectNameLimit {
		return name
	}
	return string(runes[:subjectNameKeep]) + "…"
}

// BuildInquiryEmail turns an inquiry into a MailChannels send request
func BuildInquiryEmail(inquiry Inquiry, settings MailSettings) *EmailMessage {
	personalization := Personalization{
		To: []EmailAddress{settings.Recipient()},
	}
	if settings.BCCEmail != "" {
		personalization.BCC = []EmailAddress{{Email: settings.BCCEmail}}
	}

	replyTo := EmailAddress{Email: inquiry.Email, Name: inquiry.Name}

	plain := fmt.Sprintf("Name: %s\nEmail: %s\n\nProject details:\n%s\n",
		inquiry.Name, inquiry.Email, inquiry.Project)

	html := fmt.Sprintf(
		"<p><strong>Name:</strong> %s</p>"+
			"<p><strong>Email:</strong> %s</p>"+
			"<p><strong>Project details:</strong></p>"+
			"<p>%s</p>",
		sanitization.EscapeHTML(inquiry.Name),
		sanitization.EscapeHTML(inquiry.Email),
		strings.ReplaceAll(sanitization.EscapeHTML(inquiry.Project), "\n", "<br />"),
	)

	return &EmailMessage{
		Personalizations: []Personalization{personalization},
		From:             settings.Sender(),
		ReplyTo:          &replyTo,
		Subject:          "New project inquiry from " + SubjectName(inquiry.Name),
		Content: []EmailContent{
			{Type: "text/plain", Value: plain},
			{Type: "text/html", Value: html},
		},
	}
}
