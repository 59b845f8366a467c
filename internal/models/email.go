package models

// EmailAddress is an address with an optional display name
type EmailAddress struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

// Personalization selects the recipients of one copy of the message
type Personalization struct {
	To  []EmailAddress `json:"to"`
	BCC []EmailAddress `json:"bcc,omitempty"`
}

// EmailContent is one MIME part of the message body
type EmailContent struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

// EmailMessage is the JSON payload accepted by the MailChannels send API
type EmailMessage struct {
	Personalizations []Personalization `json:"personalizations"`
	From             EmailAddress      `json:"from"`
	ReplyTo          *EmailAddress     `json:"reply_to,omitempty"`
	Subject          string            `json:"subject"`
	Content          []EmailContent    `json:"content"`
}
