package validation

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type inquiryForm struct {
	Name    string `form:"name" validate:"required,max=200"`
	Email   string `form:"email" validate:"required,contactemail"`
	Project string `form:"project" validate:"required,max=5000"`
	Company string `form:"company"`
}

func TestIsValidEmail(t *testing.T) {
	tests := []struct {
		email string
		want  bool
	}{
		{"jo@example.com", true},
		{"first.last+tag@sub.example.co.uk", true},
		{"  jo@example.com  ", true},
		{"bad", false},
		{"jo@example", false},
		{"@example.com", false},
		{"jo@.com", false},
		{"jo @example.com", false},
		{"jo@@example.com", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidEmail(tt.email))
		})
	}
}

func TestFormatValidationError(t *testing.T) {
	v := New()

	tests := []struct {
		name string
		form inquiryForm
		want map[string]string
	}{
		{
			name: "valid",
			form: inquiryForm{Name: "Jo", Email: "jo@example.com", Project: "Need a logo"},
			want: map[string]string{},
		},
		{
			name: "all missing",
			form: inquiryForm{Email: "bad"},
			want: map[string]string{
				"name":    "Please enter your name.",
				"email":   "Please provide a valid email address.",
				"project": "Tell us about your project so we can help.",
			},
		},
		{
			name: "too long",
			form: inquiryForm{
				Name:    strings.Repeat("a", 201),
				Email:   "jo@example.com",
				Project: strings.Repeat("p", 5001),
			},
			want: map[string]string{
				"name":    "Please keep your name under 200 characters.",
				"project": "Project details should be fewer than 5,000 characters.",
			},
		},
		{
			name: "limits are inclusive and count characters",
			form: inquiryForm{
				Name:    strings.Repeat("é", 200),
				Email:   "jo@example.com",
				Project: strings.Repeat("ü", 5000),
			},
			want: map[string]string{},
		},
		{
			name: "missing email",
			form: inquiryForm{Name: "Jo", Project: "x"},
			want: map[string]string{"email": "Please provide a valid email address."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Struct(tt.form)
			if len(tt.want) == 0 {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.want, FormatValidationError(err))
		})
	}
}

func TestFormatValidationErrorIgnoresOtherErrors(t *testing.T) {
	assert.Empty(t, FormatValidationError(errors.New("not a validation error")))
	assert.Empty(t, FormatValidationError(nil))
}
