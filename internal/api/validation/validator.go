package validation

import (
	"errors"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Human-readable messages keyed by field, then by failed tag.
// The "" entry is the fallback for any other tag on that field.
var fieldMessages = map[string]map[string]string{
	"name": {
		"required": "Please enter your name.",
		"max":      "Please keep your name under 200 characters.",
	},
	"email": {
		"": "Please provide a valid email address.",
	},
	"project": {
		"required": "Tell us about your project so we can help.",
		"max":      "Project details should be fewer than 5,000 characters.",
	},
}

const genericFieldMessage = "Please check this field."

// New returns a validator with the custom rules registered and form field
// names reported instead of Go struct field names
func New() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	RegisterValidators(v)
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}
		return name
	})
	return v
}

// RegisterValidators registers custom validators
func RegisterValidators(v *validator.Validate) {
	v.RegisterValidation("contactemail", validateEmail)
}

// IsValidEmail reports whether s looks like user@host.tld
func IsValidEmail(s string) bool {
	return emailRegex.MatchString(strings.TrimSpace(s))
}

// validateEmail checks if the email is valid
func validateEmail(fl validator.FieldLevel) bool {
	return IsValidEmail(fl.Field().String())
}

// FormatValidationError maps every failed field to a single message.
// Errors that are not validator errors yield an empty map.
func FormatValidationError(err error) map[string]string {
	fields := make(map[string]string)

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return fields
	}

	for _, e := range validationErrors {
		field := e.Field()
		if _, seen := fields[field]; seen {
			continue
		}
		fields[field] = messageFor(field, e.Tag())
	}
	return fields
}

func messageFor(field, tag string) string {
	messages, ok := fieldMessages[field]
	if !ok {
		return genericFieldMessage
	}
	if msg, ok := messages[tag]; ok {
		return msg
	}
	if msg, ok := messages[""]; ok {
		return msg
	}
	return genericFieldMessage
}
