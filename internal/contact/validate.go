package contact

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Field names a contact form field
type Field string

const (
	FieldName    Field = "name"
	FieldEmail   Field = "email"
	FieldSubject Field = "subject"
	FieldMessage Field = "message"
)

// FieldOrder is the order fields appear in the form
var FieldOrder = []Field{FieldName, FieldEmail, FieldSubject, FieldMessage}

// Fields holds the form values
type Fields struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// Get returns the value of f
func (fs Fields) Get(f Field) string {
	switch f {
	case FieldName:
		return fs.Name
	case FieldEmail:
		return fs.Email
	case FieldSubject:
		return fs.Subject
	case FieldMessage:
		return fs.Message
	}
	return ""
}

// With returns a copy with f set to value
func (fs Fields) With(f Field, value string) Fields {
	switch f {
	case FieldName:
		fs.Name = value
	case FieldEmail:
		fs.Email = value
	case FieldSubject:
		fs.Subject = value
	case FieldMessage:
		fs.Message = value
	}
	return fs
}

// Errors holds one message per field, "" meaning the field is fine
type Errors struct {
	Name    string `json:"name,omitempty"`
	Email   string `json:"email,omitempty"`
	Subject string `json:"subject,omitempty"`
	Message string `json:"message,omitempty"`
}

// Get returns the error for f
func (e Errors) Get(f Field) string {
	return Fields(e).Get(f)
}

// Clear returns a copy with the error for f removed
func (e Errors) Clear(f Field) Errors {
	return Errors(Fields(e).With(f, ""))
}

// Valid reports whether no field has an error
func (e Errors) Valid() bool {
	return e == Errors{}
}

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidEmail reports whether s looks like local@domain.tld
func ValidEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// Validate checks every field independently. It has no side effects.
func Validate(fs Fields) Errors {
	return Errors{
		Name:    minLength(fs.Name, 2, "Name is required", "Name must be at least 2 characters"),
		Email:   email(fs.Email),
		Subject: minLength(fs.Subject, 5, "Subject is required", "Subject must be at least 5 characters"),
		Message: minLength(fs.Message, 10, "Message is required", "Message must be at least 10 characters"),
	}
}

func minLength(value string, n int, required, tooShort string) string {
	v := strings.TrimSpace(value)
	switch {
	case v == "":
		return required
	case utf8.RuneCountInString(v) < n:
		return tooShort
	}
	return ""
}

func email(value string) string {
	switch {
	case strings.TrimSpace(value) == "":
		return "Email is required"
	case !ValidEmail(value):
		return "Please enter a valid email address"
	}
	return ""
}
