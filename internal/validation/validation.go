// Package validation holds the pure field validators applied at the HTTP
// boundary. This is the single point where untyped request input becomes
// typed data; nothing here touches the store.
package validation

import "regexp"

const (
	// MinMessageLength is the minimum contact message length in runes.
	MinMessageLength = 20
	// MaxMessageLength is the maximum contact message length in runes.
	MaxMessageLength = 5000
)

// emailRe requires a non-empty local part, a single @, and a domain
// containing at least one dot. No DNS or deliverability checks.
var emailRe = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// ValidEmail reports whether s is shaped like local@domain.tld.
func ValidEmail(s string) bool {
	return emailRe.MatchString(s)
}

// ContactForm validates a contact submission and returns one error message
// per offending field. An empty map means the form is valid.
func ContactForm(name, email, subject, message string) map[string]string {
	errs := make(map[string]string)

	if name == "" {
		errs["name"] = "name is required"
	}
	if email == "" {
		errs["email"] = "email is required"
	} else if !ValidEmail(email) {
		errs["email"] = "email is not a valid address"
	}
	if subject == "" {
		errs["subject"] = "subject is required"
	}

	switch n := len([]rune(message)); {
	case n == 0:
		errs["message"] = "message is required"
	case n < MinMessageLength:
		errs["message"] = "message is too short"
	case n > MaxMessageLength:
		errs["message"] = "message is too long"
	}

	return errs
}
