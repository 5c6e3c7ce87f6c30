package validation

import (
	"strings"
	"testing"
)

func TestValidEmail_Accepts(t *testing.T) {
	valid := []string{
		"ada@example.com",
		"first.last@example.co.uk",
		"user+tag@sub.domain.org",
		"x@y.zz",
		"UPPER@EXAMPLE.COM",
	}
	for _, s := range valid {
		if !ValidEmail(s) {
			t.Errorf("expected %q to be valid", s)
		}
	}
}

func TestValidEmail_Rejects(t *testing.T) {
	invalid := []string{
		"",
		"no-at-sign",
		"@example.com",
		"user@",
		"user@nodot",
		"two@@example.com",
		"a@b@c.com",
		"spaces in@example.com",
		"user@ example.com",
	}
	for _, s := range invalid {
		if ValidEmail(s) {
			t.Errorf("expected %q to be invalid", s)
		}
	}
}

// TestValidEmail_NoAtAlwaysInvalid: any string without @ must fail.
func TestValidEmail_NoAtAlwaysInvalid(t *testing.T) {
	samples := []string{"plain", "with.dot", "with space", strings.Repeat("a", 300), "!#$%^&*"}
	for _, s := range samples {
		if strings.Contains(s, "@") {
			t.Fatalf("test sample %q contains @", s)
		}
		if ValidEmail(s) {
			t.Errorf("string without @ reported valid: %q", s)
		}
	}
}

func validMessage() string {
	return "This message is long enough to pass validation."
}

func TestContactForm_Valid(t *testing.T) {
	errs := ContactForm("Ada", "ada@example.com", "Hi", validMessage())
	if len(errs) != 0 {
		t.Errorf("expected no errors, got %v", errs)
	}
}

func TestContactForm_AllMissing(t *testing.T) {
	errs := ContactForm("", "", "", "")
	for _, field := range []string{"name", "email", "subject", "message"} {
		if errs[field] == "" {
			t.Errorf("expected an error for %q, got none", field)
		}
	}
	if len(errs) != 4 {
		t.Errorf("expected exactly 4 errors, got %d: %v", len(errs), errs)
	}
}

func TestContactForm_BadEmail(t *testing.T) {
	errs := ContactForm("Ada", "not-an-email", "Hi", validMessage())
	if errs["email"] == "" {
		t.Error("expected an email error")
	}
	if len(errs) != 1 {
		t.Errorf("expected only the email error, got %v", errs)
	}
}

func TestContactForm_MessageTooShort(t *testing.T) {
	errs := ContactForm("Ada", "ada@example.com", "Hi", "too short")
	if errs["message"] == "" {
		t.Error("expected a message error for a short message")
	}
}

func TestContactForm_MessageBounds(t *testing.T) {
	atMin := strings.Repeat("x", MinMessageLength)
	if errs := ContactForm("Ada", "ada@example.com", "Hi", atMin); errs["message"] != "" {
		t.Errorf("message at minimum length rejected: %v", errs)
	}
	atMax := strings.Repeat("x", MaxMessageLength)
	if errs := ContactForm("Ada", "ada@example.com", "Hi", atMax); errs["message"] != "" {
		t.Errorf("message at maximum length rejected: %v", errs)
	}
	over := strings.Repeat("x", MaxMessageLength+1)
	if errs := ContactForm("Ada", "ada@example.com", "Hi", over); errs["message"] == "" {
		t.Error("message over maximum length accepted")
	}
}

// Multi-byte runes count as single characters for length bounds.
func TestContactForm_MessageLengthInRunes(t *testing.T) {
	msg := strings.Repeat("あ", MinMessageLength)
	if errs := ContactForm("Ada", "ada@example.com", "Hi", msg); errs["message"] != "" {
		t.Errorf("multi-byte message at minimum rune length rejected: %v", errs)
	}
}
