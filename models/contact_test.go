package models

import (
	"encoding/json"
	"strings"
	"testing"
)

func validContact() Contact {
	return Contact{
		Name:    "Jane Doe",
		Email:   "jane@x.com",
		Subject: "Hi",
		Message: "Hello there, testing.",
		Status:  StatusNew,
	}
}

func TestValidatePasses(t *testing.T) {
	c := validContact()
	if errs := c.Validate(); len(errs) != 0 {
		t.Fatalf("expected no errors, got %v", errs)
	}

	// Bounds are inclusive.
	c.Name = strings.Repeat("n", 100)
	c.Subject = strings.Repeat("s", 200)
	c.Message = strings.Repeat("m", 2000)
	if errs := c.Validate(); len(errs) != 0 {
		t.Fatalf("expected boundary values to pass, got %v", errs)
	}
}

func TestValidateReportsEveryFailingField(t *testing.T) {
	c := Contact{
		Name:    strings.Repeat("n", 101),
		Email:   "not-an-email",
		Subject: strings.Repeat("s", 201),
		Message: "",
		Status:  "bogus",
	}

	errs := c.Validate()
	got := map[string]bool{}
	for _, fe := range errs {
		got[fe.Field] = true
	}
	for _, want := range []string{"name", "email", "subject", "message", "status"} {
		if !got[want] {
			t.Errorf("expected violation for %q, got %v", want, errs)
		}
	}
	if len(errs) != 5 {
		t.Fatalf("expected one entry per failing field, got %v", errs)
	}
}

func TestIsValidContactStatus(t *testing.T) {
	for _, s := range ContactStatuses() {
		if !IsValidContactStatus(s) {
			t.Errorf("expected %q to be valid", s)
		}
	}
	for _, s := range []string{"", "New", "pending", "deleted", "ARCHIVED"} {
		if IsValidContactStatus(s) {
			t.Errorf("expected %q to be invalid", s)
		}
	}
}

func TestSummaryOmitsClientMetadata(t *testing.T) {
	c := validContact()
	c.IPAddress = "203.0.113.7"
	c.UserAgent = "Mozilla/5.0"

	raw, err := json.Marshal(c.Summary())
	if err != nil {
		t.Fatalf("failed to marshal: %v", err)
	}
	s := string(raw)
	if strings.Contains(s, "203.0.113.7") || strings.Contains(s, "Mozilla") {
		t.Fatalf("summary must not carry client metadata: %s", s)
	}
	for _, want := range []string{`"id"`, `"name"`, `"email"`, `"subject"`, `"message"`, `"status"`, `"createdAt"`} {
		if !strings.Contains(s, want) {
			t.Errorf("summary missing %s: %s", want, s)
		}
	}
}
