package models

import (
	"time"
	"unicode/utf8"

	"portfolio-api/utils"
)

// Contact statuses. Status is the only field that may change after creation.
const (
	StatusNew      = "new"
	StatusRead     = "read"
	StatusReplied  = "replied"
	StatusArchived = "archived"
)

var contactStatuses = []string{StatusNew, StatusRead, StatusReplied, StatusArchived}

// ContactStatuses returns the closed set of valid status values.
func ContactStatuses() []string {
	out := make([]string, len(contactStatuses))
	copy(out, contactStatuses)
	return out
}

// IsValidContactStatus reports whether s is one of the enumerated statuses.
func IsValidContactStatus(s string) bool {
	for _, valid := range contactStatuses {
		if s == valid {
			return true
		}
	}
	return false
}

// Contact represents one visitor-initiated contact form record.
type Contact struct {
	ID        int       `gorm:"primaryKey;column:id" json:"id"`
	Name      string    `gorm:"column:name;size:100;not null" json:"name"`
	Email     string    `gorm:"column:email;size:255;not null" json:"email"`
	Subject   string    `gorm:"column:subject;size:200" json:"subject"`
	Message   string    `gorm:"column:message;type:text;not null" json:"message"`
	Status    string    `gorm:"column:status;size:20;not null;default:new;index" json:"status"`
	IPAddress string    `gorm:"column:ip_address;size:64" json:"ipAddress,omitempty"`
	UserAgent string    `gorm:"column:user_agent;type:text" json:"userAgent,omitempty"`
	CreatedAt time.Time `gorm:"column:created_at" json:"createdAt"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updatedAt"`
}

func (Contact) TableName() string {
	return "contacts"
}

// ContactSummary is the caller-facing projection of a Contact. It never
// carries ip_address or user_agent.
type ContactSummary struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (c *Contact) Summary() ContactSummary {
	return ContactSummary{
		ID:        c.ID,
		Name:      c.Name,
		Email:     c.Email,
		Subject:   c.Subject,
		Message:   c.Message,
		Status:    c.Status,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

// ContactSummaries maps rows to their caller-facing projection.
func ContactSummaries(contacts []Contact) []ContactSummary {
	summaries := make([]ContactSummary, len(contacts))
	for i := range contacts {
		summaries[i] = contacts[i].Summary()
	}
	return summaries
}

// FieldError describes a single failed validation rule.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors collects every failed rule for a write attempt.
type ValidationErrors []FieldError

func (v ValidationErrors) Error() string {
	if len(v) == 0 {
		return "validation failed"
	}
	msg := v[0].Message
	for _, fe := range v[1:] {
		msg += "; " + fe.Message
	}
	return msg
}

// Validate checks the field constraints enforced at write time. Fields are
// expected to be trimmed/normalized already. Returns one entry per failing
// field, nil when everything passes.
func (c *Contact) Validate() ValidationErrors {
	var errs ValidationErrors

	if n := utf8.RuneCountInString(c.Name); n < 1 || n > 100 {
		errs = append(errs, FieldError{Field: "name", Message: "Name must be between 1 and 100 characters"})
	}
	if !utils.ValidateEmail(c.Email) {
		errs = append(errs, FieldError{Field: "email", Message: "Please provide a valid email"})
	}
	if utf8.RuneCountInString(c.Subject) > 200 {
		errs = append(errs, FieldError{Field: "subject", Message: "Subject cannot exceed 200 characters"})
	}
	if n := utf8.RuneCountInString(c.Message); n < 1 || n > 2000 {
		errs = append(errs, FieldError{Field: "message", Message: "Message must be between 1 and 2000 characters"})
	}
	if !IsValidContactStatus(c.Status) {
		errs = append(errs, FieldError{Field: "status", Message: "Invalid status. Must be one of: new, read, replied, archived"})
	}

	return errs
}
