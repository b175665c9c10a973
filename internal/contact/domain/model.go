package domain

import (
	"fmt"
	"strings"
)

// Submission is one contact-form payload. It lives for a single request: it is
// validated, dispatched as two emails, and discarded. Never persisted.
type Submission struct {
	Name     string   `json:"name"`
	Email    string   `json:"email"`
	Phone    string   `json:"phone,omitempty"`
	Company  string   `json:"company,omitempty"`
	Services []string `json:"services"`
	Message  string   `json:"message"`
}

// ServiceOptions is the closed set of services the form offers.
var ServiceOptions = []string{"website-design", "development", "seo", "ads", "other"}

// IsServiceOption reports whether v is one of the offered services.
func IsServiceOption(v string) bool {
	for _, opt := range ServiceOptions {
		if v == opt {
			return true
		}
	}
	return false
}

// Result is the pipeline outcome handed back to the form. Diagnostic carries
// the underlying transport error for logs and the API error field; Message is
// safe to show to the user.
type Result struct {
	Success    bool   `json:"success"`
	Message    string `json:"message"`
	Diagnostic string `json:"diagnostic,omitempty"`
}

// FieldError is a single field-scoped validation failure.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors rejects a submission as a whole while keeping per-field
// reasons for inline display.
type ValidationErrors []FieldError

func (v ValidationErrors) Error() string {
	parts := make([]string, 0, len(v))
	for _, fe := range v {
		parts = append(parts, fmt.Sprintf("%s: %s", fe.Field, fe.Message))
	}
	return "invalid submission: " + strings.Join(parts, "; ")
}
