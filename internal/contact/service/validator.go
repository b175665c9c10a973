package service

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/befound-studio/studio-backend/internal/contact/domain"
)

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9.!#$%&'*+/=?^_` + "`" + `{|}~-]+@[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?(?:\.[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?)+$`)

// Validate checks a submission against the form contract. It fails closed:
// any field error rejects the submission as a whole before dispatch is
// attempted. Phone and company are free-form and optional.
func Validate(sub domain.Submission) domain.ValidationErrors {
	var errs domain.ValidationErrors

	if utf8.RuneCountInString(strings.TrimSpace(sub.Name)) < 2 {
		errs = append(errs, domain.FieldError{
			Field:   "name",
			Message: "Name must be at least 2 characters",
		})
	}

	if !emailPattern.MatchString(sub.Email) {
		errs = append(errs, domain.FieldError{
			Field:   "email",
			Message: "Please enter a valid email address",
		})
	}

	if len(sub.Services) == 0 {
		errs = append(errs, domain.FieldError{
			Field:   "services",
			Message: "Please select at least one service",
		})
	} else {
		for _, svc := range sub.Services {
			if !domain.IsServiceOption(svc) {
				errs = append(errs, domain.FieldError{
					Field:   "services",
					Message: "Unknown service: " + svc,
				})
				break
			}
		}
	}

	if utf8.RuneCountInString(sub.Message) < 10 {
		errs = append(errs, domain.FieldError{
			Field:   "message",
			Message: "Message must be at least 10 characters",
		})
	}

	return errs
}
