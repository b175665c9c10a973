// Package service runs the contact submission pipeline: validate the form
// payload, then dispatch the studio notification and the submitter
// acknowledgment as two strictly sequential sends.
package service

import (
	"context"
	"log"
	"time"

	"github.com/befound-studio/studio-backend/internal/contact/domain"
	"github.com/befound-studio/studio-backend/internal/contact/mailer"
)

const (
	successMessage   = "Email sent successfully"
	transportMessage = "Error sending email. Please try again later."
)

type ContactService struct {
	mailer mailer.Mailer
	inbox  string
	now    func() time.Time
}

func New(m mailer.Mailer, inbox string) *ContactService {
	return &ContactService{
		mailer: m,
		inbox:  inbox,
		now:    time.Now,
	}
}

// Submit validates sub and, on success, sends the notification to the studio
// inbox followed by the acknowledgment to the submitter. The second send is
// only attempted after the first completes; both must succeed for a successful
// Result. Not idempotent: every call dispatches real emails.
func (s *ContactService) Submit(ctx context.Context, sub domain.Submission) (domain.Result, error) {
	if errs := Validate(sub); len(errs) > 0 {
		return domain.Result{}, errs
	}

	notificationBody, err := renderNotification(sub, s.now())
	if err != nil {
		return s.failure(err), nil
	}
	acknowledgmentBody, err := renderAcknowledgment(sub)
	if err != nil {
		return s.failure(err), nil
	}

	notification := mailer.Message{
		To:      s.inbox,
		ReplyTo: sub.Email,
		Subject: "New Contact Form Submission from " + sub.Name,
		HTML:    notificationBody,
	}
	acknowledgment := mailer.Message{
		To:      sub.Email,
		Subject: "Thank you for contacting BeFound Studio",
		HTML:    acknowledgmentBody,
	}

	if err := s.mailer.Send(ctx, notification); err != nil {
		return s.failure(err), nil
	}
	if err := s.mailer.Send(ctx, acknowledgment); err != nil {
		return s.failure(err), nil
	}

	return domain.Result{Success: true, Message: successMessage}, nil
}

// failure builds the user-facing failure result. The generic message goes to
// the user; the diagnostic carries the transport error text, which never
// contains account credentials.
func (s *ContactService) failure(err error) domain.Result {
	log.Printf("[contact] dispatch failed: %v", err)
	return domain.Result{
		Success:    false,
		Message:    transportMessage,
		Diagnostic: err.Error(),
	}
}
