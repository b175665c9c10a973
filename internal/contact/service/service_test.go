package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/befound-studio/studio-backend/internal/contact/domain"
	"github.com/befound-studio/studio-backend/internal/contact/mailer"
)

// scriptedMailer records every delivery and can fail on a given call.
type scriptedMailer struct {
	sent   []mailer.Message
	calls  int
	failOn int // 1-based call index that errors; 0 = never
}

func (m *scriptedMailer) Send(ctx context.Context, msg mailer.Message) error {
	m.calls++
	if m.failOn != 0 && m.calls == m.failOn {
		return errors.New("smtp: connection refused")
	}
	m.sent = append(m.sent, msg)
	return nil
}

func validSubmission() domain.Submission {
	return domain.Submission{
		Name:     "Al",
		Email:    "x@y.com",
		Services: []string{"seo"},
		Message:  "1234567890",
	}
}

func TestValidateBoundaries(t *testing.T) {
	t.Run("minimal valid submission is accepted", func(t *testing.T) {
		assert.Empty(t, Validate(validSubmission()))
	})

	t.Run("nine character message is rejected", func(t *testing.T) {
		sub := validSubmission()
		sub.Message = "123456789"
		errs := Validate(sub)
		require.Len(t, errs, 1)
		assert.Equal(t, "message", errs[0].Field)
	})

	t.Run("empty services rejected regardless of other fields", func(t *testing.T) {
		sub := validSubmission()
		sub.Services = nil
		errs := Validate(sub)
		require.Len(t, errs, 1)
		assert.Equal(t, "services", errs[0].Field)
	})

	t.Run("unknown service value rejected", func(t *testing.T) {
		sub := validSubmission()
		sub.Services = []string{"skywriting"}
		errs := Validate(sub)
		require.Len(t, errs, 1)
		assert.Equal(t, "services", errs[0].Field)
	})

	t.Run("single character name rejected", func(t *testing.T) {
		sub := validSubmission()
		sub.Name = "A"
		errs := Validate(sub)
		require.Len(t, errs, 1)
		assert.Equal(t, "name", errs[0].Field)
	})

	t.Run("malformed email rejected", func(t *testing.T) {
		sub := validSubmission()
		sub.Email = "not-an-address"
		errs := Validate(sub)
		require.Len(t, errs, 1)
		assert.Equal(t, "email", errs[0].Field)
	})

	t.Run("phone and company are unconstrained", func(t *testing.T) {
		sub := validSubmission()
		sub.Phone = "whatever"
		sub.Company = "x"
		assert.Empty(t, Validate(sub))
	})

	t.Run("all failures reported together", func(t *testing.T) {
		errs := Validate(domain.Submission{})
		assert.Len(t, errs, 4)
	})
}

func TestSubmitSendsNotificationThenAcknowledgment(t *testing.T) {
	m := &scriptedMailer{}
	svc := New(m, "inbox@studio.test")

	result, err := svc.Submit(context.Background(), validSubmission())
	require.NoError(t, err)
	assert.True(t, result.Success)

	require.Len(t, m.sent, 2)
	assert.Equal(t, "inbox@studio.test", m.sent[0].To)
	assert.Equal(t, "x@y.com", m.sent[0].ReplyTo)
	assert.Contains(t, m.sent[0].Subject, "Al")
	assert.Contains(t, m.sent[0].HTML, "seo")

	assert.Equal(t, "x@y.com", m.sent[1].To)
	assert.Contains(t, m.sent[1].HTML, "1234567890")
	assert.Contains(t, m.sent[1].HTML, "24-48 hours")
}

func TestSubmitAbortsWhenNotificationFails(t *testing.T) {
	m := &scriptedMailer{failOn: 1}
	svc := New(m, "inbox@studio.test")

	result, err := svc.Submit(context.Background(), validSubmission())
	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.Equal(t, 1, m.calls)
	assert.Empty(t, m.sent)
	assert.Contains(t, result.Diagnostic, "connection refused")
}

func TestSubmitReportsFailureWhenAcknowledgmentFails(t *testing.T) {
	m := &scriptedMailer{failOn: 2}
	svc := New(m, "inbox@studio.test")

	result, err := svc.Submit(context.Background(), validSubmission())
	require.NoError(t, err)
	assert.False(t, result.Success)

	// Only the notification went out; the acknowledgment was attempted and
	// failed, so exactly one delivery is observed.
	assert.Equal(t, 2, m.calls)
	require.Len(t, m.sent, 1)
	assert.Equal(t, "inbox@studio.test", m.sent[0].To)
}

func TestSubmitDoesNotDeduplicate(t *testing.T) {
	m := &scriptedMailer{}
	svc := New(m, "inbox@studio.test")

	first, err := svc.Submit(context.Background(), validSubmission())
	require.NoError(t, err)
	second, err := svc.Submit(context.Background(), validSubmission())
	require.NoError(t, err)

	assert.True(t, first.Success)
	assert.True(t, second.Success)
	assert.Len(t, m.sent, 4)
}

func TestSubmitRejectsBeforeDispatch(t *testing.T) {
	m := &scriptedMailer{}
	svc := New(m, "inbox@studio.test")

	sub := validSubmission()
	sub.Email = "broken"

	_, err := svc.Submit(context.Background(), sub)
	var verrs domain.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Zero(t, m.calls, "no dispatch may happen for an invalid submission")
}

func TestNotificationOmitsEmptyOptionalFields(t *testing.T) {
	m := &scriptedMailer{}
	svc := New(m, "inbox@studio.test")

	_, err := svc.Submit(context.Background(), validSubmission())
	require.NoError(t, err)
	require.Len(t, m.sent, 2)
	assert.NotContains(t, m.sent[0].HTML, "Phone:")
	assert.NotContains(t, m.sent[0].HTML, "Company:")

	sub := validSubmission()
	sub.Phone = "+47 555 0100"
	sub.Company = "Acme"
	_, err = svc.Submit(context.Background(), sub)
	require.NoError(t, err)
	assert.Contains(t, m.sent[2].HTML, "Phone:")
	assert.Contains(t, m.sent[2].HTML, "Acme")
}
