package service

import (
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/befound-studio/studio-backend/internal/contact/domain"
)

var notificationTmpl = template.Must(template.New("notification").Parse(`
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2 style="color: #6366f1; border-bottom: 2px solid #6366f1; padding-bottom: 10px;">
    New Contact Form Submission
  </h2>

  <div style="margin: 20px 0;">
    <p style="margin: 10px 0;">
      <strong style="color: #333;">Name:</strong>
      <span style="color: #666;">{{.Name}}</span>
    </p>

    <p style="margin: 10px 0;">
      <strong style="color: #333;">Email:</strong>
      <a href="mailto:{{.Email}}" style="color: #6366f1;">{{.Email}}</a>
    </p>

    {{if .Phone}}
    <p style="margin: 10px 0;">
      <strong style="color: #333;">Phone:</strong>
      <span style="color: #666;">{{.Phone}}</span>
    </p>
    {{end}}

    {{if .Company}}
    <p style="margin: 10px 0;">
      <strong style="color: #333;">Company:</strong>
      <span style="color: #666;">{{.Company}}</span>
    </p>
    {{end}}

    <p style="margin: 10px 0;">
      <strong style="color: #333;">Services Interested In:</strong>
    </p>
    <ul style="color: #666; margin: 5px 0 15px 20px;">
      {{range .Services}}<li>{{.}}</li>{{end}}
    </ul>

    <div style="margin-top: 20px; padding: 15px; background-color: #f9fafb; border-left: 4px solid #6366f1;">
      <strong style="color: #333;">Message:</strong>
      <p style="color: #666; margin: 10px 0 0 0; white-space: pre-wrap;">{{.Message}}</p>
    </div>
  </div>

  <div style="margin-top: 30px; padding-top: 20px; border-top: 1px solid #e5e7eb; color: #9ca3af; font-size: 12px;">
    <p>This email was sent from the BeFound Studio contact form.</p>
    <p>Submitted on: {{.SubmittedAt}}</p>
  </div>
</div>
`))

var acknowledgmentTmpl = template.Must(template.New("acknowledgment").Parse(`
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2 style="color: #6366f1;">Thank You for Reaching Out!</h2>

  <p style="color: #666; line-height: 1.6;">Hi {{.Name}},</p>

  <p style="color: #666; line-height: 1.6;">
    Thank you for contacting BeFound Studio. We've received your message and our team will review it shortly.
  </p>

  <div style="margin: 20px 0; padding: 15px; background-color: #f0f4ff; border-left: 4px solid #6366f1;">
    <p style="color: #333; margin: 0;"><strong>Your message:</strong></p>
    <p style="color: #666; margin: 10px 0 0 0; white-space: pre-wrap;">{{.Message}}</p>
  </div>

  <p style="color: #666; line-height: 1.6;">
    We typically respond within 24-48 hours. If you need immediate assistance, please feel free to call us directly.
  </p>

  <p style="color: #666; line-height: 1.6;">
    Best regards,<br>
    <strong>The BeFound Studio Team</strong>
  </p>

  <div style="margin-top: 30px; padding-top: 20px; border-top: 1px solid #e5e7eb; color: #9ca3af; font-size: 12px;">
    <p>BeFound Studio</p>
    <p>Email: info@befound.dev</p>
  </div>
</div>
`))

type notificationData struct {
	domain.Submission
	SubmittedAt string
}

func renderNotification(sub domain.Submission, now time.Time) (string, error) {
	var body strings.Builder
	err := notificationTmpl.Execute(&body, notificationData{
		Submission:  sub,
		SubmittedAt: now.Format("Jan 2, 2006 3:04 PM MST"),
	})
	if err != nil {
		return "", fmt.Errorf("render notification: %w", err)
	}
	return body.String(), nil
}

func renderAcknowledgment(sub domain.Submission) (string, error) {
	var body strings.Builder
	if err := acknowledgmentTmpl.Execute(&body, sub); err != nil {
		return "", fmt.Errorf("render acknowledgment: %w", err)
	}
	return body.String(), nil
}
