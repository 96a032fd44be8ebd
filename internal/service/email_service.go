package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"html"
	"net/http"
	"time"
)

const resendBaseURL = "https://api.resend.com"

// ContactNotification is the content of the outbound email for one accepted
// submission. Optional fields are omitted from the message when nil.
type ContactNotification struct {
	Name    string
	Email   string
	Company *string
	Message *string
	Source  string
}

// Notifier sends best-effort notifications about accepted submissions.
// Callers treat failures as non-fatal.
type Notifier interface {
	SendContactNotification(ctx context.Context, n ContactNotification) error
}

// EmailService sends notification emails through the Resend API.
type EmailService struct {
	apiKey  string
	from    string
	to      string
	baseURL string
	client  *http.Client
}

// NewEmailService creates a new email service. The recipient is the inbox
// that receives contact notifications.
func NewEmailService(apiKey, from, to string) *EmailService {
	return &EmailService{
		apiKey:  apiKey,
		from:    from,
		to:      to,
		baseURL: resendBaseURL,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// resendEmail represents a Resend send-email request
type resendEmail struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

// SendContactNotification emails the contact inbox about a new submission.
// All user-supplied fields are HTML-escaped before interpolation.
func (s *EmailService) SendContactNotification(ctx context.Context, n ContactNotification) error {
	if s.apiKey == "" {
		return fmt.Errorf("resend API key not configured")
	}

	safeName := html.EscapeString(n.Name)
	safeEmail := html.EscapeString(n.Email)
	safeSource := html.EscapeString(n.Source)

	body := "<h2>New Contact Submission</h2>\n" +
		fmt.Sprintf("<p><strong>Name:</strong> %s</p>\n", safeName) +
		fmt.Sprintf("<p><strong>Email:</strong> %s</p>\n", safeEmail)
	if n.Company != nil {
		body += fmt.Sprintf("<p><strong>Company:</strong> %s</p>\n", html.EscapeString(*n.Company))
	}
	if n.Message != nil {
		body += fmt.Sprintf("<p><strong>Message:</strong> %s</p>\n", html.EscapeString(*n.Message))
	}
	body += fmt.Sprintf("<p><strong>Source:</strong> %s</p>", safeSource)

	email := resendEmail{
		From:    s.from,
		To:      []string{s.to},
		Subject: fmt.Sprintf("New %s inquiry from %s", safeSource, safeName),
		HTML:    body,
	}

	return s.send(ctx, email)
}

func (s *EmailService) send(ctx context.Context, email resendEmail) error {
	payload, err := json.Marshal(email)
	if err != nil {
		return fmt.Errorf("failed to marshal email: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/emails", bytes.NewBuffer(payload))
	if err != nil {
		return fmt.Errorf("failed to create email request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("resend API returned status %d", resp.StatusCode)
	}

	return nil
}
