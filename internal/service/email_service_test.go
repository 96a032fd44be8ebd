package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strptr(s string) *string { return &s }

func newTestEmailService(t *testing.T, handler http.HandlerFunc) *EmailService {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	s := NewEmailService("test-key", "Site <site@example.com>", "inbox@example.com")
	s.baseURL = srv.URL
	return s
}

func TestSendContactNotification(t *testing.T) {
	var got resendEmail
	s := newTestEmailService(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/emails", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
	})

	err := s.SendContactNotification(context.Background(), ContactNotification{
		Name:    "John Doe",
		Email:   "john@example.com",
		Company: strptr("ACME"),
		Message: strptr("Hello there"),
		Source:  "contact",
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"inbox@example.com"}, got.To)
	assert.Equal(t, "New contact inquiry from John Doe", got.Subject)
	assert.Contains(t, got.HTML, "<strong>Company:</strong> ACME")
	assert.Contains(t, got.HTML, "<strong>Message:</strong> Hello there")
}

func TestSendContactNotificationEscapesUserContent(t *testing.T) {
	var got resendEmail
	s := newTestEmailService(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
	})

	err := s.SendContactNotification(context.Background(), ContactNotification{
		Name:    `<script>alert("x")</script>`,
		Email:   "john@example.com",
		Message: strptr("a & b < c"),
		Source:  "contact",
	})
	require.NoError(t, err)

	assert.NotContains(t, got.HTML, "<script>")
	assert.Contains(t, got.HTML, "&lt;script&gt;")
	assert.Contains(t, got.HTML, "a &amp; b &lt; c")
}

func TestSendContactNotificationOmitsAbsentFields(t *testing.T) {
	var got resendEmail
	s := newTestEmailService(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
	})

	err := s.SendContactNotification(context.Background(), ContactNotification{
		Name:   "John",
		Email:  "john@example.com",
		Source: "quiz",
	})
	require.NoError(t, err)

	assert.NotContains(t, got.HTML, "Company")
	assert.NotContains(t, got.HTML, "Message")
}

func TestSendContactNotificationSurfacesAPIFailure(t *testing.T) {
	s := newTestEmailService(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
	})

	err := s.SendContactNotification(context.Background(), ContactNotification{
		Name:   "John",
		Email:  "john@example.com",
		Source: "contact",
	})
	assert.ErrorContains(t, err, "status 422")
}

func TestSendContactNotificationRequiresAPIKey(t *testing.T) {
	s := NewEmailService("", "from@example.com", "to@example.com")

	err := s.SendContactNotification(context.Background(), ContactNotification{
		Name:   "John",
		Email:  "john@example.com",
		Source: "contact",
	})
	assert.ErrorContains(t, err, "not configured")
}
