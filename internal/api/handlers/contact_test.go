package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	contactdto "github.com/aistrugglebus/contact-api/internal/api/dto/v1/contact"
	"github.com/aistrugglebus/contact-api/internal/db/ent"
	"github.com/aistrugglebus/contact-api/internal/ratelimit"
	"github.com/aistrugglebus/contact-api/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Mock ContactRepository
type mockContactRepository struct {
	createFunc func(ctx context.Context, s *contactdto.Submission) (*ent.Contact, error)
	created    []*contactdto.Submission
}

func (m *mockContactRepository) Create(ctx context.Context, s *contactdto.Submission) (*ent.Contact, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, s)
	}
	m.created = append(m.created, s)
	return &ent.Contact{}, nil
}

func (m *mockContactRepository) Count(ctx context.Context) (int, error) {
	return len(m.created), nil
}

// Mock Notifier
type mockNotifier struct {
	err  error
	sent []service.ContactNotification
}

func (m *mockNotifier) SendContactNotification(_ context.Context, n service.ContactNotification) error {
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, n)
	return nil
}

// Limiter whose backing store is unreachable
type failingLimiter struct{}

func (failingLimiter) Check(context.Context, string, ratelimit.Config) (ratelimit.Result, error) {
	return ratelimit.Result{}, errors.New("store down")
}

func newContactRouter(repo *mockContactRepository, notifier *mockNotifier, limiter ratelimit.Limiter) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/api/contact", NewContactHandler(repo, notifier, limiter).Submit)
	return router
}

var testClientSeq int

// postJSON submits a raw body from a fresh client identity unless one is
// given, so tests don't trip each other's rate-limit windows.
func postJSON(router *gin.Engine, body string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if _, ok := headers["X-Forwarded-For"]; !ok {
		testClientSeq++
		req.Header.Set("X-Forwarded-For", fmt.Sprintf("10.1.%d.%d", testClientSeq/255, testClientSeq%255))
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func postBody(router *gin.Engine, body map[string]any) *httptest.ResponseRecorder {
	raw, _ := json.Marshal(body)
	return postJSON(router, string(raw), nil)
}

func TestSubmitAcceptsValidSubmission(t *testing.T) {
	repo := &mockContactRepository{}
	notifier := &mockNotifier{}
	router := newContactRouter(repo, notifier, ratelimit.NewMemoryLimiter())

	w := postBody(router, map[string]any{
		"name":   "John Doe",
		"email":  "john@example.com",
		"source": "contact",
	})

	require.Equal(t, http.StatusOK, w.Code)

	var resp contactdto.SubmitResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Contains(t, resp.Message, "Thank you")

	require.Len(t, repo.created, 1)
	assert.Equal(t, "John Doe", repo.created[0].Name)
	require.Len(t, notifier.sent, 1)
	assert.Equal(t, "john@example.com", notifier.sent[0].Email)
}

func TestSubmitSetsRateLimitHeadersOnSuccess(t *testing.T) {
	router := newContactRouter(&mockContactRepository{}, &mockNotifier{}, ratelimit.NewMemoryLimiter())

	w := postBody(router, map[string]any{
		"name":   "John",
		"email":  "john@example.com",
		"source": "contact",
	})

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "5", w.Header().Get("X-RateLimit-Limit"))
	assert.Equal(t, "4", w.Header().Get("X-RateLimit-Remaining"))

	reset, err := strconv.ParseInt(w.Header().Get("X-RateLimit-Reset"), 10, 64)
	require.NoError(t, err)
	assert.Greater(t, reset, int64(0))
}

func TestSubmitSuccessBodyHasNoInternalIdentifiers(t *testing.T) {
	router := newContactRouter(&mockContactRepository{}, &mockNotifier{}, ratelimit.NewMemoryLimiter())

	w := postBody(router, map[string]any{
		"name":   "John",
		"email":  "john@example.com",
		"source": "contact",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.NotContains(t, body, "id")
	assert.NotContains(t, body, "contactId")
}

func TestSubmitRejectsMissingRequiredFields(t *testing.T) {
	router := newContactRouter(&mockContactRepository{}, &mockNotifier{}, ratelimit.NewMemoryLimiter())

	w := postBody(router, map[string]any{
		"name": "John Doe",
	})

	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp contactdto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Validation failed", resp.Error)

	fields := make([]string, len(resp.Details))
	for i, d := range resp.Details {
		fields[i] = d.Field
	}
	assert.ElementsMatch(t, []string{"email", "source"}, fields)
}

func TestSubmitRejectsInvalidJSON(t *testing.T) {
	router := newContactRouter(&mockContactRepository{}, &mockNotifier{}, ratelimit.NewMemoryLimiter())

	w := postJSON(router, "not valid json", nil)

	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp contactdto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Invalid JSON in request body", resp.Error)
}

func TestSubmitRejectsNonObjectBody(t *testing.T) {
	router := newContactRouter(&mockContactRepository{}, &mockNotifier{}, ratelimit.NewMemoryLimiter())

	for _, body := range []string{"[1, 2, 3]", "null", `"text"`, "42"} {
		t.Run(body, func(t *testing.T) {
			w := postJSON(router, body, nil)

			require.Equal(t, http.StatusBadRequest, w.Code)

			var resp contactdto.ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, "Request body must be a JSON object", resp.Error)
		})
	}
}

func TestSubmitRejectsOversizedDeclaredLength(t *testing.T) {
	router := newContactRouter(&mockContactRepository{}, &mockNotifier{}, ratelimit.NewMemoryLimiter())

	req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader("{}"))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Forwarded-For", "10.9.9.1")
	req.ContentLength = maxBodySize + 1

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusRequestEntityTooLarge, w.Code)

	var resp contactdto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Request body too large", resp.Error)
}

func TestSubmitRejectsOversizedActualBody(t *testing.T) {
	router := newContactRouter(&mockContactRepository{}, &mockNotifier{}, ratelimit.NewMemoryLimiter())

	// A client that lies about (or omits) the declared length still hits the
	// hard cap enforced while reading
	big := `{"message":"` + strings.Repeat("a", maxBodySize) + `"}`
	req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(big))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Forwarded-For", "10.9.9.2")
	req.ContentLength = -1

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
}

func TestSubmitRateLimitsPerIdentity(t *testing.T) {
	router := newContactRouter(&mockContactRepository{}, &mockNotifier{}, ratelimit.NewMemoryLimiter())

	body := map[string]any{
		"name":   "John",
		"email":  "john@example.com",
		"source": "contact",
	}
	raw, _ := json.Marshal(body)
	headers := map[string]string{"X-Forwarded-For": "10.8.8.8"}

	for i := 0; i < 5; i++ {
		w := postJSON(router, string(raw), headers)
		require.Equal(t, http.StatusOK, w.Code, "request %d", i+1)
	}

	w := postJSON(router, string(raw), headers)
	require.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.NotEmpty(t, w.Header().Get("Retry-After"))
	assert.Equal(t, "5", w.Header().Get("X-RateLimit-Limit"))
	assert.Equal(t, "0", w.Header().Get("X-RateLimit-Remaining"))

	var resp contactdto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Too many requests. Please try again later.", resp.Error)

	// A different identity is unaffected
	w = postJSON(router, string(raw), map[string]string{"X-Forwarded-For": "10.8.8.9"})
	require.Equal(t, http.StatusOK, w.Code)
}

func TestSubmitSucceedsWhenNotifierFails(t *testing.T) {
	repo := &mockContactRepository{}
	notifier := &mockNotifier{err: errors.New("smtp is down")}
	router := newContactRouter(repo, notifier, ratelimit.NewMemoryLimiter())

	w := postBody(router, map[string]any{
		"name":   "John",
		"email":  "john@example.com",
		"source": "contact",
	})

	require.Equal(t, http.StatusOK, w.Code)

	var resp contactdto.SubmitResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	require.Len(t, repo.created, 1)
}

func TestSubmitFailsWhenPersistenceFails(t *testing.T) {
	repo := &mockContactRepository{
		createFunc: func(context.Context, *contactdto.Submission) (*ent.Contact, error) {
			return nil, errors.New("pq: connection refused")
		},
	}
	notifier := &mockNotifier{}
	router := newContactRouter(repo, notifier, ratelimit.NewMemoryLimiter())

	w := postBody(router, map[string]any{
		"name":   "John",
		"email":  "john@example.com",
		"source": "contact",
	})

	require.Equal(t, http.StatusInternalServerError, w.Code)

	var resp contactdto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Failed to process contact form", resp.Error)
	// No notification for a submission that was never stored
	assert.Empty(t, notifier.sent)
}

func TestSubmitFailsOpenWhenLimiterStoreDown(t *testing.T) {
	repo := &mockContactRepository{}
	router := newContactRouter(repo, &mockNotifier{}, failingLimiter{})

	w := postBody(router, map[string]any{
		"name":   "John",
		"email":  "john@example.com",
		"source": "contact",
	})

	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, repo.created, 1)
}

func TestSubmitPersistsTrimmedOptionalFields(t *testing.T) {
	repo := &mockContactRepository{}
	notifier := &mockNotifier{}
	router := newContactRouter(repo, notifier, ratelimit.NewMemoryLimiter())

	w := postBody(router, map[string]any{
		"name":    "  Jane Smith ",
		"email":   "jane@example.com",
		"company": " ACME Corp ",
		"phone":   "",
		"message": "Hello",
		"source":  "assessment",
	})

	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, repo.created, 1)

	got := repo.created[0]
	assert.Equal(t, "Jane Smith", got.Name)
	require.NotNil(t, got.Company)
	assert.Equal(t, "ACME Corp", *got.Company)
	assert.Nil(t, got.Phone)
	require.Len(t, notifier.sent, 1)
	require.NotNil(t, notifier.sent[0].Message)
	assert.Equal(t, "Hello", *notifier.sent[0].Message)
}
