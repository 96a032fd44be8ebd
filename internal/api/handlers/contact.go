package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/aistrugglebus/contact-api/internal/api/dto/v1/contact"
	"github.com/aistrugglebus/contact-api/internal/api/validation"
	"github.com/aistrugglebus/contact-api/internal/logging"
	"github.com/aistrugglebus/contact-api/internal/ratelimit"
	"github.com/aistrugglebus/contact-api/internal/repository"
	"github.com/aistrugglebus/contact-api/internal/service"
	"github.com/aistrugglebus/contact-api/internal/utils"

	"github.com/gin-gonic/gin"
)

// contactRateLimit is the per-identity window for the contact endpoint:
// 5 requests per minute.
var contactRateLimit = ratelimit.Config{
	Limit:  5,
	Window: time.Minute,
}

// maxBodySize caps the request body at 10 KB, plenty for a contact form.
const maxBodySize = 10 * 1024

const genericFailureMessage = "Failed to process contact form"

type ContactHandler struct {
	contacts repository.ContactRepository
	notifier service.Notifier
	limiter  ratelimit.Limiter
}

func NewContactHandler(contacts repository.ContactRepository, notifier service.Notifier, limiter ratelimit.Limiter) *ContactHandler {
	return &ContactHandler{
		contacts: contacts,
		notifier: notifier,
		limiter:  limiter,
	}
}

// Submit handles POST /api/contact: identity resolution, rate limiting,
// validation, persistence, then best-effort notification. The response never
// carries internal identifiers or error internals.
func (h *ContactHandler) Submit(c *gin.Context) {
	logger := logging.GetGlobalLogger()

	identity := utils.ClientIdentity(c.Request.Header)
	limit, err := h.limiter.Check(c.Request.Context(), "contact:"+identity, contactRateLimit)
	if err != nil {
		// Fail open when the backing store is unreachable: availability of
		// the form outranks precision of the throttle.
		logger.Error("Rate limit store unavailable, allowing request: %v", err)
		limit = ratelimit.Result{
			Success:   true,
			Limit:     contactRateLimit.Limit,
			Remaining: contactRateLimit.Limit - 1,
			ResetTime: time.Now().Add(contactRateLimit.Window),
		}
	}

	if !limit.Success {
		retryAfter := int(math.Ceil(time.Until(limit.ResetTime).Seconds()))
		if retryAfter < 0 {
			retryAfter = 0
		}
		c.Header("Retry-After", strconv.Itoa(retryAfter))
		setRateLimitHeaders(c, limit)
		c.JSON(http.StatusTooManyRequests, contact.ErrorResponse{
			Error: "Too many requests. Please try again later.",
		})
		return
	}

	// The declared length is only a fast-path guard; the real cap is
	// enforced while reading below.
	if c.Request.ContentLength > maxBodySize {
		c.JSON(http.StatusRequestEntityTooLarge, contact.ErrorResponse{
			Error: "Request body too large",
		})
		return
	}

	body, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, maxBodySize))
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			c.JSON(http.StatusRequestEntityTooLarge, contact.ErrorResponse{
				Error: "Request body too large",
			})
			return
		}
		logger.Error("Failed to read contact request body: %v", err)
		c.JSON(http.StatusInternalServerError, contact.ErrorResponse{
			Error: genericFailureMessage,
		})
		return
	}

	var raw any
	if err := json.Unmarshal(body, &raw); err != nil {
		c.JSON(http.StatusBadRequest, contact.ErrorResponse{
			Error: "Invalid JSON in request body",
		})
		return
	}

	input, ok := raw.(map[string]any)
	if !ok {
		c.JSON(http.StatusBadRequest, contact.ErrorResponse{
			Error: "Request body must be a JSON object",
		})
		return
	}

	data, fieldErrors := validation.ValidateContactInput(input)
	if fieldErrors != nil {
		c.JSON(http.StatusBadRequest, contact.ErrorResponse{
			Error:   "Validation failed",
			Details: fieldErrors,
		})
		return
	}

	if _, err := h.contacts.Create(c.Request.Context(), data); err != nil {
		logger.Error("Failed to store contact submission: %v", err)
		c.JSON(http.StatusInternalServerError, contact.ErrorResponse{
			Error: genericFailureMessage,
		})
		return
	}

	// Best effort: the stored record is the source of truth, a lost email
	// must never fail the request.
	notification := service.ContactNotification{
		Name:    data.Name,
		Email:   data.Email,
		Company: data.Company,
		Message: data.Message,
		Source:  data.Source,
	}
	if err := h.notifier.SendContactNotification(c.Request.Context(), notification); err != nil {
		logger.Error("Failed to send notification email: %v", err)
	}

	setRateLimitHeaders(c, limit)
	c.JSON(http.StatusOK, contact.SubmitResponse{
		Success: true,
		Message: "Thank you for your submission. We'll be in touch soon.",
	})
}

func setRateLimitHeaders(c *gin.Context, res ratelimit.Result) {
	c.Header("X-RateLimit-Limit", strconv.Itoa(res.Limit))
	c.Header("X-RateLimit-Remaining", strconv.Itoa(res.Remaining))
	c.Header("X-RateLimit-Reset", strconv.FormatInt(res.ResetTime.UnixMilli(), 10))
}
