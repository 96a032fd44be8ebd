package utils

import (
	"net/http"
	"strings"
)

// UnknownClient is the shared identity for requests whose origin cannot be
// determined from the proxy headers. All such clients end up in a single
// rate-limit bucket.
const UnknownClient = "unknown"

// ClientIdentity extracts a best-effort client address from request headers,
// respecting the reverse-proxy chain in front of the service. The header
// order is a trust hierarchy: X-Forwarded-For first, then X-Real-IP, then the
// Vercel-specific X-Vercel-Forwarded-For.
func ClientIdentity(headers http.Header) string {
	forwardedFor := headers.Get("X-Forwarded-For")
	if forwardedFor != "" {
		// X-Forwarded-For can be a comma-separated list: client, proxy1, proxy2.
		// The first entry is the client.
		return strings.TrimSpace(strings.Split(forwardedFor, ",")[0])
	}

	realIP := headers.Get("X-Real-IP")
	if realIP != "" {
		return realIP
	}

	vercelForwardedFor := headers.Get("X-Vercel-Forwarded-For")
	if vercelForwardedFor != "" {
		return strings.TrimSpace(strings.Split(vercelForwardedFor, ",")[0])
	}

	return UnknownClient
}
