package search

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// maxErrorBodyBytes caps how much of an error body is read.
const maxErrorBodyBytes = 64 << 10

type apiErrorBody struct {
	Message          string `json:"message"`
	DocumentationURL string `json:"documentation_url"`
}

// normalizeError converts a non-success response into an UpstreamError with
// a human-readable message. Malformed bodies degrade to the default message;
// this function never fails.
func normalizeError(resp *http.Response) *UpstreamError {
	message := fmt.Sprintf("Request failed (%d)", resp.StatusCode)

	if body, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes)); err == nil {
		var parsed apiErrorBody
		if json.Unmarshal(body, &parsed) == nil && parsed.Message != "" {
			message = parsed.Message
			if parsed.DocumentationURL != "" {
				message += " — " + parsed.DocumentationURL
			}
		}
	}

	kind, cause := classifyStatus(resp)
	return &UpstreamError{
		Kind:    kind,
		Status:  resp.StatusCode,
		Message: message,
		cause:   cause,
	}
}

func classifyStatus(resp *http.Response) (UpstreamErrorKind, error) {
	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		return UpstreamErrorKindRateLimited, ErrRateLimited
	case resp.StatusCode == http.StatusForbidden && isRateLimitResponse(resp):
		return UpstreamErrorKindRateLimited, ErrRateLimited
	case resp.StatusCode == http.StatusForbidden:
		return UpstreamErrorKindForbidden, ErrForbidden
	case resp.StatusCode == http.StatusUnprocessableEntity:
		return UpstreamErrorKindValidation, ErrValidation
	default:
		return UpstreamErrorKindUpstream, ErrUpstream
	}
}

// isRateLimitResponse distinguishes quota exhaustion from other 403s.
func isRateLimitResponse(resp *http.Response) bool {
	if strings.TrimSpace(resp.Header.Get("X-RateLimit-Remaining")) == "0" {
		return true
	}
	return strings.TrimSpace(resp.Header.Get("Retry-After")) != ""
}
