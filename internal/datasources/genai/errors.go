package genai

import (
	"errors"
	"fmt"
	"strings"
)

// ErrRateLimited is returned when the client-side throttle denies a
// request. Callers should defer the call rather than retry immediately.
var ErrRateLimited = errors.New("genai: request denied by client-side rate limit")

// MalformedResponseError indicates the model's output did not contain a
// parseable JSON object. It is never retried; a retry won't fix a bad
// response shape. Raw carries the full response text for diagnostics.
type MalformedResponseError struct {
	Raw string
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("genai: no parseable JSON object in model response (%d bytes)", len(e.Raw))
}

// apiError is a non-2xx response from the model API.
type apiError struct {
	statusCode int
	body       string
}

func (e *apiError) Error() string {
	return fmt.Sprintf("model API error (status %d): %s", e.statusCode, e.body)
}

// isQuotaError reports whether an error is the quota/rate-limit class
// that is expected to resolve itself with time, and is therefore worth
// retrying. Everything else propagates immediately.
func isQuotaError(err error) bool {
	if err == nil {
		return false
	}

	// A self-imposed admission denial is never retried.
	if errors.Is(err, ErrRateLimited) {
		return false
	}

	var apiErr *apiError
	if errors.As(err, &apiErr) && apiErr.statusCode == 429 {
		return true
	}

	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "429") ||
		strings.Contains(msg, "quota") ||
		strings.Contains(msg, "rate limit") ||
		strings.Contains(msg, "resource_exhausted")
}
