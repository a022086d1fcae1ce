package llm

import (
	"context"
	"errors"
	"net"

	"github.com/anthropics/anthropic-sdk-go"
)

// ErrAPIKeyRequired is returned when an API key is needed but not provided.
var ErrAPIKeyRequired = errors.New("API key required")

// Kind classifies a transport failure so the caller can tell the user
// whether to reconfigure, wait, or retry. Extraction-level problems never
// reach this taxonomy; they degrade to shorter candidate lists instead.
type Kind int

const (
	KindUnknown Kind = iota
	// KindAuth means missing or invalid credentials: reconfigure.
	KindAuth
	// KindRateLimit means quota or rate limit exhaustion: wait.
	KindRateLimit
	// KindOverloaded means provider overload or a 5xx: retry later.
	KindOverloaded
	// KindNetwork means a connectivity problem: check connection, retry.
	KindNetwork
	// KindCanceled means the caller gave up.
	KindCanceled
)

// Classify maps a provider error to its Kind.
func Classify(err error) Kind {
	if err == nil {
		return KindUnknown
	}

	if errors.Is(err, ErrAPIKeyRequired) {
		return KindAuth
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return KindCanceled
	}

	var apiErr *anthropic.Error
	if errors.As(err, &apiErr) {
		switch {
		case apiErr.StatusCode == 401 || apiErr.StatusCode == 403:
			return KindAuth
		case apiErr.StatusCode == 429:
			return KindRateLimit
		case apiErr.StatusCode == 529 || apiErr.StatusCode >= 500:
			return KindOverloaded
		}
		return KindUnknown
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return KindNetwork
	}

	return KindUnknown
}

// UserMessage turns a transport failure into an actionable message.
func UserMessage(err error) string {
	switch Classify(err) {
	case KindAuth:
		return "Authentication failed: check your API key (ANTHROPIC_API_KEY or the api-key config setting)."
	case KindRateLimit:
		return "Rate limit or quota exceeded: wait a bit before trying again."
	case KindOverloaded:
		return "The model provider is overloaded: try again in a few minutes."
	case KindNetwork:
		return "Network error reaching the model provider: check your connection and retry."
	case KindCanceled:
		return "Request canceled."
	default:
		return "Model request failed: " + err.Error()
	}
}

func isRetryable(err error) bool {
	switch Classify(err) {
	case KindRateLimit, KindOverloaded:
		return true
	case KindNetwork:
		var netErr net.Error
		return errors.As(err, &netErr) && netErr.Timeout()
	}
	return false
}
