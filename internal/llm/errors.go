package llm

import (
	"errors"
	"fmt"
	"strings"
)

// FallbackErrorMessage is shown to the user when every model candidate has
// been tried without a usable answer.
const FallbackErrorMessage = "I cannot process that request right now. Please check your internet connection and try again."

// ErrEmptyResponse means the provider answered with a success status but no
// completion text.
var ErrEmptyResponse = errors.New("model returned an empty response")

// GatewayError is a terminal provider failure: either a non-model API error
// that aborted the fallback chain, or the chain running out of candidates.
// Message is safe to show to the user.
type GatewayError struct {
	Message string
	Err     error
}

func (e *GatewayError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("gateway: %v", e.Err)
	}
	return "gateway: " + e.Message
}

func (e *GatewayError) Unwrap() error { return e.Err }

// UserMessage extracts a user-presentable message from a turn failure.
func UserMessage(err error) string {
	var ge *GatewayError
	if errors.As(err, &ge) && ge.Message != "" {
		return ge.Message
	}
	if errors.Is(err, ErrEmptyResponse) {
		return "The assistant returned an empty response. Please try again."
	}
	return FallbackErrorMessage
}

// isInvalidModelError reports whether a provider error body complains about
// the model identifier itself, in which case the next candidate in the chain
// should be tried instead of giving up.
func isInvalidModelError(body string) bool {
	body = strings.ToLower(body)
	return strings.Contains(body, "not a valid model") ||
		strings.Contains(body, "invalid model") ||
		strings.Contains(body, "model id")
}
