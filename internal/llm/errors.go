package llm

import "errors"

var (
	// ErrMissingAPIKey indicates generation was requested without a credential.
	ErrMissingAPIKey = errors.New("openai api key is not configured")

	// ErrTimeout indicates the request exceeded the configured timeout.
	ErrTimeout = errors.New("llm request timed out")

	// ErrUnavailable indicates the API endpoint is unreachable.
	ErrUnavailable = errors.New("llm endpoint unavailable")

	// ErrEmptyResponse indicates the API answered without any choices.
	ErrEmptyResponse = errors.New("llm response contained no choices")

	// ErrRetryExhausted indicates all retry attempts have been exhausted.
	ErrRetryExhausted = errors.New("llm retry attempts exhausted")
)
