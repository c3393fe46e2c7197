package util

import "errors"

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailRegistered    = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrSessionNotFound    = errors.New("session not found")
	ErrQuestionNotFound   = errors.New("question not found")
	ErrPermissionDenied   = errors.New("permission denied")

	// ErrProvider wraps any failure of the outbound LLM call: network errors,
	// non-200 statuses, missing credentials, empty choice lists.
	ErrProvider = errors.New("llm provider request failed")

	// ErrParse means the provider answered but the payload could not be coerced
	// into the expected structure.
	ErrParse = errors.New("llm response could not be parsed")
)
